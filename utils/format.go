package utils

import (
	"fmt"
	"math"
)

// FormatRating renders a rating out of 5 with one decimal place.
// Example: 4.6667 -> "4.7"
func FormatRating(rating float64) string {
	if math.IsNaN(rating) || rating < 0 {
		rating = 0
	}
	return fmt.Sprintf("%.1f", math.Round(rating*10)/10)
}

// Stars renders a rating as five filled or empty stars, rounding to the
// nearest whole star.
func Stars(rating float64) string {
	filled := int(math.Round(rating))
	if filled < 0 {
		filled = 0
	}
	if filled > 5 {
		filled = 5
	}
	out := ""
	for i := 0; i < 5; i++ {
		if i < filled {
			out += "★"
		} else {
			out += "☆"
		}
	}
	return out
}
