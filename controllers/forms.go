package controllers

import (
	"strconv"
	"strings"

	"github.com/yeremiapane/cafe-finder/models"
	"github.com/yeremiapane/cafe-finder/services"
)

// HomeQuery is the query string of the homepage.
type HomeQuery struct {
	City   string `form:"city,default=Jaipur"`
	Search string `form:"search"`
	Sort   string `form:"sort,default=name"`
}

func (q *HomeQuery) normalize() {
	if q.City == "" {
		q.City = models.CityJaipur
	}
	if q.Sort == "" {
		q.Sort = services.SortByName
	}
}

// ReviewForm is posted from a cafe detail page.
type ReviewForm struct {
	ReviewText string `form:"review_text" json:"review_text"`
	Email      string `form:"email" json:"email"`
}

// CafeForm is posted by the add and edit forms of the edit page. Ratings stay
// strings so that blank inputs can default to 0 and bad numbers can be
// reported per field.
type CafeForm struct {
	Name           string `form:"name"`
	City           string `form:"city"`
	CoffeeRating   string `form:"coffee_rating"`
	WifiRating     string `form:"wifi_rating"`
	AmbianceRating string `form:"ambiance_rating"`
	HasPower       string `form:"has_power"`
	MapURL         string `form:"map_url"`
}

// MissingRequired reports whether name, city or map_url is blank.
func (f CafeForm) MissingRequired() bool {
	return strings.TrimSpace(f.Name) == "" ||
		strings.TrimSpace(f.City) == "" ||
		strings.TrimSpace(f.MapURL) == ""
}

// Fields converts the form into store input. A checkbox posts "on" when
// ticked.
func (f CafeForm) Fields() (services.CafeFields, error) {
	coffee, err := parseRating("coffee_rating", f.CoffeeRating)
	if err != nil {
		return services.CafeFields{}, err
	}
	wifi, err := parseRating("wifi_rating", f.WifiRating)
	if err != nil {
		return services.CafeFields{}, err
	}
	ambiance, err := parseRating("ambiance_rating", f.AmbianceRating)
	if err != nil {
		return services.CafeFields{}, err
	}

	return services.CafeFields{
		Name:           f.Name,
		City:           f.City,
		CoffeeRating:   coffee,
		WifiRating:     wifi,
		AmbianceRating: ambiance,
		HasPower:       f.HasPower == "on",
		MapURL:         f.MapURL,
	}, nil
}

func parseRating(field, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &services.ValidationError{Field: field, Message: "enter a number"}
	}
	return v, nil
}
