package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRating(t *testing.T) {
	assert.Equal(t, "4.7", FormatRating(14.0/3))
	assert.Equal(t, "5.0", FormatRating(5))
	assert.Equal(t, "0.0", FormatRating(0))
	assert.Equal(t, "0.0", FormatRating(-1))
}

func TestStars(t *testing.T) {
	assert.Equal(t, "★★★★★", Stars(4.6))
	assert.Equal(t, "★★★☆☆", Stars(3.4))
	assert.Equal(t, "☆☆☆☆☆", Stars(-2))
	assert.Equal(t, "★★★★★", Stars(9))
}
