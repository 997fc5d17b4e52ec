package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCafeAverageRating(t *testing.T) {
	cafe := Cafe{CoffeeRating: 4.0, WifiRating: 3.0, AmbianceRating: 5.0}
	assert.Equal(t, 4.0, cafe.AverageRating())

	assert.Zero(t, Cafe{}.AverageRating())
}

func TestCafeJSONIncludesAverageRating(t *testing.T) {
	cafe := Cafe{ID: 3, Name: "Tapri Central", City: CityJaipur, CoffeeRating: 4.5, WifiRating: 4.5, AmbianceRating: 4.5}

	raw, err := json.Marshal(cafe)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "Tapri Central", decoded["name"])
	assert.Equal(t, 4.5, decoded["average_rating"])
	assert.NotContains(t, decoded, "reviews")
}

func TestCafeString(t *testing.T) {
	assert.Equal(t, "Brown Sugar (Jaipur)", Cafe{Name: "Brown Sugar", City: CityJaipur}.String())
}

func TestIsCity(t *testing.T) {
	assert.True(t, IsCity("Delhi"))
	assert.False(t, IsCity("delhi"))
	assert.False(t, IsCity(""))
}

func TestReviewReviewer(t *testing.T) {
	email := "sarah@example.com"
	blank := ""

	assert.Equal(t, "sarah@example.com", Review{Email: &email}.Reviewer())
	assert.Equal(t, "Anonymous", Review{}.Reviewer())
	assert.Equal(t, "Anonymous", Review{Email: &blank}.Reviewer())
	assert.Equal(t, "Review by Anonymous for cafe 7", Review{CafeID: 7}.String())
	assert.Equal(t, "Review by sarah@example.com for Blue Tokai Coffee Roasters",
		Review{Email: &email, CafeID: 5}.Describe("Blue Tokai Coffee Roasters"))
}
