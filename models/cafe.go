package models

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	CityJaipur  = "Jaipur"
	CityDelhi   = "Delhi"
	CityGurgaon = "Gurgaon"
)

// Cities lists the supported cities in display order.
var Cities = []string{CityJaipur, CityDelhi, CityGurgaon}

type Cafe struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"type:varchar(200);not null" json:"name" validate:"required,max=200"`
	City           string    `gorm:"type:varchar(50);not null;index" json:"city" validate:"required,oneof=Jaipur Delhi Gurgaon"`
	CoffeeRating   float64   `gorm:"not null" json:"coffee_rating" validate:"gte=0,lte=5"`
	WifiRating     float64   `gorm:"not null" json:"wifi_rating" validate:"gte=0,lte=5"`
	AmbianceRating float64   `gorm:"not null" json:"ambiance_rating" validate:"gte=0,lte=5"`
	HasPower       bool      `gorm:"not null;default:false" json:"has_power"`
	MapURL         string    `gorm:"type:varchar(500);not null" json:"map_url" validate:"required,http_url,max=500"`
	CreatedAt      time.Time `gorm:"not null;autoCreateTime:false" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null;autoUpdateTime:false" json:"updated_at"`
	Reviews        []Review  `gorm:"foreignKey:CafeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"reviews,omitempty" validate:"-"`
}

// AverageRating is the mean of the coffee, wifi and ambiance ratings.
func (c Cafe) AverageRating() float64 {
	return (c.CoffeeRating + c.WifiRating + c.AmbianceRating) / 3
}

func (c Cafe) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.City)
}

func (c Cafe) MarshalJSON() ([]byte, error) {
	type plain Cafe
	return json.Marshal(struct {
		plain
		AverageRating float64 `json:"average_rating"`
	}{plain(c), c.AverageRating()})
}

// IsCity reports whether city is one of the supported cities.
func IsCity(city string) bool {
	for _, c := range Cities {
		if c == city {
			return true
		}
	}
	return false
}
