package services

import (
	"context"
	"fmt"

	"github.com/yeremiapane/cafe-finder/models"
	"github.com/yeremiapane/cafe-finder/utils"
)

type seedReview struct {
	cafeIndex     int
	email         string
	text          string
	agreeCount    uint
	disagreeCount uint
}

var seedCafes = []CafeFields{
	// Jaipur
	{Name: "The Brew Story", City: models.CityJaipur, CoffeeRating: 4.5, WifiRating: 4.2, AmbianceRating: 4.7, HasPower: true, MapURL: "https://maps.google.com/?q=The+Brew+Story+Jaipur"},
	{Name: "Café Coffee Day - MI Road", City: models.CityJaipur, CoffeeRating: 3.8, WifiRating: 3.5, AmbianceRating: 3.9, HasPower: true, MapURL: "https://maps.google.com/?q=CCD+MI+Road+Jaipur"},
	{Name: "Tapri Central", City: models.CityJaipur, CoffeeRating: 4.0, WifiRating: 3.8, AmbianceRating: 4.5, HasPower: false, MapURL: "https://maps.google.com/?q=Tapri+Central+Jaipur"},
	{Name: "Brown Sugar", City: models.CityJaipur, CoffeeRating: 4.3, WifiRating: 4.0, AmbianceRating: 4.6, HasPower: true, MapURL: "https://maps.google.com/?q=Brown+Sugar+Jaipur"},

	// Delhi
	{Name: "Blue Tokai Coffee Roasters", City: models.CityDelhi, CoffeeRating: 4.8, WifiRating: 4.5, AmbianceRating: 4.7, HasPower: true, MapURL: "https://maps.google.com/?q=Blue+Tokai+Coffee+Roasters+Delhi"},
	{Name: "Café Turtle", City: models.CityDelhi, CoffeeRating: 4.2, WifiRating: 3.9, AmbianceRating: 4.4, HasPower: true, MapURL: "https://maps.google.com/?q=Cafe+Turtle+Delhi"},
	{Name: "Indian Coffee House", City: models.CityDelhi, CoffeeRating: 3.5, WifiRating: 2.8, AmbianceRating: 4.0, HasPower: false, MapURL: "https://maps.google.com/?q=Indian+Coffee+House+Delhi"},
	{Name: "Kunzum Travel Café", City: models.CityDelhi, CoffeeRating: 4.0, WifiRating: 4.3, AmbianceRating: 4.5, HasPower: true, MapURL: "https://maps.google.com/?q=Kunzum+Travel+Cafe+Delhi"},

	// Gurgaon
	{Name: "Starbucks - Cyber Hub", City: models.CityGurgaon, CoffeeRating: 4.3, WifiRating: 4.6, AmbianceRating: 4.4, HasPower: true, MapURL: "https://maps.google.com/?q=Starbucks+Cyber+Hub+Gurgaon"},
	{Name: "The Grammar Room", City: models.CityGurgaon, CoffeeRating: 4.5, WifiRating: 4.4, AmbianceRating: 4.8, HasPower: true, MapURL: "https://maps.google.com/?q=The+Grammar+Room+Gurgaon"},
	{Name: "Café Delhi Heights", City: models.CityGurgaon, CoffeeRating: 4.0, WifiRating: 3.7, AmbianceRating: 4.2, HasPower: true, MapURL: "https://maps.google.com/?q=Cafe+Delhi+Heights+Gurgaon"},
	{Name: "Café Wanderlust", City: models.CityGurgaon, CoffeeRating: 4.2, WifiRating: 4.1, AmbianceRating: 4.6, HasPower: false, MapURL: "https://maps.google.com/?q=Cafe+Wanderlust+Gurgaon"},
}

var seedReviews = []seedReview{
	{cafeIndex: 0, email: "john@example.com", text: "Amazing coffee and great ambiance! Perfect place to work.", agreeCount: 15, disagreeCount: 2},
	{cafeIndex: 0, text: "Love the WiFi speed here. Can work for hours without any issues.", agreeCount: 8},
	{cafeIndex: 4, email: "sarah@example.com", text: "Best coffee in Delhi! The pour-over is exceptional.", agreeCount: 22, disagreeCount: 1},
	{cafeIndex: 8, text: "Reliable WiFi and plenty of power outlets. Great for meetings.", agreeCount: 12, disagreeCount: 3},
}

// SeedResult counts what SeedCatalog created.
type SeedResult struct {
	Cafes   int
	Reviews int
}

// SeedCatalog replaces the whole catalog with the fixed sample data set.
func SeedCatalog(ctx context.Context, catalog *CatalogService) (SeedResult, error) {
	utils.InfoLogger.Println("Clearing existing cafes and reviews...")
	if err := catalog.DeleteAll(ctx); err != nil {
		return SeedResult{}, err
	}

	created := make([]*models.Cafe, 0, len(seedCafes))
	for _, fields := range seedCafes {
		cafe, err := catalog.CreateCafe(ctx, fields)
		if err != nil {
			return SeedResult{Cafes: len(created)}, fmt.Errorf("seed cafe %q: %w", fields.Name, err)
		}
		created = append(created, cafe)
		utils.InfoLogger.Printf("Created cafe: %s", cafe)
	}

	for i, sr := range seedReviews {
		cafe := created[sr.cafeIndex]
		review := models.Review{
			CafeID:        cafe.ID,
			Text:          sr.text,
			AgreeCount:    sr.agreeCount,
			DisagreeCount: sr.disagreeCount,
			CreatedAt:     catalog.Now(),
		}
		if sr.email != "" {
			email := sr.email
			review.Email = &email
		}
		if err := catalog.db.WithContext(ctx).Create(&review).Error; err != nil {
			return SeedResult{Cafes: len(created), Reviews: i}, fmt.Errorf("seed review for %q: %w", cafe.Name, err)
		}
		utils.InfoLogger.Printf("Created %s", review.Describe(cafe.Name))
	}

	result := SeedResult{Cafes: len(created), Reviews: len(seedReviews)}
	utils.InfoLogger.Printf("Successfully created %d cafes and %d reviews!", result.Cafes, result.Reviews)
	return result, nil
}
