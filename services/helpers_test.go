package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/cafe-finder/models"
	"github.com/yeremiapane/cafe-finder/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a private in-memory SQLite database for one test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	utils.InitLogger()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Cafe{}, &models.Review{}))
	return db
}

// fixedClock returns a clock that advances one second per call.
func fixedClock(start time.Time) func() time.Time {
	now := start
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

func newTestCatalog(t *testing.T) *CatalogService {
	catalog := NewCatalogService(setupTestDB(t))
	catalog.Now = fixedClock(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	return catalog
}

func brewStory() CafeFields {
	return CafeFields{
		Name:           "The Brew Story",
		City:           models.CityJaipur,
		CoffeeRating:   4.5,
		WifiRating:     4.2,
		AmbianceRating: 4.7,
		HasPower:       true,
		MapURL:         "https://maps.google.com/?q=The+Brew+Story+Jaipur",
	}
}
