package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/cafe-finder/models"
	"github.com/yeremiapane/cafe-finder/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestRootCmd(t *testing.T) {
	cmd := RootCmd()
	assert.Equal(t, "cafes", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("port"))

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "seed", "migrate"}, names)
}

func TestServeCmd(t *testing.T) {
	cmd := ServeCmd()
	assert.Equal(t, "serve", cmd.Use)
	assert.Equal(t, "Start the HTTP server", cmd.Short)

	flag := cmd.Flags().ShorthandLookup("p")
	require.NotNil(t, flag)
	assert.Equal(t, "port", flag.Name)
}

func TestSeedCmd(t *testing.T) {
	cmd := SeedCmd()
	assert.Equal(t, "seed", cmd.Use)
	assert.Equal(t, "Populate the database with sample cafe data", cmd.Short)
}

func TestMigrateCmd(t *testing.T) {
	cmd := MigrateCmd()
	assert.Equal(t, "migrate", cmd.Use)
	assert.Equal(t, "Create or update the cafes and reviews tables", cmd.Short)
}

func setupCommandEnv(t *testing.T) string {
	t.Helper()
	utils.InitLogger()

	path := filepath.Join(t.TempDir(), "cafes.db")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", path)
	t.Setenv("SESSION_SECRET", "test")
	return path
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := RootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestSeedAndMigrateCommands(t *testing.T) {
	path := setupCommandEnv(t)

	assert.Contains(t, execute(t, "migrate"), "Database is up to date.")
	assert.Contains(t, execute(t, "seed"), "Successfully created 12 cafes and 4 reviews!")
	// seeding twice replaces the data instead of duplicating it
	execute(t, "seed")

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	var cafes, reviews int64
	require.NoError(t, db.Model(&models.Cafe{}).Count(&cafes).Error)
	require.NoError(t, db.Model(&models.Review{}).Count(&reviews).Error)
	assert.EqualValues(t, 12, cafes)
	assert.EqualValues(t, 4, reviews)
}

func TestSeedRejectsArguments(t *testing.T) {
	setupCommandEnv(t)

	root := RootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"seed", "extra"})
	assert.Error(t, root.Execute())
}

func TestCloseDB(t *testing.T) {
	setupCommandEnv(t)

	_, db, err := openDB()
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Ping())

	closeDB(db)
	assert.Error(t, sqlDB.Ping())
}
