package commands

import (
	"github.com/spf13/cobra"
	"github.com/yeremiapane/cafe-finder/config"
	"github.com/yeremiapane/cafe-finder/database"
	"github.com/yeremiapane/cafe-finder/utils"
	"gorm.io/gorm"
)

// RootCmd builds the cafes command tree. Running it without a subcommand
// starts the web server.
func RootCmd() *cobra.Command {
	serve := ServeCmd()
	root := &cobra.Command{
		Use:           "cafes",
		Short:         "Cafe directory and review site",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.Flags().AddFlagSet(serve.Flags())

	root.AddCommand(
		serve,
		SeedCmd(),
		MigrateCmd(),
	)
	return root
}

// openDB loads configuration, connects and migrates.
func openDB() (config.Config, *gorm.DB, error) {
	cfg := config.Load()
	utils.SetLogLevel(cfg.LogLevel)

	db, err := config.InitDB(cfg)
	if err != nil {
		return cfg, nil, err
	}
	if err := database.Migrate(db); err != nil {
		return cfg, nil, err
	}
	return cfg, db, nil
}

// closeDB releases the connection pool opened by openDB.
func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		utils.ErrorLogger.Printf("Error closing database: %v", err)
	}
}
