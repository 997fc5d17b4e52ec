package commands

import (
	"github.com/spf13/cobra"
	"github.com/yeremiapane/cafe-finder/services"
)

func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with sample cafe data",
		Long:  "Deletes every existing review and cafe, then creates 12 sample cafes (4 each in Jaipur, Delhi and Gurgaon) and 4 sample reviews.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openDB()
			if err != nil {
				return err
			}
			defer closeDB(db)

			result, err := services.SeedCatalog(cmd.Context(), services.NewCatalogService(db))
			if err != nil {
				return err
			}
			cmd.Printf("Successfully created %d cafes and %d reviews!\n", result.Cafes, result.Reviews)
			return nil
		},
	}
}
