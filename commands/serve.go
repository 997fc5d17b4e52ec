package commands

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/yeremiapane/cafe-finder/router"
	"github.com/yeremiapane/cafe-finder/utils"
)

func ServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := openDB()
			if err != nil {
				return err
			}

			if cfg.GinMode == "release" {
				gin.SetMode(gin.ReleaseMode)
			}
			if port != "" {
				cfg.Port = port
			}

			r, err := router.SetupRouter(db, cfg)
			if err != nil {
				return err
			}

			utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
			return r.Run(":" + cfg.Port)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (overrides PORT)")
	return cmd
}
