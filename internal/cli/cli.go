// Package cli provides the Cobra-based CLI for commerce-cli.
package cli

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	mongodb "github.com/dscommerce/commerce-api/internal/infrastructure/db/mongo"
	"github.com/dscommerce/commerce-api/internal/pkg/config"
	"github.com/dscommerce/commerce-api/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "commerce-cli",
	Short: "Operational tooling for the commerce API",
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the reference dataset into MongoDB",
	Long: `Seed writes the demo catalog, the two demo accounts (a client and an
admin, password "123456"), and one order referencing the first product.
Intended for an empty database; duplicate accounts abort the run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		cfg := config.Load()
		log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()

		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return err
		}
		defer func() {
			_ = client.Disconnect(context.Background())
		}()

		if err := seed(ctx, db); err != nil {
			return err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("reference dataset loaded")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
