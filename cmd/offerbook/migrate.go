package main

import (
	"fmt"

	pgStorage "p2p-offerbook/internal/adapter/storage/postgres"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long:  `Creates the offer, preference, closed trade and user profile tables if they do not exist.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}

		pool, err := pgStorage.NewPool(cmd.Context(), cfg.Database, log)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer pool.Close()

		if err := pgStorage.Migrate(cmd.Context(), pool); err != nil {
			return err
		}
		log.Info().Msg("Schema applied")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
