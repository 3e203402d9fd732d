package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"PersonalFinance/database/postgres"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runMigrate(postgres.Up)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back every migration",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runMigrate(postgres.Down)
		},
	})

	return cmd
}

func runMigrate(direction postgres.Direction) error {
	db, err := postgres.New(appConfig.DatabaseConfig(), logger)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	logger.WithFields(logrus.Fields{
		"direction": direction,
	}).Info("Running database migrations")

	if err := postgres.Migrate(db, direction); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("Database migrations completed")
	return nil
}
