package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/forkful/forkful/config"
	"github.com/forkful/forkful/internal/seed"
	"github.com/forkful/forkful/pkg/database"
)

// bootDB loads config and opens the database connection.
func bootDB(ctx context.Context) error {
	if err := config.Load(); err != nil {
		return err
	}
	return database.Connect(ctx)
}

// forkful db:index — ensure unique and lookup indexes.
var dbIndexCmd = &cobra.Command{
	Use:   "db:index",
	Short: "Create database indexes (idempotent)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		if err := bootDB(ctx); err != nil {
			return err
		}
		defer database.Close(ctx) //nolint:errcheck
		return seed.Indexes(ctx)
	},
}

// forkful db:seed — insert the admin account and a demo catalog.
var dbSeedCmd = &cobra.Command{
	Use:   "db:seed",
	Short: "Seed the admin account and demo catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		if err := bootDB(ctx); err != nil {
			return err
		}
		defer database.Close(ctx) //nolint:errcheck

		if err := seed.Indexes(ctx); err != nil {
			return err
		}
		return seed.Demo(ctx)
	},
}
