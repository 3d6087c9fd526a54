package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/giftcert-api/internal/infrastructure/postgres"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Aplica o revierte el esquema de base de datos",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{postgres.MigrateUp, postgres.MigrateDown},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		defer pool.Close()

		db := postgres.OpenDB(pool)
		defer db.Close()

		if err := postgres.Migrate(db, args[0]); err != nil {
			return err
		}
		log.Info().Str("direction", args[0]).Msg("migraciones aplicadas")
		return nil
	},
}
