package cmd

import (
	"database/sql"
	"fmt"

	"github.com/recoverly/recoverly/internal/db"
	"github.com/spf13/cobra"
)

func MigrateCmd(load ConfigLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migrations",
	}

	cmd.AddCommand(migrateUpCmd(load))
	cmd.AddCommand(migrateDownCmd(load))
	return cmd
}

func migrateUpCmd(load ConfigLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := load()
			database, err := db.Init(cmd.Context(), cfg.DBDriver, cfg.DBConnection)
			if err != nil {
				return err
			}
			defer db.Close(database)

			err = db.RunMigrations(cmd.Context(), database.DB, cfg.DBDriver)
			if err != nil {
				return err
			}
			return printVersion(cmd, database.DB, cfg.DBDriver)
		},
	}
}

func migrateDownCmd(load ConfigLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := load()
			database, err := db.Init(cmd.Context(), cfg.DBDriver, cfg.DBConnection)
			if err != nil {
				return err
			}
			defer db.Close(database)

			err = db.MigrateDown(cmd.Context(), database.DB, cfg.DBDriver)
			if err != nil {
				return err
			}
			return printVersion(cmd, database.DB, cfg.DBDriver)
		},
	}
}

func printVersion(cmd *cobra.Command, database *sql.DB, driver string) error {
	version, err := db.Version(cmd.Context(), database, driver)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Database at version %d\n", version)
	return nil
}
