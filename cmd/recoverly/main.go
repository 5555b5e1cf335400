package main

import (
	"os"

	"github.com/recoverly/recoverly/cmd/recoverly/cmd"
	"github.com/recoverly/recoverly/internal/config"
	"github.com/recoverly/recoverly/internal/logger"

	"github.com/spf13/cobra"
)

func main() {
	load := func() *config.Config {
		cfg := config.Load()
		logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)
		return cfg
	}

	rootCmd := &cobra.Command{
		Use:   "recoverly",
		Short: "Operator tools for the Recoverly progress service",
	}

	rootCmd.AddCommand(cmd.MigrateCmd(load))
	rootCmd.AddCommand(cmd.StatsCmd(load))
	rootCmd.AddCommand(cmd.EvaluateCmd(load))
	rootCmd.AddCommand(cmd.ProgressCmd(load))
	rootCmd.AddCommand(cmd.LessonsCmd(load))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
