package cmd

import (
	"fmt"

	"github.com/recoverly/recoverly/internal/app"
	"github.com/spf13/cobra"
)

// withApp runs fn against a fully wired app and closes it afterwards.
func withApp(cmd *cobra.Command, load ConfigLoader, fn func(a *app.App) error) error {
	a, err := app.New(cmd.Context(), load())
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

func StatsCmd(load ConfigLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <user-id>",
		Short: "Print a user's statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, load, func(a *app.App) error {
				return printJSON(cmd.OutOrStdout(), a.StatsService.Compute(cmd.Context(), args[0]))
			})
		},
	}
}

func EvaluateCmd(load ConfigLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate <user-id>",
		Short: "Run an evaluation pass and print newly unlocked achievements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, load, func(a *app.App) error {
				unlocked := a.AchievementService.EvaluateAndUnlock(cmd.Context(), args[0])
				if len(unlocked) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No new achievements.")
					return nil
				}
				for _, def := range a.AchievementService.Definitions(unlocked) {
					fmt.Fprintf(cmd.OutOrStdout(), "Unlocked %s (+%d points)\n", def.ID, def.Points)
				}
				return nil
			})
		},
	}
}

func ProgressCmd(load ConfigLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "progress <user-id>",
		Short: "Print a user's achievement progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, load, func(a *app.App) error {
				return printJSON(cmd.OutOrStdout(), a.AchievementService.Progress(cmd.Context(), args[0]))
			})
		},
	}
}
