package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/recoverly/recoverly/internal/service"
	"github.com/spf13/cobra"
)

func LessonsCmd(load ConfigLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "lessons",
		Short: "List the lesson catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			lessons := service.NewLessonService(load().ContentPath)
			err := lessons.Load()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tMINUTES")
			for _, lesson := range lessons.List() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", lesson.ID, lesson.Title, lesson.Category, lesson.DurationMinutes)
			}
			return w.Flush()
		},
	}
}
