package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/chronos/internal/cli/formatter"
	"github.com/alexanderramin/chronos/internal/service"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	var project string
	var skipWeekends, workAllDays, dryRun bool

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Recompute item dates from their dependencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			skip := app.SkipWeekends
			if cmd.Flags().Changed("skip-weekends") {
				skip = skipWeekends
			}
			if workAllDays {
				skip = false
			}

			resp, err := app.Schedule.Reschedule(ctx, service.ScheduleRequest{
				ProjectID:    projectID,
				SkipWeekends: skip,
				DryRun:       dryRun,
			})
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatScheduleResponse(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project id or name")
	cmd.Flags().BoolVar(&skipWeekends, "skip-weekends", false, "Count working days only (default from config)")
	cmd.Flags().BoolVar(&workAllDays, "all-days", false, "Count every calendar day, overriding config")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the changeset without applying it")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
