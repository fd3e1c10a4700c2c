package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/chronos/internal/cli/formatter"
	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/scheduler"
	"github.com/spf13/cobra"
)

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage work items",
	}

	cmd.AddCommand(
		newItemAddCmd(app),
		newItemListCmd(app),
		newItemSetDatesCmd(app),
		newItemRemoveCmd(app),
	)

	return cmd
}

func newItemAddCmd(app *App) *cobra.Command {
	var project, name, start, end string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a work item in a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			w := &domain.WorkItem{ProjectID: projectID, Name: name}
			if start != "" {
				w.StartDate = scheduler.ParseDate(start)
				if w.StartDate == nil {
					return fmt.Errorf("invalid start date %q (want YYYY-MM-DD)", start)
				}
			}
			if end != "" {
				w.EndDate = scheduler.ParseDate(end)
				if w.EndDate == nil {
					return fmt.Errorf("invalid end date %q (want YYYY-MM-DD)", end)
				}
			}

			if err := app.WorkItems.Create(ctx, w); err != nil {
				return err
			}
			fmt.Printf("Created work item %s (%s)\n", w.Name, w.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project id or name")
	cmd.Flags().StringVar(&name, "name", "", "Work item name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newItemListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's work items",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			items, err := app.WorkItems.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println("No work items found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatWorkItemList(items))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project id or name")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newItemSetDatesCmd(app *App) *cobra.Command {
	var project, start, end string

	cmd := &cobra.Command{
		Use:   "set-dates <item>",
		Short: "Set or clear a work item's dates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			itemID, err := resolveWorkItemID(ctx, app, projectID, args[0])
			if err != nil {
				return err
			}
			if err := app.WorkItems.SetDates(ctx, itemID, start, end); err != nil {
				return err
			}
			fmt.Printf("Updated dates for %s\n", itemID)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project id or name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD), empty clears")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD), empty clears")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newItemRemoveCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "rm <item>",
		Short: "Delete a work item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			itemID, err := resolveWorkItemID(ctx, app, projectID, args[0])
			if err != nil {
				return err
			}
			if err := app.WorkItems.Delete(ctx, itemID); err != nil {
				return err
			}
			fmt.Printf("Deleted work item %s\n", itemID)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project id or name")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
