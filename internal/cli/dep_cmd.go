package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/chronos/internal/cli/formatter"
	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/spf13/cobra"
)

func newDepCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dep",
		Short: "Manage dependencies between work items",
	}

	cmd.AddCommand(
		newDepAddCmd(app),
		newDepRemoveCmd(app),
		newDepCheckCmd(app),
	)

	return cmd
}

func newDepAddCmd(app *App) *cobra.Command {
	var project, from, to, depType string
	var lag int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Link a predecessor to a successor",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			predID, err := resolveWorkItemID(ctx, app, projectID, from)
			if err != nil {
				return err
			}
			succID, err := resolveWorkItemID(ctx, app, projectID, to)
			if err != nil {
				return err
			}

			parsed, err := domain.ParseDependencyType(depType)
			if err != nil {
				return err
			}
			d := &domain.Dependency{PredecessorID: predID, Type: parsed, LagDays: lag}
			if err := app.Dependencies.Add(ctx, succID, d); err != nil {
				return err
			}
			fmt.Printf("Added %s dependency %s -> %s\n", parsed, predID, succID)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project id or name")
	cmd.Flags().StringVar(&from, "from", "", "Predecessor work item")
	cmd.Flags().StringVar(&to, "to", "", "Successor work item")
	cmd.Flags().StringVar(&depType, "type", "FS", "Dependency type (FS, SS, FF, SF)")
	cmd.Flags().IntVar(&lag, "lag", 0, "Lag in days (may be negative)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newDepRemoveCmd(app *App) *cobra.Command {
	var project, from, to string

	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Remove a dependency",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			predID, err := resolveWorkItemID(ctx, app, projectID, from)
			if err != nil {
				return err
			}
			succID, err := resolveWorkItemID(ctx, app, projectID, to)
			if err != nil {
				return err
			}
			if err := app.Dependencies.Remove(ctx, succID, predID); err != nil {
				return err
			}
			fmt.Printf("Removed dependency %s -> %s\n", predID, succID)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project id or name")
	cmd.Flags().StringVar(&from, "from", "", "Predecessor work item")
	cmd.Flags().StringVar(&to, "to", "", "Successor work item")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newDepCheckCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report unresolvable or incomplete dependencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			findings, err := app.Dependencies.Check(ctx, projectID)
			if err != nil {
				return err
			}
			items, err := app.WorkItems.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatDiagnostics(findings, items))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project id or name")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
