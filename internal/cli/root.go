package cli

import (
	"github.com/alexanderramin/chronos/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects     service.ProjectService
	WorkItems    service.WorkItemService
	Dependencies service.DependencyService
	Schedule     service.ScheduleService
	Import       service.ImportService

	// SkipWeekends is the config default for the schedule command.
	SkipWeekends bool
}

// NewRootCmd creates the top-level "chronos" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "chronos",
		Short: "Dependency-driven date scheduler for project plans",
	}

	root.AddCommand(
		newProjectCmd(app),
		newItemCmd(app),
		newDepCmd(app),
		newScheduleCmd(app),
		newImportCmd(app),
	)

	return root
}
