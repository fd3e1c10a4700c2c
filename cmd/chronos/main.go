package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/chronos/internal/cli"
	"github.com/alexanderramin/chronos/internal/cli/formatter"
	"github.com/alexanderramin/chronos/internal/config"
	"github.com/alexanderramin/chronos/internal/db"
	"github.com/alexanderramin/chronos/internal/repository"
	"github.com/alexanderramin/chronos/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return err
	}

	switch cfg.Color {
	case "never":
		formatter.DisableColor()
	case "auto":
		if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			formatter.DisableColor()
		}
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	projectRepo := repository.NewSQLiteProjectRepo(database)
	workItemRepo := repository.NewSQLiteWorkItemRepo(database)
	depRepo := repository.NewSQLiteDependencyRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if os.Getenv("CHRONOS_LOG") == "1" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Projects:     service.NewProjectService(projectRepo),
		WorkItems:    service.NewWorkItemService(workItemRepo, projectRepo),
		Dependencies: service.NewDependencyService(depRepo, workItemRepo),
		Schedule:     service.NewScheduleService(projectRepo, workItemRepo, uow, observers...),
		Import:       service.NewImportService(uow, observers...),
		SkipWeekends: cfg.SkipWeekends,
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
