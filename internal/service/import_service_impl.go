package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/chronos/internal/db"
	"github.com/alexanderramin/chronos/internal/importer"
	"github.com/alexanderramin/chronos/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

// ImportPlan loads, validates, converts, and persists a plan file. The
// whole import is one transaction; a failing insert rolls everything
// back.
func (s *importService) ImportPlan(ctx context.Context, filePath string) (*ImportResult, error) {
	var result *ImportResult
	err := observe(ctx, s.observer, "import.plan", map[string]any{"file": filePath}, func() error {
		var err error
		result, err = s.importPlan(ctx, filePath)
		return err
	})
	return result, err
}

func (s *importService) importPlan(ctx context.Context, filePath string) (*ImportResult, error) {
	plan, err := importer.LoadPlanFile(filePath)
	if err != nil {
		return nil, err
	}

	if errs := importer.ValidatePlanFile(plan); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("import file is invalid:\n  %s", strings.Join(msgs, "\n  "))
	}

	converted, err := importer.Convert(plan)
	if err != nil {
		return nil, err
	}

	depCount := 0
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProjects := repository.NewSQLiteProjectRepo(tx)
		txItems := repository.NewSQLiteWorkItemRepo(tx)
		txDeps := repository.NewSQLiteDependencyRepo(tx)

		if err := txProjects.Create(ctx, converted.Project); err != nil {
			return err
		}
		for _, w := range converted.WorkItems {
			if err := txItems.Create(ctx, w); err != nil {
				return err
			}
		}
		for _, w := range converted.WorkItems {
			for i := range w.Predecessors {
				if err := txDeps.Create(ctx, w.ID, &w.Predecessors[i]); err != nil {
					return err
				}
				depCount++
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("import failed, nothing was written: %w", err)
	}

	return &ImportResult{
		Project:         converted.Project,
		WorkItemCount:   len(converted.WorkItems),
		DependencyCount: depCount,
	}, nil
}
