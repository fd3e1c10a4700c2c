package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/repository"
	"github.com/alexanderramin/chronos/internal/scheduler"
)

type dependencyService struct {
	deps      repository.DependencyRepo
	workItems repository.WorkItemRepo
}

func NewDependencyService(deps repository.DependencyRepo, workItems repository.WorkItemRepo) DependencyService {
	return &dependencyService{deps: deps, workItems: workItems}
}

func (s *dependencyService) Add(ctx context.Context, successorID string, d *domain.Dependency) error {
	if successorID == d.PredecessorID {
		return fmt.Errorf("a work item cannot depend on itself")
	}

	succ, err := s.workItems.GetByID(ctx, successorID)
	if err != nil {
		return fmt.Errorf("successor: %w", err)
	}
	pred, err := s.workItems.GetByID(ctx, d.PredecessorID)
	if err != nil {
		return fmt.Errorf("predecessor: %w", err)
	}
	if succ.ProjectID != pred.ProjectID {
		return fmt.Errorf("work items %s and %s belong to different projects", successorID, d.PredecessorID)
	}

	if d.Type == "" {
		d.Type = domain.FinishToStart
	} else if _, err := domain.ParseDependencyType(string(d.Type)); err != nil {
		return err
	}

	return s.deps.Create(ctx, successorID, d)
}

func (s *dependencyService) Remove(ctx context.Context, successorID, predecessorID string) error {
	existing, err := s.deps.ListBySuccessor(ctx, successorID)
	if err != nil {
		return err
	}
	for _, d := range existing {
		if d.PredecessorID == predecessorID {
			return s.deps.Delete(ctx, successorID, predecessorID)
		}
	}
	return fmt.Errorf("dependency %s -> %s: %w", predecessorID, successorID, repository.ErrNotFound)
}

func (s *dependencyService) Check(ctx context.Context, projectID string) (map[string][]string, error) {
	items, err := s.workItems.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	findings := make(map[string][]string)
	for _, item := range items {
		if warnings := scheduler.ValidatePredecessors(item, items); len(warnings) > 0 {
			findings[item.ID] = warnings
		}
	}
	return findings, nil
}
