package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/chronos/internal/db"
	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/repository"
	"github.com/alexanderramin/chronos/internal/scheduler"
)

type scheduleService struct {
	projects  repository.ProjectRepo
	workItems repository.WorkItemRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewScheduleService(projects repository.ProjectRepo, workItems repository.WorkItemRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ScheduleService {
	return &scheduleService{
		projects:  projects,
		workItems: workItems,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Reschedule loads the project's items, runs one forward pass, and
// persists the resulting changeset in a single transaction. A cycle in
// the graph degrades to a warning: the acyclic portion is still
// scheduled and the cyclic ids are reported on the response.
func (s *scheduleService) Reschedule(ctx context.Context, req ScheduleRequest) (*ScheduleResponse, error) {
	var resp *ScheduleResponse
	err := observe(ctx, s.observer, "schedule.reschedule", map[string]any{
		"project_id": req.ProjectID,
		"dry_run":    req.DryRun,
	}, func() error {
		var err error
		resp, err = s.reschedule(ctx, req)
		return err
	})
	return resp, err
}

func (s *scheduleService) reschedule(ctx context.Context, req ScheduleRequest) (*ScheduleResponse, error) {
	project, err := s.projects.GetByID(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	items, err := s.workItems.ListByProject(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	resp := &ScheduleResponse{ProjectID: req.ProjectID, DryRun: req.DryRun}
	for _, item := range items {
		resp.Warnings = append(resp.Warnings, scheduler.ValidatePredecessors(item, items)...)
	}

	result, err := scheduler.AutoSchedule(items, scheduler.Options{
		SkipWeekends:     req.SkipWeekends,
		ProjectStartDate: project.StartDate,
	})
	if err != nil {
		var cycleErr *scheduler.CyclicDependencyError
		if !errors.As(err, &cycleErr) {
			return nil, err
		}
		resp.CycleIDs = cycleErr.IDs
	}

	byID := make(map[string]*domain.WorkItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	for _, c := range result.Changes {
		orig := byID[c.ID]
		resp.Changes = append(resp.Changes, ScheduledChange{
			ID:       c.ID,
			Name:     orig.Name,
			OldStart: formatDatePtr(orig.StartDate),
			OldEnd:   formatDatePtr(orig.EndDate),
			NewStart: formatDatePtr(c.StartDate),
			NewEnd:   formatDatePtr(c.EndDate),
		})
	}

	if req.DryRun || len(result.Changes) == 0 {
		return resp, nil
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txItems := repository.NewSQLiteWorkItemRepo(tx)
		now := time.Now().UTC()
		for _, c := range result.Changes {
			w := byID[c.ID]
			w.StartDate = c.StartDate
			w.EndDate = c.EndDate
			w.UpdatedAt = now
			if err := txItems.UpdateDates(ctx, c.ID, w); err != nil {
				return fmt.Errorf("persisting dates for %s: %w", c.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func formatDatePtr(d *time.Time) string {
	if d == nil {
		return ""
	}
	return scheduler.FormatDate(*d)
}
