package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/repository"
	"github.com/alexanderramin/chronos/internal/scheduler"
	"github.com/google/uuid"
)

type workItemService struct {
	workItems repository.WorkItemRepo
	projects  repository.ProjectRepo
}

func NewWorkItemService(workItems repository.WorkItemRepo, projects repository.ProjectRepo) WorkItemService {
	return &workItemService{workItems: workItems, projects: projects}
}

func (s *workItemService) Create(ctx context.Context, w *domain.WorkItem) error {
	if _, err := s.projects.GetByID(ctx, w.ProjectID); err != nil {
		return fmt.Errorf("work item project: %w", err)
	}
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	w.CreatedAt = now
	w.UpdatedAt = now
	return s.workItems.Create(ctx, w)
}

func (s *workItemService) GetByID(ctx context.Context, id string) (*domain.WorkItem, error) {
	return s.workItems.GetByID(ctx, id)
}

func (s *workItemService) ListByProject(ctx context.Context, projectID string) ([]*domain.WorkItem, error) {
	return s.workItems.ListByProject(ctx, projectID)
}

// SetDates parses and stores the given ISO dates. An empty string clears
// the corresponding date.
func (s *workItemService) SetDates(ctx context.Context, id string, startDate, endDate string) error {
	w, err := s.workItems.GetByID(ctx, id)
	if err != nil {
		return err
	}

	w.StartDate = nil
	if startDate != "" {
		w.StartDate = scheduler.ParseDate(startDate)
		if w.StartDate == nil {
			return fmt.Errorf("invalid start date %q (want YYYY-MM-DD)", startDate)
		}
	}
	w.EndDate = nil
	if endDate != "" {
		w.EndDate = scheduler.ParseDate(endDate)
		if w.EndDate == nil {
			return fmt.Errorf("invalid end date %q (want YYYY-MM-DD)", endDate)
		}
	}
	if w.StartDate != nil && w.EndDate != nil && w.EndDate.Before(*w.StartDate) {
		return fmt.Errorf("end date %s is before start date %s", endDate, startDate)
	}

	w.UpdatedAt = time.Now().UTC()
	return s.workItems.UpdateDates(ctx, id, w)
}

func (s *workItemService) Update(ctx context.Context, w *domain.WorkItem) error {
	w.UpdatedAt = time.Now().UTC()
	return s.workItems.Update(ctx, w)
}

func (s *workItemService) Delete(ctx context.Context, id string) error {
	if _, err := s.workItems.GetByID(ctx, id); err != nil {
		return err
	}
	return s.workItems.Delete(ctx, id)
}
