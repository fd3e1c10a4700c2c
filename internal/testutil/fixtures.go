package testutil

import (
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/google/uuid"
)

// Project options
type ProjectOption func(*domain.Project)

func WithProjectStart(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.StartDate = &d
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WorkItem options
type WorkItemOption func(*domain.WorkItem)

func WithDates(start, end time.Time) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.StartDate = &start
		w.EndDate = &end
	}
}

func WithStartDate(d time.Time) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.StartDate = &d
	}
}

func WithEndDate(d time.Time) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.EndDate = &d
	}
}

func WithPredecessor(predID string, depType domain.DependencyType, lagDays int) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.Predecessors = append(w.Predecessors, domain.Dependency{
			PredecessorID: predID,
			Type:          depType,
			LagDays:       lagDays,
		})
	}
}

func NewTestWorkItem(projectID, name string, opts ...WorkItemOption) *domain.WorkItem {
	now := time.Now().UTC()
	w := &domain.WorkItem{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Day builds a date-only value at UTC midnight, the representation used
// for all scheduling dates.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
