package service

import (
	"context"

	"github.com/alexanderramin/chronos/internal/domain"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type WorkItemService interface {
	Create(ctx context.Context, w *domain.WorkItem) error
	GetByID(ctx context.Context, id string) (*domain.WorkItem, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.WorkItem, error)
	SetDates(ctx context.Context, id string, startDate, endDate string) error
	Update(ctx context.Context, w *domain.WorkItem) error
	Delete(ctx context.Context, id string) error
}

type DependencyService interface {
	// Add links predecessorID -> successorID. Self-edges and unknown
	// endpoints are rejected; endpoints in different projects too.
	Add(ctx context.Context, successorID string, d *domain.Dependency) error
	Remove(ctx context.Context, successorID, predecessorID string) error
	// Check returns the predecessor diagnostics for every item in the
	// project, keyed by work-item id. Items with no findings are absent.
	Check(ctx context.Context, projectID string) (map[string][]string, error)
}

// ScheduleRequest parameterizes one scheduling pass over a project.
type ScheduleRequest struct {
	ProjectID    string
	SkipWeekends bool
	// DryRun computes the changeset without persisting it.
	DryRun bool
}

// ScheduledChange reports one item's date movement. Dates are ISO
// (YYYY-MM-DD) strings; empty means unset.
type ScheduledChange struct {
	ID       string
	Name     string
	OldStart string
	OldEnd   string
	NewStart string
	NewEnd   string
}

// ScheduleResponse is the outcome of a scheduling pass.
type ScheduleResponse struct {
	ProjectID string
	DryRun    bool
	Changes   []ScheduledChange
	// CycleIDs lists items skipped because they sit on a dependency
	// cycle. A non-empty value is a warning, not a failure.
	CycleIDs []string
	// Warnings carries predecessor diagnostics gathered before the pass.
	Warnings []string
}

type ScheduleService interface {
	Reschedule(ctx context.Context, req ScheduleRequest) (*ScheduleResponse, error)
}

// ImportResult holds the outcome of a plan import.
type ImportResult struct {
	Project         *domain.Project
	WorkItemCount   int
	DependencyCount int
	Warnings        []string
}

type ImportService interface {
	ImportPlan(ctx context.Context, filePath string) (*ImportResult, error)
}
