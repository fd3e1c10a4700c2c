package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/chronos/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type WorkItemRepo interface {
	Create(ctx context.Context, w *domain.WorkItem) error
	GetByID(ctx context.Context, id string) (*domain.WorkItem, error)
	// ListByProject returns the project's items with their predecessor
	// edges hydrated, in creation order.
	ListByProject(ctx context.Context, projectID string) ([]*domain.WorkItem, error)
	// UpdateDates persists only the two date columns; the scheduler's
	// changeset never touches anything else.
	UpdateDates(ctx context.Context, id string, w *domain.WorkItem) error
	Update(ctx context.Context, w *domain.WorkItem) error
	Delete(ctx context.Context, id string) error
}

type DependencyRepo interface {
	Create(ctx context.Context, successorID string, d *domain.Dependency) error
	Delete(ctx context.Context, successorID, predecessorID string) error
	// ListBySuccessor returns the edges owned by a work item in their
	// declared (position) order.
	ListBySuccessor(ctx context.Context, successorID string) ([]domain.Dependency, error)
	ListByProject(ctx context.Context, projectID string) (map[string][]domain.Dependency, error)
}
