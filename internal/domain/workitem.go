package domain

import "time"

// WorkItem is the schedulable unit. Dates are date-only values held at
// UTC midnight; a nil date means the item is unscheduled. Predecessors
// is the ordered list of edges owned by this item (the successor
// references its predecessors, not the reverse).
type WorkItem struct {
	ID        string
	ProjectID string
	Name      string

	StartDate *time.Time
	EndDate   *time.Time

	Predecessors []Dependency

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a deep copy. The scheduler mutates working copies only,
// never caller-owned items.
func (w *WorkItem) Clone() *WorkItem {
	c := *w
	if w.StartDate != nil {
		d := *w.StartDate
		c.StartDate = &d
	}
	if w.EndDate != nil {
		d := *w.EndDate
		c.EndDate = &d
	}
	c.Predecessors = make([]Dependency, len(w.Predecessors))
	copy(c.Predecessors, w.Predecessors)
	return &c
}
