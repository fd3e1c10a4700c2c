package domain

import "time"

// Project groups work items and optionally supplies a fallback start
// date for items with no predecessors and no date of their own.
type Project struct {
	ID        string
	Name      string
	StartDate *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
