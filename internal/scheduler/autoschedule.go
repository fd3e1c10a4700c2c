package scheduler

import (
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
)

// Options configures one scheduling pass.
type Options struct {
	// SkipWeekends makes all date arithmetic count Monday-Friday only.
	SkipWeekends bool
	// ProjectStartDate is the fallback start for items with zero
	// predecessors and no start date of their own.
	ProjectStartDate *time.Time
}

// Change is one date mutation the caller should persist.
type Change struct {
	ID        string
	StartDate *time.Time
	EndDate   *time.Time
}

// Result is the outcome of one pass: the changeset in processing
// (topological) order, plus the ids of items skipped because they sit
// on a dependency cycle.
type Result struct {
	Changes []Change
	Cyclic  []string
}

// AutoSchedule runs one deterministic forward pass over the items and
// returns the date mutations needed to satisfy every predecessor
// constraint. It never performs I/O and never mutates the input; the
// pass works on a transient copy keyed by id so items scheduled early
// in the pass are visible as updated predecessors to later ones.
//
// Items that cannot be scheduled (no usable data on any incoming edge)
// are left alone rather than failing the pass. When the graph contains
// a cycle the acyclic portion is still scheduled and the returned error
// is a *CyclicDependencyError naming the skipped items; the partial
// result remains valid.
func AutoSchedule(items []*domain.WorkItem, opts Options) (*Result, error) {
	working := make(map[string]*domain.WorkItem, len(items))
	for _, it := range items {
		working[it.ID] = it.Clone()
	}

	ordered, cyclic := Order(items)

	result := &Result{Cyclic: cyclic}
	for _, orig := range ordered {
		item := working[orig.ID]

		// A root with a stored start date is user-set and authoritative.
		if len(item.Predecessors) == 0 && item.StartDate != nil {
			continue
		}

		newStart := EarliestStart(item, working, opts.SkipWeekends)
		if newStart == nil && len(item.Predecessors) == 0 {
			newStart = opts.ProjectStartDate
		}
		if newStart == nil {
			continue
		}

		// End follows from the pre-pass duration; the engine preserves
		// durations, never deadlines.
		newEnd := ProjectEnd(*newStart, item.StartDate, item.EndDate, opts.SkipWeekends)

		if sameDate(newStart, item.StartDate) && sameDate(&newEnd, item.EndDate) {
			continue
		}

		s := *newStart
		e := newEnd
		item.StartDate = &s
		item.EndDate = &e
		result.Changes = append(result.Changes, Change{ID: item.ID, StartDate: &s, EndDate: &e})
	}

	if len(cyclic) > 0 {
		return result, &CyclicDependencyError{IDs: cyclic}
	}
	return result, nil
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
