package scheduler

import (
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
)

// EarliestStart computes the earliest feasible start date for item
// given the already-resolved work items in resolved. Items with no
// predecessors keep their own start date (nil if unscheduled). With
// predecessors, each edge yields a candidate and the latest candidate
// wins; a later-dated predecessor is the more restrictive one.
//
// Edges are skipped, never fatal, when the predecessor is unknown or
// lacks the date its dependency type constrains against. Returns nil
// when no edge could produce a candidate.
func EarliestStart(item *domain.WorkItem, resolved map[string]*domain.WorkItem, skipWeekends bool) *time.Time {
	if len(item.Predecessors) == 0 {
		if item.StartDate == nil {
			return nil
		}
		d := *item.StartDate
		return &d
	}

	var best *time.Time
	for _, dep := range item.Predecessors {
		pred := resolved[dep.PredecessorID]
		if pred == nil {
			continue
		}
		c := candidate(item, pred, dep, skipWeekends)
		if c == nil {
			continue
		}
		if best == nil || c.After(*best) {
			best = c
		}
	}
	return best
}

// candidate applies one edge's arithmetic. FF and SF back-compute the
// successor's start from its own inclusive duration so that its end,
// not its start, meets the constraint.
func candidate(item, pred *domain.WorkItem, dep domain.Dependency, skipWeekends bool) *time.Time {
	dt := dep.Type
	if dt == "" {
		dt = domain.FinishToStart
	}

	var base *time.Time
	var offset int
	switch dt {
	case domain.FinishToStart:
		base = pred.EndDate
		offset = 1 + dep.LagDays
	case domain.StartToStart:
		base = pred.StartDate
		offset = dep.LagDays
	case domain.FinishToFinish:
		base = pred.EndDate
		offset = dep.LagDays - inclusiveDuration(item, skipWeekends) + 1
	case domain.StartToFinish:
		base = pred.StartDate
		offset = dep.LagDays - inclusiveDuration(item, skipWeekends) + 1
	default:
		return nil
	}
	if base == nil {
		return nil
	}

	d := AddDays(*base, offset, skipWeekends)
	return &d
}

// inclusiveDuration is the item's own span counted in days with both
// endpoints included, clamped to a minimum of one day so an unscheduled
// or zero-length item behaves as a one-day item. The span is measured
// with the same weekend flag used to project it.
func inclusiveDuration(item *domain.WorkItem, skipWeekends bool) int {
	d := DurationDays(item.StartDate, item.EndDate, skipWeekends) + 1
	if d < 1 {
		return 1
	}
	return d
}
