package scheduler

import (
	"fmt"

	"github.com/alexanderramin/chronos/internal/domain"
)

// ValidatePredecessors checks, for display purposes only, whether each
// of an item's predecessors carries the date field its dependency type
// constrains against. It returns human-readable warnings and performs
// no mutation; the scheduler tolerates all of these conditions by
// skipping the affected edge.
func ValidatePredecessors(item *domain.WorkItem, items []*domain.WorkItem) []string {
	byID := make(map[string]*domain.WorkItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	var warnings []string
	for _, dep := range item.Predecessors {
		pred := byID[dep.PredecessorID]
		if pred == nil {
			warnings = append(warnings,
				fmt.Sprintf("%s: predecessor %s does not exist; the edge is ignored",
					item.Name, dep.PredecessorID))
			continue
		}
		dt := dep.Type
		if dt == "" {
			dt = domain.FinishToStart
		}
		edge := domain.Dependency{PredecessorID: dep.PredecessorID, Type: dt, LagDays: dep.LagDays}
		switch {
		case edge.NeedsPredecessorEnd() && pred.EndDate == nil:
			warnings = append(warnings,
				fmt.Sprintf("%s: %s dependency on %q needs an end date on the predecessor, but it has none",
					item.Name, dt, pred.Name))
		case !edge.NeedsPredecessorEnd() && pred.StartDate == nil:
			warnings = append(warnings,
				fmt.Sprintf("%s: %s dependency on %q needs a start date on the predecessor, but it has none",
					item.Name, dt, pred.Name))
		}
	}
	return warnings
}
