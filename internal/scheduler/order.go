package scheduler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/chronos/internal/domain"
)

// CyclicDependencyError reports the work items left unordered because
// they sit on at least one dependency cycle.
type CyclicDependencyError struct {
	IDs []string
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("dependency cycle involving %d work item(s): %s",
		len(e.IDs), strings.Join(e.IDs, ", "))
}

// Order returns the items in topological order: every resolvable
// predecessor appears before its successors. Edges pointing at ids not
// present in items are ignored; they constrain nothing.
//
// Ordering uses Kahn's algorithm, so cycles surface as the set of items
// whose in-degree never reached zero. Those items are excluded from the
// returned order and their sorted ids are returned separately.
func Order(items []*domain.WorkItem) (ordered []*domain.WorkItem, cyclic []string) {
	byID := make(map[string]*domain.WorkItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	inDegree := make(map[string]int, len(items))
	successors := make(map[string][]string, len(items))
	for _, it := range items {
		inDegree[it.ID] += 0
		for _, dep := range it.Predecessors {
			if _, known := byID[dep.PredecessorID]; !known {
				continue
			}
			inDegree[it.ID]++
			successors[dep.PredecessorID] = append(successors[dep.PredecessorID], it.ID)
		}
	}

	// Seed with in-degree-zero items, sorted for determinism.
	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	ordered = make([]*domain.WorkItem, 0, len(items))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		ordered = append(ordered, byID[id])

		var ready []string
		for _, succ := range successors[id] {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				ready = append(ready, succ)
			}
		}
		sort.Strings(ready)
		queue = append(queue, ready...)
	}

	if len(ordered) != len(items) {
		for id, deg := range inDegree {
			if deg > 0 {
				cyclic = append(cyclic, id)
			}
		}
		sort.Strings(cyclic)
	}
	return ordered, cyclic
}
