package scheduler

import (
	"testing"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id string, preds ...domain.Dependency) *domain.WorkItem {
	return &domain.WorkItem{ID: id, Name: id, Predecessors: preds}
}

func fs(predID string) domain.Dependency {
	return domain.Dependency{PredecessorID: predID, Type: domain.FinishToStart}
}

func position(t *testing.T, ordered []*domain.WorkItem, id string) int {
	t.Helper()
	for i, it := range ordered {
		if it.ID == id {
			return i
		}
	}
	t.Fatalf("item %s not in order", id)
	return -1
}

func TestOrder_PredecessorsComeFirst(t *testing.T) {
	items := []*domain.WorkItem{
		item("c", fs("b")),
		item("a"),
		item("b", fs("a")),
	}

	ordered, cyclic := Order(items)

	require.Empty(t, cyclic)
	require.Len(t, ordered, 3)
	assert.Less(t, position(t, ordered, "a"), position(t, ordered, "b"))
	assert.Less(t, position(t, ordered, "b"), position(t, ordered, "c"))
}

func TestOrder_Diamond(t *testing.T) {
	items := []*domain.WorkItem{
		item("d", fs("b"), fs("c")),
		item("b", fs("a")),
		item("c", fs("a")),
		item("a"),
	}

	ordered, cyclic := Order(items)

	require.Empty(t, cyclic)
	require.Len(t, ordered, 4)
	assert.Less(t, position(t, ordered, "a"), position(t, ordered, "b"))
	assert.Less(t, position(t, ordered, "a"), position(t, ordered, "c"))
	assert.Less(t, position(t, ordered, "b"), position(t, ordered, "d"))
	assert.Less(t, position(t, ordered, "c"), position(t, ordered, "d"))
}

func TestOrder_UnknownPredecessorIgnored(t *testing.T) {
	items := []*domain.WorkItem{
		item("a", fs("ghost")),
		item("b", fs("a")),
	}

	ordered, cyclic := Order(items)

	require.Empty(t, cyclic)
	require.Len(t, ordered, 2)
	assert.Equal(t, "a", ordered[0].ID)
	assert.Equal(t, "b", ordered[1].ID)
}

func TestOrder_CycleReported(t *testing.T) {
	items := []*domain.WorkItem{
		item("a", fs("b")),
		item("b", fs("a")),
		item("c"),
		item("d", fs("c")),
	}

	ordered, cyclic := Order(items)

	assert.Equal(t, []string{"a", "b"}, cyclic)
	require.Len(t, ordered, 2, "acyclic portion is still ordered")
	assert.Equal(t, "c", ordered[0].ID)
	assert.Equal(t, "d", ordered[1].ID)
}

func TestOrder_SelfCycle(t *testing.T) {
	items := []*domain.WorkItem{
		item("a", fs("a")),
		item("b"),
	}

	ordered, cyclic := Order(items)

	assert.Equal(t, []string{"a"}, cyclic)
	require.Len(t, ordered, 1)
	assert.Equal(t, "b", ordered[0].ID)
}

func TestOrder_Deterministic(t *testing.T) {
	items := []*domain.WorkItem{
		item("z"), item("m"), item("a"),
		item("k", fs("z"), fs("m")),
	}

	first, _ := Order(items)
	for i := 0; i < 10; i++ {
		again, _ := Order(items)
		require.Equal(t, len(first), len(again))
		for j := range first {
			assert.Equal(t, first[j].ID, again[j].ID)
		}
	}
}

func TestOrder_Empty(t *testing.T) {
	ordered, cyclic := Order(nil)
	assert.Empty(t, ordered)
	assert.Empty(t, cyclic)
}

func TestCyclicDependencyError_Message(t *testing.T) {
	err := &CyclicDependencyError{IDs: []string{"a", "b"}}
	assert.Contains(t, err.Error(), "2 work item(s)")
	assert.Contains(t, err.Error(), "a, b")
}
