package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(d time.Time) *time.Time { return &d }

// Predecessor used throughout: Mon Jan 6 .. Fri Jan 10, 2025.
func predecessor() *domain.WorkItem {
	return &domain.WorkItem{
		ID:        "pred",
		Name:      "Predecessor",
		StartDate: datePtr(Date(2025, time.January, 6)),
		EndDate:   datePtr(Date(2025, time.January, 10)),
	}
}

func resolvedWith(items ...*domain.WorkItem) map[string]*domain.WorkItem {
	m := make(map[string]*domain.WorkItem, len(items))
	for _, it := range items {
		m[it.ID] = it
	}
	return m
}

func TestEarliestStart_NoPredecessors(t *testing.T) {
	start := Date(2025, time.January, 6)
	withDate := &domain.WorkItem{ID: "a", StartDate: &start}
	assert.Equal(t, start, *EarliestStart(withDate, nil, false))

	withoutDate := &domain.WorkItem{ID: "b"}
	assert.Nil(t, EarliestStart(withoutDate, nil, false))
}

func TestEarliestStart_FinishToStart(t *testing.T) {
	cases := []struct {
		name string
		lag  int
		want time.Time
	}{
		{"zero lag", 0, Date(2025, time.January, 11)},
		{"positive lag", 2, Date(2025, time.January, 13)},
		{"lead", -1, Date(2025, time.January, 10)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			succ := &domain.WorkItem{
				ID:           "succ",
				Predecessors: []domain.Dependency{{PredecessorID: "pred", Type: domain.FinishToStart, LagDays: tc.lag}},
			}
			got := EarliestStart(succ, resolvedWith(predecessor()), false)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, *got)
		})
	}
}

func TestEarliestStart_UntypedEdgeDefaultsToFS(t *testing.T) {
	succ := &domain.WorkItem{
		ID:           "succ",
		Predecessors: []domain.Dependency{{PredecessorID: "pred"}},
	}
	got := EarliestStart(succ, resolvedWith(predecessor()), false)
	require.NotNil(t, got)
	assert.Equal(t, Date(2025, time.January, 11), *got)
}

func TestEarliestStart_StartToStart(t *testing.T) {
	succ := &domain.WorkItem{
		ID:           "succ",
		Predecessors: []domain.Dependency{{PredecessorID: "pred", Type: domain.StartToStart, LagDays: 3}},
	}
	got := EarliestStart(succ, resolvedWith(predecessor()), false)
	require.NotNil(t, got)
	assert.Equal(t, Date(2025, time.January, 9), *got)
}

func TestEarliestStart_FinishToFinish_BackComputesFromOwnDuration(t *testing.T) {
	// Successor spans 3 days inclusive; its end must meet the
	// predecessor's end, so its start lands two days earlier.
	succ := &domain.WorkItem{
		ID:           "succ",
		StartDate:    datePtr(Date(2025, time.February, 3)),
		EndDate:      datePtr(Date(2025, time.February, 5)),
		Predecessors: []domain.Dependency{{PredecessorID: "pred", Type: domain.FinishToFinish}},
	}
	got := EarliestStart(succ, resolvedWith(predecessor()), false)
	require.NotNil(t, got)
	assert.Equal(t, Date(2025, time.January, 8), *got)
}

func TestEarliestStart_FinishToFinish_UnscheduledSuccessorActsAsOneDay(t *testing.T) {
	succ := &domain.WorkItem{
		ID:           "succ",
		Predecessors: []domain.Dependency{{PredecessorID: "pred", Type: domain.FinishToFinish}},
	}
	got := EarliestStart(succ, resolvedWith(predecessor()), false)
	require.NotNil(t, got)
	assert.Equal(t, Date(2025, time.January, 10), *got, "one-day item finishes the day it starts")
}

func TestEarliestStart_StartToFinish(t *testing.T) {
	succ := &domain.WorkItem{
		ID:           "succ",
		StartDate:    datePtr(Date(2025, time.February, 3)),
		EndDate:      datePtr(Date(2025, time.February, 5)),
		Predecessors: []domain.Dependency{{PredecessorID: "pred", Type: domain.StartToFinish}},
	}
	got := EarliestStart(succ, resolvedWith(predecessor()), false)
	require.NotNil(t, got)
	assert.Equal(t, Date(2025, time.January, 4), *got, "successor end meets predecessor start")
}

func TestEarliestStart_LatestCandidateWins(t *testing.T) {
	early := &domain.WorkItem{
		ID:      "early",
		EndDate: datePtr(Date(2025, time.January, 10)),
	}
	late := &domain.WorkItem{
		ID:      "late",
		EndDate: datePtr(Date(2025, time.January, 20)),
	}
	succ := &domain.WorkItem{
		ID: "succ",
		Predecessors: []domain.Dependency{
			{PredecessorID: "early", Type: domain.FinishToStart},
			{PredecessorID: "late", Type: domain.FinishToStart},
		},
	}
	got := EarliestStart(succ, resolvedWith(early, late), false)
	require.NotNil(t, got)
	assert.Equal(t, Date(2025, time.January, 21), *got)
}

func TestEarliestStart_EdgesWithoutDataAreSkipped(t *testing.T) {
	noEnd := &domain.WorkItem{
		ID:        "noend",
		StartDate: datePtr(Date(2025, time.January, 6)),
	}
	succ := &domain.WorkItem{
		ID: "succ",
		Predecessors: []domain.Dependency{
			{PredecessorID: "noend", Type: domain.FinishToStart},
			{PredecessorID: "missing", Type: domain.FinishToStart},
		},
	}
	assert.Nil(t, EarliestStart(succ, resolvedWith(noEnd), false), "no edge could contribute")

	// The same item's SS edge can still contribute.
	succ.Predecessors = append(succ.Predecessors,
		domain.Dependency{PredecessorID: "noend", Type: domain.StartToStart, LagDays: 1})
	got := EarliestStart(succ, resolvedWith(noEnd), false)
	require.NotNil(t, got)
	assert.Equal(t, Date(2025, time.January, 7), *got)
}

func TestEarliestStart_SkipWeekends(t *testing.T) {
	// Predecessor ends Fri Jan 10; FS with lag 0 lands Mon Jan 13.
	succ := &domain.WorkItem{
		ID:           "succ",
		Predecessors: []domain.Dependency{{PredecessorID: "pred", Type: domain.FinishToStart}},
	}
	got := EarliestStart(succ, resolvedWith(predecessor()), true)
	require.NotNil(t, got)
	assert.Equal(t, Date(2025, time.January, 13), *got)
}
