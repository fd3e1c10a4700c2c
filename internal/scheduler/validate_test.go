package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePredecessors_AllGood(t *testing.T) {
	pred := predecessor()
	succ := &domain.WorkItem{ID: "succ", Name: "Succ",
		Predecessors: []domain.Dependency{
			{PredecessorID: "pred", Type: domain.FinishToStart},
			{PredecessorID: "pred", Type: domain.StartToStart},
		},
	}

	warnings := ValidatePredecessors(succ, []*domain.WorkItem{pred, succ})
	assert.Empty(t, warnings)
}

func TestValidatePredecessors_MissingPredecessor(t *testing.T) {
	succ := &domain.WorkItem{ID: "succ", Name: "Succ",
		Predecessors: []domain.Dependency{{PredecessorID: "ghost", Type: domain.FinishToStart}},
	}

	warnings := ValidatePredecessors(succ, []*domain.WorkItem{succ})
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "ghost")
	assert.Contains(t, warnings[0], "does not exist")
}

func TestValidatePredecessors_MissingEndDate(t *testing.T) {
	pred := &domain.WorkItem{ID: "pred", Name: "Pred",
		StartDate: datePtr(Date(2025, time.January, 6)),
	}
	succ := &domain.WorkItem{ID: "succ", Name: "Succ",
		Predecessors: []domain.Dependency{
			{PredecessorID: "pred", Type: domain.FinishToStart},
			{PredecessorID: "pred", Type: domain.FinishToFinish},
		},
	}

	warnings := ValidatePredecessors(succ, []*domain.WorkItem{pred, succ})
	require.Len(t, warnings, 2)
	for _, w := range warnings {
		assert.Contains(t, w, "end date")
		assert.Contains(t, w, "Pred")
	}
}

func TestValidatePredecessors_MissingStartDate(t *testing.T) {
	pred := &domain.WorkItem{ID: "pred", Name: "Pred",
		EndDate: datePtr(Date(2025, time.January, 10)),
	}
	succ := &domain.WorkItem{ID: "succ", Name: "Succ",
		Predecessors: []domain.Dependency{
			{PredecessorID: "pred", Type: domain.StartToStart},
			{PredecessorID: "pred", Type: domain.StartToFinish},
		},
	}

	warnings := ValidatePredecessors(succ, []*domain.WorkItem{pred, succ})
	require.Len(t, warnings, 2)
	for _, w := range warnings {
		assert.Contains(t, w, "start date")
	}
}

func TestValidatePredecessors_UntypedEdgeTreatedAsFS(t *testing.T) {
	pred := &domain.WorkItem{ID: "pred", Name: "Pred"}
	succ := &domain.WorkItem{ID: "succ", Name: "Succ",
		Predecessors: []domain.Dependency{{PredecessorID: "pred"}},
	}

	warnings := ValidatePredecessors(succ, []*domain.WorkItem{pred, succ})
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "FS")
}

func TestValidatePredecessors_NoEdges(t *testing.T) {
	succ := &domain.WorkItem{ID: "succ", Name: "Succ"}
	assert.Empty(t, ValidatePredecessors(succ, []*domain.WorkItem{succ}))
}
