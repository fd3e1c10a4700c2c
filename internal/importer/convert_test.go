package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/chronos/internal/domain"
)

func TestConvert_BuildsDomainObjects(t *testing.T) {
	plan := validPlan()
	converted, err := Convert(plan)
	require.NoError(t, err)

	p := converted.Project
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Garage build", p.Name)
	require.NotNil(t, p.StartDate)
	assert.Equal(t, "2025-03-01", p.StartDate.Format("2006-01-02"))

	require.Len(t, converted.WorkItems, 2)
	foundation := converted.WorkItems[0]
	framing := converted.WorkItems[1]
	assert.Equal(t, p.ID, foundation.ProjectID)
	assert.NotEqual(t, foundation.ID, framing.ID)
	require.NotNil(t, foundation.StartDate)
	assert.Equal(t, "2025-03-03", foundation.StartDate.Format("2006-01-02"))
	assert.Nil(t, framing.StartDate)

	require.Len(t, framing.Predecessors, 1)
	edge := framing.Predecessors[0]
	assert.Equal(t, foundation.ID, edge.PredecessorID)
	assert.Equal(t, domain.FinishToStart, edge.Type)
	assert.Equal(t, 2, edge.LagDays)
	assert.Empty(t, foundation.Predecessors)
}

func TestConvert_UntypedEdgeDefaultsToFinishToStart(t *testing.T) {
	plan := validPlan()
	plan.Dependencies[0].Type = ""
	converted, err := Convert(plan)
	require.NoError(t, err)
	require.Len(t, converted.WorkItems[1].Predecessors, 1)
	assert.Equal(t, domain.FinishToStart, converted.WorkItems[1].Predecessors[0].Type)
}

func TestConvert_NoProjectStartDate(t *testing.T) {
	plan := validPlan()
	plan.Project.StartDate = ""
	converted, err := Convert(plan)
	require.NoError(t, err)
	assert.Nil(t, converted.Project.StartDate)
}
