package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/chronos/internal/repository"
	"github.com/alexanderramin/chronos/internal/service"
	"github.com/alexanderramin/chronos/internal/testutil"
)

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportService_ImportPlan(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := service.NewImportService(testutil.NewTestUoW(database))
	ctx := context.Background()

	path := writePlan(t, `{
		"project": {"name": "Shed", "start_date": "2025-06-02"},
		"work_items": [
			{"ref": "base", "name": "Lay base", "start_date": "2025-06-02", "end_date": "2025-06-04"},
			{"ref": "walls", "name": "Raise walls"},
			{"ref": "roof", "name": "Fit roof"}
		],
		"dependencies": [
			{"predecessor_ref": "base", "successor_ref": "walls"},
			{"predecessor_ref": "walls", "successor_ref": "roof", "type": "SS", "lag_days": 2}
		]
	}`)

	result, err := svc.ImportPlan(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 3, result.WorkItemCount)
	assert.Equal(t, 2, result.DependencyCount)

	items, err := repository.NewSQLiteWorkItemRepo(database).ListByProject(ctx, result.Project.ID)
	require.NoError(t, err)
	assert.Len(t, items, 3)

	edgeCount := 0
	for _, w := range items {
		edgeCount += len(w.Predecessors)
	}
	assert.Equal(t, 2, edgeCount)
}

func TestImportService_ImportPlan_InvalidFileWritesNothing(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := service.NewImportService(testutil.NewTestUoW(database))
	ctx := context.Background()

	path := writePlan(t, `{
		"project": {"name": ""},
		"work_items": [{"ref": "a", "name": "A"}],
		"dependencies": [{"predecessor_ref": "a", "successor_ref": "a"}]
	}`)

	_, err := svc.ImportPlan(ctx, path)
	require.ErrorContains(t, err, "import file is invalid")

	projects, err := repository.NewSQLiteProjectRepo(database).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestImportService_ImportPlan_MissingFile(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := service.NewImportService(testutil.NewTestUoW(database))

	_, err := svc.ImportPlan(context.Background(), filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestImportService_ImportedPlanIsSchedulable(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	importSvc := service.NewImportService(uow)
	projects := repository.NewSQLiteProjectRepo(database)
	items := repository.NewSQLiteWorkItemRepo(database)
	scheduleSvc := service.NewScheduleService(projects, items, uow)
	ctx := context.Background()

	path := writePlan(t, `{
		"project": {"name": "Shed", "start_date": "2025-06-02"},
		"work_items": [
			{"ref": "base", "name": "Lay base", "start_date": "2025-06-02", "end_date": "2025-06-04"},
			{"ref": "walls", "name": "Raise walls"}
		],
		"dependencies": [
			{"predecessor_ref": "base", "successor_ref": "walls"}
		]
	}`)

	result, err := importSvc.ImportPlan(ctx, path)
	require.NoError(t, err)

	resp, err := scheduleSvc.Reschedule(ctx, service.ScheduleRequest{ProjectID: result.Project.ID})
	require.NoError(t, err)
	require.Len(t, resp.Changes, 1)
	assert.Equal(t, "2025-06-05", resp.Changes[0].NewStart)
}
