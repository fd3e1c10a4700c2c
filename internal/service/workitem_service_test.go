package service_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/repository"
	"github.com/alexanderramin/chronos/internal/service"
	"github.com/alexanderramin/chronos/internal/testutil"
)

func newWorkItemService(t *testing.T) (service.WorkItemService, *sql.DB, *domain.Project) {
	t.Helper()
	database := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(database)
	svc := service.NewWorkItemService(repository.NewSQLiteWorkItemRepo(database), projects)

	p := testutil.NewTestProject("Workshop")
	require.NoError(t, projects.Create(context.Background(), p))
	return svc, database, p
}

func TestWorkItemService_CreateRequiresExistingProject(t *testing.T) {
	svc, _, _ := newWorkItemService(t)

	w := &domain.WorkItem{ProjectID: "no-such-project", Name: "Orphan"}
	err := svc.Create(context.Background(), w)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestWorkItemService_CreateAssignsIdentity(t *testing.T) {
	svc, _, p := newWorkItemService(t)
	ctx := context.Background()

	w := &domain.WorkItem{ProjectID: p.ID, Name: "Build bench"}
	require.NoError(t, svc.Create(ctx, w))
	assert.NotEmpty(t, w.ID)

	got, err := svc.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, "Build bench", got.Name)
}

func TestWorkItemService_SetDates(t *testing.T) {
	svc, _, p := newWorkItemService(t)
	ctx := context.Background()

	w := &domain.WorkItem{ProjectID: p.ID, Name: "Sand surfaces"}
	require.NoError(t, svc.Create(ctx, w))

	require.NoError(t, svc.SetDates(ctx, w.ID, "2025-04-07", "2025-04-09"))

	got, err := svc.GetByID(ctx, w.ID)
	require.NoError(t, err)
	require.NotNil(t, got.StartDate)
	require.NotNil(t, got.EndDate)
	assert.Equal(t, "2025-04-07", got.StartDate.Format("2006-01-02"))
	assert.Equal(t, "2025-04-09", got.EndDate.Format("2006-01-02"))
}

func TestWorkItemService_SetDatesClearsWithEmptyString(t *testing.T) {
	svc, _, p := newWorkItemService(t)
	ctx := context.Background()

	w := &domain.WorkItem{ProjectID: p.ID, Name: "Varnish"}
	require.NoError(t, svc.Create(ctx, w))
	require.NoError(t, svc.SetDates(ctx, w.ID, "2025-04-07", "2025-04-09"))

	require.NoError(t, svc.SetDates(ctx, w.ID, "", ""))

	got, err := svc.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Nil(t, got.StartDate)
	assert.Nil(t, got.EndDate)
}

func TestWorkItemService_SetDatesRejectsBadInput(t *testing.T) {
	svc, _, p := newWorkItemService(t)
	ctx := context.Background()

	w := &domain.WorkItem{ProjectID: p.ID, Name: "Paint"}
	require.NoError(t, svc.Create(ctx, w))

	assert.ErrorContains(t, svc.SetDates(ctx, w.ID, "07/04/2025", ""), "invalid start date")
	assert.ErrorContains(t, svc.SetDates(ctx, w.ID, "", "yesterday"), "invalid end date")
	assert.ErrorContains(t, svc.SetDates(ctx, w.ID, "2025-04-09", "2025-04-07"), "before start date")
}
