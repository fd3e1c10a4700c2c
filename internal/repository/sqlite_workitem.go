package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/chronos/internal/db"
	"github.com/alexanderramin/chronos/internal/domain"
)

// workItemColumns is the canonical SELECT column list for work_items.
const workItemColumns = `id, project_id, name, start_date, end_date, created_at, updated_at`

// SQLiteWorkItemRepo implements WorkItemRepo using a SQLite database.
type SQLiteWorkItemRepo struct {
	db db.DBTX
}

// NewSQLiteWorkItemRepo creates a new SQLiteWorkItemRepo.
func NewSQLiteWorkItemRepo(conn db.DBTX) *SQLiteWorkItemRepo {
	return &SQLiteWorkItemRepo{db: conn}
}

func (r *SQLiteWorkItemRepo) Create(ctx context.Context, w *domain.WorkItem) error {
	query := `INSERT INTO work_items (` + workItemColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		w.ID,
		w.ProjectID,
		w.Name,
		nullableTimeToString(w.StartDate, dateLayout),
		nullableTimeToString(w.EndDate, dateLayout),
		w.CreatedAt.Format(time.RFC3339),
		w.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting work item: %w", err)
	}
	return nil
}

func (r *SQLiteWorkItemRepo) GetByID(ctx context.Context, id string) (*domain.WorkItem, error) {
	query := `SELECT ` + workItemColumns + ` FROM work_items WHERE id = ?`
	w, err := r.scanWorkItem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	deps := NewSQLiteDependencyRepo(r.db)
	w.Predecessors, err = deps.ListBySuccessor(ctx, w.ID)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (r *SQLiteWorkItemRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.WorkItem, error) {
	query := `SELECT ` + workItemColumns + ` FROM work_items WHERE project_id = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing work items by project: %w", err)
	}
	defer rows.Close()

	items, err := r.scanWorkItems(rows)
	if err != nil {
		return nil, err
	}

	edges, err := NewSQLiteDependencyRepo(r.db).ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	for _, w := range items {
		w.Predecessors = edges[w.ID]
	}
	return items, nil
}

func (r *SQLiteWorkItemRepo) UpdateDates(ctx context.Context, id string, w *domain.WorkItem) error {
	query := `UPDATE work_items SET start_date = ?, end_date = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		nullableTimeToString(w.StartDate, dateLayout),
		nullableTimeToString(w.EndDate, dateLayout),
		w.UpdatedAt.Format(time.RFC3339),
		id,
	)
	if err != nil {
		return fmt.Errorf("updating work item dates: %w", err)
	}
	return nil
}

func (r *SQLiteWorkItemRepo) Update(ctx context.Context, w *domain.WorkItem) error {
	query := `UPDATE work_items SET name = ?, start_date = ?, end_date = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		w.Name,
		nullableTimeToString(w.StartDate, dateLayout),
		nullableTimeToString(w.EndDate, dateLayout),
		w.UpdatedAt.Format(time.RFC3339),
		w.ID,
	)
	if err != nil {
		return fmt.Errorf("updating work item: %w", err)
	}
	return nil
}

func (r *SQLiteWorkItemRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM work_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting work item: %w", err)
	}
	return nil
}

func (r *SQLiteWorkItemRepo) scanWorkItem(row *sql.Row) (*domain.WorkItem, error) {
	var w domain.WorkItem
	var startDateStr, endDateStr sql.NullString
	var createdAtStr, updatedAtStr string
	err := row.Scan(&w.ID, &w.ProjectID, &w.Name, &startDateStr, &endDateStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("work item: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning work item: %w", err)
	}
	if err := populateWorkItem(&w, startDateStr, endDateStr, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *SQLiteWorkItemRepo) scanWorkItems(rows *sql.Rows) ([]*domain.WorkItem, error) {
	var items []*domain.WorkItem
	for rows.Next() {
		var w domain.WorkItem
		var startDateStr, endDateStr sql.NullString
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&w.ID, &w.ProjectID, &w.Name, &startDateStr, &endDateStr, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning work item row: %w", err)
		}
		if err := populateWorkItem(&w, startDateStr, endDateStr, createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}
		items = append(items, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work items: %w", err)
	}
	return items, nil
}

func populateWorkItem(w *domain.WorkItem, startDateStr, endDateStr sql.NullString, createdAtStr, updatedAtStr string) error {
	w.StartDate = parseNullableTime(startDateStr, dateLayout)
	w.EndDate = parseNullableTime(endDateStr, dateLayout)

	var parseErr error
	w.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return fmt.Errorf("parsing created_at: %w", parseErr)
	}
	w.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return nil
}
