package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/chronos/internal/db"
	"github.com/alexanderramin/chronos/internal/domain"
)

// SQLiteDependencyRepo implements DependencyRepo using a SQLite database.
type SQLiteDependencyRepo struct {
	db db.DBTX
}

// NewSQLiteDependencyRepo creates a new SQLiteDependencyRepo.
func NewSQLiteDependencyRepo(conn db.DBTX) *SQLiteDependencyRepo {
	return &SQLiteDependencyRepo{db: conn}
}

func (r *SQLiteDependencyRepo) Create(ctx context.Context, successorID string, d *domain.Dependency) error {
	dt := d.Type
	if dt == "" {
		dt = domain.FinishToStart
	}
	// Append at the end of the successor's declared edge order.
	query := `INSERT INTO dependencies (successor_id, predecessor_id, dep_type, lag_days, position)
		VALUES (?, ?, ?, ?,
			(SELECT COALESCE(MAX(position), -1) + 1 FROM dependencies WHERE successor_id = ?))`
	_, err := r.db.ExecContext(ctx, query, successorID, d.PredecessorID, string(dt), d.LagDays, successorID)
	if err != nil {
		return fmt.Errorf("inserting dependency: %w", err)
	}
	return nil
}

func (r *SQLiteDependencyRepo) Delete(ctx context.Context, successorID, predecessorID string) error {
	query := `DELETE FROM dependencies WHERE successor_id = ? AND predecessor_id = ?`
	_, err := r.db.ExecContext(ctx, query, successorID, predecessorID)
	if err != nil {
		return fmt.Errorf("deleting dependency: %w", err)
	}
	return nil
}

func (r *SQLiteDependencyRepo) ListBySuccessor(ctx context.Context, successorID string) ([]domain.Dependency, error) {
	query := `SELECT predecessor_id, dep_type, lag_days
		FROM dependencies WHERE successor_id = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, successorID)
	if err != nil {
		return nil, fmt.Errorf("listing predecessors: %w", err)
	}
	defer rows.Close()

	var deps []domain.Dependency
	for rows.Next() {
		d, err := scanDependency(rows)
		if err != nil {
			return nil, err
		}
		deps = append(deps, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dependencies: %w", err)
	}
	return deps, nil
}

// ListByProject loads every edge whose successor belongs to the project,
// keyed by successor id, preserving declared order.
func (r *SQLiteDependencyRepo) ListByProject(ctx context.Context, projectID string) (map[string][]domain.Dependency, error) {
	query := `SELECT d.successor_id, d.predecessor_id, d.dep_type, d.lag_days
		FROM dependencies d
		JOIN work_items w ON d.successor_id = w.id
		WHERE w.project_id = ?
		ORDER BY d.successor_id, d.position`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing project dependencies: %w", err)
	}
	defer rows.Close()

	edges := make(map[string][]domain.Dependency)
	for rows.Next() {
		var successorID, predecessorID, depType string
		var lagDays int
		if err := rows.Scan(&successorID, &predecessorID, &depType, &lagDays); err != nil {
			return nil, fmt.Errorf("scanning dependency row: %w", err)
		}
		edges[successorID] = append(edges[successorID], domain.Dependency{
			PredecessorID: predecessorID,
			Type:          domain.DependencyType(depType),
			LagDays:       lagDays,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating project dependencies: %w", err)
	}
	return edges, nil
}

func scanDependency(rows *sql.Rows) (domain.Dependency, error) {
	var d domain.Dependency
	var depType string
	if err := rows.Scan(&d.PredecessorID, &depType, &d.LagDays); err != nil {
		return d, fmt.Errorf("scanning dependency: %w", err)
	}
	d.Type = domain.DependencyType(depType)
	return d, nil
}
