package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/blogem/ptlog/database"
	"github.com/blogem/ptlog/models"
)

// ProjectRepository interface defines project database operations
type ProjectRepository interface {
	Create(ctx context.Context, name string) error
	List(ctx context.Context, archived bool) ([]string, error)
	SetArchived(ctx context.Context, name string, archived bool) (int64, error)
	Delete(ctx context.Context, name string) (int64, error)
}

// projectRepository implements ProjectRepository interface
type projectRepository struct {
	db *database.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *database.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// Create creates a new, active project
func (r *projectRepository) Create(ctx context.Context, name string) error {
	query, args, err := r.db.Builder().
		Insert("PTLOG_PROJEKT").
		Columns("NAMN", "ARKIVERAD").
		Values(name, false).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert statement: %w", err)
	}

	return r.db.WithConn(ctx, func(conn *sql.Conn) error {
		if _, err := conn.ExecContext(ctx, query, args...); err != nil {
			if r.db.Dialect().IsUniqueViolation(err) {
				return fmt.Errorf("failed to create project %s: %w: %w", name, models.ErrDuplicate, err)
			}
			return fmt.Errorf("failed to create project %s: %w", name, err)
		}
		return nil
	})
}

// List returns the names of active or archived projects in alphabetical order
func (r *projectRepository) List(ctx context.Context, archived bool) ([]string, error) {
	query, args, err := r.db.Builder().
		Select("NAMN").
		Distinct().
		From("PTLOG_PROJEKT").
		Where(squirrel.Eq{"ARKIVERAD": archived}).
		OrderBy("NAMN").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	names := []string{}
	err = r.db.WithConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to query projects: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				return fmt.Errorf("failed to scan project: %w", err)
			}
			names = append(names, name)
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("error iterating projects: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return names, nil
}

// SetArchived archives or restores a project. A missing project affects zero
// rows and is not reported as an error.
func (r *projectRepository) SetArchived(ctx context.Context, name string, archived bool) (int64, error) {
	query, args, err := r.db.Builder().
		Update("PTLOG_PROJEKT").
		Set("ARKIVERAD", archived).
		Where(squirrel.Eq{"NAMN": name}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build update statement: %w", err)
	}

	var rows int64
	err = r.db.WithConn(ctx, func(conn *sql.Conn) error {
		result, err := conn.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to update project %s: %w", name, err)
		}

		rows, err = result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		return nil
	})
	return rows, err
}

// Delete removes all logs of the project and then the project itself in one
// transaction and returns the number of deleted logs. When the project row
// does not exist the transaction is rolled back and models.ErrNotFound is
// returned.
func (r *projectRepository) Delete(ctx context.Context, name string) (int64, error) {
	deleteLogs, logArgs, err := r.db.Builder().
		Delete("PTLOG").
		Where(squirrel.Eq{"PROJEKT": name}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete statement: %w", err)
	}

	deleteProject, projectArgs, err := r.db.Builder().
		Delete("PTLOG_PROJEKT").
		Where(squirrel.Eq{"NAMN": name}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete statement: %w", err)
	}

	var logsDeleted int64
	err = r.db.InTx(ctx, func(tx *sql.Tx) error {
		if err := r.db.Dialect().LockProject(ctx, tx, name); err != nil {
			return fmt.Errorf("failed to lock project %s: %w", name, err)
		}

		result, err := tx.ExecContext(ctx, deleteLogs, logArgs...)
		if err != nil {
			return fmt.Errorf("failed to delete logs of project %s: %w", name, err)
		}
		if logsDeleted, err = result.RowsAffected(); err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}

		result, err = tx.ExecContext(ctx, deleteProject, projectArgs...)
		if err != nil {
			return fmt.Errorf("failed to delete project %s: %w", name, err)
		}
		projects, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if projects == 0 {
			return fmt.Errorf("project %s: %w", name, models.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return logsDeleted, nil
}
