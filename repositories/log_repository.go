package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/blogem/ptlog/database"
	"github.com/blogem/ptlog/models"
)

// NameFunc derives the final test name from a project-scoped ordinal.
type NameFunc func(ordinal int) string

// LogRepository interface defines test log database operations
type LogRepository interface {
	CountForProject(ctx context.Context, project string) (int, error)
	Insert(ctx context.Context, entry *models.LogEntry) (string, error)
	InsertNext(ctx context.Context, entry *models.LogEntry, name NameFunc) (string, error)
	ListByProject(ctx context.Context, project string) ([]models.LogEntry, error)
	UpdateAnalysis(ctx context.Context, project, testName, analysis string) (int64, error)
	Delete(ctx context.Context, project, testName string) (int64, error)
}

// execQuerier is satisfied by both *sql.Conn and *sql.Tx.
type execQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var logColumns = []string{"DATUM", "TYP", "TESTNAMN", "SYFTE", "ANALYS", "PROJEKT", "TESTARE"}

// logRepository implements LogRepository interface
type logRepository struct {
	db *database.DB
}

// NewLogRepository creates a new log repository
func NewLogRepository(db *database.DB) LogRepository {
	return &logRepository{db: db}
}

// CountForProject returns the number of logs stored for project
func (r *logRepository) CountForProject(ctx context.Context, project string) (int, error) {
	var count int
	err := r.db.WithConn(ctx, func(conn *sql.Conn) error {
		var err error
		count, err = r.count(ctx, conn, project)
		return err
	})
	return count, err
}

func (r *logRepository) count(ctx context.Context, q execQuerier, project string) (int, error) {
	query, args, err := r.db.Builder().
		Select("COUNT(*)").
		From("PTLOG").
		Where(squirrel.Eq{"PROJEKT": project}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count statement: %w", err)
	}

	var count int
	if err := q.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count logs for project %s: %w", project, err)
	}
	return count, nil
}

// Insert stores entry with the name it already carries
func (r *logRepository) Insert(ctx context.Context, entry *models.LogEntry) (string, error) {
	err := r.db.WithConn(ctx, func(conn *sql.Conn) error {
		return r.insert(ctx, conn, entry)
	})
	if err != nil {
		return "", err
	}
	return entry.Name, nil
}

// InsertNext reserves the next ordinal of entry.Project and inserts entry
// under the name derived from it. Locking, counting and inserting happen in
// one transaction, so concurrent callers never observe the same ordinal.
func (r *logRepository) InsertNext(ctx context.Context, entry *models.LogEntry, name NameFunc) (string, error) {
	err := r.db.InTx(ctx, func(tx *sql.Tx) error {
		if err := r.db.Dialect().LockProject(ctx, tx, entry.Project); err != nil {
			return fmt.Errorf("failed to lock project %s: %w", entry.Project, err)
		}

		count, err := r.count(ctx, tx, entry.Project)
		if err != nil {
			return err
		}

		entry.Name = name(count + 1)
		return r.insert(ctx, tx, entry)
	})
	if err != nil {
		return "", err
	}
	return entry.Name, nil
}

func (r *logRepository) insert(ctx context.Context, q execQuerier, entry *models.LogEntry) error {
	query, args, err := r.db.Builder().
		Insert("PTLOG").
		Columns(logColumns...).
		Values(
			r.db.Dialect().BindTime(entry.Timestamp),
			entry.Type,
			entry.Name,
			entry.Purpose,
			nullString(entry.Analysis),
			entry.Project,
			entry.Tester,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert statement: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		if r.db.Dialect().IsUniqueViolation(err) {
			return fmt.Errorf("failed to insert log %s: %w: %w", entry.Name, models.ErrDuplicate, err)
		}
		return fmt.Errorf("failed to insert log %s: %w", entry.Name, err)
	}
	return nil
}

// ListByProject retrieves all logs of a project, newest first
func (r *logRepository) ListByProject(ctx context.Context, project string) ([]models.LogEntry, error) {
	query, args, err := r.db.Builder().
		Select(logColumns...).
		From("PTLOG").
		Where(squirrel.Eq{"PROJEKT": project}).
		OrderBy("DATUM DESC", "TESTNAMN DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	logs := []models.LogEntry{}
	err = r.db.WithConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to query logs: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var entry models.LogEntry
			var purpose, analysis, tester sql.NullString

			err := rows.Scan(
				&entry.Timestamp,
				&entry.Type,
				&entry.Name,
				&purpose,
				&analysis,
				&entry.Project,
				&tester,
			)
			if err != nil {
				return fmt.Errorf("failed to scan log: %w", err)
			}

			entry.Timestamp = r.db.Dialect().ScanTime(entry.Timestamp)
			entry.Purpose = purpose.String
			entry.Tester = tester.String
			if analysis.Valid {
				entry.Analysis = &analysis.String
			}

			logs = append(logs, entry)
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("error iterating logs: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return logs, nil
}

// UpdateAnalysis replaces the analysis of one log
func (r *logRepository) UpdateAnalysis(ctx context.Context, project, testName, analysis string) (int64, error) {
	stmt := r.db.Builder().
		Update("PTLOG").
		Set("ANALYS", analysis).
		Where(squirrel.Eq{"PROJEKT": project}).
		Where(squirrel.Eq{"TESTNAMN": testName})

	rows, err := r.exec(ctx, stmt, "update analysis")
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		return 0, fmt.Errorf("log %s in project %s: %w", testName, project, models.ErrNotFound)
	}
	return rows, nil
}

// Delete deletes one log
func (r *logRepository) Delete(ctx context.Context, project, testName string) (int64, error) {
	stmt := r.db.Builder().
		Delete("PTLOG").
		Where(squirrel.Eq{"PROJEKT": project}).
		Where(squirrel.Eq{"TESTNAMN": testName})

	rows, err := r.exec(ctx, stmt, "delete log")
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		return 0, fmt.Errorf("log %s in project %s: %w", testName, project, models.ErrNotFound)
	}
	return rows, nil
}

func (r *logRepository) exec(ctx context.Context, stmt squirrel.Sqlizer, action string) (int64, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build %s statement: %w", action, err)
	}

	var rows int64
	err = r.db.WithConn(ctx, func(conn *sql.Conn) error {
		result, err := conn.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to %s: %w", action, err)
		}

		rows, err = result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		return nil
	})
	return rows, err
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
