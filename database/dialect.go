package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/blogem/ptlog/config"
)

// Dialect captures everything that differs between the two backends. The
// repositories are written once against this interface.
type Dialect interface {
	// Name is the config.DBType* value of the backend.
	Name() string
	Placeholder() squirrel.PlaceholderFormat
	// SchemaProbe returns a query yielding a single count that is non-zero
	// when PTLOG_PROJEKT exists.
	SchemaProbe() string
	SchemaScript() string
	// LockProject serializes ordinal reservation for project until tx ends.
	LockProject(ctx context.Context, tx *sql.Tx, project string) error
	IsUniqueViolation(err error) bool
	// BindTime and ScanTime convert between zoned times and column values.
	BindTime(t time.Time) time.Time
	ScanTime(t time.Time) time.Time
}

// NewDialect returns the dialect for a normalized backend name.
func NewDialect(dbType string, loc *time.Location) (Dialect, error) {
	switch dbType {
	case config.DBTypePostgres:
		return &postgresDialect{loc: loc}, nil
	case config.DBTypeSQLite:
		return &sqliteDialect{loc: loc}, nil
	default:
		return nil, errors.New("unsupported database type: " + dbType)
	}
}

// postgresDialect stores DATUM as TIMESTAMP without zone holding wall time in loc.
type postgresDialect struct {
	loc *time.Location
}

func (d *postgresDialect) Name() string { return config.DBTypePostgres }

func (d *postgresDialect) Placeholder() squirrel.PlaceholderFormat { return squirrel.Dollar }

func (d *postgresDialect) SchemaProbe() string {
	return `SELECT COUNT(*) FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_name = 'ptlog_projekt'`
}

func (d *postgresDialect) SchemaScript() string { return postgresSchema }

// LockProject takes a transaction-scoped advisory lock keyed on the project.
func (d *postgresDialect) LockProject(ctx context.Context, tx *sql.Tx, project string) error {
	_, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, "ptlog:"+project)
	return err
}

func (d *postgresDialect) IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (d *postgresDialect) BindTime(t time.Time) time.Time {
	w := t.In(d.loc)
	return time.Date(w.Year(), w.Month(), w.Day(), w.Hour(), w.Minute(), w.Second(), w.Nanosecond(), time.UTC)
}

func (d *postgresDialect) ScanTime(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), d.loc)
}

// sqliteDialect stores DATUM as UTC text so lexical order equals time order.
type sqliteDialect struct {
	loc *time.Location
}

func (d *sqliteDialect) Name() string { return config.DBTypeSQLite }

func (d *sqliteDialect) Placeholder() squirrel.PlaceholderFormat { return squirrel.Question }

func (d *sqliteDialect) SchemaProbe() string {
	return `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'PTLOG_PROJEKT'`
}

func (d *sqliteDialect) SchemaScript() string { return sqliteSchema }

// LockProject is a no-op: transactions are opened with BEGIN IMMEDIATE
// (_txlock=immediate), which already holds the database write lock.
func (d *sqliteDialect) LockProject(ctx context.Context, tx *sql.Tx, project string) error {
	return nil
}

func (d *sqliteDialect) IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

func (d *sqliteDialect) BindTime(t time.Time) time.Time { return t.UTC() }

func (d *sqliteDialect) ScanTime(t time.Time) time.Time { return t.In(d.loc) }
