package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/blogem/ptlog/config"
	"github.com/blogem/ptlog/models"
)

// DB is the pooled connection provider shared by all repositories. It hides
// which backend was selected behind its Dialect.
type DB struct {
	*sql.DB
	dialect     Dialect
	dsn         string
	connTimeout time.Duration
	state       atomic.Value
}

// Options configures a DB built around an existing *sql.DB.
type Options struct {
	// DSN is shown by diagnostics; it is masked before being stored.
	DSN               string
	ConnectionTimeout time.Duration
}

// New wraps an open *sql.DB. The schema state starts as unknown.
func New(db *sql.DB, dialect Dialect, opts Options) *DB {
	if opts.ConnectionTimeout <= 0 {
		opts.ConnectionTimeout = 30 * time.Second
	}
	d := &DB{
		DB:          db,
		dialect:     dialect,
		dsn:         MaskDSN(opts.DSN),
		connTimeout: opts.ConnectionTimeout,
	}
	d.state.Store(SchemaUnknown)
	return d
}

// Open builds the pool for the configured backend, verifies it is reachable
// and runs the schema bootstrap once. Any error is fatal for the caller.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	dialect, err := NewDialect(cfg.Type, models.Stockholm)
	if err != nil {
		return nil, err
	}

	var (
		sqlDB *sql.DB
		dsn   string
	)
	switch cfg.Type {
	case config.DBTypePostgres:
		sqlDB, dsn, err = openPostgres(cfg.Postgres, cfg.Pool)
	case config.DBTypeSQLite:
		sqlDB, dsn, err = openSQLite(cfg.SQLite)
	}
	if err != nil {
		return nil, err
	}

	configurePool(sqlDB, cfg.Pool)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Pool.ConnectionTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping %s database %s: %w", cfg.Type, MaskDSN(dsn), err)
	}

	db := New(sqlDB, dialect, Options{DSN: dsn, ConnectionTimeout: cfg.Pool.ConnectionTimeout})
	slog.Info("configured database", "backend", cfg.Type, "dsn", db.dsn)

	if _, err := db.Bootstrap(ctx, cfg.AutoInit()); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return db, nil
}

func openPostgres(cfg config.PostgresConfig, pool config.PoolConfig) (*sql.DB, string, error) {
	connConfig, err := pgx.ParseConfig(cfg.URL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse postgres url %s: %w", MaskDSN(cfg.URL), err)
	}
	if cfg.User != "" {
		connConfig.User = cfg.User
	}
	if cfg.Password != "" {
		connConfig.Password = cfg.Password
	}

	connConfig.ConnectTimeout = pool.ConnectionTimeout
	if pool.StatementCacheSize > 0 {
		connConfig.DefaultQueryExecMode = pgx.QueryExecModeCacheStatement
		connConfig.StatementCacheCapacity = pool.StatementCacheSize
	} else {
		connConfig.DefaultQueryExecMode = pgx.QueryExecModeDescribeExec
		connConfig.StatementCacheCapacity = 0
	}

	return stdlib.OpenDB(*connConfig), cfg.URL, nil
}

func openSQLite(cfg config.SQLiteConfig) (*sql.DB, string, error) {
	if dir := filepath.Dir(cfg.Path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, "", fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	params := url.Values{}
	params.Set("_txlock", "immediate")
	params.Set("_foreign_keys", "on")
	params.Set("_journal_mode", "WAL")
	params.Set("_busy_timeout", fmt.Sprint(cfg.BusyTimeout.Milliseconds()))
	dsn := "file:" + cfg.Path + "?" + params.Encode()

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open database: %w", err)
	}
	return db, dsn, nil
}

// configurePool applies the sizing knobs. database/sql has no minimum-idle
// setting, so MinIdleConns caps the idle pool instead.
func configurePool(db *sql.DB, cfg config.PoolConfig) {
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MinIdleConns)
	db.SetConnMaxIdleTime(cfg.IdleTimeout)
	db.SetConnMaxLifetime(cfg.MaxLifetime)
}

// Dialect returns the dialect of the selected backend.
func (d *DB) Dialect() Dialect {
	return d.dialect
}

// Builder returns a squirrel statement builder using the backend's placeholders.
func (d *DB) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(d.dialect.Placeholder())
}

// DSN returns the connection string with credentials masked.
func (d *DB) DSN() string {
	return d.dsn
}

// Conn takes a connection from the pool. Waiting longer than the configured
// connection timeout yields models.ErrPoolExhausted.
func (d *DB) Conn(ctx context.Context) (*sql.Conn, error) {
	acquireCtx, cancel := context.WithTimeout(ctx, d.connTimeout)
	defer cancel()

	conn, err := d.DB.Conn(acquireCtx)
	if err != nil {
		if ctx.Err() == nil && errors.Is(acquireCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: no connection available within %s", models.ErrPoolExhausted, d.connTimeout)
		}
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	return conn, nil
}

// WithConn runs fn on a pooled connection and returns it afterwards.
func (d *DB) WithConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := d.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	return fn(conn)
}

// InTx runs fn inside a transaction. The transaction is rolled back when fn
// returns an error and committed otherwise.
func (d *DB) InTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return d.WithConn(ctx, func(conn *sql.Conn) error {
		tx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}

		if err := fn(tx); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				slog.Error("failed to roll back transaction", "error", rbErr)
			}
			return err
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
		return nil
	})
}

// CloseDB closes the database connection
func (d *DB) CloseDB() error {
	if d != nil && d.DB != nil {
		return d.DB.Close()
	}
	return nil
}
