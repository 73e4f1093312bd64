package database

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"
)

//go:embed schema/postgres.sql
var postgresSchema string

//go:embed schema/sqlite.sql
var sqliteSchema string

// SchemaState is the bootstrapper's view of the PT-Log tables.
type SchemaState string

const (
	SchemaUnknown SchemaState = "unknown"
	SchemaReady   SchemaState = "ready"
)

// SchemaState reports the result of the last bootstrap.
func (d *DB) SchemaState() SchemaState {
	return d.state.Load().(SchemaState)
}

// Bootstrap probes for PTLOG_PROJEKT and, when it is missing and autoInit is
// set, applies the dialect's schema script in one transaction. It reports
// whether the script was applied. A missing schema with autoInit off leaves
// the state unknown and is not an error.
func (d *DB) Bootstrap(ctx context.Context, autoInit bool) (bool, error) {
	exists, err := d.schemaExists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to probe %s schema: %w", d.dialect.Name(), err)
	}

	if exists {
		slog.Info("schema already exists, skipping initialization", "backend", d.dialect.Name())
		d.state.Store(SchemaReady)
		return false, nil
	}

	if !autoInit {
		slog.Warn("schema missing and auto-init disabled", "backend", d.dialect.Name())
		return false, nil
	}

	slog.Info("initializing database schema", "backend", d.dialect.Name())

	err = d.InTx(ctx, func(tx *sql.Tx) error {
		for _, stmt := range splitStatements(d.dialect.SchemaScript()) {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to execute schema statement %q: %w", firstLine(stmt), err)
			}
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to initialize %s schema: %w", d.dialect.Name(), err)
	}

	d.state.Store(SchemaReady)
	slog.Info("schema initialized successfully", "backend", d.dialect.Name())
	return true, nil
}

func (d *DB) schemaExists(ctx context.Context) (bool, error) {
	var count int
	err := d.WithConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, d.dialect.SchemaProbe()).Scan(&count)
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// splitStatements breaks a schema script into single statements, dropping
// "--" comment lines. Scripts must not contain ';' inside literals.
func splitStatements(script string) []string {
	var lines []string
	for _, line := range strings.Split(script, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		lines = append(lines, line)
	}

	var stmts []string
	for _, stmt := range strings.Split(strings.Join(lines, "\n"), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
