package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/blogem/ptlog/database"
	"github.com/blogem/ptlog/models"
)

// AuditRepository handles audit log persistence
type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditLogEntry) error
}

type auditRepository struct {
	db *database.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *database.DB) AuditRepository {
	return &auditRepository{db: db}
}

// Create inserts a new audit log entry
func (r *auditRepository) Create(ctx context.Context, entry *models.AuditLogEntry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	query, args, err := r.db.Builder().
		Insert("PTLOG_AUDIT").
		Columns("TIDPUNKT", "ANVANDARE", "METOD", "SOKVAG", "DATA", "KLIENT", "IP_ADRESS").
		Values(
			r.db.Dialect().BindTime(entry.Timestamp),
			entry.UserEmail,
			entry.Method,
			entry.Path,
			entry.Body,
			entry.UserAgent,
			entry.IPAddress,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build audit insert: %w", err)
	}

	return r.db.WithConn(ctx, func(conn *sql.Conn) error {
		if _, err := conn.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to create audit log: %w", err)
		}
		return nil
	})
}
