package database

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/ptlog/config"
	"github.com/blogem/ptlog/models"
)

func TestNewDialect(t *testing.T) {
	pg, err := NewDialect(config.DBTypePostgres, models.Stockholm)
	require.NoError(t, err)
	assert.Equal(t, squirrel.Dollar, pg.Placeholder())

	lite, err := NewDialect(config.DBTypeSQLite, models.Stockholm)
	require.NoError(t, err)
	assert.Equal(t, squirrel.Question, lite.Placeholder())

	_, err = NewDialect("oracle", models.Stockholm)
	assert.Error(t, err, "aliases are resolved by config, not here")
}

func TestDialectTimeRoundTrip(t *testing.T) {
	summer := time.Date(2024, 7, 1, 12, 30, 0, 0, models.Stockholm)

	pg, _ := NewDialect(config.DBTypePostgres, models.Stockholm)
	bound := pg.BindTime(summer)
	assert.Equal(t, time.UTC, bound.Location())
	assert.Equal(t, 12, bound.Hour(), "postgres keeps Stockholm wall time")
	assert.True(t, summer.Equal(pg.ScanTime(bound)))

	lite, _ := NewDialect(config.DBTypeSQLite, models.Stockholm)
	bound = lite.BindTime(summer)
	assert.Equal(t, 10, bound.Hour(), "sqlite stores UTC")
	scanned := lite.ScanTime(bound)
	assert.True(t, summer.Equal(scanned))
	assert.Equal(t, models.Stockholm, scanned.Location())
}

func TestDialectUniqueViolation(t *testing.T) {
	pg, _ := NewDialect(config.DBTypePostgres, models.Stockholm)
	assert.True(t, pg.IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, pg.IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, pg.IsUniqueViolation(errors.New("unique")))

	lite, _ := NewDialect(config.DBTypeSQLite, models.Stockholm)
	assert.True(t, lite.IsUniqueViolation(fmt.Errorf("insert: %w", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})))
	assert.True(t, lite.IsUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}))
	assert.False(t, lite.IsUniqueViolation(sqlite3.Error{Code: sqlite3.ErrBusy}))
}
