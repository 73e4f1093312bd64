package database

import (
	"context"
	"time"
)

// PoolStats is a read-only snapshot of the connection pool.
type PoolStats struct {
	MaxOpenConnections int           `json:"maxOpenConnections"`
	OpenConnections    int           `json:"openConnections"`
	InUse              int           `json:"inUse"`
	Idle               int           `json:"idle"`
	WaitCount          int64         `json:"waitCount"`
	WaitDuration       time.Duration `json:"waitDurationNs"`
	MaxIdleClosed      int64         `json:"maxIdleClosed"`
	MaxIdleTimeClosed  int64         `json:"maxIdleTimeClosed"`
	MaxLifetimeClosed  int64         `json:"maxLifetimeClosed"`
}

// Info describes the selected backend for diagnostics.
type Info struct {
	Backend     string      `json:"backend"`
	DSN         string      `json:"dsn"`
	SchemaState SchemaState `json:"schemaState"`
	Reachable   bool        `json:"reachable"`
	Error       string      `json:"error,omitempty"`
}

// PoolStats returns the current pool statistics.
func (d *DB) PoolStats() PoolStats {
	s := d.DB.Stats()
	return PoolStats{
		MaxOpenConnections: s.MaxOpenConnections,
		OpenConnections:    s.OpenConnections,
		InUse:              s.InUse,
		Idle:               s.Idle,
		WaitCount:          s.WaitCount,
		WaitDuration:       s.WaitDuration,
		MaxIdleClosed:      s.MaxIdleClosed,
		MaxIdleTimeClosed:  s.MaxIdleTimeClosed,
		MaxLifetimeClosed:  s.MaxLifetimeClosed,
	}
}

// Info pings the backend, bounded by one second, and reports its state.
func (d *DB) Info(ctx context.Context) Info {
	info := Info{
		Backend:     d.dialect.Name(),
		DSN:         d.dsn,
		SchemaState: d.SchemaState(),
	}

	pingCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	if err := d.PingContext(pingCtx); err != nil {
		info.Error = MaskDSN(err.Error())
		return info
	}
	info.Reachable = true
	return info
}
