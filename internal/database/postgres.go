package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GiulianoD/vports/internal/config"
)

// Database wraps the pgx connection pool and provides database operations.
type Database struct {
	Pool *pgxpool.Pool
}

// NewPostgresPool creates a new PostgreSQL connection pool using pgx.
// It configures the pool based on the provided database configuration,
// tests the connection, and returns a Database instance.
func NewPostgresPool(ctx context.Context, cfg config.DatabaseConfig) (*Database, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Name,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MinConns = int32(cfg.PoolMin)
	poolConfig.MaxConns = int32(cfg.PoolMax)

	poolConfig.ConnConfig.ConnectTimeout = 5 * time.Second
	poolConfig.MaxConnIdleTime = 30 * time.Second
	poolConfig.MaxConnLifetime = 1 * time.Hour
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Unreachable database at boot is unrecoverable; fail here so the
	// process exits instead of serving requests it cannot fulfill.
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{Pool: pool}, nil
}

// Ping checks if the database connection is alive.
func (db *Database) Ping(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}

// Close gracefully closes the database connection pool.
func (db *Database) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

// Stats returns statistics about the connection pool.
func (db *Database) Stats() *pgxpool.Stat {
	if db.Pool == nil {
		return nil
	}
	return db.Pool.Stat()
}

// PoolInfo is the connection pool section of the diagnostics endpoint.
type PoolInfo struct {
	TotalConns int32 `json:"total_conns"`
	IdleConns  int32 `json:"idle_conns"`
	MaxConns   int32 `json:"max_conns"`
}

// PoolStats snapshots the pool counters. Zero values when no pool is attached.
func (db *Database) PoolStats() PoolInfo {
	s := db.Stats()
	if s == nil {
		return PoolInfo{}
	}
	return PoolInfo{
		TotalConns: s.TotalConns(),
		IdleConns:  s.IdleConns(),
		MaxConns:   s.MaxConns(),
	}
}

// Info describes the connected database for the diagnostics endpoint.
type Info struct {
	Database     string   `json:"database"`
	Version      string   `json:"version"`
	Embarcacoes  int64    `json:"total_embarcacoes"`
	Desembarques int64    `json:"total_desembarques"`
	Pescadores   int64    `json:"total_pescadores"`
	Pool         PoolInfo `json:"pool"`
}

// CollectInfo gathers the current database name, server version and row
// counts per record table.
func (db *Database) CollectInfo(ctx context.Context) (*Info, error) {
	var info Info
	if err := db.Pool.QueryRow(ctx, "SELECT current_database(), version()").
		Scan(&info.Database, &info.Version); err != nil {
		return nil, fmt.Errorf("failed to query database info: %w", err)
	}

	counts := []struct {
		table string
		dst   *int64
	}{
		{"embarcacoes", &info.Embarcacoes},
		{"desembarques", &info.Desembarques},
		{"pescadores", &info.Pescadores},
	}
	for _, c := range counts {
		if err := db.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+c.table).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.table, err)
		}
	}
	info.Pool = db.PoolStats()

	return &info, nil
}
