package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"launch-dashboard-service/internal/config"
)

// NewPool opens and pings a connection pool for cfg. A deadline on ctx also
// bounds each connection attempt.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxOpenConns)
	}
	poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime
	if deadline, ok := ctx.Deadline(); ok {
		poolCfg.ConnConfig.ConnectTimeout = time.Until(deadline)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	log.WithFields(log.Fields{
		"host": cfg.Host,
		"db":   cfg.Name,
	}).Info("database connection established")

	return pool, nil
}
