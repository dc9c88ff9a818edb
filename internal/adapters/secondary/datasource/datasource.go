// Package datasource picks the dataset source named by configuration.
package datasource

import (
	"context"
	"fmt"

	"launch-dashboard-service/internal/adapters/secondary/csvsource"
	"launch-dashboard-service/internal/adapters/secondary/postgres"
	"launch-dashboard-service/internal/config"
	"launch-dashboard-service/internal/core/domain"
	ports "launch-dashboard-service/internal/core/ports/output"
)

// New builds the configured source. The returned release func frees any
// connections the source holds and is safe to call once the dataset is loaded.
// Connecting to a database is bounded by the dataset timeout.
func New(ctx context.Context, ds config.DatasetConfig, db config.DatabaseConfig) (ports.DatasetSource, func(), error) {
	switch ds.Source {
	case config.SourceHTTP:
		return csvsource.NewHTTPSource(ds.URL, ds.Timeout), func() {}, nil
	case config.SourceFile:
		return csvsource.NewFileSource(ds.Path), func() {}, nil
	case config.SourcePostgres:
		if ds.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, ds.Timeout)
			defer cancel()
		}
		pool, err := postgres.NewPool(ctx, db)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", domain.ErrDatasetUnavailable, err)
		}
		return postgres.NewLaunchRecordRepository(pool, ds.Table), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedSource, ds.Source)
	}
}
