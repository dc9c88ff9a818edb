package ports

import (
	"context"

	"launch-dashboard-service/internal/core/domain"
)

// DatasetSource fetches the raw launch records once at startup.
type DatasetSource interface {
	// Fetch returns every launch record the source holds.
	Fetch(ctx context.Context) ([]domain.LaunchRecord, error)

	// Describe names the source for logs and the dataset summary.
	Describe() string
}
