package services

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"launch-dashboard-service/internal/core/domain"
	ports "launch-dashboard-service/internal/core/ports/output"
)

// DatasetService performs the one-time dataset load.
type DatasetService struct {
	source  ports.DatasetSource
	timeout time.Duration
}

// NewDatasetService creates a loader over source. A zero timeout means the
// caller's context alone bounds the fetch.
func NewDatasetService(source ports.DatasetSource, timeout time.Duration) *DatasetService {
	return &DatasetService{source: source, timeout: timeout}
}

// Load fetches every record and freezes them into an immutable Dataset.
func (s *DatasetService) Load(ctx context.Context) (*domain.Dataset, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	records, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrDatasetUnavailable, s.source.Describe(), err)
	}

	ds, err := domain.NewDataset(records, s.source.Describe())
	if err != nil {
		return nil, fmt.Errorf("build dataset from %s: %w", s.source.Describe(), err)
	}

	bounds := ds.PayloadBounds()
	log.WithFields(log.Fields{
		"source":      ds.Source(),
		"records":     ds.Len(),
		"sites":       len(ds.Sites()),
		"min_payload": bounds.Low,
		"max_payload": bounds.High,
		"elapsed_ms":  time.Since(start).Milliseconds(),
	}).Info("launch dataset loaded")

	return ds, nil
}
