package csvsource

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"launch-dashboard-service/internal/core/domain"
	ports "launch-dashboard-service/internal/core/ports/output"
)

// HTTPSource fetches the dataset over HTTP.
type HTTPSource struct {
	httpClient *http.Client
	url        string
}

// NewHTTPSource creates a source that GETs url.
func NewHTTPSource(url string, timeout time.Duration) ports.DatasetSource {
	return &HTTPSource{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		url: url,
	}
}

// Fetch downloads and decodes the dataset.
func (s *HTTPSource) Fetch(ctx context.Context) ([]domain.LaunchRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create dataset request: %w", err)
	}
	req.Header.Set("Accept", "text/csv")

	log.WithFields(log.Fields{
		"url": s.url,
	}).Debug("fetching launch dataset")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dataset request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dataset request: unexpected status %s", resp.Status)
	}

	return Decode(resp.Body)
}

func (s *HTTPSource) Describe() string {
	return s.url
}

// FileSource reads the dataset from a local file.
type FileSource struct {
	path string
}

func NewFileSource(path string) ports.DatasetSource {
	return &FileSource{path: path}
}

func (s *FileSource) Fetch(ctx context.Context) ([]domain.LaunchRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

func (s *FileSource) Describe() string {
	return "file://" + s.path
}
