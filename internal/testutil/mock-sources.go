package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"launch-dashboard-service/internal/core/domain"
)

// MockDatasetSource is a mock of DatasetSource.
type MockDatasetSource struct {
	mock.Mock
}

func (m *MockDatasetSource) Fetch(ctx context.Context) ([]domain.LaunchRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LaunchRecord), args.Error(1)
}

func (m *MockDatasetSource) Describe() string {
	args := m.Called()
	return args.String(0)
}

// MockUpdateRecorder is a mock of UpdateRecorder.
type MockUpdateRecorder struct {
	mock.Mock
}

func (m *MockUpdateRecorder) ObserveUpdate(signal, output string) {
	m.Called(signal, output)
}

func (m *MockUpdateRecorder) ObserveRejected(signal string) {
	m.Called(signal)
}
