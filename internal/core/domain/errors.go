package domain

import "errors"

// ============================================================================
// Dataset Errors
// ============================================================================

var (
	ErrEmptyDataset       = errors.New("dataset contains no launch records")
	ErrInvalidRecord      = errors.New("invalid launch record")
	ErrDatasetUnavailable = errors.New("launch dataset is unavailable")
	ErrUnsupportedSource  = errors.New("unsupported dataset source")
)

// ============================================================================
// Selection Errors
// ============================================================================

var (
	ErrUnknownSite       = errors.New("unknown launch site")
	ErrInvalidSelection  = errors.New("invalid selector value")
	ErrUnknownSignal     = errors.New("unknown dashboard signal")
	ErrInvalidBandWidth  = errors.New("payload band width must be positive")
	ErrInvalidPayloadArg = errors.New("payload bound must be a number")
)
