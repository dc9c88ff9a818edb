package ports

// UpdateRecorder counts chart artifacts produced by the dashboard dispatcher.
type UpdateRecorder interface {
	// ObserveUpdate records one recomputed output triggered by signal.
	ObserveUpdate(signal, output string)

	// ObserveRejected records one event that failed validation.
	ObserveRejected(signal string)
}

// NopRecorder discards every observation.
type NopRecorder struct{}

func (NopRecorder) ObserveUpdate(string, string) {}
func (NopRecorder) ObserveRejected(string) {}
