package recorder

import "baccarat_backend/internal/model"

// NoopRecorder is used when no archive path is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordSession(_ *model.ArchivedSession) error { return nil }
func (n *NoopRecorder) RecentSessions(_ int) ([]model.ArchivedSession, error) {
	return nil, nil
}
func (n *NoopRecorder) Close() error { return nil }
