package recorder

import "baccarat_backend/internal/model"

// Recorder archives finished sessions for later analysis.
type Recorder interface {
	RecordSession(s *model.ArchivedSession) error
	RecentSessions(limit int) ([]model.ArchivedSession, error)
	Close() error
}
