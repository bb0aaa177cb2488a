package session

import (
	"log/slog"

	"github.com/dmitrymomot/powerauth/pkg/journal"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRecorder records the outcome of every operation. Nil is ignored.
func WithRecorder(r journal.Recorder) Option {
	return func(s *Session) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithID overrides the generated session id used in logs and the journal.
func WithID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.id = id
		}
	}
}
