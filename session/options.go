package session

import "log/slog"

// Option customises a Session.
type Option func(*Session)

// WithLogger sets the logger that receives debug records. Records are
// emitted at slog.LevelDebug; the session's debug flag gates them before
// the logger's own level does.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.base = l
		}
	}
}

// WithConfig applies cfg at construction time, as if Configure had been
// called before any other operation.
func WithConfig(cfg Config) Option {
	return func(s *Session) {
		s.cfg = cfg
	}
}

// WithIDGenerator overrides how the session identifier is produced.
func WithIDGenerator(gen func() string) Option {
	return func(s *Session) {
		if gen != nil {
			s.newID = gen
		}
	}
}
