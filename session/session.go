package session

import (
	"log/slog"
	"os"

	"github.com/ggoodman/scorm-go/cmi"
	"github.com/ggoodman/scorm-go/discovery"
	"github.com/ggoodman/scorm-go/hostapi"
	"github.com/ggoodman/scorm-go/internal/logctx"
	"github.com/google/uuid"
)

// Session is one learner attempt as seen from the content.
type Session struct {
	id     string
	cfg    Config
	cache  *discovery.Cache
	base   *slog.Logger
	logger *slog.Logger
	newID  func() string

	version cmi.Version
	client  *hostapi.Client

	active           bool
	completionStatus string
	exitStatus       string

	err error
}

// New returns an inactive session that will search for the host object
// starting at root. The search happens on first use, not here.
func New(root discovery.Window, opts ...Option) *Session {
	s := &Session{newID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}
	if s.base == nil {
		s.base = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	s.id = s.newID()
	s.version = s.cfg.Version
	s.logger = slog.New(logctx.NewHandler(s.base.Handler(), logSource{s}))
	s.cache = discovery.NewCache(root, s.logger)
	return s
}

// Configure replaces the session configuration. It is rejected while the
// session is active, and when it names a version other than the one the
// host object was bound with. An empty version keeps the bound one.
func (s *Session) Configure(cfg Config) bool {
	s.err = nil
	if s.active {
		return s.fail("configure", ErrAlreadyActive)
	}
	if !cfg.Version.IsZero() && s.client != nil && cfg.Version != s.version {
		return s.fail("configure", ErrVersionFrozen,
			slog.String("requested", string(cfg.Version)))
	}
	s.cfg = cfg
	if s.client == nil {
		s.version = cfg.Version
	}
	return true
}

// ID returns the session identifier used in log records.
func (s *Session) ID() string { return s.id }

// Config returns the current configuration.
func (s *Session) Config() Config { return s.cfg }

// Version returns the configured or discovered runtime version, or the
// zero Version when neither is known yet.
func (s *Session) Version() cmi.Version { return s.version }

// IsActive reports whether the session is between a successful Initialize
// and a successful Terminate.
func (s *Session) IsActive() bool { return s.active }

// CompletionStatus returns the last completion status observed through
// this session. It may be stale with respect to the host.
func (s *Session) CompletionStatus() string { return s.completionStatus }

// ExitStatus returns the last exit mode read through this session.
func (s *Session) ExitStatus() string { return s.exitStatus }

// Err returns why the most recent operation failed, or nil.
func (s *Session) Err() error { return s.err }

// handle returns a client for the discovered host object, binding the
// dialect on first success.
func (s *Session) handle() (*hostapi.Client, bool) {
	if s.client != nil {
		return s.client, true
	}
	res, ok := s.cache.Handle(s.version)
	if !ok {
		return nil, false
	}
	if s.version.IsZero() {
		s.version = res.Version
	}
	d, ok := cmi.DialectFor(s.version)
	if !ok {
		return nil, false
	}
	s.client = hostapi.NewClient(res.API, d)
	return s.client, true
}

// fail records err as the outcome of op and logs it. It always returns
// false so call sites can return it directly.
func (s *Session) fail(op string, err error, attrs ...slog.Attr) bool {
	s.err = err
	args := make([]any, 0, len(attrs)+2)
	args = append(args, slog.String("op", op), slog.Any("error", err))
	for _, a := range attrs {
		args = append(args, a)
	}
	s.logger.Debug(op+" failed", args...)
	return false
}

// hostError asks the host to describe code.
func (s *Session) hostError(c *hostapi.Client, op string, code cmi.ErrorCode, hidden bool) *HostError {
	return &HostError{Op: op, Code: code, Message: c.ErrorString(code), Hidden: hidden}
}

type logSource struct{ s *Session }

func (l logSource) DebugEnabled() bool { return l.s.cfg.Debug.Enabled() }

func (l logSource) SessionData() logctx.SessionData {
	return logctx.SessionData{
		SessionID: l.s.id,
		Version:   string(l.s.version),
		Active:    l.s.active,
	}
}
