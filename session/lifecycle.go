package session

import (
	"log/slog"

	"github.com/ggoodman/scorm-go/cmi"
)

// Initialize opens the connection to the host. It fails without contacting
// the host when the session is already active, and fails when the host
// rejects the call or accepts it while reporting a non-zero error code.
func (s *Session) Initialize() bool {
	const op = "initialize"
	s.err = nil
	s.logger.Debug("connection.initialize called", slog.String("op", op))

	if s.active {
		return s.fail(op, ErrAlreadyActive)
	}
	c, ok := s.handle()
	if !ok {
		return s.fail(op, ErrNoAPI)
	}

	if !c.Initialize().OK() {
		code := c.LastError()
		if code != cmi.NoError {
			return s.fail(op, s.hostError(c, op, code, false), slog.Int("code", int(code)))
		}
		return s.fail(op, ErrNoResponse)
	}

	// Double-check the connection before reporting success.
	if code := c.LastError(); code != cmi.NoError {
		return s.fail(op, s.hostError(c, op, code, true), slog.Int("code", int(code)))
	}

	s.active = true
	s.completionStatus = ""
	s.exitStatus = ""

	if s.cfg.HandleCompletionStatus.Enabled() {
		s.normalizeCompletion()
	}

	s.err = nil
	s.logger.Debug("connection initialized", slog.String("op", op))
	return true
}

// normalizeCompletion marks a fresh attempt incomplete. Whenever a status
// was read, the result is committed.
func (s *Session) normalizeCompletion() {
	d := s.client.Dialect()
	status := s.get(d.CompletionElement)
	if status == "" {
		return
	}
	if d.ResetsOnLaunch(status) {
		s.set(d.CompletionElement, cmi.StatusIncomplete)
	}
	s.commit()
}

// Terminate closes the connection. When exit handling is enabled and no
// exit mode has been observed, it first writes one. Pending data is then
// committed; the host's terminate call is issued only if that commit
// succeeds. A failed Terminate leaves the session active so it can be
// retried.
func (s *Session) Terminate() bool {
	const op = "terminate"
	s.err = nil

	if !s.active {
		return s.fail(op, ErrInactive)
	}
	c, ok := s.handle()
	if !ok {
		return s.fail(op, ErrNoAPI)
	}

	d := c.Dialect()
	if s.cfg.HandleExitMode.Enabled() && s.exitStatus == "" {
		s.set(d.ExitElement, d.ExitFor(s.completionStatus))
	}

	if !s.commit() {
		return false
	}

	if !c.Terminate().OK() {
		code := c.LastError()
		return s.fail(op, s.hostError(c, op, code, false), slog.Int("code", int(code)))
	}

	s.active = false
	s.err = nil
	s.logger.Debug("connection terminated", slog.String("op", op))
	return true
}
