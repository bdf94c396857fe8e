package session

import (
	"log/slog"

	"github.com/ggoodman/scorm-go/cmi"
)

// LastError returns the host's last error code. It works in any state as
// long as a host object can be found; without one it returns cmi.NoError.
// A response that is not an integer yields cmi.Unparseable.
func (s *Session) LastError() cmi.ErrorCode {
	s.err = nil
	c, ok := s.handle()
	if !ok {
		s.fail("getLastError", ErrNoAPI)
		return cmi.NoError
	}
	code := c.LastError()
	if code == cmi.Unparseable {
		s.logger.Debug("getLastError: host returned a non-numeric code", slog.String("op", "getLastError"))
	}
	return code
}

// ErrorString returns the host's short description of code, or "" when no
// host object can be found.
func (s *Session) ErrorString(code cmi.ErrorCode) string {
	s.err = nil
	c, ok := s.handle()
	if !ok {
		s.fail("getErrorString", ErrNoAPI, slog.Int("code", int(code)))
		return ""
	}
	return c.ErrorString(code)
}

// Diagnostic returns the host's vendor-specific detail for code, or ""
// when no host object can be found.
func (s *Session) Diagnostic(code cmi.ErrorCode) string {
	s.err = nil
	c, ok := s.handle()
	if !ok {
		s.fail("getDiagnostic", ErrNoAPI, slog.Int("code", int(code)))
		return ""
	}
	return c.Diagnostic(code)
}
