package session

import (
	"fmt"
	"log/slog"

	"github.com/ggoodman/scorm-go/cmi"
)

// Get reads a tracking element. It returns "" when the session is inactive
// or the read fails; a genuinely empty stored value is also "", so consult
// Err to tell them apart. Reading the completion or exit element refreshes
// the session's cached copy.
func (s *Session) Get(element string) string {
	s.err = nil
	return s.get(element)
}

func (s *Session) get(element string) string {
	const op = "get"
	el := slog.String("element", element)

	if !s.active {
		s.fail(op, ErrInactive, el)
		return ""
	}
	c, ok := s.handle()
	if !ok {
		s.fail(op, ErrNoAPI, el)
		return ""
	}

	value := c.GetValue(element).String()
	code := c.LastError()

	// An empty result is only trustworthy when the host reports no error.
	if value != "" || code == cmi.NoError {
		switch {
		case cmi.IsCompletionElement(element):
			s.completionStatus = value
		case cmi.IsExitElement(element):
			s.exitStatus = value
		}
	} else {
		s.fail(op, s.hostError(c, op, code, false), el, slog.Int("code", int(code)))
	}

	s.logger.Debug("get value", slog.String("op", op), el, slog.String("value", value))
	return value
}

// Set stores a tracking element. Writing the completion element refreshes
// the session's cached completion status on success.
func (s *Session) Set(element, value string) bool {
	s.err = nil
	return s.set(element, value)
}

func (s *Session) set(element, value string) bool {
	const op = "set"
	el := slog.String("element", element)

	if !s.active {
		return s.fail(op, ErrInactive, el)
	}
	c, ok := s.handle()
	if !ok {
		return s.fail(op, ErrNoAPI, el)
	}

	if !c.SetValue(element, value).OK() {
		code := c.LastError()
		return s.fail(op, s.hostError(c, op, code, false), el,
			slog.String("value", value), slog.Int("code", int(code)))
	}

	if cmi.IsCompletionElement(element) {
		s.completionStatus = value
	}
	s.logger.Debug("set value", slog.String("op", op), el, slog.String("value", value))
	return true
}

// Commit asks the host to persist pending data.
func (s *Session) Commit() bool {
	s.err = nil
	return s.commit()
}

func (s *Session) commit() bool {
	const op = "commit"
	if !s.active {
		return s.fail(op, ErrInactive)
	}
	c, ok := s.handle()
	if !ok {
		return s.fail(op, ErrNoAPI)
	}
	if !c.Commit().OK() {
		return s.fail(op, fmt.Errorf("%s: %w", op, ErrHostRejected))
	}
	return true
}

// Status reads the completion element of the session's version.
func (s *Session) Status() string {
	s.err = nil
	if !s.active || s.client == nil {
		s.fail("status", ErrInactive)
		return ""
	}
	return s.get(s.client.Dialect().CompletionElement)
}

// SetStatus writes the completion element of the session's version.
func (s *Session) SetStatus(status string) bool {
	return s.UpdateStatus(&status)
}

// UpdateStatus writes the completion element. A nil status is rejected
// without contacting the host.
func (s *Session) UpdateStatus(status *string) bool {
	s.err = nil
	if status == nil {
		return s.fail("status", ErrNoStatus)
	}
	if !s.active || s.client == nil {
		return s.fail("status", ErrInactive)
	}
	return s.set(s.client.Dialect().CompletionElement, *status)
}
