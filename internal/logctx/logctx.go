// Package logctx implements the adapter's debug sink: a slog.Handler
// wrapper that is silenced when the session's debug flag is off and that
// stamps every record with the session it belongs to.
package logctx

import (
	"context"
	"log/slog"
)

// SessionData identifies the session a record was emitted for.
type SessionData struct {
	SessionID string
	Version   string
	Active    bool
}

// Source is consulted on every record, so flag and state changes take
// effect immediately.
type Source interface {
	DebugEnabled() bool
	SessionData() SessionData
}

type Handler struct {
	slog.Handler
	src Source
}

// NewHandler wraps next. A nil Source disables nothing and stamps nothing.
func NewHandler(next slog.Handler, src Source) Handler {
	return Handler{Handler: next, src: src}
}

func (h Handler) Enabled(ctx context.Context, level slog.Level) bool {
	if h.src != nil && !h.src.DebugEnabled() {
		return false
	}
	return h.Handler.Enabled(ctx, level)
}

func (h Handler) Handle(ctx context.Context, r slog.Record) error {
	if h.src != nil {
		sd := h.src.SessionData()
		r.AddAttrs(slog.Group("scorm",
			slog.String("session_id", sd.SessionID),
			slog.String("version", sd.Version),
			slog.Bool("active", sd.Active),
		))
	}
	return h.Handler.Handle(ctx, r)
}

func (h Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return Handler{Handler: h.Handler.WithAttrs(attrs), src: h.src}
}

func (h Handler) WithGroup(name string) slog.Handler {
	return Handler{Handler: h.Handler.WithGroup(name), src: h.src}
}
