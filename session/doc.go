// Package session is the content-side half of the runtime protocol. A
// Session discovers the host object on first use, then drives the
// uninitialized → active → terminated lifecycle over it:
//
//	s := session.New(window, session.WithLogger(logger))
//	if !s.Initialize() {
//		// s.Err() explains why; nothing else to clean up
//	}
//	s.Set("cmi.score.raw", "87")
//	s.SetStatus(cmi.StatusCompleted)
//	s.Terminate()
//
// # Failure reporting
//
// Operations never panic and never return Go errors. Each reports failure
// as false, an empty string or cmi.NoError, exactly as content scripts
// expect, and writes a debug record. Callers that want the reason can read
// Err after the call; it holds the failure of the most recent operation,
// typed as one of the Err* sentinels or a *HostError.
//
// # Automatic bookkeeping
//
// Unless disabled in Config, Initialize rewrites a "not attempted" (or, on
// 2004, "unknown") completion status to "incomplete" and commits, and
// Terminate writes an exit mode before committing: "suspend" for
// unfinished attempts, "logout" (1.2) or "normal" (2004) for completed or
// passed ones. The completion and exit values used for these decisions are
// the last ones observed through this session, not a fresh host read.
//
// # Concurrency
//
// A Session is not safe for concurrent use. Host calls are synchronous and
// the browser event loop is single-threaded; re-entrant lifecycle calls are
// rejected by state checks instead of locks.
package session
