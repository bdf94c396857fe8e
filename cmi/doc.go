// Package cmi holds the protocol data shared by every layer of the adapter:
// the two supported runtime API versions, the per-version method and
// tracking element names, the completion and exit vocabularies, and the
// numeric error code taxonomy reported by host runtimes.
//
// The package is free of any host or browser logic. Discovery resolves a
// Version, the session selects the matching Dialect exactly once, and every
// subsequent host call is made through that Dialect's tables instead of
// switching on the version string.
//
// # Versions
//
//	Version12   "1.2"   window property API,         methods LMSInitialize, LMSFinish, ...
//	Version2004 "2004"  window property API_1484_11, methods Initialize, Terminate, ...
//
// # Tracking elements
//
// Completion is tracked through cmi.core.lesson_status (1.2) or
// cmi.completion_status (2004); the exit mode through cmi.core.exit (1.2) or
// cmi.exit (2004). IsCompletionElement and IsExitElement recognise either
// spelling so that cache bookkeeping works regardless of which version the
// caller had in mind.
package cmi
