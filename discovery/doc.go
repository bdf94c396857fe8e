// Package discovery locates the host runtime object in a browser window
// hierarchy.
//
// Content usually runs in a frame or popup launched by the host; the host
// injects its API object as a property (API for 1.2, API_1484_11 for 2004)
// on one of the ancestor or opener windows. Find walks one parent chain,
// bounded by MaxAttempts so that cyclic or hostile frame graphs cannot hang
// the caller. Locate applies Find to each of the well-known starting points
// in order:
//
//	1. the current window and its ancestors
//	2. the immediate parent's ancestors
//	3. the chain reachable from top.opener
//	4. the chain reachable from top.opener.document (some hosts attach
//	   the object to the opener's document instead of its window)
//
// Cache memoises the outcome of Locate for the lifetime of the document. A
// failed search is remembered as well and never retried.
package discovery
