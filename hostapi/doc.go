// Package hostapi models the request/response surface of a host runtime
// object. Host methods take strings and return loosely typed values: a
// success flag may come back as "true", 1, true or even undefined. Value
// captures that return as a small tagged union and Coerce turns it into a
// three-valued Truth in one place, so callers never branch on raw host
// results.
//
// Client binds an API to the cmi.Dialect selected for the session and
// exposes one Go method per host call. It performs no state checks of its
// own; the session package decides when a call may be issued.
package hostapi
