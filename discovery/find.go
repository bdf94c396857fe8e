package discovery

import (
	"log/slog"

	"github.com/ggoodman/scorm-go/cmi"
	"github.com/ggoodman/scorm-go/hostapi"
)

// MaxAttempts bounds the number of parent hops Find will take.
const MaxAttempts = 500

var discard = slog.New(slog.DiscardHandler)

// Result is the outcome of a search.
type Result struct {
	API hostapi.API

	// Version is the version of API: the preferred version when one was
	// given, otherwise the version inferred from the property found.
	Version cmi.Version

	// Attempts counts parent hops taken by the last walk.
	Attempts int
}

// Found reports whether a host object was located.
func (r Result) Found() bool { return r.API != nil }

// Find walks win's parent chain until a window carries either host
// property, the chain ends or loops onto itself, or MaxAttempts is
// exceeded. On the window reached it looks for the preferred version's
// property only, or, with no preference, for the 2004 property and then
// the 1.2 property.
func Find(win Window, preferred cmi.Version, logger *slog.Logger) Result {
	if logger == nil {
		logger = discard
	}
	if win == nil {
		return Result{}
	}

	attempts := 0
	for !carriesAPI(win) && attempts <= MaxAttempts {
		parent, ok := distinctParent(win)
		if !ok {
			break
		}
		attempts++
		win = parent
	}

	res := Result{Attempts: attempts}
	if d, ok := cmi.DialectFor(preferred); ok {
		if api, ok := lookup(win, d.Property); ok {
			res.API, res.Version = api, preferred
		} else {
			logger.Debug("discovery: configured version has no API object",
				slog.String("version", string(preferred)),
				slog.String("property", d.Property))
		}
	} else {
		for _, v := range cmi.Versions {
			d, _ := cmi.DialectFor(v)
			if api, ok := lookup(win, d.Property); ok {
				res.API, res.Version = api, v
				break
			}
		}
	}

	if res.Found() {
		logger.Debug("discovery: API found", slog.String("version", string(res.Version)), slog.Int("attempts", attempts))
	} else {
		logger.Debug("discovery: error finding API",
			slog.Int("attempts", attempts),
			slog.Int("attempt_limit", MaxAttempts))
	}
	return res
}

func carriesAPI(w Window) bool {
	for _, v := range cmi.Versions {
		d, _ := cmi.DialectFor(v)
		if _, ok := lookup(w, d.Property); ok {
			return true
		}
	}
	return false
}

// Locate searches every starting point reachable from win, in order, and
// returns the first hit.
func Locate(win Window, preferred cmi.Version, logger *slog.Logger) Result {
	if logger == nil {
		logger = discard
	}
	if win == nil {
		logger.Debug("discovery: no starting window")
		return Result{}
	}

	res := Find(win, preferred, logger)

	if !res.Found() {
		if parent, ok := distinctParent(win); ok {
			res = Find(parent, preferred, logger)
		}
	}

	if !res.Found() {
		if opener, ok := topOpener(win); ok {
			res = Find(opener, preferred, logger)
		}
	}

	if !res.Found() {
		if opener, ok := topOpener(win); ok {
			if doc, ok := opener.Document(); ok && doc != nil {
				res = Find(doc, preferred, logger)
			}
		}
	}

	if !res.Found() {
		logger.Debug("discovery: can't find the API")
	}
	return res
}
