package discovery

import "github.com/ggoodman/scorm-go/hostapi"

// Window is the slice of a browser window that discovery needs. Accessors
// report false when the reference is absent (no parent, no opener, ...).
type Window interface {
	Parent() (Window, bool)
	Top() (Window, bool)
	Opener() (Window, bool)
	Document() (Window, bool)

	// Lookup returns the host object stored under property, if any.
	Lookup(property string) (hostapi.API, bool)

	// Same reports whether other refers to the same browser object.
	Same(other Window) bool
}

func lookup(w Window, property string) (hostapi.API, bool) {
	api, ok := w.Lookup(property)
	if !ok || api == nil {
		return nil, false
	}
	return api, true
}

// distinctParent returns w's parent when it exists and is not w itself.
func distinctParent(w Window) (Window, bool) {
	p, ok := w.Parent()
	if !ok || p == nil || p.Same(w) {
		return nil, false
	}
	return p, true
}

func topOpener(w Window) (Window, bool) {
	top, ok := w.Top()
	if !ok || top == nil {
		return nil, false
	}
	opener, ok := top.Opener()
	if !ok || opener == nil {
		return nil, false
	}
	return opener, true
}
