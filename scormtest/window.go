package scormtest

import (
	"github.com/ggoodman/scorm-go/cmi"
	"github.com/ggoodman/scorm-go/discovery"
	"github.com/ggoodman/scorm-go/hostapi"
)

var _ discovery.Window = (*Window)(nil)

// Window is an in-memory browser window. A window without an explicit
// parent is its own parent, as top-level browser windows are.
type Window struct {
	Name string

	parent   *Window
	top      *Window
	opener   *Window
	document *Window
	props    map[string]hostapi.API

	lookups int
}

// NewWindow returns a detached top-level window.
func NewWindow(name string) *Window {
	return &Window{Name: name, props: make(map[string]hostapi.API)}
}

// WithParent sets w's parent and returns w for chaining.
func (w *Window) WithParent(parent *Window) *Window {
	w.parent = parent
	return w
}

// WithOpener sets w's opener and returns w for chaining.
func (w *Window) WithOpener(opener *Window) *Window {
	w.opener = opener
	return w
}

// WithTop overrides the top window otherwise derived from the parent chain.
func (w *Window) WithTop(top *Window) *Window {
	w.top = top
	return w
}

// WithDocument attaches a document node to w.
func (w *Window) WithDocument(doc *Window) *Window {
	w.document = doc
	return w
}

// Install exposes api under the property name used by version v.
func (w *Window) Install(v cmi.Version, api hostapi.API) *Window {
	d, ok := cmi.DialectFor(v)
	if !ok {
		panic("scormtest: unsupported version " + string(v))
	}
	return w.InstallAs(d.Property, api)
}

// InstallAs exposes api under an arbitrary property name.
func (w *Window) InstallAs(property string, api hostapi.API) *Window {
	w.props[property] = api
	return w
}

// Lookups counts Lookup calls, for asserting that a search was bounded or
// not repeated.
func (w *Window) Lookups() int { return w.lookups }

func (w *Window) Parent() (discovery.Window, bool) {
	if w.parent == nil {
		return w, true
	}
	return w.parent, true
}

// Top follows parents to the outermost window, stopping at cycles.
func (w *Window) Top() (discovery.Window, bool) {
	if w.top != nil {
		return w.top, true
	}
	seen := map[*Window]bool{w: true}
	cur := w
	for cur.parent != nil && !seen[cur.parent] {
		seen[cur.parent] = true
		cur = cur.parent
	}
	return cur, true
}

func (w *Window) Opener() (discovery.Window, bool) {
	if w.opener == nil {
		return nil, false
	}
	return w.opener, true
}

func (w *Window) Document() (discovery.Window, bool) {
	if w.document == nil {
		return nil, false
	}
	return w.document, true
}

func (w *Window) Lookup(property string) (hostapi.API, bool) {
	w.lookups++
	api, ok := w.props[property]
	return api, ok
}

func (w *Window) Same(other discovery.Window) bool {
	o, ok := other.(*Window)
	return ok && o == w
}

func (w *Window) String() string { return "window(" + w.Name + ")" }
