//go:build js && wasm

package jshost

import (
	"syscall/js"

	"github.com/ggoodman/scorm-go/discovery"
	"github.com/ggoodman/scorm-go/hostapi"
)

var _ discovery.Window = (*Window)(nil)

// Window adapts a JavaScript window or document object.
type Window struct {
	v js.Value
}

// WrapWindow wraps v. v should be a window or document object.
func WrapWindow(v js.Value) *Window { return &Window{v: v} }

// Global wraps the window the wasm module runs in.
func Global() *Window { return WrapWindow(js.Global()) }

// Value returns the wrapped object.
func (w *Window) Value() js.Value { return w.v }

func (w *Window) Parent() (discovery.Window, bool) { return w.ref("parent") }
func (w *Window) Top() (discovery.Window, bool) { return w.ref("top") }
func (w *Window) Opener() (discovery.Window, bool) { return w.ref("opener") }
func (w *Window) Document() (discovery.Window, bool) { return w.ref("document") }

func (w *Window) Lookup(property string) (hostapi.API, bool) {
	v, ok := get(w.v, property)
	if !ok {
		return nil, false
	}
	return &API{v: v}, true
}

func (w *Window) Same(other discovery.Window) bool {
	o, ok := other.(*Window)
	return ok && w.v.Equal(o.v)
}

func (w *Window) ref(name string) (discovery.Window, bool) {
	v, ok := get(w.v, name)
	if !ok {
		return nil, false
	}
	return &Window{v: v}, true
}

// get reads a property, treating undefined, null and access faults alike.
func get(obj js.Value, name string) (v js.Value, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			v, ok = js.Undefined(), false
		}
	}()
	if !isObject(obj) {
		return js.Undefined(), false
	}
	v = obj.Get(name)
	if v.IsUndefined() || v.IsNull() {
		return js.Undefined(), false
	}
	return v, true
}

func isObject(v js.Value) bool {
	t := v.Type()
	return t == js.TypeObject || t == js.TypeFunction
}
