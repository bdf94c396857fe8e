//go:build js && wasm

package jshost

import (
	"syscall/js"

	"github.com/ggoodman/scorm-go/hostapi"
)

var _ hostapi.API = (*API)(nil)

// API adapts an injected host object.
type API struct {
	v js.Value
}

// WrapAPI wraps a host object.
func WrapAPI(v js.Value) *API { return &API{v: v} }

// Call invokes method on the host object. A missing method or a thrown
// exception yields undefined, which callers already treat as failure.
func (a *API) Call(method string, args ...string) (out hostapi.Value) {
	defer func() {
		if r := recover(); r != nil {
			out = hostapi.Undefined()
		}
	}()
	if a.v.Get(method).Type() != js.TypeFunction {
		return hostapi.Undefined()
	}
	jsArgs := make([]any, len(args))
	for i, s := range args {
		jsArgs[i] = s
	}
	return FromJS(a.v.Call(method, jsArgs...))
}

// FromJS converts a JavaScript value into a hostapi.Value.
func FromJS(v js.Value) hostapi.Value {
	switch v.Type() {
	case js.TypeUndefined:
		return hostapi.Undefined()
	case js.TypeNull:
		return hostapi.Null()
	case js.TypeString:
		return hostapi.String(v.String())
	case js.TypeNumber:
		return hostapi.Number(v.Float())
	case js.TypeBoolean:
		return hostapi.Bool(v.Bool())
	default:
		return hostapi.Other(display(v))
	}
}

// display applies the JavaScript String() conversion.
func display(v js.Value) string {
	return js.Global().Get("String").Invoke(v).String()
}
