//go:build js && wasm

package jshost

import (
	"syscall/js"

	"github.com/ggoodman/scorm-go/cmi"
	"github.com/ggoodman/scorm-go/session"
)

// Export installs a JavaScript object named name on target whose methods
// drive s. The returned function removes the object and releases the Go
// callbacks; the object must not be used afterwards.
func Export(target js.Value, name string, s *session.Session) (release func()) {
	obj := js.Global().Get("Object").New()
	var funcs []js.Func

	def := func(fn func(args []js.Value) any, names ...string) {
		f := js.FuncOf(func(_ js.Value, args []js.Value) any { return fn(args) })
		funcs = append(funcs, f)
		for _, n := range names {
			obj.Set(n, f)
		}
	}

	def(func(args []js.Value) any {
		cfg, err := configFromJS(arg(args, 0))
		if err != nil {
			js.Global().Get("console").Call("warn", "scorm.configure: "+err.Error())
			return false
		}
		return s.Configure(cfg)
	}, "configure")

	def(func([]js.Value) any { return s.Initialize() }, "initialize", "init")
	def(func([]js.Value) any { return s.Terminate() }, "terminate", "quit")
	def(func([]js.Value) any { return s.Commit() }, "commit", "save")

	def(func(args []js.Value) any {
		return s.Get(str(arg(args, 0)))
	}, "get")

	def(func(args []js.Value) any {
		return s.Set(str(arg(args, 0)), str(arg(args, 1)))
	}, "set")

	def(func(args []js.Value) any {
		if len(args) == 0 {
			return s.Status()
		}
		if args[0].IsNull() || args[0].IsUndefined() {
			return s.UpdateStatus(nil)
		}
		return s.SetStatus(str(args[0]))
	}, "status")

	def(func([]js.Value) any { return int(s.LastError()) }, "getLastError")

	def(func(args []js.Value) any {
		return s.ErrorString(code(arg(args, 0)))
	}, "getErrorString")

	def(func(args []js.Value) any {
		return s.Diagnostic(code(arg(args, 0)))
	}, "getDiagnostic")

	def(func([]js.Value) any { return string(s.Version()) }, "getVersion")
	def(func([]js.Value) any { return s.IsActive() }, "isActive")

	target.Set(name, obj)

	return func() {
		target.Delete(name)
		for _, f := range funcs {
			f.Release()
		}
	}
}

func configFromJS(v js.Value) (session.Config, error) {
	if v.IsUndefined() || v.IsNull() {
		return session.Config{}, nil
	}
	data := js.Global().Get("JSON").Call("stringify", v).String()
	return session.ConfigFromJSON([]byte(data))
}

func arg(args []js.Value, i int) js.Value {
	if i < len(args) {
		return args[i]
	}
	return js.Undefined()
}

// str converts a script argument the way the host would receive it;
// undefined and null become "".
func str(v js.Value) string {
	if v.IsUndefined() || v.IsNull() {
		return ""
	}
	if v.Type() == js.TypeString {
		return v.String()
	}
	return display(v)
}

func code(v js.Value) cmi.ErrorCode {
	if v.Type() == js.TypeNumber {
		return cmi.ErrorCode(v.Int())
	}
	return cmi.ParseErrorCode(str(v))
}
