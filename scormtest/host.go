package scormtest

import (
	"slices"

	"github.com/ggoodman/scorm-go/cmi"
	"github.com/ggoodman/scorm-go/hostapi"
)

var _ hostapi.API = (*Host)(nil)

// Call is one recorded host invocation.
type Call struct {
	Method string
	Args   []string
}

// Host is a scripted in-memory host runtime speaking one version's method
// names. Unscripted calls succeed with "true" and clear the last error.
type Host struct {
	dialect *cmi.Dialect

	data      map[string]string
	calls     []Call
	lastError cmi.ErrorCode

	failures     map[string]cmi.ErrorCode
	hiddenErrors map[string]cmi.ErrorCode
	results      map[string]hostapi.Value
	lastErrorRaw *hostapi.Value
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithData seeds the tracking element store.
func WithData(data map[string]string) HostOption {
	return func(h *Host) {
		for k, v := range data {
			h.data[k] = v
		}
	}
}

// WithFailure makes every call to method fail with code.
func WithFailure(method string, code cmi.ErrorCode) HostOption {
	return func(h *Host) { h.Fail(method, code) }
}

// WithHiddenError makes method report success while leaving code as the
// last error.
func WithHiddenError(method string, code cmi.ErrorCode) HostOption {
	return func(h *Host) { h.hiddenErrors[method] = code }
}

// WithResult forces the raw return value of method.
func WithResult(method string, v hostapi.Value) HostOption {
	return func(h *Host) { h.results[method] = v }
}

// WithLastErrorResponse forces the raw return value of the last-error call.
func WithLastErrorResponse(v hostapi.Value) HostOption {
	return func(h *Host) { h.lastErrorRaw = &v }
}

// NewHost returns a host speaking version v.
func NewHost(v cmi.Version, opts ...HostOption) *Host {
	d, ok := cmi.DialectFor(v)
	if !ok {
		panic("scormtest: unsupported version " + string(v))
	}
	h := &Host{
		dialect:      d,
		data:         make(map[string]string),
		failures:     make(map[string]cmi.ErrorCode),
		hiddenErrors: make(map[string]cmi.ErrorCode),
		results:      make(map[string]hostapi.Value),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Dialect returns the dialect the host answers to.
func (h *Host) Dialect() *cmi.Dialect { return h.dialect }

// Fail makes subsequent calls to method fail with code.
func (h *Host) Fail(method string, code cmi.ErrorCode) { h.failures[method] = code }

// Recover undoes Fail for method.
func (h *Host) Recover(method string) { delete(h.failures, method) }

// Value returns the stored value of element.
func (h *Host) Value(element string) (string, bool) {
	v, ok := h.data[element]
	return v, ok
}

// Calls returns a copy of the recorded calls in order.
func (h *Host) Calls() []Call { return slices.Clone(h.calls) }

// Methods returns the recorded method names in order.
func (h *Host) Methods() []string {
	out := make([]string, len(h.calls))
	for i, c := range h.calls {
		out[i] = c.Method
	}
	return out
}

// CallCount counts calls to method.
func (h *Host) CallCount(method string) int {
	n := 0
	for _, c := range h.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls but keeps data and scripting.
func (h *Host) Reset() { h.calls = nil }

func (h *Host) Call(method string, args ...string) hostapi.Value {
	h.calls = append(h.calls, Call{Method: method, Args: slices.Clone(args)})

	d := h.dialect
	switch method {
	case d.GetLastErrorMethod:
		if h.lastErrorRaw != nil {
			return *h.lastErrorRaw
		}
		return hostapi.String(h.lastError.String())
	case d.GetErrorStringMethod:
		return hostapi.String(cmi.ParseErrorCode(arg(args, 0)).Name(d.Version))
	case d.GetDiagnosticMethod:
		return hostapi.String("diagnostic: " + arg(args, 0))
	case d.GetValueMethod:
		if code, ok := h.failures[method]; ok {
			h.lastError = code
			return hostapi.String("")
		}
		h.lastError = h.hiddenErrors[method]
		if v, ok := h.results[method]; ok {
			return v
		}
		return hostapi.String(h.data[arg(args, 0)])
	case d.SetValueMethod:
		if code, ok := h.failures[method]; ok {
			h.lastError = code
			return hostapi.String("false")
		}
		h.data[arg(args, 0)] = arg(args, 1)
		return h.succeed(method)
	case d.InitializeMethod, d.TerminateMethod, d.CommitMethod:
		if code, ok := h.failures[method]; ok {
			h.lastError = code
			return hostapi.String("false")
		}
		return h.succeed(method)
	default:
		return hostapi.Undefined()
	}
}

func (h *Host) succeed(method string) hostapi.Value {
	h.lastError = h.hiddenErrors[method]
	if v, ok := h.results[method]; ok {
		return v
	}
	return hostapi.String("true")
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
