package hostapi

import (
	"strconv"

	"github.com/ggoodman/scorm-go/cmi"
)

// API is a host runtime object. Call invokes the named method
// synchronously and returns whatever the host produced.
type API interface {
	Call(method string, args ...string) Value
}

// APIFunc adapts a function to the API interface.
type APIFunc func(method string, args ...string) Value

func (f APIFunc) Call(method string, args ...string) Value { return f(method, args...) }

// Client issues dialect-specific calls against an API.
type Client struct {
	api     API
	dialect *cmi.Dialect
}

// NewClient binds api to dialect. Both must be non-nil.
func NewClient(api API, dialect *cmi.Dialect) *Client {
	return &Client{api: api, dialect: dialect}
}

// Dialect returns the dialect the client was bound to.
func (c *Client) Dialect() *cmi.Dialect { return c.dialect }

// Version is shorthand for c.Dialect().Version.
func (c *Client) Version() cmi.Version { return c.dialect.Version }

func (c *Client) Initialize() Truth {
	return Coerce(c.api.Call(c.dialect.InitializeMethod, ""))
}

func (c *Client) Terminate() Truth {
	return Coerce(c.api.Call(c.dialect.TerminateMethod, ""))
}

// GetValue returns the raw value; an empty string is ambiguous between a
// stored empty value and a failed read.
func (c *Client) GetValue(element string) Value {
	return c.api.Call(c.dialect.GetValueMethod, element)
}

func (c *Client) SetValue(element, value string) Truth {
	return Coerce(c.api.Call(c.dialect.SetValueMethod, element, value))
}

func (c *Client) Commit() Truth {
	return Coerce(c.api.Call(c.dialect.CommitMethod, ""))
}

// LastError parses the host's last-error response; see cmi.ParseErrorCode.
func (c *Client) LastError() cmi.ErrorCode {
	return cmi.ParseErrorCode(c.api.Call(c.dialect.GetLastErrorMethod).String())
}

func (c *Client) ErrorString(code cmi.ErrorCode) string {
	return c.api.Call(c.dialect.GetErrorStringMethod, strconv.Itoa(int(code))).String()
}

func (c *Client) Diagnostic(code cmi.ErrorCode) string {
	return c.api.Call(c.dialect.GetDiagnosticMethod, strconv.Itoa(int(code))).String()
}
