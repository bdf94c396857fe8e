package session

import (
	"errors"
	"fmt"

	"github.com/ggoodman/scorm-go/cmi"
)

var (
	// ErrNoAPI means no host object was reachable from the starting window.
	ErrNoAPI = errors.New("scorm: API object not found")
	// ErrInactive means the operation requires an initialized session.
	ErrInactive = errors.New("scorm: connection is inactive")
	// ErrAlreadyActive means initialize or configure was called on an
	// initialized session.
	ErrAlreadyActive = errors.New("scorm: connection already active")
	// ErrVersionFrozen means configure tried to change a resolved version.
	ErrVersionFrozen = errors.New("scorm: runtime version already resolved")
	// ErrNoStatus means a status write was requested without a value.
	ErrNoStatus = errors.New("scorm: status was not specified")
	// ErrNoResponse means the host rejected a call without reporting an
	// error code.
	ErrNoResponse = errors.New("scorm: no response from server")
	// ErrHostRejected is wrapped by every HostError.
	ErrHostRejected = errors.New("scorm: host rejected call")
)

// HostError is a failure reported by the host runtime. Hidden is set when
// the call itself claimed success but the last-error code was non-zero.
type HostError struct {
	Op      string
	Code    cmi.ErrorCode
	Message string
	Hidden  bool
}

func (e *HostError) Error() string {
	if e.Hidden {
		return fmt.Sprintf("%s: host reported success with error %d: %s", e.Op, e.Code, e.Message)
	}
	return fmt.Sprintf("%s failed: error %d: %s", e.Op, e.Code, e.Message)
}

func (e *HostError) Unwrap() error { return ErrHostRejected }
