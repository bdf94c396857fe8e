package cmi

// Dialect is the per-version table of host method names and tracking
// element names. Dialects are immutable; obtain one with DialectFor.
type Dialect struct {
	Version Version

	// Property is the window property under which the host object is
	// injected.
	Property string

	InitializeMethod     string
	TerminateMethod      string
	GetValueMethod       string
	SetValueMethod       string
	CommitMethod         string
	GetLastErrorMethod   string
	GetErrorStringMethod string
	GetDiagnosticMethod  string

	CompletionElement string
	ExitElement       string

	// NormalExit is written to ExitElement when a finished attempt ends.
	NormalExit string

	// resettable holds completion values rewritten to "incomplete" on launch.
	resettable map[string]struct{}
}

var dialect12 = &Dialect{
	Version:              Version12,
	Property:             "API",
	InitializeMethod:     "LMSInitialize",
	TerminateMethod:      "LMSFinish",
	GetValueMethod:       "LMSGetValue",
	SetValueMethod:       "LMSSetValue",
	CommitMethod:         "LMSCommit",
	GetLastErrorMethod:   "LMSGetLastError",
	GetErrorStringMethod: "LMSGetErrorString",
	GetDiagnosticMethod:  "LMSGetDiagnostic",
	CompletionElement:    ElementLessonStatus,
	ExitElement:          ElementCoreExit,
	NormalExit:           ExitLogout,
	resettable: map[string]struct{}{
		StatusNotAttempted: {},
	},
}

var dialect2004 = &Dialect{
	Version:              Version2004,
	Property:             "API_1484_11",
	InitializeMethod:     "Initialize",
	TerminateMethod:      "Terminate",
	GetValueMethod:       "GetValue",
	SetValueMethod:       "SetValue",
	CommitMethod:         "Commit",
	GetLastErrorMethod:   "GetLastError",
	GetErrorStringMethod: "GetErrorString",
	GetDiagnosticMethod:  "GetDiagnostic",
	CompletionElement:    ElementCompletionStatus,
	ExitElement:          ElementExit,
	NormalExit:           ExitNormal,
	resettable: map[string]struct{}{
		StatusNotAttempted: {},
		StatusUnknown:      {},
	},
}

// DialectFor returns the dialect of v. It reports false for the zero or an
// unsupported version.
func DialectFor(v Version) (*Dialect, bool) {
	switch v {
	case Version12:
		return dialect12, true
	case Version2004:
		return dialect2004, true
	default:
		return nil, false
	}
}

// ResetsOnLaunch reports whether a completion value read right after
// initialization should be rewritten to StatusIncomplete.
func (d *Dialect) ResetsOnLaunch(status string) bool {
	_, ok := d.resettable[status]
	return ok
}

// ExitFor picks the exit mode for an attempt whose last observed completion
// status is status: finished attempts exit normally, everything else
// suspends.
func (d *Dialect) ExitFor(status string) string {
	if IsFinished(status) {
		return d.NormalExit
	}
	return ExitSuspend
}
