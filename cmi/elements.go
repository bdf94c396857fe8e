package cmi

// Tracking element names.
const (
	ElementLessonStatus     = "cmi.core.lesson_status"
	ElementCompletionStatus = "cmi.completion_status"
	ElementCoreExit         = "cmi.core.exit"
	ElementExit             = "cmi.exit"
)

// Completion status values. Passed, failed and browsed only exist in 1.2;
// unknown only in 2004.
const (
	StatusNotAttempted = "not attempted"
	StatusIncomplete   = "incomplete"
	StatusCompleted    = "completed"
	StatusPassed       = "passed"
	StatusFailed       = "failed"
	StatusBrowsed      = "browsed"
	StatusUnknown      = "unknown"
)

// Exit mode values.
const (
	ExitSuspend = "suspend"
	ExitLogout  = "logout"
	ExitNormal  = "normal"
)

// IsCompletionElement reports whether name is the completion (1.2 lesson)
// status element of either version.
func IsCompletionElement(name string) bool {
	return name == ElementLessonStatus || name == ElementCompletionStatus
}

// IsExitElement reports whether name is the exit element of either version.
func IsExitElement(name string) bool {
	return name == ElementCoreExit || name == ElementExit
}

// IsFinished reports whether status marks an attempt the learner finished.
func IsFinished(status string) bool {
	return status == StatusCompleted || status == StatusPassed
}
