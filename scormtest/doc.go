// Package scormtest provides in-memory doubles for exercising the adapter
// without a browser: Window builds arbitrary frame graphs (including cyclic
// ones) and Host is a scripted host runtime that stores tracking elements in
// a map and records every call it receives.
//
// Example:
//
//	host := scormtest.NewHost(cmi.Version2004,
//		scormtest.WithData(map[string]string{cmi.ElementCompletionStatus: cmi.StatusNotAttempted}))
//	lms := scormtest.NewWindow("lms")
//	lms.Install(cmi.Version2004, host)
//	content := scormtest.NewWindow("content").WithParent(lms)
//
//	s := session.New(content)
//	s.Initialize()
//	// host.CallCount("Commit") == 1
//
// Host is a test double only; it implements just enough runtime behaviour
// to drive the session state machine.
package scormtest
