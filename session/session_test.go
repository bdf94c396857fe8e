package session_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/ggoodman/scorm-go/cmi"
	"github.com/ggoodman/scorm-go/hostapi"
	"github.com/ggoodman/scorm-go/scormtest"
	"github.com/ggoodman/scorm-go/session"
)

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

// fixture builds content framed inside an LMS window carrying a host of
// version v.
func fixture(t *testing.T, v cmi.Version, data map[string]string, opts ...scormtest.HostOption) (*session.Session, *scormtest.Host) {
	t.Helper()
	host := scormtest.NewHost(v, append([]scormtest.HostOption{scormtest.WithData(data)}, opts...)...)
	lms := scormtest.NewWindow("lms").Install(v, host)
	content := scormtest.NewWindow("content").WithParent(lms)
	return session.New(content, session.WithLogger(quiet())), host
}

func TestInitializeTerminateRoundTrip(t *testing.T) {
	for _, v := range cmi.Versions {
		t.Run(string(v), func(t *testing.T) {
			s, host := fixture(t, v, nil)
			d := host.Dialect()

			if !s.Initialize() {
				t.Fatalf("initialize failed: %v", s.Err())
			}
			if !s.IsActive() || s.Version() != v {
				t.Fatalf("active=%v version=%q", s.IsActive(), s.Version())
			}
			if !s.Terminate() {
				t.Fatalf("terminate failed: %v", s.Err())
			}
			if s.IsActive() {
				t.Fatalf("session should be inactive")
			}

			methods := host.Methods()
			if n := host.CallCount(d.CommitMethod); n != 1 {
				t.Fatalf("commits = %d (%v)", n, methods)
			}
			if n := host.CallCount(d.TerminateMethod); n != 1 {
				t.Fatalf("terminates = %d", n)
			}
			last := len(methods) - 1
			if methods[last] != d.TerminateMethod || methods[last-1] != d.CommitMethod {
				t.Fatalf("commit must directly precede terminate: %v", methods)
			}
		})
	}
}

func TestInitializeTwiceIsRejectedLocally(t *testing.T) {
	s, host := fixture(t, cmi.Version2004, nil)
	if !s.Initialize() {
		t.Fatalf("first initialize failed")
	}
	if s.Initialize() {
		t.Fatalf("second initialize must fail")
	}
	if !errors.Is(s.Err(), session.ErrAlreadyActive) {
		t.Fatalf("err = %v", s.Err())
	}
	if n := host.CallCount("Initialize"); n != 1 {
		t.Fatalf("host initialize calls = %d", n)
	}
	if !s.IsActive() {
		t.Fatalf("rejected initialize must not deactivate")
	}
}

func TestInactiveOperationsNeverReachHost(t *testing.T) {
	s, host := fixture(t, cmi.Version12, map[string]string{cmi.ElementLessonStatus: cmi.StatusPassed})

	if got := s.Get(cmi.ElementLessonStatus); got != "" {
		t.Fatalf("get = %q", got)
	}
	if !errors.Is(s.Err(), session.ErrInactive) {
		t.Fatalf("get err = %v", s.Err())
	}
	if s.Set(cmi.ElementLessonStatus, cmi.StatusFailed) {
		t.Fatalf("set must fail")
	}
	if s.Commit() {
		t.Fatalf("commit must fail")
	}
	if s.Status() != "" || s.SetStatus(cmi.StatusCompleted) {
		t.Fatalf("status must fail")
	}
	if s.Terminate() {
		t.Fatalf("terminate must fail")
	}
	if !errors.Is(s.Err(), session.ErrInactive) {
		t.Fatalf("terminate err = %v", s.Err())
	}
	if calls := host.Calls(); len(calls) != 0 {
		t.Fatalf("host was contacted: %v", calls)
	}

	s.Initialize()
	s.Terminate()
	host.Reset()
	if s.Set(cmi.ElementCoreExit, cmi.ExitSuspend) || s.Commit() || s.Get(cmi.ElementCoreExit) != "" {
		t.Fatalf("operations after terminate must fail")
	}
	if calls := host.Calls(); len(calls) != 0 {
		t.Fatalf("host was contacted after terminate: %v", calls)
	}
}

func TestInitializeNormalizesCompletionStatus(t *testing.T) {
	cases := []struct {
		version    cmi.Version
		initial    string
		want       string
		wantSet    bool
		wantCommit int
	}{
		{cmi.Version12, cmi.StatusNotAttempted, cmi.StatusIncomplete, true, 1},
		{cmi.Version2004, cmi.StatusNotAttempted, cmi.StatusIncomplete, true, 1},
		{cmi.Version2004, cmi.StatusUnknown, cmi.StatusIncomplete, true, 1},
		{cmi.Version12, cmi.StatusUnknown, cmi.StatusUnknown, false, 1},
		{cmi.Version12, cmi.StatusCompleted, cmi.StatusCompleted, false, 1},
		{cmi.Version12, cmi.StatusPassed, cmi.StatusPassed, false, 1},
		{cmi.Version12, cmi.StatusFailed, cmi.StatusFailed, false, 1},
		{cmi.Version12, cmi.StatusBrowsed, cmi.StatusBrowsed, false, 1},
		{cmi.Version2004, cmi.StatusIncomplete, cmi.StatusIncomplete, false, 1},
		{cmi.Version2004, "", "", false, 0},
	}
	for _, c := range cases {
		t.Run(string(c.version)+"/"+c.initial, func(t *testing.T) {
			d, _ := cmi.DialectFor(c.version)
			s, host := fixture(t, c.version, map[string]string{d.CompletionElement: c.initial})

			if !s.Initialize() {
				t.Fatalf("initialize failed: %v", s.Err())
			}
			if got, _ := host.Value(d.CompletionElement); got != c.want {
				t.Fatalf("host completion = %q, want %q", got, c.want)
			}
			if s.CompletionStatus() != c.want {
				t.Fatalf("cached completion = %q, want %q", s.CompletionStatus(), c.want)
			}
			if got := host.CallCount(d.SetValueMethod) == 1; got != c.wantSet {
				t.Fatalf("set issued = %v, want %v", got, c.wantSet)
			}
			if n := host.CallCount(d.CommitMethod); n != c.wantCommit {
				t.Fatalf("commits = %d, want %d", n, c.wantCommit)
			}
		})
	}
}

func TestInitializeWithoutCompletionHandling(t *testing.T) {
	host := scormtest.NewHost(cmi.Version12, scormtest.WithData(map[string]string{cmi.ElementLessonStatus: cmi.StatusNotAttempted}))
	w := scormtest.NewWindow("lms").Install(cmi.Version12, host)
	s := session.New(w, session.WithLogger(quiet()), session.WithConfig(session.Config{
		HandleCompletionStatus: session.ToggleOff,
	}))

	if !s.Initialize() {
		t.Fatalf("initialize failed")
	}
	if got := host.Methods(); !slices.Equal(got, []string{"LMSInitialize", "LMSGetLastError"}) {
		t.Fatalf("unexpected calls %v", got)
	}
	if v, _ := host.Value(cmi.ElementLessonStatus); v != cmi.StatusNotAttempted {
		t.Fatalf("status changed to %q", v)
	}
}

func TestTerminateExitMode(t *testing.T) {
	cases := []struct {
		version cmi.Version
		status  string
		want    string
	}{
		{cmi.Version12, cmi.StatusCompleted, cmi.ExitLogout},
		{cmi.Version12, cmi.StatusPassed, cmi.ExitLogout},
		{cmi.Version12, cmi.StatusFailed, cmi.ExitSuspend},
		{cmi.Version12, cmi.StatusIncomplete, cmi.ExitSuspend},
		{cmi.Version2004, cmi.StatusCompleted, cmi.ExitNormal},
		{cmi.Version2004, cmi.StatusIncomplete, cmi.ExitSuspend},
		{cmi.Version2004, "", cmi.ExitSuspend},
	}
	for _, c := range cases {
		t.Run(string(c.version)+"/"+c.status, func(t *testing.T) {
			s, host := fixture(t, c.version, nil)
			d := host.Dialect()
			if !s.Initialize() {
				t.Fatalf("initialize failed")
			}
			if c.status != "" && !s.SetStatus(c.status) {
				t.Fatalf("set status failed")
			}
			if !s.Terminate() {
				t.Fatalf("terminate failed: %v", s.Err())
			}
			if got, _ := host.Value(d.ExitElement); got != c.want {
				t.Fatalf("exit = %q, want %q", got, c.want)
			}
		})
	}
}

func TestTerminateKeepsObservedExit(t *testing.T) {
	s, host := fixture(t, cmi.Version2004, map[string]string{cmi.ElementExit: "time-out"})
	s.Initialize()
	if got := s.Get(cmi.ElementExit); got != "time-out" {
		t.Fatalf("get exit = %q", got)
	}
	if s.ExitStatus() != "time-out" {
		t.Fatalf("exit not cached")
	}
	host.Reset()
	if !s.Terminate() {
		t.Fatalf("terminate failed")
	}
	if got := host.Methods(); !slices.Equal(got, []string{"Commit", "Terminate"}) {
		t.Fatalf("unexpected calls %v", got)
	}
}

func TestTerminateWithoutExitHandling(t *testing.T) {
	host := scormtest.NewHost(cmi.Version2004)
	w := scormtest.NewWindow("lms").Install(cmi.Version2004, host)
	s := session.New(w, session.WithLogger(quiet()), session.WithConfig(session.Config{
		HandleExitMode: session.ToggleOff,
	}))
	s.Initialize()
	s.Terminate()
	if host.CallCount("SetValue") != 0 {
		t.Fatalf("exit must not be written: %v", host.Methods())
	}
}

func TestTerminateCommitFailureBlocksTerminate(t *testing.T) {
	s, host := fixture(t, cmi.Version12, nil)
	s.Initialize()

	host.Fail("LMSCommit", cmi.CodeGeneralException)
	if s.Terminate() {
		t.Fatalf("terminate must fail when commit fails")
	}
	if !errors.Is(s.Err(), session.ErrHostRejected) {
		t.Fatalf("err = %v", s.Err())
	}
	if host.CallCount("LMSFinish") != 0 {
		t.Fatalf("terminate call must not be issued")
	}
	if !s.IsActive() {
		t.Fatalf("session must stay active for a retry")
	}

	host.Recover("LMSCommit")
	if !s.Terminate() {
		t.Fatalf("retry failed: %v", s.Err())
	}
	if s.IsActive() || host.CallCount("LMSFinish") != 1 {
		t.Fatalf("retry did not terminate")
	}
}

func TestTerminateHostFailureIsRetryable(t *testing.T) {
	s, host := fixture(t, cmi.Version2004, nil)
	s.Initialize()

	host.Fail("Terminate", cmi.CodeGeneralTerminationFailure)
	if s.Terminate() {
		t.Fatalf("terminate should fail")
	}
	var he *session.HostError
	if !errors.As(s.Err(), &he) || he.Code != cmi.CodeGeneralTerminationFailure {
		t.Fatalf("err = %v", s.Err())
	}
	if he.Message != "General Termination Failure" {
		t.Fatalf("message = %q", he.Message)
	}
	if !s.IsActive() {
		t.Fatalf("failed terminate must leave the session active")
	}

	host.Recover("Terminate")
	if !s.Terminate() || s.IsActive() {
		t.Fatalf("retry failed")
	}
}

func TestInitializeFailures(t *testing.T) {
	t.Run("host error", func(t *testing.T) {
		s, _ := fixture(t, cmi.Version2004, nil, scormtest.WithFailure("Initialize", cmi.CodeGeneralInitializationFailure))
		if s.Initialize() {
			t.Fatalf("initialize should fail")
		}
		var he *session.HostError
		if !errors.As(s.Err(), &he) || he.Code != cmi.CodeGeneralInitializationFailure || he.Hidden {
			t.Fatalf("err = %#v", s.Err())
		}
		if s.IsActive() {
			t.Fatalf("must stay inactive")
		}
	})

	t.Run("no response", func(t *testing.T) {
		s, _ := fixture(t, cmi.Version12, nil, scormtest.WithResult("LMSInitialize", hostapi.String("false")))
		if s.Initialize() {
			t.Fatalf("initialize should fail")
		}
		if !errors.Is(s.Err(), session.ErrNoResponse) {
			t.Fatalf("err = %v", s.Err())
		}
	})

	t.Run("undefined result", func(t *testing.T) {
		s, _ := fixture(t, cmi.Version12, nil, scormtest.WithResult("LMSInitialize", hostapi.Undefined()))
		if s.Initialize() || s.IsActive() {
			t.Fatalf("undefined is not success")
		}
	})

	t.Run("hidden error", func(t *testing.T) {
		s, host := fixture(t, cmi.Version2004, nil, scormtest.WithHiddenError("Initialize", cmi.CodeAlreadyInitialized))
		if s.Initialize() {
			t.Fatalf("initialize must fail on a non-zero error code")
		}
		var he *session.HostError
		if !errors.As(s.Err(), &he) || !he.Hidden || he.Code != cmi.CodeAlreadyInitialized {
			t.Fatalf("err = %v", s.Err())
		}
		if s.IsActive() {
			t.Fatalf("must stay inactive")
		}
		if host.CallCount("GetValue") != 0 {
			t.Fatalf("completion handling must not run")
		}
	})

	t.Run("unparseable error code", func(t *testing.T) {
		s, _ := fixture(t, cmi.Version2004, nil, scormtest.WithLastErrorResponse(hostapi.Undefined()))
		if s.Initialize() {
			t.Fatalf("initialize must not succeed without a confirmed zero code")
		}
		var he *session.HostError
		if !errors.As(s.Err(), &he) || he.Code != cmi.Unparseable {
			t.Fatalf("err = %v", s.Err())
		}
	})
}

func TestNoAPI(t *testing.T) {
	content := scormtest.NewWindow("content").WithParent(scormtest.NewWindow("top"))
	s := session.New(content, session.WithLogger(quiet()))

	if s.Initialize() {
		t.Fatalf("initialize must fail")
	}
	if !errors.Is(s.Err(), session.ErrNoAPI) {
		t.Fatalf("err = %v", s.Err())
	}
	if got := s.LastError(); got != cmi.NoError {
		t.Fatalf("last error = %d", got)
	}
	if !errors.Is(s.Err(), session.ErrNoAPI) {
		t.Fatalf("LastError should record ErrNoAPI, got %v", s.Err())
	}
	if s.ErrorString(cmi.CodeGeneralException) != "" || s.Diagnostic(cmi.CodeGeneralException) != "" {
		t.Fatalf("expected empty descriptions")
	}

	// The failed search is final for this session.
	content.WithParent(scormtest.NewWindow("lms").Install(cmi.Version2004, scormtest.NewHost(cmi.Version2004)))
	if s.Initialize() {
		t.Fatalf("a failed search must not be retried")
	}
}

func TestConfiguredVersionIsExclusive(t *testing.T) {
	host := scormtest.NewHost(cmi.Version2004)
	w := scormtest.NewWindow("lms").Install(cmi.Version2004, host)
	s := session.New(w, session.WithLogger(quiet()))
	if !s.Configure(session.Config{Version: cmi.Version12}) {
		t.Fatalf("configure failed")
	}
	if s.Initialize() {
		t.Fatalf("1.2 was configured; 2004 host must not be used")
	}
	if !errors.Is(s.Err(), session.ErrNoAPI) {
		t.Fatalf("err = %v", s.Err())
	}
	if len(host.Calls()) != 0 {
		t.Fatalf("host contacted: %v", host.Methods())
	}
}

func TestConfigure(t *testing.T) {
	s, _ := fixture(t, cmi.Version2004, nil)
	if !s.Configure(session.Config{Debug: session.ToggleOff}) {
		t.Fatalf("configure before initialize should succeed")
	}
	s.Initialize()
	if s.Configure(session.Config{}) {
		t.Fatalf("configure while active should fail")
	}
	if !errors.Is(s.Err(), session.ErrAlreadyActive) {
		t.Fatalf("err = %v", s.Err())
	}
	s.Terminate()

	if s.Configure(session.Config{Version: cmi.Version12}) {
		t.Fatalf("changing a bound version should fail")
	}
	if !errors.Is(s.Err(), session.ErrVersionFrozen) {
		t.Fatalf("err = %v", s.Err())
	}
	if !s.Configure(session.Config{Version: cmi.Version2004, HandleExitMode: session.ToggleOff}) {
		t.Fatalf("same version should be accepted")
	}
	if s.Version() != cmi.Version2004 || s.Config().HandleExitMode.Enabled() {
		t.Fatalf("config not applied")
	}
}

func TestGetSemantics(t *testing.T) {
	s, host := fixture(t, cmi.Version12, map[string]string{
		cmi.ElementLessonStatus: cmi.StatusIncomplete,
		"cmi.core.student_name": "Doe, Jane",
		"cmi.suspend_data":      "",
	})
	s.Initialize()

	if got := s.Get("cmi.core.student_name"); got != "Doe, Jane" || s.Err() != nil {
		t.Fatalf("get = %q err=%v", got, s.Err())
	}
	if got := s.Get("cmi.suspend_data"); got != "" || s.Err() != nil {
		t.Fatalf("empty stored value should succeed, err=%v", s.Err())
	}

	host.Fail("LMSGetValue", cmi.CodeGeneralArgument)
	if got := s.Get("cmi.bogus"); got != "" {
		t.Fatalf("failed read must return empty string, got %q", got)
	}
	var he *session.HostError
	if !errors.As(s.Err(), &he) || he.Code != cmi.CodeGeneralArgument {
		t.Fatalf("err = %v", s.Err())
	}
	host.Recover("LMSGetValue")

	// Another writer (the host UI, a sibling SCO) changes the status.
	host.Call("LMSSetValue", cmi.ElementLessonStatus, cmi.StatusPassed)
	if got := s.Status(); got != cmi.StatusPassed || s.CompletionStatus() != cmi.StatusPassed {
		t.Fatalf("status = %q cached = %q", got, s.CompletionStatus())
	}
}

func TestSetSemantics(t *testing.T) {
	s, host := fixture(t, cmi.Version2004, nil)
	s.Initialize()

	if !s.Set(cmi.ElementCompletionStatus, cmi.StatusCompleted) {
		t.Fatalf("set failed")
	}
	if s.CompletionStatus() != cmi.StatusCompleted {
		t.Fatalf("completion cache not updated")
	}
	if !s.Set(cmi.ElementExit, cmi.ExitSuspend) {
		t.Fatalf("set exit failed")
	}
	if s.ExitStatus() != "" {
		t.Fatalf("writing exit must not populate the exit cache")
	}

	host.Fail("SetValue", cmi.CodeElementReadOnly)
	if s.Set("cmi.learner_id", "x") {
		t.Fatalf("set should fail")
	}
	var he *session.HostError
	if !errors.As(s.Err(), &he) || he.Code != cmi.CodeElementReadOnly || he.Message != "Data Model Element Is Read Only" {
		t.Fatalf("err = %v", s.Err())
	}
	if s.Set(cmi.ElementCompletionStatus, cmi.StatusIncomplete) {
		t.Fatalf("set should fail")
	}
	if s.CompletionStatus() != cmi.StatusCompleted {
		t.Fatalf("failed set must not update the cache")
	}
}

func TestUpdateStatusNil(t *testing.T) {
	s, host := fixture(t, cmi.Version2004, nil)
	s.Initialize()
	host.Reset()

	if s.UpdateStatus(nil) {
		t.Fatalf("nil status must be rejected")
	}
	if !errors.Is(s.Err(), session.ErrNoStatus) {
		t.Fatalf("err = %v", s.Err())
	}
	if len(host.Calls()) != 0 {
		t.Fatalf("host contacted: %v", host.Methods())
	}

	empty := ""
	if !s.UpdateStatus(&empty) {
		t.Fatalf("empty string is a valid value: %v", s.Err())
	}
}

func TestCommitFailure(t *testing.T) {
	s, host := fixture(t, cmi.Version2004, nil)
	s.Initialize()
	host.Fail("Commit", cmi.CodeGeneralCommitFailure)
	if s.Commit() {
		t.Fatalf("commit should fail")
	}
	if !errors.Is(s.Err(), session.ErrHostRejected) {
		t.Fatalf("err = %v", s.Err())
	}
	host.Recover("Commit")
	if !s.Commit() || s.Err() != nil {
		t.Fatalf("commit should succeed")
	}
}

func TestErrorReporter(t *testing.T) {
	s, host := fixture(t, cmi.Version12, nil)

	// Error inspection works before initialize; it only needs the handle.
	if got := s.LastError(); got != cmi.NoError {
		t.Fatalf("last error = %d", got)
	}
	if s.Version() != cmi.Version12 {
		t.Fatalf("version should be resolved by discovery, got %q", s.Version())
	}

	host.Fail("LMSSetValue", 405)
	s.Initialize()
	s.Set("cmi.core.lesson_location", "x")
	if got := s.LastError(); got != 405 {
		t.Fatalf("last error = %d", got)
	}
	if got := s.ErrorString(405); got != "Incorrect Data Type" {
		t.Fatalf("error string = %q", got)
	}
	if got := s.Diagnostic(405); got != "diagnostic: 405" {
		t.Fatalf("diagnostic = %q", got)
	}
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	w := scormtest.NewWindow("lms").Install(cmi.Version2004, scormtest.NewHost(cmi.Version2004))

	s := session.New(w, session.WithLogger(logger), session.WithIDGenerator(func() string { return "sess-42" }),
		session.WithConfig(session.Config{Debug: session.ToggleOff}))
	s.Initialize()
	s.Terminate()
	if buf.Len() != 0 {
		t.Fatalf("debug off should be silent, got %q", buf.String())
	}

	if !s.Configure(session.Config{}) {
		t.Fatalf("configure failed: %v", s.Err())
	}
	if s.Terminate() {
		t.Fatalf("terminate on an inactive session should fail")
	}
	out := buf.String()
	if !strings.Contains(out, "session_id=sess-42") || !strings.Contains(out, "op=terminate") {
		t.Fatalf("unexpected log output %q", out)
	}
	if s.ID() != "sess-42" {
		t.Fatalf("id = %q", s.ID())
	}
}
