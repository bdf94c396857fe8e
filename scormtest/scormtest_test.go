package scormtest

import (
	"testing"

	"github.com/ggoodman/scorm-go/cmi"
	"github.com/ggoodman/scorm-go/hostapi"
)

func TestHostDefaults(t *testing.T) {
	h := NewHost(cmi.Version12, WithData(map[string]string{cmi.ElementLessonStatus: cmi.StatusIncomplete}))

	if got := hostapi.Coerce(h.Call("LMSInitialize", "")); !got.OK() {
		t.Fatalf("initialize = %v", got)
	}
	if got := h.Call("LMSGetValue", cmi.ElementLessonStatus).String(); got != cmi.StatusIncomplete {
		t.Fatalf("get = %q", got)
	}
	if got := hostapi.Coerce(h.Call("LMSSetValue", cmi.ElementCoreExit, cmi.ExitSuspend)); !got.OK() {
		t.Fatalf("set = %v", got)
	}
	if v, _ := h.Value(cmi.ElementCoreExit); v != cmi.ExitSuspend {
		t.Fatalf("stored exit = %q", v)
	}
	if got := h.Call("LMSGetLastError").String(); got != "0" {
		t.Fatalf("last error = %q", got)
	}
	if got := h.Call("Initialize", ""); !got.IsUndefined() {
		t.Fatalf("foreign method should be undefined, got %#v", got)
	}
	if h.CallCount("LMSGetValue") != 1 || len(h.Methods()) != 5 {
		t.Fatalf("calls = %v", h.Methods())
	}
}

func TestHostFailures(t *testing.T) {
	h := NewHost(cmi.Version2004, WithFailure("Commit", cmi.CodeGeneralCommitFailure))

	if got := hostapi.Coerce(h.Call("Commit", "")); got.OK() {
		t.Fatalf("commit should fail")
	}
	if got := h.Call("GetLastError").String(); got != "391" {
		t.Fatalf("last error = %q", got)
	}
	if got := h.Call("GetErrorString", "391").String(); got != "General Commit Failure" {
		t.Fatalf("error string = %q", got)
	}

	h.Recover("Commit")
	if got := hostapi.Coerce(h.Call("Commit", "")); !got.OK() {
		t.Fatalf("commit should succeed after Recover")
	}
	if got := h.Call("GetLastError").String(); got != "0" {
		t.Fatalf("last error after recovery = %q", got)
	}
}

func TestHostHiddenErrorAndOverrides(t *testing.T) {
	h := NewHost(cmi.Version2004,
		WithHiddenError("Initialize", cmi.CodeGeneralInitializationFailure),
		WithResult("Terminate", hostapi.Number(1)),
		WithLastErrorResponse(hostapi.Undefined()),
	)
	if got := hostapi.Coerce(h.Call("Initialize", "")); !got.OK() {
		t.Fatalf("initialize should report success")
	}
	if got := h.Call("GetLastError"); !got.IsUndefined() {
		t.Fatalf("last error override ignored: %#v", got)
	}
	if got := h.Call("Terminate", ""); got.Kind() != hostapi.KindNumber {
		t.Fatalf("terminate override ignored: %#v", got)
	}
}

func TestWindowGraph(t *testing.T) {
	top := NewWindow("top")
	mid := NewWindow("mid").WithParent(top)
	leaf := NewWindow("leaf").WithParent(mid)

	if p, _ := top.Parent(); !p.Same(top) {
		t.Fatalf("top's parent should be itself")
	}
	if got, _ := leaf.Top(); !got.Same(top) {
		t.Fatalf("leaf top = %v", got)
	}
	if _, ok := leaf.Opener(); ok {
		t.Fatalf("unexpected opener")
	}

	a := NewWindow("a")
	b := NewWindow("b").WithParent(a)
	a.WithParent(b)
	if got, _ := a.Top(); got == nil {
		t.Fatalf("cyclic top must terminate")
	}

	h := NewHost(cmi.Version12)
	top.Install(cmi.Version12, h)
	if api, ok := top.Lookup("API"); !ok || api != h {
		t.Fatalf("install failed")
	}
	if top.Lookups() != 1 {
		t.Fatalf("lookups = %d", top.Lookups())
	}
}
