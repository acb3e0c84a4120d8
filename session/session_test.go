// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package session

import (
	"bytes"
	"errors"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"github.com/gogpu/xrframe"
	"github.com/gogpu/xrframe/graphics"
	"github.com/gogpu/xrframe/xr"
	"github.com/gogpu/xrframe/xr/sim"
)

func testBinding(t *testing.T, v xr.Version) *graphics.Binding {
	t.Helper()
	b, err := graphics.NewBinding(xr.GraphicsBinding{Display: 1, Config: 1, Context: 1}, v)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// newSession connects to rt and creates a session.
func newSession(t *testing.T, rt *sim.Runtime) *StateMachine {
	t.Helper()
	inst, err := Connect(rt, Config{AppName: "test"})
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	sm := NewStateMachine(inst)
	if _, err := sm.CreateSession(testBinding(t, xr.MakeVersion(3, 2, 0))); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	t.Cleanup(func() {
		_ = sm.Destroy()
		_ = inst.Close()
	})
	return sm
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	xrframe.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { xrframe.SetLogger(nil) })
	return &buf
}

func TestConnect(t *testing.T) {
	rt := sim.New()
	inst, err := Connect(rt, Config{AppName: "test", Extensions: []string{"XR_KHR_opengl_es_enable"}})
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	if inst.Handle().IsNull() || inst.System() == xr.NullSystemID {
		t.Errorf("Connect() handle=%v system=%v", inst.Handle(), inst.System())
	}
	if inst.SystemProperties().SystemName == "" {
		t.Error("system properties not queried")
	}
	if inst.GraphicsRequirements() != sim.DefaultRequirements {
		t.Errorf("GraphicsRequirements() = %+v, want %+v", inst.GraphicsRequirements(), sim.DefaultRequirements)
	}

	if err := inst.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := inst.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if rt.Count("xrDestroyInstance") != 1 {
		t.Errorf("xrDestroyInstance calls = %d, want 1", rt.Count("xrDestroyInstance"))
	}
}

func TestConnectFailure(t *testing.T) {
	tests := []struct {
		op          string
		wantDestroy int
	}{
		{"xrCreateInstance", 0},
		{"xrGetSystem", 1},
		{"xrGetGraphicsRequirements", 1},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			rt := sim.New()
			rt.FailNext(tt.op, xr.ErrorRuntimeFailure)
			_, err := Connect(rt, Config{AppName: "test"})
			if !xr.IsResult(err, xr.ErrorRuntimeFailure) {
				t.Fatalf("Connect() error = %v, want XR_ERROR_RUNTIME_FAILURE", err)
			}
			if got := rt.Count("xrDestroyInstance"); got != tt.wantDestroy {
				t.Errorf("xrDestroyInstance calls = %d, want %d", got, tt.wantDestroy)
			}
		})
	}
}

func TestCreateSessionGraphicsVersion(t *testing.T) {
	rt := sim.New()
	inst, err := Connect(rt, Config{AppName: "test"})
	if err != nil {
		t.Fatal(err)
	}
	defer inst.Close()

	for _, v := range []xr.Version{xr.MakeVersion(2, 0, 0), xr.MakeVersion(3, 3, 0)} {
		sm := NewStateMachine(inst)
		_, err := sm.CreateSession(testBinding(t, v))
		if !errors.Is(err, ErrGraphicsVersion) {
			t.Errorf("CreateSession(%s) error = %v, want ErrGraphicsVersion", v, err)
		}
	}
	if rt.Count("xrCreateSession") != 0 {
		t.Errorf("xrCreateSession called %d times after failed version check", rt.Count("xrCreateSession"))
	}
}

func TestCreateSessionSpaces(t *testing.T) {
	rt := sim.New(sim.WithManualLifecycle())
	sm := newSession(t, rt)

	if sm.AppSpace().IsNull() || sm.StageSpace().IsNull() {
		t.Fatalf("spaces app=%v stage=%v", sm.AppSpace(), sm.StageSpace())
	}
	if rt.SpaceCount() != 2 {
		t.Errorf("SpaceCount() = %d, want 2", rt.SpaceCount())
	}
	if _, err := sm.CreateSession(testBinding(t, xr.MakeVersion(3, 2, 0))); !errors.Is(err, ErrSessionExists) {
		t.Errorf("second CreateSession() error = %v, want ErrSessionExists", err)
	}
	if _, err := sm.CreateSession(nil); err == nil {
		t.Error("CreateSession(nil) should fail")
	}

	if err := sm.Destroy(); err != nil {
		t.Fatalf("Destroy() error = %v", err)
	}
	if rt.SpaceCount() != 0 || !rt.Session().IsNull() {
		t.Errorf("after Destroy spaces=%d session=%v", rt.SpaceCount(), rt.Session())
	}
	if err := sm.Destroy(); err != nil {
		t.Errorf("second Destroy() error = %v", err)
	}
}

func TestCreateSessionRuntimeFailure(t *testing.T) {
	rt := sim.New()
	inst, err := Connect(rt, Config{AppName: "test"})
	if err != nil {
		t.Fatal(err)
	}
	defer inst.Close()

	rt.FailNext("xrCreateReferenceSpace", xr.ErrorOutOfMemory)
	sm := NewStateMachine(inst)
	if _, err := sm.CreateSession(testBinding(t, xr.MakeVersion(3, 0, 0))); !xr.IsResult(err, xr.ErrorOutOfMemory) {
		t.Fatalf("CreateSession() error = %v", err)
	}
	if !sm.Session().IsNull() || !rt.Session().IsNull() {
		t.Error("session leaked after space creation failure")
	}
}

func TestReadyThenStopping(t *testing.T) {
	rt := sim.New(sim.WithManualLifecycle())
	sm := newSession(t, rt)

	rt.PushState(xr.SessionStateReady)
	if res := sm.PollEvents(); res.ExitLoop {
		t.Fatalf("PollEvents() = %+v after READY", res)
	}
	if !sm.IsRunning() {
		t.Fatal("IsRunning() = false after READY")
	}

	rt.PushState(xr.SessionStateStopping)
	sm.PollEvents()
	if sm.IsRunning() {
		t.Fatal("IsRunning() = true after STOPPING")
	}
	if rt.Count("xrBeginSession") != 1 || rt.Count("xrEndSession") != 1 {
		t.Errorf("begin/end = %d/%d, want 1/1", rt.Count("xrBeginSession"), rt.Count("xrEndSession"))
	}
}

func TestExitAndRestartSignals(t *testing.T) {
	tests := []struct {
		name  string
		state xr.SessionState
		want  PollResult
	}{
		{"loss pending", xr.SessionStateLossPending, PollResult{ExitLoop: true, RequestRestart: true}},
		{"exiting", xr.SessionStateExiting, PollResult{ExitLoop: true, RequestRestart: false}},
		{"idle", xr.SessionStateIdle, PollResult{}},
		{"focused", xr.SessionStateFocused, PollResult{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := sim.New(sim.WithManualLifecycle())
			sm := newSession(t, rt)
			rt.PushState(tt.state)
			if got := sm.PollEvents(); got != tt.want {
				t.Errorf("PollEvents() = %+v, want %+v", got, tt.want)
			}
			if sm.State() != tt.state {
				t.Errorf("State() = %v, want %v", sm.State(), tt.state)
			}
		})
	}
}

func TestInstanceLossStopsDraining(t *testing.T) {
	rt := sim.New(sim.WithManualLifecycle())
	sm := newSession(t, rt)

	rt.LoseInstance()
	rt.PushState(xr.SessionStateReady)
	res := sm.PollEvents()
	if !res.ExitLoop || !res.RequestRestart {
		t.Fatalf("PollEvents() = %+v, want exit+restart", res)
	}
	if rt.PendingEvents() != 1 {
		t.Errorf("PendingEvents() = %d, want 1 left undrained", rt.PendingEvents())
	}
	if sm.IsRunning() {
		t.Error("IsRunning() = true after instance loss")
	}
}

func TestForeignSessionEventDropped(t *testing.T) {
	logs := captureLogs(t)
	rt := sim.New(sim.WithManualLifecycle())
	sm := newSession(t, rt)

	rt.Push(xr.SessionStateChanged{Session: sm.Session() + 1000, State: xr.SessionStateReady})
	res := sm.PollEvents()
	if res != (PollResult{}) {
		t.Errorf("PollEvents() = %+v, want zero", res)
	}
	if sm.State() != xr.SessionStateUnknown || sm.IsRunning() {
		t.Errorf("State() = %v running=%v, want UNKNOWN and not running", sm.State(), sm.IsRunning())
	}
	if rt.Count("xrBeginSession") != 0 {
		t.Error("foreign READY began the session")
	}
	if !strings.Contains(logs.String(), "foreign session") {
		t.Errorf("foreign session event not logged: %s", logs.String())
	}
}

func TestNonFatalEvents(t *testing.T) {
	logs := captureLogs(t)
	rt := sim.New(sim.WithManualLifecycle())
	sm := newSession(t, rt)

	rt.Push(
		xr.EventsLost{LostEventCount: 3},
		xr.UnknownEvent{Type: 12345},
		xr.InteractionProfileChanged{Session: sm.Session()},
		xr.ReferenceSpaceChangePending{Session: sm.Session(), SpaceType: xr.ReferenceSpaceStage},
	)
	rt.PushState(xr.SessionStateReady)
	res := sm.PollEvents()
	if res.ExitLoop {
		t.Fatalf("PollEvents() = %+v", res)
	}
	if !sm.IsRunning() {
		t.Error("READY after non-fatal events not applied")
	}
	for _, want := range []string{"events lost", "event ignored", "interaction profile", "reference space change"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("log missing %q", want)
		}
	}
}

func TestDoubleReadyBeginsOnce(t *testing.T) {
	rt := sim.New(sim.WithManualLifecycle())
	sm := newSession(t, rt)

	rt.PushState(xr.SessionStateReady, xr.SessionStateReady)
	if res := sm.PollEvents(); res.Err != nil {
		t.Fatalf("PollEvents() error = %v", res.Err)
	}
	if rt.Count("xrBeginSession") != 1 {
		t.Errorf("xrBeginSession calls = %d, want 1", rt.Count("xrBeginSession"))
	}
}

func TestStoppingWithoutReady(t *testing.T) {
	rt := sim.New(sim.WithManualLifecycle())
	sm := newSession(t, rt)

	rt.PushState(xr.SessionStateStopping)
	sm.PollEvents()
	if rt.Count("xrEndSession") != 0 {
		t.Error("STOPPING without READY ended the session")
	}
}

func TestBeginFailureExits(t *testing.T) {
	rt := sim.New(sim.WithManualLifecycle())
	sm := newSession(t, rt)

	rt.FailNext("xrBeginSession", xr.ErrorRuntimeFailure)
	rt.PushState(xr.SessionStateReady)
	res := sm.PollEvents()
	if !res.ExitLoop || res.RequestRestart || !xr.IsResult(res.Err, xr.ErrorRuntimeFailure) {
		t.Errorf("PollEvents() = %+v, want exit with runtime failure", res)
	}
	if sm.IsRunning() {
		t.Error("IsRunning() = true after failed begin")
	}
}

func TestPollFailureStopsDraining(t *testing.T) {
	rt := sim.New(sim.WithManualLifecycle())
	sm := newSession(t, rt)

	rt.PushState(xr.SessionStateReady)
	rt.FailNext("xrPollEvent", xr.ErrorRuntimeFailure)
	if res := sm.PollEvents(); res != (PollResult{}) {
		t.Errorf("PollEvents() = %+v, want zero", res)
	}
	if rt.PendingEvents() != 1 {
		t.Errorf("PendingEvents() = %d, want 1", rt.PendingEvents())
	}
	sm.PollEvents()
	if !sm.IsRunning() {
		t.Error("READY not applied on next poll")
	}
}

func TestFocused(t *testing.T) {
	rt := sim.New()
	sm := newSession(t, rt)

	sm.PollEvents()
	sm.PollEvents()
	if !sm.IsRunning() || !sm.IsFocused() {
		t.Errorf("running=%v focused=%v, want both after automatic lifecycle", sm.IsRunning(), sm.IsFocused())
	}
}

// TestRunningMatchesLastTransition applies random state sequences one event
// per poll and checks the running flag and begin/end pairing after each.
func TestRunningMatchesLastTransition(t *testing.T) {
	states := []xr.SessionState{
		xr.SessionStateIdle,
		xr.SessionStateReady,
		xr.SessionStateSynchronized,
		xr.SessionStateVisible,
		xr.SessionStateFocused,
		xr.SessionStateStopping,
	}
	rng := rand.New(rand.NewSource(42))

	for seq := 0; seq < 50; seq++ {
		rt := sim.New(sim.WithManualLifecycle())
		sm := newSession(t, rt)
		want := false
		for step := 0; step < 30; step++ {
			s := states[rng.Intn(len(states))]
			switch s {
			case xr.SessionStateReady:
				want = true
			case xr.SessionStateStopping:
				want = false
			}
			rt.PushState(s)
			if res := sm.PollEvents(); res.Err != nil {
				t.Fatalf("seq %d step %d: PollEvents() error = %v", seq, step, res.Err)
			}
			if sm.IsRunning() != want {
				t.Fatalf("seq %d step %d: IsRunning() = %v after %v, want %v", seq, step, sm.IsRunning(), s, want)
			}
			begins, ends := rt.Count("xrBeginSession"), rt.Count("xrEndSession")
			if d := begins - ends; d != 0 && d != 1 {
				t.Fatalf("seq %d step %d: begins=%d ends=%d", seq, step, begins, ends)
			}
		}
	}
}
