// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sim

import (
	"github.com/gogpu/gg/render"
	"github.com/gogpu/xrframe/xr"
)

// Push appends events to the runtime's event queue. Session state events
// for the owned session also update the runtime-side state, so a pushed
// READY lets BeginSession succeed.
func (r *Runtime) Push(events ...xr.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ev := range events {
		if sc, ok := ev.(xr.SessionStateChanged); ok && sc.Session == r.session && !sc.Session.IsNull() {
			r.state = sc.State
		}
		r.events = append(r.events, ev)
	}
}

// PushState queues a state change for the current session.
func (r *Runtime) PushState(states ...xr.SessionState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range states {
		r.setState(s)
	}
}

// RequestExit starts a user-initiated exit: the session moves to STOPPING,
// and to EXITING once it has been ended.
func (r *Runtime) RequestExit() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exitPending = true
	if r.running {
		r.setState(xr.SessionStateStopping)
		return
	}
	r.setState(xr.SessionStateExiting)
}

// LoseSession queues LOSS_PENDING for the current session.
func (r *Runtime) LoseSession() {
	r.PushState(xr.SessionStateLossPending)
}

// LoseInstance queues an instance-loss-pending event.
func (r *Runtime) LoseInstance() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, xr.InstanceLossPending{LossTime: r.now + xr.Time(r.period)})
}

// FailNext makes the next call to op return an *xr.Error carrying res.
// Op names are the runtime entry point names, for example "xrCreateSession".
func (r *Runtime) FailNext(op string, res xr.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures[op] = failure{result: res}
}

// FailAt makes the nth next call to op fail, counting from 1.
func (r *Runtime) FailAt(op string, n int, res xr.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n < 1 {
		n = 1
	}
	r.failures[op] = failure{skip: n - 1, result: res}
}

// SetShouldRender sets the ShouldRender flag returned by WaitFrame.
func (r *Runtime) SetShouldRender(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shouldRender = v
}

// SetViewStateFlags sets the tracking flags returned by LocateViews.
func (r *Runtime) SetViewStateFlags(f xr.ViewStateFlags) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.viewFlags = f
}

// SetHeadPose moves the simulated head.
func (r *Runtime) SetHeadPose(p xr.Posef) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.head = p
}

// Session returns the current session handle, or 0.
func (r *Runtime) Session() xr.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session
}

// State returns the runtime-side session state.
func (r *Runtime) State() xr.SessionState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Running reports whether the session has been begun and not ended.
func (r *Runtime) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// PendingEvents returns the number of queued events.
func (r *Runtime) PendingEvents() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// Calls returns a copy of the call log.
func (r *Runtime) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// Count returns how many times op was called.
func (r *Runtime) Count(op string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c == op {
			n++
		}
	}
	return n
}

// ResetCalls clears the call log.
func (r *Runtime) ResetCalls() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

// Submitted returns every FrameEndInfo accepted by EndFrame, oldest first.
func (r *Runtime) Submitted() []xr.FrameEndInfo {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]xr.FrameEndInfo(nil), r.submitted...)
}

// SwapchainCount returns the number of live swapchains.
func (r *Runtime) SwapchainCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.swapchains)
}

// SpaceCount returns the number of live reference spaces.
func (r *Runtime) SpaceCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.spaces)
}

// Outstanding returns the number of swapchains with an acquired image
// that has not been released.
func (r *Runtime) Outstanding() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, sc := range r.swapchains {
		if sc.acquired {
			n++
		}
	}
	return n
}

// Pixmap returns the CPU image behind a swapchain image handle, or nil if
// the handle did not come from a simulated runtime.
func Pixmap(img xr.SwapchainImage) *render.PixmapTarget {
	p, _ := img.Handle.(*render.PixmapTarget)
	return p
}
