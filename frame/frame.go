// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import "github.com/gogpu/xrframe/xr"

// Phase is the coordinator's position in the frame protocol.
type Phase uint8

const (
	// PhaseWait is between frames.
	PhaseWait Phase = iota

	// PhaseHaveFrame is after BeginFrame, before any view is rendered.
	PhaseHaveFrame

	// PhaseViewsLocated is after at least one view was rendered.
	PhaseViewsLocated

	// PhaseSubmitted is while EndFrame is submitting the layer.
	PhaseSubmitted
)

func (p Phase) String() string {
	switch p {
	case PhaseWait:
		return "Wait"
	case PhaseHaveFrame:
		return "HaveFrame"
	case PhaseViewsLocated:
		return "ViewsLocated"
	case PhaseSubmitted:
		return "Submitted"
	default:
		return "Phase(?)"
	}
}

// Frame is the per-tick record returned by BeginFrame. It is created for
// one tick and must not be used after EndFrame.
type Frame struct {
	seq          uint64
	state        xr.FrameState
	views        []xr.View
	stage        xr.Posef
	stageValid   bool
	trackingLost bool
	failed       bool

	layers   []xr.CompositionLayerProjectionView
	rendered int
}

// DisplayTime returns the predicted display time.
func (f *Frame) DisplayTime() xr.Time { return f.state.PredictedDisplayTime }

// DisplayPeriod returns the predicted display period.
func (f *Frame) DisplayPeriod() xr.Duration { return f.state.PredictedDisplayPeriod }

// ShouldRender reports whether the runtime wants this frame rendered.
func (f *Frame) ShouldRender() bool { return f.state.ShouldRender }

// TrackingLost reports whether view location lacked valid tracking.
func (f *Frame) TrackingLost() bool { return f.trackingLost }

// Renderable reports whether views may be rendered into this frame.
func (f *Frame) Renderable() bool {
	return f.state.ShouldRender && !f.trackingLost && !f.failed && f.views != nil
}

// Views returns the located views, in view order.
func (f *Frame) Views() []xr.View { return f.views }

// StagePose returns the stage origin in the app space, and whether the
// runtime could locate it.
func (f *Frame) StagePose() (xr.Posef, bool) { return f.stage, f.stageValid }

// Rendered returns how many views have been rendered.
func (f *Frame) Rendered() int { return f.rendered }

// Layers returns the projection views composed so far.
func (f *Frame) Layers() []xr.CompositionLayerProjectionView {
	return f.layers[:f.rendered]
}
