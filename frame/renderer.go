// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"github.com/gogpu/xrframe/graphics"
	"github.com/gogpu/xrframe/xr"
)

// ViewContext is everything a renderer needs to draw one view.
type ViewContext struct {
	// Index is the view index, 0 being the leftmost eye.
	Index int

	// Target is the acquired backbuffer. It is borrowed for the duration
	// of the call.
	Target *graphics.RenderTarget

	// Pose is the view pose in the app space.
	Pose xr.Posef

	// Fov is the view frustum.
	Fov xr.Fovf

	// Viewport is the region of Target to draw into.
	Viewport xr.Rect2Di

	// StagePose is the stage origin in the app space.
	StagePose xr.Posef

	// DisplayTime is the predicted display time of the frame.
	DisplayTime xr.Time
}

// Projection returns the view's projection matrix.
func (v ViewContext) Projection(near, far float32, depth xr.DepthRange) [16]float32 {
	return v.Fov.Projection(near, far, depth)
}

// View returns the inverse of the view pose, the transform from app space
// into eye space.
func (v ViewContext) View() xr.Posef {
	return v.Pose.Inverse()
}

// ViewRenderer draws one view. It runs synchronously inside the frame tick
// and must not call back into the Coordinator. A returned error is logged
// and reported, but the backbuffer is released and the frame still ends.
// With parallel views enabled, RenderView is called concurrently for
// different views.
type ViewRenderer interface {
	RenderView(view ViewContext) error
}

// RendererFunc adapts a function to ViewRenderer.
type RendererFunc func(view ViewContext) error

// RenderView calls f(view).
func (f RendererFunc) RenderView(view ViewContext) error { return f(view) }
