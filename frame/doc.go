// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package frame drives the per-tick frame protocol.
//
// A [Coordinator] moves through four phases every display tick:
//
//	Wait -> HaveFrame -> ViewsLocated -> Submitted -> Wait
//
// [Coordinator.BeginFrame] waits for the runtime's frame slot, begins the
// frame, and locates the views and the stage. It returns a [Frame] value
// that carries everything the tick needs; nothing is kept on the surfaces
// between ticks. [Coordinator.RenderView] acquires the view's backbuffer,
// runs the [ViewRenderer], and releases the backbuffer whatever the
// renderer returned. [Coordinator.EndFrame] submits one opaque projection
// layer anchored in the app space, or no layer at all when the frame was
// not rendered.
//
// Every Frame returned by BeginFrame must be passed to EndFrame, including
// frames that should not be rendered and frames that lost tracking:
//
//	f, err := c.BeginFrame()
//	if f == nil {
//	    return err // nothing was begun
//	}
//	if err == nil && f.ShouldRender() {
//	    _ = c.RenderViews(f, renderer)
//	}
//	return c.EndFrame(f)
//
// [Coordinator.Tick] performs exactly this sequence.
package frame
