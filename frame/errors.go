// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"errors"
	"fmt"
)

// ErrTrackingLost is returned by BeginFrame when the located views lack
// valid position or orientation. It is transient: the returned Frame must
// still be ended, and the next tick may succeed.
var ErrTrackingLost = errors.New("frame: view tracking lost")

// ErrProtocol is wrapped by every frame protocol violation.
var ErrProtocol = errors.New("frame: protocol violation")

// Protocol violations.
var (
	// ErrFrameInProgress is returned when BeginFrame is called before the
	// previous frame was ended.
	ErrFrameInProgress = fmt.Errorf("%w: previous frame not ended", ErrProtocol)

	// ErrNoFrame is returned when a frame operation has no begun frame.
	ErrNoFrame = fmt.Errorf("%w: no frame in progress", ErrProtocol)

	// ErrStaleFrame is returned when a Frame from an earlier tick is used.
	ErrStaleFrame = fmt.Errorf("%w: frame belongs to an earlier tick", ErrProtocol)

	// ErrViewOrder is returned when views are rendered out of creation order.
	ErrViewOrder = fmt.Errorf("%w: views must be rendered in creation order", ErrProtocol)

	// ErrNotRenderable is returned by RenderView for a frame that should not
	// be rendered or that lost tracking.
	ErrNotRenderable = fmt.Errorf("%w: frame is not renderable", ErrProtocol)
)

// RenderError is an application-level failure reported by a ViewRenderer.
// It never aborts the frame protocol.
type RenderError struct {
	View int
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("frame: render view %d: %v", e.View, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
