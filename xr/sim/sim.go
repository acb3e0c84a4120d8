// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sim

import (
	"github.com/gogpu/xrframe/xr"
)

// BackendName is the registry name of the simulated runtime.
const BackendName = "sim"

func init() {
	xr.Register(BackendName, 10, func() (xr.Runtime, error) {
		return New(), nil
	}, nil)
}

// Default simulated device parameters.
const (
	DefaultViewCount     = 2
	DefaultViewWidth     = 1024
	DefaultViewHeight    = 1024
	DefaultImageCount    = 3
	DefaultDisplayPeriod = xr.Duration(11_111_111) // 90 Hz
	DefaultIPD           = 0.063
	DefaultEyeHeight     = 1.6
)

// DefaultRequirements is the graphics API range the simulated system
// accepts: OpenGL ES 3.0 through 3.2.
var DefaultRequirements = xr.GraphicsRequirements{
	MinAPIVersionSupported: xr.MakeVersion(3, 0, 0),
	MaxAPIVersionSupported: xr.MakeVersion(3, 2, 0),
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithViews sets the number of views and their recommended size.
func WithViews(count int, width, height uint32) Option {
	return func(r *Runtime) {
		r.viewCount = count
		r.viewWidth = width
		r.viewHeight = height
	}
}

// WithImageCount sets how many images each swapchain ring holds.
func WithImageCount(n int) Option {
	return func(r *Runtime) {
		r.imageCount = n
	}
}

// WithRequirements sets the accepted graphics API version range.
func WithRequirements(req xr.GraphicsRequirements) Option {
	return func(r *Runtime) {
		r.requirements = req
	}
}

// WithDisplayPeriod sets the virtual display period.
func WithDisplayPeriod(d xr.Duration) Option {
	return func(r *Runtime) {
		r.period = d
	}
}

// WithManualLifecycle disables the automatic session state events.
func WithManualLifecycle() Option {
	return func(r *Runtime) {
		r.autoLifecycle = false
	}
}

// WithHeadPose sets the head pose in the LOCAL space.
func WithHeadPose(p xr.Posef) Option {
	return func(r *Runtime) {
		r.head = p
	}
}
