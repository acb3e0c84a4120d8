// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swapchain

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/xrframe/graphics"
)

// Option configures how backbuffers are created.
type Option func(*options)

type options struct {
	kind        graphics.TargetKind
	depth       graphics.DepthAllocator
	depthFormat gputypes.TextureFormat
}

func defaultOptions() options {
	return options{
		kind:        graphics.ColorAndDepth,
		depth:       graphics.SoftwareDepthAllocator{},
		depthFormat: graphics.DefaultDepthFormat,
	}
}

// WithTargetKind selects ColorOnly or ColorAndDepth backbuffers.
// The default is ColorAndDepth.
func WithTargetKind(k graphics.TargetKind) Option {
	return func(o *options) {
		o.kind = k
	}
}

// WithDepthAllocator sets where depth attachments are allocated.
// The default keeps them in host memory.
func WithDepthAllocator(a graphics.DepthAllocator) Option {
	return func(o *options) {
		if a != nil {
			o.depth = a
		}
	}
}

// WithDepthFormat sets the depth attachment format.
func WithDepthFormat(f gputypes.TextureFormat) Option {
	return func(o *options) {
		o.depthFormat = f
	}
}
