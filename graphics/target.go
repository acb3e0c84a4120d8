// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package graphics

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/xrframe/xr"
)

// TargetKind tags the attachments a RenderTarget carries.
type TargetKind uint8

const (
	// ColorOnly targets render into the swapchain image only.
	ColorOnly TargetKind = iota

	// ColorAndDepth targets add an owned depth attachment.
	ColorAndDepth
)

// String returns the kind name.
func (k TargetKind) String() string {
	switch k {
	case ColorOnly:
		return "color"
	case ColorAndDepth:
		return "color+depth"
	default:
		return fmt.Sprintf("TargetKind(%d)", uint8(k))
	}
}

// ParseTargetKind parses "color" or "color+depth".
func ParseTargetKind(s string) (TargetKind, error) {
	switch s {
	case "color":
		return ColorOnly, nil
	case "color+depth", "":
		return ColorAndDepth, nil
	default:
		return 0, fmt.Errorf("graphics: unknown render target kind %q", s)
	}
}

// DepthAttachment is an owned depth buffer.
type DepthAttachment interface {
	// Format returns the depth format.
	Format() gputypes.TextureFormat

	// Destroy releases the attachment.
	Destroy()
}

// DepthAllocator creates depth attachments sized to a swapchain.
type DepthAllocator interface {
	AllocateDepth(width, height int, format gputypes.TextureFormat) (DepthAttachment, error)
}

// DefaultDepthFormat is used when no depth format is configured.
const DefaultDepthFormat = gputypes.TextureFormatDepth24PlusStencil8

var depthFormats = map[string]gputypes.TextureFormat{
	"depth16unorm":          gputypes.TextureFormatDepth16Unorm,
	"depth24plus":           gputypes.TextureFormatDepth24Plus,
	"depth24plus-stencil8":  gputypes.TextureFormatDepth24PlusStencil8,
	"depth32float":          gputypes.TextureFormatDepth32Float,
	"depth32float-stencil8": gputypes.TextureFormatDepth32FloatStencil8,
}

// ParseDepthFormat maps a WebGPU style format name to a depth format.
// An empty name selects DefaultDepthFormat.
func ParseDepthFormat(name string) (gputypes.TextureFormat, error) {
	if name == "" {
		return DefaultDepthFormat, nil
	}
	f, ok := depthFormats[name]
	if !ok {
		return gputypes.TextureFormatUndefined, fmt.Errorf("graphics: unknown depth format %q", name)
	}
	return f, nil
}

// ErrTargetDestroyed is returned when a destroyed target is used.
var ErrTargetDestroyed = errors.New("graphics: render target destroyed")

// RenderTarget wraps one swapchain image as something a renderer can draw
// into. The color image is shared with the runtime; the depth attachment,
// when present, is owned by the target.
type RenderTarget struct {
	kind   TargetKind
	width  int
	height int
	index  int
	color  xr.SwapchainImage
	depth  DepthAttachment
	closed bool
}

// NewColorTarget wraps a swapchain image with no depth attachment.
func NewColorTarget(image xr.SwapchainImage, index, width, height int) *RenderTarget {
	return &RenderTarget{
		kind:   ColorOnly,
		width:  width,
		height: height,
		index:  index,
		color:  image,
	}
}

// NewColorDepthTarget wraps a swapchain image and allocates a depth
// attachment of the same size.
func NewColorDepthTarget(image xr.SwapchainImage, index, width, height int, alloc DepthAllocator, format gputypes.TextureFormat) (*RenderTarget, error) {
	if alloc == nil {
		return nil, errors.New("graphics: nil depth allocator")
	}
	depth, err := alloc.AllocateDepth(width, height, format)
	if err != nil {
		return nil, fmt.Errorf("graphics: allocate depth %dx%d: %w", width, height, err)
	}
	return &RenderTarget{
		kind:   ColorAndDepth,
		width:  width,
		height: height,
		index:  index,
		color:  image,
		depth:  depth,
	}, nil
}

// Kind returns the attachment variant.
func (t *RenderTarget) Kind() TargetKind { return t.kind }

// Width returns the target width in pixels.
func (t *RenderTarget) Width() int { return t.width }

// Height returns the target height in pixels.
func (t *RenderTarget) Height() int { return t.height }

// ImageIndex returns the position of the wrapped image in the swapchain ring.
func (t *RenderTarget) ImageIndex() int { return t.index }

// Color returns the swapchain image used as the color attachment.
func (t *RenderTarget) Color() xr.SwapchainImage { return t.color }

// Depth returns the depth attachment, or nil for ColorOnly targets.
func (t *RenderTarget) Depth() DepthAttachment { return t.depth }

// Destroyed reports whether Destroy has been called.
func (t *RenderTarget) Destroyed() bool { return t.closed }

// Destroy releases the owned depth attachment. The color image belongs to
// the runtime and is left alone. Safe to call multiple times.
func (t *RenderTarget) Destroy() {
	if t.closed {
		return
	}
	if t.depth != nil {
		t.depth.Destroy()
		t.depth = nil
	}
	t.closed = true
}
