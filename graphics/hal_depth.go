// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package graphics

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// TextureDevice is the subset of hal.Device used for depth attachments.
// Any hal.Device satisfies it.
type TextureDevice interface {
	CreateTexture(desc *hal.TextureDescriptor) (hal.Texture, error)
	DestroyTexture(texture hal.Texture)
	CreateTextureView(texture hal.Texture, desc *hal.TextureViewDescriptor) (hal.TextureView, error)
	DestroyTextureView(view hal.TextureView)
}

// HALDepth is a depth attachment backed by a HAL texture. Attachments
// returned by HALDepthAllocator implement it; GPU renderers bind View.
type HALDepth interface {
	DepthAttachment

	// Texture returns the depth texture, nil after Destroy.
	Texture() hal.Texture

	// View returns the depth texture view, nil after Destroy.
	View() hal.TextureView
}

var _ HALDepth = (*halDepth)(nil)

// HALDepthAllocator creates depth attachments as wgpu HAL textures.
type HALDepthAllocator struct {
	device TextureDevice
	label  string
}

// NewHALDepthAllocator creates an allocator on the given device.
func NewHALDepthAllocator(device TextureDevice) (*HALDepthAllocator, error) {
	if device == nil {
		return nil, errors.New("graphics: nil HAL device")
	}
	return &HALDepthAllocator{device: device, label: "xr_depth"}, nil
}

// AllocateDepth creates a single-sample 2D depth texture and its view.
func (a *HALDepthAllocator) AllocateDepth(width, height int, format gputypes.TextureFormat) (DepthAttachment, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("graphics: invalid depth size %dx%d", width, height)
	}
	if format == gputypes.TextureFormatUndefined {
		format = DefaultDepthFormat
	}

	tex, err := a.device.CreateTexture(&hal.TextureDescriptor{
		Label: a.label,
		Size: hal.Extent3D{
			Width:              uint32(width),  //nolint:gosec // checked positive above
			Height:             uint32(height), //nolint:gosec // checked positive above
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        format,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		return nil, fmt.Errorf("create depth texture: %w", err)
	}

	view, err := a.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label: a.label + "_view",
	})
	if err != nil {
		a.device.DestroyTexture(tex)
		return nil, fmt.Errorf("create depth texture view: %w", err)
	}

	return &halDepth{
		device: a.device,
		format: format,
		tex:    tex,
		view:   view,
	}, nil
}

// halDepth is a depth attachment backed by a HAL texture.
type halDepth struct {
	device TextureDevice
	format gputypes.TextureFormat

	mu   sync.Mutex
	tex  hal.Texture
	view hal.TextureView
}

func (d *halDepth) Format() gputypes.TextureFormat { return d.format }

// Texture returns the underlying HAL texture, nil after Destroy.
func (d *halDepth) Texture() hal.Texture {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.tex
}

// View returns the depth texture view, nil after Destroy.
func (d *halDepth) View() hal.TextureView {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.view
}

// Destroy releases the view then the texture. Idempotent.
func (d *halDepth) Destroy() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.view != nil {
		d.device.DestroyTextureView(d.view)
		d.view = nil
	}
	if d.tex != nil {
		d.device.DestroyTexture(d.tex)
		d.tex = nil
	}
}
