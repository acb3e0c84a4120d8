// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package graphics

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// SoftwareDepthAllocator keeps depth attachments in host memory.
// It is used by headless runs and the simulated runtime.
type SoftwareDepthAllocator struct{}

// AllocateDepth returns a cleared in-memory depth buffer.
func (SoftwareDepthAllocator) AllocateDepth(width, height int, format gputypes.TextureFormat) (DepthAttachment, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("graphics: invalid depth size %dx%d", width, height)
	}
	if format == gputypes.TextureFormatUndefined {
		format = DefaultDepthFormat
	}
	d := &SoftwareDepth{
		width:  width,
		height: height,
		format: format,
		data:   make([]float32, width*height),
	}
	d.Clear(1)
	return d, nil
}

// SoftwareDepth is an in-memory depth buffer, one float per pixel.
type SoftwareDepth struct {
	width  int
	height int
	format gputypes.TextureFormat
	data   []float32
}

func (d *SoftwareDepth) Format() gputypes.TextureFormat { return d.format }

// Width returns the buffer width.
func (d *SoftwareDepth) Width() int { return d.width }

// Height returns the buffer height.
func (d *SoftwareDepth) Height() int { return d.height }

// Clear sets every sample to v.
func (d *SoftwareDepth) Clear(v float32) {
	for i := range d.data {
		d.data[i] = v
	}
}

// At returns the depth at (x, y). Out of range reads return 1.
func (d *SoftwareDepth) At(x, y int) float32 {
	if x < 0 || y < 0 || x >= d.width || y >= d.height || d.data == nil {
		return 1
	}
	return d.data[y*d.width+x]
}

// Test writes z at (x, y) if it is nearer than the stored value and
// reports whether it passed.
func (d *SoftwareDepth) Test(x, y int, z float32) bool {
	if x < 0 || y < 0 || x >= d.width || y >= d.height || d.data == nil {
		return false
	}
	i := y*d.width + x
	if z >= d.data[i] {
		return false
	}
	d.data[i] = z
	return true
}

// Destroy drops the backing storage.
func (d *SoftwareDepth) Destroy() { d.data = nil }
