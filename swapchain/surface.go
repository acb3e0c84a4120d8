// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swapchain

import (
	"errors"
	"fmt"

	"github.com/gogpu/xrframe"
	"github.com/gogpu/xrframe/graphics"
	"github.com/gogpu/xrframe/xr"
)

// Surface is one view: its swapchain, its fixed size, and one backbuffer
// per swapchain image. A Surface is used by one goroutine at a time.
type Surface struct {
	rt        xr.SwapchainAPI
	index     int
	width     int
	height    int
	swapchain xr.Swapchain
	opts      options

	backbuffers []*graphics.RenderTarget
	acquired    bool
	destroyed   bool
}

// Image is the backbuffer handed out by Acquire. Target is borrowed: it is
// valid until Release and must not be destroyed by the caller.
type Image struct {
	Target   *graphics.RenderTarget
	Index    uint32
	SubImage xr.SwapchainSubImage
}

// Index returns the view index.
func (s *Surface) Index() int { return s.index }

// Width returns the view width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the view height in pixels.
func (s *Surface) Height() int { return s.height }

// Swapchain returns the swapchain handle.
func (s *Surface) Swapchain() xr.Swapchain { return s.swapchain }

// Backbuffers returns the backbuffer ring. The slice is shared.
func (s *Surface) Backbuffers() []*graphics.RenderTarget { return s.backbuffers }

// Acquired reports whether an image is currently held.
func (s *Surface) Acquired() bool { return s.acquired }

// SubImage returns the full-surface sub-image rectangle.
func (s *Surface) SubImage() xr.SwapchainSubImage {
	return xr.SwapchainSubImage{
		Swapchain: s.swapchain,
		ImageRect: xr.Rect2Di{
			Offset: xr.Offset2Di{X: 0, Y: 0},
			Extent: xr.Extent2Di{Width: int32(s.width), Height: int32(s.height)}, //nolint:gosec // sizes come from uint32 runtime values
		},
	}
}

// CreateBackbuffers enumerates the swapchain images and wraps each one as a
// render target. The image count is chosen by the runtime. Calling it twice
// returns ErrBackbuffersExist.
func (s *Surface) CreateBackbuffers() error {
	if s.destroyed {
		return ErrDestroyed
	}
	if s.backbuffers != nil {
		return ErrBackbuffersExist
	}
	images, err := s.rt.EnumerateSwapchainImages(s.swapchain)
	if err != nil {
		return fmt.Errorf("swapchain: enumerate images for view %d: %w", s.index, err)
	}
	if len(images) == 0 {
		return fmt.Errorf("swapchain: view %d has no images", s.index)
	}

	targets := make([]*graphics.RenderTarget, 0, len(images))
	for i, img := range images {
		var t *graphics.RenderTarget
		switch s.opts.kind {
		case graphics.ColorOnly:
			t = graphics.NewColorTarget(img, i, s.width, s.height)
		default:
			t, err = graphics.NewColorDepthTarget(img, i, s.width, s.height, s.opts.depth, s.opts.depthFormat)
			if err != nil {
				for _, done := range targets {
					done.Destroy()
				}
				return fmt.Errorf("swapchain: backbuffer %d of view %d: %w", i, s.index, err)
			}
		}
		targets = append(targets, t)
	}
	s.backbuffers = targets

	xrframe.Logger().Info("xr backbuffers created",
		"view", s.index,
		"images", len(targets),
		"width", s.width,
		"height", s.height,
		"kind", s.opts.kind.String())
	return nil
}

// Acquire blocks until the next image in the ring may be written and
// returns its backbuffer. The wait has no timeout. The caller must call
// Release exactly once before acquiring again.
//
// If the wait fails the image is released before the error is returned.
func (s *Surface) Acquire() (Image, error) {
	switch {
	case s.destroyed:
		return Image{}, ErrDestroyed
	case s.backbuffers == nil:
		return Image{}, ErrNoBackbuffers
	case s.acquired:
		return Image{}, ErrAlreadyAcquired
	}

	idx, err := s.rt.AcquireSwapchainImage(s.swapchain)
	if err != nil {
		return Image{}, fmt.Errorf("swapchain: acquire view %d: %w", s.index, err)
	}
	if int(idx) >= len(s.backbuffers) {
		_ = s.rt.ReleaseSwapchainImage(s.swapchain)
		return Image{}, fmt.Errorf("swapchain: view %d: runtime returned image %d of %d", s.index, idx, len(s.backbuffers))
	}
	if err := s.rt.WaitSwapchainImage(s.swapchain, xr.InfiniteDuration); err != nil {
		if rerr := s.rt.ReleaseSwapchainImage(s.swapchain); rerr != nil {
			err = errors.Join(err, rerr)
		}
		return Image{}, fmt.Errorf("swapchain: wait view %d: %w", s.index, err)
	}
	s.acquired = true

	return Image{
		Target:   s.backbuffers[idx],
		Index:    idx,
		SubImage: s.SubImage(),
	}, nil
}

// Release hands the acquired image back to the compositor.
func (s *Surface) Release() error {
	if !s.acquired {
		return ErrNotAcquired
	}
	s.acquired = false
	if err := s.rt.ReleaseSwapchainImage(s.swapchain); err != nil {
		return fmt.Errorf("swapchain: release view %d: %w", s.index, err)
	}
	return nil
}

// Destroy releases a held image, destroys the backbuffers and the
// swapchain. Safe to call multiple times.
func (s *Surface) Destroy() error {
	if s.destroyed {
		return nil
	}
	s.destroyed = true

	var errs []error
	if s.acquired {
		xrframe.Logger().Warn("swapchain: destroying surface with acquired image", "view", s.index)
		errs = append(errs, s.Release())
	}
	for _, bb := range s.backbuffers {
		bb.Destroy()
	}
	s.backbuffers = nil
	if err := s.rt.DestroySwapchain(s.swapchain); err != nil {
		errs = append(errs, fmt.Errorf("swapchain: destroy view %d: %w", s.index, err))
	}
	return errors.Join(errs...)
}
