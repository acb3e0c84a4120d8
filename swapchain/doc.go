// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package swapchain materializes one swapchain and one ring of render
// targets per view, and hands out fenced access to the current image.
//
// A [Set] is built once per session from the runtime's recommended view
// configuration. Each [Surface] owns its swapchain and its backbuffers; a
// backbuffer wraps one swapchain image as a [graphics.RenderTarget].
//
// Access to a surface's image follows a strict pairing:
//
//	img, err := surface.Acquire()
//	if err != nil {
//	    return err
//	}
//	renderErr := draw(img.Target)
//	if err := surface.Release(); err != nil {
//	    return err
//	}
//
// Release must be called once per successful Acquire, even when drawing
// fails. Violations are reported as errors wrapping [ErrProtocol].
package swapchain
