// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package graphics holds the graphics-side inputs of an XR session: the
// binding to the host's native graphics context, and the render targets
// that wrap swapchain images.
//
// # Key Principle
//
// xrframe RECEIVES the graphics context from the host application, it does
// NOT create one. Context and surface creation are a black box returning
// opaque handles; [Binding] carries them, together with the graphics API
// version the host context implements and, optionally, a
// gpucontext.DeviceProvider for GPU resource creation.
//
// # Render targets
//
// A [RenderTarget] is a capability-tagged variant:
//
//   - ColorOnly: the swapchain image is the only attachment
//   - ColorAndDepth: the swapchain image plus an owned depth attachment
//
// Depth attachments come from a [DepthAllocator]: [HALDepthAllocator] creates
// them on a wgpu HAL device, [SoftwareDepthAllocator] keeps them in memory.
package graphics
