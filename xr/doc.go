// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package xr defines the native XR runtime interface used by xrframe.
//
// The runtime is treated as a fixed external ABI: instance, system, session,
// space and swapchain identifiers are opaque handles, and every runtime
// entry point is a method on one of the narrow interfaces below. A binding
// to a real runtime (OpenXR loader, vendor SDK) implements [Runtime];
// package xr/sim provides a deterministic in-process implementation.
//
// # Interfaces
//
//   - InstanceAPI: instance creation, system lookup, graphics requirements, events
//   - SessionAPI: session creation, begin/end, reference spaces
//   - SwapchainAPI: view configuration, swapchain creation and image ring access
//   - FrameAPI: wait/begin/end frame, view and space location
//
// Components accept the narrowest interface they need.
//
// # Backends
//
// Runtime backends register themselves with [Register] and are opened by
// name or by priority with [Open] and [OpenBest].
package xr
