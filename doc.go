// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package xrframe is the session and frame lifecycle engine for stereo
// head-mounted display rendering.
//
// # Overview
//
// xrframe drives an XR runtime through its mandatory startup sequence,
// tracks asynchronous session state transitions, and on every display tick
// produces per-eye render targets synchronized with the predicted head pose.
// Scene drawing is not part of xrframe: it is injected as a
// [frame.ViewRenderer].
//
// # Architecture
//
//	                 Host application
//	                       │
//	      ┌────────────────┼────────────────┐
//	      │                │                │
//	      ▼                ▼                ▼
//	 xr.Runtime     graphics.Binding   frame.ViewRenderer
//	 (native ABI)   (GPU context)      (scene drawing)
//	      │                │                │
//	      └────────────────┼────────────────┘
//	                       │
//	                       ▼
//	                  app.Context
//	      ┌────────────────┼────────────────┐
//	      │                │                │
//	      ▼                ▼                ▼
//	session.Instance  swapchain.Set   frame.Coordinator
//	session.StateMachine
//
// The packages are organized into:
//   - xr: runtime ABI (handles, poses, events, states) and backend registry
//   - xr/sim: deterministic simulated runtime for tests and demos
//   - graphics: graphics binding and render targets
//   - session: runtime connection and session state machine
//   - swapchain: per-view swapchains and backbuffer rings
//   - frame: per-tick begin/render/end protocol
//   - app: owning context, tick loop and configuration
//
// # Threading
//
// A single goroutine drives the tick loop. The render callback runs
// synchronously inside the tick and must not call back into the frame
// protocol.
package xrframe

// Version is the current version of the library.
const Version = "0.1.0"
