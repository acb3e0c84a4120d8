// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package app runs the complete XR frame loop.
//
// A [Context] owns every runtime handle. [Context.Run] connects to the
// runtime, creates the session and its swapchains, and then ticks:
//
//	pump platform events -> poll XR events -> if running: begin, render views, end
//
// The platform pump blocks only when the app is paused, the session is not
// running and no exit was requested (see [ShouldPollNonBlocking]).
//
// When the runtime reports session loss or instance loss, Run tears
// everything down and reconnects, up to Config.MaxRestarts times. A
// user-initiated exit ends Run without reconnecting.
//
// Configuration is read from YAML:
//
//	app:
//	  name: demo
//	runtime:
//	  backend: sim
//	  extensions: [XR_KHR_opengl_es_enable]
//	graphics:
//	  api: OpenGL ES
//	  version_major: 3
//	  version_minor: 2
//	render:
//	  target: color+depth
//	  depth_format: depth24plus-stencil8
//	  parallel_views: false
//	max_restarts: 3
//	log_level: info
package app
