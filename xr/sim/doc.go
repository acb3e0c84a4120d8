// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package sim provides a deterministic in-process XR runtime.
//
// The simulated runtime implements the complete xr.Runtime interface
// without hardware. Frame pacing is virtual: WaitFrame never sleeps, it
// advances the predicted display time by one display period. Swapchain
// images are gg render.PixmapTarget values, so renderers can draw into them
// on the CPU and tests can inspect the pixels.
//
// Every call is recorded, which lets tests assert protocol ordering:
//
//	rt := sim.New(sim.WithViews(2, 1024, 1024))
//	// ... drive a session ...
//	if rt.Count("xrAcquireSwapchainImage") != rt.Count("xrReleaseSwapchainImage") {
//	    t.Error("unbalanced acquire/release")
//	}
//
// By default the runtime walks a new session through IDLE and READY on its
// own, and through SYNCHRONIZED, VISIBLE and FOCUSED once the session is
// begun. Tests that want to script the event stream themselves use
// WithManualLifecycle and Push.
//
// Importing the package registers the "sim" backend with the xr registry.
package sim
