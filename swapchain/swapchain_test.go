// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swapchain

import (
	"errors"
	"testing"

	"github.com/gogpu/xrframe/graphics"
	"github.com/gogpu/xrframe/xr"
	"github.com/gogpu/xrframe/xr/sim"
)

func newSessionInfo(t *testing.T, rt *sim.Runtime) SessionInfo {
	t.Helper()
	inst, err := rt.CreateInstance(xr.InstanceCreateInfo{
		Application: xr.ApplicationInfo{ApplicationName: "test", APIVersion: xr.CurrentAPIVersion},
	})
	if err != nil {
		t.Fatal(err)
	}
	sys, err := rt.GetSystem(inst, xr.FormFactorHeadMountedDisplay)
	if err != nil {
		t.Fatal(err)
	}
	sess, err := rt.CreateSession(inst, xr.SessionCreateInfo{
		SystemID: sys,
		Graphics: xr.GraphicsBinding{Display: 1, Context: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	return SessionInfo{Instance: inst, System: sys, Session: sess, ViewConfiguration: xr.ViewConfigurationPrimaryStereo}
}

func TestBuildStereo(t *testing.T) {
	rt := sim.New(sim.WithViews(2, 1024, 1024))
	set, err := Build(rt, newSessionInfo(t, rt))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	defer set.Destroy()

	if set.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", set.Len())
	}
	if rt.SwapchainCount() != 2 {
		t.Errorf("SwapchainCount() = %d, want 2", rt.SwapchainCount())
	}
	seen := map[xr.Swapchain]bool{}
	for i, s := range set.Surfaces() {
		if s.Index() != i {
			t.Errorf("surface %d Index() = %d", i, s.Index())
		}
		if s.Width() != 1024 || s.Height() != 1024 {
			t.Errorf("surface %d size = %dx%d, want 1024x1024", i, s.Width(), s.Height())
		}
		if seen[s.Swapchain()] {
			t.Errorf("surface %d shares swapchain %v", i, s.Swapchain())
		}
		seen[s.Swapchain()] = true
	}
}

func TestBuildMono(t *testing.T) {
	rt := sim.New(sim.WithViews(1, 640, 480))
	info := newSessionInfo(t, rt)
	info.ViewConfiguration = xr.ViewConfigurationPrimaryMono
	set, err := Build(rt, info)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if set.Len() != 1 || set.Surface(0).Width() != 640 || set.Surface(0).Height() != 480 {
		t.Errorf("mono set len=%d size=%dx%d", set.Len(), set.Surface(0).Width(), set.Surface(0).Height())
	}
	if set.ViewConfiguration() != xr.ViewConfigurationPrimaryMono {
		t.Errorf("ViewConfiguration() = %v", set.ViewConfiguration())
	}
}

func TestBuildFailureCleansUp(t *testing.T) {
	rt := sim.New()
	info := newSessionInfo(t, rt)
	rt.FailAt("xrCreateSwapchain", 2, xr.ErrorOutOfMemory)

	if _, err := Build(rt, info); !xr.IsResult(err, xr.ErrorOutOfMemory) {
		t.Fatalf("Build() error = %v, want XR_ERROR_OUT_OF_MEMORY", err)
	}
	if rt.SwapchainCount() != 0 {
		t.Errorf("SwapchainCount() = %d after failed Build, want 0", rt.SwapchainCount())
	}
}

func TestBuildRejectsNullSession(t *testing.T) {
	rt := sim.New()
	if _, err := Build(rt, SessionInfo{}); err == nil {
		t.Error("Build() with null session should fail")
	}
}

func TestCreateBackbuffers(t *testing.T) {
	tests := []struct {
		name      string
		kind      graphics.TargetKind
		wantDepth bool
	}{
		{"color", graphics.ColorOnly, false},
		{"color+depth", graphics.ColorAndDepth, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := sim.New(sim.WithViews(2, 64, 64), sim.WithImageCount(3))
			set, err := Build(rt, newSessionInfo(t, rt), WithTargetKind(tt.kind))
			if err != nil {
				t.Fatal(err)
			}
			if err := set.CreateBackbuffers(); err != nil {
				t.Fatalf("CreateBackbuffers() error = %v", err)
			}
			for _, s := range set.Surfaces() {
				bbs := s.Backbuffers()
				if len(bbs) != 3 {
					t.Fatalf("view %d backbuffers = %d, want image count 3", s.Index(), len(bbs))
				}
				for i, bb := range bbs {
					if bb.Kind() != tt.kind {
						t.Errorf("backbuffer kind = %v, want %v", bb.Kind(), tt.kind)
					}
					if (bb.Depth() != nil) != tt.wantDepth {
						t.Errorf("backbuffer depth = %v, wantDepth %v", bb.Depth(), tt.wantDepth)
					}
					if bb.Width() != 64 || bb.Height() != 64 || bb.ImageIndex() != i {
						t.Errorf("backbuffer %d size=%dx%d index=%d", i, bb.Width(), bb.Height(), bb.ImageIndex())
					}
					if sim.Pixmap(bb.Color()) == nil {
						t.Error("backbuffer color is not the swapchain image")
					}
				}
			}

			err = set.Surface(0).CreateBackbuffers()
			if !errors.Is(err, ErrBackbuffersExist) || !errors.Is(err, ErrProtocol) {
				t.Errorf("second CreateBackbuffers() error = %v, want ErrBackbuffersExist", err)
			}
			if got := rt.Count("xrEnumerateSwapchainImages"); got != 2 {
				t.Errorf("xrEnumerateSwapchainImages calls = %d, want 2", got)
			}
		})
	}
}

func TestAcquireRelease(t *testing.T) {
	rt := sim.New(sim.WithViews(2, 32, 16), sim.WithImageCount(2))
	set, err := Build(rt, newSessionInfo(t, rt), WithTargetKind(graphics.ColorOnly))
	if err != nil {
		t.Fatal(err)
	}
	s := set.Surface(1)

	if _, err := s.Acquire(); !errors.Is(err, ErrNoBackbuffers) {
		t.Errorf("Acquire() before backbuffers error = %v", err)
	}
	if err := set.CreateBackbuffers(); err != nil {
		t.Fatal(err)
	}
	if err := s.Release(); !errors.Is(err, ErrNotAcquired) {
		t.Errorf("Release() without Acquire error = %v", err)
	}

	for i := 0; i < 4; i++ {
		img, err := s.Acquire()
		if err != nil {
			t.Fatalf("Acquire() error = %v", err)
		}
		if img.Target != s.Backbuffers()[img.Index] {
			t.Error("Acquire() target does not match ring index")
		}
		want := xr.Rect2Di{Extent: xr.Extent2Di{Width: 32, Height: 16}}
		if img.SubImage.ImageRect != want || img.SubImage.Swapchain != s.Swapchain() {
			t.Errorf("SubImage = %+v, want full rect %+v", img.SubImage, want)
		}
		if _, err := s.Acquire(); !errors.Is(err, ErrAlreadyAcquired) {
			t.Errorf("double Acquire() error = %v", err)
		}
		if err := s.Release(); err != nil {
			t.Fatal(err)
		}
	}

	calls := rt.Calls()
	var seq []string
	for _, c := range calls {
		switch c {
		case "xrAcquireSwapchainImage", "xrWaitSwapchainImage", "xrReleaseSwapchainImage":
			seq = append(seq, c)
		}
	}
	if len(seq) != 12 {
		t.Fatalf("image calls = %d, want 12", len(seq))
	}
	for i := 0; i < len(seq); i += 3 {
		if seq[i] != "xrAcquireSwapchainImage" || seq[i+1] != "xrWaitSwapchainImage" || seq[i+2] != "xrReleaseSwapchainImage" {
			t.Errorf("call order %v, want acquire, wait, release", seq[i:i+3])
		}
	}
}

func TestAcquireWaitFailureReleases(t *testing.T) {
	rt := sim.New()
	set, err := Build(rt, newSessionInfo(t, rt))
	if err != nil {
		t.Fatal(err)
	}
	if err := set.CreateBackbuffers(); err != nil {
		t.Fatal(err)
	}
	s := set.Surface(0)

	rt.FailNext("xrWaitSwapchainImage", xr.ErrorRuntimeFailure)
	if _, err := s.Acquire(); !xr.IsResult(err, xr.ErrorRuntimeFailure) {
		t.Fatalf("Acquire() error = %v", err)
	}
	if s.Acquired() || rt.Outstanding() != 0 {
		t.Errorf("image held after failed wait: acquired=%v outstanding=%d", s.Acquired(), rt.Outstanding())
	}
	if _, err := s.Acquire(); err != nil {
		t.Errorf("Acquire() after recovered wait error = %v", err)
	}
}

func TestDestroy(t *testing.T) {
	rt := sim.New()
	set, err := Build(rt, newSessionInfo(t, rt), WithTargetKind(graphics.ColorAndDepth))
	if err != nil {
		t.Fatal(err)
	}
	if err := set.CreateBackbuffers(); err != nil {
		t.Fatal(err)
	}
	s := set.Surface(0)
	bb := s.Backbuffers()[0]
	if _, err := s.Acquire(); err != nil {
		t.Fatal(err)
	}

	if err := set.Destroy(); err != nil {
		t.Fatalf("Destroy() error = %v", err)
	}
	if rt.SwapchainCount() != 0 || rt.Outstanding() != 0 {
		t.Errorf("after Destroy swapchains=%d outstanding=%d", rt.SwapchainCount(), rt.Outstanding())
	}
	if !bb.Destroyed() {
		t.Error("backbuffer not destroyed with the set")
	}
	if _, err := s.Acquire(); !errors.Is(err, ErrDestroyed) {
		t.Errorf("Acquire() after Destroy error = %v", err)
	}
	if err := set.Destroy(); err != nil {
		t.Errorf("second Destroy() error = %v", err)
	}
}
