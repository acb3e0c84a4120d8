// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swapchain

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/xrframe"
	"github.com/gogpu/xrframe/xr"
)

// ColorFormat is the format of every view swapchain.
const ColorFormat = gputypes.TextureFormatRGBA8Unorm

// SessionInfo identifies the session a Set is built for.
type SessionInfo struct {
	Instance          xr.Instance
	System            xr.SystemID
	Session           xr.Session
	ViewConfiguration xr.ViewConfigurationType
}

// Set holds one Surface per view, in the runtime's view order.
type Set struct {
	rt       xr.SwapchainAPI
	info     SessionInfo
	views    []xr.ViewConfigurationView
	surfaces []*Surface
}

// Build queries the recommended view configuration and creates one
// swapchain per view at the recommended size. It must be called once per
// session, after the session is created and before the first frame.
// On failure every swapchain created so far is destroyed.
func Build(rt xr.SwapchainAPI, info SessionInfo, opts ...Option) (*Set, error) {
	if rt == nil {
		return nil, errors.New("swapchain: nil runtime")
	}
	if info.Session.IsNull() {
		return nil, errors.New("swapchain: null session")
	}
	if info.ViewConfiguration == 0 {
		info.ViewConfiguration = xr.ViewConfigurationPrimaryStereo
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	views, err := rt.EnumerateViewConfigurationViews(info.Instance, info.System, info.ViewConfiguration)
	if err != nil {
		return nil, fmt.Errorf("swapchain: enumerate views: %w", err)
	}
	if len(views) == 0 {
		return nil, fmt.Errorf("swapchain: runtime reported no views for %s", info.ViewConfiguration)
	}

	log := xrframe.Logger()
	s := &Set{rt: rt, info: info, views: views}
	for i, v := range views {
		log.Info("xr view configuration",
			"view", i,
			"recommended_width", v.RecommendedImageRectWidth,
			"recommended_height", v.RecommendedImageRectHeight,
			"max_width", v.MaxImageRectWidth,
			"max_height", v.MaxImageRectHeight,
			"recommended_samples", v.RecommendedSwapchainSampleCount,
			"max_samples", v.MaxSwapchainSampleCount)

		sc, err := rt.CreateSwapchain(info.Session, xr.SwapchainCreateInfo{
			Usage:       xr.SwapchainUsageSampled | xr.SwapchainUsageColorAttachment,
			Format:      ColorFormat,
			SampleCount: 1,
			Width:       v.RecommendedImageRectWidth,
			Height:      v.RecommendedImageRectHeight,
			FaceCount:   1,
			ArraySize:   1,
			MipCount:    1,
		})
		if err != nil {
			_ = s.Destroy()
			return nil, fmt.Errorf("swapchain: create swapchain for view %d: %w", i, err)
		}
		s.surfaces = append(s.surfaces, &Surface{
			rt:        rt,
			index:     i,
			width:     int(v.RecommendedImageRectWidth),
			height:    int(v.RecommendedImageRectHeight),
			swapchain: sc,
			opts:      o,
		})
	}
	return s, nil
}

// CreateBackbuffers creates the backbuffer ring of every surface.
func (s *Set) CreateBackbuffers() error {
	for _, sf := range s.surfaces {
		if err := sf.CreateBackbuffers(); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of views.
func (s *Set) Len() int { return len(s.surfaces) }

// Surface returns the surface for view i.
func (s *Set) Surface(i int) *Surface { return s.surfaces[i] }

// Surfaces returns the surfaces in view order. The slice is shared.
func (s *Set) Surfaces() []*Surface { return s.surfaces }

// Views returns the runtime's recommendations, in view order.
func (s *Set) Views() []xr.ViewConfigurationView { return s.views }

// ViewConfiguration returns the view configuration the set was built for.
func (s *Set) ViewConfiguration() xr.ViewConfigurationType { return s.info.ViewConfiguration }

// Destroy destroys every surface. Safe to call multiple times.
func (s *Set) Destroy() error {
	var errs []error
	for _, sf := range s.surfaces {
		errs = append(errs, sf.Destroy())
	}
	s.surfaces = nil
	return errors.Join(errs...)
}
