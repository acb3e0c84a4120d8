// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/xrframe"
	"github.com/gogpu/xrframe/swapchain"
	"github.com/gogpu/xrframe/xr"
)

// SessionInfo identifies the session and spaces frames are composed for.
type SessionInfo struct {
	Session           xr.Session
	AppSpace          xr.Space
	StageSpace        xr.Space
	ViewConfiguration xr.ViewConfigurationType
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithParallelViews renders views concurrently in RenderViews. Each view's
// acquire, render and release run on their own goroutine; the layer is
// composed only after every view has been released.
func WithParallelViews(enabled bool) Option {
	return func(c *Coordinator) {
		c.parallel = enabled
	}
}

// Coordinator drives the frame protocol for one session. It is not safe for
// concurrent use; all methods must be called from the loop thread.
type Coordinator struct {
	rt       xr.FrameAPI
	info     SessionInfo
	set      *swapchain.Set
	parallel bool

	phase   Phase
	seq     uint64
	current *Frame
}

// New creates a Coordinator rendering into the surfaces of set.
func New(rt xr.FrameAPI, info SessionInfo, set *swapchain.Set, opts ...Option) (*Coordinator, error) {
	if rt == nil {
		return nil, errors.New("frame: nil runtime")
	}
	if set == nil || set.Len() == 0 {
		return nil, errors.New("frame: no view surfaces")
	}
	if info.Session.IsNull() || info.AppSpace.IsNull() {
		return nil, errors.New("frame: null session or app space")
	}
	if info.ViewConfiguration == 0 {
		info.ViewConfiguration = set.ViewConfiguration()
	}
	c := &Coordinator{rt: rt, info: info, set: set}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Phase returns the current protocol phase.
func (c *Coordinator) Phase() Phase { return c.phase }

// Current returns the frame in progress, or nil.
func (c *Coordinator) Current() *Frame { return c.current }

// BeginFrame waits for the next frame slot, begins the frame and, when the
// frame should be rendered, locates the views and the stage.
//
// A nil Frame means nothing was begun. A non-nil Frame must be passed to
// EndFrame even when an error is returned alongside it; ErrTrackingLost is
// returned that way.
func (c *Coordinator) BeginFrame() (*Frame, error) {
	if c.phase != PhaseWait {
		return nil, ErrFrameInProgress
	}

	fs, err := c.rt.WaitFrame(c.info.Session)
	if err != nil {
		return nil, fmt.Errorf("frame: wait: %w", err)
	}
	if err := c.rt.BeginFrame(c.info.Session); err != nil {
		return nil, fmt.Errorf("frame: begin: %w", err)
	}

	c.seq++
	f := &Frame{seq: c.seq, state: fs}
	c.current = f
	c.phase = PhaseHaveFrame

	log := xrframe.Logger()
	log.Debug("xr frame begun",
		"display_time", int64(fs.PredictedDisplayTime),
		"should_render", fs.ShouldRender)

	if !fs.ShouldRender {
		return f, nil
	}

	flags, views, err := c.rt.LocateViews(c.info.Session, xr.ViewLocateInfo{
		ViewConfiguration: c.info.ViewConfiguration,
		DisplayTime:       fs.PredictedDisplayTime,
		Space:             c.info.AppSpace,
	})
	if err != nil {
		f.failed = true
		return f, fmt.Errorf("frame: locate views: %w", err)
	}
	if !flags.Valid() {
		f.trackingLost = true
		log.Debug("xr view tracking lost", "flags", uint64(flags))
		return f, ErrTrackingLost
	}
	if len(views) != c.set.Len() {
		f.failed = true
		return f, fmt.Errorf("frame: runtime located %d views, have %d surfaces", len(views), c.set.Len())
	}
	f.views = views
	f.layers = make([]xr.CompositionLayerProjectionView, len(views))

	f.stage = xr.IdentityPose
	if !c.info.StageSpace.IsNull() {
		loc, err := c.rt.LocateSpace(c.info.StageSpace, c.info.AppSpace, fs.PredictedDisplayTime)
		switch {
		case err != nil:
			log.Warn("xr stage locate failed", "err", err)
		case loc.Flags&xr.SpaceLocationPositionValid != 0 && loc.Flags&xr.SpaceLocationOrientationValid != 0:
			f.stage = loc.Pose
			f.stageValid = true
		}
	}
	return f, nil
}

func (c *Coordinator) check(f *Frame) error {
	if f == nil || c.current == nil || c.phase == PhaseWait {
		return ErrNoFrame
	}
	if f != c.current || f.seq != c.seq {
		return ErrStaleFrame
	}
	return nil
}

// RenderView renders view i of f. Views must be rendered in creation
// order. The backbuffer is acquired before and released after the renderer
// runs, whatever the renderer returns; a renderer failure is returned as a
// *RenderError and the view still counts as rendered.
func (c *Coordinator) RenderView(f *Frame, i int, r ViewRenderer) error {
	if err := c.check(f); err != nil {
		return err
	}
	if !f.Renderable() {
		return ErrNotRenderable
	}
	if i != f.rendered || i >= c.set.Len() {
		return fmt.Errorf("%w: got view %d, next is %d", ErrViewOrder, i, f.rendered)
	}

	layer, err := c.drawView(f, i, r)
	if layer == nil {
		f.failed = true
		return err
	}
	f.layers[i] = *layer
	f.rendered++
	c.phase = PhaseViewsLocated
	return err
}

// RenderViews renders every remaining view of f, concurrently when parallel
// views are enabled. It returns the joined failures of all views.
func (c *Coordinator) RenderViews(f *Frame, r ViewRenderer) error {
	if err := c.check(f); err != nil {
		return err
	}
	if !f.Renderable() {
		return ErrNotRenderable
	}
	if !c.parallel || f.rendered > 0 {
		var errs []error
		for i := f.rendered; i < c.set.Len(); i++ {
			err := c.RenderView(f, i, r)
			errs = append(errs, err)
			if f.failed {
				break
			}
		}
		return errors.Join(errs...)
	}

	n := c.set.Len()
	layers := make([]*xr.CompositionLayerProjectionView, n)
	errs := make([]error, n)
	panics := make([]any, n)
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			defer func() {
				panics[i] = recover()
			}()
			layers[i], errs[i] = c.drawView(f, i, r)
			return errs[i]
		})
	}
	// Every view has been released once Wait returns.
	_ = g.Wait()
	for _, p := range panics {
		if p != nil {
			f.failed = true
			panic(p)
		}
	}

	for i, l := range layers {
		if l == nil {
			f.failed = true
			continue
		}
		f.layers[i] = *l
	}
	if !f.failed {
		f.rendered = n
	}
	c.phase = PhaseViewsLocated
	return errors.Join(errs...)
}

// drawView runs acquire, render, release for one view. It returns a nil
// layer when the image could not be acquired or released; the error is then
// a runtime or protocol failure. A non-nil layer with an error means the
// renderer failed. The image is released even if the renderer panics.
func (c *Coordinator) drawView(f *Frame, i int, r ViewRenderer) (layer *xr.CompositionLayerProjectionView, err error) {
	surface := c.set.Surface(i)
	img, err := surface.Acquire()
	if err != nil {
		return nil, err
	}
	defer func() {
		if rerr := surface.Release(); rerr != nil {
			layer = nil
			err = errors.Join(rerr, err)
		}
	}()

	view := f.views[i]
	layer = &xr.CompositionLayerProjectionView{
		Pose:     view.Pose,
		Fov:      view.Fov,
		SubImage: img.SubImage,
	}
	if r == nil {
		return layer, nil
	}

	renderErr := r.RenderView(ViewContext{
		Index:       i,
		Target:      img.Target,
		Pose:        view.Pose,
		Fov:         view.Fov,
		Viewport:    img.SubImage.ImageRect,
		StagePose:   f.stage,
		DisplayTime: f.state.PredictedDisplayTime,
	})
	if renderErr != nil {
		xrframe.Logger().Warn("xr view render failed", "view", i, "err", renderErr)
		return layer, wrapRender(i, renderErr)
	}
	return layer, nil
}

func wrapRender(i int, err error) error {
	if err == nil {
		return nil
	}
	return &RenderError{View: i, Err: err}
}

// EndFrame closes f. When every view was rendered it submits one opaque
// projection layer in the app space, with the views in creation order;
// otherwise it submits no layers. It must be called exactly once for every
// Frame BeginFrame returned.
func (c *Coordinator) EndFrame(f *Frame) error {
	if err := c.check(f); err != nil {
		return err
	}

	info := xr.FrameEndInfo{
		DisplayTime:          f.state.PredictedDisplayTime,
		EnvironmentBlendMode: xr.BlendModeOpaque,
	}
	n := c.set.Len()
	switch {
	case f.Renderable() && f.rendered == n:
		views := make([]xr.CompositionLayerProjectionView, n)
		copy(views, f.layers)
		info.Layers = []xr.CompositionLayerProjection{{
			Space: c.info.AppSpace,
			Views: views,
		}}
	case f.rendered > 0:
		xrframe.Logger().Warn("xr frame ended with missing views, layer dropped",
			"rendered", f.rendered, "views", n)
	}

	c.phase = PhaseSubmitted
	err := c.rt.EndFrame(c.info.Session, info)
	c.phase = PhaseWait
	c.current = nil
	if err != nil {
		return fmt.Errorf("frame: end: %w", err)
	}
	xrframe.Logger().Debug("xr frame ended",
		"display_time", int64(info.DisplayTime),
		"layers", len(info.Layers))
	return nil
}

// TickResult summarizes one Tick.
type TickResult struct {
	// Began reports whether a frame was begun and ended.
	Began bool

	// ShouldRender is the runtime's render flag for the frame.
	ShouldRender bool

	// TrackingLost reports that the frame was skipped for lack of tracking.
	TrackingLost bool

	// Submitted reports whether a projection layer was submitted.
	Submitted bool

	// RenderErr joins the renderer failures of the tick.
	RenderErr error

	// DisplayTime is the predicted display time of the frame.
	DisplayTime xr.Time
}

// Tick runs one complete frame: begin, render every view, end. Every begun
// frame is ended. The returned error is a runtime or protocol failure;
// tracking loss and renderer failures are reported in TickResult.
func (c *Coordinator) Tick(r ViewRenderer) (TickResult, error) {
	f, err := c.BeginFrame()
	if f == nil {
		return TickResult{}, err
	}
	res := TickResult{
		Began:        true,
		ShouldRender: f.ShouldRender(),
		DisplayTime:  f.DisplayTime(),
	}

	var errs []error
	switch {
	case errors.Is(err, ErrTrackingLost):
		res.TrackingLost = true
	case err != nil:
		errs = append(errs, err)
	case f.Renderable():
		rerr := c.RenderViews(f, r)
		var re *RenderError
		if errors.As(rerr, &re) && !f.failed {
			res.RenderErr = rerr
		} else if rerr != nil {
			errs = append(errs, rerr)
		}
	}

	res.Submitted = f.Renderable() && f.rendered == c.set.Len()
	if err := c.EndFrame(f); err != nil {
		res.Submitted = false
		errs = append(errs, err)
	}
	return res, errors.Join(errs...)
}
