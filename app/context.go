// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/xrframe"
	"github.com/gogpu/xrframe/frame"
	"github.com/gogpu/xrframe/graphics"
	"github.com/gogpu/xrframe/session"
	"github.com/gogpu/xrframe/swapchain"
	"github.com/gogpu/xrframe/xr"
)

// ErrTooManyRestarts is returned by Run when the runtime keeps requesting
// reconnection beyond Config.MaxRestarts.
var ErrTooManyRestarts = errors.New("app: too many session restarts")

// Option configures a Context.
type Option func(*Context)

// WithRuntime uses rt instead of opening the configured backend.
func WithRuntime(rt xr.Runtime) Option {
	return func(c *Context) {
		c.rt = rt
	}
}

// WithDepthAllocator sets where depth attachments are allocated. By default
// a HAL allocator is used when the binding exposes a HAL device, and host
// memory otherwise.
func WithDepthAllocator(a graphics.DepthAllocator) Option {
	return func(c *Context) {
		c.depth = a
	}
}

// WithMaxFrames stops Run after n submitted frames. Zero means no limit.
func WithMaxFrames(n int) Option {
	return func(c *Context) {
		c.maxFrames = n
	}
}

// WithIdleDelay sets how long the loop sleeps between polls while the
// session is not running.
func WithIdleDelay(d time.Duration) Option {
	return func(c *Context) {
		c.idleDelay = d
	}
}

// Stats counts loop activity across every session attempt.
type Stats struct {
	Frames       int // frames begun and ended
	Submitted    int // frames that submitted a projection layer
	TrackingLost int // frames skipped for lack of tracking
	RenderErrors int // frames with a renderer failure
	Restarts     int // reconnections after session or instance loss
}

// Context is the top-level owner of the XR pipeline: the runtime
// connection, the session, the swapchains and the frame coordinator.
// Handles never leave it; Run creates and destroys them for every session
// attempt.
type Context struct {
	cfg       Config
	binding   *graphics.Binding
	renderer  frame.ViewRenderer
	rt        xr.Runtime
	depth     graphics.DepthAllocator
	maxFrames int
	idleDelay time.Duration

	inst  *session.Instance
	sm    *session.StateMachine
	set   *swapchain.Set
	coord *frame.Coordinator
	stats Stats
}

// New validates cfg and creates a Context that renders with renderer into
// sessions bound to binding.
func New(cfg Config, binding *graphics.Binding, renderer frame.ViewRenderer, opts ...Option) (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if binding == nil {
		return nil, fmt.Errorf("app: %w", graphics.ErrInvalidBinding)
	}
	c := &Context{
		cfg:       cfg,
		binding:   binding,
		renderer:  renderer,
		idleDelay: 10 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.rt == nil {
		rt, err := openRuntime(cfg.Runtime.Backend)
		if err != nil {
			return nil, err
		}
		c.rt = rt
	}
	if c.depth == nil {
		c.depth = defaultDepthAllocator(binding)
	}
	return c, nil
}

func openRuntime(backend string) (xr.Runtime, error) {
	var (
		rt  xr.Runtime
		err error
	)
	if backend == "" {
		rt, err = xr.OpenBest()
	} else {
		rt, err = xr.Open(backend)
	}
	if err != nil {
		return nil, fmt.Errorf("app: open runtime: %w", err)
	}
	return rt, nil
}

func defaultDepthAllocator(b *graphics.Binding) graphics.DepthAllocator {
	device, err := b.HALDevice()
	if err != nil {
		return graphics.SoftwareDepthAllocator{}
	}
	alloc, err := graphics.NewHALDepthAllocator(device)
	if err != nil {
		return graphics.SoftwareDepthAllocator{}
	}
	return alloc
}

// Config returns the configuration.
func (c *Context) Config() Config { return c.cfg }

// Runtime returns the runtime in use.
func (c *Context) Runtime() xr.Runtime { return c.rt }

// Stats returns the loop counters.
func (c *Context) Stats() Stats { return c.stats }

// Session returns the current state machine, or nil between attempts.
func (c *Context) Session() *session.StateMachine { return c.sm }

// Run drives the loop until the session exits, the platform asks to be
// destroyed, the frame limit is reached or ctx is done. When the runtime
// requests a restart, everything is torn down and brought up again, at most
// Config.MaxRestarts times.
func (c *Context) Run(ctx context.Context, platform Platform) error {
	if platform == nil {
		platform = Headless{}
	}
	for {
		restart, err := c.runAttempt(ctx, platform)
		c.teardown()
		if err != nil || !restart {
			return err
		}
		if c.stats.Restarts >= c.cfg.MaxRestarts {
			return fmt.Errorf("%w: limit %d", ErrTooManyRestarts, c.cfg.MaxRestarts)
		}
		c.stats.Restarts++
		xrframe.Logger().Info("xr restarting session", "restart", c.stats.Restarts)
	}
}

// bringUp creates the instance, session, swapchains and coordinator.
func (c *Context) bringUp() error {
	ff, err := c.cfg.FormFactor()
	if err != nil {
		return err
	}
	inst, err := session.Connect(c.rt, session.Config{
		AppName:    c.cfg.App.Name,
		AppVersion: c.cfg.App.Version,
		Extensions: c.cfg.Runtime.Extensions,
		FormFactor: ff,
	})
	if err != nil {
		return err
	}
	c.inst = inst

	c.sm = session.NewStateMachine(inst)
	if _, err := c.sm.CreateSession(c.binding); err != nil {
		return err
	}

	kind, err := c.cfg.TargetKind()
	if err != nil {
		return err
	}
	depthFormat, err := c.cfg.DepthFormat()
	if err != nil {
		return err
	}
	c.set, err = swapchain.Build(c.rt, swapchain.SessionInfo{
		Instance:          inst.Handle(),
		System:            inst.System(),
		Session:           c.sm.Session(),
		ViewConfiguration: c.sm.ViewConfiguration(),
	},
		swapchain.WithTargetKind(kind),
		swapchain.WithDepthAllocator(c.depth),
		swapchain.WithDepthFormat(depthFormat),
	)
	if err != nil {
		return err
	}
	if err := c.set.CreateBackbuffers(); err != nil {
		return err
	}

	c.coord, err = frame.New(c.rt, frame.SessionInfo{
		Session:           c.sm.Session(),
		AppSpace:          c.sm.AppSpace(),
		StageSpace:        c.sm.StageSpace(),
		ViewConfiguration: c.sm.ViewConfiguration(),
	}, c.set, frame.WithParallelViews(c.cfg.Render.ParallelViews))
	return err
}

// runAttempt runs one session attempt and reports whether the runtime
// asked for a restart.
func (c *Context) runAttempt(ctx context.Context, platform Platform) (bool, error) {
	if err := c.bringUp(); err != nil {
		return false, err
	}
	log := xrframe.Logger().With("session_id", c.sm.ID().String())
	log.Info("xr frame loop started")

	var ps PlatformState
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		nonBlocking := ShouldPollNonBlocking(ps.Resumed, c.sm.IsRunning(), ps.DestroyRequested)
		var err error
		ps, err = platform.Pump(ctx, !nonBlocking)
		if err != nil {
			return false, fmt.Errorf("app: platform: %w", err)
		}
		if ps.DestroyRequested {
			log.Info("xr frame loop stopped by platform")
			return false, nil
		}

		res := c.sm.PollEvents()
		if res.Err != nil {
			return false, res.Err
		}
		if res.ExitLoop {
			log.Info("xr frame loop exit", "restart", res.RequestRestart)
			return res.RequestRestart, nil
		}

		if !c.sm.IsRunning() {
			if err := c.idle(ctx); err != nil {
				return false, err
			}
			continue
		}

		tr, err := c.coord.Tick(c.renderer)
		if err != nil {
			log.Error("xr frame failed", "err", err)
			return false, err
		}
		c.count(log, tr)
		if c.maxFrames > 0 && c.stats.Submitted >= c.maxFrames {
			log.Info("xr frame limit reached", "frames", c.stats.Submitted)
			return false, nil
		}
	}
}

func (c *Context) count(log *slog.Logger, tr frame.TickResult) {
	if !tr.Began {
		return
	}
	c.stats.Frames++
	if tr.Submitted {
		c.stats.Submitted++
	}
	if tr.TrackingLost {
		c.stats.TrackingLost++
	}
	if tr.RenderErr != nil {
		c.stats.RenderErrors++
		log.Debug("xr frame rendered with errors", "err", tr.RenderErr)
	}
}

func (c *Context) idle(ctx context.Context) error {
	if c.idleDelay <= 0 {
		return nil
	}
	t := time.NewTimer(c.idleDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// teardown destroys the attempt's resources, children first.
func (c *Context) teardown() {
	log := xrframe.Logger()
	c.coord = nil
	if c.set != nil {
		if err := c.set.Destroy(); err != nil {
			log.Warn("xr swapchain teardown", "err", err)
		}
		c.set = nil
	}
	if c.sm != nil {
		if err := c.sm.Destroy(); err != nil {
			log.Warn("xr session teardown", "err", err)
		}
		c.sm = nil
	}
	if c.inst != nil {
		if err := c.inst.Close(); err != nil {
			log.Warn("xr instance teardown", "err", err)
		}
		c.inst = nil
	}
}
