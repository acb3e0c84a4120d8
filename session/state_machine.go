// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/gogpu/xrframe"
	"github.com/gogpu/xrframe/graphics"
	"github.com/gogpu/xrframe/xr"
)

// PollResult is the outcome of draining the event queue.
type PollResult struct {
	// ExitLoop asks the caller to leave the frame loop.
	ExitLoop bool

	// RequestRestart asks the caller to tear down and reconnect.
	// Only meaningful when ExitLoop is set.
	RequestRestart bool

	// Err carries a runtime failure from beginning or ending the session.
	// ExitLoop is always set alongside it.
	Err error
}

// Option configures a StateMachine.
type Option func(*StateMachine)

// WithViewConfiguration sets the view configuration the session is begun
// with. Defaults to xr.ViewConfigurationPrimaryStereo.
func WithViewConfiguration(v xr.ViewConfigurationType) Option {
	return func(m *StateMachine) {
		m.viewConfig = v
	}
}

// StateMachine owns one session and its reference spaces, and tracks the
// session state by consuming the runtime's event stream.
//
// PollEvents, CreateSession and Destroy must be called from the loop thread.
// IsRunning, IsFocused and State may be read from any goroutine.
type StateMachine struct {
	inst       *Instance
	viewConfig xr.ViewConfigurationType
	id         uuid.UUID

	session    xr.Session
	appSpace   xr.Space
	stageSpace xr.Space

	state   atomic.Int32
	running atomic.Bool
}

// NewStateMachine creates a state machine for sessions on inst.
func NewStateMachine(inst *Instance, opts ...Option) *StateMachine {
	m := &StateMachine{
		inst:       inst,
		viewConfig: xr.ViewConfigurationPrimaryStereo,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *StateMachine) logger() *slog.Logger {
	return xrframe.Logger().With("session_id", m.id.String())
}

// CreateSession binds the host graphics context to a new session and
// creates the LOCAL (app) and STAGE reference spaces.
//
// The binding's API version is checked against the runtime's requirements
// before any session call; an out-of-range version fails with
// ErrGraphicsVersion and is not retried.
func (m *StateMachine) CreateSession(binding *graphics.Binding) (xr.Session, error) {
	if m.inst == nil || m.inst.Closed() {
		return 0, ErrInstanceClosed
	}
	if !m.session.IsNull() {
		return 0, ErrSessionExists
	}
	if binding == nil {
		return 0, fmt.Errorf("session: %w", graphics.ErrInvalidBinding)
	}
	if err := m.inst.CheckGraphicsVersion(binding.APIVersion()); err != nil {
		xrframe.Logger().Error("session: graphics version check failed",
			"api", binding.APIName(), "err", err)
		return 0, err
	}

	m.id = uuid.New()
	log := m.logger()
	rt := m.inst.Runtime()

	s, err := rt.CreateSession(m.inst.Handle(), xr.SessionCreateInfo{
		SystemID: m.inst.System(),
		Graphics: binding.Native(),
	})
	if err != nil {
		log.Error("session: create session failed", "err", err)
		return 0, fmt.Errorf("session: create session: %w", err)
	}
	m.session = s
	m.state.Store(int32(xr.SessionStateUnknown))
	m.running.Store(false)

	if m.appSpace, err = rt.CreateReferenceSpace(s, xr.ReferenceSpaceLocal, xr.IdentityPose); err != nil {
		_ = m.Destroy()
		return 0, fmt.Errorf("session: create app space: %w", err)
	}
	if m.stageSpace, err = rt.CreateReferenceSpace(s, xr.ReferenceSpaceStage, xr.IdentityPose); err != nil {
		_ = m.Destroy()
		return 0, fmt.Errorf("session: create stage space: %w", err)
	}

	log.Info("xr session created",
		"api", binding.APIName(),
		"api_version", binding.APIVersion().String(),
		"view_configuration", m.viewConfig.String())
	return s, nil
}

// PollEvents drains every pending event without blocking and applies
// session state transitions. Instance loss stops draining immediately.
func (m *StateMachine) PollEvents() PollResult {
	var res PollResult
	if m.inst == nil || m.inst.Closed() {
		return res
	}
	rt := m.inst.Runtime()
	log := m.logger()

	for {
		ev, err := rt.PollEvent(m.inst.Handle())
		if err != nil {
			if !xr.IsResult(err, xr.EventUnavailable) {
				log.Error("session: poll event failed", "err", err)
			}
			return res
		}

		switch e := ev.(type) {
		case xr.InstanceLossPending:
			log.Warn("xr instance loss pending", "loss_time", int64(e.LossTime))
			res.ExitLoop = true
			res.RequestRestart = true
			m.running.Store(false)
			return res
		case xr.EventsLost:
			log.Warn("xr events lost", "count", e.LostEventCount)
		case xr.SessionStateChanged:
			m.applyState(log, e, &res)
		case xr.InteractionProfileChanged:
			log.Info("xr interaction profile changed")
		case xr.ReferenceSpaceChangePending:
			log.Info("xr reference space change pending",
				"space", e.SpaceType.String(), "change_time", int64(e.ChangeTime))
		default:
			log.Warn("xr event ignored", "type", xr.EventType(ev))
		}
	}
}

func (m *StateMachine) applyState(log *slog.Logger, e xr.SessionStateChanged, res *PollResult) {
	if e.Session != m.session || m.session.IsNull() {
		log.Warn("xr state event for foreign session dropped",
			"event_session", uint64(e.Session), "state", e.State.String())
		return
	}

	old := m.State()
	m.state.Store(int32(e.State))
	log.Info("xr session state changed",
		"from", old.String(), "to", e.State.String(), "time", int64(e.Time))

	rt := m.inst.Runtime()
	switch e.State {
	case xr.SessionStateReady:
		if m.running.Load() {
			log.Warn("xr session already running, READY ignored")
			return
		}
		if err := rt.BeginSession(m.session, m.viewConfig); err != nil {
			log.Error("session: begin session failed", "err", err)
			res.ExitLoop = true
			res.Err = errors.Join(res.Err, fmt.Errorf("session: begin session: %w", err))
			return
		}
		m.running.Store(true)
		log.Info("xr session begun")
	case xr.SessionStateStopping:
		if !m.running.Load() {
			log.Warn("xr session not running, STOPPING ignored")
			return
		}
		m.running.Store(false)
		if err := rt.EndSession(m.session); err != nil {
			log.Error("session: end session failed", "err", err)
			res.ExitLoop = true
			res.Err = errors.Join(res.Err, fmt.Errorf("session: end session: %w", err))
			return
		}
		log.Info("xr session ended")
	case xr.SessionStateExiting:
		m.running.Store(false)
		res.ExitLoop = true
		res.RequestRestart = false
	case xr.SessionStateLossPending:
		m.running.Store(false)
		res.ExitLoop = true
		res.RequestRestart = true
	}
}

// IsRunning reports whether the session has been begun and not yet ended,
// exited or lost.
func (m *StateMachine) IsRunning() bool { return m.running.Load() }

// IsFocused reports whether the last applied state is FOCUSED.
func (m *StateMachine) IsFocused() bool { return m.State() == xr.SessionStateFocused }

// State returns the last applied session state.
func (m *StateMachine) State() xr.SessionState { return xr.SessionState(m.state.Load()) }

// Session returns the session handle, or 0 when no session exists.
func (m *StateMachine) Session() xr.Session { return m.session }

// AppSpace returns the LOCAL reference space frames are composed in.
func (m *StateMachine) AppSpace() xr.Space { return m.appSpace }

// StageSpace returns the STAGE reference space.
func (m *StateMachine) StageSpace() xr.Space { return m.stageSpace }

// ID returns the identifier of the current session attempt.
func (m *StateMachine) ID() uuid.UUID { return m.id }

// ViewConfiguration returns the view configuration sessions are begun with.
func (m *StateMachine) ViewConfiguration() xr.ViewConfigurationType { return m.viewConfig }

// Instance returns the instance the state machine was created on.
func (m *StateMachine) Instance() *Instance { return m.inst }

// Destroy destroys the reference spaces and the session. Swapchains built
// for the session must be destroyed first. Safe to call multiple times.
func (m *StateMachine) Destroy() error {
	if m.session.IsNull() {
		return nil
	}
	rt := m.inst.Runtime()
	var errs []error
	if !m.stageSpace.IsNull() {
		errs = append(errs, rt.DestroySpace(m.stageSpace))
		m.stageSpace = 0
	}
	if !m.appSpace.IsNull() {
		errs = append(errs, rt.DestroySpace(m.appSpace))
		m.appSpace = 0
	}
	errs = append(errs, rt.DestroySession(m.session))
	m.session = 0
	m.running.Store(false)
	m.state.Store(int32(xr.SessionStateUnknown))
	m.logger().Info("xr session destroyed")

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("session: destroy: %w", err)
	}
	return nil
}
