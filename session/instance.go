// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package session

import (
	"errors"
	"fmt"

	"github.com/gogpu/xrframe"
	"github.com/gogpu/xrframe/xr"
)

// Common errors returned by the session package.
var (
	// ErrGraphicsVersion is returned when the host graphics context version
	// falls outside the range the runtime accepts.
	ErrGraphicsVersion = errors.New("session: graphics API version not supported by runtime")

	// ErrInstanceClosed is returned when a closed Instance is used.
	ErrInstanceClosed = errors.New("session: instance closed")

	// ErrSessionExists is returned by CreateSession when a session is live.
	ErrSessionExists = errors.New("session: session already created")

	// ErrNoSession is returned when an operation needs a live session.
	ErrNoSession = errors.New("session: no session")
)

// Config describes the application to the runtime.
type Config struct {
	// AppName is the application name reported to the runtime.
	AppName string

	// AppVersion is the application version reported to the runtime.
	AppVersion uint32

	// EngineName defaults to "xrframe".
	EngineName string

	// Extensions lists the runtime extensions to enable, for example the
	// graphics binding extension.
	Extensions []string

	// FormFactor defaults to xr.FormFactorHeadMountedDisplay.
	FormFactor xr.FormFactor
}

// Instance is the process-level runtime connection: the instance handle and
// the resolved system. It is created once by Connect and not mutated after.
type Instance struct {
	rt       xr.Runtime
	handle   xr.Instance
	system   xr.SystemID
	props    xr.InstanceProperties
	sysProps xr.SystemProperties
	reqs     xr.GraphicsRequirements
	closed   bool
}

// Connect creates the runtime instance, resolves the system for the
// configured form factor and queries its graphics requirements.
// Any failure is fatal: partially created state is destroyed and the error
// is returned.
func Connect(rt xr.Runtime, cfg Config) (*Instance, error) {
	if rt == nil {
		return nil, errors.New("session: nil runtime")
	}
	if cfg.EngineName == "" {
		cfg.EngineName = "xrframe"
	}
	if cfg.FormFactor == 0 {
		cfg.FormFactor = xr.FormFactorHeadMountedDisplay
	}
	log := xrframe.Logger()

	handle, err := rt.CreateInstance(xr.InstanceCreateInfo{
		Application: xr.ApplicationInfo{
			ApplicationName:    cfg.AppName,
			ApplicationVersion: cfg.AppVersion,
			EngineName:         cfg.EngineName,
			APIVersion:         xr.CurrentAPIVersion,
		},
		Extensions: cfg.Extensions,
	})
	if err != nil {
		log.Error("session: create instance failed", "err", err)
		return nil, fmt.Errorf("session: create instance: %w", err)
	}
	inst := &Instance{rt: rt, handle: handle}

	if err := inst.bringUp(cfg.FormFactor); err != nil {
		log.Error("session: instance bring-up failed", "err", err)
		_ = rt.DestroyInstance(handle)
		return nil, err
	}
	return inst, nil
}

func (i *Instance) bringUp(formFactor xr.FormFactor) error {
	log := xrframe.Logger()

	props, err := i.rt.InstanceProperties(i.handle)
	if err != nil {
		return fmt.Errorf("session: instance properties: %w", err)
	}
	i.props = props
	log.Info("xr instance created",
		"runtime", props.RuntimeName,
		"runtime_version", props.RuntimeVersion.String())

	system, err := i.rt.GetSystem(i.handle, formFactor)
	if err != nil {
		return fmt.Errorf("session: get system for %s: %w", formFactor, err)
	}
	i.system = system

	sysProps, err := i.rt.SystemProperties(i.handle, system)
	if err != nil {
		return fmt.Errorf("session: system properties: %w", err)
	}
	i.sysProps = sysProps
	log.Info("xr system",
		"form_factor", formFactor.String(),
		"system", sysProps.SystemName,
		"vendor", sysProps.VendorID,
		"max_width", sysProps.Graphics.MaxSwapchainImageWidth,
		"max_height", sysProps.Graphics.MaxSwapchainImageHeight,
		"max_layers", sysProps.Graphics.MaxLayerCount,
		"orientation_tracking", sysProps.Tracking.OrientationTracking,
		"position_tracking", sysProps.Tracking.PositionTracking)

	reqs, err := i.rt.GraphicsRequirements(i.handle, system)
	if err != nil {
		return fmt.Errorf("session: graphics requirements: %w", err)
	}
	i.reqs = reqs
	log.Info("xr graphics requirements", "range", reqs.Range().String())
	return nil
}

// Runtime returns the runtime the instance was created on.
func (i *Instance) Runtime() xr.Runtime { return i.rt }

// Handle returns the instance handle.
func (i *Instance) Handle() xr.Instance { return i.handle }

// System returns the resolved system id.
func (i *Instance) System() xr.SystemID { return i.system }

// Properties returns the runtime properties.
func (i *Instance) Properties() xr.InstanceProperties { return i.props }

// SystemProperties returns the system properties.
func (i *Instance) SystemProperties() xr.SystemProperties { return i.sysProps }

// GraphicsRequirements returns the graphics API range queried at Connect.
func (i *Instance) GraphicsRequirements() xr.GraphicsRequirements { return i.reqs }

// CheckGraphicsVersion reports ErrGraphicsVersion if v is outside the
// runtime's supported range.
func (i *Instance) CheckGraphicsVersion(v xr.Version) error {
	r := i.reqs.Range()
	if !r.Contains(v) {
		return fmt.Errorf("%w: context %s, runtime accepts %s", ErrGraphicsVersion, v, r)
	}
	return nil
}

// Closed reports whether Close has been called.
func (i *Instance) Closed() bool { return i.closed }

// Close destroys the instance. Every session created from it must be
// destroyed first. Safe to call multiple times.
func (i *Instance) Close() error {
	if i.closed {
		return nil
	}
	i.closed = true
	if err := i.rt.DestroyInstance(i.handle); err != nil {
		return fmt.Errorf("session: destroy instance: %w", err)
	}
	xrframe.Logger().Info("xr instance destroyed")
	return nil
}
