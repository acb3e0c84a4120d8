// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package graphics

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/xrframe/xr"
)

// Common errors returned by Binding construction.
var (
	// ErrInvalidBinding is returned when a required native handle is missing.
	ErrInvalidBinding = errors.New("graphics: invalid binding")

	// ErrNoHALDevice is returned when the binding's provider does not
	// expose a wgpu HAL device.
	ErrNoHALDevice = errors.New("graphics: provider does not expose a HAL device")
)

// Binding is the opaque handle set the runtime needs to bind a session to
// the host's graphics context.
//
// Binding is created by the host once its context is current and must
// outlive every session created from it.
type Binding struct {
	native     xr.GraphicsBinding
	apiVersion xr.Version
	api        string
	provider   gpucontext.DeviceProvider
}

// BindingOption configures a Binding.
type BindingOption func(*Binding)

// WithDeviceProvider attaches the host's GPU device provider. Providers that
// also implement HalDevice() give access to a HAL device for depth
// attachments.
func WithDeviceProvider(p gpucontext.DeviceProvider) BindingOption {
	return func(b *Binding) {
		b.provider = p
	}
}

// WithAPIName sets a descriptive graphics API name used in logs,
// for example "OpenGL ES" or "Vulkan".
func WithAPIName(name string) BindingOption {
	return func(b *Binding) {
		b.api = name
	}
}

// NewBinding creates a Binding from native handles and the graphics API
// version implemented by the host context.
//
// Display and Context must be non-zero. Config may be zero for APIs that
// have no config object.
func NewBinding(native xr.GraphicsBinding, apiVersion xr.Version, opts ...BindingOption) (*Binding, error) {
	if native.Display == 0 {
		return nil, fmt.Errorf("%w: display handle is null", ErrInvalidBinding)
	}
	if native.Context == 0 {
		return nil, fmt.Errorf("%w: context handle is null", ErrInvalidBinding)
	}
	if apiVersion == 0 {
		return nil, fmt.Errorf("%w: graphics API version is zero", ErrInvalidBinding)
	}

	b := &Binding{
		native:     native,
		apiVersion: apiVersion,
		api:        "unknown",
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Native returns the native handles passed to session creation.
func (b *Binding) Native() xr.GraphicsBinding { return b.native }

// APIVersion returns the graphics API version of the host context.
func (b *Binding) APIVersion() xr.Version { return b.apiVersion }

// APIName returns the descriptive API name.
func (b *Binding) APIName() string { return b.api }

// DeviceProvider returns the attached provider, or nil.
func (b *Binding) DeviceProvider() gpucontext.DeviceProvider { return b.provider }

// HALDevice returns the wgpu HAL device behind the provider.
func (b *Binding) HALDevice() (hal.Device, error) {
	type halProvider interface {
		HalDevice() any
	}
	hp, ok := b.provider.(halProvider)
	if !ok {
		return nil, ErrNoHALDevice
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, ErrNoHALDevice
	}
	return device, nil
}
