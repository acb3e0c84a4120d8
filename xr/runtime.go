// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package xr

// InstanceAPI covers instance lifetime, system discovery and the event queue.
type InstanceAPI interface {
	// CreateInstance connects to the runtime.
	CreateInstance(info InstanceCreateInfo) (Instance, error)

	// DestroyInstance disconnects from the runtime. All child handles
	// become invalid.
	DestroyInstance(instance Instance) error

	// InstanceProperties describes the runtime.
	InstanceProperties(instance Instance) (InstanceProperties, error)

	// GetSystem resolves the system for a form factor.
	GetSystem(instance Instance, formFactor FormFactor) (SystemID, error)

	// SystemProperties describes a system.
	SystemProperties(instance Instance, system SystemID) (SystemProperties, error)

	// GraphicsRequirements reports the graphics API version range the
	// system accepts. It must be called before CreateSession.
	GraphicsRequirements(instance Instance, system SystemID) (GraphicsRequirements, error)

	// PollEvent returns the next queued event without blocking.
	// It returns ErrEventUnavailable when the queue is empty.
	PollEvent(instance Instance) (Event, error)
}

// SessionAPI covers session lifetime and reference spaces.
type SessionAPI interface {
	CreateSession(instance Instance, info SessionCreateInfo) (Session, error)
	DestroySession(session Session) error

	// BeginSession starts the session once it is READY.
	BeginSession(session Session, viewConfiguration ViewConfigurationType) error

	// EndSession ends the session once it is STOPPING.
	EndSession(session Session) error

	CreateReferenceSpace(session Session, spaceType ReferenceSpaceType, poseInSpace Posef) (Space, error)
	DestroySpace(space Space) error
}

// SwapchainAPI covers view configuration and swapchain image rings.
type SwapchainAPI interface {
	// EnumerateViewConfigurationViews returns one entry per view, in view order.
	EnumerateViewConfigurationViews(instance Instance, system SystemID, viewConfiguration ViewConfigurationType) ([]ViewConfigurationView, error)

	CreateSwapchain(session Session, info SwapchainCreateInfo) (Swapchain, error)
	DestroySwapchain(swapchain Swapchain) error

	// EnumerateSwapchainImages returns the ring. The count is chosen by the runtime.
	EnumerateSwapchainImages(swapchain Swapchain) ([]SwapchainImage, error)

	// AcquireSwapchainImage returns the index of the next image in the ring.
	AcquireSwapchainImage(swapchain Swapchain) (uint32, error)

	// WaitSwapchainImage blocks until the acquired image may be written.
	WaitSwapchainImage(swapchain Swapchain, timeout Duration) error

	// ReleaseSwapchainImage hands the oldest acquired image back to the compositor.
	ReleaseSwapchainImage(swapchain Swapchain) error
}

// FrameAPI covers the per-tick frame protocol.
type FrameAPI interface {
	// WaitFrame blocks until the runtime's next frame slot.
	WaitFrame(session Session) (FrameState, error)

	BeginFrame(session Session) error
	EndFrame(session Session, info FrameEndInfo) error

	LocateViews(session Session, info ViewLocateInfo) (ViewStateFlags, []View, error)
	LocateSpace(space, baseSpace Space, time Time) (SpaceLocation, error)
}

// Runtime is the complete native runtime interface.
type Runtime interface {
	InstanceAPI
	SessionAPI
	SwapchainAPI
	FrameAPI
}
