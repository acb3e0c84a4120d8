// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package xr

import (
	"time"

	"github.com/gogpu/gputypes"
)

// Time is an opaque, monotonic runtime timestamp in nanoseconds.
type Time int64

// Duration is a runtime duration in nanoseconds.
type Duration int64

// InfiniteDuration waits without a timeout.
const InfiniteDuration Duration = 0x7fffffffffffffff

// DurationOf converts a time.Duration to a runtime Duration.
func DurationOf(d time.Duration) Duration { return Duration(d.Nanoseconds()) }

// Vector3f is a position or direction in meters.
type Vector3f struct {
	X, Y, Z float32
}

// Quaternionf is a rotation. The identity rotation has W = 1.
type Quaternionf struct {
	X, Y, Z, W float32
}

// Posef is a rigid transform: orientation followed by position.
type Posef struct {
	Orientation Quaternionf
	Position    Vector3f
}

// IdentityPose is the pose with no rotation and no translation.
var IdentityPose = Posef{Orientation: Quaternionf{W: 1}}

// Fovf holds the four half-angles of a view frustum in radians.
// Left and Down are normally negative.
type Fovf struct {
	AngleLeft  float32
	AngleRight float32
	AngleUp    float32
	AngleDown  float32
}

// Offset2Di is an integer pixel offset.
type Offset2Di struct {
	X, Y int32
}

// Extent2Di is an integer pixel size.
type Extent2Di struct {
	Width, Height int32
}

// Rect2Di is an integer pixel rectangle.
type Rect2Di struct {
	Offset Offset2Di
	Extent Extent2Di
}

// ViewStateFlags describe the validity of located views.
type ViewStateFlags uint64

// View state flags.
const (
	ViewStateOrientationValid ViewStateFlags = 1 << iota
	ViewStatePositionValid
	ViewStateOrientationTracked
	ViewStatePositionTracked
)

// Valid reports whether both position and orientation are valid.
func (f ViewStateFlags) Valid() bool {
	const both = ViewStateOrientationValid | ViewStatePositionValid
	return f&both == both
}

// SpaceLocationFlags describe the validity of a located space.
type SpaceLocationFlags uint64

// Space location flags.
const (
	SpaceLocationOrientationValid SpaceLocationFlags = 1 << iota
	SpaceLocationPositionValid
	SpaceLocationOrientationTracked
	SpaceLocationPositionTracked
)

// View is one located view: its pose in the locate space and its frustum.
type View struct {
	Pose Posef
	Fov  Fovf
}

// ViewLocateInfo selects the views to locate.
type ViewLocateInfo struct {
	ViewConfiguration ViewConfigurationType
	DisplayTime       Time
	Space             Space
}

// SpaceLocation is the result of locating one space in another.
type SpaceLocation struct {
	Flags SpaceLocationFlags
	Pose  Posef
}

// ViewConfigurationView reports the runtime's size recommendations for one view.
type ViewConfigurationView struct {
	RecommendedImageRectWidth       uint32
	MaxImageRectWidth               uint32
	RecommendedImageRectHeight      uint32
	MaxImageRectHeight              uint32
	RecommendedSwapchainSampleCount uint32
	MaxSwapchainSampleCount         uint32
}

// SwapchainUsage describes how swapchain images are used.
type SwapchainUsage uint64

// Swapchain usage flags.
const (
	SwapchainUsageColorAttachment SwapchainUsage = 1 << iota
	SwapchainUsageDepthStencilAttachment
	SwapchainUsageUnorderedAccess
	SwapchainUsageTransferSrc
	SwapchainUsageTransferDst
	SwapchainUsageSampled
)

// SwapchainCreateInfo describes a swapchain.
type SwapchainCreateInfo struct {
	Usage       SwapchainUsage
	Format      gputypes.TextureFormat
	SampleCount uint32
	Width       uint32
	Height      uint32
	FaceCount   uint32
	ArraySize   uint32
	MipCount    uint32
}

// SwapchainImage is one native image in a swapchain ring.
// Handle is the graphics-API object (texture name, image view, CPU pixmap).
type SwapchainImage struct {
	Handle any
}

// SwapchainSubImage identifies the region of a swapchain image a layer samples.
type SwapchainSubImage struct {
	Swapchain       Swapchain
	ImageRect       Rect2Di
	ImageArrayIndex uint32
}

// CompositionLayerProjectionView is the per-view part of a projection layer.
type CompositionLayerProjectionView struct {
	Pose     Posef
	Fov      Fovf
	SubImage SwapchainSubImage
}

// CompositionLayerProjection is a stereo projection layer anchored in Space.
type CompositionLayerProjection struct {
	Space Space
	Views []CompositionLayerProjectionView
}

// FrameState is returned by WaitFrame.
type FrameState struct {
	PredictedDisplayTime   Time
	PredictedDisplayPeriod Duration
	ShouldRender           bool
}

// FrameEndInfo is submitted by EndFrame.
type FrameEndInfo struct {
	DisplayTime          Time
	EnvironmentBlendMode EnvironmentBlendMode
	Layers               []CompositionLayerProjection
}

// ApplicationInfo identifies the application to the runtime.
type ApplicationInfo struct {
	ApplicationName    string
	ApplicationVersion uint32
	EngineName         string
	EngineVersion      uint32
	APIVersion         Version
}

// InstanceCreateInfo describes the instance to create.
type InstanceCreateInfo struct {
	Application ApplicationInfo
	Extensions  []string
}

// InstanceProperties describes the runtime behind an instance.
type InstanceProperties struct {
	RuntimeName    string
	RuntimeVersion Version
}

// SystemGraphicsProperties are the graphics limits of a system.
type SystemGraphicsProperties struct {
	MaxSwapchainImageWidth  uint32
	MaxSwapchainImageHeight uint32
	MaxLayerCount           uint32
}

// SystemTrackingProperties are the tracking capabilities of a system.
type SystemTrackingProperties struct {
	OrientationTracking bool
	PositionTracking    bool
}

// SystemProperties describes a system.
type SystemProperties struct {
	SystemID   SystemID
	VendorID   uint32
	SystemName string
	Graphics   SystemGraphicsProperties
	Tracking   SystemTrackingProperties
}

// GraphicsRequirements is the graphics API version range a system accepts.
type GraphicsRequirements struct {
	MinAPIVersionSupported Version
	MaxAPIVersionSupported Version
}

// Range returns the requirements as a VersionRange.
func (g GraphicsRequirements) Range() VersionRange {
	return VersionRange{Min: g.MinAPIVersionSupported, Max: g.MaxAPIVersionSupported}
}

// GraphicsBinding carries the native graphics context handles the runtime
// needs to create a session. The values are opaque to xrframe.
type GraphicsBinding struct {
	Display uintptr
	Config  uintptr
	Context uintptr
}

// SessionCreateInfo describes the session to create.
type SessionCreateInfo struct {
	SystemID SystemID
	Graphics GraphicsBinding
}
