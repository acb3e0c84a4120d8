// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package xr

import "fmt"

// SessionState is the lifecycle state of a session as reported by the runtime.
type SessionState int32

// Session states.
const (
	SessionStateUnknown SessionState = iota
	SessionStateIdle
	SessionStateReady
	SessionStateSynchronized
	SessionStateVisible
	SessionStateFocused
	SessionStateStopping
	SessionStateLossPending
	SessionStateExiting
)

var sessionStateNames = [...]string{
	SessionStateUnknown:      "UNKNOWN",
	SessionStateIdle:         "IDLE",
	SessionStateReady:        "READY",
	SessionStateSynchronized: "SYNCHRONIZED",
	SessionStateVisible:      "VISIBLE",
	SessionStateFocused:      "FOCUSED",
	SessionStateStopping:     "STOPPING",
	SessionStateLossPending:  "LOSS_PENDING",
	SessionStateExiting:      "EXITING",
}

// String returns the state name.
func (s SessionState) String() string {
	if s >= 0 && int(s) < len(sessionStateNames) {
		return sessionStateNames[s]
	}
	return fmt.Sprintf("SessionState(%d)", int32(s))
}

// FormFactor identifies the kind of XR device.
type FormFactor int32

// Form factors.
const (
	FormFactorHeadMountedDisplay FormFactor = 1
	FormFactorHandheldDisplay    FormFactor = 2
)

// String returns the form factor name.
func (f FormFactor) String() string {
	switch f {
	case FormFactorHeadMountedDisplay:
		return "HEAD_MOUNTED_DISPLAY"
	case FormFactorHandheldDisplay:
		return "HANDHELD_DISPLAY"
	default:
		return fmt.Sprintf("FormFactor(%d)", int32(f))
	}
}

// ViewConfigurationType selects the set of views a session renders.
type ViewConfigurationType int32

// View configuration types.
const (
	ViewConfigurationPrimaryMono   ViewConfigurationType = 1
	ViewConfigurationPrimaryStereo ViewConfigurationType = 2
)

// String returns the configuration name.
func (v ViewConfigurationType) String() string {
	switch v {
	case ViewConfigurationPrimaryMono:
		return "PRIMARY_MONO"
	case ViewConfigurationPrimaryStereo:
		return "PRIMARY_STEREO"
	default:
		return fmt.Sprintf("ViewConfigurationType(%d)", int32(v))
	}
}

// ReferenceSpaceType names a coordinate frame the runtime can locate poses in.
type ReferenceSpaceType int32

// Reference space types.
const (
	ReferenceSpaceView  ReferenceSpaceType = 1
	ReferenceSpaceLocal ReferenceSpaceType = 2
	ReferenceSpaceStage ReferenceSpaceType = 3
)

// String returns the space type name.
func (r ReferenceSpaceType) String() string {
	switch r {
	case ReferenceSpaceView:
		return "VIEW"
	case ReferenceSpaceLocal:
		return "LOCAL"
	case ReferenceSpaceStage:
		return "STAGE"
	default:
		return fmt.Sprintf("ReferenceSpaceType(%d)", int32(r))
	}
}

// EnvironmentBlendMode controls how submitted layers blend with the real world.
type EnvironmentBlendMode int32

// Blend modes.
const (
	BlendModeOpaque     EnvironmentBlendMode = 1
	BlendModeAdditive   EnvironmentBlendMode = 2
	BlendModeAlphaBlend EnvironmentBlendMode = 3
)

// String returns the blend mode name.
func (b EnvironmentBlendMode) String() string {
	switch b {
	case BlendModeOpaque:
		return "OPAQUE"
	case BlendModeAdditive:
		return "ADDITIVE"
	case BlendModeAlphaBlend:
		return "ALPHA_BLEND"
	default:
		return fmt.Sprintf("EnvironmentBlendMode(%d)", int32(b))
	}
}
