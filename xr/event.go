// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package xr

// Event is one entry of the runtime event queue.
//
// The concrete types are [SessionStateChanged], [InstanceLossPending],
// [EventsLost], [InteractionProfileChanged], [ReferenceSpaceChangePending]
// and [UnknownEvent].
type Event interface {
	eventType() string
}

// SessionStateChanged reports a session lifecycle transition.
type SessionStateChanged struct {
	Session Session
	State   SessionState
	Time    Time
}

// InstanceLossPending reports that the instance will be lost at LossTime.
type InstanceLossPending struct {
	LossTime Time
}

// EventsLost reports that the queue overflowed and LostEventCount events
// were dropped.
type EventsLost struct {
	LostEventCount uint32
}

// InteractionProfileChanged reports a new active input profile.
type InteractionProfileChanged struct {
	Session Session
}

// ReferenceSpaceChangePending reports that a reference space origin will move.
type ReferenceSpaceChangePending struct {
	Session    Session
	SpaceType  ReferenceSpaceType
	ChangeTime Time
}

// UnknownEvent is an event kind xrframe does not interpret.
type UnknownEvent struct {
	Type int32
}

func (SessionStateChanged) eventType() string         { return "SESSION_STATE_CHANGED" }
func (InstanceLossPending) eventType() string         { return "INSTANCE_LOSS_PENDING" }
func (EventsLost) eventType() string                  { return "EVENTS_LOST" }
func (InteractionProfileChanged) eventType() string   { return "INTERACTION_PROFILE_CHANGED" }
func (ReferenceSpaceChangePending) eventType() string { return "REFERENCE_SPACE_CHANGE_PENDING" }
func (UnknownEvent) eventType() string                { return "UNKNOWN" }

// EventType returns the event kind name used in logs.
func EventType(ev Event) string {
	if ev == nil {
		return "NONE"
	}
	return ev.eventType()
}
