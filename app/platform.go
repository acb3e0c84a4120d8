// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package app

import "context"

// PlatformState is the host lifecycle state after an event pump.
type PlatformState struct {
	// Resumed reports the application is in the foreground.
	Resumed bool

	// DestroyRequested reports the host wants the application to exit.
	DestroyRequested bool
}

// Platform pumps the host's OS events. Pump may block until an event
// arrives when blocking is true; it must return promptly otherwise.
type Platform interface {
	Pump(ctx context.Context, blocking bool) (PlatformState, error)
}

// PlatformFunc adapts a function to Platform.
type PlatformFunc func(ctx context.Context, blocking bool) (PlatformState, error)

// Pump calls f(ctx, blocking).
func (f PlatformFunc) Pump(ctx context.Context, blocking bool) (PlatformState, error) {
	return f(ctx, blocking)
}

// Headless is a Platform with no OS events: always resumed, never destroyed.
type Headless struct{}

// Pump returns a resumed state immediately.
func (Headless) Pump(ctx context.Context, _ bool) (PlatformState, error) {
	if err := ctx.Err(); err != nil {
		return PlatformState{}, err
	}
	return PlatformState{Resumed: true}, nil
}

// ShouldPollNonBlocking reports whether the event pump must not block: the
// app is resumed, the session is running, or the host asked to exit.
func ShouldPollNonBlocking(resumed, sessionRunning, destroyRequested bool) bool {
	return resumed || sessionRunning || destroyRequested
}
