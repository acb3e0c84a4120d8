// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swapchain

import (
	"errors"
	"fmt"
)

// ErrProtocol is wrapped by every contract violation reported by this
// package. Violations are programmer errors, not runtime failures.
var ErrProtocol = errors.New("swapchain: protocol violation")

// Contract violations.
var (
	// ErrBackbuffersExist is returned when CreateBackbuffers is called twice.
	ErrBackbuffersExist = fmt.Errorf("%w: backbuffers already created", ErrProtocol)

	// ErrNoBackbuffers is returned when Acquire is called before CreateBackbuffers.
	ErrNoBackbuffers = fmt.Errorf("%w: backbuffers not created", ErrProtocol)

	// ErrAlreadyAcquired is returned when Acquire is called before the
	// previous image was released.
	ErrAlreadyAcquired = fmt.Errorf("%w: image already acquired", ErrProtocol)

	// ErrNotAcquired is returned by Release without a matching Acquire.
	ErrNotAcquired = fmt.Errorf("%w: release without acquire", ErrProtocol)

	// ErrDestroyed is returned when a destroyed surface is used.
	ErrDestroyed = fmt.Errorf("%w: surface destroyed", ErrProtocol)
)
