// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package xr

// Opaque runtime handles. The zero value of every handle is the null handle.
// Handles are capability tokens owned by a single xrframe object; they are
// passed by value but never duplicated into a second owner.
type (
	// Instance is the process-wide connection to the runtime.
	Instance uint64

	// SystemID identifies the physical device form factor on an Instance.
	SystemID uint64

	// Session is one binding between the application's graphics context
	// and the runtime.
	Session uint64

	// Space is a reference space handle.
	Space uint64

	// Swapchain is a runtime-managed ring of renderable images.
	Swapchain uint64
)

// NullSystemID is the invalid system identifier.
const NullSystemID SystemID = 0

// IsNull reports whether the handle is the null handle.
func (h Instance) IsNull() bool { return h == 0 }

// IsNull reports whether the handle is the null handle.
func (h Session) IsNull() bool { return h == 0 }

// IsNull reports whether the handle is the null handle.
func (h Space) IsNull() bool { return h == 0 }

// IsNull reports whether the handle is the null handle.
func (h Swapchain) IsNull() bool { return h == 0 }
