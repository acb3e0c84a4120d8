// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package xr

import "fmt"

// Version is a packed major.minor.patch version:
// 16 bits major, 16 bits minor, 32 bits patch.
type Version uint64

// MakeVersion packs a version the way the runtime does.
func MakeVersion(major, minor, patch uint32) Version {
	return Version(uint64(major&0xffff)<<48 | uint64(minor&0xffff)<<32 | uint64(patch))
}

// CurrentAPIVersion is the runtime API version this package speaks.
var CurrentAPIVersion = MakeVersion(1, 0, 34)

// Major returns the major component.
func (v Version) Major() uint32 { return uint32(v>>48) & 0xffff }

// Minor returns the minor component.
func (v Version) Minor() uint32 { return uint32(v>>32) & 0xffff }

// Patch returns the patch component.
func (v Version) Patch() uint32 { return uint32(v) }

// String returns "major.minor.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}

// VersionRange is an inclusive range of versions.
type VersionRange struct {
	Min Version
	Max Version
}

// Contains reports whether v lies inside the range.
func (r VersionRange) Contains(v Version) bool {
	return v >= r.Min && v <= r.Max
}

// String returns "min - max".
func (r VersionRange) String() string {
	return r.Min.String() + " - " + r.Max.String()
}
