// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package xr

import "github.com/chewxy/math32"

// Add returns v + o.
func (v Vector3f) Add(o Vector3f) Vector3f {
	return Vector3f{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale returns v * s.
func (v Vector3f) Scale(s float32) Vector3f {
	return Vector3f{v.X * s, v.Y * s, v.Z * s}
}

// Length returns the Euclidean length of v.
func (v Vector3f) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Length returns the norm of q.
func (q Quaternionf) Length() float32 {
	return math32.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize returns q scaled to unit length. A zero quaternion
// normalizes to the identity.
func (q Quaternionf) Normalize() Quaternionf {
	l := q.Length()
	if l == 0 {
		return Quaternionf{W: 1}
	}
	return Quaternionf{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

// Conjugate returns the inverse rotation of a unit quaternion.
func (q Quaternionf) Conjugate() Quaternionf {
	return Quaternionf{-q.X, -q.Y, -q.Z, q.W}
}

// Mul returns the rotation q applied after o (q * o).
func (q Quaternionf) Mul(o Quaternionf) Quaternionf {
	return Quaternionf{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Rotate applies the unit rotation q to v.
func (q Quaternionf) Rotate(v Vector3f) Vector3f {
	// v' = v + 2w(u x v) + 2(u x (u x v)), u = (x, y, z)
	ux, uy, uz := q.X, q.Y, q.Z
	cx := uy*v.Z - uz*v.Y
	cy := uz*v.X - ux*v.Z
	cz := ux*v.Y - uy*v.X
	ccx := uy*cz - uz*cy
	ccy := uz*cx - ux*cz
	ccz := ux*cy - uy*cx
	return Vector3f{
		X: v.X + 2*(q.W*cx+ccx),
		Y: v.Y + 2*(q.W*cy+ccy),
		Z: v.Z + 2*(q.W*cz+ccz),
	}
}

// AxisAngle returns the rotation of angle radians about a unit axis.
func AxisAngle(axis Vector3f, angle float32) Quaternionf {
	s := math32.Sin(angle / 2)
	return Quaternionf{axis.X * s, axis.Y * s, axis.Z * s, math32.Cos(angle / 2)}
}

// Transform maps a point from the pose's local frame into its parent frame.
func (p Posef) Transform(v Vector3f) Vector3f {
	return p.Orientation.Rotate(v).Add(p.Position)
}

// Mul composes two poses: the result maps o's local frame through o and then p.
func (p Posef) Mul(o Posef) Posef {
	return Posef{
		Orientation: p.Orientation.Mul(o.Orientation),
		Position:    p.Transform(o.Position),
	}
}

// Inverse returns the pose that undoes p.
func (p Posef) Inverse() Posef {
	inv := p.Orientation.Conjugate()
	return Posef{
		Orientation: inv,
		Position:    inv.Rotate(p.Position).Scale(-1),
	}
}

// DepthRange selects the clip-space depth convention of a projection matrix.
type DepthRange uint8

const (
	// DepthNegativeOneToOne is the OpenGL / GLES clip range.
	DepthNegativeOneToOne DepthRange = iota

	// DepthZeroToOne is the Vulkan / Metal / D3D / WebGPU clip range.
	DepthZeroToOne
)

// Projection returns the column-major asymmetric projection matrix for the
// frustum. A far plane at or before the near plane yields an infinite
// far plane.
func (f Fovf) Projection(near, far float32, depth DepthRange) [16]float32 {
	tanLeft := math32.Tan(f.AngleLeft)
	tanRight := math32.Tan(f.AngleRight)
	tanDown := math32.Tan(f.AngleDown)
	tanUp := math32.Tan(f.AngleUp)

	tanWidth := tanRight - tanLeft
	tanHeight := tanUp - tanDown

	var offsetZ float32
	if depth == DepthNegativeOneToOne {
		offsetZ = near
	}

	var m [16]float32
	m[0] = 2 / tanWidth
	m[5] = 2 / tanHeight
	m[8] = (tanRight + tanLeft) / tanWidth
	m[9] = (tanUp + tanDown) / tanHeight
	m[11] = -1

	if far <= near {
		m[10] = -1
		m[14] = -(near + offsetZ)
		return m
	}
	m[10] = -(far + offsetZ) / (far - near)
	m[14] = -(far * (near + offsetZ)) / (far - near)
	return m
}
