// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package xr

import (
	"math"
	"testing"
)

const eps = 1e-5

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < eps
}

func nearVec(a, b Vector3f) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

func TestQuaternionRotate(t *testing.T) {
	q := AxisAngle(Vector3f{Y: 1}, math.Pi/2)
	got := q.Rotate(Vector3f{X: 1})
	want := Vector3f{Z: -1}
	if !nearVec(got, want) {
		t.Errorf("Rotate = %+v, want %+v", got, want)
	}

	if !near(q.Length(), 1) {
		t.Errorf("Length = %v, want 1", q.Length())
	}
}

func TestQuaternionNormalize(t *testing.T) {
	q := Quaternionf{W: 2}.Normalize()
	if q != (Quaternionf{W: 1}) {
		t.Errorf("Normalize = %+v, want identity", q)
	}
	if z := (Quaternionf{}).Normalize(); z != (Quaternionf{W: 1}) {
		t.Errorf("zero Normalize = %+v, want identity", z)
	}
}

func TestPoseInverse(t *testing.T) {
	p := Posef{
		Orientation: AxisAngle(Vector3f{Y: 1}, 0.7),
		Position:    Vector3f{X: 1, Y: 1.6, Z: -2},
	}
	id := p.Mul(p.Inverse())
	if !nearVec(id.Position, Vector3f{}) {
		t.Errorf("p * p^-1 position = %+v, want origin", id.Position)
	}
	if !near(id.Orientation.W, 1) && !near(id.Orientation.W, -1) {
		t.Errorf("p * p^-1 orientation = %+v, want identity", id.Orientation)
	}

	pt := Vector3f{X: 0.3, Y: -0.2, Z: 5}
	back := p.Inverse().Transform(p.Transform(pt))
	if !nearVec(back, pt) {
		t.Errorf("round trip = %+v, want %+v", back, pt)
	}
}

func TestIdentityPose(t *testing.T) {
	v := Vector3f{X: 1, Y: 2, Z: 3}
	if got := IdentityPose.Transform(v); got != v {
		t.Errorf("IdentityPose.Transform = %+v, want %+v", got, v)
	}
}

func TestFovProjectionSymmetric(t *testing.T) {
	a := float32(math.Pi / 4)
	fov := Fovf{AngleLeft: -a, AngleRight: a, AngleUp: a, AngleDown: -a}

	m := fov.Projection(0.1, 100, DepthNegativeOneToOne)
	if !near(m[0], 1) || !near(m[5], 1) {
		t.Errorf("scale = (%v, %v), want (1, 1)", m[0], m[5])
	}
	if !near(m[8], 0) || !near(m[9], 0) {
		t.Errorf("offset = (%v, %v), want (0, 0)", m[8], m[9])
	}
	if m[11] != -1 {
		t.Errorf("m[11] = %v, want -1", m[11])
	}
	wantZ := -(100 + 0.1) / (100 - 0.1)
	if !near(m[10], float32(wantZ)) {
		t.Errorf("m[10] = %v, want %v", m[10], wantZ)
	}
}

func TestFovProjectionZeroToOne(t *testing.T) {
	a := float32(math.Pi / 4)
	fov := Fovf{AngleLeft: -a, AngleRight: a, AngleUp: a, AngleDown: -a}

	m := fov.Projection(1, 10, DepthZeroToOne)
	if !near(m[10], -10.0/9.0) {
		t.Errorf("m[10] = %v, want %v", m[10], -10.0/9.0)
	}
	if !near(m[14], -10.0/9.0) {
		t.Errorf("m[14] = %v, want %v", m[14], -10.0/9.0)
	}
}

func TestFovProjectionInfinite(t *testing.T) {
	fov := Fovf{AngleLeft: -0.8, AngleRight: 0.7, AngleUp: 0.75, AngleDown: -0.9}
	m := fov.Projection(0.05, 0, DepthZeroToOne)
	if m[10] != -1 {
		t.Errorf("m[10] = %v, want -1", m[10])
	}
	if !near(m[14], -0.05) {
		t.Errorf("m[14] = %v, want -0.05", m[14])
	}
	if near(m[8], 0) {
		t.Error("asymmetric frustum should have a horizontal offset")
	}
}
