package main

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// nearVec3 compares per component with an absolute tolerance. mgl32's
// ApproxEqualThreshold tightens to eps² when a component is zero, which
// rejects float residue from rotations.
func nearVec3(got, want mgl32.Vec3, tol float64) bool {
	for i := range got {
		if math.Abs(float64(got[i]-want[i])) > tol {
			return false
		}
	}
	return true
}

func TestFract(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{1.25, 0.25},
		{-0.25, 0.75},
		{3, 0},
		{-1e-9, 0},
	}
	for _, tt := range tests {
		if got := fract(tt.in); got != tt.want {
			t.Errorf("fract(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSmoothstep(t *testing.T) {
	tests := []struct {
		x, want float32
	}{
		{-1, 0},
		{0, 0},
		{0.25, 0.5},
		{0.5, 1},
		{2, 1},
	}
	for _, tt := range tests {
		if got := smoothstep(0, 0.5, tt.x); got != tt.want {
			t.Errorf("smoothstep(0, 0.5, %v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(7, 0, 5); got != 5 {
		t.Errorf("clamp(7, 0, 5) = %v", got)
	}
	if got := clamp(-0.5, 0.0, 1.0); got != 0 {
		t.Errorf("clamp(-0.5, 0, 1) = %v", got)
	}
	if got := clamp(float32(0.3), 0, 1); got != 0.3 {
		t.Errorf("clamp(0.3, 0, 1) = %v", got)
	}
}

func TestNearVec3AcceptsZeroResidue(t *testing.T) {
	residue := mgl32.Vec3{0, 1, -4.371139e-08}
	if !nearVec3(residue, mgl32.Vec3{0, 1, 0}, 1e-6) {
		t.Errorf("nearVec3 rejected %v", residue)
	}
	if nearVec3(mgl32.Vec3{0, 1, 1e-3}, mgl32.Vec3{0, 1, 0}, 1e-6) {
		t.Error("nearVec3 accepted a difference above the tolerance")
	}
}
