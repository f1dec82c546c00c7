package main

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRandomDeterministicAndInRange(t *testing.T) {
	for x := float32(-20); x <= 20; x += 0.75 {
		for y := float32(-20); y <= 20; y += 1.25 {
			p := mgl32.Vec2{x, y}
			a, b := random(p), random(p)
			if a != b {
				t.Fatalf("random(%v) not deterministic: %v vs %v", p, a, b)
			}
			if a < 0 || a >= 1 {
				t.Fatalf("random(%v) = %v, want [0,1)", p, a)
			}
		}
	}
}

func TestRandomAtOriginIsZero(t *testing.T) {
	if got := random(mgl32.Vec2{}); got != 0 {
		t.Errorf("random(0,0) = %v, want 0", got)
	}
}

func TestNoiseEqualsCornerHashAtIntegerPoints(t *testing.T) {
	for _, p := range []mgl32.Vec2{{0, 0}, {1, 0}, {3, -2}, {-5, 7}, {12, 12}} {
		if got, want := noise(p), random(p); got != want {
			t.Errorf("noise(%v) = %v, want corner hash %v", p, got, want)
		}
	}
}

func TestNoiseInRange(t *testing.T) {
	for x := float32(-8); x <= 8; x += 0.137 {
		for y := float32(-8); y <= 8; y += 0.291 {
			v := noise(mgl32.Vec2{x, y})
			if v < 0 || v >= 1 {
				t.Fatalf("noise(%v,%v) = %v, want [0,1)", x, y, v)
			}
		}
	}
}

func TestNoiseContinuousAcrossCellEdges(t *testing.T) {
	const eps = 1e-3
	tests := []struct {
		name string
		at   mgl32.Vec2
		step mgl32.Vec2
	}{
		{"vertical edge", mgl32.Vec2{1, 0.4}, mgl32.Vec2{eps, 0}},
		{"horizontal edge", mgl32.Vec2{2.3, -3}, mgl32.Vec2{0, eps}},
		{"corner", mgl32.Vec2{4, 4}, mgl32.Vec2{eps, eps}},
		{"interior", mgl32.Vec2{0.5, 0.5}, mgl32.Vec2{eps, -eps}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := noise(tt.at.Sub(tt.step))
			after := noise(tt.at.Add(tt.step))
			if diff := math.Abs(float64(after - before)); diff > 1e-2 {
				t.Errorf("noise jumps by %v across %v", diff, tt.at)
			}
		})
	}
}

func TestNoiseAtShiftsBothAxes(t *testing.T) {
	var scale, offset float32 = 2, 0.5
	p := mgl32.Vec2{0.3, -0.8}
	got := noiseAt(p, scale, offset)
	want := noise(mgl32.Vec2{p[0]*scale + offset, p[1]*scale + offset})
	if got != want {
		t.Errorf("noiseAt = %v, want %v", got, want)
	}
}
