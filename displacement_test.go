package main

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDisplaceVertexZeroAmplitudeIsIdentity(t *testing.T) {
	for x := float32(-5); x <= 5; x += 0.7 {
		for y := float32(-5); y <= 5; y += 0.9 {
			for _, tm := range []float32{0, 0.5, 3, 250} {
				p := mgl32.Vec3{x, y, 0}
				if got := displaceVertex(p, tm, 0); got != p {
					t.Fatalf("displaceVertex(%v, t=%v, amp=0) = %v, want unchanged", p, tm, got)
				}
			}
		}
	}
}

func TestDisplaceVertexMovesOnlyAlongZ(t *testing.T) {
	p := mgl32.Vec3{1.3, -2.1, 0.25}
	got := displaceVertex(p, 4.2, 0.8)
	if got[0] != p[0] || got[1] != p[1] {
		t.Errorf("displaceVertex changed x/y: %v -> %v", p, got)
	}
	want := p[2] + composeDisplacement(mgl32.Vec2{p[0], p[1]}, 4.2)*0.8
	if got[2] != want {
		t.Errorf("z = %v, want %v", got[2], want)
	}
}

func TestSurfaceColorZeroAmplitudeIsBlack(t *testing.T) {
	for _, n := range []mgl32.Vec3{{0, 0, 1}, {1, 0, 0}, {0, -1, 0}, {1, 1, 1}} {
		if got := surfaceColor(n, 0); got != (mgl32.Vec3{}) {
			t.Errorf("surfaceColor(%v, 0) = %v, want black", n, got)
		}
	}
}

func TestSurfaceColorFromNormal(t *testing.T) {
	tests := []struct {
		normal    mgl32.Vec3
		amplitude float32
		want      mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 1}, 1, mgl32.Vec3{0.5, 0.5, 1}},
		{mgl32.Vec3{0, 0, 1}, 0.5, mgl32.Vec3{0.25, 0.25, 0.5}},
		{mgl32.Vec3{0, 0, 2}, 1, mgl32.Vec3{0.5, 0.5, 1}},
		{mgl32.Vec3{-1, 0, 0}, 1, mgl32.Vec3{0, 0.5, 0.5}},
	}
	for _, tt := range tests {
		got := surfaceColor(tt.normal, tt.amplitude)
		if !nearVec3(got, tt.want, 1e-6) {
			t.Errorf("surfaceColor(%v, %v) = %v, want %v", tt.normal, tt.amplitude, got, tt.want)
		}
	}
}

func TestDisplaceRangeWritesOnlyItsRange(t *testing.T) {
	s := newSurface(10, 10, 4)
	out := make([]float32, len(s.base))
	for i := range out {
		out[i] = -99
	}
	in := pipelineSnapshot{time: 1, amplitude: 1}
	displaceRange(in, s.base, out, 5, 10)
	for v := 0; v < s.vertexCount(); v++ {
		touched := out[v*3] != -99
		if want := v >= 5 && v < 10; touched != want {
			t.Fatalf("vertex %d touched=%v, want %v", v, touched, want)
		}
	}
}

// Scenario: amplitude 0.2, speed 1, time 0, vertex at the plane center.
func TestPipelineScenarioCenterVertex(t *testing.T) {
	s := newSurface(defaultPlaneSize, defaultPlaneSize, defaultPlaneSegments)
	inputs := newPipelineInputs(0.2, 1.0)
	clk := &manualClock{}
	sched := newFrameScheduler(clk)
	driver := newFrameDriver(inputs, timeScaled)
	pool := newVertexPool(4, s.rows, s.columns)
	defer pool.close()
	backend := newCPUDisplacer(pool)

	sched.subscribe(driver.step)
	sched.subscribe(func(tick frameTick) error {
		return backend.Displace(inputs.snapshot(tick.frame), s.base, s.displaced)
	})
	if err := sched.tick(); err != nil {
		t.Fatal(err)
	}

	center := (s.rows/2)*s.columns + s.columns/2
	if p := s.basePosition(center); !nearVec3(p, mgl32.Vec3{}, 1e-5) {
		t.Fatalf("center vertex at %v, want origin", p)
	}
	if got := s.displacedPosition(center)[2]; math.Abs(float64(got)) > 1e-5 {
		t.Errorf("center displacement at t=0 = %v, want 0", got)
	}

	clk.Advance(time.Second)
	if err := sched.tick(); err != nil {
		t.Fatal(err)
	}
	p := s.basePosition(center)
	want := referenceDisplacement(p[0], p[1], 1) * 0.2
	if got := s.displacedPosition(center)[2]; math.Abs(float64(got-want)) > 1e-5 {
		t.Errorf("center displacement at t=1 = %v, want %v", got, want)
	}
}
