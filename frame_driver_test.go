package main

import (
	"testing"
	"time"
)

// driveFrames advances clk by each step, ticks once per step and records the
// time input after every tick.
func driveFrames(t *testing.T, mode timeMode, inputs *pipelineInputs, steps []time.Duration, before func(frame int)) []float32 {
	t.Helper()
	clk := &manualClock{}
	s := newFrameScheduler(clk)
	s.subscribe(newFrameDriver(inputs, mode).step)
	times := make([]float32, 0, len(steps))
	for i, d := range steps {
		if before != nil {
			before(i)
		}
		clk.Advance(d)
		if err := s.tick(); err != nil {
			t.Fatal(err)
		}
		times = append(times, inputs.time)
	}
	return times
}

func TestFrameDriverScaledTime(t *testing.T) {
	inputs := newPipelineInputs(defaultAmplitude, 2)
	steps := []time.Duration{250 * time.Millisecond, 250 * time.Millisecond, 500 * time.Millisecond}
	got := driveFrames(t, timeScaled, inputs, steps, nil)
	want := []float32{0.5, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("frame %d time = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFrameDriverSpeedZeroFreezesSurface(t *testing.T) {
	for _, mode := range []timeMode{timeScaled, timeAccumulate} {
		t.Run(mode.String(), func(t *testing.T) {
			s := newSurface(4, 4, 8)
			inputs := newPipelineInputs(1, 0)
			pool := newVertexPool(2, s.rows, s.columns)
			defer pool.close()
			backend := newCPUDisplacer(pool)

			clk := &manualClock{}
			sched := newFrameScheduler(clk)
			sched.subscribe(newFrameDriver(inputs, mode).step)
			var prev []float32
			sched.subscribe(func(tick frameTick) error {
				if err := backend.Displace(inputs.snapshot(tick.frame), s.base, s.displaced); err != nil {
					return err
				}
				if prev != nil {
					for i := range prev {
						if prev[i] != s.displaced[i] {
							t.Fatalf("frame %d: component %d moved from %v to %v", tick.frame, i, prev[i], s.displaced[i])
						}
					}
				}
				prev = append(prev[:0], s.displaced...)
				return nil
			})
			for i := 0; i < 5; i++ {
				clk.Advance(100 * time.Millisecond)
				if err := sched.tick(); err != nil {
					t.Fatal(err)
				}
			}
			if inputs.time != 0 {
				t.Errorf("time = %v, want 0", inputs.time)
			}
		})
	}
}

func TestFrameDriverSpeedChangeAppliesNextFrame(t *testing.T) {
	steps := []time.Duration{time.Second, time.Second, time.Second}
	inputs := newPipelineInputs(defaultAmplitude, 1)
	got := driveFrames(t, timeScaled, inputs, steps, func(frame int) {
		if frame == 2 {
			inputs.speed = 2
		}
	})
	// Earlier frames keep the time they were submitted with; the new speed
	// rescales the full elapsed span from the next frame on.
	want := []float32{1, 2, 6}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("frame %d time = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFrameDriverAccumulateIsMonotonic(t *testing.T) {
	steps := []time.Duration{time.Second, time.Second, time.Second, time.Second}
	inputs := newPipelineInputs(defaultAmplitude, 2)
	got := driveFrames(t, timeAccumulate, inputs, steps, func(frame int) {
		if frame == 2 {
			inputs.speed = 0.5
		}
	})
	want := []float32{2, 4, 4.5, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("frame %d time = %v, want %v", i, got[i], want[i])
		}
		if i > 0 && got[i] < got[i-1] {
			t.Errorf("time went backwards at frame %d: %v -> %v", i, got[i-1], got[i])
		}
	}
}

func TestTimeModeString(t *testing.T) {
	if got := timeScaled.String(); got != "scaled" {
		t.Errorf("timeScaled = %q", got)
	}
	if got := timeAccumulate.String(); got != "accumulate" {
		t.Errorf("timeAccumulate = %q", got)
	}
}
