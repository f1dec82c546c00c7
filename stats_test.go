package main

import (
	"math"
	"testing"
	"time"
)

func TestTimingWindowStats(t *testing.T) {
	s := newTimingWindowStats(3)
	if mean, std := s.meanStdDev(); mean != 0 || std != 0 {
		t.Errorf("empty window = %v, %v, want 0, 0", mean, std)
	}

	s.add(4 * time.Millisecond)
	if mean, std := s.meanStdDev(); math.Abs(mean-4) > 1e-9 || std != 0 {
		t.Errorf("single sample = %v, %v, want 4, 0", mean, std)
	}

	s = newTimingWindowStats(3)
	for _, ms := range []time.Duration{1, 2, 3} {
		s.add(ms * time.Millisecond)
	}
	mean, std := s.meanStdDev()
	if math.Abs(mean-2) > 1e-9 || math.Abs(std-1) > 1e-9 {
		t.Errorf("[1 2 3] = %v, %v, want 2, 1", mean, std)
	}

	// The oldest sample is overwritten once the window is full.
	s.add(9 * time.Millisecond)
	if got := len(s.window()); got != 3 {
		t.Fatalf("window length = %d, want 3", got)
	}
	mean, _ = s.meanStdDev()
	if want := (9.0 + 2 + 3) / 3; math.Abs(mean-want) > 1e-9 {
		t.Errorf("mean after wraparound = %v, want %v", mean, want)
	}
}

func TestTimingWindowStatsMinimumSize(t *testing.T) {
	s := newTimingWindowStats(0)
	s.add(time.Millisecond)
	s.add(2 * time.Millisecond)
	if w := s.window(); len(w) != 1 || math.Abs(w[0]-2) > 1e-9 {
		t.Errorf("window = %v, want [2]", w)
	}
}
