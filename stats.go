package main

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// timingWindowStats keeps the most recent pipeline durations in milliseconds.
type timingWindowStats struct {
	samples []float64
	next    int
	filled  bool
}

func newTimingWindowStats(size int) *timingWindowStats {
	if size < 1 {
		size = 1
	}
	return &timingWindowStats{samples: make([]float64, size)}
}

func (t *timingWindowStats) add(d time.Duration) {
	t.samples[t.next] = d.Seconds() * 1000
	t.next++
	if t.next == len(t.samples) {
		t.next = 0
		t.filled = true
	}
}

func (t *timingWindowStats) window() []float64 {
	if t.filled {
		return t.samples
	}
	return t.samples[:t.next]
}

// meanStdDev returns the mean and sample standard deviation of the window.
func (t *timingWindowStats) meanStdDev() (mean, std float64) {
	w := t.window()
	switch len(w) {
	case 0:
		return 0, 0
	case 1:
		return w[0], 0
	}
	return stat.MeanStdDev(w, nil)
}
