package main

import (
	"math"

	"golang.org/x/exp/constraints"
)

func clamp[N constraints.Integer | constraints.Float](n, minN, maxN N) N {
	n = min(n, maxN)
	n = max(n, minN)
	return n
}

func lerp[F constraints.Float](a, b, t F) F {
	return a + (b-a)*t
}

// fract returns x - floor(x) in [0, 1). Float32 rounding can push tiny
// negative inputs to exactly 1, which wraps to 0.
func fract(x float32) float32 {
	f := x - floor32(x)
	if f >= 1 {
		return 0
	}
	return f
}

// smoothstep is the clamped cubic Hermite ease between edge0 and edge1.
func smoothstep(edge0, edge1, x float32) float32 {
	t := clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

func sin32(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func abs32(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

func floor32(x float32) float32 {
	return float32(math.Floor(float64(x)))
}
