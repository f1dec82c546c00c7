package main

import "github.com/go-gl/mathgl/mgl32"

// Hash constants for the classic sin-fract graphics hash.
var hashWeights = mgl32.Vec2{12.9898, 78.233}

const hashScale = 43758.5453123

// random is a deterministic pseudo-random value in [0, 1) for p. It only
// needs to look uncorrelated between neighbouring integer cells.
func random(p mgl32.Vec2) float32 {
	return fract(sin32(p.Dot(hashWeights)) * hashScale)
}

// noise is value noise: random sampled at the four corners of the integer
// cell containing p, blended bilinearly with smoothstep-eased weights so the
// result is C1-continuous across cell edges.
func noise(p mgl32.Vec2) float32 {
	ix, iy := floor32(p[0]), floor32(p[1])
	fx, fy := p[0]-ix, p[1]-iy
	ux := fx * fx * (3 - 2*fx)
	uy := fy * fy * (3 - 2*fy)

	a := random(mgl32.Vec2{ix, iy})
	b := random(mgl32.Vec2{ix + 1, iy})
	c := random(mgl32.Vec2{ix, iy + 1})
	d := random(mgl32.Vec2{ix + 1, iy + 1})
	return lerp(lerp(a, b, ux), lerp(c, d, ux), uy)
}

// noiseAt samples noise at p*scale shifted by offset on both axes, the GLSL
// idiom `noise(p * scale + offset)` with a scalar offset.
func noiseAt(p mgl32.Vec2, scale, offset float32) float32 {
	return noise(mgl32.Vec2{p[0]*scale + offset, p[1]*scale + offset})
}
