package main

import "github.com/go-gl/mathgl/mgl32"

// displaceVertex moves position along the plane's local up axis (z) by the
// composed displacement scaled by amplitude. Only x and y feed the waves.
func displaceVertex(position mgl32.Vec3, t, amplitude float32) mgl32.Vec3 {
	p := mgl32.Vec2{position[0], position[1]}
	position[2] += composeDisplacement(p, t) * amplitude
	return position
}

// normalColor maps the undeformed normal into [0,1] per channel.
func normalColor(normal mgl32.Vec3) mgl32.Vec3 {
	n := normal.Normalize()
	return mgl32.Vec3{n[0]*0.5 + 0.5, n[1]*0.5 + 0.5, n[2]*0.5 + 0.5}
}

// surfaceColor is normalColor scaled by amplitude: black at amplitude 0, no
// lighting model. The normal is the base grid's, not the displaced one.
func surfaceColor(normal mgl32.Vec3, amplitude float32) mgl32.Vec3 {
	return normalColor(normal).Mul(amplitude)
}

// displaceRange evaluates displaceVertex for vertices [start, end) of the flat
// xyz arrays base and out.
func displaceRange(in pipelineSnapshot, base, out []float32, start, end int) {
	for v := start; v < end; v++ {
		i := v * 3
		d := displaceVertex(mgl32.Vec3{base[i], base[i+1], base[i+2]}, in.time, in.amplitude)
		out[i] = d[0]
		out[i+1] = d[1]
		out[i+2] = d[2]
	}
}
