//go:build ignore

//kage:unit pixels

package main

// Uniform variables.
var Amplitude float

// Fragment scales the normal-derived vertex color by the displacement
// amplitude. There is no lighting.
func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	return vec4(color.rgb*Amplitude, 1)
}
