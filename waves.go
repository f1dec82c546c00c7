package main

import "github.com/go-gl/mathgl/mgl32"

// noiseTerm is `noise(p*scale + t*rate) * magnitude`.
type noiseTerm struct {
	scale     float32
	rate      float32
	magnitude float32
}

func (n noiseTerm) eval(p mgl32.Vec2, t float32) float32 {
	return noiseAt(p, n.scale, t*n.rate) * n.magnitude
}

// waveDescriptor describes one traveling sine wave whose amplitude and
// frequency are perturbed by noise.
type waveDescriptor struct {
	baseAmplitude  float32
	amplitudeNoise noiseTerm
	baseFrequency  float32
	frequencyNoise noiseTerm
	direction      mgl32.Vec2
}

// eval returns sin((p·dir)*freq + t*freq) * amp. The temporal rate is the
// same perturbed frequency used spatially.
func (w waveDescriptor) eval(p mgl32.Vec2, t float32) float32 {
	amplitude := w.baseAmplitude + w.amplitudeNoise.eval(p, t)
	frequency := w.baseFrequency + w.frequencyNoise.eval(p, t)
	return sin32(p.Dot(w.direction)*frequency+t*frequency) * amplitude
}

var surfaceWaves = [3]waveDescriptor{
	{
		baseAmplitude:  0.15,
		amplitudeNoise: noiseTerm{scale: 2.0, rate: 0.3, magnitude: 0.03},
		baseFrequency:  1.8,
		frequencyNoise: noiseTerm{scale: 3.0, rate: -0.2, magnitude: 0.15},
		direction:      mgl32.Vec2{1.5, 1.5},
	},
	{
		baseAmplitude:  0.25,
		amplitudeNoise: noiseTerm{scale: 4.0, rate: -0.5, magnitude: 0.05},
		baseFrequency:  1.3,
		frequencyNoise: noiseTerm{scale: 2.0, rate: 0.1, magnitude: 0.1},
		direction:      mgl32.Vec2{-1.0, 2.0},
	},
	{
		baseAmplitude:  0.1,
		amplitudeNoise: noiseTerm{scale: 1.5, rate: 0.7, magnitude: 0.02},
		baseFrequency:  0.8,
		frequencyNoise: noiseTerm{scale: 4.0, rate: -0.4, magnitude: 0.08},
		direction:      mgl32.Vec2{2.0, -1.0},
	},
}

// detailLayers are added after the wave sum, unscaled by waveDamping.
var detailLayers = [2]noiseTerm{
	{scale: 3.0, rate: 0.5, magnitude: 0.08},
	{scale: 7.0, rate: -0.8, magnitude: 0.05},
}

const (
	waveDamping    = 0.7
	limiterEdge    = 0.5
	limiterCeiling = 1.0
)

// totalDisplacement is the undamped sum of the three waves (scaled by
// waveDamping) and the two detail layers.
func totalDisplacement(p mgl32.Vec2, t float32) float32 {
	var combined float32
	for _, w := range surfaceWaves {
		combined += w.eval(p, t)
	}
	combined *= waveDamping

	total := combined
	for _, layer := range detailLayers {
		total += layer.eval(p, t)
	}
	return total
}

// limitDisplacement softly bounds total: the multiplier falls to 0 as |total|
// approaches limiterCeiling, and stays 0 beyond it, so the sign never flips.
func limitDisplacement(total float32) float32 {
	return total * smoothstep(0, limiterEdge, limiterCeiling-abs32(total))
}

// composeDisplacement is the dimensionless scalar displacement at p for time t.
func composeDisplacement(p mgl32.Vec2, t float32) float32 {
	return limitDisplacement(totalDisplacement(p, t))
}
