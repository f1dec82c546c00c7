package main

import "github.com/go-gl/mathgl/mgl32"

// pipelineInputs is the only mutable state the displacement stage reads.
// The frame driver owns time; the parameter bridge owns amplitude and speed.
// Both run on the game loop goroutine, so no locking is needed.
type pipelineInputs struct {
	time      float32
	amplitude float32
	speed     float32
	// origin is reserved and not read by the displacement formula.
	origin mgl32.Vec3
}

func newPipelineInputs(amplitude, speed float64) *pipelineInputs {
	return &pipelineInputs{
		amplitude: float32(clamp(amplitude, minAmplitude, maxAmplitude)),
		speed:     float32(clamp(speed, minSpeed, maxSpeed)),
	}
}

// pipelineSnapshot is the per-frame copy of the inputs handed to a backend.
// Workers only ever read a snapshot, so inputs cannot change mid-frame.
type pipelineSnapshot struct {
	frame     uint64
	time      float32
	amplitude float32
	origin    mgl32.Vec3
}

func (in *pipelineInputs) snapshot(frame uint64) pipelineSnapshot {
	return pipelineSnapshot{
		frame:     frame,
		time:      in.time,
		amplitude: in.amplitude,
		origin:    in.origin,
	}
}
