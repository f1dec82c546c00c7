package main

// timeMode selects how the frame driver derives the time input.
type timeMode int

const (
	// timeScaled sets time = elapsed * speed. A speed change rescales the
	// whole elapsed span, so time can jump.
	timeScaled timeMode = iota
	// timeAccumulate adds delta * speed each frame, so time never decreases.
	timeAccumulate
)

func (m timeMode) String() string {
	if m == timeAccumulate {
		return "accumulate"
	}
	return "scaled"
}

// frameDriver writes the time pipeline input once per frame.
type frameDriver struct {
	inputs *pipelineInputs
	mode   timeMode
}

func newFrameDriver(inputs *pipelineInputs, mode timeMode) *frameDriver {
	return &frameDriver{inputs: inputs, mode: mode}
}

// step is a frame subscriber; it must run before the pipeline submits.
func (d *frameDriver) step(t frameTick) error {
	speed := d.inputs.speed
	switch d.mode {
	case timeAccumulate:
		d.inputs.time += float32(t.delta.Seconds()) * speed
	default:
		d.inputs.time = float32(t.elapsed.Seconds()) * speed
	}
	return nil
}
