package main

// controlBinder registers a numeric control. onChange receives values already
// clamped to [min, max].
type controlBinder interface {
	bindControl(label string, initial, min, max float64, onChange func(float64))
}

// bindParameters couples the amplitude and speed controls to the pipeline
// inputs. Changes land in the inputs immediately and are read by the next
// submitted frame; nothing in the pipeline is rebuilt.
func bindParameters(panel controlBinder, inputs *pipelineInputs) {
	panel.bindControl("amplitude", float64(inputs.amplitude), minAmplitude, maxAmplitude, func(v float64) {
		inputs.amplitude = float32(v)
	})
	panel.bindControl("speed", float64(inputs.speed), minSpeed, maxSpeed, func(v float64) {
		inputs.speed = float32(v)
	})
}
