package main

import (
	"fmt"
	"math"
)

// verifyingDisplacer runs a device backend and cross-checks its output
// against the CPU formula for the same snapshot.
type verifyingDisplacer struct {
	device    displacementBackend
	reference *cpuDisplacer
	scratch   []float32
	reported  bool
}

func newVerifyingDisplacer(device displacementBackend, pool *vertexPool) *verifyingDisplacer {
	return &verifyingDisplacer{device: device, reference: newCPUDisplacer(pool)}
}

func (v *verifyingDisplacer) Displace(in pipelineSnapshot, base, out []float32) error {
	if err := v.device.Displace(in, base, out); err != nil {
		return err
	}
	if cap(v.scratch) < len(out) {
		v.scratch = make([]float32, len(out))
	}
	v.scratch = v.scratch[:len(out)]
	if err := v.reference.Displace(in, base, v.scratch); err != nil {
		return err
	}
	if err := compareDisplacement(v.scratch, out, verifyOpenCLTolerance); err != nil && !v.reported {
		ErrorLogger.Printf("frame %d: %s disagrees with cpu: %v", in.frame, v.device.Name(), err)
		v.reported = true
	}
	return nil
}

func (v *verifyingDisplacer) Name() string {
	return v.device.Name() + " (verified)"
}

func (v *verifyingDisplacer) Close() {
	v.device.Close()
}

// compareDisplacement reports the first element where got differs from want
// by more than tolerance.
func compareDisplacement(want, got []float32, tolerance float64) error {
	if len(want) != len(got) {
		return fmt.Errorf("length mismatch: want %d, got %d", len(want), len(got))
	}
	for i := range want {
		if diff := math.Abs(float64(want[i] - got[i])); diff > tolerance {
			return fmt.Errorf("vertex %d component %d: device=%f host=%f diff=%f", i/3, i%3, got[i], want[i], diff)
		}
	}
	return nil
}
