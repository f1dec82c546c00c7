package main

import (
	"fmt"
	"time"
)

// displacementBackend evaluates the displacement stage for a whole surface.
// base and out are flat xyz arrays of equal length; base is never written.
type displacementBackend interface {
	Displace(in pipelineSnapshot, base, out []float32) error
	Name() string
	Close()
}

// cpuDisplacer evaluates the displacement formula on the vertex pool.
type cpuDisplacer struct {
	pool *vertexPool
}

func newCPUDisplacer(pool *vertexPool) *cpuDisplacer {
	return &cpuDisplacer{pool: pool}
}

func (c *cpuDisplacer) Displace(in pipelineSnapshot, base, out []float32) error {
	if len(base) != len(out) || len(base)%3 != 0 {
		return fmt.Errorf("displacement buffers mismatch: base %d, out %d", len(base), len(out))
	}
	if !c.pool.run(func(start, end int) {
		displaceRange(in, base, out, start, end)
	}) {
		return errPoolClosed
	}
	return nil
}

func (c *cpuDisplacer) Name() string {
	return fmt.Sprintf("cpu (%d workers)", c.pool.workerCount())
}

// Close is a no-op; the pool is shared with the projection pass and closed by its owner.
func (c *cpuDisplacer) Close() {}

// surfaceStage submits one frame of the pipeline: displacement through the
// backend, then projection of the displaced vertices into screen space.
type surfaceStage struct {
	surface  *surface
	inputs   *pipelineInputs
	backend  displacementBackend
	pool     *vertexPool
	camera   *orbitCamera
	screen   []screenVertex
	timings  *timingWindowStats
	lastSent pipelineSnapshot
}

func newSurfaceStage(s *surface, inputs *pipelineInputs, backend displacementBackend, pool *vertexPool, cam *orbitCamera) *surfaceStage {
	return &surfaceStage{
		surface: s,
		inputs:  inputs,
		backend: backend,
		pool:    pool,
		camera:  cam,
		screen:  make([]screenVertex, s.vertexCount()),
		timings: newTimingWindowStats(timingWindow),
	}
}

// submit is a frame subscriber. It snapshots the inputs after the frame
// driver has written time, so the backend always sees the latest values.
func (st *surfaceStage) submit(tick frameTick) error {
	start := time.Now()
	snap := st.inputs.snapshot(tick.frame)
	if err := st.backend.Displace(snap, st.surface.base, st.surface.displaced); err != nil {
		return fmt.Errorf("displacing frame %d with %s: %w", tick.frame, st.backend.Name(), err)
	}
	mvp := st.camera.viewProjection().Mul4(surfaceModelMatrix)
	vw, vh := st.camera.viewport()
	displaced := st.surface.displaced
	if !st.pool.run(func(startV, endV int) {
		projectRange(mvp, vw, vh, displaced, st.screen, startV, endV)
	}) {
		return fmt.Errorf("projecting frame %d: %w", tick.frame, errPoolClosed)
	}
	st.lastSent = snap
	st.timings.add(time.Since(start))
	return nil
}
