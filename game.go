package main

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game owns the surface, the pipeline inputs, and the per-frame schedule.
type Game struct {
	settings settings

	surface *surface
	inputs  *pipelineInputs

	scheduler *frameScheduler
	driver    *frameDriver
	pool      *vertexPool
	backend   displacementBackend
	stage     *surfaceStage

	camera   *orbitCamera
	orbit    orbitInput
	panel    *controlPanel
	renderer *surfaceRenderer
}

// newGame wires the pipeline: the frame driver writes time, then the surface
// stage displaces and projects. The control panel writes amplitude and speed.
func newGame(cfg settings, c clock) *Game {
	g := &Game{
		settings: cfg,
		surface:  newSurface(float32(cfg.planeSize), float32(cfg.planeSize), cfg.segments),
		inputs:   newPipelineInputs(cfg.amplitude, cfg.speed),
		panel:    newControlPanel(),
		camera: newOrbitCamera(mgl32.Vec3{cameraStartX, cameraStartY, cameraStartZ},
			defaultWindowWidth, defaultWindowHeight, cfg.orbitDamping),
	}
	g.pool = newVertexPool(cfg.workers, g.surface.rows, g.surface.columns)
	g.backend = g.selectBackend()

	mode := timeScaled
	if cfg.accumulateTime {
		mode = timeAccumulate
	}
	g.driver = newFrameDriver(g.inputs, mode)
	g.stage = newSurfaceStage(g.surface, g.inputs, g.backend, g.pool, g.camera)

	g.scheduler = newFrameScheduler(c)
	g.scheduler.subscribe(g.driver.step)
	g.scheduler.subscribe(g.stage.submit)

	bindParameters(g.panel, g.inputs)

	shader, err := loadSurfaceShader()
	if err != nil {
		ErrorLogger.Printf("%v; falling back to host-side coloring", err)
	}
	g.renderer = newSurfaceRenderer(shader, cfg.wireframe, cfg.background)
	return g
}

// selectBackend prefers OpenCL when requested and falls back to the CPU pool.
func (g *Game) selectBackend() displacementBackend {
	cpu := newCPUDisplacer(g.pool)
	if !g.settings.openCL {
		InfoLogger.Printf("displacement backend: %s", cpu.Name())
		return cpu
	}
	solver, err := newOpenCLDisplacer(g.surface.base)
	if err != nil {
		ErrorLogger.Printf("OpenCL initialization failed: %v; using %s", err, cpu.Name())
		return cpu
	}
	InfoLogger.Printf("displacement backend: %s", solver.Name())
	if g.settings.verifyOpenCL {
		return newVerifyingDisplacer(solver, g.pool)
	}
	return solver
}

// Update handles UI input, then ticks the scheduler so the surface reflects
// this frame's control changes.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	w, _ := g.camera.viewport()
	panelOwnsMouse := g.panel.update(w)
	g.handleOrbitControls(panelOwnsMouse)
	return g.scheduler.tick()
}

func (g *Game) close() {
	g.backend.Close()
	g.pool.close()
}
