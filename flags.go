package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"math"
	"runtime"

	css "github.com/mazznoer/csscolorparser"
)

// Command-line flags that control the surface, the initial pipeline inputs,
// and optional rendering and runtime behavior.
var (
	// amplitudeFlag sets the initial displacement amplitude (0-1).
	amplitudeFlag = flag.Float64("amplitude", defaultAmplitude, "initial displacement amplitude (0-1)")

	// speedFlag sets the initial animation speed factor (0-5).
	speedFlag = flag.Float64("speed", defaultSpeed, "initial animation speed factor (0-5)")

	// segmentsFlag controls the grid subdivisions along each side of the plane.
	segmentsFlag = flag.Int("segments", defaultPlaneSegments, "plane subdivisions per side")

	// planeSizeFlag controls the side length of the square plane.
	planeSizeFlag = flag.Float64("plane-size", defaultPlaneSize, "plane side length in world units")

	// wireframeFlag renders triangle edges instead of filled triangles.
	wireframeFlag = flag.Bool("wireframe", true, "render the surface as a wireframe")

	// workersFlag sets the CPU displacement worker count; 0 uses every CPU.
	workersFlag = flag.Int("workers", 0, "CPU displacement workers (0 = NumCPU)")

	// openCLFlag requests the OpenCL displacement backend.
	openCLFlag = flag.Bool("opencl", false, "evaluate displacement with OpenCL (requires -tags opencl)")

	verifyOpenCLFlag = flag.Bool("verify-opencl", false, "compare OpenCL displacement against the CPU formula every frame")

	// accumulateTimeFlag integrates delta*speed instead of scaling elapsed time.
	accumulateTimeFlag = flag.Bool("accumulate-time", false, "accumulate time as delta*speed so speed changes never jump the animation")

	// orbitDampingFlag smooths orbit camera motion with springs.
	orbitDampingFlag = flag.Bool("orbit-damping", false, "smooth orbit camera motion")

	// backgroundFlag is any CSS color used to clear each frame.
	backgroundFlag = flag.String("background", "#000000", "background clear color (CSS syntax)")

	// debugFlag enables the FPS and pipeline overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and pipeline timing overlay")

	// cpuProfileFlag writes a CPU profile covering the whole run.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this path")
)

// settings is the validated view of the command-line flags.
type settings struct {
	amplitude      float64
	speed          float64
	segments       int
	planeSize      float64
	wireframe      bool
	workers        int
	openCL         bool
	verifyOpenCL   bool
	accumulateTime bool
	orbitDamping   bool
	background     color.RGBA
	backgroundSpec string
	debug          bool
	cpuProfile     string
}

// settingsFromFlags snapshots the parsed flags. Call after flag.Parse.
func settingsFromFlags() settings {
	return settings{
		amplitude:      *amplitudeFlag,
		speed:          *speedFlag,
		segments:       *segmentsFlag,
		planeSize:      *planeSizeFlag,
		wireframe:      *wireframeFlag,
		workers:        *workersFlag,
		openCL:         *openCLFlag,
		verifyOpenCL:   *verifyOpenCLFlag,
		accumulateTime: *accumulateTimeFlag,
		orbitDamping:   *orbitDampingFlag,
		backgroundSpec: *backgroundFlag,
		debug:          *debugFlag,
		cpuProfile:     *cpuProfileFlag,
	}
}

// validate checks ranges, resolves defaults, and parses the background color.
// Amplitude and speed are clamped the same way the control panel clamps them.
func (s *settings) validate() error {
	if s.segments < 1 || s.segments > maxPlaneSegments {
		return fmt.Errorf("segments must be in [1, %d], got %d", maxPlaneSegments, s.segments)
	}
	if s.planeSize <= 0 {
		return fmt.Errorf("plane size must be positive, got %g", s.planeSize)
	}
	if s.workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", s.workers)
	}
	if s.workers == 0 {
		s.workers = runtime.NumCPU()
	}
	if s.verifyOpenCL && !s.openCL {
		return errors.New("-verify-opencl requires -opencl")
	}
	s.amplitude = clamp(s.amplitude, minAmplitude, maxAmplitude)
	s.speed = clamp(s.speed, minSpeed, maxSpeed)

	bg, err := parseBackground(s.backgroundSpec)
	if err != nil {
		return err
	}
	s.background = bg
	return nil
}

// parseBackground converts a CSS color string into an opaque RGBA value.
func parseBackground(spec string) (color.RGBA, error) {
	c, err := css.Parse(spec)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parsing background %q: %w", spec, err)
	}
	return color.RGBA{
		R: uint8(math.Round(255 * clamp(c.R, 0, 1))),
		G: uint8(math.Round(255 * clamp(c.G, 0, 1))),
		B: uint8(math.Round(255 * clamp(c.B, 0, 1))),
		A: 255,
	}, nil
}
