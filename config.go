package main

// Scene, pipeline, and control configuration constants used throughout the
// application. These values define the surface grid, the camera, and the
// ranges of the live-adjustable pipeline inputs.
const (
	defaultWindowWidth  = 1280
	defaultWindowHeight = 720
	windowTitle         = "Wave Surface"

	defaultPlaneSize     = 10.0
	defaultPlaneSegments = 100
	maxPlaneSegments     = 250

	defaultAmplitude = 0.2
	minAmplitude     = 0.0
	maxAmplitude     = 1.0
	defaultSpeed     = 1.0
	minSpeed         = 0.0
	maxSpeed         = 5.0

	cameraFovDeg     = 75.0
	cameraNear       = 0.1
	cameraFar        = 1000.0
	cameraStartX     = 5.0
	cameraStartY     = 5.0
	cameraStartZ     = 5.0
	orbitRotateSpeed = 0.005
	orbitZoomStep    = 0.9
	orbitMinDistance = 1.0
	orbitMaxDistance = 100.0
	orbitSpringFPS   = 60
	orbitSpringFreq  = 8.0
	orbitSpringDamp  = 1.0

	axesHelperSize = 5.0

	maxBatchVertices   = 65535
	wireframeLineWidth = 1.0

	timingWindow          = 120
	verifyOpenCLTolerance = 1e-3
	panelNudgeFraction    = 0.01
)
