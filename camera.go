package main

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl32"
)

// surfaceModelMatrix lays the plane flat: local z (displacement) becomes world +y.
var surfaceModelMatrix = mgl32.HomogRotate3DX(-math.Pi / 2)

const polarEpsilon = 1e-3

// orbitAxis is one orbit parameter with an optional spring easing it toward
// its goal.
type orbitAxis struct {
	value, velocity, goal float64
}

func (a *orbitAxis) settle(spring *harmonica.Spring) {
	if spring == nil {
		a.value, a.velocity = a.goal, 0
		return
	}
	a.value, a.velocity = spring.Update(a.value, a.velocity, a.goal)
}

// orbitCamera is a perspective camera orbiting a target point with y up.
type orbitCamera struct {
	target   mgl32.Vec3
	azimuth  orbitAxis
	polar    orbitAxis
	distance orbitAxis
	spring   *harmonica.Spring

	width, height int
}

// newOrbitCamera places the camera at position looking at the origin.
func newOrbitCamera(position mgl32.Vec3, width, height int, damping bool) *orbitCamera {
	c := &orbitCamera{width: width, height: height}
	d := float64(position.Len())
	az := math.Atan2(float64(position[0]), float64(position[2]))
	polar := math.Acos(float64(position[1]) / d)
	c.distance = orbitAxis{value: d, goal: d}
	c.azimuth = orbitAxis{value: az, goal: az}
	c.polar = orbitAxis{value: polar, goal: polar}
	if damping {
		s := harmonica.NewSpring(harmonica.FPS(orbitSpringFPS), orbitSpringFreq, orbitSpringDamp)
		c.spring = &s
	}
	return c
}

// rotate moves the orbit goal by a cursor delta in pixels.
func (c *orbitCamera) rotate(dx, dy float64) {
	c.azimuth.goal -= dx * orbitRotateSpeed
	c.polar.goal = clamp(c.polar.goal-dy*orbitRotateSpeed, polarEpsilon, math.Pi-polarEpsilon)
}

// zoom scales the orbit distance; positive steps move closer.
func (c *orbitCamera) zoom(steps float64) {
	c.distance.goal = clamp(c.distance.goal*math.Pow(orbitZoomStep, steps), orbitMinDistance, orbitMaxDistance)
}

// update advances damped motion by one frame.
func (c *orbitCamera) update() {
	c.azimuth.settle(c.spring)
	c.polar.settle(c.spring)
	c.distance.settle(c.spring)
}

func (c *orbitCamera) setViewport(width, height int) {
	c.width, c.height = width, height
}

func (c *orbitCamera) viewport() (int, int) {
	return c.width, c.height
}

func (c *orbitCamera) position() mgl32.Vec3 {
	d, az, polar := c.distance.value, c.azimuth.value, c.polar.value
	offset := mgl32.Vec3{
		float32(d * math.Sin(polar) * math.Sin(az)),
		float32(d * math.Cos(polar)),
		float32(d * math.Sin(polar) * math.Cos(az)),
	}
	return c.target.Add(offset)
}

func (c *orbitCamera) aspect() float32 {
	if c.height <= 0 {
		return 1
	}
	return float32(c.width) / float32(c.height)
}

func (c *orbitCamera) viewProjection() mgl32.Mat4 {
	proj := mgl32.Perspective(mgl32.DegToRad(cameraFovDeg), c.aspect(), cameraNear, cameraFar)
	view := mgl32.LookAtV(c.position(), c.target, mgl32.Vec3{0, 1, 0})
	return proj.Mul4(view)
}

// screenVertex is a projected vertex in pixels. Vertices behind the camera
// are not visible and edges touching them are skipped.
type screenVertex struct {
	x, y    float32
	visible bool
}

// projectPoint maps a model-space point through mvp to pixel coordinates.
func projectPoint(mvp mgl32.Mat4, width, height int, p mgl32.Vec3) screenVertex {
	clip := mvp.Mul4x1(p.Vec4(1))
	if clip[3] <= cameraNear {
		return screenVertex{}
	}
	ndcX := clip[0] / clip[3]
	ndcY := clip[1] / clip[3]
	return screenVertex{
		x:       (ndcX + 1) * 0.5 * float32(width),
		y:       (1 - ndcY) * 0.5 * float32(height),
		visible: true,
	}
}

// projectRange projects vertices [start, end) of the flat xyz positions.
func projectRange(mvp mgl32.Mat4, width, height int, positions []float32, out []screenVertex, start, end int) {
	for v := start; v < end; v++ {
		i := v * 3
		out[v] = projectPoint(mvp, width, height, mgl32.Vec3{positions[i], positions[i+1], positions[i+2]})
	}
}
