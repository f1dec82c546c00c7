package main

import (
	_ "embed"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

//go:embed surface_shader.go
var surfaceShaderSource []byte

// loadSurfaceShader compiles the Kage fragment stage.
func loadSurfaceShader() (*ebiten.Shader, error) {
	shader, err := ebiten.NewShader(surfaceShaderSource)
	if err != nil {
		return nil, fmt.Errorf("compiling surface shader: %w", err)
	}
	return shader, nil
}

// surfaceRenderer turns projected surface vertices into ebiten triangle
// batches. With a shader, amplitude is a uniform; without one the host
// applies it to the vertex colors.
type surfaceRenderer struct {
	shader     *ebiten.Shader
	wireframe  bool
	background color.RGBA

	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func newSurfaceRenderer(shader *ebiten.Shader, wireframe bool, background color.RGBA) *surfaceRenderer {
	return &surfaceRenderer{
		shader:     shader,
		wireframe:  wireframe,
		background: background,
		vertices:   make([]ebiten.Vertex, 0, maxBatchVertices),
		indices:    make([]uint16, 0, maxBatchVertices*3/2),
	}
}

func (r *surfaceRenderer) whiteSubImage() *ebiten.Image {
	if r.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return r.white
}

// vertexColor is the color carried by each vertex for this frame.
func (r *surfaceRenderer) vertexColor(normal mgl32.Vec3, amplitude float32) mgl32.Vec3 {
	if r.shader != nil {
		return normalColor(normal)
	}
	return surfaceColor(normal, amplitude)
}

func (r *surfaceRenderer) push(x, y float32, c mgl32.Vec3) {
	r.vertices = append(r.vertices, ebiten.Vertex{
		DstX: x, DstY: y,
		SrcX: 1, SrcY: 1,
		ColorR: c[0], ColorG: c[1], ColorB: c[2], ColorA: 1,
	})
}

func (r *surfaceRenderer) flush(dst *ebiten.Image, amplitude float32) {
	if len(r.indices) == 0 {
		r.vertices = r.vertices[:0]
		return
	}
	if r.shader != nil {
		op := &ebiten.DrawTrianglesShaderOptions{}
		op.Uniforms = map[string]any{"Amplitude": amplitude}
		dst.DrawTrianglesShader(r.vertices, r.indices, r.shader, op)
	} else {
		op := &ebiten.DrawTrianglesOptions{}
		op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
		dst.DrawTriangles(r.vertices, r.indices, r.whiteSubImage(), op)
	}
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}

func (r *surfaceRenderer) reserve(dst *ebiten.Image, amplitude float32, count int) {
	if len(r.vertices)+count > maxBatchVertices {
		r.flush(dst, amplitude)
	}
}

// drawSurface renders the last submitted frame.
func (r *surfaceRenderer) drawSurface(dst *ebiten.Image, s *surface, screen []screenVertex, amplitude float32) {
	if r.wireframe {
		r.drawEdges(dst, s, screen, amplitude)
	} else {
		r.drawTriangles(dst, s, screen, amplitude)
	}
	r.flush(dst, amplitude)
}

func (r *surfaceRenderer) drawEdges(dst *ebiten.Image, s *surface, screen []screenVertex, amplitude float32) {
	half := float32(wireframeLineWidth) / 2
	for e := 0; e+1 < len(s.edges); e += 2 {
		ia, ib := s.edges[e], s.edges[e+1]
		a, b := screen[ia], screen[ib]
		if !a.visible || !b.visible {
			continue
		}
		dx, dy := b.x-a.x, b.y-a.y
		length := float32(math.Hypot(float64(dx), float64(dy)))
		if length == 0 {
			continue
		}
		nx, ny := -dy/length*half, dx/length*half

		r.reserve(dst, amplitude, 4)
		ca := r.vertexColor(s.normal(int(ia)), amplitude)
		cb := r.vertexColor(s.normal(int(ib)), amplitude)
		base := uint16(len(r.vertices))
		r.push(a.x+nx, a.y+ny, ca)
		r.push(a.x-nx, a.y-ny, ca)
		r.push(b.x+nx, b.y+ny, cb)
		r.push(b.x-nx, b.y-ny, cb)
		r.indices = append(r.indices, base, base+1, base+2, base+1, base+3, base+2)
	}
}

func (r *surfaceRenderer) drawTriangles(dst *ebiten.Image, s *surface, screen []screenVertex, amplitude float32) {
	for t := 0; t+2 < len(s.triangles); t += 3 {
		tri := s.triangles[t : t+3]
		if !screen[tri[0]].visible || !screen[tri[1]].visible || !screen[tri[2]].visible {
			continue
		}
		r.reserve(dst, amplitude, 3)
		base := uint16(len(r.vertices))
		for _, v := range tri {
			sv := screen[v]
			r.push(sv.x, sv.y, r.vertexColor(s.normal(int(v)), amplitude))
		}
		r.indices = append(r.indices, base, base+1, base+2)
	}
}

var axisColors = [3]color.RGBA{
	{255, 0, 0, 255},
	{0, 255, 0, 255},
	{0, 0, 255, 255},
}

// drawAxes draws the world X, Y and Z axes from the origin.
func drawAxes(dst *ebiten.Image, cam *orbitCamera) {
	vp := cam.viewProjection()
	w, h := cam.viewport()
	origin := projectPoint(vp, w, h, mgl32.Vec3{})
	if !origin.visible || !nearViewport(origin, w, h) {
		return
	}
	for axis := 0; axis < 3; axis++ {
		var end mgl32.Vec3
		end[axis] = axesHelperSize
		tip := projectPoint(vp, w, h, end)
		if !tip.visible || !nearViewport(tip, w, h) {
			continue
		}
		drawLine(dst, w, h, int(origin.x), int(origin.y), int(tip.x), int(tip.y), axisColors[axis])
	}
}

// nearViewport bounds Bresenham work for points projected far off screen.
func nearViewport(v screenVertex, w, h int) bool {
	limit := float32(4 * max(w, h))
	return v.x > -limit && v.x < limit && v.y > -limit && v.y < limit
}

// Draw renders the surface, the axes, the control panel and the optional overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.renderer.background)
	g.renderer.drawSurface(screen, g.surface, g.stage.screen, g.stage.lastSent.amplitude)
	drawAxes(screen, g.camera)
	g.panel.draw(screen)

	if g.settings.debug {
		mean, std := g.stage.timings.meanStdDev()
		debugMsg := fmt.Sprintf("FPS: %.1f TPS: %.1f\nBackend: %s\nTime: %.3f (%s)\nAmplitude: %.3f Speed: %.3f\nPipeline: %.2f ms (sd %.2f)",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.backend.Name(),
			g.stage.lastSent.time, g.driver.mode, g.inputs.amplitude, g.inputs.speed, mean, std)
		ebitenutil.DebugPrint(screen, debugMsg)
	}
}

// Layout follows the window size and keeps the camera aspect in sync.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.camera.setViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// drawLine plots a line segment using Bresenham's integer algorithm.
func drawLine(screen *ebiten.Image, width, height, x0, y0, x1, y1 int, clr color.Color) {
	dx := int(math.Abs(float64(x1 - x0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -int(math.Abs(float64(y1 - y0)))
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		if x0 >= 0 && x0 < width && y0 >= 0 && y0 < height {
			screen.Set(x0, y0, clr)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}
