package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// orbitInput tracks the cursor between frames for drag rotation.
type orbitInput struct {
	dragging     bool
	lastX, lastY int
}

// handleOrbitControls rotates on left-drag and zooms on the wheel unless the
// control panel owns the mouse this frame.
func (g *Game) handleOrbitControls(panelOwnsMouse bool) {
	cx, cy := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !panelOwnsMouse {
		g.orbit.dragging = true
		g.orbit.lastX, g.orbit.lastY = cx, cy
	}
	if g.orbit.dragging {
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			g.orbit.dragging = false
		} else {
			g.camera.rotate(float64(cx-g.orbit.lastX), float64(cy-g.orbit.lastY))
			g.orbit.lastX, g.orbit.lastY = cx, cy
		}
	}
	if !panelOwnsMouse {
		if _, wy := ebiten.Wheel(); wy != 0 {
			g.camera.zoom(wy)
		}
	}
	g.camera.update()
}
