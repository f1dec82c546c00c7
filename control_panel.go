package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelWidth      = 280
	panelRowHeight  = 24
	panelPadding    = 8
	panelLabelWidth = 120
	panelMargin     = 10
	keyRepeatDelay  = 30
	keyRepeatPeriod = 3
)

var (
	panelBackground = color.RGBA{26, 26, 26, 220}
	panelTrack      = color.RGBA{60, 60, 60, 255}
	panelFill       = color.RGBA{47, 161, 214, 255}
	panelSelected   = color.RGBA{230, 230, 230, 255}
)

// panelControl is one slider row.
type panelControl struct {
	label    string
	value    float64
	min, max float64
	onChange func(float64)
}

// controlPanel draws slider rows in the top-right corner and turns mouse and
// keyboard input into clamped value changes.
type controlPanel struct {
	controls    []*panelControl
	selected    int
	dragging    int
	hidden      bool
	screenWidth int
}

func newControlPanel() *controlPanel {
	return &controlPanel{dragging: -1, screenWidth: defaultWindowWidth}
}

func (p *controlPanel) bindControl(label string, initial, min, max float64, onChange func(float64)) {
	if max < min {
		min, max = max, min
	}
	p.controls = append(p.controls, &panelControl{
		label:    label,
		value:    clamp(initial, min, max),
		min:      min,
		max:      max,
		onChange: onChange,
	})
}

// setValue clamps v into the control's range and notifies its binding when
// the stored value changes.
func (p *controlPanel) setValue(index int, v float64) bool {
	if index < 0 || index >= len(p.controls) {
		return false
	}
	c := p.controls[index]
	v = clamp(v, c.min, c.max)
	if v == c.value {
		return false
	}
	c.value = v
	if c.onChange != nil {
		c.onChange(v)
	}
	return true
}

// nudge moves a control by a fixed fraction of its range.
func (p *controlPanel) nudge(index int, direction float64) bool {
	if index < 0 || index >= len(p.controls) {
		return false
	}
	c := p.controls[index]
	return p.setValue(index, c.value+direction*(c.max-c.min)*panelNudgeFraction)
}

func (p *controlPanel) origin() image.Point {
	return image.Pt(p.screenWidth-panelWidth-panelMargin, panelMargin)
}

func (p *controlPanel) bounds() image.Rectangle {
	o := p.origin()
	return image.Rect(o.X, o.Y, o.X+panelWidth, o.Y+len(p.controls)*panelRowHeight+panelPadding)
}

func (p *controlPanel) trackRect(index int) image.Rectangle {
	o := p.origin()
	top := o.Y + panelPadding/2 + index*panelRowHeight + 4
	return image.Rect(o.X+panelLabelWidth, top, o.X+panelWidth-panelPadding, top+panelRowHeight-8)
}

// valueAt converts a cursor x coordinate on a track into a control value.
func (p *controlPanel) valueAt(index int, cursorX int) float64 {
	c := p.controls[index]
	r := p.trackRect(index)
	t := clamp(float64(cursorX-r.Min.X)/float64(r.Dx()), 0, 1)
	return lerp(c.min, c.max, t)
}

func (p *controlPanel) trackAt(pt image.Point) int {
	for i := range p.controls {
		if pt.In(p.trackRect(i)) {
			return i
		}
	}
	return -1
}

func (p *controlPanel) contains(pt image.Point) bool {
	return !p.hidden && pt.In(p.bounds())
}

func keyRepeated(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatPeriod == 0)
}

// update handles panel input for this frame. It reports whether the mouse is
// owned by the panel so orbit controls can ignore it.
func (p *controlPanel) update(screenWidth int) bool {
	p.screenWidth = screenWidth
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		p.hidden = !p.hidden
		p.dragging = -1
	}
	if p.hidden || len(p.controls) == 0 {
		return false
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		p.selected = (p.selected + len(p.controls) - 1) % len(p.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		p.selected = (p.selected + 1) % len(p.controls)
	}
	if keyRepeated(ebiten.KeyLeft) {
		p.nudge(p.selected, -1)
	}
	if keyRepeated(ebiten.KeyRight) {
		p.nudge(p.selected, 1)
	}

	cx, cy := ebiten.CursorPosition()
	cursor := image.Pt(cx, cy)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if i := p.trackAt(cursor); i >= 0 {
			p.dragging = i
			p.selected = i
		}
	}
	if p.dragging >= 0 {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			p.setValue(p.dragging, p.valueAt(p.dragging, cx))
			return true
		}
		p.dragging = -1
	}
	return p.contains(cursor)
}

// fraction is the control's position within its range, 0 for an empty range.
func (c *panelControl) fraction() float64 {
	if c.max <= c.min {
		return 0
	}
	return (c.value - c.min) / (c.max - c.min)
}

// filledTrack is the part of a track rectangle covered by the current value.
func filledTrack(track image.Rectangle, fraction float64) image.Rectangle {
	w := int(float64(track.Dx())*clamp(fraction, 0, 1) + 0.5)
	return image.Rect(track.Min.X, track.Min.Y, track.Min.X+w, track.Max.Y)
}

func fillRect(dst *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.FillRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}

func (p *controlPanel) draw(dst *ebiten.Image) {
	if p.hidden || len(p.controls) == 0 {
		return
	}
	b := p.bounds()
	fillRect(dst, b, panelBackground)
	for i, c := range p.controls {
		r := p.trackRect(i)
		fillRect(dst, r, panelTrack)
		if fill := filledTrack(r, c.fraction()); !fill.Empty() {
			fillRect(dst, fill, panelFill)
		}
		if i == p.selected {
			vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, panelSelected, false)
		}
		ebitenutil.DebugPrintAt(dst, fmt.Sprintf("%s %.3f", c.label, c.value), b.Min.X+panelPadding, r.Min.Y-2)
	}
}
