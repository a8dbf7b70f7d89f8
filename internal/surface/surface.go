// Package surface is the drawing API the chain is rendered through. A Canvas
// keeps a save/restore stack of translate/rotate transforms in the manner of
// a 2D graphics context; implementations map the transformed coordinates
// onto an Ebitengine image, a terminal, or an in-memory recording.
package surface

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Cap is the shape of stroke ends.
type Cap int

const (
	ButtCap Cap = iota
	RoundCap
)

// Paint describes how a shape is drawn.
type Paint struct {
	Color       color.Color
	StrokeWidth float64
	Cap         Cap
	Fill        bool
}

// Canvas is a drawing surface with a transform stack.
type Canvas interface {
	Size() (w, h float64)
	Clear(c color.Color)
	DrawLine(x0, y0, x1, y1 float64, p Paint)
	DrawCircle(cx, cy, r float64, p Paint)
	Save()
	Restore()
	Translate(dx, dy float64)
	Rotate(deg float64)
}

// Transform is a save/restore stack of affine transforms. New transforms
// apply in the local space of the current one.
type Transform struct {
	geo   ebiten.GeoM
	stack []ebiten.GeoM
}

// Save pushes the current transform.
func (t *Transform) Save() {
	t.stack = append(t.stack, t.geo)
}

// Restore pops the last saved transform. Unbalanced calls reset to identity.
func (t *Transform) Restore() {
	if len(t.stack) == 0 {
		t.geo.Reset()
		return
	}
	t.geo = t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
}

// Translate moves the origin by (dx, dy) in local coordinates.
func (t *Transform) Translate(dx, dy float64) {
	var m ebiten.GeoM
	m.Translate(dx, dy)
	t.local(m)
}

// Rotate turns the local axes clockwise by deg degrees (y points down).
func (t *Transform) Rotate(deg float64) {
	var m ebiten.GeoM
	m.Rotate(deg * math.Pi / 180)
	t.local(m)
}

func (t *Transform) local(m ebiten.GeoM) {
	m.Concat(t.geo)
	t.geo = m
}

// Apply maps a local point to device coordinates.
func (t *Transform) Apply(x, y float64) (float64, float64) {
	return t.geo.Apply(x, y)
}

// Depth returns the number of saved transforms.
func (t *Transform) Depth() int {
	return len(t.stack)
}

// Reset drops every saved transform and returns to identity.
func (t *Transform) Reset() {
	t.geo.Reset()
	t.stack = t.stack[:0]
}
