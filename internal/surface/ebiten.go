package surface

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Ebiten draws onto an Ebitengine image with the vector package.
type Ebiten struct {
	Transform
	dst       *ebiten.Image
	antialias bool
}

// NewEbiten wraps dst. The transform starts at identity.
func NewEbiten(dst *ebiten.Image, antialias bool) *Ebiten {
	return &Ebiten{dst: dst, antialias: antialias}
}

// Target switches the destination image and resets the transform so one
// canvas can be reused across frames.
func (e *Ebiten) Target(dst *ebiten.Image) {
	e.dst = dst
	e.Reset()
}

func (e *Ebiten) Size() (float64, float64) {
	b := e.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (e *Ebiten) Clear(c color.Color) {
	e.dst.Fill(c)
}

func (e *Ebiten) DrawLine(x0, y0, x1, y1 float64, p Paint) {
	ax, ay := e.Apply(x0, y0)
	bx, by := e.Apply(x1, y1)
	sw := float32(p.StrokeWidth)
	vector.StrokeLine(e.dst, float32(ax), float32(ay), float32(bx), float32(by), sw, p.Color, e.antialias)
	if p.Cap == RoundCap {
		// vector strokes have butt ends; round them off with discs.
		vector.DrawFilledCircle(e.dst, float32(ax), float32(ay), sw/2, p.Color, e.antialias)
		vector.DrawFilledCircle(e.dst, float32(bx), float32(by), sw/2, p.Color, e.antialias)
	}
}

func (e *Ebiten) DrawCircle(cx, cy, r float64, p Paint) {
	x, y := e.Apply(cx, cy)
	if p.Fill {
		vector.DrawFilledCircle(e.dst, float32(x), float32(y), float32(r), p.Color, e.antialias)
		return
	}
	vector.StrokeCircle(e.dst, float32(x), float32(y), float32(r), float32(p.StrokeWidth), p.Color, e.antialias)
}
