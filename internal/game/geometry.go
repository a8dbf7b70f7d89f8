package game

import (
	"math"

	"github.com/iburimskiy/circle-shifter-rot-line/internal/anim"
	"github.com/iburimskiy/circle-shifter-rot-line/internal/surface"
)

// nodeLayout is the size of one node on a w x h canvas.
type nodeLayout struct {
	gap    float64 // vertical distance between node centres
	size   float64 // half length of the bar
	stroke float64
	radius float64
}

func (r *Renderer) layout(w, h float64) nodeLayout {
	gap := h / float64(r.chain.Len()+1)
	size := gap / r.sizeFactor
	return nodeLayout{
		gap:    gap,
		size:   size,
		stroke: math.Min(w, h) / r.strokeFactor,
		radius: size / (1.5 * float64(r.chain.Circles())),
	}
}

// drawNode draws node n centred horizontally at its row. The first half of
// a transition pushes the circles off the bar one after another, alternating
// above and below it; the second half turns the whole cluster a quarter
// turn.
func (r *Renderer) drawNode(c surface.Canvas, n anim.Node, w, h float64) {
	l := r.layout(w, h)
	circles := r.chain.Circles()
	sc1 := anim.DivideScale(n.State.Scale, 0, 2)
	sc2 := anim.DivideScale(n.State.Scale, 1, 2)

	line := surface.Paint{Color: r.fore, StrokeWidth: l.stroke, Cap: surface.RoundCap}
	fill := surface.Paint{Color: r.fore, Fill: true}

	c.Save()
	c.Translate(w/2, l.gap*float64(n.Index+1))
	c.Rotate(90 * eased(r.easeFn, sc2))
	c.DrawLine(-l.size, 0, l.size, 0, line)
	spacing := 2 * l.size / float64(circles)
	for j := 0; j < circles; j++ {
		x := -l.size + spacing*(float64(j)+0.5)
		sign := 1.0
		if j%2 == 1 {
			sign = -1
		}
		y := sign * l.size * eased(r.easeFn, anim.DivideScale(sc1, j, circles))
		if y != 0 {
			c.DrawLine(x, 0, x, y, line)
		}
		c.DrawCircle(x, y, l.radius, fill)
	}
	c.Restore()
}
