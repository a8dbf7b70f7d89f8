package surface

import "image/color"

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpClear OpKind = iota
	OpLine
	OpCircle
)

// Op is one drawing call in device coordinates.
type Op struct {
	Kind   OpKind
	X0, Y0 float64
	X1, Y1 float64
	R      float64
	Paint  Paint
}

// Recorder is a Canvas that keeps the calls made on it instead of drawing.
type Recorder struct {
	Transform
	W, H float64
	Ops  []Op
}

// NewRecorder returns an empty recorder of the given size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

func (r *Recorder) Clear(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Paint: Paint{Color: c, Fill: true}})
}

func (r *Recorder) DrawLine(x0, y0, x1, y1 float64, p Paint) {
	ax, ay := r.Apply(x0, y0)
	bx, by := r.Apply(x1, y1)
	r.Ops = append(r.Ops, Op{Kind: OpLine, X0: ax, Y0: ay, X1: bx, Y1: by, Paint: p})
}

func (r *Recorder) DrawCircle(cx, cy, rad float64, p Paint) {
	x, y := r.Apply(cx, cy)
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X0: x, Y0: y, R: rad, Paint: p})
}

// Count returns the number of recorded ops of kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}
