package surface

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// upperHalf draws the top pixel of a cell in the foreground colour and the
// bottom pixel in the background colour.
const upperHalf = '▀'

// Terminal rasterises onto a tcell screen at two pixels per cell: each
// cell is split into an upper and a lower half. Drawing goes to an
// in-memory buffer; Flush copies it to the screen.
type Terminal struct {
	Transform
	screen tcell.Screen
	w, h   int
	px     []tcell.Color
}

// NewTerminal creates a canvas sized to the screen.
func NewTerminal(screen tcell.Screen) *Terminal {
	t := &Terminal{screen: screen}
	t.Resize()
	return t
}

// Resize matches the pixel buffer to the current screen size.
func (t *Terminal) Resize() {
	cols, rows := t.screen.Size()
	t.w, t.h = cols, rows*2
	t.px = make([]tcell.Color, t.w*t.h)
	t.Reset()
}

func (t *Terminal) Size() (float64, float64) {
	return float64(t.w), float64(t.h)
}

func (t *Terminal) Clear(c color.Color) {
	tc := termColor(c)
	for i := range t.px {
		t.px[i] = tc
	}
}

func (t *Terminal) DrawLine(x0, y0, x1, y1 float64, p Paint) {
	ax, ay := t.Apply(x0, y0)
	bx, by := t.Apply(x1, y1)
	tc := termColor(p.Color)
	half := p.StrokeWidth / 2

	steps := int(math.Ceil(math.Hypot(bx-ax, by-ay) * 2))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		f := float64(i) / float64(steps)
		t.stamp(ax+(bx-ax)*f, ay+(by-ay)*f, half, tc)
	}
}

func (t *Terminal) DrawCircle(cx, cy, r float64, p Paint) {
	x, y := t.Apply(cx, cy)
	tc := termColor(p.Color)
	if p.Fill {
		t.disc(x, y, r, tc)
		return
	}
	band := math.Max(p.StrokeWidth/2, 0.5)
	t.span(x, y, r+band, func(d float64) bool {
		return math.Abs(d-r) <= band
	}, tc)
}

// Flush copies the pixel buffer to the screen and shows it.
func (t *Terminal) Flush() {
	for row := 0; row < t.h/2; row++ {
		for col := 0; col < t.w; col++ {
			top := t.px[(2*row)*t.w+col]
			bottom := t.px[(2*row+1)*t.w+col]
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			t.screen.SetContent(col, row, upperHalf, nil, style)
		}
	}
	t.screen.Show()
}

// Pixel returns the colour at pixel (x, y), or ColorDefault off-canvas.
func (t *Terminal) Pixel(x, y int) tcell.Color {
	if x < 0 || y < 0 || x >= t.w || y >= t.h {
		return tcell.ColorDefault
	}
	return t.px[y*t.w+x]
}

// stamp plots a point, or a disc when the stroke is wider than a pixel.
func (t *Terminal) stamp(x, y, half float64, c tcell.Color) {
	if half <= 0.5 {
		t.plot(int(math.Floor(x)), int(math.Floor(y)), c)
		return
	}
	t.disc(x, y, half, c)
}

// disc fills a circle; radii below a pixel still cover the pixel under the
// centre.
func (t *Terminal) disc(x, y, r float64, c tcell.Color) {
	r = math.Max(r, math.Sqrt2/2)
	t.span(x, y, r, func(d float64) bool { return d <= r }, c)
}

// span plots every pixel within radius of (x, y) whose centre distance
// satisfies in.
func (t *Terminal) span(x, y, radius float64, in func(d float64) bool, c tcell.Color) {
	minX, maxX := int(math.Floor(x-radius)), int(math.Ceil(x+radius))
	minY, maxY := int(math.Floor(y-radius)), int(math.Ceil(y+radius))
	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			d := math.Hypot(float64(px)+0.5-x, float64(py)+0.5-y)
			if in(d) {
				t.plot(px, py, c)
			}
		}
	}
}

func (t *Terminal) plot(x, y int, c tcell.Color) {
	if x < 0 || y < 0 || x >= t.w || y >= t.h {
		return
	}
	t.px[y*t.w+x] = c
}

// termColor converts any colour to a 24-bit tcell colour.
func termColor(c color.Color) tcell.Color {
	if c == nil {
		return tcell.ColorDefault
	}
	cf, _ := colorful.MakeColor(c)
	r, g, b := cf.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
