package surface

import (
	"image/color"
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestTransformTranslateRotate(t *testing.T) {
	var tr Transform
	tr.Translate(10, 20)
	tr.Rotate(90)

	x, y := tr.Apply(1, 0)
	if !near(x, 10) || !near(y, 21) {
		t.Errorf("Apply(1,0) = (%v,%v), want (10,21)", x, y)
	}
}

func TestTransformSaveRestore(t *testing.T) {
	var tr Transform
	tr.Translate(5, 5)
	tr.Save()
	tr.Translate(100, 0)
	tr.Rotate(45)
	if tr.Depth() != 1 {
		t.Fatalf("Depth = %d, want 1", tr.Depth())
	}
	tr.Restore()

	x, y := tr.Apply(0, 0)
	if !near(x, 5) || !near(y, 5) {
		t.Errorf("after Restore Apply(0,0) = (%v,%v), want (5,5)", x, y)
	}
}

func TestTransformUnbalancedRestore(t *testing.T) {
	var tr Transform
	tr.Translate(3, 4)
	tr.Restore()
	if x, y := tr.Apply(0, 0); !near(x, 0) || !near(y, 0) {
		t.Errorf("Apply(0,0) = (%v,%v), want identity", x, y)
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(100, 200)
	if w, h := r.Size(); w != 100 || h != 200 {
		t.Fatalf("Size = %v,%v", w, h)
	}
	p := Paint{Color: color.White, StrokeWidth: 2, Cap: RoundCap}

	r.Clear(color.Black)
	r.Save()
	r.Translate(50, 50)
	r.DrawLine(-10, 0, 10, 0, p)
	r.DrawCircle(0, 0, 4, p)
	r.Restore()

	if r.Count(OpClear) != 1 || r.Count(OpLine) != 1 || r.Count(OpCircle) != 1 {
		t.Fatalf("ops = %+v", r.Ops)
	}
	line := r.Ops[1]
	if !near(line.X0, 40) || !near(line.X1, 60) || !near(line.Y0, 50) {
		t.Errorf("line = %+v, want 40..60 at y 50", line)
	}
	if c := r.Ops[2]; !near(c.X0, 50) || !near(c.Y0, 50) || c.R != 4 {
		t.Errorf("circle = %+v", c)
	}
}

// mockScreen records cells written through SetContent.
type mockScreen struct {
	tcell.Screen
	cols, rows int
	cells      map[[2]int]tcell.Style
	shows      int
}

func newMockScreen(cols, rows int) *mockScreen {
	return &mockScreen{cols: cols, rows: rows, cells: map[[2]int]tcell.Style{}}
}

func (m *mockScreen) Size() (int, int) { return m.cols, m.rows }
func (m *mockScreen) Show()            { m.shows++ }
func (m *mockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = style
}

func TestTerminalSizeDoublesRows(t *testing.T) {
	term := NewTerminal(newMockScreen(40, 10))
	if w, h := term.Size(); w != 40 || h != 20 {
		t.Errorf("Size = %v,%v, want 40,20", w, h)
	}
}

func TestTerminalDraw(t *testing.T) {
	screen := newMockScreen(20, 10)
	term := NewTerminal(screen)
	red := color.RGBA{R: 255, A: 255}
	bg := termColor(color.Black)

	term.Clear(color.Black)
	term.DrawLine(2, 5, 17, 5, Paint{Color: red, StrokeWidth: 1})
	term.DrawCircle(10, 14, 1, Paint{Color: red, Fill: true})

	want := tcell.NewRGBColor(255, 0, 0)
	for x := 2; x <= 16; x++ {
		if got := term.Pixel(x, 5); got != want {
			t.Fatalf("line pixel %d = %v, want red", x, got)
		}
	}
	if got := term.Pixel(10, 14); got != want {
		t.Errorf("disc centre = %v, want red", got)
	}
	if got := term.Pixel(0, 0); got != bg {
		t.Errorf("background = %v, want black", got)
	}
	if got := term.Pixel(-1, 0); got != tcell.ColorDefault {
		t.Errorf("off-canvas = %v, want default", got)
	}

	term.Flush()
	if screen.shows != 1 {
		t.Errorf("Show called %d times, want 1", screen.shows)
	}
	if len(screen.cells) != 20*10 {
		t.Errorf("wrote %d cells, want 200", len(screen.cells))
	}
	fg, bgc, _ := screen.cells[[2]int{5, 2}].Decompose()
	if bgc != want || fg != bg {
		t.Errorf("cell (5,2) fg %v bg %v, want black over red", fg, bgc)
	}
}

func TestTerminalStrokeCircle(t *testing.T) {
	term := NewTerminal(newMockScreen(30, 15))
	term.Clear(color.Black)
	term.DrawCircle(15, 15, 8, Paint{Color: color.White, StrokeWidth: 1})

	white := termColor(color.White)
	if term.Pixel(15, 15) == white {
		t.Error("stroked circle filled its centre")
	}
	if term.Pixel(22, 15) != white && term.Pixel(23, 15) != white {
		t.Error("stroked circle missing its right edge")
	}
}
