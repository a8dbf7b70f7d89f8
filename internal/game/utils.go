package game

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tanema/gween/ease"

	"github.com/iburimskiy/circle-shifter-rot-line/internal/anim"
)

// rgba converts a parsed colour to an opaque color.RGBA.
func rgba(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// eased runs progress in [0,1] through a gween easing function.
func eased(fn ease.TweenFunc, v float64) float64 {
	return float64(fn(float32(clamp01(v)), 0, 1, 1))
}

// formatStatus renders the one-line debug overlay.
func formatStatus(c *anim.Chain, running bool, fps float64) string {
	n := c.Node(c.Current())
	state := "idle"
	if running {
		state = "running"
	}
	return fmt.Sprintf("node %d/%d  dir %+d  scale %.3f  %s  %.0f fps",
		c.Current()+1, c.Len(), c.Dir(), n.State.Scale, state, fps)
}
