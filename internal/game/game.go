package game

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/circle-shifter-rot-line/internal/config"
	"github.com/iburimskiy/circle-shifter-rot-line/internal/surface"
)

// Game is the window host: an ebiten.Game driving a Renderer.
type Game struct {
	ctx      context.Context
	cfg      config.Config
	logger   *log.Logger
	renderer *Renderer
	canvas   *surface.Ebiten
	chimes   *chimes

	// input edge detection
	prevKey map[ebiten.Key]bool

	snapshotPath string
	lastErr      error
}

// NewGame builds the window host. Cancelling ctx ends the game on its next
// update.
func NewGame(ctx context.Context, cfg config.Config, logger *log.Logger) (*Game, error) {
	r, err := NewRenderer(cfg)
	if err != nil {
		return nil, err
	}
	g := &Game{
		ctx:      ctx,
		cfg:      cfg,
		logger:   logger,
		renderer: r,
		canvas:   surface.NewEbiten(nil, true),
		chimes:   newChimes(logger, cfg.Sound),
		prevKey:  map[ebiten.Key]bool{},
	}
	r.OnEvent(LogEvents(logger))
	r.OnEvent(g.chimes.play)
	return g, nil
}

// LogEvents returns a listener that logs renderer events at debug level.
func LogEvents(logger *log.Logger) func(Event) {
	return func(ev Event) {
		logger.Debug("chain "+ev.Kind.String(), "node", ev.Node, "current", ev.Index, "dir", ev.Dir, "scale", ev.Scale)
	}
}

// Renderer returns the renderer the game drives.
func (g *Game) Renderer() *Renderer { return g.renderer }

func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	tapped := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
	if justPressed(ebiten.KeySpace) || tapped {
		g.renderer.OnTap()
	}
	if justPressed(ebiten.KeyR) {
		g.renderer.Reset()
		g.logger.Debug("chain reset")
	}
	if justPressed(ebiten.KeyS) {
		path, err := chooseSnapshotPath()
		if err != nil {
			g.lastErr = err
			g.logger.Error("snapshot dialog", "err", err)
		}
		g.snapshotPath = path
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.renderer.Advance(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Target(screen)
	g.renderer.Render(g.canvas)

	if g.snapshotPath != "" {
		path := g.snapshotPath
		g.snapshotPath = ""
		if err := writePNG(path, captureScreen(screen)); err != nil {
			g.lastErr = err
			g.logger.Error("snapshot", "err", err)
		} else {
			g.logger.Info("snapshot saved", "path", path)
		}
	}

	if g.cfg.Debug {
		status := formatStatus(g.renderer.Chain(), g.renderer.Driver().Running(), ebiten.ActualFPS())
		if g.lastErr != nil {
			status += "\nError: " + g.lastErr.Error()
		}
		ebitenutil.DebugPrintAt(screen, status, 8, 8)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
