// Package term runs the chain in a terminal. Pixels are half-block cells,
// so a standard 80x24 terminal gives an 80x48 canvas.
package term

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/circle-shifter-rot-line/internal/game"
	"github.com/iburimskiy/circle-shifter-rot-line/internal/surface"
)

// Host drives a Renderer on a tcell screen.
type Host struct {
	screen   tcell.Screen
	canvas   *surface.Terminal
	renderer *game.Renderer
	logger   *log.Logger

	mouseDown bool
}

// New creates a host on an initialised screen. The caller owns the screen
// and is responsible for Fini.
func New(screen tcell.Screen, r *game.Renderer, logger *log.Logger) *Host {
	return &Host{
		screen:   screen,
		canvas:   surface.NewTerminal(screen),
		renderer: r,
		logger:   logger,
	}
}

// Run redraws on every driver interval until ctx is cancelled or the user
// quits.
func (h *Host) Run(ctx context.Context) error {
	interval := h.renderer.Driver().Interval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	h.draw()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !h.handleEvent(ev) {
				return nil
			}
			h.draw()
		case now := <-ticker.C:
			h.renderer.Advance(now.Sub(last))
			last = now
			h.draw()
		}
	}
}

// handleEvent applies one input event and reports whether to keep running.
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			h.renderer.OnTap()
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				h.renderer.OnTap()
			case 'r':
				h.renderer.Reset()
				h.logger.Debug("chain reset")
			case 'q':
				return false
			}
		}
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !h.mouseDown {
			h.renderer.OnTap()
		}
		h.mouseDown = down
	case *tcell.EventResize:
		h.canvas.Resize()
		h.screen.Sync()
	}
	return true
}

func (h *Host) draw() {
	h.renderer.Render(h.canvas)
	h.canvas.Flush()
}
