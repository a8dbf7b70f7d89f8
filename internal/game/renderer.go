package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/tanema/gween/ease"

	"github.com/iburimskiy/circle-shifter-rot-line/internal/anim"
	"github.com/iburimskiy/circle-shifter-rot-line/internal/config"
	"github.com/iburimskiy/circle-shifter-rot-line/internal/surface"
)

// EventKind is what happened to the chain.
type EventKind int

const (
	// Started means a tap began a transition.
	Started EventKind = iota
	// Advanced means a node settled and the cursor moved on.
	Advanced
	// Reversed means a node settled at an end and the direction flipped.
	Reversed
)

func (k EventKind) String() string {
	switch k {
	case Started:
		return "started"
	case Advanced:
		return "advanced"
	case Reversed:
		return "reversed"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is emitted to listeners on taps and settles. Node is the node the
// event concerns, Index the cursor afterwards.
type Event struct {
	Kind  EventKind
	Node  int
	Index int
	Dir   int
	Scale float64
}

// Renderer composes the chain, the driver and the drawing style. It holds
// no host state: hosts call OnTap on input, Advance once per host frame and
// Render whenever they draw.
type Renderer struct {
	chain  *anim.Chain
	driver *anim.Driver

	fore, back   color.Color
	easeFn       ease.TweenFunc
	strokeFactor float64
	sizeFactor   float64

	listeners []func(Event)
}

// NewRenderer builds a renderer from a validated config.
func NewRenderer(cfg config.Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	chain, err := anim.NewChain(cfg.Nodes, cfg.Circles, anim.Updater{Gap: cfg.StepGap, Div: cfg.ScaleDiv})
	if err != nil {
		return nil, fmt.Errorf("new chain: %w", err)
	}
	return &Renderer{
		chain:        chain,
		driver:       anim.NewDriver(cfg.Interval.Duration),
		fore:         rgba(cfg.Fore()),
		back:         rgba(cfg.Back()),
		easeFn:       cfg.EaseFunc(),
		strokeFactor: cfg.StrokeFactor,
		sizeFactor:   cfg.SizeFactor,
	}, nil
}

// Chain returns the animated chain.
func (r *Renderer) Chain() *anim.Chain { return r.chain }

// Driver returns the frame driver.
func (r *Renderer) Driver() *anim.Driver { return r.driver }

// OnEvent registers fn to be called for every event.
func (r *Renderer) OnEvent(fn func(Event)) {
	r.listeners = append(r.listeners, fn)
}

func (r *Renderer) emit(ev Event) {
	for _, fn := range r.listeners {
		fn(ev)
	}
}

// OnTap starts a transition on the current node and the driver with it.
// Taps during a transition are ignored and report false.
func (r *Renderer) OnTap() bool {
	if !r.chain.StartUpdating() {
		return false
	}
	r.driver.Start()
	cur := r.chain.Current()
	r.emit(Event{
		Kind:  Started,
		Node:  cur,
		Index: cur,
		Dir:   r.chain.Dir(),
		Scale: r.chain.Node(cur).State.Scale,
	})
	return true
}

// Advance hands dt of host time to the driver. Each animation frame
// updates the chain; the driver stops when a node settles. It returns the
// number of animation frames run.
func (r *Renderer) Advance(dt time.Duration) int {
	return r.driver.Tick(dt, r.frame)
}

func (r *Renderer) frame() bool {
	res := r.chain.Update()
	var kind EventKind
	switch res.Step {
	case anim.Advanced:
		kind = Advanced
	case anim.Reversed:
		kind = Reversed
	default:
		return false
	}
	r.emit(Event{Kind: kind, Node: res.Node, Index: res.Index, Dir: res.Dir, Scale: res.Scale})
	return true
}

// Reset puts every node back at rest and stops the driver.
func (r *Renderer) Reset() {
	r.driver.Stop()
	r.chain.Reset()
}

// Render clears the canvas and draws every node.
func (r *Renderer) Render(c surface.Canvas) {
	c.Clear(r.back)
	w, h := c.Size()
	r.chain.Draw(func(n anim.Node) {
		r.drawNode(c, n, w, h)
	})
}
