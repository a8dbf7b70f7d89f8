package anim

import "fmt"

const (
	// DefaultNodes is the number of nodes in a chain.
	DefaultNodes = 5
	// DefaultCircles is the number of circles drawn per node.
	DefaultCircles = 4
)

// Node is one element of a Chain.
type Node struct {
	Index int
	State State
}

// Step is the kind of change a Chain.Update made.
type Step int

const (
	NoChange Step = iota
	// Advanced means the current node settled and the cursor moved on.
	Advanced
	// Reversed means the current node settled at the end of the chain and
	// the direction of travel flipped instead.
	Reversed
)

func (s Step) String() string {
	switch s {
	case NoChange:
		return "no-change"
	case Advanced:
		return "advanced"
	case Reversed:
		return "reversed"
	}
	return "unknown"
}

// ChainResult is returned by Chain.Update. Index is the current node after
// the update, Node the node that settled, Scale its settle point.
type ChainResult struct {
	Step  Step
	Node  int
	Index int
	Dir   int
	Scale float64
}

// Chain is a fixed-length sequence of nodes with a cursor. Only the node
// under the cursor animates; when it settles the cursor moves one node in
// the current direction, bouncing off either end.
type Chain struct {
	nodes   []Node
	updater Updater
	circles int
	current int
	dir     int
}

// NewChain creates a chain of n nodes with the cursor on node 0 moving
// forward.
func NewChain(n, circles int, u Updater) (*Chain, error) {
	if n < 1 {
		return nil, fmt.Errorf("chain needs at least one node, got %d", n)
	}
	if circles < 1 {
		return nil, fmt.Errorf("chain needs at least one circle per node, got %d", circles)
	}
	c := &Chain{
		nodes:   make([]Node, n),
		updater: u,
		circles: circles,
		dir:     1,
	}
	for i := range c.nodes {
		c.nodes[i].Index = i
	}
	return c, nil
}

// Len returns the number of nodes.
func (c *Chain) Len() int { return len(c.nodes) }

// Circles returns the number of circles per node.
func (c *Chain) Circles() int { return c.circles }

// Current returns the index of the node under the cursor.
func (c *Chain) Current() int { return c.current }

// Dir returns the direction of travel, +1 or -1.
func (c *Chain) Dir() int { return c.dir }

// Node returns a copy of node i.
func (c *Chain) Node(i int) Node { return c.nodes[i] }

// Draw calls fn for every node in order.
func (c *Chain) Draw(fn func(n Node)) {
	for _, n := range c.nodes {
		fn(n)
	}
}

// neighbor returns the index next to i in direction dir and whether it
// exists.
func (c *Chain) neighbor(i, dir int) (int, bool) {
	j := i + dir
	if j < 0 || j >= len(c.nodes) {
		return i, false
	}
	return j, true
}

// Update advances the current node by one frame.
func (c *Chain) Update() ChainResult {
	curr := c.current
	r := c.nodes[curr].State.Update(c.updater, c.circles)
	res := ChainResult{Step: NoChange, Node: curr, Index: curr, Dir: c.dir, Scale: r.Scale}
	if r.Outcome != Completed {
		return res
	}
	if next, ok := c.neighbor(curr, c.dir); ok {
		c.current = next
		res.Step = Advanced
	} else {
		c.dir = -c.dir
		res.Step = Reversed
	}
	res.Index = c.current
	res.Dir = c.dir
	return res
}

// StartUpdating starts a transition on the current node. It reports false
// if one is already running.
func (c *Chain) StartUpdating() bool {
	return c.nodes[c.current].State.StartUpdating()
}

// Animating reports whether the current node is mid-transition.
func (c *Chain) Animating() bool {
	return c.nodes[c.current].State.Animating()
}

// Reset returns every node to rest at scale 0 and the cursor to node 0.
func (c *Chain) Reset() {
	for i := range c.nodes {
		c.nodes[i].State = State{}
	}
	c.current = 0
	c.dir = 1
}
