package anim

import "time"

const (
	// DefaultInterval is the time between animation frames.
	DefaultInterval = 50 * time.Millisecond

	// maxCatchUp bounds the frames fired by one Tick after a long stall.
	maxCatchUp = 4
)

// Driver fires animation frames at a fixed interval while running. It does
// not own a clock: the host loop passes the elapsed time to Tick.
type Driver struct {
	interval time.Duration
	elapsed  time.Duration
	running  bool
}

// NewDriver returns an idle driver. A non-positive interval falls back to
// DefaultInterval.
func NewDriver(interval time.Duration) *Driver {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Driver{interval: interval}
}

// Interval returns the time between frames.
func (d *Driver) Interval() time.Duration { return d.interval }

// Running reports whether the driver is firing frames.
func (d *Driver) Running() bool { return d.running }

// Start moves the driver to running and reports whether it was idle. The
// first frame fires on the next Tick.
func (d *Driver) Start() bool {
	if d.running {
		return false
	}
	d.running = true
	d.elapsed = d.interval
	return true
}

// Stop moves the driver to idle.
func (d *Driver) Stop() {
	d.running = false
	d.elapsed = 0
}

// Tick adds dt to the elapsed time and calls onFrame once for every full
// interval that has passed. onFrame returns true to stop the driver. Tick
// returns the number of frames fired.
func (d *Driver) Tick(dt time.Duration, onFrame func() bool) int {
	if !d.running {
		return 0
	}
	d.elapsed += dt
	fired := 0
	for d.running && d.elapsed >= d.interval && fired < maxCatchUp {
		d.elapsed -= d.interval
		fired++
		if onFrame() {
			d.Stop()
		}
	}
	if d.elapsed > d.interval {
		d.elapsed = d.interval
	}
	return fired
}
