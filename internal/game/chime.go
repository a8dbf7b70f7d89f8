package game

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/circle-shifter-rot-line/internal/config"
)

// decay scales a streamer by gain and an exponential envelope that falls
// over n samples.
type decay struct {
	s    beep.Streamer
	gain float64
	pos  int
	n    int
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.s.Stream(samples)
	for i := range samples[:n] {
		env := d.gain * math.Exp(-6*float64(d.pos)/float64(d.n))
		samples[i][0] *= env
		samples[i][1] *= env
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.s.Err() }

// newChime returns a decaying sine tone that ends after length.
func newChime(rate beep.SampleRate, freq float64, length time.Duration, gain float64) (beep.Streamer, error) {
	tone, err := generators.SinTone(rate, int(math.Round(freq)))
	if err != nil {
		return nil, fmt.Errorf("chime tone: %w", err)
	}
	n := rate.N(length)
	return beep.Take(n, &decay{s: tone, gain: gain, n: n}), nil
}

// chimes plays a tone for every renderer event. When the speaker cannot be
// opened it stays silent.
type chimes struct {
	logger  *log.Logger
	rate    beep.SampleRate
	length  time.Duration
	gain    float64
	base    float64
	enabled bool
}

func newChimes(logger *log.Logger, enabled bool) *chimes {
	c := &chimes{
		logger: logger,
		rate:   beep.SampleRate(config.SampleRate),
		length: config.ChimeLen,
		gain:   config.ChimeGain,
		base:   config.ChimeFreq,
	}
	if !enabled {
		return c
	}
	if err := speaker.Init(c.rate, c.rate.N(time.Second/20)); err != nil {
		// Non-fatal, the widget works without sound
		logger.Warn("audio disabled", "err", err)
		return c
	}
	c.enabled = true
	return c
}

// freq picks the tone for an event: a base note on tap, a fifth up when the
// cursor advances and a fourth down when it bounces.
func (c *chimes) freq(ev Event) float64 {
	switch ev.Kind {
	case Advanced:
		return c.base * 1.5
	case Reversed:
		return c.base * 0.75
	}
	return c.base
}

func (c *chimes) play(ev Event) {
	if !c.enabled {
		return
	}
	s, err := newChime(c.rate, c.freq(ev), c.length, c.gain)
	if err != nil {
		c.logger.Warn("chime", "err", err)
		return
	}
	speaker.Play(s)
}
