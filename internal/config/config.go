package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tanema/gween/ease"
)

const (
	WindowWidth  = 480
	WindowHeight = 800

	// Chain shape
	Nodes   = 5
	Circles = 4

	// Animation parameters
	StepGap       = 0.05
	ScaleDiv      = 0.51
	FrameInterval = 50 * time.Millisecond

	// Drawing parameters
	StrokeFactor = 90
	SizeFactor   = 2.8
	ForeColor    = "#311B92"
	BackColor    = "#BDBDBD"
	Easing       = "linear"

	// Chime
	SampleRate = 44100
	ChimeFreq  = 660
	ChimeLen   = 120 * time.Millisecond
	ChimeGain  = 0.25
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Easings maps the names accepted in config files to gween easing functions.
var Easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-out-cubic": ease.InOutCubic,
	"in-out-sine":  ease.InOutSine,
	"out-back":     ease.OutBack,
	"out-bounce":   ease.OutBounce,
	"out-elastic":  ease.OutElastic,
}

// Duration lets TOML files spell intervals as "50ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config is the full set of tunables. Zero values are not meaningful; start
// from Default.
type Config struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`

	Nodes    int      `toml:"nodes"`
	Circles  int      `toml:"circles"`
	StepGap  float64  `toml:"step_gap"`
	ScaleDiv float64  `toml:"scale_div"`
	Interval Duration `toml:"interval"`

	StrokeFactor float64 `toml:"stroke_factor"`
	SizeFactor   float64 `toml:"size_factor"`
	ForeColor    string  `toml:"fore_color"`
	BackColor    string  `toml:"back_color"`
	Easing       string  `toml:"easing"`

	Sound bool `toml:"sound"`
	Debug bool `toml:"debug"`
}

// Default returns the stock widget settings.
func Default() Config {
	return Config{
		Width:        WindowWidth,
		Height:       WindowHeight,
		Nodes:        Nodes,
		Circles:      Circles,
		StepGap:      StepGap,
		ScaleDiv:     ScaleDiv,
		Interval:     Duration{FrameInterval},
		StrokeFactor: StrokeFactor,
		SizeFactor:   SizeFactor,
		ForeColor:    ForeColor,
		BackColor:    BackColor,
		Easing:       Easing,
		Sound:        true,
	}
}

// Load reads a TOML file over the defaults. Keys the file sets replace the
// defaults; unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("load %s: %w: unknown key %q", path, ErrInvalid, undecoded[0].String())
	}
	return cfg, cfg.Validate()
}

// Validate checks that every field is usable.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.Nodes < 1:
		return fmt.Errorf("%w: nodes must be at least 1, got %d", ErrInvalid, c.Nodes)
	case c.Circles < 1:
		return fmt.Errorf("%w: circles must be at least 1, got %d", ErrInvalid, c.Circles)
	case c.StepGap <= 0 || c.StepGap > 1:
		return fmt.Errorf("%w: step_gap must be in (0,1], got %v", ErrInvalid, c.StepGap)
	case c.ScaleDiv <= 0.5:
		return fmt.Errorf("%w: scale_div must be above 0.5, got %v", ErrInvalid, c.ScaleDiv)
	case c.Interval.Duration <= 0:
		return fmt.Errorf("%w: interval must be positive, got %v", ErrInvalid, c.Interval)
	case c.StrokeFactor <= 0 || c.SizeFactor <= 0:
		return fmt.Errorf("%w: stroke_factor and size_factor must be positive", ErrInvalid)
	}
	if _, ok := Easings[c.Easing]; !ok {
		return fmt.Errorf("%w: unknown easing %q", ErrInvalid, c.Easing)
	}
	if _, err := colorful.Hex(c.ForeColor); err != nil {
		return fmt.Errorf("%w: fore_color %q: %v", ErrInvalid, c.ForeColor, err)
	}
	if _, err := colorful.Hex(c.BackColor); err != nil {
		return fmt.Errorf("%w: back_color %q: %v", ErrInvalid, c.BackColor, err)
	}
	return nil
}

// EaseFunc returns the configured easing, falling back to linear.
func (c Config) EaseFunc() ease.TweenFunc {
	if fn, ok := Easings[c.Easing]; ok {
		return fn
	}
	return ease.Linear
}

// Fore returns the parsed shape colour.
func (c Config) Fore() colorful.Color {
	col, _ := colorful.Hex(c.ForeColor)
	return col
}

// Back returns the parsed background colour.
func (c Config) Back() colorful.Color {
	col, _ := colorful.Hex(c.BackColor)
	return col
}
