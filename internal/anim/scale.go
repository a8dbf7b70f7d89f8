package anim

import "math"

const (
	// DefaultGap is the largest scale increment applied in a single frame.
	DefaultGap = 0.05
	// DefaultDiv selects the mirror half: values below it use a, above it b.
	DefaultDiv = 0.51
)

// Updater computes per-frame scale increments.
type Updater struct {
	Gap float64
	Div float64
}

// DefaultUpdater uses the widget's stock step gap and divisor.
var DefaultUpdater = Updater{Gap: DefaultGap, Div: DefaultDiv}

// Inverse returns 1/n.
func Inverse(n int) float64 {
	return 1.0 / float64(n)
}

// MaxScale clamps the part of value that lies below segment i of n to zero.
func MaxScale(value float64, i, n int) float64 {
	return math.Max(0, value-float64(i)*Inverse(n))
}

// DivideScale normalizes the progress of segment i of n to [0,1].
func DivideScale(value float64, i, n int) float64 {
	return math.Min(Inverse(n), MaxScale(value, i, n)) * float64(n)
}

// ScaleFactor is 0 for the first half of a transition and 1 for the second.
func (u Updater) ScaleFactor(value float64) float64 {
	return math.Floor(value / u.Div)
}

// MirrorValue blends 1/a and 1/b depending on which half value is in.
func (u Updater) MirrorValue(value float64, a, b int) float64 {
	k := u.ScaleFactor(value)
	return (1-k)*Inverse(a) + k*Inverse(b)
}

// UpdateValue is the increment applied to a scale moving in direction dir.
func (u Updater) UpdateValue(value, dir float64, a, b int) float64 {
	return u.MirrorValue(value, a, b) * dir * u.Gap
}

// ScaleFactor calls DefaultUpdater.ScaleFactor.
func ScaleFactor(value float64) float64 { return DefaultUpdater.ScaleFactor(value) }

// MirrorValue calls DefaultUpdater.MirrorValue.
func MirrorValue(value float64, a, b int) float64 { return DefaultUpdater.MirrorValue(value, a, b) }

// UpdateValue calls DefaultUpdater.UpdateValue.
func UpdateValue(value, dir float64, a, b int) float64 {
	return DefaultUpdater.UpdateValue(value, dir, a, b)
}
