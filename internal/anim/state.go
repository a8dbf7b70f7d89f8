package anim

import "math"

// Outcome describes what a single Update did to a State.
type Outcome int

const (
	// Idle means the state was not transitioning and nothing changed.
	Idle Outcome = iota
	// Stepped means the scale moved but the transition is still running.
	Stepped
	// Completed means the transition settled on this update.
	Completed
)

func (o Outcome) String() string {
	switch o {
	case Idle:
		return "idle"
	case Stepped:
		return "stepped"
	case Completed:
		return "completed"
	}
	return "unknown"
}

// Result is returned by State.Update. Scale is the settle point when
// Outcome is Completed and the current scale otherwise.
type Result struct {
	Outcome Outcome
	Scale   float64
}

// State is the scale of a single node. Dir is 0 while idle and ±1 while
// a transition is running; PrevScale is the last settle point.
type State struct {
	Scale     float64
	PrevScale float64
	Dir       float64
}

// Update advances the scale by one frame. A transition completes once the
// scale has moved more than a full unit away from the last settle point;
// the scale then snaps to PrevScale+Dir and the state goes idle.
func (s *State) Update(u Updater, circles int) Result {
	if s.Dir == 0 {
		return Result{Outcome: Idle, Scale: s.Scale}
	}
	s.Scale += u.UpdateValue(s.Scale, s.Dir, circles, circles)
	if math.Abs(s.Scale-s.PrevScale) > 1 {
		s.Scale = s.PrevScale + s.Dir
		s.Dir = 0
		s.PrevScale = s.Scale
		return Result{Outcome: Completed, Scale: s.PrevScale}
	}
	return Result{Outcome: Stepped, Scale: s.Scale}
}

// StartUpdating begins a transition away from the current settle point.
// It reports false and does nothing if a transition is already running.
func (s *State) StartUpdating() bool {
	if s.Dir != 0 {
		return false
	}
	s.Dir = 1 - 2*s.PrevScale
	return true
}

// Animating reports whether a transition is in progress.
func (s *State) Animating() bool {
	return s.Dir != 0
}
