package jump

import "github.com/tanema/gween/ease"

// Phase is the segment of the charge cycle currently running
type Phase int

const (
	PhaseRampUp Phase = iota
	PhaseRampDown
	PhaseHold
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseRampUp:
		return "RampUp"
	case PhaseRampDown:
		return "RampDown"
	case PhaseHold:
		return "Hold"
	default:
		return "Unknown"
	}
}

// Cycle is the charge state machine. It is advanced once per tick by its
// owner; cancelling simply clears the state.
//
// In ModeOscillate the level runs 0→1 over HoldTime, then 1→0 over HoldTime,
// forever. In ModeRestart it runs 0→1, stays at 1 for RestartDelay, then
// starts over. Time left over at a phase boundary carries into the next
// phase, so the level is exactly periodic.
type Cycle struct {
	holdTime     float64
	restartDelay float64
	mode         Mode
	easing       ease.TweenFunc

	active  bool
	phase   Phase
	elapsed float64 // time spent in the current phase
	held    float64 // total time since Start
}

// NewCycle creates an idle cycle with the timing from cfg
func NewCycle(cfg Config) Cycle {
	easing := cfg.Easing
	if easing == nil {
		easing = ease.Linear
	}
	return Cycle{
		holdTime:     cfg.HoldTime,
		restartDelay: cfg.RestartDelay,
		mode:         cfg.Mode,
		easing:       easing,
	}
}

// Start begins a new charge from the tap level, discarding any charge in progress
func (c *Cycle) Start() {
	c.active = true
	c.phase = PhaseRampUp
	c.elapsed = 0
	c.held = 0
}

// Cancel stops the cycle. It reports whether a charge was running;
// cancelling an idle cycle does nothing.
func (c *Cycle) Cancel() bool {
	if !c.active {
		return false
	}
	c.active = false
	c.phase = PhaseRampUp
	c.elapsed = 0
	c.held = 0
	return true
}

// Active reports whether a charge is running
func (c *Cycle) Active() bool {
	return c.active
}

// Phase returns the current phase
func (c *Cycle) Phase() Phase {
	return c.phase
}

// Held returns the total time since the charge started
func (c *Cycle) Held() float64 {
	return c.held
}

// Advance moves the cycle forward by dt seconds. Idle cycles ignore it.
func (c *Cycle) Advance(dt float64) {
	if !c.active || dt <= 0 {
		return
	}
	c.held += dt
	if c.holdTime <= 0 {
		return
	}
	c.elapsed += dt
	for c.elapsed >= c.phaseDuration() {
		c.elapsed -= c.phaseDuration()
		c.phase = c.next()
	}
}

// Level returns the charge level in [0,1]: 0 is a tap hop, 1 a full jump.
// An idle cycle is at level 0.
func (c *Cycle) Level() float64 {
	if !c.active {
		return 0
	}
	if c.holdTime <= 0 {
		return 1
	}
	d := float32(c.holdTime)
	t := float32(c.elapsed)
	switch c.phase {
	case PhaseRampUp:
		return clamp01(float64(c.easing(t, 0, 1, d)))
	case PhaseRampDown:
		return clamp01(float64(c.easing(t, 1, -1, d)))
	default:
		return 1
	}
}

func (c *Cycle) phaseDuration() float64 {
	if c.phase == PhaseHold {
		return max(c.restartDelay, 0)
	}
	return c.holdTime
}

func (c *Cycle) next() Phase {
	switch c.phase {
	case PhaseRampUp:
		if c.mode == ModeRestart {
			return PhaseHold
		}
		return PhaseRampDown
	default:
		return PhaseRampUp
	}
}
