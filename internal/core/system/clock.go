package system

import "time"

// FixedStep converts variable frame time into a whole number of fixed
// simulation ticks, carrying the remainder. The remainder fraction is the
// presentation alpha used to blend previous and current poses.
type FixedStep struct {
	step     time.Duration
	maxSteps int
	acc      time.Duration
}

// NewFixedStep creates a clock. maxSteps caps catch-up after a stall; extra
// time beyond the cap is dropped.
func NewFixedStep(step time.Duration, maxSteps int) *FixedStep {
	if maxSteps <= 0 {
		maxSteps = 1
	}
	return &FixedStep{step: step, maxSteps: maxSteps}
}

func (c *FixedStep) Step() time.Duration { return c.step }

// Advance adds frame time and returns how many ticks to run.
func (c *FixedStep) Advance(frame time.Duration) int {
	c.acc += frame
	n := int(c.acc / c.step)
	if n > c.maxSteps {
		n = c.maxSteps
		c.acc = 0
		return n
	}
	c.acc -= time.Duration(n) * c.step
	return n
}

// Alpha is the fraction of a tick accumulated but not yet simulated, in [0,1).
func (c *FixedStep) Alpha() float64 {
	return float64(c.acc) / float64(c.step)
}
