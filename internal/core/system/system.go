package system

import "time"

// Phase orders systems within one simulation tick.
type Phase int

const (
	PhaseDispatch   Phase = iota // deliver last tick's events, ahead of every emitter
	PhaseInput                   // drain controller actions
	PhaseUpdate                  // game logic between input and simulation
	PhaseSimulate                // projectiles, shells, rigid bodies
	PhasePostUpdate              // weapons: hand tracking, recoil, hinges, modifiers
	PhasePersist                 // journal flush
	PhaseCleanup                 // destroy queued entities
)

var phaseNames = [...]string{"dispatch", "input", "update", "simulate", "post-update", "persist", "cleanup"}

func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// System is one unit of per-tick work.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
