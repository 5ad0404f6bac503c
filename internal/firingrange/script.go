package firingrange

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/skyshot/armory/internal/config"
	coresys "github.com/skyshot/armory/internal/core/system"
	"github.com/skyshot/armory/internal/feedback"
	"github.com/skyshot/armory/internal/input"
	"github.com/skyshot/armory/internal/player"
	"github.com/skyshot/armory/internal/vmath"
	"github.com/skyshot/armory/internal/weapon"
)

// Scripted actions beyond the controller names in package input.
const (
	ActionReload = "Reload" // refill the hand's weapon with its default round
	ActionClose  = "Close"  // flick a break action shut with Value torque, or close outright
	ActionPunch  = "Punch"  // jab the hand forward at Value m/s and pull it back
)

// punchStroke is how long each half of a punch lasts.
const punchStroke = 100 * time.Millisecond

type punch struct {
	hand    feedback.Hand
	speed   float64
	rest    vmath.Pose
	elapsed time.Duration
}

// Script replays timed inputs into the action queue, standing in for a
// controller during headless runs. Phase 1 (Input), registered ahead of the
// InputSystem so actions due this tick are handled this tick.
type Script struct {
	steps   []config.ScriptStep
	next    int
	elapsed time.Duration

	queue   *input.Queue
	player  *player.Player
	weapons map[feedback.Hand]*weapon.Weapon
	punches []punch
	log     *zap.Logger
}

// NewScript validates steps and orders them by time.
func NewScript(steps []config.ScriptStep, queue *input.Queue, p *player.Player, log *zap.Logger) (*Script, error) {
	if log == nil {
		log = zap.NewNop()
	}
	sorted := make([]config.ScriptStep, len(steps))
	copy(sorted, steps)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].At < sorted[j].At })
	for i, s := range sorted {
		if _, ok := feedback.ParseHand(s.Hand); !ok {
			return nil, fmt.Errorf("script step %d: unknown hand %q", i, s.Hand)
		}
		switch s.Action {
		case input.Trigger, input.Eject, input.Wing, ActionReload, ActionClose, ActionPunch:
		default:
			return nil, fmt.Errorf("script step %d: unknown action %q", i, s.Action)
		}
	}
	return &Script{
		steps:   sorted,
		queue:   queue,
		player:  p,
		weapons: make(map[feedback.Hand]*weapon.Weapon),
		log:     log,
	}, nil
}

// Bind makes w the target of Reload and Close in its hand.
func (s *Script) Bind(w *weapon.Weapon) { s.weapons[w.Hand()] = w }

func (s *Script) Phase() coresys.Phase { return coresys.PhaseInput }

// Done reports whether every step has run and no punch is in motion.
func (s *Script) Done() bool { return s.next >= len(s.steps) && len(s.punches) == 0 }

func (s *Script) Update(dt time.Duration) {
	for s.next < len(s.steps) && s.steps[s.next].At <= s.elapsed {
		s.apply(s.steps[s.next])
		s.next++
	}
	s.animate(dt)
	s.elapsed += dt
}

func (s *Script) apply(step config.ScriptStep) {
	hand, _ := feedback.ParseHand(step.Hand)
	s.log.Debug("script step",
		zap.Duration("at", step.At),
		zap.String("action", step.Action),
		zap.Stringer("hand", hand),
		zap.Float64("value", step.Value),
	)
	switch step.Action {
	case input.Trigger, input.Wing:
		s.queue.Push(input.Action{Hand: hand, Name: step.Action, Value: step.Value})
	case input.Eject:
		s.queue.Push(input.Action{Hand: hand, Name: input.Eject, Value: 1, Pressed: true})
	case ActionReload:
		if w := s.weapons[hand]; w != nil {
			w.FullyLoadDefault()
		}
	case ActionClose:
		w := s.weapons[hand]
		if w == nil {
			return
		}
		if b, ok := w.BreakAction(); ok && step.Value > 0 {
			b.ApplyHingeTorque(-step.Value)
			return
		}
		w.CloseBreach()
	case ActionPunch:
		if s.player != nil {
			s.punches = append(s.punches, punch{hand: hand, speed: step.Value, rest: s.player.HandPose(hand)})
		}
	}
}

// animate drives punching hands: out along the hand's forward axis for one
// stroke, then back to rest for another.
func (s *Script) animate(dt time.Duration) {
	n := 0
	for _, p := range s.punches {
		p.elapsed += dt
		reach := p.speed * p.elapsed.Seconds()
		if p.elapsed > punchStroke {
			reach = p.speed * (2*punchStroke - p.elapsed).Seconds()
		}
		pose := p.rest
		if p.elapsed >= 2*punchStroke {
			s.player.SetHandPose(p.hand, p.rest)
			continue
		}
		pose.Pos = pose.Pos.Add(p.rest.Forward().Mul(reach))
		s.player.SetHandPose(p.hand, pose)
		s.punches[n] = p
		n++
	}
	s.punches = s.punches[:n]
}
