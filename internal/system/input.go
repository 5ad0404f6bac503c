package system

import (
	"time"

	"go.uber.org/zap"

	coresys "github.com/skyshot/armory/internal/core/system"
	"github.com/skyshot/armory/internal/input"
	"github.com/skyshot/armory/internal/player"
)

// InputSystem drains the action queue and routes every action to the
// registered handlers. Wing samples also update the player's wing axes.
// Phase 1 (Input).
type InputSystem struct {
	queue    *input.Queue
	player   *player.Player
	handlers []input.Handler
	log      *zap.Logger
}

func NewInputSystem(queue *input.Queue, p *player.Player, log *zap.Logger, handlers ...input.Handler) *InputSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &InputSystem{queue: queue, player: p, handlers: handlers, log: log}
}

func (s *InputSystem) Phase() coresys.Phase { return coresys.PhaseInput }

// AddHandler registers another action consumer.
func (s *InputSystem) AddHandler(h input.Handler) {
	s.handlers = append(s.handlers, h)
}

func (s *InputSystem) Update(_ time.Duration) {
	s.queue.Drain(func(a input.Action) {
		if a.Name == input.Wing && s.player != nil {
			s.player.SetWing(a.Hand, a.Value)
		}
		for _, h := range s.handlers {
			h.HandleAction(a)
		}
		s.log.Debug("action",
			zap.String("name", a.Name),
			zap.Stringer("hand", a.Hand),
			zap.Float64("value", a.Value),
			zap.Bool("pressed", a.Pressed),
		)
	})
}
