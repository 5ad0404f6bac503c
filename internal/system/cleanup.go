package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/skyshot/armory/internal/core/ecs"
	coresys "github.com/skyshot/armory/internal/core/system"
)

// CleanupSystem flushes the deferred entity destruction queue at tick end,
// removing finished projectiles and expired shells from their stores.
// Phase 6 (Cleanup).
type CleanupSystem struct {
	world *ecs.World
	log   *zap.Logger
	total int
}

func NewCleanupSystem(world *ecs.World, log *zap.Logger) *CleanupSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &CleanupSystem{world: world, log: log}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	n := s.world.FlushDestroyQueue()
	if n == 0 {
		return
	}
	s.total += n
	s.log.Debug("entities destroyed", zap.Int("count", n), zap.Int("live", s.world.LiveEntities()))
}

// Destroyed returns how many entities have been flushed so far.
func (s *CleanupSystem) Destroyed() int { return s.total }
