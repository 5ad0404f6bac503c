package system

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skyshot/armory/internal/core/event"
	coresys "github.com/skyshot/armory/internal/core/system"
	"github.com/skyshot/armory/internal/persist"
)

//go:generate go tool mockgen -destination=./mocks/system_mock.go -package=mocks . JournalWriter

// JournalWriter persists journal batches. *persist.JournalRepo satisfies it.
type JournalWriter interface {
	WriteBatch(ctx context.Context, run uuid.UUID, b persist.Batch) error
}

// JournalSystem collects fired volleys and their impacts from the event bus
// and writes them every interval ticks. A failed write is logged and the
// batch dropped; the simulation never waits on a retry. Phase 5 (Persist).
type JournalSystem struct {
	writer   JournalWriter
	run      uuid.UUID
	log      *zap.Logger
	interval int

	batch     persist.Batch
	tick      uint64
	tickCount int
	written   int
	dropped   int
}

func NewJournalSystem(bus *event.Bus, writer JournalWriter, run uuid.UUID, log *zap.Logger, intervalTicks int) *JournalSystem {
	if log == nil {
		log = zap.NewNop()
	}
	if intervalTicks <= 0 {
		intervalTicks = 1
	}
	s := &JournalSystem{writer: writer, run: run, log: log, interval: intervalTicks}
	event.Subscribe(bus, s.onFired)
	event.Subscribe(bus, s.onHit)
	event.Subscribe(bus, s.onBurnout)
	return s
}

func (s *JournalSystem) Phase() coresys.Phase { return coresys.PhasePersist }

func (s *JournalSystem) Update(_ time.Duration) {
	s.tick++
	s.tickCount++
	if s.tickCount < s.interval {
		return
	}
	s.tickCount = 0
	s.flush()
}

// Flush writes whatever is pending immediately. Called on shutdown.
func (s *JournalSystem) Flush() {
	s.flush()
}

// Pending returns how many records wait for the next flush.
func (s *JournalSystem) Pending() int { return s.batch.Len() }

// Written and Dropped count records by flush outcome.
func (s *JournalSystem) Written() int { return s.written }
func (s *JournalSystem) Dropped() int { return s.dropped }

func (s *JournalSystem) flush() {
	n := s.batch.Len()
	if n == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.writer.WriteBatch(ctx, s.run, s.batch); err != nil {
		s.dropped += n
		s.log.Error("journal write failed, batch dropped",
			zap.Int("records", n),
			zap.Uint64("tick", s.tick),
			zap.Error(err),
		)
	} else {
		s.written += n
		s.log.Debug("journal flushed", zap.Int("shots", len(s.batch.Shots)), zap.Int("impacts", len(s.batch.Impacts)))
	}
	s.batch.Reset()
}

func (s *JournalSystem) onFired(e event.WeaponFired) {
	s.batch.Shots = append(s.batch.Shots, persist.ShotRecord{
		Volley:      e.Volley,
		Tick:        s.tick,
		Weapon:      e.Weapon,
		Round:       e.Round,
		Muzzle:      e.Muzzle,
		Projectiles: e.Projectiles,
		Origin:      e.Origin,
		Direction:   e.Direction,
	})
}

func (s *JournalSystem) onHit(e event.ProjectileHit) {
	s.batch.Impacts = append(s.batch.Impacts, persist.ImpactRecord{
		Volley:    e.Volley,
		Tick:      s.tick,
		Kind:      persist.ImpactHit,
		Source:    e.Source,
		Target:    e.Target,
		Point:     e.Point,
		Damage:    e.Damage,
		Travel:    e.Travel,
		TimeAlive: e.TimeAlive,
	})
}

func (s *JournalSystem) onBurnout(e event.ProjectileBurnedOut) {
	s.batch.Impacts = append(s.batch.Impacts, persist.ImpactRecord{
		Volley:    e.Volley,
		Tick:      s.tick,
		Kind:      persist.ImpactBurnout,
		Source:    e.Source,
		Point:     e.Point,
		Travel:    e.Travel,
		TimeAlive: e.TimeAlive,
	})
}
