package ammo

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/skyshot/armory/internal/core/ecs"
	"github.com/skyshot/armory/internal/core/event"
	"github.com/skyshot/armory/internal/physics"
	"github.com/skyshot/armory/internal/vmath"
)

// Factory creates rounds as entities with shell bodies and owns the
// countdown of ejected shells.
type Factory struct {
	ecs    *ecs.World
	world  physics.World
	bus    *event.Bus
	log    *zap.Logger
	store  *ecs.Store[Round]
	shells *Shells
}

// NewFactory registers the round store with w. phys may be nil, in which
// case rounds have no bodies.
func NewFactory(w *ecs.World, phys physics.World, bus *event.Bus, log *zap.Logger) *Factory {
	if log == nil {
		log = zap.NewNop()
	}
	f := &Factory{
		ecs:   w,
		world: phys,
		bus:   bus,
		log:   log,
		store: ecs.NewStore[Round](),
	}
	f.shells = &Shells{factory: f}
	w.Register(f.store)
	return f
}

// New creates a loose round with a body at pose.
func (f *Factory) New(p *Profile, pose vmath.Pose) *Round {
	r := &Round{
		ID:      f.ecs.CreateEntity(),
		profile: p,
		chamber: -1,
		factory: f,
	}
	if f.world != nil {
		r.Body = f.world.CreateBody(physics.BodySpec{
			Pose:   pose,
			Mass:   p.Mass,
			Radius: p.ShellRadius,
			Layer:  physics.LayerShell,
			Entity: r,
		})
	}
	f.store.Set(r.ID, r)
	return r
}

// Template creates a bodiless round used only as a clone source.
func (f *Factory) Template(p *Profile) *Round {
	return &Round{profile: p, chamber: -1, factory: f}
}

// Get looks up a live round by entity.
func (f *Factory) Get(id ecs.EntityID) (*Round, bool) { return f.store.Get(id) }

func (f *Factory) Shells() *Shells { return f.shells }

func (f *Factory) remove(r *Round) {
	if r.state == Removed {
		return
	}
	r.state = Removed
	if r.Body != 0 && f.world != nil {
		f.world.RemoveBody(r.Body)
		r.Body = 0
	}
	if !r.ID.IsZero() {
		f.ecs.MarkForDestruction(r.ID)
	}
}

// Shells ages ejected rounds.
type Shells struct {
	factory *Factory
	live    []*Round
}

func (s *Shells) track(r *Round) { s.live = append(s.live, r) }

func (s *Shells) Len() int { return len(s.live) }

// Tick applies shell gravity to every ejected round and removes the ones
// whose lifetime has elapsed. It returns how many expired.
func (s *Shells) Tick(dt float64) int {
	f := s.factory
	g := f.gravity()
	n, expired := 0, 0
	for _, r := range s.live {
		if r.state != Ejected {
			continue
		}
		if r.Body != 0 && f.world != nil {
			f.world.AddAcceleration(r.Body, g.Mul(r.profile.ShellGravity))
		}
		r.ejected += dt
		if r.ejected >= r.profile.EjectedLifetime {
			f.remove(r)
			event.Emit(f.bus, event.ShellExpired{Round: r.ID})
			expired++
			continue
		}
		s.live[n] = r
		n++
	}
	for i := n; i < len(s.live); i++ {
		s.live[i] = nil
	}
	s.live = s.live[:n]
	if expired > 0 {
		f.log.Debug("shells expired", zap.Int("count", expired), zap.Int("remaining", n))
	}
	return expired
}

func (f *Factory) gravity() mgl64.Vec3 {
	if f.world == nil {
		return mgl64.Vec3{}
	}
	return f.world.Gravity()
}
