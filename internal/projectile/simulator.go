package projectile

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skyshot/armory/internal/core/ecs"
	"github.com/skyshot/armory/internal/core/event"
	"github.com/skyshot/armory/internal/feedback"
	"github.com/skyshot/armory/internal/physics"
	"github.com/skyshot/armory/internal/vmath"
)

// Launch holds the spawn parameters of one projectile.
type Launch struct {
	Origin      mgl64.Vec3
	Velocity    mgl64.Vec3
	MaxDistance float64
	Lifetime    float64
	HitDamage   float64
	HitKick     float64
	Radius      float64
	BarrelGap   float64
	Ignore      physics.LayerMask
	Volley      uuid.UUID
	Source      string
}

// Simulator owns every live projectile until it terminates.
type Simulator struct {
	world   *ecs.World
	query   physics.Query
	effects feedback.Effects
	bus     *event.Bus
	log     *zap.Logger

	store *ecs.Store[Projectile]
	live  []*Projectile

	hits, burnouts int
}

// NewSimulator creates a simulator registered with world. effects and bus may be nil.
func NewSimulator(world *ecs.World, query physics.Query, effects feedback.Effects, bus *event.Bus, log *zap.Logger) *Simulator {
	if log == nil {
		log = zap.NewNop()
	}
	if effects == nil {
		effects = feedback.Nop{}
	}
	s := &Simulator{
		world:   world,
		query:   query,
		effects: effects,
		bus:     bus,
		log:     log,
		store:   ecs.NewStore[Projectile](),
		live:    make([]*Projectile, 0, 64),
	}
	world.Register(s.store)
	return s
}

// Spawn creates a projectile. A nonzero barrel gap advances it once along
// its launch direction with its own ray check; a hit there resolves at once.
func (s *Simulator) Spawn(l Launch) *Projectile {
	p := &Projectile{
		ID:           s.world.CreateEntity(),
		Volley:       l.Volley,
		Source:       l.Source,
		Pos:          l.Origin,
		Velocity:     l.Velocity,
		CurrentSpeed: l.Velocity.Len(),
		MaxDistance:  l.MaxDistance,
		Lifetime:     l.Lifetime,
		HitDamage:    l.HitDamage,
		HitKick:      l.HitKick,
		Radius:       l.Radius,
		Ignore:       l.Ignore,
		Rot:          mgl64.QuatIdent(),
	}
	p.orient()
	s.store.Set(p.ID, p)
	s.live = append(s.live, p)

	if l.BarrelGap > 0 {
		dir := vmath.Normalize(l.Velocity)
		if dir != (mgl64.Vec3{}) {
			target := p.Pos.Add(dir.Mul(l.BarrelGap))
			if hit, ok := s.query.Raycast(p.Pos, target, p.Ignore); ok {
				s.resolveHit(p, hit)
			} else {
				p.Pos = target
				p.TotalTravel += l.BarrelGap
			}
		}
	}
	p.PrevPos, p.PrevRot = p.Pos, p.Rot
	return p
}

// Step advances every live projectile by dt seconds in spawn order.
func (s *Simulator) Step(dt float64) {
	if dt <= 0 {
		return
	}
	n := 0
	for _, p := range s.live {
		if p.outcome == Flying {
			s.advance(p, dt)
		}
		if p.outcome == Flying {
			s.live[n] = p
			n++
		}
	}
	for i := n; i < len(s.live); i++ {
		s.live[i] = nil
	}
	s.live = s.live[:n]
}

func (s *Simulator) advance(p *Projectile, dt float64) {
	p.start()
	for _, m := range p.modifiers {
		m.OnTick(p, dt)
	}
	p.PrevPos, p.PrevRot = p.Pos, p.Rot

	target := p.Pos.Add(p.Velocity.Mul(dt))
	travel := target.Sub(p.Pos).Len()
	p.CurrentSpeed = travel / dt
	p.TotalTravel += travel

	exhausted := false
	if p.MaxDistance > 0 && p.TotalTravel >= p.MaxDistance {
		back := p.TotalTravel - p.MaxDistance
		travel -= back
		if travel < 0 {
			travel = 0
		}
		target = vmath.MoveTowards(target, p.Pos, back)
		p.TotalTravel = p.MaxDistance
		exhausted = true
	}

	if hit, ok := s.sweep(p, target, travel); ok {
		s.resolveHit(p, hit)
		return
	}

	p.Pos = target
	p.orient()
	if exhausted {
		s.burnout(p)
		return
	}
	p.TimeAlive += dt
	if p.Lifetime > 0 && p.TimeAlive > p.Lifetime {
		s.burnout(p)
	}
}

// sweep runs the ray test, then the radius test with level geometry excluded.
func (s *Simulator) sweep(p *Projectile, target mgl64.Vec3, travel float64) (physics.Hit, bool) {
	if travel > 0 {
		if hit, ok := s.query.Raycast(p.Pos, target, p.Ignore); ok {
			return hit, true
		}
	}
	if p.Radius > 0 {
		dist := travel - p.Radius
		dir := vmath.Normalize(p.Velocity)
		if dist > 0 && dir != (mgl64.Vec3{}) {
			exclude := p.Ignore.With(physics.LayerLevel)
			if hit, ok := s.query.SphereCast(p.Pos, p.Radius, dir, dist, exclude); ok {
				return hit, true
			}
		}
	}
	return physics.Hit{}, false
}

func (s *Simulator) resolveHit(p *Projectile, hit physics.Hit) {
	if p.outcome != Flying {
		return
	}
	p.outcome = Hit
	p.impact = hit
	p.Pos = hit.Point

	target := ""
	if sh, ok := hit.Entity.(Shootable); ok {
		sh.IsHit(p)
	}
	if named, ok := hit.Entity.(interface{ Name() string }); ok {
		target = named.Name()
	}
	s.effects.SpawnHitEffect(hit.Point, hit.Normal)
	p.notify(EventHit)
	s.hits++

	event.Emit(s.bus, event.ProjectileHit{
		Projectile: p.ID,
		Volley:     p.Volley,
		Source:     p.Source,
		Point:      hit.Point,
		Normal:     hit.Normal,
		Target:     target,
		Damage:     p.HitDamage,
		Kick:       p.HitKick,
		Travel:     p.TotalTravel,
		TimeAlive:  p.TimeAlive,
	})
	s.world.MarkForDestruction(p.ID)
	s.log.Debug("projectile hit",
		zap.Stringer("id", p.ID),
		zap.String("layer", hit.Layer.String()),
		zap.Float64("travel", p.TotalTravel),
	)
}

func (s *Simulator) burnout(p *Projectile) {
	if p.outcome != Flying {
		return
	}
	p.outcome = BurnedOut
	p.notify(EventBurnout)
	s.burnouts++

	event.Emit(s.bus, event.ProjectileBurnedOut{
		Projectile: p.ID,
		Volley:     p.Volley,
		Source:     p.Source,
		Point:      p.Pos,
		Travel:     p.TotalTravel,
		TimeAlive:  p.TimeAlive,
	})
	s.world.MarkForDestruction(p.ID)
}

// Live returns the projectiles still in flight, in spawn order.
func (s *Simulator) Live() []*Projectile { return s.live }

// Get looks up a projectile that has not yet been cleaned up.
func (s *Simulator) Get(id ecs.EntityID) (*Projectile, bool) { return s.store.Get(id) }

// Stats returns lifetime hit and burnout counts.
func (s *Simulator) Stats() (hits, burnouts int) { return s.hits, s.burnouts }
