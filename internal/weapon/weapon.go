// Package weapon implements the weapon state machine: trigger debounce,
// chamber bookkeeping, round-robin firing, breach sequencing, the recoil
// phase, and the break-action and melee variants layered on top.
package weapon

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skyshot/armory/internal/ammo"
	"github.com/skyshot/armory/internal/core/event"
	"github.com/skyshot/armory/internal/feedback"
	"github.com/skyshot/armory/internal/input"
	"github.com/skyshot/armory/internal/physics"
	"github.com/skyshot/armory/internal/player"
	"github.com/skyshot/armory/internal/projectile"
	"github.com/skyshot/armory/internal/vmath"
)

// Dry fire reasons.
const (
	ReasonEmpty      = "empty"
	ReasonBreachOpen = "breach_open"
	ReasonSpent      = "spent"
)

// Shot is what one trigger pull produced.
type Shot struct {
	Volley      uuid.UUID
	Round       *ammo.Round
	Muzzle      int
	Projectiles []*projectile.Projectile
}

// variant injects behavior at the points where weapon kinds differ.
type variant interface {
	acceptsTrigger() bool
	acceptsEject() bool
	onEject()
	onCloseBreach() bool // false vetoes the close
	afterFire(shot Shot, fired bool)
	tick(dt float64)
	frame() vmath.Pose // barrel frame relative to the weapon body
}

type standard struct{}

func (standard) acceptsTrigger() bool { return true }
func (standard) acceptsEject() bool   { return true }
func (standard) onEject()             {}
func (standard) onCloseBreach() bool  { return true }
func (standard) afterFire(Shot, bool) {}
func (standard) tick(float64)         {}
func (standard) frame() vmath.Pose    { return vmath.Identity() }

// Weapon is a firearm held in one hand.
type Weapon struct {
	cfg    Config
	body   physics.BodyID
	bodies physics.Bodies
	sim    Spawner
	player *player.Player
	fb     feedback.Set
	bus    *event.Bus
	rng    *rand.Rand
	log    *zap.Logger

	variant  variant
	disabled bool

	loaded        []*ammo.Round
	breachOpen    bool
	triggerPulled bool
	inputDisabled bool
	activeMuzzle  int
	defaultRound  *ammo.Round

	recoil recoilPhase
	pres   Presentation

	tracked   vmath.Pose // last pose set by Follow
	following bool

	modifiers []Modifier
	onSpawned []func(w *Weapon, shot Shot)
	shots     int
}

// New creates a standard weapon.
func New(cfg Config, deps Deps) *Weapon {
	w := build(cfg, deps)
	w.variant = standard{}
	return w
}

func build(cfg Config, deps Deps) *Weapon {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("weapon", cfg.Name))
	rng := deps.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	w := &Weapon{
		cfg:          cfg,
		body:         deps.Body,
		bodies:       deps.Bodies,
		sim:          deps.Sim,
		player:       deps.Player,
		fb:           deps.Feedback.WithDefaults(),
		bus:          deps.Bus,
		rng:          rng,
		log:          log,
		defaultRound: deps.DefaultRound,
		pres:         Presentation{Offset: cfg.BaseOffset, Scale: 1},
		onSpawned:    []func(*Weapon, Shot){func(*Weapon, Shot) {}},
	}
	switch {
	case deps.Body == 0 || deps.Bodies == nil:
		log.Warn("weapon has no physics body, disabled")
		w.disabled = true
	case deps.Sim == nil:
		log.Warn("weapon has no projectile simulator, disabled")
		w.disabled = true
	case len(cfg.Muzzles) == 0:
		log.Warn("weapon has no muzzles, disabled")
		w.disabled = true
	}
	if !w.disabled && cfg.Recoil.MaxAngularSpeed > 0 {
		w.bodies.SetMaxAngularSpeed(w.body, cfg.Recoil.MaxAngularSpeed)
	}
	return w
}

func (w *Weapon) Name() string              { return w.cfg.Name }
func (w *Weapon) Config() Config            { return w.cfg }
func (w *Weapon) Disabled() bool            { return w.disabled }
func (w *Weapon) Body() physics.BodyID      { return w.body }
func (w *Weapon) Hand() feedback.Hand       { return w.cfg.Hand }
func (w *Weapon) Operator() *player.Player  { return w.player }
func (w *Weapon) InfiniteAmmo() bool        { return w.cfg.InfiniteAmmo }
func (w *Weapon) Rand() *rand.Rand          { return w.rng }
func (w *Weapon) BreachOpen() bool          { return w.breachOpen }
func (w *Weapon) TriggerPulled() bool       { return w.triggerPulled }
func (w *Weapon) ActiveMuzzle() int         { return w.activeMuzzle }
func (w *Weapon) Capacity() int             { return len(w.cfg.Chambers) }
func (w *Weapon) LoadedCount() int          { return len(w.loaded) }
func (w *Weapon) Shots() int                { return w.shots }
func (w *Weapon) InputDisabled() bool       { return w.inputDisabled }
func (w *Weapon) SetInputDisabled(off bool) { w.inputDisabled = off }
func (w *Weapon) PlayCue(cue string)        { w.fb.PlayCue(cue) }

// Loaded returns the rounds in firing order. The slice must not be modified.
func (w *Weapon) Loaded() []*ammo.Round { return w.loaded }

// SetDefaultRound sets the template used by FullyLoadDefault.
func (w *Weapon) SetDefaultRound(r *ammo.Round) { w.defaultRound = r }

// Spawn launches one projectile through the simulator.
func (w *Weapon) Spawn(l projectile.Launch) *projectile.Projectile {
	return w.sim.Spawn(l)
}

// Pose is the weapon body's world pose.
func (w *Weapon) Pose() vmath.Pose {
	if w.bodies == nil || w.body == 0 {
		return vmath.Identity()
	}
	return w.bodies.Pose(w.body)
}

// MuzzlePose returns muzzle i in world space.
func (w *Weapon) MuzzlePose(i int) vmath.Pose {
	if i < 0 || i >= len(w.cfg.Muzzles) {
		return w.Pose()
	}
	return w.Pose().Mul(w.variant.frame()).Mul(w.cfg.Muzzles[i])
}

// ChamberPose returns chamber i in world space.
func (w *Weapon) ChamberPose(i int) vmath.Pose {
	if i < 0 || i >= len(w.cfg.Chambers) {
		return w.Pose()
	}
	return w.Pose().Mul(w.variant.frame()).Mul(w.cfg.Chambers[i].Local)
}

// HandleAction routes an input action. Everything is dropped while input
// is disabled.
func (w *Weapon) HandleAction(a input.Action) {
	if w.disabled || w.inputDisabled || a.Hand != w.cfg.Hand {
		return
	}
	switch a.Name {
	case input.Trigger:
		if w.variant.acceptsTrigger() {
			w.OnTrigger(a.Value)
		}
	case input.Eject:
		if a.Pressed && !w.breachOpen && w.variant.acceptsEject() {
			w.Eject()
		}
	}
}

// OnTrigger debounces an analog trigger sample.
func (w *Weapon) OnTrigger(value float64) {
	if !w.triggerPulled {
		if value >= w.cfg.TriggerFireThreshold {
			w.Fire()
			w.triggerPulled = true
		}
		return
	}
	if value <= w.cfg.TriggerReleaseThreshold {
		w.cfg.Haptics.TriggerClick.Play(w.fb.Haptics, w.cfg.Hand)
		w.triggerPulled = false
	}
}

// Fire attempts a shot and reports whether projectiles were launched.
func (w *Weapon) Fire() bool {
	if w.disabled {
		return false
	}
	switch {
	case len(w.loaded) == 0:
		return w.dryFire(ReasonEmpty)
	case w.breachOpen:
		return w.dryFire(ReasonBreachOpen)
	case w.loaded[0].Spent:
		return w.dryFire(ReasonSpent)
	}

	hot := w.loaded[0]
	if len(w.loaded) > 1 {
		copy(w.loaded, w.loaded[1:])
		w.loaded[len(w.loaded)-1] = hot
	}

	idx := w.activeMuzzle
	muzzle := w.MuzzlePose(idx)
	ps := hot.Fire(w, muzzle)
	shot := Shot{Round: hot, Muzzle: idx, Projectiles: ps}
	if len(ps) > 0 {
		shot.Volley = ps[0].Volley
	}
	for _, fn := range w.onSpawned {
		fn(w, shot)
	}
	if n := len(w.cfg.Muzzles); n > 1 {
		w.activeMuzzle = (w.activeMuzzle + 1) % n
	}

	w.shake(muzzle)
	w.cfg.Haptics.Fire.Play(w.fb.Haptics, w.cfg.Hand)
	w.shots++
	w.variant.afterFire(shot, true)

	event.Emit(w.bus, event.WeaponFired{
		Weapon:      w.cfg.Name,
		Volley:      shot.Volley,
		Round:       hot.Name(),
		Muzzle:      idx,
		Projectiles: len(ps),
		Origin:      muzzle.Pos,
		Direction:   muzzle.Forward(),
	})
	w.log.Debug("weapon fired",
		zap.String("round", hot.Name()),
		zap.Int("muzzle", idx),
		zap.Int("projectiles", len(ps)),
	)
	return true
}

func (w *Weapon) dryFire(reason string) bool {
	w.cfg.Haptics.TriggerClick.Play(w.fb.Haptics, w.cfg.Hand)
	w.fb.PlayCue(w.cfg.Cues.TriggerClick)
	w.variant.afterFire(Shot{Muzzle: w.activeMuzzle}, false)
	event.Emit(w.bus, event.DryFired{Weapon: w.cfg.Name, Reason: reason})
	return false
}

func (w *Weapon) shake(muzzle vmath.Pose) {
	sc := w.cfg.Shake
	if w.player == nil || sc.Radius <= 0 {
		return
	}
	angle := vmath.AngleDeg(muzzle.Forward(), w.player.AimDirection())
	if angle > sc.Radius {
		return
	}
	k := sc.Curve.Evaluate(1 - angle/sc.Radius)
	w.player.ShakeScreen(sc.Magnitude*k, time.Duration(float64(sc.Duration)*k))
}

// Eject opens the breach. It is ignored when the breach is already open.
func (w *Weapon) Eject() {
	if w.disabled || w.breachOpen {
		return
	}
	w.variant.onEject()
	w.ApplyBarrelTorque(-w.cfg.EjectTorque)
	w.cfg.Haptics.Eject.Play(w.fb.Haptics, w.cfg.Hand)
	w.fb.PlayCue(w.cfg.Cues.Eject)
	w.breachOpen = true
	event.Emit(w.bus, event.BreachOpened{Weapon: w.cfg.Name})
}

// CloseBreach closes the breach. It is ignored when already closed.
func (w *Weapon) CloseBreach() {
	if w.disabled || !w.breachOpen {
		return
	}
	if !w.variant.onCloseBreach() {
		return
	}
	w.cfg.Haptics.Close.Play(w.fb.Haptics, w.cfg.Hand)
	w.fb.PlayCue(w.cfg.Cues.Close)
	w.breachOpen = false
	event.Emit(w.bus, event.BreachClosed{Weapon: w.cfg.Name})
}

// LoadAmmo chambers r in the next free slot. It returns false when every
// chamber is occupied.
func (w *Weapon) LoadAmmo(r *ammo.Round) bool {
	if w.disabled || r == nil || len(w.loaded) >= len(w.cfg.Chambers) {
		return false
	}
	slot := len(w.loaded)
	w.loaded = append(w.loaded, r)
	r.Load(slot, w.ChamberPose(slot))
	return true
}

// FullyLoad fills every free chamber with clones of template.
func (w *Weapon) FullyLoad(template *ammo.Round) {
	if w.disabled || template == nil {
		return
	}
	for len(w.loaded) < len(w.cfg.Chambers) {
		if !w.LoadAmmo(template.Clone()) {
			break
		}
	}
	w.cfg.Haptics.Eject.Play(w.fb.Haptics, w.cfg.Hand)
	w.fb.PlayCue(template.Profile().LoadCue)
}

// FullyLoadDefault discards whatever is loaded and refills with the default
// round.
func (w *Weapon) FullyLoadDefault() {
	if w.disabled {
		return
	}
	if w.defaultRound == nil {
		w.log.Warn("weapon has no default round, cannot fully load")
		return
	}
	for _, r := range w.loaded {
		r.Discard()
	}
	w.loaded = w.loaded[:0]
	w.FullyLoad(w.defaultRound)
}

// ApplyBarrelTorque pushes the active muzzle along its up axis.
func (w *Weapon) ApplyBarrelTorque(force float64) {
	if w.disabled || force == 0 || w.activeMuzzle >= len(w.cfg.Muzzles) {
		return
	}
	m := w.MuzzlePose(w.activeMuzzle)
	w.bodies.ApplyImpulseAt(w.body, m.Up().Mul(force), m.Pos)
}

// OnProjectilesSpawned subscribes fn to every successful shot. Subscribers
// run in order before Fire returns.
func (w *Weapon) OnProjectilesSpawned(fn func(w *Weapon, shot Shot)) {
	if fn != nil {
		w.onSpawned = append(w.onSpawned, fn)
	}
}

// Tick advances modifiers, the recoil phase and the variant, then keeps
// chambered rounds on their chambers.
func (w *Weapon) Tick(dt float64) {
	if w.disabled || dt <= 0 {
		return
	}
	for _, m := range w.modifiers {
		m.OnTick(w, dt)
	}
	w.tickRecoil(dt)
	w.variant.tick(dt)
	for _, r := range w.loaded {
		if slot := r.Chamber(); slot >= 0 {
			r.Follow(w.ChamberPose(slot))
		}
	}
}

// Follow drives the weapon body from a tracked hand pose, offset by the
// current presentation, and derives its velocity from the tracked motion.
// Drift the rigid-body step adds between calls is discarded.
func (w *Weapon) Follow(hand vmath.Pose, dt float64) {
	if w.disabled || dt <= 0 {
		return
	}
	prev := w.bodies.Pose(w.body)
	if w.following {
		prev = w.tracked
	}
	next := hand.Mul(vmath.At(w.pres.Offset))
	w.bodies.SetPose(w.body, next)
	w.bodies.SetVelocity(w.body, next.Pos.Sub(prev.Pos).Mul(1/dt))
	w.tracked, w.following = next, true
	for _, r := range w.loaded {
		if slot := r.Chamber(); slot >= 0 {
			r.Follow(w.ChamberPose(slot))
		}
	}
}
