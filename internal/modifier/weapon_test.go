package modifier

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/skyshot/armory/internal/ammo"
	"github.com/skyshot/armory/internal/core/ecs"
	"github.com/skyshot/armory/internal/curve"
	"github.com/skyshot/armory/internal/feedback"
	"github.com/skyshot/armory/internal/physics"
	"github.com/skyshot/armory/internal/physics/scene"
	"github.com/skyshot/armory/internal/player"
	"github.com/skyshot/armory/internal/projectile"
	"github.com/skyshot/armory/internal/vmath"
	"github.com/skyshot/armory/internal/weapon"
)

type bench struct {
	scene   *scene.World
	sim     *projectile.Simulator
	factory *ammo.Factory
	player  *player.Player
}

func newBench() *bench {
	sc := scene.New(mgl64.Vec3{}, nil)
	w := ecs.NewWorld()
	return &bench{
		scene:   sc,
		sim:     projectile.NewSimulator(w, sc, nil, nil, nil),
		factory: ammo.NewFactory(w, sc, nil, nil),
		player:  player.New(0, 80, nil, nil, nil),
	}
}

func (b *bench) deps() weapon.Deps {
	return weapon.Deps{
		Body:   b.scene.CreateBody(physics.BodySpec{Pose: vmath.Identity(), Mass: 2, Layer: physics.LayerWeapon}),
		Bodies: b.scene,
		Sim:    b.sim,
		Player: b.player,
		Rand:   rand.New(rand.NewSource(3)),
	}
}

func (b *bench) config() weapon.Config {
	return weapon.Config{
		Name:                    "bench",
		Hand:                    feedback.HandRight,
		Chambers:                []weapon.Chamber{{Local: vmath.At(mgl64.Vec3{0, 0, 0.1})}},
		Muzzles:                 []vmath.Pose{vmath.At(mgl64.Vec3{0, 0, 0.5})},
		TriggerFireThreshold:    1,
		TriggerReleaseThreshold: 0.5,
		InfiniteAmmo:            true,
	}
}

func buckshot() *ammo.Profile {
	return &ammo.Profile{Name: "buck", Quantity: 2, Speed: 10, Range: 40, TotalDamage: 20}
}

// slide moves the weapon body by step and ticks it, n times.
func (b *bench) slide(w *weapon.Weapon, step mgl64.Vec3, n int, dt float64) {
	for i := 0; i < n; i++ {
		b.move(w, step)
		w.Tick(dt)
	}
}

func (b *bench) move(w *weapon.Weapon, step mgl64.Vec3) {
	p := b.scene.Pose(w.Body())
	p.Pos = p.Pos.Add(step)
	b.scene.SetPose(w.Body(), p)
}

func TestMuzzleTrackerAveragesWindow(t *testing.T) {
	b := newBench()
	w := weapon.New(b.config(), b.deps())
	tr := &MuzzleTracker{Memory: 3}

	if tr.Velocity(w) != (mgl64.Vec3{}) {
		t.Fatal("velocity before any sample")
	}
	for i := 0; i < 5; i++ {
		b.move(w, mgl64.Vec3{0.06, 0, 0})
		tr.Sample(w, 0.02)
	}
	if v := tr.Velocity(w); math.Abs(v.X()-2) > 1e-9 {
		t.Fatalf("velocity with current = newest sample: %v", v)
	}
	b.move(w, mgl64.Vec3{0.06, 0, 0})
	if v := tr.Velocity(w); math.Abs(v.X()-3) > 1e-9 {
		t.Fatalf("velocity after moving again: %v", v)
	}

	off := &MuzzleTracker{}
	off.Sample(w, 0.02)
	if off.Velocity(w) != (mgl64.Vec3{}) {
		t.Fatal("tracker without memory reported motion")
	}
}

func TestMuzzleTrackerIgnoresRigMotion(t *testing.T) {
	b := newBench()
	w := weapon.New(b.config(), b.deps())
	tr := &MuzzleTracker{Memory: 4}
	step := mgl64.Vec3{0, 0, 0.1}
	for i := 0; i < 6; i++ {
		b.move(w, step)
		o := b.player.Origin()
		o.Pos = o.Pos.Add(step)
		b.player.SetOrigin(o)
		tr.Sample(w, 0.02)
	}
	if v := tr.Velocity(w); v.Len() > 1e-9 {
		t.Fatalf("walking read as a swing: %v", v)
	}
}

func swingShot() *SwingShot {
	return &SwingShot{
		ForceMultiplier: 2,
		ForceCurve:      curve.Constant(1),
		MinSwingSpeed:   1,
		MaxSpinForce:    10,
		MaxRangeBoost:   10,
		MaxDamageBoost:  6,
		Tracker:         MuzzleTracker{Memory: 3},
	}
}

func TestSwingShotPower(t *testing.T) {
	m := swingShot()
	for _, c := range []struct{ speed, want float64 }{
		{0.5, 0}, {1, 0}, {3, 0.5}, {5, 1}, {8, 1},
	} {
		if got := m.Power(c.speed); math.Abs(got-c.want) > 1e-12 {
			t.Fatalf("Power(%v) = %v, want %v", c.speed, got, c.want)
		}
	}
}

func TestSwingShotBoostsVolley(t *testing.T) {
	b := newBench()
	w := weapon.New(b.config(), b.deps())
	m := swingShot()
	if !w.AddModifier(m) {
		t.Fatal("swing shot refused a standard weapon")
	}
	w.LoadAmmo(b.factory.New(buckshot(), vmath.Identity()))

	var shot weapon.Shot
	w.OnProjectilesSpawned(func(_ *weapon.Weapon, s weapon.Shot) { shot = s })

	b.slide(w, mgl64.Vec3{0.06, 0, 0}, 5, 0.02)
	b.move(w, mgl64.Vec3{0.06, 0, 0})
	w.Fire()

	if len(shot.Projectiles) != 2 {
		t.Fatalf("volley size = %d", len(shot.Projectiles))
	}
	for _, p := range shot.Projectiles {
		if p.Modifiers() != 1 {
			t.Fatalf("projectile carries %d modifiers", p.Modifiers())
		}
		if math.Abs(p.MaxDistance-45) > 1e-9 || math.Abs(p.HitDamage-11.5) > 1e-9 {
			t.Fatalf("range=%v damage=%v", p.MaxDistance, p.HitDamage)
		}
	}

	before := shot.Projectiles[0].Velocity
	b.sim.Step(0.1)
	if dx := shot.Projectiles[0].Velocity.X() - before.X(); math.Abs(dx-0.6) > 1e-9 {
		t.Fatalf("spin changed vx by %v", dx)
	}
}

func TestSwingShotIgnoresSlowSwings(t *testing.T) {
	b := newBench()
	w := weapon.New(b.config(), b.deps())
	w.AddModifier(swingShot())
	w.LoadAmmo(b.factory.New(buckshot(), vmath.Identity()))

	var shot weapon.Shot
	w.OnProjectilesSpawned(func(_ *weapon.Weapon, s weapon.Shot) { shot = s })
	b.slide(w, mgl64.Vec3{0.01, 0, 0}, 5, 0.02)
	w.Fire()

	for _, p := range shot.Projectiles {
		if p.Modifiers() != 0 || p.MaxDistance != 40 || p.HitDamage != 10 {
			t.Fatal("a slow swing changed the volley")
		}
	}
}

func TestSwingShotKeepsUnboundedRange(t *testing.T) {
	b := newBench()
	w := weapon.New(b.config(), b.deps())
	w.AddModifier(swingShot())
	unbounded := buckshot()
	unbounded.Range = 0
	unbounded.Lifetime = 2
	w.LoadAmmo(b.factory.New(unbounded, vmath.Identity()))

	var shot weapon.Shot
	w.OnProjectilesSpawned(func(_ *weapon.Weapon, s weapon.Shot) { shot = s })
	b.slide(w, mgl64.Vec3{0.1, 0, 0}, 4, 0.02)
	w.Fire()
	if shot.Projectiles[0].MaxDistance != 0 {
		t.Fatal("range boost bounded a lifetime-only projectile")
	}
}

func hinge() weapon.BreakConfig {
	return weapon.BreakConfig{
		BreakAngle: 60,
		EjectAngle: 30,
		LockAngle:  5,
		Spring:     200,
		Damping:    20,
	}
}

func TestVelociCloserNeedsBreakAction(t *testing.T) {
	b := newBench()
	w := weapon.New(b.config(), b.deps())
	m := &VelociCloser{ForceMultiplier: 1}
	if err := m.Bind(w); !errors.Is(err, weapon.ErrNotBreakAction) {
		t.Fatalf("bind error = %v", err)
	}
	if w.AddModifier(m) || w.Modifiers() != 0 {
		t.Fatal("closer attached to a standard weapon")
	}
}

func TestVelociCloserSnapsBreachShut(t *testing.T) {
	open := func(b *bench, mod *VelociCloser) *weapon.BreakAction {
		g := weapon.NewBreakAction(b.config(), hinge(), b.deps())
		if mod != nil && !g.AddModifier(mod) {
			t.Fatal("closer refused a break action")
		}
		g.Eject()
		for i := 0; i < 200 && g.Angle() < 50; i++ {
			g.Tick(0.01)
		}
		if g.Angle() < 50 {
			t.Fatalf("hinge stuck at %v", g.Angle())
		}
		return g
	}

	plain := newBench()
	pg := open(plain, nil)
	closerBench := newBench()
	cg := open(closerBench, &VelociCloser{ForceMultiplier: 10000, Tracker: MuzzleTracker{Memory: 2}})

	down := mgl64.Vec3{0, -0.05, 0}
	for i := 0; i < 30; i++ {
		plain.move(pg.Weapon, down)
		pg.Tick(0.01)
		closerBench.move(cg.Weapon, down)
		cg.Tick(0.01)
	}
	if !pg.BreachOpen() {
		t.Fatal("swinging without the closer shut the breach")
	}
	if cg.BreachOpen() || !cg.Locked() {
		t.Fatalf("closer did not shut the breach, angle=%v", cg.Angle())
	}
}
