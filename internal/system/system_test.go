package system

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/skyshot/armory/internal/ammo"
	"github.com/skyshot/armory/internal/core/ecs"
	"github.com/skyshot/armory/internal/core/event"
	coresys "github.com/skyshot/armory/internal/core/system"
	"github.com/skyshot/armory/internal/feedback"
	"github.com/skyshot/armory/internal/input"
	"github.com/skyshot/armory/internal/persist"
	"github.com/skyshot/armory/internal/physics"
	"github.com/skyshot/armory/internal/physics/scene"
	"github.com/skyshot/armory/internal/player"
	"github.com/skyshot/armory/internal/projectile"
	"github.com/skyshot/armory/internal/system/mocks"
	"github.com/skyshot/armory/internal/vmath"
	"github.com/skyshot/armory/internal/weapon"
)

const tick = 20 * time.Millisecond

type plate struct{}

func (plate) Name() string { return "plate" }

type rangeRig struct {
	world   *ecs.World
	scene   *scene.World
	bus     *event.Bus
	sim     *projectile.Simulator
	factory *ammo.Factory
	player  *player.Player
	queue   *input.Queue
	gun     *weapon.Weapon
	runner  *coresys.Runner
	cleanup *CleanupSystem
	weapons *WeaponSystem
}

func slug() *ammo.Profile {
	return &ammo.Profile{Name: "slug", Quantity: 1, Speed: 50, Range: 100, TotalDamage: 30, Mass: 0.05, EjectedLifetime: 1}
}

// newRangeRig builds a two-chamber gun at the origin aiming +Z and a plate
// of radius 1 centred 10 m downrange.
func newRangeRig(t *testing.T, writer JournalWriter, interval int, log *zap.Logger) *rangeRig {
	t.Helper()
	r := &rangeRig{
		world: ecs.NewWorld(),
		scene: scene.New(mgl64.Vec3{}, nil),
		bus:   event.NewBus(),
		queue: input.NewQueue(),
	}
	r.scene.AddSphere(mgl64.Vec3{0, 0, 10}, 1, physics.LayerTarget, plate{})
	r.sim = projectile.NewSimulator(r.world, r.scene, nil, r.bus, nil)
	r.factory = ammo.NewFactory(r.world, r.scene, r.bus, nil)
	r.player = player.New(0, 80, nil, nil, nil)
	r.gun = weapon.New(weapon.Config{
		Name:                    "pair",
		Hand:                    feedback.HandRight,
		Chambers:                []weapon.Chamber{{Local: vmath.Identity()}, {Local: vmath.Identity()}},
		Muzzles:                 []vmath.Pose{vmath.At(mgl64.Vec3{0, 0, 0.6})},
		TriggerFireThreshold:    1,
		TriggerReleaseThreshold: 0.5,
	}, weapon.Deps{
		Body:   r.scene.CreateBody(physics.BodySpec{Pose: vmath.Identity(), Mass: 2, Layer: physics.LayerWeapon}),
		Bodies: r.scene,
		Sim:    r.sim,
		Player: r.player,
		Bus:    r.bus,
		Rand:   rand.New(rand.NewSource(1)),
	})
	r.gun.LoadAmmo(r.factory.New(slug(), vmath.Identity()))
	r.gun.LoadAmmo(r.factory.New(slug(), vmath.Identity()))

	r.weapons = NewWeaponSystem(r.player)
	r.weapons.Add(r.gun)
	r.cleanup = NewCleanupSystem(r.world, nil)

	r.runner = coresys.NewRunner()
	// registered out of phase order on purpose
	r.runner.Register(r.cleanup)
	if writer != nil {
		r.runner.Register(NewJournalSystem(r.bus, writer, uuid.New(), log, interval))
	}
	r.runner.Register(NewProjectileSystem(r.sim))
	r.runner.Register(NewPhysicsStepSystem(r.scene))
	r.runner.Register(NewShellSystem(r.factory.Shells()))
	r.runner.Register(r.weapons)
	r.runner.Register(NewEventDispatchSystem(r.bus))
	r.runner.Register(NewInputSystem(r.queue, r.player, nil, r.gun))
	return r
}

func (r *rangeRig) run(n int) {
	for i := 0; i < n; i++ {
		r.runner.Tick(tick)
	}
}

func TestJournalRecordsShotThenHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := mocks.NewMockJournalWriter(ctrl)

	var volley uuid.UUID
	gomock.InOrder(
		writer.EXPECT().WriteBatch(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, b persist.Batch) error {
				if len(b.Shots) != 1 || len(b.Impacts) != 0 {
					t.Fatalf("first flush: %d shots, %d impacts", len(b.Shots), len(b.Impacts))
				}
				s := b.Shots[0]
				if s.Weapon != "pair" || s.Round != "slug" || s.Projectiles != 1 || s.Tick != 1 {
					t.Fatalf("shot = %+v", s)
				}
				volley = s.Volley
				return nil
			}),
		writer.EXPECT().WriteBatch(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, b persist.Batch) error {
				if len(b.Shots) != 0 || len(b.Impacts) != 1 {
					t.Fatalf("second flush: %d shots, %d impacts", len(b.Shots), len(b.Impacts))
				}
				i := b.Impacts[0]
				if i.Kind != persist.ImpactHit || i.Target != "plate" || i.Volley != volley || i.Damage != 30 {
					t.Fatalf("impact = %+v", i)
				}
				if d := i.Point.Sub(mgl64.Vec3{0, 0, 9}).Len(); d > 1e-6 {
					t.Fatalf("hit point = %v", i.Point)
				}
				return nil
			}),
	)

	r := newRangeRig(t, writer, 5, nil)
	r.queue.Push(input.Action{Hand: feedback.HandRight, Name: input.Trigger, Value: 1})
	r.run(10)

	if r.gun.Shots() != 1 || len(r.sim.Live()) != 0 {
		t.Fatalf("shots=%d live=%d", r.gun.Shots(), len(r.sim.Live()))
	}
	if r.cleanup.Destroyed() != 1 {
		t.Fatalf("destroyed = %d", r.cleanup.Destroyed())
	}
}

func TestJournalDropsFailedBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := mocks.NewMockJournalWriter(ctrl)
	writer.EXPECT().WriteBatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	core, logs := observer.New(zapcore.ErrorLevel)
	bus := event.NewBus()
	j := NewJournalSystem(bus, writer, uuid.New(), zap.New(core), 2)

	event.Emit(bus, event.WeaponFired{Weapon: "pair", Volley: uuid.New()})
	event.Emit(bus, event.ProjectileBurnedOut{Volley: uuid.New()})
	bus.SwapBuffers()
	bus.DispatchAll()
	if j.Pending() != 2 {
		t.Fatalf("pending = %d", j.Pending())
	}

	j.Update(tick)
	j.Update(tick)
	if j.Pending() != 0 || j.Dropped() != 2 || j.Written() != 0 {
		t.Fatalf("pending=%d dropped=%d written=%d", j.Pending(), j.Dropped(), j.Written())
	}
	if logs.FilterMessage("journal write failed, batch dropped").Len() != 1 {
		t.Fatal("dropped batch not logged")
	}

	// nothing pending: no further writes
	j.Update(tick)
	j.Update(tick)
	j.Flush()
}

func TestEventsDeliveredNextTick(t *testing.T) {
	r := newRangeRig(t, nil, 0, nil)
	fired := 0
	event.Subscribe(r.bus, func(event.WeaponFired) { fired++ })

	r.queue.Push(input.Action{Hand: feedback.HandRight, Name: input.Trigger, Value: 1})
	r.run(1)
	if r.gun.Shots() != 1 || fired != 0 {
		t.Fatalf("tick 1: shots=%d delivered=%d", r.gun.Shots(), fired)
	}
	r.run(1)
	if fired != 1 {
		t.Fatalf("tick 2: delivered=%d", fired)
	}
	r.run(1)
	if fired != 1 {
		t.Fatalf("event delivered again: %d", fired)
	}
}

func TestInputSystemRoutesWing(t *testing.T) {
	r := newRangeRig(t, nil, 0, nil)
	r.queue.Push(input.Action{Hand: feedback.HandLeft, Name: input.Wing, Value: 0.8})
	r.queue.Push(input.Action{Hand: feedback.HandRight, Name: input.Trigger, Value: 1})
	r.run(1)
	if r.player.Wing(feedback.HandLeft) != 0.8 || r.player.Wing(feedback.HandRight) != 0 {
		t.Fatal("wing not applied to the player")
	}
	if r.gun.Shots() != 1 || r.queue.Len() != 0 {
		t.Fatal("trigger not routed to the weapon")
	}
}

func TestWeaponSystemFollowsHandAndReloads(t *testing.T) {
	r := newRangeRig(t, nil, 0, nil)
	r.player.SetHandPose(feedback.HandRight, vmath.At(mgl64.Vec3{1, 1, 0}))
	r.run(1)
	if p := r.scene.Pose(r.gun.Body()).Pos; p != (mgl64.Vec3{1, 1, 0}) {
		t.Fatalf("weapon body at %v", p)
	}

	cfg := r.gun.Config()
	cfg.Name, cfg.Hand = "spare", feedback.HandLeft
	spare := weapon.New(cfg, weapon.Deps{
		Body:   r.scene.CreateBody(physics.BodySpec{Pose: vmath.Identity(), Mass: 2, Layer: physics.LayerWeapon}),
		Bodies: r.scene,
		Sim:    r.sim,
		Player: r.player,
	})
	r.weapons.Add(spare)
	station := mgl64.Vec3{-1, 1, 0}
	r.weapons.AddReloadVolume(weapon.NewReloadVolume(station, 0.5, r.factory.Template(slug())))

	r.run(1)
	spare.Eject()
	r.player.SetHandPose(feedback.HandLeft, vmath.At(station))
	r.run(3)
	if r.weapons.Reloads() != 1 || spare.LoadedCount() != 2 {
		t.Fatalf("reloads=%d loaded=%d", r.weapons.Reloads(), spare.LoadedCount())
	}
	if len(r.weapons.Weapons()) != 2 {
		t.Fatal("weapon not registered")
	}
}
