// Package firingrange assembles a complete simulated firing range from
// configuration: scene, player, weapons, targets and the tick systems that
// drive them. Both the headless runner and the terminal sandbox use it.
package firingrange

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skyshot/armory/internal/ammo"
	"github.com/skyshot/armory/internal/config"
	"github.com/skyshot/armory/internal/core/ecs"
	"github.com/skyshot/armory/internal/core/event"
	coresys "github.com/skyshot/armory/internal/core/system"
	"github.com/skyshot/armory/internal/data"
	"github.com/skyshot/armory/internal/feedback"
	"github.com/skyshot/armory/internal/input"
	"github.com/skyshot/armory/internal/physics"
	"github.com/skyshot/armory/internal/physics/scene"
	"github.com/skyshot/armory/internal/player"
	"github.com/skyshot/armory/internal/projectile"
	"github.com/skyshot/armory/internal/system"
	"github.com/skyshot/armory/internal/vmath"
	"github.com/skyshot/armory/internal/weapon"
)

const playerMass = 80

// Rest poses of the tracked player, facing +Z downrange.
var (
	headPose  = vmath.At(mgl64.Vec3{0, 1.6, 0})
	handPoses = [2]vmath.Pose{
		feedback.HandLeft:  vmath.At(mgl64.Vec3{-0.25, 1.4, 0.3}),
		feedback.HandRight: vmath.At(mgl64.Vec3{0.25, 1.4, 0.3}),
	}
)

type Options struct {
	Config   *config.Config
	Armory   *data.Armory
	Feedback feedback.Set
	Journal  system.JournalWriter // nil disables the journal
	Run      uuid.UUID
	Log      *zap.Logger
}

// Range is one assembled range.
type Range struct {
	Scene   *scene.World
	World   *ecs.World
	Bus     *event.Bus
	Sim     *projectile.Simulator
	Factory *ammo.Factory
	Player  *player.Player
	Queue   *input.Queue
	Primary *weapon.Weapon
	Offhand *weapon.Weapon // nil without an offhand melee weapon
	Targets []*Target
	Script  *Script
	Journal *system.JournalSystem // nil without a journal writer

	runner  *coresys.Runner
	clock   *coresys.FixedStep
	shells  *system.ShellSystem
	cleanup *system.CleanupSystem
	elapsed time.Duration
	log     *zap.Logger
}

// New builds the range described by opts.Config.Range with weapons from
// opts.Armory.
func New(opts Options) (*Range, error) {
	cfg := opts.Config
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	fb := opts.Feedback.WithDefaults()
	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	g := cfg.Simulation.Gravity

	r := &Range{
		Scene: scene.New(mgl64.Vec3{g[0], g[1], g[2]}, log),
		World: ecs.NewWorld(),
		Bus:   event.NewBus(),
		Queue: input.NewQueue(),
		clock: coresys.NewFixedStep(cfg.Simulation.TickRate, cfg.Simulation.MaxCatchUp),
		log:   log,
	}
	r.Sim = projectile.NewSimulator(r.World, r.Scene, fb.Effects, r.Bus, log)
	r.Factory = ammo.NewFactory(r.World, r.Scene, r.Bus, log)

	body := r.Scene.CreateBody(physics.BodySpec{
		Pose:   vmath.Identity(),
		Mass:   playerMass,
		Radius: 0.3,
		Layer:  physics.LayerPlayer,
	})
	r.Player = player.New(body, playerMass, r.Scene, fb.Shaker, log)
	r.Player.SetHead(headPose)
	for h, pose := range handPoses {
		r.Player.SetHandPose(feedback.Hand(h), pose)
	}

	floor := cfg.Range.Floor
	r.Scene.AddBox(mgl64.Vec3{-50, floor - 1, -50}, mgl64.Vec3{50, floor, 250}, physics.LayerLevel, nil)
	for _, tc := range cfg.Range.Targets {
		t := &Target{
			Center: mgl64.Vec3{tc.Position[0], tc.Position[1], tc.Position[2]},
			Radius: tc.Radius,
			name:   tc.Name,
			log:    log,
		}
		r.Scene.AddSphere(t.Center, t.Radius, physics.LayerTarget, t)
		r.Targets = append(r.Targets, t)
	}

	build := func(name string, primary *weapon.Weapon) (*weapon.Weapon, error) {
		info := opts.Armory.Weapons.Get(name)
		if info == nil {
			return nil, fmt.Errorf("%w: %s", data.ErrUnknownWeapon, name)
		}
		return opts.Armory.Build(name, weapon.Deps{
			Body:     r.Scene.CreateBody(info.BodySpec(handPoses[info.Config.Hand&1])),
			Bodies:   r.Scene,
			Sim:      r.Sim,
			Player:   r.Player,
			Feedback: fb,
			Bus:      r.Bus,
			Rand:     rng,
			Log:      log,
		}, r.Factory, primary)
	}
	var err error
	if r.Primary, err = build(cfg.Range.Loadout, nil); err != nil {
		return nil, fmt.Errorf("loadout: %w", err)
	}
	r.Primary.FullyLoadDefault()
	if cfg.Range.Offhand != "" {
		if r.Offhand, err = build(cfg.Range.Offhand, r.Primary); err != nil {
			return nil, fmt.Errorf("offhand: %w", err)
		}
		r.Offhand.FullyLoadDefault()
	}

	if r.Script, err = NewScript(cfg.Range.Script, r.Queue, r.Player, log); err != nil {
		return nil, err
	}
	r.Script.Bind(r.Primary)

	weapons := system.NewWeaponSystem(r.Player)
	inputs := system.NewInputSystem(r.Queue, r.Player, log, r.Primary)
	weapons.Add(r.Primary)
	if r.Offhand != nil {
		weapons.Add(r.Offhand)
		inputs.AddHandler(r.Offhand)
	}
	r.shells = system.NewShellSystem(r.Factory.Shells())
	r.cleanup = system.NewCleanupSystem(r.World, log)

	r.runner = coresys.NewRunner()
	r.runner.Register(r.Script)
	r.runner.Register(inputs)
	r.runner.Register(system.NewEventDispatchSystem(r.Bus))
	r.runner.Register(weapons)
	r.runner.Register(system.NewProjectileSystem(r.Sim))
	r.runner.Register(system.NewPhysicsStepSystem(r.Scene))
	r.runner.Register(r.shells)
	if opts.Journal != nil {
		r.Journal = system.NewJournalSystem(r.Bus, opts.Journal, opts.Run, log, cfg.Simulation.JournalInterval)
		r.runner.Register(r.Journal)
	}
	r.runner.Register(r.cleanup)

	log.Info("range ready",
		zap.String("loadout", r.Primary.Name()),
		zap.Int("targets", len(r.Targets)),
		zap.Int("script_steps", len(cfg.Range.Script)),
		zap.Int64("seed", seed),
	)
	return r, nil
}

// Advance feeds frame time into the fixed-step clock and runs the ticks it
// yields. It returns how many ran.
func (r *Range) Advance(frame time.Duration) int {
	n := r.clock.Advance(frame)
	for i := 0; i < n; i++ {
		r.runner.Tick(r.clock.Step())
		r.elapsed += r.clock.Step()
	}
	return n
}

// Alpha is the presentation blend between the last two ticks.
func (r *Range) Alpha() float64 { return r.clock.Alpha() }

// Elapsed is simulated time.
func (r *Range) Elapsed() time.Duration { return r.elapsed }

func (r *Range) Ticks() uint64 { return r.runner.Ticks() }

// Close flushes the journal.
func (r *Range) Close() {
	if r.Journal != nil {
		r.Journal.Flush()
	}
}

// Stats summarizes the run so far.
type Stats struct {
	Ticks     uint64
	Shots     int
	Hits      int
	Burnouts  int
	Shells    int
	Destroyed int
}

func (r *Range) Stats() Stats {
	hits, burnouts := r.Sim.Stats()
	s := Stats{
		Ticks:     r.runner.Ticks(),
		Shots:     r.Primary.Shots(),
		Hits:      hits,
		Burnouts:  burnouts,
		Shells:    r.shells.Expired(),
		Destroyed: r.cleanup.Destroyed(),
	}
	if r.Offhand != nil {
		s.Shots += r.Offhand.Shots()
	}
	return s
}
