package system

import (
	"time"

	"github.com/skyshot/armory/internal/ammo"
	coresys "github.com/skyshot/armory/internal/core/system"
	"github.com/skyshot/armory/internal/projectile"
)

// ProjectileSystem advances every live projectile. Phase 3 (Simulate).
type ProjectileSystem struct {
	sim *projectile.Simulator
}

func NewProjectileSystem(sim *projectile.Simulator) *ProjectileSystem {
	return &ProjectileSystem{sim: sim}
}

func (s *ProjectileSystem) Phase() coresys.Phase { return coresys.PhaseSimulate }

func (s *ProjectileSystem) Update(dt time.Duration) { s.sim.Step(dt.Seconds()) }

// Stepper integrates rigid bodies. *scene.World satisfies it.
type Stepper interface {
	Step(dt float64)
}

// PhysicsStepSystem integrates the rigid-body world. Phase 3 (Simulate),
// registered after projectiles so sweeps see the poses the weapons set.
type PhysicsStepSystem struct {
	world Stepper
}

func NewPhysicsStepSystem(world Stepper) *PhysicsStepSystem {
	return &PhysicsStepSystem{world: world}
}

func (s *PhysicsStepSystem) Phase() coresys.Phase { return coresys.PhaseSimulate }

func (s *PhysicsStepSystem) Update(dt time.Duration) { s.world.Step(dt.Seconds()) }

// ShellSystem applies shell gravity and retires expired ejected rounds.
// Phase 3 (Simulate).
type ShellSystem struct {
	shells  *ammo.Shells
	expired int
}

func NewShellSystem(shells *ammo.Shells) *ShellSystem {
	return &ShellSystem{shells: shells}
}

func (s *ShellSystem) Phase() coresys.Phase { return coresys.PhaseSimulate }

func (s *ShellSystem) Update(dt time.Duration) { s.expired += s.shells.Tick(dt.Seconds()) }

// Expired counts shells retired so far.
func (s *ShellSystem) Expired() int { return s.expired }
