package event

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/skyshot/armory/internal/core/ecs"
)

// WeaponFired is emitted once per successful trigger pull.
type WeaponFired struct {
	Weapon      string
	Volley      uuid.UUID
	Round       string
	Muzzle      int
	Projectiles int
	Origin      mgl64.Vec3
	Direction   mgl64.Vec3
}

// DryFired is emitted when a trigger pull had nothing to fire.
type DryFired struct {
	Weapon string
	Reason string
}

type BreachOpened struct {
	Weapon string
}

type BreachClosed struct {
	Weapon string
}

// RoundEjected is emitted for each round extracted from an open breach.
type RoundEjected struct {
	Weapon string
	Round  ecs.EntityID
	Spent  bool
}

// ProjectileHit is emitted when a projectile strikes something.
type ProjectileHit struct {
	Projectile ecs.EntityID
	Volley     uuid.UUID
	Source     string
	Point      mgl64.Vec3
	Normal     mgl64.Vec3
	Target     string
	Damage     float64
	Kick       float64
	Travel     float64
	TimeAlive  float64
}

// ProjectileBurnedOut is emitted when a projectile exhausts range or lifetime.
type ProjectileBurnedOut struct {
	Projectile ecs.EntityID
	Volley     uuid.UUID
	Source     string
	Point      mgl64.Vec3
	Travel     float64
	TimeAlive  float64
}

// ShellExpired is emitted when an ejected round's countdown ends.
type ShellExpired struct {
	Round ecs.EntityID
}
