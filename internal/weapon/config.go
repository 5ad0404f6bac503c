package weapon

import (
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/skyshot/armory/internal/ammo"
	"github.com/skyshot/armory/internal/core/event"
	"github.com/skyshot/armory/internal/curve"
	"github.com/skyshot/armory/internal/feedback"
	"github.com/skyshot/armory/internal/physics"
	"github.com/skyshot/armory/internal/player"
	"github.com/skyshot/armory/internal/projectile"
	"github.com/skyshot/armory/internal/vmath"
)

// Chamber is a slot in the weapon's barrel frame. Extractor, when set, is
// relative to the chamber and gives the ejection point and direction.
type Chamber struct {
	Local     vmath.Pose
	Extractor *vmath.Pose
}

// RecoilConfig tunes the cosmetic recoil phase.
type RecoilConfig struct {
	Distance        float64 // backward travel at power 1
	PositionCurve   curve.Curve
	Duration        float64 // seconds
	ScaleCurve      curve.Curve
	ScaleDuration   float64 // seconds
	MaxScale        float64
	Torque          float64
	AngularSpeed    float64 // cap while recoiling, rad/s
	MaxAngularSpeed float64 // resting cap, rad/s
}

// ShakeConfig scales screen shake by how closely the muzzle points along
// the player's aim.
type ShakeConfig struct {
	Radius    float64 // degrees
	Magnitude float64
	Duration  time.Duration
	Curve     curve.Curve
}

type HapticSet struct {
	Fire         feedback.HapticProfile
	TriggerClick feedback.HapticProfile
	Eject        feedback.HapticProfile
	Close        feedback.HapticProfile
}

type CueSet struct {
	TriggerClick string
	Eject        string
	Close        string
}

// Config is the per-weapon tuning supplied at construction.
type Config struct {
	Name       string
	Hand       feedback.Hand
	BaseOffset mgl64.Vec3
	Chambers   []Chamber
	Muzzles    []vmath.Pose

	TriggerFireThreshold    float64
	TriggerReleaseThreshold float64
	InfiniteAmmo            bool
	EjectTorque             float64

	Recoil  RecoilConfig
	Shake   ShakeConfig
	Haptics HapticSet
	Cues    CueSet
}

// Spawner launches projectiles. *projectile.Simulator satisfies it.
type Spawner interface {
	Spawn(l projectile.Launch) *projectile.Projectile
}

// Deps are the collaborators a weapon talks to.
type Deps struct {
	Body         physics.BodyID
	Bodies       physics.Bodies
	Sim          Spawner
	Player       *player.Player
	Feedback     feedback.Set
	Bus          *event.Bus
	Rand         *rand.Rand
	Log          *zap.Logger
	DefaultRound *ammo.Round
}
