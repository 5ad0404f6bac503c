package firingrange

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/skyshot/armory/internal/projectile"
)

// Target is a static sphere that tallies the projectiles striking it.
type Target struct {
	Center mgl64.Vec3
	Radius float64

	name   string
	hits   int
	damage float64
	log    *zap.Logger
}

func (t *Target) Name() string    { return t.name }
func (t *Target) Hits() int       { return t.hits }
func (t *Target) Damage() float64 { return t.damage }

func (t *Target) IsHit(p *projectile.Projectile) {
	t.hits++
	t.damage += p.HitDamage
	t.log.Debug("target hit",
		zap.String("target", t.name),
		zap.String("source", p.Source),
		zap.Float64("damage", p.HitDamage),
		zap.Float64("travel", p.TotalTravel),
	)
}
