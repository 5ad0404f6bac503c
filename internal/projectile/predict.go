package projectile

import (
	"math"

	"github.com/skyshot/armory/internal/vmath"
)

// PredictedLifetime returns the configured lifetime when set. Otherwise it
// extrapolates from the remaining range at the current speed, or returns
// +Inf when neither limit is set.
func (p *Projectile) PredictedLifetime() float64 {
	if p.Lifetime > 0 {
		return p.Lifetime
	}
	if p.MaxDistance <= 0 || p.CurrentSpeed <= 0 {
		return math.Inf(1)
	}
	return p.TimeAlive + (p.MaxDistance-p.TotalTravel)/p.CurrentSpeed
}

// PredictedRange mirrors PredictedLifetime using the remaining lifetime.
func (p *Projectile) PredictedRange() float64 {
	if p.MaxDistance > 0 {
		return p.MaxDistance
	}
	if p.Lifetime <= 0 {
		return math.Inf(1)
	}
	return p.TotalTravel + (p.Lifetime-p.TimeAlive)*p.CurrentSpeed
}

// TimeInterpolant is flight progress by time, in [0,1]. Unbounded flights
// report 0.
func (p *Projectile) TimeInterpolant() float64 {
	return progress(p.TimeAlive, p.PredictedLifetime())
}

// RangeInterpolant is flight progress by distance, in [0,1].
func (p *Projectile) RangeInterpolant() float64 {
	return progress(p.TotalTravel, p.PredictedRange())
}

func progress(done, end float64) float64 {
	if end <= 0 || math.IsInf(end, 1) || math.IsNaN(end) {
		return 0
	}
	return vmath.Clamp01(done / end)
}

// Basis picks which axis a Normalizer measures progress along.
type Basis uint8

const (
	ByLifetime Basis = iota
	ByRange
)

// ParseBasis maps "lifetime"/"range" to a Basis.
func ParseBasis(s string) Basis {
	if s == "range" {
		return ByRange
	}
	return ByLifetime
}

// Normalizer turns flight progress into a curve input. Adaptive mode
// re-predicts the endpoint every call so velocity changes from other
// modifiers are followed; otherwise the endpoint is captured once.
type Normalizer struct {
	Basis    Basis
	Adaptive bool

	end      float64
	captured bool
}

// Capture records the endpoint. Modifiers call it from EventStarted.
func (n *Normalizer) Capture(p *Projectile) {
	n.end = n.endpoint(p)
	n.captured = true
}

// Value returns progress in [0,1].
func (n *Normalizer) Value(p *Projectile) float64 {
	if n.Adaptive {
		n.end = n.endpoint(p)
	} else if !n.captured {
		n.Capture(p)
	}
	if n.Basis == ByRange {
		return progress(p.TotalTravel, n.end)
	}
	return progress(p.TimeAlive, n.end)
}

func (n *Normalizer) endpoint(p *Projectile) float64 {
	if n.Basis == ByRange {
		return p.PredictedRange()
	}
	return p.PredictedLifetime()
}
