// Package curve evaluates keyframed animation curves used for recoil, blade
// deployment, shake falloff and over-lifetime projectile modifiers.
package curve

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/interp"
)

// Key is a single keyframe.
type Key struct {
	T float64 `yaml:"t" toml:"t"`
	V float64 `yaml:"v" toml:"v"`
}

// Curve is a piecewise-linear curve. Evaluation outside the key range holds
// the nearest end value. The zero Curve evaluates to 0 everywhere.
type Curve struct {
	keys []Key
	pl   *interp.PiecewiseLinear
}

// New builds a curve from keys in any order. Duplicate times are rejected.
func New(keys ...Key) (Curve, error) {
	sorted := append([]Key(nil), keys...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].T < sorted[j].T })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].T == sorted[i-1].T {
			return Curve{}, fmt.Errorf("curve: duplicate key at t=%v", sorted[i].T)
		}
	}
	c := Curve{keys: sorted}
	if len(sorted) >= 2 {
		xs := make([]float64, len(sorted))
		ys := make([]float64, len(sorted))
		for i, k := range sorted {
			xs[i], ys[i] = k.T, k.V
		}
		pl := &interp.PiecewiseLinear{}
		if err := pl.Fit(xs, ys); err != nil {
			return Curve{}, fmt.Errorf("curve: fit: %w", err)
		}
		c.pl = pl
	}
	return c, nil
}

// MustNew is New for literal curves known to be valid.
func MustNew(keys ...Key) Curve {
	c, err := New(keys...)
	if err != nil {
		panic(err)
	}
	return c
}

// Constant returns a flat curve.
func Constant(v float64) Curve {
	return Curve{keys: []Key{{T: 0, V: v}}}
}

// Linear returns a straight ramp from a at t=0 to b at t=1.
func Linear(a, b float64) Curve {
	return MustNew(Key{0, a}, Key{1, b})
}

// Evaluate samples the curve at t.
func (c Curve) Evaluate(t float64) float64 {
	switch len(c.keys) {
	case 0:
		return 0
	case 1:
		return c.keys[0].V
	}
	first, last := c.keys[0], c.keys[len(c.keys)-1]
	if t <= first.T {
		return first.V
	}
	if t >= last.T {
		return last.V
	}
	return c.pl.Predict(t)
}

// Keys returns a copy of the curve's keyframes.
func (c Curve) Keys() []Key {
	return append([]Key(nil), c.keys...)
}

// IsZero reports whether the curve has no keys.
func (c Curve) IsZero() bool { return len(c.keys) == 0 }

// UnmarshalYAML accepts either a list of keys or a single number.
func (c *Curve) UnmarshalYAML(unmarshal func(any) error) error {
	var flat float64
	if err := unmarshal(&flat); err == nil {
		*c = Constant(flat)
		return nil
	}
	var keys []Key
	if err := unmarshal(&keys); err != nil {
		return fmt.Errorf("curve: %w", err)
	}
	parsed, err := New(keys...)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
