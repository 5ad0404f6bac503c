package weapon

import (
	"errors"

	"go.uber.org/zap"
)

// ErrNotBreakAction is returned by modifiers that only work on break-action
// weapons.
var ErrNotBreakAction = errors.New("weapon is not a break action")

// Modifier is a weapon-side behavior attached for the weapon's lifetime.
type Modifier interface {
	OnTick(w *Weapon, dt float64)
	OnProjectilesSpawned(w *Weapon, shot Shot)
}

// Binder is implemented by modifiers that validate the weapon they are
// attached to.
type Binder interface {
	Bind(w *Weapon) error
}

// AddModifier attaches m. A modifier whose Bind fails is logged and not
// attached.
func (w *Weapon) AddModifier(m Modifier) bool {
	if m == nil {
		return false
	}
	if b, ok := m.(Binder); ok {
		if err := b.Bind(w); err != nil {
			w.log.Error("weapon modifier disabled", zap.Error(err))
			return false
		}
	}
	w.modifiers = append(w.modifiers, m)
	w.onSpawned = append(w.onSpawned, m.OnProjectilesSpawned)
	return true
}

func (w *Weapon) Modifiers() int { return len(w.modifiers) }

// BreakAction returns the break-action variant when the weapon is one.
func (w *Weapon) BreakAction() (*BreakAction, bool) {
	b, ok := w.variant.(*BreakAction)
	return b, ok
}
