// Package data loads the YAML weapon, round and modifier tables and builds
// live weapons from them.
package data

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/skyshot/armory/internal/ammo"
	"github.com/skyshot/armory/internal/config"
	"github.com/skyshot/armory/internal/weapon"
)

// Armory bundles the loaded tables.
type Armory struct {
	Rounds    *RoundTable
	Weapons   *WeaponTable
	Modifiers *ModifierTable
	Log       *zap.Logger
}

// Load reads all three tables. scripts may be nil when no round uses a
// script modifier.
func Load(cfg config.DataConfig, scripts ScriptHost, log *zap.Logger) (*Armory, error) {
	if log == nil {
		log = zap.NewNop()
	}
	mods, err := LoadModifierTable(cfg.Modifiers)
	if err != nil {
		return nil, err
	}
	rounds, err := LoadRoundTable(cfg.Rounds, mods, scripts)
	if err != nil {
		return nil, err
	}
	weapons, err := LoadWeaponTable(cfg.Weapons)
	if err != nil {
		return nil, err
	}
	return &Armory{Rounds: rounds, Weapons: weapons, Modifiers: mods, Log: log}, nil
}

// Build creates the named weapon. A missing deps.DefaultRound is filled
// from the recipe using f. primary pairs a melee weapon with the weapon in
// the same hand and is ignored for other kinds. Weapon modifiers that refuse
// the weapon are logged and left off.
func (a *Armory) Build(name string, deps weapon.Deps, f *ammo.Factory, primary *weapon.Weapon) (*weapon.Weapon, error) {
	info := a.Weapons.Get(name)
	if info == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownWeapon, name)
	}
	if deps.DefaultRound == nil && info.DefaultRound != "" {
		r, err := a.Rounds.Template(info.DefaultRound, f)
		if err != nil {
			return nil, fmt.Errorf("weapon %s: %w", name, err)
		}
		deps.DefaultRound = r
	}
	if deps.Log == nil {
		deps.Log = a.Log
	}

	var w *weapon.Weapon
	switch info.Kind {
	case KindBreakAction:
		w = weapon.NewBreakAction(info.Config, info.Break, deps).Weapon
	case KindMelee:
		w = weapon.NewMelee(info.Config, info.Melee, primary, deps).Weapon
	default:
		w = weapon.New(info.Config, deps)
	}

	for _, m := range info.Modifiers {
		mod, err := a.Modifiers.Weapon(m, deps.Log)
		if err != nil {
			return nil, fmt.Errorf("weapon %s: %w", name, err)
		}
		w.AddModifier(mod)
	}
	a.Log.Debug("weapon built",
		zap.String("name", name),
		zap.String("kind", info.Kind),
		zap.Int("chambers", w.Capacity()),
		zap.Int("modifiers", w.Modifiers()),
	)
	return w, nil
}
