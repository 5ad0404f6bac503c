package data

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/skyshot/armory/internal/curve"
	"github.com/skyshot/armory/internal/modifier"
	"github.com/skyshot/armory/internal/projectile"
	"github.com/skyshot/armory/internal/weapon"
)

var (
	ErrUnknownRound    = errors.New("unknown round")
	ErrUnknownWeapon   = errors.New("unknown weapon")
	ErrUnknownModifier = errors.New("unknown modifier")
)

// Modifier kinds accepted in modifiers.yaml.
const (
	KindForceOverLifetime = "force_over_lifetime"
	KindSpeedOverLifetime = "speed_over_lifetime"
	KindHoming            = "homing"
	KindScript            = "script"
	KindSwingShot         = "swing_shot"
	KindVelociCloser      = "velocicloser"
)

var projectileKinds = map[string]bool{
	KindForceOverLifetime: true,
	KindSpeedOverLifetime: true,
	KindHoming:            true,
	KindScript:            true,
}

var weaponKinds = map[string]bool{
	KindSwingShot:    true,
	KindVelociCloser: true,
}

// ScriptHost builds Lua-backed projectile modifiers. *scripting.Engine
// satisfies it.
type ScriptHost interface {
	Modifier(function string, params map[string]float64) projectile.Modifier
}

// ModifierInfo is one parsed modifier entry. Only the fields of its kind
// are meaningful.
type ModifierInfo struct {
	Name  string      `yaml:"name"`
	Kind  string      `yaml:"kind"`
	Curve curve.Curve `yaml:"curve"`

	// projectile kinds
	Force    [3]float64         `yaml:"force"`
	Basis    string             `yaml:"basis"` // "lifetime" or "range"
	Adaptive bool               `yaml:"adaptive"`
	Target   [3]float64         `yaml:"target"`
	MaxAccel float64            `yaml:"max_accel"`
	Delay    float64            `yaml:"delay"`
	Range    float64            `yaml:"range"`
	Function string             `yaml:"function"`
	Params   map[string]float64 `yaml:"params"`

	// weapon kinds
	ForceMultiplier float64 `yaml:"force_multiplier"`
	MinSwingSpeed   float64 `yaml:"min_swing_speed"`
	MaxSpinForce    float64 `yaml:"max_spin_force"`
	MaxRangeBoost   float64 `yaml:"max_range_boost"`
	MaxDamageBoost  float64 `yaml:"max_damage_boost"`
	Memory          int     `yaml:"memory"`
}

type modifierListFile struct {
	Modifiers []ModifierInfo `yaml:"modifiers"`
}

// ModifierTable holds named modifier recipes.
type ModifierTable struct {
	mods map[string]*ModifierInfo
}

// Get returns modifier info by name, or nil if not found.
func (t *ModifierTable) Get(name string) *ModifierInfo {
	if t == nil {
		return nil
	}
	return t.mods[name]
}

// Count returns the number of loaded modifiers.
func (t *ModifierTable) Count() int {
	if t == nil {
		return 0
	}
	return len(t.mods)
}

// LoadModifierTable loads modifier recipes from a YAML file.
func LoadModifierTable(path string) (*ModifierTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read modifiers: %w", err)
	}
	var f modifierListFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse modifiers: %w", err)
	}
	t := &ModifierTable{mods: make(map[string]*ModifierInfo, len(f.Modifiers))}
	for i := range f.Modifiers {
		m := &f.Modifiers[i]
		if !projectileKinds[m.Kind] && !weaponKinds[m.Kind] {
			return nil, fmt.Errorf("parse modifiers: %s: unknown kind %q", m.Name, m.Kind)
		}
		if m.Kind == KindScript && m.Function == "" {
			return nil, fmt.Errorf("parse modifiers: %s: script modifier needs a function", m.Name)
		}
		if m.Curve.IsZero() {
			m.Curve = curve.Constant(1)
		}
		t.mods[m.Name] = m
	}
	return t, nil
}

// Projectile returns a constructor producing a fresh projectile modifier per
// call. Script kinds need a host.
func (t *ModifierTable) Projectile(name string, scripts ScriptHost) (func() projectile.Modifier, error) {
	m := t.Get(name)
	if m == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModifier, name)
	}
	progress := func() projectile.Normalizer {
		return projectile.Normalizer{Basis: projectile.ParseBasis(m.Basis), Adaptive: m.Adaptive}
	}
	switch m.Kind {
	case KindForceOverLifetime:
		return func() projectile.Modifier {
			return &modifier.ForceOverLifetime{Force: vec(m.Force), Curve: m.Curve, Progress: progress()}
		}, nil
	case KindSpeedOverLifetime:
		return func() projectile.Modifier {
			return &modifier.SpeedOverLifetime{Curve: m.Curve, Progress: progress()}
		}, nil
	case KindHoming:
		target := modifier.Fixed(vec(m.Target))
		return func() projectile.Modifier {
			return &modifier.Homing{Target: target, MaxAccel: m.MaxAccel, Delay: m.Delay, Range: m.Range}
		}, nil
	case KindScript:
		if scripts == nil {
			return nil, fmt.Errorf("modifier %s: scripting is not available", name)
		}
		return func() projectile.Modifier { return scripts.Modifier(m.Function, m.Params) }, nil
	}
	return nil, fmt.Errorf("%w: %s is a %s modifier, not a projectile modifier", ErrUnknownModifier, name, m.Kind)
}

// Weapon builds a fresh weapon modifier.
func (t *ModifierTable) Weapon(name string, log *zap.Logger) (weapon.Modifier, error) {
	m := t.Get(name)
	if m == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModifier, name)
	}
	switch m.Kind {
	case KindSwingShot:
		return &modifier.SwingShot{
			ForceMultiplier: m.ForceMultiplier,
			ForceCurve:      m.Curve,
			MinSwingSpeed:   m.MinSwingSpeed,
			MaxSpinForce:    m.MaxSpinForce,
			MaxRangeBoost:   m.MaxRangeBoost,
			MaxDamageBoost:  m.MaxDamageBoost,
			Tracker:         modifier.MuzzleTracker{Memory: m.Memory},
			Log:             log,
		}, nil
	case KindVelociCloser:
		return &modifier.VelociCloser{
			ForceMultiplier: m.ForceMultiplier,
			Tracker:         modifier.MuzzleTracker{Memory: m.Memory},
		}, nil
	}
	return nil, fmt.Errorf("%w: %s is a %s modifier, not a weapon modifier", ErrUnknownModifier, name, m.Kind)
}

func vec(a [3]float64) mgl64.Vec3 { return mgl64.Vec3{a[0], a[1], a[2]} }
