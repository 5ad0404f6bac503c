package data

import (
	"errors"
	"io/fs"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/skyshot/armory/internal/ammo"
	"github.com/skyshot/armory/internal/config"
	"github.com/skyshot/armory/internal/core/ecs"
	"github.com/skyshot/armory/internal/feedback"
	"github.com/skyshot/armory/internal/modifier"
	"github.com/skyshot/armory/internal/physics"
	"github.com/skyshot/armory/internal/physics/scene"
	"github.com/skyshot/armory/internal/projectile"
	"github.com/skyshot/armory/internal/vmath"
	"github.com/skyshot/armory/internal/weapon"
)

const modifiersYAML = `
modifiers:
  - name: drift
    kind: force_over_lifetime
    force: [0, 0, 2]
    basis: range
  - name: fade
    kind: speed_over_lifetime
    curve:
      - {t: 0, v: 1}
      - {t: 1, v: 0.5}
  - name: seeker
    kind: homing
    target: [0, 0, 30]
    max_accel: 15
  - name: wobble
    kind: script
    function: wobble
    params: {amplitude: 0.5}
  - name: swing
    kind: swing_shot
    force_multiplier: 2
    min_swing_speed: 1
    max_spin_force: 10
    memory: 5
  - name: closer
    kind: velocicloser
    force_multiplier: 400
    memory: 3
`

const roundsYAML = `
rounds:
  - name: buckshot
    quantity: 8
    max_spread: 4
    speed: 60
    range: 40
    ignore: [player, weapon]
    total_damage: 80
    recoil_multiplier: 1
    load_cue: shell_in
    fire_cues: [boom_a, boom_b]
    modifiers: [drift, fade]
  - name: slug
    quantity: 1
    speed: 90
    lifetime: 3
    total_damage: 60
`

const weaponsYAML = `
weapons:
  - name: double_barrel
    kind: break_action
    hand: right
    mass: 3
    radius: 0.1
    chambers:
      - pos: [-0.02, 0, 0.1]
        extractor: {pos: [0, 0, -0.05], rot: [0, 180]}
      - pos: [0.02, 0, 0.1]
    muzzles:
      - pos: [-0.02, 0, 0.7]
      - pos: [0.02, 0, 0.7]
    trigger_fire: 0.9
    trigger_release: 0.5
    haptics:
      fire: {amplitude: 0.9, duration: 40ms}
    shake:
      radius: 30
      magnitude: 0.4
      duration: 150ms
    default_round: buckshot
    modifiers: [closer]
    break:
      pivot: [0, 0, 0.15]
      break_angle: 60
      eject_angle: 30
      lock_angle: 5
      spring: 200
      damping: 20
  - name: pistol
    hand: left
    chambers:
      - pos: [0, 0, 0]
    muzzles:
      - pos: [0, 0, 0.2]
    trigger_fire: 1
    trigger_release: 0.5
    default_round: slug
    modifiers: [closer]
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func dataConfig(t *testing.T, rounds string) config.DataConfig {
	dir := t.TempDir()
	return config.DataConfig{
		Modifiers: writeFile(t, dir, "modifiers.yaml", modifiersYAML),
		Rounds:    writeFile(t, dir, "rounds.yaml", rounds),
		Weapons:   writeFile(t, dir, "weapons.yaml", weaponsYAML),
	}
}

type fakeHost struct {
	function string
	params   map[string]float64
}

func (h *fakeHost) Modifier(function string, params map[string]float64) projectile.Modifier {
	h.function, h.params = function, params
	return &modifier.Homing{}
}

func TestLoadRoundTable(t *testing.T) {
	a, err := Load(dataConfig(t, roundsYAML), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if a.Rounds.Count() != 2 || a.Modifiers.Count() != 6 || a.Weapons.Count() != 2 {
		t.Fatalf("counts %d/%d/%d", a.Rounds.Count(), a.Modifiers.Count(), a.Weapons.Count())
	}
	if got := a.Rounds.Names(); got[0] != "buckshot" || got[1] != "slug" {
		t.Fatalf("names = %v", got)
	}

	p := a.Rounds.Get("buckshot")
	if p.Quantity != 8 || p.Range != 40 || p.TotalDamage != 80 || len(p.FireCues) != 2 {
		t.Fatalf("profile = %+v", p)
	}
	if !p.Ignore.Has(physics.LayerPlayer) || !p.Ignore.Has(physics.LayerWeapon) || p.Ignore.Has(physics.LayerTarget) {
		t.Fatalf("ignore mask = %b", p.Ignore)
	}
	if len(p.Modifiers) != 2 {
		t.Fatalf("modifier builders = %d", len(p.Modifiers))
	}
	m1, m2 := p.Modifiers[0](), p.Modifiers[0]()
	if m1 == m2 {
		t.Fatal("projectile modifiers shared between projectiles")
	}
	drift, ok := m1.(*modifier.ForceOverLifetime)
	if !ok || drift.Force != (mgl64.Vec3{0, 0, 2}) || drift.Progress.Basis != projectile.ByRange {
		t.Fatalf("drift = %#v", m1)
	}
	if drift.Curve.Evaluate(0.5) != 1 {
		t.Fatal("missing curve should default to a constant 1")
	}
	fade := p.Modifiers[1]().(*modifier.SpeedOverLifetime)
	if math.Abs(fade.Curve.Evaluate(0.5)-0.75) > 1e-12 {
		t.Fatalf("fade curve at 0.5 = %v", fade.Curve.Evaluate(0.5))
	}
	if a.Rounds.Get("nope") != nil {
		t.Fatal("unknown round found")
	}
}

func TestLoadRoundTableErrors(t *testing.T) {
	dir := t.TempDir()
	mods, err := LoadModifierTable(writeFile(t, dir, "m.yaml", modifiersYAML))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := LoadRoundTable(filepath.Join(dir, "missing.yaml"), mods, nil); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("missing file: %v", err)
	}
	cases := []struct {
		name, body string
		want       error
	}{
		{"unknown modifier", "rounds:\n  - {name: a, quantity: 1, speed: 1, modifiers: [nope]}\n", ErrUnknownModifier},
		{"weapon modifier", "rounds:\n  - {name: a, quantity: 1, speed: 1, modifiers: [swing]}\n", ErrUnknownModifier},
		{"unknown layer", "rounds:\n  - {name: a, quantity: 1, speed: 1, ignore: [sky]}\n", nil},
		{"zero quantity", "rounds:\n  - {name: a, speed: 1}\n", nil},
		{"script without host", "rounds:\n  - {name: a, quantity: 1, speed: 1, modifiers: [wobble]}\n", nil},
		{"malformed", "rounds: [\n", nil},
	}
	for _, c := range cases {
		_, err := LoadRoundTable(writeFile(t, dir, "r.yaml", c.body), mods, nil)
		if err == nil {
			t.Fatalf("%s: accepted", c.name)
		}
		if c.want != nil && !errors.Is(err, c.want) {
			t.Fatalf("%s: error = %v", c.name, err)
		}
	}
}

func TestScriptModifierUsesHost(t *testing.T) {
	host := &fakeHost{}
	body := roundsYAML + "  - {name: wobbly, quantity: 1, speed: 10, modifiers: [wobble]}\n"
	a, err := Load(dataConfig(t, body), host, nil)
	if err != nil {
		t.Fatal(err)
	}
	p := a.Rounds.Get("wobbly")
	if p == nil || len(p.Modifiers) != 1 {
		t.Fatal("wobbly round not built")
	}
	p.Modifiers[0]()
	if host.function != "wobble" || host.params["amplitude"] != 0.5 {
		t.Fatalf("host called with %q %v", host.function, host.params)
	}
}

func TestLoadModifierTableRejectsUnknownKind(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadModifierTable(writeFile(t, dir, "m.yaml", "modifiers:\n  - {name: x, kind: gravity_well}\n")); err == nil {
		t.Fatal("unknown kind accepted")
	}
	if _, err := LoadModifierTable(writeFile(t, dir, "m.yaml", "modifiers:\n  - {name: x, kind: script}\n")); err == nil {
		t.Fatal("script without a function accepted")
	}
}

func TestLoadWeaponTable(t *testing.T) {
	wt, err := LoadWeaponTable(writeFile(t, t.TempDir(), "w.yaml", weaponsYAML))
	if err != nil {
		t.Fatal(err)
	}
	db := wt.Get("double_barrel")
	if db == nil || db.Kind != KindBreakAction {
		t.Fatalf("double_barrel = %+v", db)
	}
	cfg := db.Config
	if cfg.Hand != feedback.HandRight || len(cfg.Chambers) != 2 || len(cfg.Muzzles) != 2 {
		t.Fatalf("config = %+v", cfg)
	}
	if cfg.Chambers[0].Extractor == nil || cfg.Chambers[1].Extractor != nil {
		t.Fatal("extractor only belongs to the first chamber")
	}
	if f := cfg.Chambers[0].Extractor.Forward(); f.Sub(mgl64.Vec3{0, 0, -1}).Len() > 1e-9 {
		t.Fatalf("extractor forward = %v", f)
	}
	if cfg.Haptics.Fire.Amplitude != 0.9 || cfg.Haptics.Fire.Duration.Milliseconds() != 40 {
		t.Fatalf("fire haptics = %+v", cfg.Haptics.Fire)
	}
	if cfg.Shake.Duration.Milliseconds() != 150 || db.Break.BreakAngle != 60 || db.Break.Pivot[2] != 0.15 {
		t.Fatal("shake or hinge not decoded")
	}
	if spec := db.BodySpec(vmath.Identity()); spec.Mass != 3 || spec.Layer != physics.LayerWeapon {
		t.Fatalf("body spec = %+v", spec)
	}
	if p := wt.Get("pistol"); p.Kind != KindStandard || p.Config.Hand != feedback.HandLeft {
		t.Fatalf("pistol = %+v", p)
	}
}

func TestLoadWeaponTableValidates(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"hand":     "weapons:\n  - {name: a, hand: middle}\n",
		"kind":     "weapons:\n  - {name: a, hand: left, kind: lever}\n",
		"trigger":  "weapons:\n  - {name: a, hand: left, trigger_fire: 0.2, trigger_release: 0.8}\n",
		"no break": "weapons:\n  - {name: a, hand: left, kind: break_action}\n",
		"angles":   "weapons:\n  - {name: a, hand: left, kind: break_action, break: {break_angle: 60, eject_angle: 5, lock_angle: 10}}\n",
		"no melee": "weapons:\n  - {name: a, hand: left, kind: melee}\n",
	} {
		if _, err := LoadWeaponTable(writeFile(t, dir, "w.yaml", body)); err == nil {
			t.Fatalf("%s: accepted", name)
		}
	}
}

func TestBuildWeapon(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	a, err := Load(dataConfig(t, roundsYAML), nil, zap.New(core))
	if err != nil {
		t.Fatal(err)
	}
	sc := scene.New(mgl64.Vec3{}, nil)
	world := ecs.NewWorld()
	sim := projectile.NewSimulator(world, sc, nil, nil, nil)
	factory := ammo.NewFactory(world, sc, nil, nil)
	deps := func(info *WeaponInfo) weapon.Deps {
		return weapon.Deps{
			Body:   sc.CreateBody(info.BodySpec(vmath.Identity())),
			Bodies: sc,
			Sim:    sim,
			Rand:   rand.New(rand.NewSource(1)),
		}
	}

	db, err := a.Build("double_barrel", deps(a.Weapons.Get("double_barrel")), factory, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := db.BreakAction(); !ok {
		t.Fatal("double_barrel is not a break action")
	}
	if db.Modifiers() != 1 {
		t.Fatalf("double_barrel modifiers = %d", db.Modifiers())
	}
	db.FullyLoadDefault()
	if db.LoadedCount() != 2 || db.Loaded()[0].Name() != "buckshot" {
		t.Fatalf("loaded %d rounds", db.LoadedCount())
	}

	pistol, err := a.Build("pistol", deps(a.Weapons.Get("pistol")), factory, nil)
	if err != nil {
		t.Fatal(err)
	}
	if pistol.Modifiers() != 0 {
		t.Fatal("velocicloser attached to a standard weapon")
	}
	if logs.FilterMessage("weapon modifier disabled").Len() != 1 {
		t.Fatal("refused modifier not logged")
	}
	if logs.FilterMessage("weapon built").Len() != 2 {
		t.Fatal("builds not logged")
	}

	if _, err := a.Build("bazooka", weapon.Deps{}, factory, nil); !errors.Is(err, ErrUnknownWeapon) {
		t.Fatalf("unknown weapon error = %v", err)
	}
}
