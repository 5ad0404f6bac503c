package data

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/skyshot/armory/internal/curve"
	"github.com/skyshot/armory/internal/feedback"
	"github.com/skyshot/armory/internal/physics"
	"github.com/skyshot/armory/internal/vmath"
	"github.com/skyshot/armory/internal/weapon"
)

// Weapon kinds accepted in weapons.yaml.
const (
	KindStandard    = "standard"
	KindBreakAction = "break_action"
	KindMelee       = "melee"
)

// poseYAML is a position plus pitch/yaw in degrees.
type poseYAML struct {
	Pos [3]float64 `yaml:"pos"`
	Rot [2]float64 `yaml:"rot"`
}

func (p poseYAML) pose() vmath.Pose {
	return vmath.Pose{Pos: vec(p.Pos), Rot: vmath.Euler(p.Rot[0], p.Rot[1])}
}

type chamberYAML struct {
	Pos       [3]float64 `yaml:"pos"`
	Rot       [2]float64 `yaml:"rot"`
	Extractor *poseYAML  `yaml:"extractor"`
}

type recoilYAML struct {
	Distance        float64     `yaml:"distance"`
	PositionCurve   curve.Curve `yaml:"position_curve"`
	Duration        float64     `yaml:"duration"`
	ScaleCurve      curve.Curve `yaml:"scale_curve"`
	ScaleDuration   float64     `yaml:"scale_duration"`
	MaxScale        float64     `yaml:"max_scale"`
	Torque          float64     `yaml:"torque"`
	AngularSpeed    float64     `yaml:"angular_speed"`
	MaxAngularSpeed float64     `yaml:"max_angular_speed"`
}

type shakeYAML struct {
	Radius    float64       `yaml:"radius"`
	Magnitude float64       `yaml:"magnitude"`
	Duration  time.Duration `yaml:"duration"`
	Curve     curve.Curve   `yaml:"curve"`
}

type hapticsYAML struct {
	Fire         feedback.HapticProfile `yaml:"fire"`
	TriggerClick feedback.HapticProfile `yaml:"trigger_click"`
	Eject        feedback.HapticProfile `yaml:"eject"`
	Close        feedback.HapticProfile `yaml:"close"`
}

type cuesYAML struct {
	TriggerClick string `yaml:"trigger_click"`
	Eject        string `yaml:"eject"`
	Close        string `yaml:"close"`
}

type breakYAML struct {
	Pivot         [3]float64 `yaml:"pivot"`
	BreakAngle    float64    `yaml:"break_angle"`
	EjectAngle    float64    `yaml:"eject_angle"`
	LockAngle     float64    `yaml:"lock_angle"`
	MaxAngle      float64    `yaml:"max_angle"`
	EjectStrength float64    `yaml:"eject_strength"`
	Spring        float64    `yaml:"spring"`
	Damping       float64    `yaml:"damping"`
	BarrelRadius  float64    `yaml:"barrel_radius"`
}

type bladeYAML struct {
	Offset [3]float64 `yaml:"offset"`
	Scale  float64    `yaml:"scale"`
}

type meleeYAML struct {
	ActivationSpeed float64     `yaml:"activation_speed"`
	ActivationTime  float64     `yaml:"activation_time"`
	LaunchStrength  float64     `yaml:"launch_strength"`
	DeployTime      float64     `yaml:"deploy_time"`
	DeployMotion    curve.Curve `yaml:"deploy_motion"`
	DeployScale     curve.Curve `yaml:"deploy_scale"`
	SheathMotion    curve.Curve `yaml:"sheath_motion"`
	SheathScale     curve.Curve `yaml:"sheath_scale"`
	Stowed          bladeYAML   `yaml:"stowed"`
	Deployed        bladeYAML   `yaml:"deployed"`

	DeployCue     string                 `yaml:"deploy_cue"`
	ActiveCue     string                 `yaml:"active_cue"`
	SheathCue     string                 `yaml:"sheath_cue"`
	DeployHaptics feedback.HapticProfile `yaml:"deploy_haptics"`
	SheathHaptics feedback.HapticProfile `yaml:"sheath_haptics"`
}

type weaponYAMLEntry struct {
	Name       string        `yaml:"name"`
	Kind       string        `yaml:"kind"`
	Hand       string        `yaml:"hand"`
	Mass       float64       `yaml:"mass"`
	Radius     float64       `yaml:"radius"`
	BaseOffset [3]float64    `yaml:"base_offset"`
	Chambers   []chamberYAML `yaml:"chambers"`
	Muzzles    []poseYAML    `yaml:"muzzles"`

	TriggerFire    float64 `yaml:"trigger_fire"`
	TriggerRelease float64 `yaml:"trigger_release"`
	InfiniteAmmo   bool    `yaml:"infinite_ammo"`
	EjectTorque    float64 `yaml:"eject_torque"`

	Recoil  recoilYAML  `yaml:"recoil"`
	Shake   shakeYAML   `yaml:"shake"`
	Haptics hapticsYAML `yaml:"haptics"`
	Cues    cuesYAML    `yaml:"cues"`

	DefaultRound string     `yaml:"default_round"`
	Modifiers    []string   `yaml:"modifiers"`
	Break        *breakYAML `yaml:"break"`
	Melee        *meleeYAML `yaml:"melee"`
}

type weaponListFile struct {
	Weapons []weaponYAMLEntry `yaml:"weapons"`
}

// WeaponInfo is a weapon recipe: its tuning plus what to build around it.
type WeaponInfo struct {
	Kind   string
	Config weapon.Config
	Break  weapon.BreakConfig // KindBreakAction only
	Melee  weapon.MeleeConfig // KindMelee only
	Mass   float64
	Radius float64

	DefaultRound string
	Modifiers    []string
}

// BodySpec describes the weapon's rigid body placed at pose.
func (w *WeaponInfo) BodySpec(pose vmath.Pose) physics.BodySpec {
	return physics.BodySpec{Pose: pose, Mass: w.Mass, Radius: w.Radius, Layer: physics.LayerWeapon}
}

// WeaponTable holds every weapon recipe by name.
type WeaponTable struct {
	weapons map[string]*WeaponInfo
}

// Get returns a weapon recipe by name, or nil if not found.
func (t *WeaponTable) Get(name string) *WeaponInfo {
	return t.weapons[name]
}

// Count returns the number of loaded weapons.
func (t *WeaponTable) Count() int {
	return len(t.weapons)
}

// LoadWeaponTable loads weapon recipes from a YAML file.
func LoadWeaponTable(path string) (*WeaponTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read weapons: %w", err)
	}
	var f weaponListFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse weapons: %w", err)
	}

	t := &WeaponTable{weapons: make(map[string]*WeaponInfo, len(f.Weapons))}
	for i := range f.Weapons {
		info, err := f.Weapons[i].info()
		if err != nil {
			return nil, fmt.Errorf("weapon %s: %w", f.Weapons[i].Name, err)
		}
		t.weapons[info.Config.Name] = info
	}
	return t, nil
}

func (e *weaponYAMLEntry) info() (*WeaponInfo, error) {
	hand, ok := feedback.ParseHand(e.Hand)
	if !ok {
		return nil, fmt.Errorf("unknown hand %q", e.Hand)
	}
	if e.Kind == "" {
		e.Kind = KindStandard
	}
	if e.TriggerRelease > e.TriggerFire {
		return nil, fmt.Errorf("trigger_release %v above trigger_fire %v", e.TriggerRelease, e.TriggerFire)
	}

	cfg := weapon.Config{
		Name:                    e.Name,
		Hand:                    hand,
		BaseOffset:              vec(e.BaseOffset),
		TriggerFireThreshold:    e.TriggerFire,
		TriggerReleaseThreshold: e.TriggerRelease,
		InfiniteAmmo:            e.InfiniteAmmo,
		EjectTorque:             e.EjectTorque,
		Recoil: weapon.RecoilConfig{
			Distance:        e.Recoil.Distance,
			PositionCurve:   e.Recoil.PositionCurve,
			Duration:        e.Recoil.Duration,
			ScaleCurve:      e.Recoil.ScaleCurve,
			ScaleDuration:   e.Recoil.ScaleDuration,
			MaxScale:        e.Recoil.MaxScale,
			Torque:          e.Recoil.Torque,
			AngularSpeed:    e.Recoil.AngularSpeed,
			MaxAngularSpeed: e.Recoil.MaxAngularSpeed,
		},
		Shake: weapon.ShakeConfig{
			Radius:    e.Shake.Radius,
			Magnitude: e.Shake.Magnitude,
			Duration:  e.Shake.Duration,
			Curve:     e.Shake.Curve,
		},
		Haptics: weapon.HapticSet{
			Fire:         e.Haptics.Fire,
			TriggerClick: e.Haptics.TriggerClick,
			Eject:        e.Haptics.Eject,
			Close:        e.Haptics.Close,
		},
		Cues: weapon.CueSet{
			TriggerClick: e.Cues.TriggerClick,
			Eject:        e.Cues.Eject,
			Close:        e.Cues.Close,
		},
	}
	for _, c := range e.Chambers {
		ch := weapon.Chamber{Local: poseYAML{Pos: c.Pos, Rot: c.Rot}.pose()}
		if c.Extractor != nil {
			ex := c.Extractor.pose()
			ch.Extractor = &ex
		}
		cfg.Chambers = append(cfg.Chambers, ch)
	}
	for _, m := range e.Muzzles {
		cfg.Muzzles = append(cfg.Muzzles, m.pose())
	}

	info := &WeaponInfo{
		Kind:         e.Kind,
		Config:       cfg,
		Mass:         e.Mass,
		Radius:       e.Radius,
		DefaultRound: e.DefaultRound,
		Modifiers:    e.Modifiers,
	}
	switch e.Kind {
	case KindStandard:
	case KindBreakAction:
		if e.Break == nil {
			return nil, fmt.Errorf("break_action without a break section")
		}
		b := e.Break
		if b.LockAngle >= b.EjectAngle || b.EjectAngle > b.BreakAngle {
			return nil, fmt.Errorf("hinge angles must satisfy lock < eject <= break")
		}
		info.Break = weapon.BreakConfig{
			Pivot:         vec(b.Pivot),
			BreakAngle:    b.BreakAngle,
			EjectAngle:    b.EjectAngle,
			LockAngle:     b.LockAngle,
			MaxAngle:      b.MaxAngle,
			EjectStrength: b.EjectStrength,
			Spring:        b.Spring,
			Damping:       b.Damping,
			BarrelRadius:  b.BarrelRadius,
		}
	case KindMelee:
		if e.Melee == nil {
			return nil, fmt.Errorf("melee without a melee section")
		}
		m := e.Melee
		info.Melee = weapon.MeleeConfig{
			ActivationSpeed: m.ActivationSpeed,
			ActivationTime:  m.ActivationTime,
			LaunchStrength:  m.LaunchStrength,
			DeployTime:      m.DeployTime,
			DeployMotion:    m.DeployMotion,
			DeployScale:     m.DeployScale,
			SheathMotion:    m.SheathMotion,
			SheathScale:     m.SheathScale,
			Stowed:          weapon.BladeDims{Offset: vec(m.Stowed.Offset), Scale: m.Stowed.Scale},
			Deployed:        weapon.BladeDims{Offset: vec(m.Deployed.Offset), Scale: m.Deployed.Scale},
			DeployCue:       m.DeployCue,
			ActiveCue:       m.ActiveCue,
			SheathCue:       m.SheathCue,
			DeployHaptics:   m.DeployHaptics,
			SheathHaptics:   m.SheathHaptics,
		}
	default:
		return nil, fmt.Errorf("unknown kind %q", e.Kind)
	}
	return info, nil
}
