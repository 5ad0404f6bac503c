package data

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/skyshot/armory/internal/ammo"
	"github.com/skyshot/armory/internal/physics"
)

type roundYAMLEntry struct {
	Name      string   `yaml:"name"`
	Quantity  int      `yaml:"quantity"`
	MaxSpread float64  `yaml:"max_spread"`
	Speed     float64  `yaml:"speed"`
	Range     float64  `yaml:"range"`
	Lifetime  float64  `yaml:"lifetime"`
	Radius    float64  `yaml:"radius"`
	BarrelGap float64  `yaml:"barrel_gap"`
	Ignore    []string `yaml:"ignore"`

	TotalDamage      float64 `yaml:"total_damage"`
	TotalKick        float64 `yaml:"total_kick"`
	KickStrength     float64 `yaml:"kick_strength"`
	RecoilMultiplier float64 `yaml:"recoil_multiplier"`

	ShellGravity    float64 `yaml:"shell_gravity"`
	EjectedLifetime float64 `yaml:"ejected_lifetime"`
	MaxAngularSpeed float64 `yaml:"max_angular_speed"`
	Mass            float64 `yaml:"mass"`
	ShellRadius     float64 `yaml:"shell_radius"`

	LoadCue   string   `yaml:"load_cue"`
	FireCues  []string `yaml:"fire_cues"`
	Modifiers []string `yaml:"modifiers"`
}

type roundListFile struct {
	Rounds []roundYAMLEntry `yaml:"rounds"`
}

// RoundTable holds every ammunition profile by name.
type RoundTable struct {
	rounds map[string]*ammo.Profile
}

// Get returns a profile by name, or nil if not found.
func (t *RoundTable) Get(name string) *ammo.Profile {
	return t.rounds[name]
}

// Count returns the number of loaded rounds.
func (t *RoundTable) Count() int {
	return len(t.rounds)
}

// Names returns the round names in sorted order.
func (t *RoundTable) Names() []string {
	out := make([]string, 0, len(t.rounds))
	for name := range t.rounds {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Template returns a bodiless round of the named profile, suitable as a
// weapon's default round or a reload volume's template.
func (t *RoundTable) Template(name string, f *ammo.Factory) (*ammo.Round, error) {
	p := t.Get(name)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRound, name)
	}
	return f.Template(p), nil
}

// LoadRoundTable loads ammunition from a YAML file. Modifier names are
// resolved against mods; scripts may be nil when no round uses a script
// modifier.
func LoadRoundTable(path string, mods *ModifierTable, scripts ScriptHost) (*RoundTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rounds: %w", err)
	}
	var f roundListFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse rounds: %w", err)
	}

	t := &RoundTable{rounds: make(map[string]*ammo.Profile, len(f.Rounds))}
	for _, e := range f.Rounds {
		if e.Quantity <= 0 {
			return nil, fmt.Errorf("round %s: quantity must be positive", e.Name)
		}
		if e.Speed <= 0 {
			return nil, fmt.Errorf("round %s: speed must be positive", e.Name)
		}
		p := &ammo.Profile{
			Name:             e.Name,
			Quantity:         e.Quantity,
			MaxSpread:        e.MaxSpread,
			Speed:            e.Speed,
			Range:            e.Range,
			Lifetime:         e.Lifetime,
			Radius:           e.Radius,
			BarrelGap:        e.BarrelGap,
			TotalDamage:      e.TotalDamage,
			TotalKick:        e.TotalKick,
			KickStrength:     e.KickStrength,
			RecoilMultiplier: e.RecoilMultiplier,
			ShellGravity:     e.ShellGravity,
			EjectedLifetime:  e.EjectedLifetime,
			MaxAngularSpeed:  e.MaxAngularSpeed,
			Mass:             e.Mass,
			ShellRadius:      e.ShellRadius,
			LoadCue:          e.LoadCue,
			FireCues:         e.FireCues,
		}
		for _, name := range e.Ignore {
			l, ok := physics.ParseLayer(name)
			if !ok {
				return nil, fmt.Errorf("round %s: unknown layer %q", e.Name, name)
			}
			p.Ignore = p.Ignore.With(l)
		}
		for _, name := range e.Modifiers {
			build, err := mods.Projectile(name, scripts)
			if err != nil {
				return nil, fmt.Errorf("round %s: %w", e.Name, err)
			}
			p.Modifiers = append(p.Modifiers, build)
		}
		t.rounds[p.Name] = p
	}
	return t, nil
}

