package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "armory.toml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadOverridesDefaults(t *testing.T) {
	p := writeConfig(t, `
[simulation]
tick_rate = "10ms"
seed = 7

[logging]
format = "json"

[range]
loadout = "pump"

[[range.targets]]
name = "plate"
position = [0.0, 1.5, 20.0]
radius = 0.5

[[range.script]]
at = "1s"
action = "Trigger"
value = 1.0
hand = "right"
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Simulation.TickRate != 10*time.Millisecond || cfg.Simulation.Seed != 7 {
		t.Fatalf("simulation = %+v", cfg.Simulation)
	}
	if cfg.Simulation.MaxCatchUp != 5 || cfg.Data.Rounds != "data/yaml/rounds.yaml" {
		t.Fatal("defaults lost on partial config")
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "info" {
		t.Fatalf("logging = %+v", cfg.Logging)
	}
	if len(cfg.Range.Targets) != 1 || cfg.Range.Targets[0].Position[2] != 20 {
		t.Fatalf("targets = %+v", cfg.Range.Targets)
	}
	if len(cfg.Range.Script) != 1 || cfg.Range.Script[0].At != time.Second {
		t.Fatalf("script = %+v", cfg.Range.Script)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("missing file error = %v", err)
	}
	if _, err := Load(writeConfig(t, "[simulation\n")); err == nil {
		t.Fatal("malformed toml accepted")
	}
	if _, err := Load(writeConfig(t, "[simulation]\ntick_rate = \"0s\"\n")); err == nil {
		t.Fatal("zero tick rate accepted")
	}
}

func TestValidateFillsDerivedFields(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[simulation]\nframe_rate = \"0s\"\njournal_interval = 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Simulation.FrameRate != cfg.Simulation.TickRate || cfg.Simulation.JournalInterval != 1 {
		t.Fatalf("simulation = %+v", cfg.Simulation)
	}
}
