package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/forage/allocation"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := allocation.Params{
		MaxDailyActions:  50,
		TreeFellingCost:  4,
		AppleBaseUtility: 100,
		WoodBaseUtility:  150,
		SimulationDays:   30,
	}
	if got := cfg.Params(); got != want {
		t.Errorf("Params() = %+v, want %+v", got, want)
	}
	if cfg.Decision.Apples != 10 {
		t.Errorf("decision apples = %d, want 10", cfg.Decision.Apples)
	}
	if cfg.Grid.Divisions != allocation.DefaultDivisions {
		t.Errorf("grid divisions = %d, want %d", cfg.Grid.Divisions, allocation.DefaultDivisions)
	}
	if cfg.Derived.MaxTrees != 12 {
		t.Errorf("derived max trees = %d, want 12", cfg.Derived.MaxTrees)
	}
	if cfg.Derived.AppleStep != 1 || cfg.Derived.TreeStep != 1 {
		t.Errorf("derived steps = (%d, %d), want (1, 1)", cfg.Derived.AppleStep, cfg.Derived.TreeStep)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "forage.yaml")
	overlay := "simulation:\n  max_daily_actions: 5000\n  tree_felling_cost: 4\ndecision:\n  apples: 100\n"
	if err := os.WriteFile(path, []byte(overlay), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Simulation.MaxDailyActions != 5000 {
		t.Errorf("max daily actions = %d, want 5000", cfg.Simulation.MaxDailyActions)
	}
	// Untouched fields keep their defaults.
	if cfg.Simulation.WoodBaseUtility != 150 {
		t.Errorf("wood base utility = %v, want 150", cfg.Simulation.WoodBaseUtility)
	}
	if cfg.Decision.Apples != 100 {
		t.Errorf("apples = %d, want 100", cfg.Decision.Apples)
	}
	if cfg.Derived.AppleStep != 100 || cfg.Derived.TreeStep != 25 {
		t.Errorf("derived steps = (%d, %d), want (100, 25)", cfg.Derived.AppleStep, cfg.Derived.TreeStep)
	}
}

func TestLoadZeroCostLeavesDerivedEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("simulation:\n  tree_felling_cost: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Derived.MaxTrees != 0 {
		t.Errorf("derived max trees = %d, want 0", cfg.Derived.MaxTrees)
	}
	if err := cfg.Params().Validate(); err == nil {
		t.Error("expected validation error for zero tree felling cost")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("simulation: [\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Simulation.TreeFellingCost = 7
	cfg.Decision.Apples = 3

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if back.Simulation.TreeFellingCost != 7 || back.Decision.Apples != 3 {
		t.Errorf("round trip lost values: %+v", back)
	}
}

func TestCfgBeforeInitPanics(t *testing.T) {
	saved := global
	global = nil
	defer func() {
		global = saved
		if recover() == nil {
			t.Error("Cfg() did not panic before Init")
		}
	}()
	Cfg()
}
