package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/san-kum/popsim/internal/model"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "logistic" {
		t.Errorf("expected model logistic, got %s", cfg.Model)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.TimeStep <= 0 {
		t.Error("time_step should be positive")
	}
	if cfg.Speed < 1 || cfg.Speed > 100 {
		t.Errorf("speed out of range: %d", cfg.Speed)
	}
}

func TestBuildParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dt = 0.05
	cfg.Params["k"] = 500

	p, err := cfg.BuildParams()
	if err != nil {
		t.Fatalf("BuildParams: %v", err)
	}

	if p[model.ParamK] != 500 {
		t.Errorf("expected k=500, got %f", p[model.ParamK])
	}
	if p[model.ParamDt] != 0.05 {
		t.Errorf("expected dt=0.05, got %f", p[model.ParamDt])
	}
	// Untouched defaults survive the merge.
	if p[model.ParamBirthRate] != 0.4 {
		t.Errorf("expected default birth_rate, got %f", p[model.ParamBirthRate])
	}
}

func TestBuildParamsRejectsUnknownParam(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params["gravity"] = 9.81

	if _, err := cfg.BuildParams(); err == nil {
		t.Error("expected error for unknown parameter")
	}
}

func TestBuildParamsRejectsBadK(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params["k"] = 0

	_, err := cfg.BuildParams()
	if !errors.Is(err, model.ErrParamBounds) {
		t.Errorf("expected ErrParamBounds, got %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("predator_prey", "cycles")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Params["a"] != 1.1 {
		t.Errorf("expected a=1.1, got %f", cfg.Params["a"])
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("predator_prey", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "cycles") != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestListPresets(t *testing.T) {
	for _, kind := range model.Kinds() {
		if len(ListPresets(string(kind))) == 0 {
			t.Errorf("expected presets for %s", kind)
		}
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestPresetsBuildValidParams(t *testing.T) {
	for mdl, presets := range Presets {
		for name, preset := range presets {
			cfg := DefaultConfig()
			cfg.Model = preset.Model
			cfg.Dt = preset.Dt
			cfg.TimeStep = preset.TimeStep
			cfg.Params = preset.Params
			if _, err := cfg.BuildParams(); err != nil {
				t.Errorf("preset %s/%s: %v", mdl, name, err)
			}
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "popsim.yaml")

	cfg := DefaultConfig()
	cfg.Model = "competition"
	cfg.Speed = 80
	cfg.Params["alpha12"] = 1.2

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Model != "competition" || loaded.Speed != 80 {
		t.Errorf("unexpected loaded config: %+v", loaded)
	}
	if loaded.Params["alpha12"] != 1.2 {
		t.Errorf("expected alpha12=1.2, got %f", loaded.Params["alpha12"])
	}
}
