// Package config loads popsim configuration from YAML and provides the
// built-in presets.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/popsim/internal/model"
)

const (
	DefaultDt       = 0.02
	DefaultTimeStep = 0.1
	DefaultSpeed    = 50
)

// Config is the user-facing configuration surface: the active model, the
// 1-100 speed value, the two time-scale settings, and per-model parameter
// overrides applied on top of the model's defaults.
type Config struct {
	Model    string             `yaml:"model"`
	Speed    int                `yaml:"speed"`
	Dt       float64            `yaml:"dt"`
	TimeStep float64            `yaml:"time_step"`
	Params   map[string]float64 `yaml:"params"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:    string(model.Logistic),
		Speed:    DefaultSpeed,
		Dt:       DefaultDt,
		TimeStep: DefaultTimeStep,
		Params:   map[string]float64{},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Kind returns the configured model kind.
func (c *Config) Kind() model.Kind {
	return model.Kind(c.Model)
}

// BuildParams merges the config onto the model defaults: defaults first,
// then dt/time_step, then per-parameter overrides. The result is
// validated so malformed sets fail at the boundary rather than mid-run.
func (c *Config) BuildParams() (model.Params, error) {
	kind := c.Kind()
	p, err := model.Defaults(kind)
	if err != nil {
		return nil, err
	}
	if c.Dt != 0 {
		p[model.ParamDt] = c.Dt
	}
	if c.TimeStep != 0 {
		p[model.ParamTimeStep] = c.TimeStep
	}
	for name, v := range c.Params {
		if _, ok := p[name]; !ok {
			return nil, fmt.Errorf("config: unknown parameter %q for model %s", name, kind)
		}
		p[name] = v
	}
	if err := model.Validate(kind, p); err != nil {
		return nil, err
	}
	return p, nil
}
