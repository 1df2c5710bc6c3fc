package config

var Presets = map[string]map[string]*Config{
	"exponential": {
		"boom": {
			Model: "exponential", Dt: 0.02, TimeStep: 0.1,
			Params: map[string]float64{"birth_rate": 0.5, "death_rate": 0.1, "n0": 10},
		},
		"decline": {
			Model: "exponential", Dt: 0.02, TimeStep: 0.1,
			Params: map[string]float64{"birth_rate": 0.1, "death_rate": 0.3, "n0": 500},
		},
	},
	"logistic": {
		"approach": {
			Model: "logistic", Dt: 0.02, TimeStep: 0.1,
			Params: map[string]float64{"birth_rate": 0.4, "death_rate": 0.1, "k": 1000, "n0": 10},
		},
		"overshoot": {
			Model: "logistic", Dt: 0.02, TimeStep: 0.1,
			Params: map[string]float64{"birth_rate": 2.2, "death_rate": 0.1, "k": 1000, "n0": 100},
		},
		"equilibrium": {
			Model: "logistic", Dt: 0.02, TimeStep: 0.1,
			Params: map[string]float64{"birth_rate": 0.4, "death_rate": 0.1, "k": 1000, "n0": 1000},
		},
	},
	"predator_prey": {
		"cycles": {
			Model: "predator_prey", Dt: 0.01, TimeStep: 0.1,
			Params: map[string]float64{"a": 1.1, "b": 0.4, "c": 0.1, "d": 0.4, "n0": 10, "p0": 10},
		},
		"crash": {
			Model: "predator_prey", Dt: 0.01, TimeStep: 0.1,
			Params: map[string]float64{"a": 0.6, "b": 1.2, "c": 0.3, "d": 0.2, "n0": 5, "p0": 20},
		},
	},
	"competition": {
		"coexist": {
			Model: "competition", Dt: 0.02, TimeStep: 0.1,
			Params: map[string]float64{"r1": 0.8, "r2": 0.6, "k1": 1000, "k2": 800, "alpha12": 0.5, "alpha21": 0.7, "n1_0": 50, "n2_0": 50},
		},
		"exclusion": {
			Model: "competition", Dt: 0.02, TimeStep: 0.1,
			Params: map[string]float64{"r1": 0.8, "r2": 0.6, "k1": 1000, "k2": 800, "alpha12": 1.6, "alpha21": 1.4, "n1_0": 60, "n2_0": 50},
		},
	},
}

func GetPreset(mdl, preset string) *Config {
	modelPresets, ok := Presets[mdl]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(mdl string) []string {
	modelPresets, ok := Presets[mdl]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
