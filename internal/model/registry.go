package model

import "fmt"

var factories = map[Kind]func() Model{
	Exponential:  func() Model { return NewExponential() },
	Logistic:     func() Model { return NewLogistic() },
	PredatorPrey: func() Model { return NewPredatorPrey() },
	Competition:  func() Model { return NewCompetition() },
}

var descriptions = map[Kind]string{
	Exponential:  "unbounded discrete growth, N' = N*(1+r)",
	Logistic:     "discrete growth toward carrying capacity K",
	PredatorPrey: "Lotka-Volterra predator-prey (continuous, Euler)",
	Competition:  "Lotka-Volterra two-species competition (continuous, Euler)",
}

// Kinds returns the supported model kinds in a fixed display order.
func Kinds() []Kind {
	return []Kind{Exponential, Logistic, PredatorPrey, Competition}
}

// Get returns a model instance for the kind.
func Get(kind Kind) (Model, error) {
	fn, ok := factories[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return fn(), nil
}

// Defaults returns the default parameter set for the kind.
func Defaults(kind Kind) (Params, error) {
	m, err := Get(kind)
	if err != nil {
		return nil, err
	}
	return m.DefaultParams(), nil
}

// Seed builds the time-zero trajectory point for the kind from its
// initial-condition parameters. Assumes a well-formed parameter set;
// use Validate at the boundary first.
func Seed(kind Kind, p Params) (Point, error) {
	m, err := Get(kind)
	if err != nil {
		return Point{}, err
	}
	return m.Seed(p), nil
}

// Describe returns a one-line description of the kind.
func Describe(kind Kind) string {
	return descriptions[kind]
}

// required parameters per kind, beyond the shared time settings.
var required = map[Kind][]string{
	Exponential:  {ParamBirthRate, ParamDeathRate, ParamN0},
	Logistic:     {ParamBirthRate, ParamDeathRate, ParamK, ParamN0},
	PredatorPrey: {ParamPreyGrowth, ParamPredation, ParamConversion, ParamPredatorDeath, ParamN0, ParamP0},
	Competition:  {ParamR1, ParamR2, ParamK1, ParamK2, ParamAlpha12, ParamAlpha21, ParamN10, ParamN20},
}

// positive parameters: zero or below is rejected outright.
var positive = map[Kind][]string{
	Logistic:    {ParamK},
	Competition: {ParamK1, ParamK2},
}

// Validate fail-fasts on malformed parameter sets: missing fields,
// non-positive carrying capacities, non-positive dt or time_step. It does
// NOT reject dt > time_step — the integrator degrades to a single coarse
// substep in that case, a documented accuracy tradeoff.
func Validate(kind Kind, p Params) error {
	if _, ok := factories[kind]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	for _, name := range required[kind] {
		if _, ok := p[name]; !ok {
			return fmt.Errorf("%w: %s (%s)", ErrMissingParam, name, kind)
		}
	}
	for _, name := range positive[kind] {
		if p[name] <= 0 {
			return fmt.Errorf("%w: %s must be > 0, got %g", ErrParamBounds, name, p[name])
		}
	}
	for _, name := range []string{ParamDt, ParamTimeStep} {
		v, ok := p[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingParam, name)
		}
		if v <= 0 {
			return fmt.Errorf("%w: %s must be > 0, got %g", ErrParamBounds, name, v)
		}
	}
	return nil
}
