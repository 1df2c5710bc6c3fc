package model

import "math"

// Kind identifies one of the supported population models.
type Kind string

const (
	Exponential  Kind = "exponential"
	Logistic     Kind = "logistic"
	PredatorPrey Kind = "predator_prey"
	Competition  Kind = "competition"
)

// Parameter names shared across models. Each kind reads a subset; the two
// time settings apply to every continuous model.
const (
	ParamBirthRate = "birth_rate"
	ParamDeathRate = "death_rate"
	ParamK         = "k"
	ParamN0        = "n0"

	ParamPreyGrowth    = "a"
	ParamPredation     = "b"
	ParamConversion    = "c"
	ParamPredatorDeath = "d"
	ParamP0            = "p0"

	ParamR1      = "r1"
	ParamR2      = "r2"
	ParamK1      = "k1"
	ParamK2      = "k2"
	ParamAlpha12 = "alpha12"
	ParamAlpha21 = "alpha21"
	ParamN10     = "n1_0"
	ParamN20     = "n2_0"

	ParamDt       = "dt"
	ParamTimeStep = "time_step"
)

// Params is a flat parameter set for one model kind. The integration
// settings dt and time_step live alongside the biological parameters.
type Params map[string]float64

func (p Params) Clone() Params {
	c := make(Params, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

// Dt returns the internal integration step, falling back to the
// visualization step when unset.
func (p Params) Dt() float64 {
	if dt, ok := p[ParamDt]; ok && dt > 0 {
		return dt
	}
	return p[ParamTimeStep]
}

// TimeStep returns the visualization step size.
func (p Params) TimeStep() float64 {
	return p[ParamTimeStep]
}

// State is a population vector whose length depends on the model kind:
// one entry for exponential/logistic, two for predator-prey (prey,
// predator) and competition (N1, N2).
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

// IsValid reports whether every component is finite.
func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// ClampNonNegative floors every component at zero, in place. Populations
// cannot go negative; this is a deliberate floor, not an error.
func (s State) ClampNonNegative() State {
	for i, v := range s {
		if v < 0 {
			s[i] = 0
		}
	}
	return s
}

// Extinct reports whether any component has hit zero or below. For the
// coupled models extinction is absorbing for the whole system.
func (s State) Extinct() bool {
	for _, v := range s {
		if v <= 0 {
			return true
		}
	}
	return false
}

// Point is one trajectory sample.
type Point struct {
	Time  float64
	State State
}

// Model is implemented by each population model kind. Step advances one
// visualization time step and is pure: it never mutates its input and may
// return non-finite values, which the caller is expected to reject.
type Model interface {
	Kind() Kind
	Dim() int
	Labels() []string
	DefaultParams() Params
	Seed(p Params) Point
	Step(p Params, x State) State
}
