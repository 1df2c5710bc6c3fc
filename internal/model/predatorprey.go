package model

import "github.com/san-kum/popsim/internal/integrate"

// PredatorPreyModel is the Lotka-Volterra predator-prey system,
//
//	dN/dt = a*N - b*N*P
//	dP/dt = c*N*P - d*P
//
// integrated with fixed-step forward Euler over one visualization step.
type PredatorPreyModel struct{}

func NewPredatorPrey() *PredatorPreyModel { return &PredatorPreyModel{} }

func (m *PredatorPreyModel) Kind() Kind       { return PredatorPrey }
func (m *PredatorPreyModel) Dim() int         { return 2 }
func (m *PredatorPreyModel) Labels() []string { return []string{"N", "P"} }

func (m *PredatorPreyModel) DefaultParams() Params {
	return Params{
		ParamPreyGrowth:    1.1,
		ParamPredation:     0.4,
		ParamConversion:    0.1,
		ParamPredatorDeath: 0.4,
		ParamN0:            10,
		ParamP0:            10,
		ParamDt:            0.02,
		ParamTimeStep:      0.1,
	}
}

func (m *PredatorPreyModel) Seed(p Params) Point {
	return Point{Time: 0, State: State{p[ParamN0], p[ParamP0]}}
}

func (m *PredatorPreyModel) Step(p Params, x State) State {
	if x.Extinct() {
		// Neither species can be reintroduced by the model itself.
		return x.Clone().ClampNonNegative()
	}
	a, b := p[ParamPreyGrowth], p[ParamPredation]
	c, d := p[ParamConversion], p[ParamPredatorDeath]

	deriv := func(s []float64) []float64 {
		n, pr := s[0], s[1]
		return []float64{
			a*n - b*n*pr,
			c*n*pr - d*pr,
		}
	}
	return integrate.Euler(deriv, x, p.TimeStep(), p.Dt())
}
