package model

import "github.com/san-kum/popsim/internal/integrate"

// CompetitionModel is the Lotka-Volterra interspecific competition system,
//
//	dN1/dt = r1*N1*(1 - (N1 + alpha12*N2)/K1)
//	dN2/dt = r2*N2*(1 - (N2 + alpha21*N1)/K2)
//
// integrated with the same fixed-step Euler scheme as predator-prey.
type CompetitionModel struct{}

func NewCompetition() *CompetitionModel { return &CompetitionModel{} }

func (m *CompetitionModel) Kind() Kind       { return Competition }
func (m *CompetitionModel) Dim() int         { return 2 }
func (m *CompetitionModel) Labels() []string { return []string{"N1", "N2"} }

func (m *CompetitionModel) DefaultParams() Params {
	return Params{
		ParamR1:       0.8,
		ParamR2:       0.6,
		ParamK1:       1000,
		ParamK2:       800,
		ParamAlpha12:  0.5,
		ParamAlpha21:  0.7,
		ParamN10:      50,
		ParamN20:      50,
		ParamDt:       0.02,
		ParamTimeStep: 0.1,
	}
}

func (m *CompetitionModel) Seed(p Params) Point {
	return Point{Time: 0, State: State{p[ParamN10], p[ParamN20]}}
}

func (m *CompetitionModel) Step(p Params, x State) State {
	if x.Extinct() {
		return x.Clone().ClampNonNegative()
	}
	r1, r2 := p[ParamR1], p[ParamR2]
	k1, k2 := p[ParamK1], p[ParamK2]
	a12, a21 := p[ParamAlpha12], p[ParamAlpha21]

	deriv := func(s []float64) []float64 {
		n1, n2 := s[0], s[1]
		return []float64{
			r1 * n1 * (1 - (n1+a12*n2)/k1),
			r2 * n2 * (1 - (n2+a21*n1)/k2),
		}
	}
	return integrate.Euler(deriv, x, p.TimeStep(), p.Dt())
}
