package model

// ExponentialModel is unbounded discrete-time growth,
// N' = N*(1 + birth_rate - death_rate).
type ExponentialModel struct{}

func NewExponential() *ExponentialModel { return &ExponentialModel{} }

func (m *ExponentialModel) Kind() Kind       { return Exponential }
func (m *ExponentialModel) Dim() int         { return 1 }
func (m *ExponentialModel) Labels() []string { return []string{"N"} }

func (m *ExponentialModel) DefaultParams() Params {
	return Params{
		ParamBirthRate: 0.3,
		ParamDeathRate: 0.1,
		ParamN0:        50,
		ParamDt:        0.02,
		ParamTimeStep:  0.1,
	}
}

func (m *ExponentialModel) Seed(p Params) Point {
	return Point{Time: 0, State: State{p[ParamN0]}}
}

func (m *ExponentialModel) Step(p Params, x State) State {
	n := x[0]
	if n <= 0 {
		// Extinction is absorbing.
		return State{0}
	}
	r := p[ParamBirthRate] - p[ParamDeathRate]
	return State{n * (1 + r)}.ClampNonNegative()
}
