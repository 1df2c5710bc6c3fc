package model

// LogisticModel is discrete-time growth toward a carrying capacity,
// N' = N*(1 + r*(1 - N/K)) with r = birth_rate - death_rate. Behavior at
// K == 0 is undefined; validation at the boundary rejects that parameter
// set before it reaches Step.
type LogisticModel struct{}

func NewLogistic() *LogisticModel { return &LogisticModel{} }

func (m *LogisticModel) Kind() Kind       { return Logistic }
func (m *LogisticModel) Dim() int         { return 1 }
func (m *LogisticModel) Labels() []string { return []string{"N"} }

func (m *LogisticModel) DefaultParams() Params {
	return Params{
		ParamBirthRate: 0.4,
		ParamDeathRate: 0.1,
		ParamK:         1000,
		ParamN0:        10,
		ParamDt:        0.02,
		ParamTimeStep:  0.1,
	}
}

func (m *LogisticModel) Seed(p Params) Point {
	return Point{Time: 0, State: State{p[ParamN0]}}
}

func (m *LogisticModel) Step(p Params, x State) State {
	n := x[0]
	if n <= 0 {
		return State{0}
	}
	r := p[ParamBirthRate] - p[ParamDeathRate]
	k := p[ParamK]
	return State{n * (1 + r*(1-n/k))}.ClampNonNegative()
}
