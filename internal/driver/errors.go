package driver

import (
	"errors"
	"fmt"

	"github.com/san-kum/popsim/internal/model"
)

// ErrNonFinite indicates a step produced NaN or Inf. The tick that hit it
// committed nothing; the simulation keeps accepting later ticks.
var ErrNonFinite = errors.New("driver: non-finite step result")

// StepError carries the context of a rejected tick.
type StepError struct {
	Tick  int
	Time  float64
	State model.State
}

func (e *StepError) Error() string {
	return fmt.Sprintf("tick %d (t=%.4f): %v", e.Tick, e.Time, ErrNonFinite)
}

func (e *StepError) Unwrap() error { return ErrNonFinite }
