// Package integrate provides the fixed-step forward Euler scheme used by
// the continuous population models.
package integrate

import "math"

// Deriv evaluates the time derivative of a population vector.
type Deriv func(x []float64) []float64

// Substeps returns how many Euler substeps partition one visualization
// step of the given duration. A non-positive or oversized dt degrades to a
// single coarse step rather than failing; accuracy suffers, correctness of
// the partition does not.
func Substeps(duration, dt float64) int {
	if dt <= 0 || dt >= duration {
		return 1
	}
	return int(math.Ceil(duration / dt))
}

// Euler advances x over the full duration using fixed substeps of size
// duration/Substeps(duration, dt), so the duration is covered exactly even
// when it is not a multiple of dt. Every substep floors both populations
// at zero before the next derivative evaluation. The input is not mutated.
func Euler(f Deriv, x []float64, duration, dt float64) []float64 {
	n := Substeps(duration, dt)
	h := duration / float64(n)

	cur := make([]float64, len(x))
	copy(cur, x)

	for s := 0; s < n; s++ {
		dx := f(cur)
		for i := range cur {
			cur[i] += h * dx[i]
			if cur[i] < 0 {
				cur[i] = 0
			}
		}
	}
	return cur
}
