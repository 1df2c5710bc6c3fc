// Package model defines the population models supported by popsim.
//
// The package provides the fundamental types for discrete- and
// continuous-time population dynamics:
//
//   - [Kind]: one of the four supported model variants
//   - [Params]: flat name -> value parameter set for a model
//   - [State]: population vector (per-kind dimension and labels)
//   - [Point]: one trajectory sample (simulation time + state)
//   - [Model]: seed and single-step interface implemented by each kind
//
// Step functions are pure: they always return a numeric result, even when
// that result is non-finite. Rejecting a bad step is the caller's job
// (see the driver package), which keeps the models testable independent
// of failure policy.
//
// # Example
//
//	m, _ := model.Get(model.Logistic)
//	p := m.DefaultParams()
//	pt := m.Seed(p)
//	next := m.Step(p, pt.State)
//
// Continuous models (predator-prey, competition) integrate with fixed-step
// forward Euler over one visualization step; see the integrate package.
package model
