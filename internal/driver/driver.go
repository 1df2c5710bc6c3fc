// Package driver owns the trajectory and the play/pause state machine.
//
// The driver does not schedule itself: a timer (the TUI tick loop, or a
// plain loop in headless mode) calls Tick at the configured interval, and
// Tick no-ops unless the driver is Running. Ticks are serialized; a tick
// either commits exactly one trajectory point or commits nothing.
package driver

import (
	"sync"
	"time"

	"github.com/san-kum/popsim/internal/model"
)

// MaxTrajectory bounds the trajectory length; the oldest points are
// evicted once the cap is exceeded so memory and render cost stay
// constant under indefinite play.
const MaxTrajectory = 200

// DefaultSpeed is the initial 1-100 speed setting.
const DefaultSpeed = 50

// ParamsFn supplies the driver with a fresh parameter snapshot. It is
// called on every tick, not captured at Start, so tuning a parameter
// during playback takes effect on the very next tick.
type ParamsFn func() model.Params

// Observer receives committed points and rejected ticks.
type Observer interface {
	OnPoint(p model.Point)
	OnInvalid(err *StepError)
}

// Driver advances the active model one visualization step per tick and
// maintains the bounded trajectory. Safe for concurrent use.
type Driver struct {
	mu sync.Mutex

	mdl       model.Model
	params    ParamsFn
	traj      []model.Point
	simTime   float64
	ticks     int
	running   bool
	speed     int
	invalid   int
	observers []Observer
}

// New builds a driver seeded for the given kind. The parameter set
// returned by params is validated before seeding.
func New(kind model.Kind, params ParamsFn) (*Driver, error) {
	d := &Driver{params: params, speed: DefaultSpeed}
	if err := d.Reset(kind); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Driver) AddObserver(o Observer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.observers = append(d.observers, o)
}

// Start begins accepting timer ticks. A Start while already Running is a
// no-op, not an error.
func (d *Driver) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.running = true
}

// Pause stops accepting timer ticks. The trajectory and the simulation
// clock are left exactly as they were at the last committed tick, and no
// tick can commit after Pause returns.
func (d *Driver) Pause() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.running = false
}

func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running
}

// Reset forces Idle, zeroes the simulation clock, and replaces the
// trajectory with a single seed point built from the current parameter
// set. Valid from any state; malformed parameters fail fast and leave the
// previous trajectory intact.
func (d *Driver) Reset(kind model.Kind) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	p := d.params()
	if err := model.Validate(kind, p); err != nil {
		return err
	}
	m, err := model.Get(kind)
	if err != nil {
		return err
	}
	d.mdl = m
	d.running = false
	d.simTime = 0
	d.ticks = 0
	d.invalid = 0
	d.traj = append(d.traj[:0], m.Seed(p))
	return nil
}

// SelectModel switches the active model kind. Switching mid-trajectory is
// not supported; this is an implicit Reset for the new kind.
func (d *Driver) SelectModel(kind model.Kind) error {
	return d.Reset(kind)
}

// Tick is the timer path: advance one visualization step if Running.
// It reports whether a point was committed; a *StepError is returned (and
// fanned out to observers) when the step produced a non-finite value, in
// which case the trajectory and clock are untouched.
func (d *Driver) Tick() (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.running {
		return false, nil
	}
	return d.advance()
}

// StepOnce is the manual single-step control. It is Idle-only so it can
// never interleave with the timer path.
func (d *Driver) StepOnce() (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		return false, nil
	}
	return d.advance()
}

// advance runs one tick under d.mu: either commits exactly one point or
// commits nothing.
func (d *Driver) advance() (bool, error) {
	p := d.params()
	last := d.traj[len(d.traj)-1]

	next := d.mdl.Step(p, last.State)
	if !next.IsValid() {
		d.invalid++
		err := &StepError{Tick: d.ticks, Time: d.simTime, State: next}
		for _, o := range d.observers {
			o.OnInvalid(err)
		}
		return false, err
	}

	pt := model.Point{Time: d.simTime + p.TimeStep(), State: next}
	d.traj = append(d.traj, pt)
	if len(d.traj) > MaxTrajectory {
		d.traj = d.traj[len(d.traj)-MaxTrajectory:]
	}
	d.simTime = pt.Time
	d.ticks++
	for _, o := range d.observers {
		o.OnPoint(pt)
	}
	return true, nil
}

// Trajectory returns a copy of the trajectory, oldest first.
func (d *Driver) Trajectory() []model.Point {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]model.Point, len(d.traj))
	for i, pt := range d.traj {
		out[i] = model.Point{Time: pt.Time, State: pt.State.Clone()}
	}
	return out
}

// Last returns the most recent trajectory point.
func (d *Driver) Last() model.Point {
	d.mu.Lock()
	defer d.mu.Unlock()
	pt := d.traj[len(d.traj)-1]
	return model.Point{Time: pt.Time, State: pt.State.Clone()}
}

// Time returns the simulation clock: the time of the last committed point.
func (d *Driver) Time() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.simTime
}

// Kind returns the active model kind.
func (d *Driver) Kind() model.Kind {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mdl.Kind()
}

// Model returns the active model.
func (d *Driver) Model() model.Model {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mdl
}

// InvalidTicks counts ticks rejected for non-finite results since the
// last Reset.
func (d *Driver) InvalidTicks() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.invalid
}

// SetSpeed sets the 1-100 speed value, clamped into range. Speed only
// changes the wall-clock tick interval; simulation time still advances by
// exactly one time_step per committed tick.
func (d *Driver) SetSpeed(speed int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if speed < 1 {
		speed = 1
	}
	if speed > 100 {
		speed = 100
	}
	d.speed = speed
}

func (d *Driver) Speed() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.speed
}

// Interval returns the wall-clock tick interval for the current speed.
func (d *Driver) Interval() time.Duration {
	return IntervalForSpeed(d.Speed())
}

// IntervalForSpeed maps a 1-100 speed value to a tick interval,
// max(50, 150-speed) milliseconds.
func IntervalForSpeed(speed int) time.Duration {
	ms := 150 - speed
	if ms < 50 {
		ms = 50
	}
	return time.Duration(ms) * time.Millisecond
}
