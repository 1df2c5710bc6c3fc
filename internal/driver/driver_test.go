package driver_test

import (
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/popsim/internal/driver"
	"github.com/san-kum/popsim/internal/model"
)

type recorder struct {
	points  []model.Point
	invalid []*driver.StepError
}

func (r *recorder) OnPoint(p model.Point) { r.points = append(r.points, p) }

func (r *recorder) OnInvalid(e *driver.StepError) { r.invalid = append(r.invalid, e) }

var _ = Describe("Driver", func() {
	var (
		params model.Params
		drv    *driver.Driver
	)

	// Steady exponential (r = 0) so every committed tick is predictable.
	newSteady := func() model.Params {
		return model.Params{
			model.ParamBirthRate: 0.0,
			model.ParamDeathRate: 0.0,
			model.ParamN0:        50,
			model.ParamDt:        0.02,
			model.ParamTimeStep:  0.1,
		}
	}

	BeforeEach(func() {
		params = newSteady()
		var err error
		drv, err = driver.New(model.Exponential, func() model.Params { return params })
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("seeding", func() {
		It("starts Idle with a single seed point at time 0", func() {
			Expect(drv.Running()).To(BeFalse())
			traj := drv.Trajectory()
			Expect(traj).To(HaveLen(1))
			Expect(traj[0].Time).To(BeZero())
			Expect(traj[0].State[0]).To(Equal(50.0))
		})

		It("fails fast on malformed parameters", func() {
			bad := newSteady()
			bad[model.ParamTimeStep] = 0
			_, err := driver.New(model.Exponential, func() model.Params { return bad })
			Expect(err).To(MatchError(model.ErrParamBounds))
		})
	})

	Describe("state machine", func() {
		It("ignores timer ticks while Idle", func() {
			committed, err := drv.Tick()
			Expect(err).NotTo(HaveOccurred())
			Expect(committed).To(BeFalse())
			Expect(drv.Trajectory()).To(HaveLen(1))
		})

		It("treats Start while Running and Pause while Idle as no-ops", func() {
			drv.Start()
			drv.Start()
			Expect(drv.Running()).To(BeTrue())
			drv.Pause()
			drv.Pause()
			Expect(drv.Running()).To(BeFalse())
		})

		It("commits no ticks after Pause returns", func() {
			drv.Start()
			_, err := drv.Tick()
			Expect(err).NotTo(HaveOccurred())
			drv.Pause()
			before := drv.Trajectory()
			committed, _ := drv.Tick()
			Expect(committed).To(BeFalse())
			Expect(drv.Trajectory()).To(HaveLen(len(before)))
			Expect(drv.Time()).To(BeNumerically("~", 0.1, 1e-12))
		})
	})

	Describe("ticking", func() {
		It("advances simulation time by exactly one time_step per tick", func() {
			drv.Start()
			for i := 0; i < 3; i++ {
				committed, err := drv.Tick()
				Expect(err).NotTo(HaveOccurred())
				Expect(committed).To(BeTrue())
			}
			Expect(drv.Time()).To(BeNumerically("~", 0.3, 1e-12))
			Expect(drv.Trajectory()).To(HaveLen(4))
		})

		It("reads the live parameter set on every tick", func() {
			drv.Start()
			_, err := drv.Tick()
			Expect(err).NotTo(HaveOccurred())
			Expect(drv.Last().State[0]).To(Equal(50.0))

			// Tune mid-run: takes effect on the very next tick.
			params[model.ParamBirthRate] = 1.0
			_, err = drv.Tick()
			Expect(err).NotTo(HaveOccurred())
			Expect(drv.Last().State[0]).To(Equal(100.0))
		})

		It("notifies observers of committed points", func() {
			rec := &recorder{}
			drv.AddObserver(rec)
			drv.Start()
			drv.Tick()
			drv.Tick()
			Expect(rec.points).To(HaveLen(2))
			Expect(rec.points[1].Time).To(BeNumerically("~", 0.2, 1e-12))
		})
	})

	Describe("invalid step results", func() {
		It("stalls the trajectory and clock, observably", func() {
			rec := &recorder{}
			drv.AddObserver(rec)
			drv.Start()

			// Overflow the multiply to +Inf.
			params[model.ParamBirthRate] = math.MaxFloat64
			committed, err := drv.Tick()
			Expect(committed).To(BeFalse())
			Expect(err).To(MatchError(driver.ErrNonFinite))
			Expect(drv.Trajectory()).To(HaveLen(1))
			Expect(drv.Time()).To(BeZero())
			Expect(drv.InvalidTicks()).To(Equal(1))
			Expect(rec.invalid).To(HaveLen(1))

			// The simulation keeps accepting later ticks.
			params[model.ParamBirthRate] = 0
			committed, err = drv.Tick()
			Expect(err).NotTo(HaveOccurred())
			Expect(committed).To(BeTrue())
			Expect(drv.Time()).To(BeNumerically("~", 0.1, 1e-12))
		})
	})

	Describe("trajectory cap", func() {
		It("evicts the oldest points past the cap", func() {
			drv.Start()
			total := driver.MaxTrajectory + 50
			for i := 0; i < total; i++ {
				committed, err := drv.Tick()
				Expect(err).NotTo(HaveOccurred())
				Expect(committed).To(BeTrue())
			}

			traj := drv.Trajectory()
			Expect(traj).To(HaveLen(driver.MaxTrajectory))
			// Seed plus `total` commits minus the cap: the first surviving
			// point is tick #(total-cap+1).
			firstTick := total - driver.MaxTrajectory + 1
			Expect(traj[0].Time).To(BeNumerically("~", float64(firstTick)*0.1, 1e-9))
			Expect(traj[len(traj)-1].Time).To(BeNumerically("~", float64(total)*0.1, 1e-9))
		})
	})

	Describe("StepOnce", func() {
		It("advances a single tick from Idle", func() {
			committed, err := drv.StepOnce()
			Expect(err).NotTo(HaveOccurred())
			Expect(committed).To(BeTrue())
			Expect(drv.Running()).To(BeFalse())
			Expect(drv.Trajectory()).To(HaveLen(2))
		})

		It("is a no-op while Running", func() {
			drv.Start()
			committed, err := drv.StepOnce()
			Expect(err).NotTo(HaveOccurred())
			Expect(committed).To(BeFalse())
		})
	})

	Describe("Reset and SelectModel", func() {
		It("resets to a single seed point from any state", func() {
			drv.Start()
			for i := 0; i < 10; i++ {
				drv.Tick()
			}
			Expect(drv.Reset(model.Exponential)).To(Succeed())
			Expect(drv.Running()).To(BeFalse())
			Expect(drv.Time()).To(BeZero())
			Expect(drv.InvalidTicks()).To(BeZero())
			traj := drv.Trajectory()
			Expect(traj).To(HaveLen(1))
			Expect(traj[0].Time).To(BeZero())
		})

		It("keeps the previous trajectory when Reset parameters are malformed", func() {
			drv.Start()
			drv.Tick()
			params[model.ParamDt] = -1
			Expect(drv.Reset(model.Exponential)).To(MatchError(model.ErrParamBounds))
			Expect(drv.Trajectory()).To(HaveLen(2))
		})

		It("implicitly reseeds when selecting another model", func() {
			params = model.Params{
				model.ParamPreyGrowth:    1.1,
				model.ParamPredation:     0.4,
				model.ParamConversion:    0.1,
				model.ParamPredatorDeath: 0.4,
				model.ParamN0:            10,
				model.ParamP0:            10,
				model.ParamDt:            0.02,
				model.ParamTimeStep:      0.1,
			}
			Expect(drv.SelectModel(model.PredatorPrey)).To(Succeed())
			Expect(drv.Kind()).To(Equal(model.PredatorPrey))
			traj := drv.Trajectory()
			Expect(traj).To(HaveLen(1))
			Expect(traj[0].State).To(Equal(model.State{10, 10}))
		})
	})

	Describe("speed control", func() {
		It("maps speed to interval as max(50, 150-speed) ms", func() {
			Expect(driver.IntervalForSpeed(1)).To(Equal(149 * time.Millisecond))
			Expect(driver.IntervalForSpeed(50)).To(Equal(100 * time.Millisecond))
			Expect(driver.IntervalForSpeed(100)).To(Equal(50 * time.Millisecond))
			Expect(driver.IntervalForSpeed(120)).To(Equal(50 * time.Millisecond))
		})

		It("clamps SetSpeed into 1-100", func() {
			drv.SetSpeed(0)
			Expect(drv.Speed()).To(Equal(1))
			drv.SetSpeed(500)
			Expect(drv.Speed()).To(Equal(100))
		})
	})
})
