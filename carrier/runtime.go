package carrier

// VisitEffect describes everything a star visit can do to the carrier.
// Zero values mean "not parameterized": a field left at zero simply does not
// apply, so presentation code can pass along only what the user entered.
//
// Application order within a step is fixed:
//
//  1. travel cost by distance
//  2. visit: feed (energy < 50, at most half the visit time), then
//     investigate (when both investigation parameters are set)
//  3. hypergiant boost (when Boost is set)
//  4. direct lifespan/energy/food deltas and the optional health override
type VisitEffect struct {
	// Visit parameters.
	VisitTime          float64
	TimePerKG          float64
	InvestCostPerBlock float64
	InvestBlockTime    float64

	// Direct deltas applied after the visit.
	LifeDelta   float64
	EnergyDelta float64
	FoodDelta   float64

	// NewHealth overrides the tier when HasNewHealth is true.
	NewHealth    Health
	HasNewHealth bool

	// Boost applies the hypergiant buff during this step.
	Boost bool

	// Note is free text carried into the report row.
	Note string
}

// StepReport is the per-step record the runtime accumulates for external
// reporting. All resource values are observed, not recomputed.
type StepReport struct {
	FromStar int
	ToStar   int
	ToLabel  string
	Distance float64

	LifeBefore      float64
	LifeTravelDelta float64
	LifeStarDelta   float64
	LifeAfter       float64

	EnergyBefore float64
	EnergyDelta  float64
	EnergyAfter  float64

	FoodBefore float64
	FoodDelta  float64
	FoodAfter  float64

	KGEaten        float64
	EnergyInvested float64
	BoostApplied   bool

	HealthBefore Health
	HealthAfter  Health

	Note string
}

// RuntimeOption configures a Runtime.
type RuntimeOption func(*Runtime)

// WithOnUpdate registers a callback invoked with the carrier snapshot after
// every applied step. Presentation code uses it to refresh gauges live.
func WithOnUpdate(fn func(Snapshot)) RuntimeOption {
	return func(r *Runtime) { r.onUpdate = fn }
}

// Runtime applies visit steps to a private clone of a caller-owned carrier,
// step by step, keeping a full report history. The original carrier is never
// touched.
type Runtime struct {
	c        *Carrier
	history  []StepReport
	onUpdate func(Snapshot)
}

// NewRuntime clones the given carrier and wraps it.
func NewRuntime(original *Carrier, opts ...RuntimeOption) *Runtime {
	r := &Runtime{c: original.Clone()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// State returns the clone's current resource snapshot.
func (r *Runtime) State() Snapshot { return r.c.Snapshot() }

// History returns a copy of the accumulated step reports.
func (r *Runtime) History() []StepReport {
	out := make([]StepReport, len(r.history))
	copy(out, r.history)

	return out
}

// ApplyStep runs one full star visit against the clone and returns its
// report. See VisitEffect for the fixed application order.
func (r *Runtime) ApplyStep(fromStar, toStar int, toLabel string, distance float64, effect VisitEffect) StepReport {
	c := r.c
	before := c.Snapshot()

	// 1) Travel cost.
	c.Travel(distance)
	lifeTravelDelta := c.LifeLeft - before.LifeLeft

	// 2) Visit: feed, then investigate, when parameterized.
	var kgEaten, invested float64
	if effect.VisitTime > 0 {
		if effect.TimePerKG > 0 && c.Food > 0 {
			kgEaten = c.Feed(effect.VisitTime, effect.TimePerKG)
		}
		if effect.InvestCostPerBlock > 0 && effect.InvestBlockTime > 0 {
			invested = c.Investigate(effect.VisitTime, effect.InvestCostPerBlock, effect.InvestBlockTime)
		}
	}

	// 3) Hypergiant buff.
	if effect.Boost {
		c.HypergiantBoost()
	}

	// 4) Direct deltas and health override.
	if effect.LifeDelta != 0 || effect.HasNewHealth {
		if effect.HasNewHealth {
			c.ApplyHealthEvent(effect.LifeDelta, effect.NewHealth)
		} else {
			c.ApplyHealthEvent(effect.LifeDelta)
		}
	}
	if effect.EnergyDelta != 0 && !c.Dead() {
		c.Energy = clamp(c.Energy+effect.EnergyDelta, 0, 100)
	}
	if effect.FoodDelta != 0 && !c.Dead() {
		c.Food = max0(c.Food + effect.FoodDelta)
	}

	after := c.Snapshot()
	report := StepReport{
		FromStar: fromStar,
		ToStar:   toStar,
		ToLabel:  toLabel,
		Distance: distance,

		LifeBefore:      before.LifeLeft,
		LifeTravelDelta: lifeTravelDelta,
		LifeStarDelta:   effect.LifeDelta,
		LifeAfter:       after.LifeLeft,

		EnergyBefore: before.Energy,
		EnergyDelta:  after.Energy - before.Energy,
		EnergyAfter:  after.Energy,

		FoodBefore: before.Food,
		FoodDelta:  after.Food - before.Food,
		FoodAfter:  after.Food,

		KGEaten:        kgEaten,
		EnergyInvested: invested,
		BoostApplied:   effect.Boost,

		HealthBefore: before.Health,
		HealthAfter:  after.Health,

		Note: effect.Note,
	}
	r.history = append(r.history, report)

	if r.onUpdate != nil {
		r.onUpdate(after)
	}

	return report
}
