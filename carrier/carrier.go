package carrier

// Health is the ordered tier of the carrier's condition, best first.
type Health int

const (
	Excellent Health = iota
	Good
	Regular
	Poor
	Dying
	Dead
)

// healthNames is indexed by Health.
var healthNames = [...]string{"Excellent", "Good", "Regular", "Poor", "Dying", "Dead"}

func (h Health) String() string {
	if h < Excellent || h > Dead {
		return "Unknown"
	}

	return healthNames[h]
}

// EnergyPerKG is the feeding yield table: energy points gained per kilogram
// eaten at each health tier. Kept exactly as the source system defines it.
var EnergyPerKG = map[Health]float64{
	Excellent: 5,
	Good:      4,
	Regular:   3,
	Poor:      2,
	Dying:     1,
	Dead:      0,
}

// Carrier is the mutable agent state. Plain value semantics: copying the
// struct is a complete, independent clone.
type Carrier struct {
	Energy   float64 // 0..100
	Food     float64 // kilograms, never negative
	Health   Health
	StartAge float64 // light-years
	Age      float64 // light-years, grows with travel
	DeathAge float64 // light-years
	LifeLeft float64 // light-years remaining, never grows via travel
}

// Snapshot is the read-only resource view handed to reports and callbacks.
type Snapshot struct {
	Energy   float64
	Food     float64
	Age      float64
	LifeLeft float64
	Health   Health
}

// New builds a carrier with inputs clamped into their valid ranges:
// energy into [0,100], food to ≥ 0, remaining lifespan to
// max(0, deathAge−startAge).
func New(energy float64, health Health, food, startAge, deathAge float64) *Carrier {
	return &Carrier{
		Energy:   clamp(energy, 0, 100),
		Food:     max0(food),
		Health:   health,
		StartAge: startAge,
		Age:      startAge,
		DeathAge: deathAge,
		LifeLeft: max0(deathAge - startAge),
	}
}

// Clone returns an independent copy. Mutating the clone never touches the
// receiver.
func (c *Carrier) Clone() *Carrier {
	cp := *c

	return &cp
}

// Snapshot captures the current resource values.
func (c *Carrier) Snapshot() Snapshot {
	return Snapshot{Energy: c.Energy, Food: c.Food, Age: c.Age, LifeLeft: c.LifeLeft, Health: c.Health}
}

// Dead reports whether the carrier has reached its terminal state.
func (c *Carrier) Dead() bool {
	return c.LifeLeft <= 0 || c.Age >= c.DeathAge || c.Health == Dead
}

// Travel advances the carrier by distance light-years: lifespan down, age
// up. Negative input clamps to zero — no operation regains lifespan this
// way. Crossing either threshold transitions to Dead.
func (c *Carrier) Travel(distance float64) {
	if c.Dead() {
		return
	}
	d := max0(distance)
	c.LifeLeft -= d
	c.Age += d
	if c.LifeLeft <= 0 || c.Age >= c.DeathAge {
		c.Health = Dead
	}
}

// Feed lets the carrier eat during a star visit and returns the kilograms
// consumed.
//
// The carrier only eats below 50 energy, spends at most half the visit
// duration eating, and is bounded by the food on board. Energy gained is
// kilograms × the health-tier yield, capped at 100.
func (c *Carrier) Feed(visitTime, timePerKG float64) float64 {
	if c.Dead() || c.Energy >= 50 {
		return 0
	}
	if visitTime <= 0 || timePerKG <= 0 || c.Food <= 0 {
		return 0
	}

	eatTime := 0.5 * visitTime
	kg := eatTime / timePerKG
	if kg > c.Food {
		kg = c.Food
	}
	if kg <= 0 {
		return 0
	}

	c.Energy = clamp(c.Energy+EnergyPerKG[c.Health]*kg, 0, 100)
	c.Food -= kg

	return kg
}

// Investigate spends energy in proportion to the visit duration measured in
// blocks of blockTime, at costPerBlock energy each, clamped to the energy
// available. Returns the energy actually consumed.
//
// This is the one path where energy exhaustion — not lifespan — kills: if
// energy reaches zero the carrier transitions immediately to Dead.
func (c *Carrier) Investigate(visitTime, costPerBlock, blockTime float64) float64 {
	if c.Dead() {
		return 0
	}
	if visitTime <= 0 || costPerBlock <= 0 || blockTime <= 0 {
		return 0
	}

	cost := costPerBlock * (visitTime / blockTime)
	spent := cost
	if spent > c.Energy {
		spent = max0(c.Energy)
	}
	c.Energy -= spent
	if c.Energy <= 0 {
		c.Energy = 0
		c.Health = Dead
	}

	return spent
}

// ApplyHealthEvent adds deltaLife (possibly negative) to the remaining
// lifespan. Dropping to zero or below forces Dead; otherwise an optional
// tier override takes effect.
func (c *Carrier) ApplyHealthEvent(deltaLife float64, newHealth ...Health) {
	if c.Dead() {
		return
	}
	c.LifeLeft += deltaLife
	if c.LifeLeft <= 0 {
		c.Health = Dead
	} else if len(newHealth) > 0 {
		c.Health = newHealth[0]
	}
}

// HypergiantBoost applies the hypergiant buff: energy grows by 50% of its
// current value (capped at 100) and the food stock doubles.
func (c *Carrier) HypergiantBoost() {
	if c.Dead() {
		return
	}
	c.Energy = clamp(c.Energy+0.5*c.Energy, 0, 100)
	c.Food *= 2
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}

	return v
}
