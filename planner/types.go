package planner

import (
	"errors"
	"math/rand"

	"github.com/nrequena/starway/carrier"
	"github.com/nrequena/starway/starmap"
)

// ErrStartNotFound indicates the starting star id is not in the dataset.
var ErrStartNotFound = errors.New("planner: start star not found")

// DefaultMaxHops is the safety ceiling on planner iterations.
const DefaultMaxHops = 10000

// StepKind distinguishes recap rows.
type StepKind string

const (
	// StepMove records one traversed edge.
	StepMove StepKind = "move"

	// StepBuff records a hypergiant buff applied before a jump.
	StepBuff StepKind = "buff"
)

// Jump describes where a segment left its galaxy.
type Jump struct {
	Galaxy      starmap.GalaxyRef
	LandingStar int
}

// Segment is one per-galaxy stretch of the itinerary: the stars walked in
// order, plus — when the galaxy was left through a hypergiant — the exit
// star and the jump taken.
type Segment struct {
	Galaxy    starmap.GalaxyRef
	EntryStar int
	Path      []int

	// ExitHypergiant is set when the segment ended in a jump.
	ExitHypergiant *int
	Jump           *Jump
}

// RecapRow is one entry of the step-by-step log, suitable for external
// reporting. Deltas are observed against the clone's state around the step.
type RecapRow struct {
	Galaxy      starmap.GalaxyRef
	Kind        StepKind
	StarLabel   string
	Hypergiant  bool
	Detail      string
	EnergyDelta float64
	FoodDelta   float64
	LifeDelta   float64
}

// Result is the full outcome of one planning run.
type Result struct {
	Segments        []Segment
	VisitedStars    []int
	VisitedGalaxies []starmap.GalaxyRef
	LifeLeft        float64
	Final           carrier.Snapshot
	Recap           []RecapRow
}

// Options configures a planning run.
type Options struct {
	// Rand drives jump-destination selection. Defaults to a time-seeded
	// source; inject a fixed seed for reproducible runs.
	Rand *rand.Rand

	// MaxHops bounds planner iterations against pathological inputs.
	MaxHops int
}

// Option is a functional option for Plan.
type Option func(*Options)

// WithRand injects the random source used for jump selection.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// WithMaxHops overrides the iteration ceiling. Non-positive values are
// ignored and the default kept.
func WithMaxHops(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxHops = n
		}
	}
}

// DefaultOptions returns the production defaults (Rand is resolved lazily
// inside Plan so two default runs never share a source).
func DefaultOptions() Options {
	return Options{MaxHops: DefaultMaxHops}
}
