package starmap

import "fmt"

// GalaxyRef identifies the galaxy a star belongs to. The zero value means
// "no galaxy" (membership is optional in the dataset). GalaxyRef is
// comparable and safe to use as a map key.
type GalaxyRef struct {
	// ID is the galaxy identifier; meaningful only when Valid is true.
	ID int

	// Valid reports whether the star declares a galaxy at all.
	Valid bool
}

// Galaxy returns a valid reference to the given galaxy id.
func Galaxy(id int) GalaxyRef { return GalaxyRef{ID: id, Valid: true} }

// String renders the reference for recap rows and warnings.
func (g GalaxyRef) String() string {
	if !g.Valid {
		return "none"
	}

	return fmt.Sprintf("galaxy %d", g.ID)
}

// Link is a declared connection from one star to another.
//
// Weight and Capacity are optional in the source dataset; the Has* flags
// record whether a value was declared. An undeclared weight falls back to
// the Euclidean distance between the endpoints, and an undeclared capacity
// falls back to the default passed to BuildFlowGraph.
type Link struct {
	// StarID is the id of the target star.
	StarID int

	// Weight is the declared travel cost, when HasWeight is true.
	Weight    float64
	HasWeight bool

	// Capacity is the declared flow capacity, when HasCapacity is true.
	Capacity    float64
	HasCapacity bool
}

// Star is one node of the map.
//
// TimePerKG, InvestCostPerBlock and InvestBlockTime are per-visit parameters
// supplied by the dataset and consumed by the carrier runtime; the graph
// engines ignore them.
type Star struct {
	ID         int
	Label      string
	X, Y       float64
	Galaxy     GalaxyRef
	Hypergiant bool

	TimePerKG          float64
	InvestCostPerBlock float64
	InvestBlockTime    float64

	Links []Link
}

// Constellation is a named grouping of stars. Groupings may overlap: the
// same star id can appear in several constellations.
type Constellation struct {
	Name  string
	Stars []Star
}

// Edge is one directed weighted edge of a built graph. For the shortest-path
// engines Weight is a travel cost (negative values permitted); for the flow
// engine it is a capacity (non-negative by construction).
type Edge struct {
	From   int
	To     int
	Weight float64
}

// CapacityError reports a declared negative capacity, which has no sound
// flow-network interpretation and fails graph construction fast.
type CapacityError struct {
	From, To int
	Cap      float64
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("starmap: negative capacity on link %d→%d: %g", e.From, e.To, e.Cap)
}
