package planner_test

import (
	"fmt"
	"math/rand"

	"github.com/nrequena/starway/carrier"
	"github.com/nrequena/starway/planner"
	"github.com/nrequena/starway/starmap"
)

// ExamplePlanner_Plan walks a single-galaxy chain as far as the carrier's
// lifespan allows. The caller's carrier is never mutated.
func ExamplePlanner_Plan() {
	ds := starmap.NewDataset([]starmap.Constellation{{
		Name: "Chain",
		Stars: []starmap.Star{
			{ID: 1, Galaxy: starmap.Galaxy(1), Links: []starmap.Link{{StarID: 2, Weight: 1, HasWeight: true}}},
			{ID: 2, Galaxy: starmap.Galaxy(1), Links: []starmap.Link{{StarID: 3, Weight: 1, HasWeight: true}}},
			{ID: 3, Galaxy: starmap.Galaxy(1)},
		},
	}})

	c := carrier.New(40, carrier.Excellent, 10, 0, 100)
	res, _ := planner.New(ds).Plan(1, c, starmap.NewBlocked(), planner.WithRand(rand.New(rand.NewSource(1))))

	fmt.Println(res.VisitedStars)
	fmt.Println(res.LifeLeft, c.LifeLeft)
	// Output:
	// [1 2 3]
	// 98 100
}
