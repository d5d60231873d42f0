package carrier_test

import (
	"fmt"

	"github.com/nrequena/starway/carrier"
)

// ExampleCarrier_HypergiantBoost shows the buff arithmetic: energy grows by
// half its current value (capped at 100) and food doubles.
func ExampleCarrier_HypergiantBoost() {
	c := carrier.New(40, carrier.Good, 6, 0, 50)
	c.HypergiantBoost()
	fmt.Println(c.Energy, c.Food)
	// Output:
	// 60 12
}

// ExampleRuntime applies one full visit step to a clone, leaving the
// original untouched.
func ExampleRuntime() {
	original := carrier.New(40, carrier.Excellent, 10, 0, 100)
	rt := carrier.NewRuntime(original)

	report := rt.ApplyStep(1, 2, "Sheliak", 25, carrier.VisitEffect{VisitTime: 4, TimePerKG: 1})
	fmt.Println(report.LifeAfter, report.KGEaten)
	fmt.Println(original.LifeLeft)
	// Output:
	// 75 2
	// 100
}
