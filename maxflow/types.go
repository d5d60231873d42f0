package maxflow

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Run.
var (
	// ErrSourceNotFound indicates the source id is not among the graph nodes.
	ErrSourceNotFound = errors.New("maxflow: source node not found")

	// ErrSinkNotFound indicates the sink id is not among the graph nodes.
	ErrSinkNotFound = errors.New("maxflow: sink node not found")
)

// EdgeError reports a capacity that cannot seed a flow network: negative or
// not a number.
type EdgeError struct {
	From, To int
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("maxflow: invalid capacity on edge %d→%d: %g", e.From, e.To, e.Cap)
}

// Residual maps node → node → remaining directed capacity. Entries never go
// negative during augmentation.
type Residual map[int]map[int]float64

// Result is the outcome of one max-flow run.
type Result struct {
	// MaxFlow is the total flow pushed from source to sink.
	MaxFlow float64

	// Residual is the final residual capacity graph: remaining forward
	// capacity plus the reverse capacities created by pushed flow.
	Residual Residual

	// MinCut is the set of nodes reachable from the source in the final
	// residual graph — one side of a minimum cut; every remaining node is
	// the other side.
	MinCut map[int]bool
}

// Options configures a run.
//
//   - Epsilon: residual capacities ≤ Epsilon are treated as exhausted
//     (default 1e-9), preventing floating-point stalls.
//   - Verbose: print each augmenting path via fmt.Printf.
type Options struct {
	Epsilon float64
	Verbose bool
}

// Option is a functional option for New.
type Option func(*Options)

// WithEpsilon overrides the positive-capacity threshold. Non-positive values
// are ignored and the default kept.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps > 0 {
			o.Epsilon = eps
		}
	}
}

// WithVerbose logs each augmentation step.
func WithVerbose() Option {
	return func(o *Options) { o.Verbose = true }
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() Options {
	return Options{Epsilon: 1e-9}
}
