package maxflow

import (
	"fmt"
	"math"
	"sort"

	"github.com/nrequena/starway/starmap"
)

// Engine holds the validated capacity graph for one snapshot. It is
// reusable: every Run works on its own copy of the seeded capacities.
type Engine struct {
	nodes []int
	caps  Residual
	opts  Options
}

// New validates the edge list and accumulates directed capacities.
// Capacities of parallel edges between the same ordered pair are summed.
//
// Returns EdgeError on the first negative or NaN capacity.
func New(nodes []int, edges []starmap.Edge, opts ...Option) (*Engine, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	caps := make(Residual, len(nodes))
	for _, n := range nodes {
		caps[n] = make(map[int]float64)
	}

	for _, e := range edges {
		if e.Weight < 0 || math.IsNaN(e.Weight) {
			return nil, EdgeError{From: e.From, To: e.To, Cap: e.Weight}
		}
		if caps[e.From] == nil {
			caps[e.From] = make(map[int]float64)
		}
		if caps[e.To] == nil {
			caps[e.To] = make(map[int]float64)
		}
		caps[e.From][e.To] += e.Weight
	}

	return &Engine{nodes: nodes, caps: caps, opts: cfg}, nil
}

// Run computes the maximum flow source→sink.
//
// Complexity: O(V·E²) worst case.
func (e *Engine) Run(source, sink int) (*Result, error) {
	// 1) Validate endpoints.
	if _, ok := e.caps[source]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, source)
	}
	if _, ok := e.caps[sink]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrSinkNotFound, sink)
	}

	// 2) Work on a private residual copy so the engine stays reusable.
	residual := e.caps.clone()
	eps := e.opts.Epsilon

	// 3) Push flow along BFS-shortest augmenting paths until none remain.
	var maxFlow float64
	for {
		path, bottleneck := bfsAugmentingPath(residual, source, sink, eps)
		if len(path) == 0 || bottleneck <= eps {
			break
		}
		if e.opts.Verbose {
			fmt.Printf("augmenting path %v with flow %.3g\n", path, bottleneck)
		}
		maxFlow += bottleneck

		// 4) Augment: forward capacity down, reverse capacity up.
		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			residual[u][v] -= bottleneck
			residual[v][u] += bottleneck
		}
	}

	// 5) The source-reachable residual nodes form one side of a min cut.
	cut := reachable(residual, source, eps)

	return &Result{MaxFlow: maxFlow, Residual: residual, MinCut: cut}, nil
}

// clone deep-copies the capacity map.
func (r Residual) clone() Residual {
	out := make(Residual, len(r))
	for u, row := range r {
		cp := make(map[int]float64, len(row))
		for v, c := range row {
			cp[v] = c
		}
		out[u] = cp
	}

	return out
}

// neighbors returns the residual neighbors of u with capacity > eps, sorted
// ascending so BFS expansion order is deterministic.
func (r Residual) neighbors(u int, eps float64) []int {
	row := r[u]
	out := make([]int, 0, len(row))
	for v, c := range row {
		if c > eps {
			out = append(out, v)
		}
	}
	sort.Ints(out)

	return out
}

// bfsAugmentingPath finds the fewest-edge path source→sink over residual
// capacities > eps. Returns the path and its bottleneck capacity, or
// (nil, 0) when the sink is unreachable.
func bfsAugmentingPath(r Residual, source, sink int, eps float64) ([]int, float64) {
	parent := make(map[int]int, len(r))
	bottle := map[int]float64{source: math.Inf(1)}
	visited := map[int]bool{source: true}

	queue := []int{source}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range r.neighbors(u, eps) {
			if visited[v] {
				continue
			}
			visited[v] = true
			parent[v] = u
			bottle[v] = math.Min(bottle[u], r[u][v])

			if v == sink {
				// Reconstruct sink→source, then reverse.
				path := []int{sink}
				for cur := sink; cur != source; {
					cur = parent[cur]
					path = append(path, cur)
				}
				for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
					path[i], path[j] = path[j], path[i]
				}

				return path, bottle[sink]
			}
			queue = append(queue, v)
		}
	}

	return nil, 0
}

// reachable collects every node reachable from s over residual capacity > eps.
func reachable(r Residual, s int, eps float64) map[int]bool {
	seen := map[int]bool{s: true}
	queue := []int{s}
	for qi := 0; qi < len(queue); qi++ {
		for _, v := range r.neighbors(queue[qi], eps) {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return seen
}
