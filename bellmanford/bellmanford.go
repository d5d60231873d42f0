package bellmanford

import (
	"errors"
	"fmt"
	"math"

	"github.com/nrequena/starway/starmap"
)

// Sentinel errors returned by Run.
var (
	// ErrSourceNotFound indicates the origin id is not among the graph nodes.
	ErrSourceNotFound = errors.New("bellmanford: source node not found")

	// ErrNegativeCycle indicates a negative-weight cycle reachable from the
	// origin; no finite distance map exists. This is an expected failure mode
	// of the input graph, not a defect.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle reachable from source")
)

// Result holds the converged single-source state.
//
// Dist maps every node to its minimal known distance from the origin
// (+Inf when unreachable). Prev maps a node to its predecessor on the best
// known path; the origin and unreachable nodes have no entry.
type Result struct {
	Dist map[int]float64
	Prev map[int]int
}

// Run executes Bellman–Ford from source over the given node and edge lists.
//
// The outcome is deterministic for a fixed edge iteration order. Edges whose
// endpoints are not in nodes must not appear; starmap.BuildGraph guarantees
// this.
//
// Complexity: O(V·E) time, O(V) space.
func Run(nodes []int, edges []starmap.Edge, source int) (*Result, error) {
	// 1) Initialize distance = +Inf everywhere, predecessor = none.
	dist := make(map[int]float64, len(nodes))
	for _, n := range nodes {
		dist[n] = math.Inf(1)
	}
	prev := make(map[int]int, len(nodes))

	if _, ok := dist[source]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, source)
	}
	dist[source] = 0

	// 2) Up to |V|−1 relaxation passes; stop early once a pass changes nothing.
	for pass := 0; pass < len(nodes)-1; pass++ {
		changed := false
		for _, e := range edges {
			if du := dist[e.From]; !math.IsInf(du, 1) && du+e.Weight < dist[e.To] {
				dist[e.To] = du + e.Weight
				prev[e.To] = e.From
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	// 3) Verification pass: any further relaxation proves a reachable
	//    negative cycle.
	for _, e := range edges {
		if du := dist[e.From]; !math.IsInf(du, 1) && du+e.Weight < dist[e.To] {
			return nil, fmt.Errorf("%w: via edge %d→%d", ErrNegativeCycle, e.From, e.To)
		}
	}

	return &Result{Dist: dist, Prev: prev}, nil
}

// RebuildPath walks predecessor links from target back to a node without a
// predecessor and returns the path in origin→target order.
//
// When target is unreachable (and is not the origin itself) it has no
// predecessor, so the result degenerates to the single-element path
// [target]; callers must treat that as "no path" whenever target differs
// from the origin they ran from.
func RebuildPath(prev map[int]int, target int) []int {
	var path []int
	cur, ok := target, true
	for ok {
		path = append(path, cur)
		cur, ok = prev[cur]
	}

	// Reverse in place: predecessors were collected target-first.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
