package floydwarshall

import (
	"errors"
	"fmt"
	"math"

	"github.com/nrequena/starway/starmap"
)

// ErrNegativeCycle indicates a negative-weight cycle: after convergence some
// node reaches itself at negative cost, so the distance matrix is not a
// valid answer. An expected failure mode of the input graph, not a defect.
var ErrNegativeCycle = errors.New("floydwarshall: negative cycle detected")

// noHop marks an absent next-hop matrix entry.
const noHop = -1

// Engine holds the dense all-pairs state for one graph snapshot.
// Build it with New, call Run once, then query Distance / RebuildPath as
// often as needed.
type Engine struct {
	nodes []int
	index map[int]int // node id → matrix index
	dist  [][]float64
	next  [][]int // matrix index of the first hop on the best path, noHop if none
}

// New seeds the matrices from the node and edge lists.
//
// The diagonal starts at 0; off-diagonal entries start at +Inf. When
// parallel edges exist between the same ordered pair, the minimum weight
// wins (capacities are summed only by the flow engine — never here).
// Edges referencing unknown nodes are skipped.
func New(nodes []int, edges []starmap.Edge) *Engine {
	n := len(nodes)
	e := &Engine{
		nodes: nodes,
		index: make(map[int]int, n),
		dist:  make([][]float64, n),
		next:  make([][]int, n),
	}
	for i, id := range nodes {
		e.index[id] = i
	}

	// 1) Diagonal 0 / off-diagonal +Inf; a node's first hop to itself is itself.
	for i := 0; i < n; i++ {
		e.dist[i] = make([]float64, n)
		e.next[i] = make([]int, n)
		for j := 0; j < n; j++ {
			e.dist[i][j] = math.Inf(1)
			e.next[i][j] = noHop
		}
		e.dist[i][i] = 0
		e.next[i][i] = i
	}

	// 2) Fold in edges, keeping the minimum over parallel declarations.
	for _, edge := range edges {
		i, iok := e.index[edge.From]
		j, jok := e.index[edge.To]
		if !iok || !jok {
			continue
		}
		if edge.Weight < e.dist[i][j] {
			e.dist[i][j] = edge.Weight
			e.next[i][j] = j
		}
	}

	return e
}

// Run executes the relaxation. Loop order is fixed (k → i → j) so equal
// inputs always converge to identical matrices.
//
// Returns ErrNegativeCycle if any diagonal entry goes negative.
func (e *Engine) Run() error {
	n := len(e.nodes)

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			dik := e.dist[i][k]
			if math.IsInf(dik, 1) {
				continue // k unreachable from i; no path via k can improve row i
			}
			rowI, rowK := e.dist[i], e.dist[k]
			nextI := e.next[i]
			for j := 0; j < n; j++ {
				if cand := dik + rowK[j]; cand < rowI[j] {
					rowI[j] = cand
					// Best path i→j starts with the first hop of i→k.
					nextI[j] = nextI[k]
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		if e.dist[i][i] < 0 {
			return fmt.Errorf("%w: through node %d", ErrNegativeCycle, e.nodes[i])
		}
	}

	return nil
}

// Distance returns the converged minimal distance src→dst, or +Inf when
// either node is unknown or no path exists.
func (e *Engine) Distance(src, dst int) float64 {
	i, iok := e.index[src]
	j, jok := e.index[dst]
	if !iok || !jok {
		return math.Inf(1)
	}

	return e.dist[i][j]
}

// RebuildPath walks the next-hop matrix from src to dst and returns the node
// path, or nil when no path exists. A broken hop chain also yields nil; the
// walk is bounded by |V| hops so it can never loop indefinitely.
func (e *Engine) RebuildPath(src, dst int) []int {
	i, iok := e.index[src]
	j, jok := e.index[dst]
	if !iok || !jok || e.next[i][j] == noHop {
		return nil
	}

	path := []int{src}
	for steps := 0; i != j; steps++ {
		if steps > len(e.nodes) {
			return nil // inconsistent matrix; refuse to spin
		}
		i = e.next[i][j]
		if i == noHop {
			return nil
		}
		path = append(path, e.nodes[i])
	}

	return path
}
