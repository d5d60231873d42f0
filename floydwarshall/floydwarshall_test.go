package floydwarshall_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/nrequena/starway/bellmanford"
	"github.com/nrequena/starway/floydwarshall"
	"github.com/nrequena/starway/starmap"
)

// diamond returns the graph 1→2→4, 1→3→4 with a cheap upper branch.
func diamond() ([]int, []starmap.Edge) {
	return []int{1, 2, 3, 4}, []starmap.Edge{
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 4, Weight: 1},
		{From: 1, To: 3, Weight: 2},
		{From: 3, To: 4, Weight: 5},
	}
}

type FloydWarshallSuite struct {
	suite.Suite
}

func (s *FloydWarshallSuite) TestDiamondDistances() {
	eng := floydwarshall.New(diamond())
	require.NoError(s.T(), eng.Run())

	require.Equal(s.T(), 2.0, eng.Distance(1, 4))
	require.Equal(s.T(), []int{1, 2, 4}, eng.RebuildPath(1, 4))
	require.Equal(s.T(), 0.0, eng.Distance(3, 3), "diagonal stays zero")
}

func (s *FloydWarshallSuite) TestParallelEdgesKeepMinimum() {
	nodes := []int{1, 2}
	edges := []starmap.Edge{
		{From: 1, To: 2, Weight: 9},
		{From: 1, To: 2, Weight: 4}, // parallel declaration: min wins, never the sum
	}

	eng := floydwarshall.New(nodes, edges)
	require.NoError(s.T(), eng.Run())
	require.Equal(s.T(), 4.0, eng.Distance(1, 2))
}

func (s *FloydWarshallSuite) TestUnknownAndUnreachable() {
	eng := floydwarshall.New(diamond())
	require.NoError(s.T(), eng.Run())

	require.True(s.T(), math.IsInf(eng.Distance(1, 42), 1), "unknown node: +Inf")
	require.True(s.T(), math.IsInf(eng.Distance(4, 1), 1), "no reverse path: +Inf")
	require.Nil(s.T(), eng.RebuildPath(4, 1), "no path reconstructs as empty")
	require.Nil(s.T(), eng.RebuildPath(1, 42))
}

func (s *FloydWarshallSuite) TestNegativeCycleOnDiagonal() {
	nodes := []int{1, 2, 3}
	edges := []starmap.Edge{
		{From: 1, To: 2, Weight: 3},
		{From: 2, To: 3, Weight: -5},
		{From: 3, To: 1, Weight: 1},
	}

	eng := floydwarshall.New(nodes, edges)
	err := eng.Run()
	require.Error(s.T(), err)
	require.True(s.T(), errors.Is(err, floydwarshall.ErrNegativeCycle))
}

// TestPathWeightMatchesDistance: for every finite pair, the weights along
// the rebuilt path must sum to the reported distance.
func (s *FloydWarshallSuite) TestPathWeightMatchesDistance() {
	r := rand.New(rand.NewSource(11))
	nodes, edges := randomGraph(r, 25, 0.2)

	// Direct-edge index keeping the minimum parallel weight, mirroring New.
	w := make(map[[2]int]float64)
	for _, e := range edges {
		key := [2]int{e.From, e.To}
		if cur, ok := w[key]; !ok || e.Weight < cur {
			w[key] = e.Weight
		}
	}

	eng := floydwarshall.New(nodes, edges)
	require.NoError(s.T(), eng.Run())

	for _, src := range nodes {
		for _, dst := range nodes {
			d := eng.Distance(src, dst)
			if math.IsInf(d, 1) {
				continue
			}
			path := eng.RebuildPath(src, dst)
			require.NotEmpty(s.T(), path)

			var sum float64
			for i := 0; i < len(path)-1; i++ {
				step, ok := w[[2]int{path[i], path[i+1]}]
				require.True(s.T(), ok, "path uses a non-edge %d→%d", path[i], path[i+1])
				sum += step
			}
			require.InDelta(s.T(), d, sum, 1e-9)
		}
	}
}

// TestAgreesWithBellmanFord: on graphs without negative weights both engines
// must report identical distances from every origin.
func (s *FloydWarshallSuite) TestAgreesWithBellmanFord() {
	r := rand.New(rand.NewSource(3))
	nodes, edges := randomGraph(r, 20, 0.18)

	eng := floydwarshall.New(nodes, edges)
	require.NoError(s.T(), eng.Run())

	for _, src := range nodes {
		res, err := bellmanford.Run(nodes, edges, src)
		require.NoError(s.T(), err)
		for _, dst := range nodes {
			fw := eng.Distance(src, dst)
			bf := res.Dist[dst]
			if math.IsInf(fw, 1) {
				require.True(s.T(), math.IsInf(bf, 1), "reachability must agree for %d→%d", src, dst)
				continue
			}
			require.InDelta(s.T(), bf, fw, 1e-9, "distance mismatch for %d→%d", src, dst)
		}
	}
}

func TestFloydWarshallSuite(t *testing.T) {
	suite.Run(t, new(FloydWarshallSuite))
}

// randomGraph builds a directed graph with non-negative integer weights.
func randomGraph(r *rand.Rand, n int, p float64) ([]int, []starmap.Edge) {
	nodes := make([]int, n)
	for i := range nodes {
		nodes[i] = i
	}
	var edges []starmap.Edge
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v && r.Float64() < p {
				edges = append(edges, starmap.Edge{From: u, To: v, Weight: 1 + math.Floor(r.Float64()*9)})
			}
		}
	}

	return nodes, edges
}
