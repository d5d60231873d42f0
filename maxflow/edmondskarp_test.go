package maxflow_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/nrequena/starway/maxflow"
	"github.com/nrequena/starway/starmap"
)

type EdmondsKarpSuite struct {
	suite.Suite
}

// TestSinglePath: 1→2 (cap 5) ⇒ max flow 5, forward exhausted, reverse
// carries the pushed flow.
func (s *EdmondsKarpSuite) TestSinglePath() {
	eng, err := maxflow.New([]int{1, 2}, []starmap.Edge{{From: 1, To: 2, Weight: 5}})
	require.NoError(s.T(), err)

	res, err := eng.Run(1, 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5.0, res.MaxFlow)
	require.Equal(s.T(), 0.0, res.Residual[1][2], "forward exhausted")
	require.Equal(s.T(), 5.0, res.Residual[2][1], "reverse edge carries flow")
	require.True(s.T(), res.MinCut[1])
	require.False(s.T(), res.MinCut[2])
}

// TestTwoPaths: disjoint 1→2→4 (bottleneck 2) and 1→3→4 (bottleneck 3)
// combine to 5.
func (s *EdmondsKarpSuite) TestTwoPaths() {
	eng, err := maxflow.New([]int{1, 2, 3, 4}, []starmap.Edge{
		{From: 1, To: 2, Weight: 3}, {From: 2, To: 4, Weight: 2},
		{From: 1, To: 3, Weight: 3}, {From: 3, To: 4, Weight: 3},
	})
	require.NoError(s.T(), err)

	res, err := eng.Run(1, 4)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5.0, res.MaxFlow)
}

// TestParallelEdgesSum: capacities of repeated (u,v) declarations accumulate.
func (s *EdmondsKarpSuite) TestParallelEdgesSum() {
	eng, err := maxflow.New([]int{1, 2}, []starmap.Edge{
		{From: 1, To: 2, Weight: 2},
		{From: 1, To: 2, Weight: 3},
	})
	require.NoError(s.T(), err)

	res, err := eng.Run(1, 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5.0, res.MaxFlow, "parallel capacities sum, unlike shortest-path engines")
}

func (s *EdmondsKarpSuite) TestInvalidCapacity() {
	_, err := maxflow.New([]int{1, 2}, []starmap.Edge{{From: 1, To: 2, Weight: -1}})
	var ee maxflow.EdgeError
	require.Error(s.T(), err)
	require.True(s.T(), errors.As(err, &ee))
	require.Equal(s.T(), 1, ee.From)
	require.Equal(s.T(), 2, ee.To)
	require.Equal(s.T(), -1.0, ee.Cap)

	_, err = maxflow.New([]int{1, 2}, []starmap.Edge{{From: 1, To: 2, Weight: math.NaN()}})
	require.Error(s.T(), err, "NaN capacity rejected up front")
}

func (s *EdmondsKarpSuite) TestEndpointsValidated() {
	eng, err := maxflow.New([]int{1, 2}, []starmap.Edge{{From: 1, To: 2, Weight: 1}})
	require.NoError(s.T(), err)

	_, err = eng.Run(42, 2)
	require.True(s.T(), errors.Is(err, maxflow.ErrSourceNotFound))

	_, err = eng.Run(1, 42)
	require.True(s.T(), errors.Is(err, maxflow.ErrSinkNotFound))
}

// TestEngineReusable: a second run must see the original capacities, not the
// residual left behind by the first.
func (s *EdmondsKarpSuite) TestEngineReusable() {
	eng, err := maxflow.New([]int{1, 2}, []starmap.Edge{{From: 1, To: 2, Weight: 5}})
	require.NoError(s.T(), err)

	first, err := eng.Run(1, 2)
	require.NoError(s.T(), err)
	second, err := eng.Run(1, 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), first.MaxFlow, second.MaxFlow)
}

func (s *EdmondsKarpSuite) TestResidualNeverNegative() {
	eng, err := maxflow.New([]int{1, 2, 3, 4}, []starmap.Edge{
		{From: 1, To: 2, Weight: 3}, {From: 2, To: 4, Weight: 2},
		{From: 1, To: 3, Weight: 3}, {From: 3, To: 4, Weight: 3},
		{From: 2, To: 3, Weight: 1},
	})
	require.NoError(s.T(), err)

	res, err := eng.Run(1, 4)
	require.NoError(s.T(), err)
	for u, row := range res.Residual {
		for v, c := range row {
			require.GreaterOrEqual(s.T(), c, 0.0, "residual %d→%d went negative", u, v)
		}
	}
}

// TestMaxFlowEqualsMinCut checks max-flow/min-cut duality on several seeded
// random graphs: the flow must equal the original capacity crossing from the
// returned reachable set to its complement.
func (s *EdmondsKarpSuite) TestMaxFlowEqualsMinCut() {
	for seed := int64(1); seed <= 5; seed++ {
		r := rand.New(rand.NewSource(seed))
		nodes, edges := randomNetwork(r, 12, 0.3)

		eng, err := maxflow.New(nodes, edges)
		require.NoError(s.T(), err)

		source, sink := nodes[0], nodes[len(nodes)-1]
		res, err := eng.Run(source, sink)
		require.NoError(s.T(), err)
		require.True(s.T(), res.MinCut[source])

		if res.MaxFlow > 0 {
			require.False(s.T(), res.MinCut[sink], "positive flow saturates some cut before the sink")
		}

		var crossing float64
		for _, e := range edges {
			if res.MinCut[e.From] && !res.MinCut[e.To] {
				crossing += e.Weight
			}
		}
		require.InDelta(s.T(), crossing, res.MaxFlow, 1e-9, "seed %d: flow must equal cut capacity", seed)
	}
}

func TestEdmondsKarpSuite(t *testing.T) {
	suite.Run(t, new(EdmondsKarpSuite))
}

// randomNetwork builds a directed capacity graph with integer capacities in
// [1, 10], ids 0..n−1.
func randomNetwork(r *rand.Rand, n int, p float64) ([]int, []starmap.Edge) {
	nodes := make([]int, n)
	for i := range nodes {
		nodes[i] = i
	}
	var edges []starmap.Edge
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v && r.Float64() < p {
				edges = append(edges, starmap.Edge{From: u, To: v, Weight: 1 + math.Floor(r.Float64()*10)})
			}
		}
	}

	return nodes, edges
}
