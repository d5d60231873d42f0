// Package bellmanford implements single-source shortest paths over the
// starmap graph with negative-weight support and negative-cycle detection.
//
// Bellman–Ford relaxes every edge up to |V|−1 times, so unlike Dijkstra it
// tolerates negative travel costs (health events on a route can make a leg
// "profitable"). A pass that performs no update terminates the loop early.
// After convergence one extra full pass runs as verification: if any edge
// still relaxes, a negative cycle is reachable from the source and no finite
// distance map exists, so Run reports ErrNegativeCycle instead of a result.
//
// Complexity:
//
//   - Time:  O(V·E) worst case; the early-exit pass makes well-behaved
//     graphs considerably cheaper.
//   - Space: O(V) for the distance and predecessor maps.
//
// Use this engine when edge weights may be negative or when only one origin
// matters. For workloads with many repeated point-to-point queries after a
// single pre-computation, see package floydwarshall.
//
// Errors:
//
//	ErrSourceNotFound - the origin id is not a node of the graph.
//	ErrNegativeCycle  - a negative-weight cycle is reachable from the origin.
package bellmanford
