// Package maxflow implements maximum flow / minimum cut over the starmap
// graph using the Edmonds–Karp algorithm (BFS shortest augmenting paths).
//
// The engine seeds a residual capacity map from the edge list, summing
// capacities of parallel directed edges between the same ordered pair.
// This is the one engine that rejects malformed edge data outright: a
// negative or non-numeric capacity has no sound flow-network interpretation,
// so New fails fast with EdgeError instead of skipping the edge.
//
// Run repeatedly finds the shortest augmenting path over residual capacities
// strictly above a small epsilon (floating-point stall guard), pushes the
// bottleneck flow, and updates the residual graph — forward capacity down,
// reverse capacity up — until no augmenting path remains. The returned
// source-reachable set of the final residual graph is one side of a minimum
// cut; by max-flow/min-cut duality the total flow equals the capacity
// crossing that cut.
//
// Complexity:
//
//   - Time:  O(V·E²) worst case (O(V·E) augmentations × O(E) per BFS).
//   - Space: O(V + E) for the residual map and BFS state.
//
// Neighbor expansion during BFS is by ascending node id, so runs are fully
// deterministic for equal inputs.
//
// Errors:
//
//	ErrSourceNotFound - the source id is not a node of the graph.
//	ErrSinkNotFound   - the sink id is not a node of the graph.
//	EdgeError         - a negative or NaN capacity was declared.
package maxflow
