// Package floydwarshall implements all-pairs shortest paths over the
// starmap graph with path reconstruction.
//
// The engine seeds two dense |V|×|V| matrices — distance (0 on the diagonal,
// +Inf elsewhere, minimum over parallel edges) and next-hop — then runs the
// classic triple relaxation with a fixed k→i→j loop order for deterministic
// accumulation. Negative edge weights are accepted; negative cycles are not:
// a negative diagonal entry after convergence is reported as
// ErrNegativeCycle rather than silently returning wrong finite distances.
//
// Complexity:
//
//   - Time:  O(V³) for Run, O(1) per Distance query, O(path) per rebuild.
//   - Space: O(V²) for the two matrices.
//
// This is the complementary access pattern to package bellmanford: pay the
// cubic pre-computation once, then answer many point-to-point queries for
// free. For a single origin, bellmanford is the cheaper choice.
package floydwarshall
