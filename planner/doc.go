// Package planner computes a maximal resource-feasible itinerary for a
// carrier over the star map.
//
// The planner never touches the caller's carrier: it works on a clone, on a
// graph snapshot built fresh from the dataset and the run's blocked pairs.
//
// # Policy
//
// Within the current galaxy the walk is greedy: among unvisited neighbors
// reachable with the remaining lifespan, any hypergiant wins (nearest first);
// otherwise the nearest plain star. Ties break by edge weight ascending,
// then by star id, so runs are reproducible.
//
// When no eligible neighbor remains and the current star is a hypergiant,
// the planner attempts an intergalactic jump: destination galaxy and landing
// hypergiant are drawn uniformly from the galaxies that differ from the
// current one, were never visited, and hold at least one hypergiant. A jump
// costs zero travel distance, applies the hypergiant buff to the clone, and
// opens a new itinerary segment at the landing star. Visited stars and
// galaxies accumulate across the whole run and are never revisited.
//
// The walk halts when no move or jump is possible, when the remaining
// lifespan is exhausted or would go negative on the next move, or when the
// hop ceiling is reached (a safety bound against pathological inputs, not a
// normal termination path). Every termination path closes the open segment
// exactly once, even when it holds only its entry star.
//
// Randomness is injected: pass WithRand a fixed-seed *rand.Rand for
// deterministic tests. The default source is time-seeded.
package planner
