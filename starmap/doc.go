// Package starmap defines the in-memory star/constellation dataset and the
// graph builder shared by every routing engine in starway.
//
// The dataset arrives from an external ingestion layer as a list of
// constellations, each holding stars with 2-D coordinates, optional galaxy
// membership, a hypergiant flag, per-visit parameters, and outgoing links.
// A star may be referenced by several constellations but remains one logical
// entity keyed by its integer id.
//
// # Graph construction
//
// BuildGraph turns a Dataset plus a Blocked pair-set into a normalized
// (nodes, edges) pair:
//
//   - node ids are distinct and sorted ascending;
//   - every declared link yields two directed edges (u→v and v→u) unless the
//     unordered pair is blocked, in which case neither is produced;
//   - repeated declarations of the same unordered pair are ignored (the first
//     declared weight wins);
//   - edge weight is the link's declared weight, else the Euclidean distance
//     between the endpoint coordinates;
//   - links to undeclared stars are silently skipped.
//
// BuildFlowGraph is the capacity variant used by the max-flow engine: link
// capacities replace weights, a missing capacity falls back to a caller
// default, and a negative capacity is rejected with CapacityError because it
// has no flow-network interpretation.
//
// # Hypergiants
//
// Hypergiant stars enable zero-distance jumps between galaxies. This package
// provides the inventory helpers (collection, per-galaxy grouping, the
// at-most-two-per-galaxy rule check, and jump-destination listing) consumed
// by the route planner and by external presentation code.
//
// # Blocked pairs
//
// Blocked is an unordered node-id pair set. Blocking (u,v) removes both
// directed edges between u and v from every engine's view of the graph;
// the set is supplied fresh to each build call and never retained.
package starmap
