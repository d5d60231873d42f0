// Package starway is an in-memory toolkit for routing across star maps —
// from the map primitives to shortest paths, max-flow and an energy-aware
// expedition planner.
//
// 🚀 What is starway?
//
//	A small, deterministic library that brings together:
//		• Map primitives: constellations, stars, links & blocked pairs
//		• Graph building: weighted and capacitated edge lists from a dataset
//		• Shortest paths: Bellman–Ford (negative weights), Floyd–Warshall (all pairs)
//		• Flow: Edmonds–Karp max-flow with minimum-cut extraction
//		• Simulation: a carrier state machine (energy, food, health, lifespan)
//		• Planning: greedy expeditions with hypergiant jumps between galaxies
//
// ✨ Why choose starway?
//
//   - Deterministic – sorted iteration everywhere, injectable randomness
//   - Value semantics – carriers clone cheaply, engines are reusable
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under six subpackages:
//
//	starmap/       — dataset, blocked pairs, graph builders, hypergiants
//	bellmanford/   — single-source shortest paths with negative-cycle detection
//	floydwarshall/ — all-pairs distances with next-hop path reconstruction
//	maxflow/       — Edmonds–Karp max-flow and min-cut
//	carrier/       — carrier state machine and step runtime
//	planner/       — greedy route planner over the star map
//
// Quick ASCII example:
//
//	    Lyra          Cygnus
//	    1───2    ⇠jump⇢    10
//	    │   │              │
//	    3───★              11
//
//	a hypergiant (★) lets the carrier leave one galaxy for another.
//
// Dive into the subpackage docs for complexity notes and full examples.
//
//	go get github.com/nrequena/starway
package starway
