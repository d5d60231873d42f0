// Package carrier models the resource-bounded traveling agent that the
// route planner simulates over the star map.
//
// A Carrier tracks energy (0–100), food stock in kilograms, current age,
// a fixed death age, the remaining lifespan in light-years, and an ordered
// health tier. Dead is terminal and absorbing: once reached — via lifespan
// exhaustion on travel, via energy hitting zero during investigation, or via
// a health event — every further mutating operation is a no-op.
//
// The Carrier has plain value semantics, so Clone is a total operation with
// no fallback path. Planning and simulation always run on a clone; a
// caller's original instance is never mutated by this library.
//
// Feeding yield per kilogram depends on the health tier:
//
//	Excellent 5, Good 4, Regular 3, Poor 2, Dying 1, Dead 0
//
// The table is carried over from the source system as given.
//
// # Step runtime
//
// Runtime applies full per-star visit steps to its own clone of a carrier in
// a fixed order — travel, feed, investigate, hypergiant boost, direct
// resource deltas and health override — recording a StepReport per step and
// invoking an optional update callback so presentation code can follow the
// simulation live.
package carrier
