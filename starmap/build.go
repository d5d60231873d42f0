package starmap

import (
	"math"
	"sort"
)

// EuclideanDistance is the default edge weight between two stars when the
// link declares none.
func EuclideanDistance(a, b *Star) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// BuildGraph produces the shared routing graph: sorted distinct node ids and
// directed weighted edges, both directions per declared link, honoring the
// blocked pair-set.
//
// Malformed individual links (unknown target star) are skipped rather than
// failing the build; structural validation belongs to the ingestion layer.
// Repeated declarations of the same unordered pair are ignored, so parallel
// duplicates never reach the engines.
//
// Complexity: O(S·L + V log V) for S stars with L links each.
func BuildGraph(ds *Dataset, blocked Blocked) (nodes []int, edges []Edge) {
	nodeSet := make(map[int]bool)
	seen := make(map[[2]int]bool)

	for _, c := range ds.Constellations() {
		for si := range c.Stars {
			star := &c.Stars[si]
			nodeSet[star.ID] = true

			for _, link := range star.Links {
				target, ok := ds.Star(link.StarID)
				if !ok {
					continue // dangling link in a partial dataset
				}
				if blocked.Has(star.ID, link.StarID) {
					continue
				}

				key := pairKey(star.ID, link.StarID)
				if seen[key] {
					continue
				}
				seen[key] = true

				w := link.Weight
				if !link.HasWeight {
					w = EuclideanDistance(star, target)
				}

				edges = append(edges,
					Edge{From: star.ID, To: link.StarID, Weight: w},
					Edge{From: link.StarID, To: star.ID, Weight: w},
				)
				nodeSet[link.StarID] = true
			}
		}
	}

	nodes = make([]int, 0, len(nodeSet))
	for id := range nodeSet {
		nodes = append(nodes, id)
	}
	sort.Ints(nodes)

	return nodes, edges
}

// BuildFlowGraph is the capacity variant of BuildGraph for the max-flow
// engine. Edge weight is the link's declared capacity, else defaultCap.
//
// Unlike BuildGraph this variant fails fast: a declared negative capacity
// returns CapacityError, because no flow network can interpret it.
func BuildFlowGraph(ds *Dataset, blocked Blocked, defaultCap float64) (nodes []int, edges []Edge, err error) {
	nodeSet := make(map[int]bool)
	seen := make(map[[2]int]bool)

	for _, c := range ds.Constellations() {
		for si := range c.Stars {
			star := &c.Stars[si]
			nodeSet[star.ID] = true

			for _, link := range star.Links {
				if _, ok := ds.Star(link.StarID); !ok {
					continue
				}
				if blocked.Has(star.ID, link.StarID) {
					continue
				}

				key := pairKey(star.ID, link.StarID)
				if seen[key] {
					continue
				}
				seen[key] = true

				capacity := defaultCap
				if link.HasCapacity {
					capacity = link.Capacity
				}
				if capacity < 0 {
					return nil, nil, CapacityError{From: star.ID, To: link.StarID, Cap: capacity}
				}

				edges = append(edges,
					Edge{From: star.ID, To: link.StarID, Weight: capacity},
					Edge{From: link.StarID, To: star.ID, Weight: capacity},
				)
				nodeSet[link.StarID] = true
			}
		}
	}

	nodes = make([]int, 0, len(nodeSet))
	for id := range nodeSet {
		nodes = append(nodes, id)
	}
	sort.Ints(nodes)

	return nodes, edges, nil
}

// PathEdges converts an ordered node path into the normalized unordered
// pairs it traverses, in traversal order. Presentation code uses this to
// highlight a computed route on the map.
func PathEdges(path []int) [][2]int {
	if len(path) < 2 {
		return nil
	}

	pairs := make([][2]int, 0, len(path)-1)
	for i := 0; i < len(path)-1; i++ {
		pairs = append(pairs, pairKey(path[i], path[i+1]))
	}

	return pairs
}
