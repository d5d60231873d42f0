package starmap

import "sort"

// ConnectedComponents finds the disjoint islands of a built graph.
// Each component is a sorted slice of node ids; components are ordered by
// their smallest member, so the result is deterministic for equal inputs.
//
// The star map is allowed to be multi-component: hypergiant jumps are the
// only way the planner crosses between islands, and diagnostics code uses
// this to report how fragmented a dataset is.
//
// Time:   O(V + E)
// Memory: O(V + E) for the adjacency index and visited set.
func ConnectedComponents(nodes []int, edges []Edge) [][]int {
	adj := make(map[int][]int, len(nodes))
	for _, e := range edges {
		adj[e.From] = append(adj[e.From], e.To)
	}

	seen := make(map[int]bool, len(nodes))
	var comps [][]int

	for _, start := range nodes {
		if seen[start] {
			continue
		}

		// BFS to collect the island around start.
		queue := []int{start}
		seen[start] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, v := range adj[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}

		sort.Ints(comp)
		comps = append(comps, comp)
	}

	sort.Slice(comps, func(i, j int) bool { return comps[i][0] < comps[j][0] })

	return comps
}
