package starmap

import (
	"fmt"
	"sort"
	"strings"
)

// MaxHypergiantsPerGalaxy is the dataset rule checked by
// CheckHypergiantRule. Exceeding it does not fail any engine; it only
// produces warnings for the ingestion/report side.
const MaxHypergiantsPerGalaxy = 2

// Hypergiant is the inventory view of a hypergiant star.
type Hypergiant struct {
	StarID int
	Label  string
	Galaxy GalaxyRef
}

// JumpOption is one candidate landing point listed by JumpDestinations.
type JumpOption struct {
	StarID int
	Label  string
	Galaxy GalaxyRef
}

// Hypergiants scans the dataset and returns every star flagged as a
// hypergiant, in constellation declaration order. A star shared between
// constellations appears once.
func Hypergiants(ds *Dataset) []Hypergiant {
	var out []Hypergiant
	seen := make(map[int]bool)

	for _, c := range ds.Constellations() {
		for si := range c.Stars {
			s := &c.Stars[si]
			if !s.Hypergiant || seen[s.ID] {
				continue
			}
			seen[s.ID] = true
			out = append(out, Hypergiant{StarID: s.ID, Label: s.Label, Galaxy: s.Galaxy})
		}
	}

	return out
}

// HypergiantsByGalaxy groups the inventory by galaxy membership.
func HypergiantsByGalaxy(ds *Dataset) map[GalaxyRef][]Hypergiant {
	grouped := make(map[GalaxyRef][]Hypergiant)
	for _, hg := range Hypergiants(ds) {
		grouped[hg.Galaxy] = append(grouped[hg.Galaxy], hg)
	}

	return grouped
}

// CheckHypergiantRule returns one warning per galaxy holding more than
// MaxHypergiantsPerGalaxy hypergiants. An empty result means the dataset
// satisfies the rule.
func CheckHypergiantRule(hgs []Hypergiant) []string {
	grouped := make(map[GalaxyRef][]Hypergiant)
	for _, hg := range hgs {
		grouped[hg.Galaxy] = append(grouped[hg.Galaxy], hg)
	}

	// Deterministic warning order: invalid galaxies sorted by id.
	var bad []GalaxyRef
	for g, items := range grouped {
		if len(items) > MaxHypergiantsPerGalaxy {
			bad = append(bad, g)
		}
	}
	sort.Slice(bad, func(i, j int) bool {
		if bad[i].Valid != bad[j].Valid {
			return !bad[i].Valid
		}

		return bad[i].ID < bad[j].ID
	})

	var warnings []string
	for _, g := range bad {
		items := grouped[g]
		names := make([]string, len(items))
		for i, hg := range items {
			names[i] = fmt.Sprintf("%s#%d", hg.Label, hg.StarID)
		}
		warnings = append(warnings, fmt.Sprintf(
			"%s has %d hypergiants (>%d): %s",
			g, len(items), MaxHypergiantsPerGalaxy, strings.Join(names, ", "),
		))
	}

	return warnings
}

// JumpDestinations lists every star outside the current galaxy as a
// candidate landing point, sorted by (galaxy, label) for stable display.
// The current star itself is excluded.
func JumpDestinations(ds *Dataset, currentStar int, currentGalaxy GalaxyRef) []JumpOption {
	var opts []JumpOption
	seen := make(map[int]bool)

	for _, c := range ds.Constellations() {
		for si := range c.Stars {
			s := &c.Stars[si]
			if s.ID == currentStar || s.Galaxy == currentGalaxy || seen[s.ID] {
				continue
			}
			seen[s.ID] = true
			opts = append(opts, JumpOption{StarID: s.ID, Label: s.Label, Galaxy: s.Galaxy})
		}
	}

	sort.Slice(opts, func(i, j int) bool {
		gi, gj := opts[i].Galaxy, opts[j].Galaxy
		if gi != gj {
			if gi.Valid != gj.Valid {
				return !gi.Valid
			}

			return gi.ID < gj.ID
		}

		return opts[i].Label < opts[j].Label
	})

	return opts
}
