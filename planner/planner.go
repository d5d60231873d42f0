package planner

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/nrequena/starway/carrier"
	"github.com/nrequena/starway/starmap"
)

// neighbor is one adjacency entry of the built graph.
type neighbor struct {
	to   int
	dist float64
}

// Planner pre-indexes the dataset once and is then reusable across runs.
type Planner struct {
	ds          *starmap.Dataset
	hgsByGalaxy map[starmap.GalaxyRef][]int
}

// New indexes the hypergiant inventory by galaxy. Landing candidates within
// a galaxy are kept sorted by star id for reproducible selection.
func New(ds *starmap.Dataset) *Planner {
	byGalaxy := make(map[starmap.GalaxyRef][]int)
	for _, hg := range starmap.Hypergiants(ds) {
		byGalaxy[hg.Galaxy] = append(byGalaxy[hg.Galaxy], hg.StarID)
	}
	for _, ids := range byGalaxy {
		sort.Ints(ids)
	}

	return &Planner{ds: ds, hgsByGalaxy: byGalaxy}
}

// Plan simulates a maximal route from startID for a clone of real,
// honoring the blocked pair-set. The caller's carrier is never mutated.
func (p *Planner) Plan(startID int, real *carrier.Carrier, blocked starmap.Blocked, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// 1) Validate the start and clone the carrier.
	if _, ok := p.ds.Star(startID); !ok {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, startID)
	}
	c := real.Clone()

	// 2) Build the graph snapshot for this run's blocked set.
	_, edges := starmap.BuildGraph(p.ds, blocked)
	adj := make(map[int][]neighbor)
	for _, e := range edges {
		adj[e.From] = append(adj[e.From], neighbor{to: e.To, dist: e.Weight})
	}

	// 3) Traversal state. Visited bookkeeping is cumulative across jumps.
	current := startID
	currentGalaxy := p.galaxyOf(current)
	visitedStars := map[int]bool{current: true}
	visitedGalaxies := map[starmap.GalaxyRef]bool{currentGalaxy: true}
	galaxyOrder := []starmap.GalaxyRef{currentGalaxy}

	res := &Result{}
	segment := Segment{Galaxy: currentGalaxy, EntryStar: current, Path: []int{current}}

	closeRun := func() {
		res.Segments = append(res.Segments, segment)
	}

	// openSegment starts a fresh per-galaxy stretch after a jump.
	openSegment := func(galaxy starmap.GalaxyRef, entry int) {
		segment = Segment{Galaxy: galaxy, EntryStar: entry, Path: []int{entry}}
	}

	// jumpOut closes the current segment through the hypergiant at current
	// and lands in a new galaxy. Returns false when no eligible destination
	// remains.
	jumpOut := func() bool {
		dest, landing, ok := p.pickJump(rng, currentGalaxy, visitedGalaxies)
		if !ok {
			return false
		}

		// Buff applies to the clone before the jump; the jump itself costs
		// zero travel distance.
		before := c.Snapshot()
		c.HypergiantBoost()
		after := c.Snapshot()
		res.Recap = append(res.Recap, RecapRow{
			Galaxy:      currentGalaxy,
			Kind:        StepBuff,
			StarLabel:   p.labelOf(current),
			Hypergiant:  true,
			Detail:      fmt.Sprintf("%s: hypergiant buff applied (next leg)", p.labelOf(current)),
			EnergyDelta: after.Energy - before.Energy,
			FoodDelta:   after.Food - before.Food,
			LifeDelta:   after.LifeLeft - before.LifeLeft,
		})

		exit := current
		segment.ExitHypergiant = &exit
		segment.Jump = &Jump{Galaxy: dest, LandingStar: landing}
		res.Segments = append(res.Segments, segment)

		currentGalaxy = dest
		if !visitedGalaxies[dest] {
			visitedGalaxies[dest] = true
			galaxyOrder = append(galaxyOrder, dest)
		}
		current = landing
		visitedStars[current] = true
		openSegment(dest, landing)

		return true
	}

	// 4) Main loop. The hop ceiling is a safety bound only.
	for hops := 0; ; hops++ {
		if hops >= cfg.MaxHops {
			closeRun()
			break
		}

		// Lifespan exhausted: nothing further is feasible, not even a jump.
		if c.LifeLeft <= 0 {
			closeRun()
			break
		}

		next, ok := p.chooseNext(current, currentGalaxy, adj, visitedStars, c)
		if !ok {
			// No in-galaxy move left; a hypergiant may still jump out.
			if p.isHypergiant(current) && jumpOut() {
				continue
			}
			closeRun()
			break
		}

		dist, ok := edgeDistance(adj, current, next)
		if !ok {
			closeRun()
			break
		}
		if c.LifeLeft-dist < 0 {
			closeRun()
			break
		}

		before := c.Snapshot()
		c.Travel(dist)
		after := c.Snapshot()
		res.Recap = append(res.Recap, RecapRow{
			Galaxy:      currentGalaxy,
			Kind:        StepMove,
			StarLabel:   p.labelOf(next),
			Hypergiant:  p.isHypergiant(next),
			Detail:      fmt.Sprintf("Reached %s (−%.1f ly life)", p.labelOf(next), dist),
			EnergyDelta: after.Energy - before.Energy,
			FoodDelta:   after.Food - before.Food,
			LifeDelta:   after.LifeLeft - before.LifeLeft,
		})

		current = next
		visitedStars[current] = true
		segment.Path = append(segment.Path, current)

		// Arriving on a hypergiant triggers an opportunistic jump attempt;
		// when no galaxy is eligible the walk simply continues here.
		if p.isHypergiant(current) {
			jumpOut()
		}
	}

	// 5) Flatten outputs.
	for _, seg := range res.Segments {
		res.VisitedStars = append(res.VisitedStars, seg.Path...)
	}
	res.VisitedGalaxies = galaxyOrder
	res.LifeLeft = c.LifeLeft
	res.Final = c.Snapshot()

	return res, nil
}

// chooseNext applies the greedy in-galaxy policy: among unvisited neighbors
// of current within currentGalaxy reachable with the remaining lifespan,
// prefer the nearest hypergiant, else the nearest star. Ties break by
// (distance, id).
func (p *Planner) chooseNext(
	current int,
	currentGalaxy starmap.GalaxyRef,
	adj map[int][]neighbor,
	visited map[int]bool,
	c *carrier.Carrier,
) (int, bool) {
	type candidate struct {
		dist float64
		id   int
		hg   bool
	}

	var cands []candidate
	for _, nb := range adj[current] {
		if visited[nb.to] {
			continue
		}
		star, ok := p.ds.Star(nb.to)
		if !ok || star.Galaxy != currentGalaxy {
			continue
		}
		if nb.dist > c.LifeLeft {
			continue
		}
		cands = append(cands, candidate{dist: nb.dist, id: nb.to, hg: star.Hypergiant})
	}
	if len(cands) == 0 {
		return 0, false
	}

	sort.Slice(cands, func(i, j int) bool {
		if cands[i].dist != cands[j].dist {
			return cands[i].dist < cands[j].dist
		}

		return cands[i].id < cands[j].id
	})

	for _, cand := range cands {
		if cand.hg {
			return cand.id, true
		}
	}

	return cands[0].id, true
}

// pickJump draws a destination galaxy and landing hypergiant uniformly among
// galaxies that differ from the current one, were never visited, and hold at
// least one hypergiant.
func (p *Planner) pickJump(
	rng *rand.Rand,
	currentGalaxy starmap.GalaxyRef,
	visited map[starmap.GalaxyRef]bool,
) (starmap.GalaxyRef, int, bool) {
	var galaxies []starmap.GalaxyRef
	for g, stars := range p.hgsByGalaxy {
		if g != currentGalaxy && !visited[g] && len(stars) > 0 {
			galaxies = append(galaxies, g)
		}
	}
	if len(galaxies) == 0 {
		return starmap.GalaxyRef{}, 0, false
	}

	// Candidate order is fixed before drawing so equal seeds replay equal runs.
	sort.Slice(galaxies, func(i, j int) bool {
		if galaxies[i].Valid != galaxies[j].Valid {
			return !galaxies[i].Valid
		}

		return galaxies[i].ID < galaxies[j].ID
	})

	dest := galaxies[rng.Intn(len(galaxies))]
	landings := p.hgsByGalaxy[dest]
	landing := landings[rng.Intn(len(landings))]

	return dest, landing, true
}

func (p *Planner) galaxyOf(id int) starmap.GalaxyRef {
	if s, ok := p.ds.Star(id); ok {
		return s.Galaxy
	}

	return starmap.GalaxyRef{}
}

func (p *Planner) isHypergiant(id int) bool {
	s, ok := p.ds.Star(id)

	return ok && s.Hypergiant
}

func (p *Planner) labelOf(id int) string {
	if s, ok := p.ds.Star(id); ok && s.Label != "" {
		return s.Label
	}

	return fmt.Sprintf("Star %d", id)
}

// edgeDistance looks up the weight of the directed edge u→v.
func edgeDistance(adj map[int][]neighbor, u, v int) (float64, bool) {
	for _, nb := range adj[u] {
		if nb.to == v {
			return nb.dist, true
		}
	}

	return 0, false
}
