package starmap

import "sort"

// Dataset is the loaded star map: the constellation list plus two indices
// built once at construction — star id → star, and star id → names of the
// constellations that reference it.
//
// A Dataset is read-only after NewDataset; every engine run takes its own
// graph snapshot via BuildGraph / BuildFlowGraph.
type Dataset struct {
	constellations []Constellation
	byID           map[int]*Star
	memberships    map[int][]string
}

// NewDataset indexes the given constellations.
//
// Duplicate star ids resolve to the first declaration: the star remains one
// logical entity, and later constellations only extend its membership list.
func NewDataset(constellations []Constellation) *Dataset {
	d := &Dataset{
		constellations: constellations,
		byID:           make(map[int]*Star),
		memberships:    make(map[int][]string),
	}

	// 1) First pass: register every star under its first declaration.
	for ci := range d.constellations {
		c := &d.constellations[ci]
		for si := range c.Stars {
			s := &c.Stars[si]
			if _, seen := d.byID[s.ID]; !seen {
				d.byID[s.ID] = s
			}
			d.memberships[s.ID] = appendName(d.memberships[s.ID], c.Name)
		}
	}

	// 2) Second pass: a link from constellation c to an already-known star
	//    also makes that star a member of c.
	for ci := range d.constellations {
		c := &d.constellations[ci]
		for si := range c.Stars {
			for _, l := range c.Stars[si].Links {
				if _, known := d.byID[l.StarID]; known {
					d.memberships[l.StarID] = appendName(d.memberships[l.StarID], c.Name)
				}
			}
		}
	}

	return d
}

// appendName appends name unless already present (membership lists are tiny).
func appendName(names []string, name string) []string {
	for _, n := range names {
		if n == name {
			return names
		}
	}

	return append(names, name)
}

// Star returns the star with the given id, or ok=false if undeclared.
func (d *Dataset) Star(id int) (*Star, bool) {
	s, ok := d.byID[id]

	return s, ok
}

// Constellations returns the constellation list as loaded.
func (d *Dataset) Constellations() []Constellation { return d.constellations }

// Memberships returns the names of the constellations referencing star id,
// in declaration order.
func (d *Dataset) Memberships(id int) []string { return d.memberships[id] }

// SharedStars lists the ids of stars referenced by more than one
// constellation, sorted ascending.
func (d *Dataset) SharedStars() []int {
	var shared []int
	for id, names := range d.memberships {
		if len(names) > 1 {
			shared = append(shared, id)
		}
	}
	sort.Ints(shared)

	return shared
}
