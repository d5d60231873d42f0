package starmap

// pairKey normalizes an unordered star-id pair to (min, max).
func pairKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}

// Blocked is a set of unordered star-id pairs excluded from graph
// construction. It is owned by the caller (interactive edge-toggling lives
// outside this library) and passed fresh into each build call.
type Blocked map[[2]int]bool

// NewBlocked builds a set from zero or more (u, v) pairs.
func NewBlocked(pairs ...[2]int) Blocked {
	b := make(Blocked, len(pairs))
	for _, p := range pairs {
		b.Block(p[0], p[1])
	}

	return b
}

// Block excludes both directed edges between u and v.
func (b Blocked) Block(u, v int) { b[pairKey(u, v)] = true }

// Unblock restores the pair. Unblocking a pair that was never blocked is a
// no-op.
func (b Blocked) Unblock(u, v int) { delete(b, pairKey(u, v)) }

// Has reports whether the unordered pair (u, v) is blocked.
func (b Blocked) Has(u, v int) bool { return b[pairKey(u, v)] }
