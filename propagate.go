package fill

import (
	"slices"

	"crossfilled.com/fill/pkg/primitives"
)

// Arc is an ordered pair of intersecting slots: revising (X, Y) prunes the
// domain of X against the domain of Y.
type Arc struct {
	X Slot
	Y Slot
}

type domains map[Slot]primitives.WordSet

// revise removes from the domain of x every word with no supporting word in
// the domain of y at the overlap offsets. Returns whether the domain of x
// changed. A pair with no overlap is a no-op.
func revise(p *Puzzle, d domains, x, y Slot) bool {
	ov, ok := p.Overlap(x, y)
	if !ok {
		return false
	}
	var supported primitives.CharSet
	d[y].CharsAt(&supported, ov.Y)
	pruned := d[x].FilterAny(&supported, ov.X)
	if pruned.Size() == d[x].Size() {
		return false
	}
	d[x] = pruned
	return true
}

// propagate runs the arc-consistency worklist to closure. When arcs is nil
// the worklist starts with every intersecting pair in both directions.
// Returns false as soon as a revision empties a domain; returns true only
// once the worklist has fully drained, at which point every remaining word
// in every domain has support in each neighbor.
func propagate(p *Puzzle, d domains, arcs []Arc) bool {
	// Cloned so that re-enqueued arcs never append into spare capacity of
	// the caller's slice.
	queue := slices.Clone(arcs)
	if queue == nil {
		queue = allArcs(p)
	}
	for len(queue) > 0 {
		arc := queue[0]
		queue = queue[1:]
		if !revise(p, d, arc.X, arc.Y) {
			continue
		}
		if d[arc.X].IsEmpty() {
			return false
		}
		// The domain of X shrank: every other neighbor's consistency with X
		// must be re-checked.
		for _, z := range p.Neighbors(arc.X) {
			if z != arc.Y {
				queue = append(queue, Arc{X: z, Y: arc.X})
			}
		}
	}
	return true
}

// allArcs returns every intersecting slot pair in both directions, in the
// stable slot order.
func allArcs(p *Puzzle) []Arc {
	arcs := make([]Arc, 0, len(p.overlaps))
	for _, x := range p.Slots() {
		for _, y := range p.Neighbors(x) {
			arcs = append(arcs, Arc{X: x, Y: y})
		}
	}
	return arcs
}
