package fill

import (
	"slices"
	"strings"
)

// selectUnassignedSlot picks the unassigned slot with the fewest remaining
// domain values, breaking ties by highest degree and then by the stable slot
// order, so the choice never depends on map iteration order. Returns false
// when every slot is assigned.
func selectUnassignedSlot(p *Puzzle, d domains, a Assignment) (Slot, bool) {
	var best Slot
	bestSize, bestDegree := -1, -1
	for _, slot := range p.Slots() {
		if _, assigned := a[slot]; assigned {
			continue
		}
		size := d[slot].Size()
		degree := len(p.Neighbors(slot))
		if bestSize == -1 || size < bestSize || (size == bestSize && degree > bestDegree) {
			best, bestSize, bestDegree = slot, size, degree
		}
	}
	return best, bestSize != -1
}

// eliminationScore counts how many words the candidate would rule out across
// the domains of the slot's unassigned neighbors.
func eliminationScore(p *Puzzle, d domains, a Assignment, slot Slot, word string) int {
	score := 0
	for _, n := range p.Neighbors(slot) {
		if _, assigned := a[n]; assigned {
			continue
		}
		ov, ok := p.Overlap(slot, n)
		if !ok || ov.X >= len(word) {
			continue
		}
		nd := d[n]
		score += nd.Size() - nd.SupportCount(ov.Y, rune(word[ov.X]))
	}
	return score
}

// orderValues returns the slot's domain ordered by least-constraining value:
// candidates that eliminate the fewest options from unassigned neighboring
// domains come first. Ties break lexicographically. Purely advisory; no
// domain is mutated.
func orderValues(p *Puzzle, d domains, a Assignment, slot Slot) []string {
	type scored struct {
		word  string
		score int
	}
	values := make([]scored, 0, d[slot].Size())
	for word := range d[slot].Words() {
		values = append(values, scored{word: word, score: eliminationScore(p, d, a, slot, word)})
	}
	slices.SortStableFunc(values, func(x, y scored) int {
		if x.score != y.score {
			return x.score - y.score
		}
		return strings.Compare(x.word, y.word)
	})
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.word
	}
	return out
}
