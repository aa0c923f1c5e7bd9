package fill

// Assignment is a partial mapping from slot to the word filling it. It is
// built incrementally during search; unassigned slots impose no constraint.
type Assignment map[Slot]string

// Complete reports whether every slot of the puzzle is assigned.
func (p *Puzzle) Complete(a Assignment) bool {
	return len(a) == len(p.slots)
}

// Consistent reports whether the assignment violates no constraint: all
// assigned words are pairwise distinct, each word's length matches its slot,
// and every pair of assigned neighboring slots agrees at the overlap
// offsets. Only the assigned subset is checked.
func (p *Puzzle) Consistent(a Assignment) bool {
	used := make(map[string]bool, len(a))
	for slot, word := range a {
		if len(word) != slot.Length {
			return false
		}
		if used[word] {
			return false
		}
		used[word] = true
	}
	for slot, word := range a {
		for _, n := range p.Neighbors(slot) {
			nword, assigned := a[n]
			if !assigned {
				continue
			}
			ov, ok := p.Overlap(slot, n)
			if !ok {
				continue
			}
			if word[ov.X] != nword[ov.Y] {
				return false
			}
		}
	}
	return true
}
