package fill

import (
	"context"
	"maps"

	"crossfilled.com/fill/pkg/primitives"
)

// Solver fills a puzzle's slots from a word list so that every pair of
// intersecting slots agrees on the shared letter and no word is used twice.
//
// Domains shrink monotonically under node and arc consistency before the
// search starts. During search each branch works on its own shallow clone of
// the domain map (WordSets are persistent values), so an abandoned branch
// leaves every other branch's domains untouched.
type Solver struct {
	puzzle  *Puzzle
	domains domains
}

// NewSolver creates a solver with every slot's domain initialized to the
// full word list.
func NewSolver(p *Puzzle, words []string) *Solver {
	u := primitives.NewUniverse(words)
	d := make(domains, len(p.Slots()))
	for _, slot := range p.Slots() {
		d[slot] = u.Full()
	}
	return &Solver{puzzle: p, domains: d}
}

// Puzzle returns the problem model being solved.
func (s *Solver) Puzzle() *Puzzle {
	return s.puzzle
}

// Domain returns the current candidate set for a slot.
func (s *Solver) Domain(slot Slot) primitives.WordSet {
	return s.domains[slot]
}

// EnforceNodeConsistency removes from each slot's domain every word whose
// length differs from the slot's length. Idempotent.
func (s *Solver) EnforceNodeConsistency() {
	for _, slot := range s.puzzle.Slots() {
		s.domains[slot] = s.domains[slot].WithLength(slot.Length)
	}
}

// Revise makes slot x arc-consistent with slot y, pruning from x's domain
// every word with no supporting word in y's domain at the overlap offsets.
// Returns whether x's domain changed.
func (s *Solver) Revise(x, y Slot) bool {
	return revise(s.puzzle, s.domains, x, y)
}

// EnforceArcConsistency propagates the binary overlap constraints to
// closure, starting from the given arcs (or from every intersecting pair
// when arcs is nil). Returns false iff some domain became empty, in which
// case the puzzle is unsatisfiable under the current domains.
func (s *Solver) EnforceArcConsistency(arcs []Arc) bool {
	return propagate(s.puzzle, s.domains, arcs)
}

// Solve enforces node and arc consistency and then runs backtracking
// search. It returns the complete assignment and true, or nil and false if
// no assignment satisfies all constraints (or ctx was cancelled; the caller
// can distinguish via ctx.Err()).
func (s *Solver) Solve(ctx context.Context) (Assignment, bool) {
	s.EnforceNodeConsistency()
	if !s.EnforceArcConsistency(nil) {
		return nil, false
	}
	return s.backtrack(ctx, Assignment{}, s.domains)
}

// Backtrack searches for a completion of the given partial assignment using
// the solver's current domains, without running any up-front propagation.
// Propagation is an optimization, not a correctness requirement: skipping it
// never changes the answer, only the time to find it. A nil assignment is
// treated as empty; the caller's map is never modified.
func (s *Solver) Backtrack(ctx context.Context, a Assignment) (Assignment, bool) {
	a = maps.Clone(a)
	if a == nil {
		a = Assignment{}
	}
	return s.backtrack(ctx, a, s.domains)
}

func (s *Solver) backtrack(ctx context.Context, a Assignment, d domains) (Assignment, bool) {
	if s.puzzle.Complete(a) {
		return maps.Clone(a), true
	}
	if ctx.Err() != nil {
		return nil, false
	}

	slot, ok := selectUnassignedSlot(s.puzzle, d, a)
	if !ok {
		return nil, false
	}

	for _, word := range orderValues(s.puzzle, d, a, slot) {
		a[slot] = word
		if s.puzzle.Consistent(a) {
			if branch, viable := s.extend(d, a, slot, word); viable {
				if result, found := s.backtrack(ctx, a, branch); found {
					return result, true
				}
			}
		}
		delete(a, slot)
	}
	return nil, false
}

// extend builds the branch-local domains that follow from assigning word to
// slot: the slot's domain collapses to the word, the word is struck from
// every other unassigned domain, and arc consistency is re-established
// starting from the arcs into the assigned slot. Returns false if any
// domain empties, meaning the branch cannot lead to a solution.
func (s *Solver) extend(d domains, a Assignment, slot Slot, word string) (domains, bool) {
	branch := maps.Clone(d)
	branch[slot] = branch[slot].Only(word)

	for _, other := range s.puzzle.Slots() {
		if other == slot {
			continue
		}
		if _, assigned := a[other]; assigned {
			continue
		}
		pruned := branch[other].Remove(word)
		if pruned.IsEmpty() {
			return nil, false
		}
		branch[other] = pruned
	}

	var seed []Arc
	for _, n := range s.puzzle.Neighbors(slot) {
		if _, assigned := a[n]; !assigned {
			seed = append(seed, Arc{X: n, Y: slot})
		}
	}
	// A nil seed would mean "all arcs" to propagate; with every neighbor
	// assigned there is nothing to re-establish.
	if len(seed) > 0 && !propagate(s.puzzle, branch, seed) {
		return nil, false
	}
	return branch, true
}
