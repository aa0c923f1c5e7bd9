package fill

import (
	"fmt"
	"slices"
)

// Direction is an enum representing the orientation of a slot in a grid,
// either 'Across' or 'Down'.
type Direction int

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Across {
		return "across"
	}
	return "down"
}

// Slot is a fillable run of cells with a fixed origin, length and
// orientation. It is a comparable value type so it can key maps directly.
type Slot struct {
	Row    int
	Col    int
	Length int
	Dir    Direction
}

// Cell returns the grid coordinates of the k-th letter of the slot.
func (s Slot) Cell(k int) (row, col int) {
	if s.Dir == Across {
		return s.Row, s.Col + k
	}
	return s.Row + k, s.Col
}

func (s Slot) String() string {
	return fmt.Sprintf("%s(%d,%d,%d)", s.Dir, s.Row, s.Col, s.Length)
}

// Overlap is the pair of letter offsets at which two intersecting slots must
// agree: the X-th letter of the first slot equals the Y-th letter of the
// second.
type Overlap struct {
	X int
	Y int
}

// Puzzle holds the fixed slot set and the precomputed overlap table between
// slot pairs. It is built once and never mutated; recomputing overlaps per
// propagation step would make arc revision geometry-bound instead of a
// constant-time lookup.
type Puzzle struct {
	slots     []Slot
	overlaps  map[[2]Slot]Overlap
	neighbors map[Slot][]Slot

	width  int
	height int
}

func cmpSlot(a, b Slot) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	if a.Col != b.Col {
		return a.Col - b.Col
	}
	if a.Dir != b.Dir {
		return int(a.Dir) - int(b.Dir)
	}
	return a.Length - b.Length
}

// NewPuzzle validates slot geometry and precomputes the overlap table and
// per-slot neighbor lists. Structural problems (non-positive lengths,
// negative origins, duplicate slots, same-direction slots sharing cells)
// are reported here and never reach the search.
func NewPuzzle(slots []Slot) (*Puzzle, error) {
	p := &Puzzle{
		slots:     slices.Clone(slots),
		overlaps:  make(map[[2]Slot]Overlap),
		neighbors: make(map[Slot][]Slot),
	}
	slices.SortFunc(p.slots, cmpSlot)

	type occupant struct {
		slot Slot
		k    int
	}
	cells := make(map[[2]int][]occupant)

	for i, s := range p.slots {
		if s.Length <= 0 {
			return nil, fmt.Errorf("slot %s has non-positive length", s)
		}
		if s.Row < 0 || s.Col < 0 {
			return nil, fmt.Errorf("slot %s starts outside the grid", s)
		}
		if i > 0 && p.slots[i-1] == s {
			return nil, fmt.Errorf("duplicate slot %s", s)
		}
		for k := 0; k < s.Length; k++ {
			row, col := s.Cell(k)
			cells[[2]int{row, col}] = append(cells[[2]int{row, col}], occupant{slot: s, k: k})
			if row+1 > p.height {
				p.height = row + 1
			}
			if col+1 > p.width {
				p.width = col + 1
			}
		}
	}

	for _, occ := range cells {
		for a := 0; a < len(occ); a++ {
			for b := a + 1; b < len(occ); b++ {
				s1, s2 := occ[a].slot, occ[b].slot
				if s1.Dir == s2.Dir {
					return nil, fmt.Errorf("slots %s and %s overlap along the same direction", s1, s2)
				}
				// Perpendicular slots share at most one cell, so the first
				// (only) shared cell defines the overlap. Stored in both
				// directions for O(1) lookup.
				p.overlaps[[2]Slot{s1, s2}] = Overlap{X: occ[a].k, Y: occ[b].k}
				p.overlaps[[2]Slot{s2, s1}] = Overlap{X: occ[b].k, Y: occ[a].k}
				p.neighbors[s1] = append(p.neighbors[s1], s2)
				p.neighbors[s2] = append(p.neighbors[s2], s1)
			}
		}
	}

	for s := range p.neighbors {
		slices.SortFunc(p.neighbors[s], cmpSlot)
	}
	return p, nil
}

// Slots returns the puzzle's slots in a stable order (row, column,
// direction). Callers must not mutate the returned slice.
func (p *Puzzle) Slots() []Slot {
	return p.slots
}

// Overlap returns the letter offsets shared by two slots, if they intersect.
func (p *Puzzle) Overlap(x, y Slot) (Overlap, bool) {
	ov, ok := p.overlaps[[2]Slot{x, y}]
	return ov, ok
}

// Neighbors returns the slots intersecting s, in a stable order. Callers
// must not mutate the returned slice.
func (p *Puzzle) Neighbors(s Slot) []Slot {
	return p.neighbors[s]
}

// Width returns the number of columns spanned by the puzzle's slots.
func (p *Puzzle) Width() int {
	return p.width
}

// Height returns the number of rows spanned by the puzzle's slots.
func (p *Puzzle) Height() int {
	return p.height
}
