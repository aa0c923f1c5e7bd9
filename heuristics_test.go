package fill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threeSlotPuzzle builds an H shape: one across slot crossed by two down
// slots, so the across slot has degree 2 and each down slot degree 1.
func threeSlotPuzzle(t *testing.T) (*Puzzle, Slot, Slot, Slot) {
	t.Helper()
	a := Slot{Row: 0, Col: 0, Length: 3, Dir: Across}
	b := Slot{Row: 0, Col: 0, Length: 3, Dir: Down}
	c := Slot{Row: 0, Col: 2, Length: 3, Dir: Down}
	p, err := NewPuzzle([]Slot{a, b, c})
	require.NoError(t, err)
	return p, a, b, c
}

func TestSelectUnassignedSlot_DegreeTieBreak(t *testing.T) {
	p, a, _, _ := threeSlotPuzzle(t)
	s := NewSolver(p, []string{"cat", "dog", "art", "tip"})
	s.EnforceNodeConsistency()

	// All domains are the same size, so degree decides: the across slot
	// crosses both down slots.
	slot, ok := selectUnassignedSlot(p, s.domains, Assignment{})
	require.True(t, ok)
	assert.Equal(t, a, slot)
}

func TestSelectUnassignedSlot_SmallestDomainWins(t *testing.T) {
	p, _, _, c := threeSlotPuzzle(t)
	s := NewSolver(p, []string{"cat", "dog", "art", "tip"})
	s.EnforceNodeConsistency()
	s.domains[c] = s.domains[c].Only("tip")

	slot, ok := selectUnassignedSlot(p, s.domains, Assignment{})
	require.True(t, ok)
	assert.Equal(t, c, slot)
}

func TestSelectUnassignedSlot_SkipsAssigned(t *testing.T) {
	p, a, b, _ := threeSlotPuzzle(t)
	s := NewSolver(p, []string{"cat", "dog", "art", "tip"})
	s.EnforceNodeConsistency()

	// With the across slot assigned, the two down slots tie on size and
	// degree; the stable slot order decides.
	slot, ok := selectUnassignedSlot(p, s.domains, Assignment{a: "cat"})
	require.True(t, ok)
	assert.Equal(t, b, slot)
}

func TestSelectUnassignedSlot_AllAssigned(t *testing.T) {
	p, a, b, c := threeSlotPuzzle(t)
	s := NewSolver(p, []string{"cat", "dog", "art", "tip"})

	_, ok := selectUnassignedSlot(p, s.domains, Assignment{a: "cat", b: "car", c: "tip"})
	assert.False(t, ok)
}

func TestEliminationScore(t *testing.T) {
	p, a, b := twoSlotPuzzle(t)
	s := NewSolver(p, []string{"cat", "dog", "art", "tip"})
	s.EnforceNodeConsistency()

	// "cat" puts 'a' at the crossing, keeping only "art" of b's four words.
	assert.Equal(t, 3, eliminationScore(p, s.domains, Assignment{}, a, "cat"))
	// "dog" puts 'o' at the crossing, which nothing in b supports.
	assert.Equal(t, 4, eliminationScore(p, s.domains, Assignment{}, a, "dog"))
	// An assigned neighbor no longer counts.
	assert.Equal(t, 0, eliminationScore(p, s.domains, Assignment{b: "art"}, a, "cat"))
}

func TestOrderValues_LeastConstrainingFirst(t *testing.T) {
	p, a, _ := twoSlotPuzzle(t)
	s := NewSolver(p, []string{"cat", "dog", "art", "tip"})
	s.EnforceNodeConsistency()

	// "cat" scores 3, the rest score 4 and fall back to lexicographic order.
	got := orderValues(p, s.domains, Assignment{}, a)
	assert.Equal(t, []string{"cat", "art", "dog", "tip"}, got)
}
