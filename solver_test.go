package fill

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_CrossingPair(t *testing.T) {
	p, a, b := twoSlotPuzzle(t)
	s := NewSolver(p, []string{"cat", "dog", "art", "tip"})

	got, ok := s.Solve(context.Background())
	require.True(t, ok)
	assert.Equal(t, Assignment{a: "cat", b: "art"}, got)
}

func TestSolve_NoSupportingWord(t *testing.T) {
	p, _, _ := twoSlotPuzzle(t)
	s := NewSolver(p, []string{"cat", "dog"})

	got, ok := s.Solve(context.Background())
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestSolve_RequiresDistinctWords(t *testing.T) {
	a := Slot{Row: 0, Col: 0, Length: 3, Dir: Across}
	b := Slot{Row: 2, Col: 0, Length: 3, Dir: Across}
	p, err := NewPuzzle([]Slot{a, b})
	require.NoError(t, err)

	s := NewSolver(p, []string{"cat"})
	_, ok := s.Solve(context.Background())
	assert.False(t, ok)

	s = NewSolver(p, []string{"cat", "dog"})
	got, ok := s.Solve(context.Background())
	require.True(t, ok)
	assert.NotEqual(t, got[a], got[b])
	assert.True(t, p.Consistent(got))
}

func TestSolve_ThreeSlots(t *testing.T) {
	d := Slot{Row: 0, Col: 0, Length: 3, Dir: Down}
	a1 := Slot{Row: 0, Col: 0, Length: 2, Dir: Across}
	a2 := Slot{Row: 1, Col: 0, Length: 2, Dir: Across}
	p, err := NewPuzzle([]Slot{d, a1, a2})
	require.NoError(t, err)

	s := NewSolver(p, []string{"cat", "ca", "to", "at"})
	got, ok := s.Solve(context.Background())
	require.True(t, ok)
	assert.Equal(t, Assignment{d: "cat", a1: "ca", a2: "at"}, got)
}

func TestSolve_EmptyPuzzle(t *testing.T) {
	p, err := NewPuzzle(nil)
	require.NoError(t, err)

	s := NewSolver(p, []string{"cat"})
	got, ok := s.Solve(context.Background())
	require.True(t, ok)
	assert.Empty(t, got)
}

func TestSolve_CancelledContext(t *testing.T) {
	p, _, _ := twoSlotPuzzle(t)
	s := NewSolver(p, []string{"cat", "dog", "art", "tip"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok := s.Solve(ctx)
	assert.False(t, ok)
	assert.Error(t, ctx.Err())
}

func TestBacktrack_WithoutPropagation(t *testing.T) {
	p, a, b := twoSlotPuzzle(t)
	s := NewSolver(p, []string{"cat", "house", "art", "to"})

	// No node or arc consistency: wrong-length words stay in the domains
	// and are rejected during search instead.
	got, ok := s.Backtrack(context.Background(), nil)
	require.True(t, ok)
	assert.Equal(t, Assignment{a: "cat", b: "art"}, got)
}

func TestBacktrack_CompletesPartialAssignment(t *testing.T) {
	p, a, b := twoSlotPuzzle(t)
	s := NewSolver(p, []string{"cat", "dog", "art", "tip"})
	s.EnforceNodeConsistency()

	got, ok := s.Backtrack(context.Background(), Assignment{a: "cat"})
	require.True(t, ok)
	assert.Equal(t, Assignment{a: "cat", b: "art"}, got)
}

func TestBacktrack_DoesNotMutateCallerAssignment(t *testing.T) {
	p, a, _ := twoSlotPuzzle(t)
	s := NewSolver(p, []string{"cat", "dog", "art", "tip"})
	s.EnforceNodeConsistency()

	partial := Assignment{a: "cat"}
	got, ok := s.Backtrack(context.Background(), partial)
	require.True(t, ok)
	// The winning path assigns into the search's own copy, not the
	// caller's map.
	assert.Equal(t, Assignment{a: "cat"}, partial)
	assert.Len(t, got, 2)
}

func TestExtend_AllNeighborsAssigned(t *testing.T) {
	// Two disconnected crossing pairs. Assigning the second slot of the
	// first pair leaves no unassigned neighbors, so the other pair's
	// domains only lose the used word; no arcs are revised there.
	a := Slot{Row: 0, Col: 0, Length: 3, Dir: Across}
	b := Slot{Row: 0, Col: 1, Length: 3, Dir: Down}
	e := Slot{Row: 4, Col: 0, Length: 3, Dir: Across}
	f := Slot{Row: 4, Col: 1, Length: 3, Dir: Down}
	p, err := NewPuzzle([]Slot{a, b, e, f})
	require.NoError(t, err)

	s := NewSolver(p, []string{"cat", "dog", "art", "tip"})
	s.EnforceNodeConsistency()

	branch, ok := s.extend(s.domains, Assignment{a: "cat", b: "art"}, b, "art")
	require.True(t, ok)
	assert.Equal(t, []string{"cat", "dog", "tip"}, domainWords(branch[e]))
	assert.Equal(t, []string{"cat", "dog", "tip"}, domainWords(branch[f]))
}

func TestSolveParallel(t *testing.T) {
	p, a, b := twoSlotPuzzle(t)
	s := NewSolver(p, []string{"cat", "dog", "art", "tip"})

	got, ok := s.SolveParallel(context.Background(), 4)
	require.True(t, ok)
	assert.Equal(t, Assignment{a: "cat", b: "art"}, got)
}

func TestSolveParallel_SingleWorkerFallsBack(t *testing.T) {
	p, a, b := twoSlotPuzzle(t)
	s := NewSolver(p, []string{"cat", "dog", "art", "tip"})

	got, ok := s.SolveParallel(context.Background(), 1)
	require.True(t, ok)
	assert.Equal(t, Assignment{a: "cat", b: "art"}, got)
}

func TestSolveParallel_Unsatisfiable(t *testing.T) {
	p, _, _ := twoSlotPuzzle(t)
	s := NewSolver(p, []string{"cat", "dog"})

	got, ok := s.SolveParallel(context.Background(), 4)
	assert.False(t, ok)
	assert.Nil(t, got)
}
