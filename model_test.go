package fill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPuzzle_Overlaps(t *testing.T) {
	a := Slot{Row: 0, Col: 0, Length: 3, Dir: Across}
	b := Slot{Row: 0, Col: 1, Length: 3, Dir: Down}
	p, err := NewPuzzle([]Slot{a, b})
	require.NoError(t, err)

	ov, ok := p.Overlap(a, b)
	require.True(t, ok)
	assert.Equal(t, Overlap{X: 1, Y: 0}, ov)

	// Symmetric lookup with swapped offsets.
	ov, ok = p.Overlap(b, a)
	require.True(t, ok)
	assert.Equal(t, Overlap{X: 0, Y: 1}, ov)

	assert.Equal(t, []Slot{b}, p.Neighbors(a))
	assert.Equal(t, []Slot{a}, p.Neighbors(b))

	assert.Equal(t, 3, p.Width())
	assert.Equal(t, 3, p.Height())
}

func TestNewPuzzle_NoOverlap(t *testing.T) {
	a := Slot{Row: 0, Col: 0, Length: 3, Dir: Across}
	b := Slot{Row: 2, Col: 0, Length: 3, Dir: Across}
	p, err := NewPuzzle([]Slot{a, b})
	require.NoError(t, err)

	_, ok := p.Overlap(a, b)
	assert.False(t, ok)
	assert.Empty(t, p.Neighbors(a))
}

func TestNewPuzzle_StructuralErrors(t *testing.T) {
	tests := []struct {
		name  string
		slots []Slot
	}{
		{"zero length", []Slot{{Row: 0, Col: 0, Length: 0, Dir: Across}}},
		{"negative origin", []Slot{{Row: -1, Col: 0, Length: 3, Dir: Across}}},
		{"duplicate slot", []Slot{
			{Row: 0, Col: 0, Length: 3, Dir: Across},
			{Row: 0, Col: 0, Length: 3, Dir: Across},
		}},
		{"same-direction overlap", []Slot{
			{Row: 0, Col: 0, Length: 3, Dir: Across},
			{Row: 0, Col: 2, Length: 3, Dir: Across},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPuzzle(tt.slots)
			assert.Error(t, err)
		})
	}
}

func TestSlot_Cell(t *testing.T) {
	across := Slot{Row: 2, Col: 1, Length: 4, Dir: Across}
	row, col := across.Cell(2)
	assert.Equal(t, 2, row)
	assert.Equal(t, 3, col)

	down := Slot{Row: 2, Col: 1, Length: 4, Dir: Down}
	row, col = down.Cell(2)
	assert.Equal(t, 4, row)
	assert.Equal(t, 1, col)
}

func TestSlots_StableOrder(t *testing.T) {
	a := Slot{Row: 1, Col: 0, Length: 3, Dir: Across}
	b := Slot{Row: 0, Col: 1, Length: 3, Dir: Down}
	c := Slot{Row: 0, Col: 0, Length: 2, Dir: Down}
	p, err := NewPuzzle([]Slot{a, b, c})
	require.NoError(t, err)

	assert.Equal(t, []Slot{c, b, a}, p.Slots())
}
