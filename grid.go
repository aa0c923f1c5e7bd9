package fill

import (
	"fmt"
	"strings"
)

const (
	// BlockedCell marks a grid cell covered by no slot.
	BlockedCell = '█'
	// EmptyCell marks a fillable cell whose slot is unassigned.
	EmptyCell = ' '
)

// Grid is a 2D grid of runes.
//
// It represents a puzzle's cells with an assignment's letters laid in.
type Grid struct {
	grid [][]rune
}

// RenderGrid lays a (possibly partial) assignment into the puzzle's cells.
// Cells covered by no slot are blocked; fillable cells not covered by the
// assignment stay empty.
func RenderGrid(p *Puzzle, a Assignment) Grid {
	g := make([][]rune, p.Height())
	for y := range g {
		g[y] = make([]rune, p.Width())
		for x := range g[y] {
			g[y][x] = BlockedCell
		}
	}
	for _, slot := range p.Slots() {
		for k := 0; k < slot.Length; k++ {
			row, col := slot.Cell(k)
			g[row][col] = EmptyCell
		}
	}
	for slot, word := range a {
		for k := 0; k < slot.Length && k < len(word); k++ {
			row, col := slot.Cell(k)
			g[row][col] = rune(word[k])
		}
	}
	return Grid{grid: g}
}

func (g Grid) Width() int {
	if len(g.grid) == 0 {
		return 0
	}
	return len(g.grid[0])
}

func (g Grid) Height() int {
	return len(g.grid)
}

func (g Grid) Get(x, y int) rune {
	return g.grid[y][x]
}

func (g Grid) Repr() string {
	lines := make([]string, g.Height())
	for y := range g.grid {
		lines[y] = string(g.grid[y])
	}
	return strings.Join(lines, "\n")
}

func (g Grid) DebugString() string {
	return fmt.Sprintf("Grid{width: %d, height: %d, grid: %v}", g.Width(), g.Height(), g.grid)
}
