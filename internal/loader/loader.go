// Package loader parses puzzle structure files and word lists into the
// in-memory forms the solver consumes. The solver itself knows nothing
// about file formats.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"crossfilled.com/fill"
)

// openCell is the structure-file marker for a fillable cell; any other
// character is blocked.
const openCell = '_'

// Structure reads a structure file and returns the slots it defines: every
// maximal horizontal or vertical run of at least two open cells becomes a
// slot. Lines may have different lengths; missing cells are blocked.
func Structure(r io.Reader) ([]fill.Slot, error) {
	var rows [][]rune
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rows = append(rows, []rune(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("structure is empty")
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	open := func(row, col int) bool {
		return row >= 0 && row < len(rows) && col >= 0 && col < len(rows[row]) && rows[row][col] == openCell
	}

	var slots []fill.Slot
	for row := 0; row < len(rows); row++ {
		for col := 0; col < width; col++ {
			if open(row, col) && !open(row, col-1) {
				length := 1
				for open(row, col+length) {
					length++
				}
				if length >= 2 {
					slots = append(slots, fill.Slot{Row: row, Col: col, Length: length, Dir: fill.Across})
				}
			}
			if open(row, col) && !open(row-1, col) {
				length := 1
				for open(row+length, col) {
					length++
				}
				if length >= 2 {
					slots = append(slots, fill.Slot{Row: row, Col: col, Length: length, Dir: fill.Down})
				}
			}
		}
	}
	if len(slots) == 0 {
		return nil, fmt.Errorf("structure defines no slots")
	}
	return slots, nil
}

// StructureFile is Structure over a file path.
func StructureFile(path string) ([]fill.Slot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Structure(f)
}

// Words reads a word list: one word per line, lowercased, '#' comment lines
// and blank lines skipped. Words must consist only of letters a-z.
func Words(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		for _, c := range word {
			if c < 'a' || c > 'z' {
				return nil, fmt.Errorf("word %s contains invalid character %q", word, c)
			}
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// WordsFile is Words over a file path.
func WordsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Words(f)
}
