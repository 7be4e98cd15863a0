// Package pattern provides seed patterns for the life engine: a small catalogue
// of well-known shapes and random soups.
package pattern

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// ErrUnknownPattern is returned by Lookup for names not in the catalogue.
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a rectangular boolean matrix indexed [y][x] with optional metadata.
type Pattern struct {
	Name   string
	Author string
	Cells  [][]bool
}

// Width returns the length of the longest row.
func (p Pattern) Width() int {
	w := 0
	for _, row := range p.Cells {
		w = max(w, len(row))
	}
	return w
}

// Height returns the number of rows.
func (p Pattern) Height() int { return len(p.Cells) }

// Population returns the number of live cells.
func (p Pattern) Population() int {
	n := 0
	for _, row := range p.Cells {
		for _, alive := range row {
			if alive {
				n++
			}
		}
	}
	return n
}

// FromRows builds a pattern from picture rows where 'O' or '*' is a live cell
// and anything else is dead. Short rows are padded so the matrix is rectangular.
func FromRows(name, author string, rows ...string) Pattern {
	w := 0
	for _, r := range rows {
		w = max(w, len(r))
	}
	cells := make([][]bool, len(rows))
	for y, r := range rows {
		cells[y] = make([]bool, w)
		for x := 0; x < len(r); x++ {
			cells[y][x] = r[x] == 'O' || r[x] == '*'
		}
	}
	return Pattern{Name: name, Author: author, Cells: cells}
}

// Random returns a w×h soup where each cell is alive with probability density.
func Random(w, h int, density float64, r *rand.Rand) Pattern {
	cells := make([][]bool, h)
	for y := range cells {
		cells[y] = make([]bool, w)
		for x := range cells[y] {
			cells[y][x] = r.Float64() < density
		}
	}
	return Pattern{Name: fmt.Sprintf("random %dx%d", w, h), Cells: cells}
}

var catalogue = map[string]Pattern{
	"block": FromRows("Block", "",
		"OO",
		"OO",
	),
	"blinker": FromRows("Blinker", "John Conway",
		"OOO",
	),
	"glider": FromRows("Glider", "Richard K. Guy",
		".O.",
		"..O",
		"OOO",
	),
	"lwss": FromRows("Lightweight spaceship", "John Conway",
		".O..O",
		"O....",
		"O...O",
		"OOOO.",
	),
	"tumbler": FromRows("Tumbler", "",
		".O.....O.",
		"O.O...O.O",
		"O..O.O..O",
		"..O...O..",
		"..OO.OO..",
	),
	"gosperglidergun": FromRows("Gosper glider gun", "Bill Gosper",
		"........................O...........",
		"......................O.O...........",
		"............OO......OO............OO",
		"...........O...O....OO............OO",
		"OO........O.....O...OO..............",
		"OO........O...O.OO....O.O...........",
		"..........O.....O.......O...........",
		"...........O...O....................",
		"............OO......................",
	),
}

// Lookup returns the named catalogue pattern. Names are case-insensitive.
func Lookup(name string) (Pattern, error) {
	p, ok := catalogue[strings.ToLower(name)]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return p, nil
}

// Names lists the catalogue in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalogue))
	for n := range catalogue {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
