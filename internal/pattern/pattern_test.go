package pattern

import (
	"errors"
	"math/rand"
	"testing"
)

func TestCatalogue(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		population int
	}{
		{name: "block", width: 2, height: 2, population: 4},
		{name: "blinker", width: 3, height: 1, population: 3},
		{name: "glider", width: 3, height: 3, population: 5},
		{name: "lwss", width: 5, height: 4, population: 9},
		{name: "tumbler", width: 9, height: 5, population: 16},
		{name: "GosperGliderGun", width: 36, height: 9, population: 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Lookup(tt.name)
			if err != nil {
				t.Fatalf("Lookup(%q): %v", tt.name, err)
			}
			if p.Width() != tt.width || p.Height() != tt.height {
				t.Errorf("size = %dx%d, want %dx%d", p.Width(), p.Height(), tt.width, tt.height)
			}
			if p.Population() != tt.population {
				t.Errorf("Population() = %d, want %d", p.Population(), tt.population)
			}
			for y, row := range p.Cells {
				if len(row) != tt.width {
					t.Errorf("row %d has %d cells, want %d", y, len(row), tt.width)
				}
			}
		})
	}

	if len(Names()) != len(tests) {
		t.Errorf("Names() = %v, want %d entries", Names(), len(tests))
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("nope"); !errors.Is(err, ErrUnknownPattern) {
		t.Errorf("Lookup(nope) error = %v, want ErrUnknownPattern", err)
	}
}

func TestFromRowsPadsShortRows(t *testing.T) {
	p := FromRows("t", "", "O", "..*")
	if p.Width() != 3 || len(p.Cells[0]) != 3 {
		t.Fatalf("rows not padded: %v", p.Cells)
	}
	if !p.Cells[0][0] || !p.Cells[1][2] || p.Cells[1][0] {
		t.Errorf("cells = %v", p.Cells)
	}
}

func TestRandomDensity(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	if got := Random(10, 10, 0, r).Population(); got != 0 {
		t.Errorf("density 0: population %d", got)
	}
	if got := Random(10, 10, 1, r).Population(); got != 100 {
		t.Errorf("density 1: population %d", got)
	}
	p := Random(7, 3, 0.5, r)
	if p.Width() != 7 || p.Height() != 3 {
		t.Errorf("size = %dx%d", p.Width(), p.Height())
	}
}
