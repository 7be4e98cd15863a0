// Package cell implements the packed per-cell counter shared by the grid and the rules.
//
// A Counter combines the current alive flag and the number of live neighbours
// accumulated during a counting pass in a single 32-bit word:
//   - Bit 0: alive flag for the current generation
//   - Bits 1-31: neighbour tally (0-8 in practice)
//
// Packing both into one word lets the counting pass add a neighbour with a
// single atomic add while other workers read the flag of the same cell.
package cell

import "strconv"

// Counter is the packed (alive, tally) value stored for every grid position.
type Counter uint32

const (
	// AliveBit is the flag component of a Counter.
	AliveBit Counter = 1

	// TallyShift is the bit offset of the neighbour tally.
	TallyShift = 1

	// TallyUnit is the value added to a Counter for one live neighbour.
	TallyUnit Counter = 1 << TallyShift

	// MaxNeighbors is the largest tally a Counter can hold after a counting pass.
	MaxNeighbors = 8
)

// Of returns a fresh flag-only counter with a zero tally.
func Of(alive bool) Counter {
	if alive {
		return AliveBit
	}
	return 0
}

// New encodes an explicit alive flag and neighbour tally.
// Tallies above MaxNeighbors are clamped.
func New(alive bool, neighbors int) Counter {
	if neighbors < 0 {
		neighbors = 0
	}
	if neighbors > MaxNeighbors {
		neighbors = MaxNeighbors
	}
	return Of(alive) | Counter(neighbors)<<TallyShift
}

// Alive reports the flag component.
func (c Counter) Alive() bool {
	return c&AliveBit != 0
}

// Neighbors returns the tally component.
func (c Counter) Neighbors() int {
	return int(c >> TallyShift)
}

// Reset drops the tally and keeps only the flag.
func (c Counter) Reset() Counter {
	return c & AliveBit
}

// String returns "alive/n" or "dead/n", e.g. "alive/3".
func (c Counter) String() string {
	state := "dead"
	if c.Alive() {
		state = "alive"
	}
	return state + "/" + strconv.Itoa(c.Neighbors())
}
