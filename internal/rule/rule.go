// Package rule defines how a cell's packed counter decides its next state.
//
// The engine only knows the Rule interface, so any birth/survival scheme can be
// plugged in without touching the grid or the stepping loop.
package rule

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/hans1song/lifegrid/internal/cell"
)

// Rule maps a cell's counter after the counting pass to its next alive state.
// Implementations must be safe for concurrent use; NextAlive is called from
// every worker of the generation pass.
type Rule interface {
	NextAlive(c cell.Counter) bool
	String() string
}

// ErrInvalidRule is returned when rule notation cannot be parsed.
var ErrInvalidRule = errors.New("invalid rule")

// Conway is the standard B3/S23 rule.
type Conway struct{}

// NextAlive: a live cell survives with 2 or 3 neighbours, a dead cell is born with 3.
func (Conway) NextAlive(c cell.Counter) bool {
	n := c.Neighbors()
	if c.Alive() {
		return n == 2 || n == 3
	}
	return n == 3
}

func (Conway) String() string { return "B3/S23" }

// LifeLike is an outer-totalistic rule described by the neighbour counts that
// cause birth and survival. Bit i of each mask stands for i neighbours.
type LifeLike struct {
	birth   uint16
	survive uint16
}

// NewLifeLike builds a rule from explicit neighbour counts.
func NewLifeLike(birth, survive []int) (LifeLike, error) {
	var r LifeLike
	for _, n := range birth {
		if n < 0 || n > cell.MaxNeighbors {
			return LifeLike{}, fmt.Errorf("%w: birth count %d out of range", ErrInvalidRule, n)
		}
		r.birth |= 1 << n
	}
	for _, n := range survive {
		if n < 0 || n > cell.MaxNeighbors {
			return LifeLike{}, fmt.Errorf("%w: survival count %d out of range", ErrInvalidRule, n)
		}
		r.survive |= 1 << n
	}
	return r, nil
}

// NextAlive looks the tally up in the survival or birth mask.
func (r LifeLike) NextAlive(c cell.Counter) bool {
	mask := r.birth
	if c.Alive() {
		mask = r.survive
	}
	return mask&(1<<c.Neighbors()) != 0
}

// String returns the rule in B/S notation.
func (r LifeLike) String() string {
	return "B" + digits(r.birth) + "/S" + digits(r.survive)
}

func digits(mask uint16) string {
	var sb strings.Builder
	for n := 0; n <= cell.MaxNeighbors; n++ {
		if mask&(1<<n) != 0 {
			sb.WriteByte(byte('0' + n))
		}
	}
	return sb.String()
}

// Parse reads B/S notation ("B36/S23", case-insensitive, either order) or the
// older S/B form without letters ("23/3").
func Parse(s string) (LifeLike, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return LifeLike{}, fmt.Errorf("%w: %q: want two '/'-separated parts", ErrInvalidRule, s)
	}

	var birth, survive string
	var haveB, haveS bool
	for i, p := range parts {
		switch {
		case p != "" && (p[0] == 'B' || p[0] == 'b'):
			birth, haveB = p[1:], true
		case p != "" && (p[0] == 'S' || p[0] == 's'):
			survive, haveS = p[1:], true
		case i == 0:
			survive, haveS = p, true
		default:
			birth, haveB = p, true
		}
	}
	if !haveB || !haveS {
		return LifeLike{}, fmt.Errorf("%w: %q: need both birth and survival parts", ErrInvalidRule, s)
	}

	b, err := counts(birth)
	if err != nil {
		return LifeLike{}, fmt.Errorf("%w: %q: %v", ErrInvalidRule, s, err)
	}
	sv, err := counts(survive)
	if err != nil {
		return LifeLike{}, fmt.Errorf("%w: %q: %v", ErrInvalidRule, s, err)
	}
	return NewLifeLike(b, sv)
}

func counts(s string) ([]int, error) {
	out := make([]int, 0, len(s))
	for _, ch := range s {
		if ch < '0' || ch > '8' {
			return nil, fmt.Errorf("unexpected %q", ch)
		}
		out = append(out, int(ch-'0'))
	}
	return out, nil
}

// MustParse is like Parse but panics on error. Intended for package-level presets.
func MustParse(s string) LifeLike {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Named presets.
var presets = map[string]Rule{
	"conway":           Conway{},
	"highlife":         MustParse("B36/S23"),
	"seeds":            MustParse("B2/S"),
	"daynight":         MustParse("B3678/S34678"),
	"lifewithoutdeath": MustParse("B3/S012345678"),
}

// Lookup resolves a preset name or, failing that, B/S notation.
func Lookup(name string) (Rule, error) {
	if r, ok := presets[strings.ToLower(name)]; ok {
		return r, nil
	}
	return Parse(name)
}

// Presets lists the preset names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
