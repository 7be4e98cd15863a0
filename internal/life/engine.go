package life

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hans1song/lifegrid/internal/rule"
)

// Span is a half-open column range [Start, End) handled by one worker.
type Span struct {
	Start, End int
}

// Engine steps a Grid under a Rule using a fixed number of workers.
type Engine struct {
	grid       *Grid
	rule       rule.Rule
	workers    int
	generation int
}

// NewEngine returns an engine over g. A non-positive workers count means one
// worker per logical CPU.
func NewEngine(g *Grid, r rule.Rule, workers int) *Engine {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Engine{grid: g, rule: r, workers: workers}
}

// Grid returns the grid the engine owns.
func (e *Engine) Grid() *Grid { return e.grid }

// Rule returns the current rule.
func (e *Engine) Rule() rule.Rule { return e.rule }

// SetRule replaces the rule for subsequent steps.
func (e *Engine) SetRule(r rule.Rule) { e.rule = r }

// Workers returns the configured worker count.
func (e *Engine) Workers() int { return e.workers }

// Generation returns the number of completed steps since creation or Clear.
func (e *Engine) Generation() int { return e.generation }

// Clear empties the grid and resets the generation counter.
func (e *Engine) Clear() {
	e.grid.Clear()
	e.generation = 0
}

// LoadPattern centres m in the grid, offset by (dx, dy), growing as needed.
func (e *Engine) LoadPattern(m [][]bool, dx, dy int) {
	e.grid.Place(m, dx, dy)
}

// tallied is proof that every counting worker has been joined. Only
// countPhase produces one and generatePhase requires one, so the generation
// pass cannot start while tallies are still being written.
type tallied struct {
	spans []Span
}

// Step advances the grid by one generation.
//
// It implements a two-phase fork/join:
//  1. Counting: each worker tallies the neighbours of the live cells in its
//     column range. The group is joined before anything else happens.
//  2. Generation: each worker applies the rule to its column range, staging
//     the result in the back buffer. The group is joined again.
//  3. Single-threaded: the staged generation is swapped in, deferred positive
//     growth is applied, then column 0 and row 0 are checked for negative growth.
//
// If a worker panics, Step returns a *StepError matching ErrStepFailed and the
// grid keeps the generation it had before the call.
func (e *Engine) Step() error {
	t, err := e.countPhase(e.partition())
	if err != nil {
		e.grid.discard()
		return err
	}
	if err := e.generatePhase(t); err != nil {
		e.grid.discard()
		return err
	}

	e.grid.swap()
	e.grid.applyPending()
	e.grid.growNegative()
	e.generation++
	return nil
}

// partition splits [0, width) into contiguous column ranges, one per worker.
// The last range takes the remainder of the integer division.
func (e *Engine) partition() []Span {
	width := e.grid.Width()
	n := clamp(e.workers, 1, width)
	cols := width / n

	spans := make([]Span, n)
	for i := range spans {
		spans[i] = Span{Start: i * cols, End: (i + 1) * cols}
	}
	spans[n-1].End = width
	return spans
}

func (e *Engine) countPhase(spans []Span) (tallied, error) {
	if err := fork(PhaseCount, spans, e.countSpan); err != nil {
		return tallied{}, err
	}
	return tallied{spans: spans}, nil
}

func (e *Engine) generatePhase(t tallied) error {
	return fork(PhaseGenerate, t.spans, e.generateSpan)
}

// fork runs work on every span in its own goroutine and waits for all of them.
// A panicking worker is recovered and reported as a StepError.
func fork(phase Phase, spans []Span, work func(Span)) error {
	var eg errgroup.Group
	for i, s := range spans {
		i, s := i, s
		eg.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &StepError{Phase: phase, Worker: i, Span: s, Cause: fmt.Errorf("panic: %v", r)}
				}
			}()
			work(s)
			return nil
		})
	}
	return eg.Wait()
}
