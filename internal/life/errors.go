package life

import (
	"errors"
	"fmt"
)

// ErrStepFailed matches every error returned by Engine.Step when a worker fails.
var ErrStepFailed = errors.New("life: step failed")

// Phase names the part of a step a worker was running.
type Phase string

// Step phases.
const (
	PhaseCount    Phase = "count"
	PhaseGenerate Phase = "generate"
)

// StepError describes a worker failure. The grid is left at the generation it
// held before the failed step.
type StepError struct {
	Phase  Phase
	Worker int
	Span   Span
	Cause  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("life: %s worker %d (columns %d-%d) failed: %v",
		e.Phase, e.Worker, e.Span.Start, e.Span.End, e.Cause)
}

// Is reports ErrStepFailed as a match.
func (e *StepError) Is(target error) bool {
	return target == ErrStepFailed
}

func (e *StepError) Unwrap() error {
	return e.Cause
}
