// Package errs defines the error taxonomy shared by the physics packages.
package errs

import "fmt"

// ConstraintError reports a construction invariant violation. Objects either
// fully satisfy their invariants or are never created.
type ConstraintError struct {
	Field      string
	Constraint string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("constraint violated: %s must satisfy %s", e.Field, e.Constraint)
}

func Constraint(field, constraint string) error {
	return &ConstraintError{Field: field, Constraint: constraint}
}

// DomainError reports evaluation of a function outside its mathematically
// valid domain. Expected boundary probes return NaN instead; this error marks
// caller misuse.
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func Domain(op, reason string) error {
	return &DomainError{Op: op, Reason: reason}
}

// ConvergenceError reports a bracketed root-finder that found no sign change
// in a bracket the model guarantees analytically. It signals a violated model
// invariant and is never retried with a different bracket.
type ConvergenceError struct {
	Op     string
	Lo, Hi float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s: no sign change in bracket [%g, %g]", e.Op, e.Lo, e.Hi)
}

func Convergence(op string, lo, hi float64) error {
	return &ConvergenceError{Op: op, Lo: lo, Hi: hi}
}
