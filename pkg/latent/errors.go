package latent

import "fmt"

// CircularError reports reentrant evaluation: a node's callable was entered
// again while already executing. This happens when mutation makes a node
// depend (directly or transitively) on itself in a way the static graph
// snapshot missed, and is only discoverable at evaluation time.
type CircularError struct {
	Fn string // name of the callable being evaluated
}

// Error implements the error interface.
func (e *CircularError) Error() string {
	return fmt.Sprintf("circular dependency detected in delayed computation of %s", e.Fn)
}

// CyclicError reports a cycle found in the dependency graph snapshot before
// any evaluation was attempted. It wraps dag.ErrGraphHasCycle.
type CyclicError struct {
	Fn  string // name of the root callable whose graph failed validation
	Err error  // underlying validation error
}

// Error implements the error interface.
func (e *CyclicError) Error() string {
	return fmt.Sprintf("dependency graph of %s is cyclic: %v", e.Fn, e.Err)
}

// Unwrap returns the underlying validation error for errors.Is/As compatibility.
func (e *CyclicError) Unwrap() error { return e.Err }

// ComputeError reports a failure inside a deferred computation: either the
// node's own callable returned an error, or resolving one of its dependencies
// did. The original error is retained as the cause, so errors.Is and
// errors.As against it keep working; the message adds the failing callable's
// name for provenance.
type ComputeError struct {
	Fn  string // name of the callable whose computation failed
	Err error  // underlying cause
}

// Error implements the error interface.
func (e *ComputeError) Error() string {
	return fmt.Sprintf("error in delayed computation of %s: %v", e.Fn, e.Err)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *ComputeError) Unwrap() error { return e.Err }
