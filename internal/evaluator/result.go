// Package evaluator implements the tree-walking evaluator: the Interpreter
// that dispatches on AST node variant to produce an EvalResult given a
// Context (spec.md §4.4), and the call protocol binding arguments to
// parameters (spec.md §4.5).
package evaluator

import (
	"github.com/otieno-dev/lugha/internal/errors"
	"github.com/otieno-dev/lugha/internal/runtime"
)

// EvalResult threads either a Value or a RuntimeError through recursive
// evaluation (spec.md §3). Once Err is set, nothing in this package clears
// it again: Success and Register are both no-ops once an error is present,
// which is what lets every visitor call Register on a sub-evaluation and
// immediately check Err without a separate "did this call also fail"
// branch.
type EvalResult struct {
	Val Value
	Err *errors.RuntimeError
}

// Value is an alias for runtime.Value, kept local so evaluator call sites
// read as "Value" the way spec.md's component list does.
type Value = runtime.Value

// NewResult creates an empty result ready for Register/Success/Failure.
func NewResult() *EvalResult {
	return &EvalResult{}
}

// Success sets the result's value, unless an error has already been set.
func (r *EvalResult) Success(v Value) *EvalResult {
	if r.Err == nil {
		r.Val = v
	}
	return r
}

// Failure sets the result's error, unless one has already been set.
func (r *EvalResult) Failure(e *errors.RuntimeError) *EvalResult {
	if r.Err == nil {
		r.Err = e
	}
	return r
}

// Register folds another EvalResult into this one: if other carries an
// error and this result does not yet have one, the error is copied in.
// Register always returns other's value (which may be nil) so a caller can
// use the value-or-check-error idiom:
//
//	v := result.Register(i.Visit(node, ctx))
//	if result.Err != nil {
//	    return result
//	}
func (r *EvalResult) Register(other *EvalResult) Value {
	if other.Err != nil && r.Err == nil {
		r.Err = other.Err
	}
	return other.Val
}

// IsError reports whether this result carries an error.
func (r *EvalResult) IsError() bool { return r.Err != nil }
