// Package errors defines the runtime error type threaded through EvalResult,
// and the call-stack trace used to render a traceback for an unhandled error.
package errors

import (
	"fmt"
	"strings"

	"github.com/otieno-dev/lugha/internal/token"
)

// Kind classifies a RuntimeError, matching spec.md's ErrorKind enumeration.
type Kind string

const (
	// IllegalOperation marks an operator applied to operand types it does
	// not support (e.g. String - Number), or calling a non-callable value.
	IllegalOperation Kind = "IllegalOperation"
	// UnboundName marks a VarAccessNode lookup that found no binding in the
	// scope chain.
	UnboundName Kind = "UnboundName"
	// ArityMismatch marks a call whose argument count does not match the
	// callee's parameter count.
	ArityMismatch Kind = "ArityMismatch"
	// Overflow marks an arithmetic fault such as division by zero.
	Overflow Kind = "Overflow"
	// CallStackExceeded marks a runaway loop or recursion past its bound.
	CallStackExceeded Kind = "CallStackExceeded"
	// TypeError marks an operation applied to a value of the wrong shape,
	// e.g. idadi() on a Number.
	TypeError Kind = "TypeError"
)

// Tracer is satisfied by anything that can render its own call chain for a
// traceback line (the evaluator's Context implements it).
type Tracer interface {
	TraceLine() string
	Caller() Tracer
}

// RuntimeError is the error value carried by EvalResult. It is never
// panicked; it is propagated up the recursive visit chain until a top-level
// caller (the CLI, or a test) formats it.
type RuntimeError struct {
	Kind     Kind
	Message  string
	PosStart token.Position
	PosEnd   token.Position
	Context  Tracer // may be nil for errors raised before any context exists
}

// New constructs a RuntimeError.
func New(kind Kind, message string, start, end token.Position, ctx Tracer) *RuntimeError {
	return &RuntimeError{Kind: kind, Message: message, PosStart: start, PosEnd: end, Context: ctx}
}

// Newf constructs a RuntimeError with a formatted message.
func Newf(kind Kind, start, end token.Position, ctx Tracer, format string, args ...any) *RuntimeError {
	return New(kind, fmt.Sprintf(format, args...), start, end, ctx)
}

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s at %s", e.Kind, e.Message, e.PosStart)
}

// Traceback walks the Context chain (caller links, not scope links) and
// renders one line per activation, oldest first and most recent last,
// followed by the error itself. Mirrors the teacher's StackTrace.String() ordering.
func (e *RuntimeError) Traceback() string {
	var sb strings.Builder
	sb.WriteString("Traceback (most recent call last):\n")

	var frames []string
	for c := e.Context; c != nil; c = c.Caller() {
		frames = append(frames, c.TraceLine())
	}
	for i := len(frames) - 1; i >= 0; i-- {
		sb.WriteString("  ")
		sb.WriteString(frames[i])
		sb.WriteString("\n")
	}
	sb.WriteString(e.Kind.String())
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	return sb.String()
}

// String renders a Kind's name.
func (k Kind) String() string { return string(k) }
