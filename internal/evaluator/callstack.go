package evaluator

import (
	"github.com/otieno-dev/lugha/internal/errors"
	"github.com/otieno-dev/lugha/internal/token"
)

// DefaultMaxRecursionDepth bounds user-function call nesting. spec.md §9
// notes the source enforces only a per-loop iteration cap under the name
// "max call stack size"; this implementation additionally exposes a real
// recursion-depth cap so unbounded user recursion fails the same way a
// runaway loop does, rather than overflowing the host's Go stack.
const DefaultMaxRecursionDepth = 1024

// CallStack tracks user-function call nesting depth for one Interpreter.
// It is not shared across Interpreter instances (spec.md §5).
type CallStack struct {
	depth    int
	maxDepth int
}

// NewCallStack creates a call stack with the given maximum depth. A
// non-positive maxDepth falls back to DefaultMaxRecursionDepth.
func NewCallStack(maxDepth int) *CallStack {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxRecursionDepth
	}
	return &CallStack{maxDepth: maxDepth}
}

// Enter increments the depth, or fails with CallStackExceeded if doing so
// would exceed maxDepth.
func (cs *CallStack) Enter(functionName string, pos token.Position) *errors.RuntimeError {
	if cs.depth >= cs.maxDepth {
		return errors.Newf(errors.CallStackExceeded, pos, pos, nil,
			"Max call stack size exceeded in function '%s'", functionName)
	}
	cs.depth++
	return nil
}

// Leave decrements the depth. Call it (via defer) immediately after a
// successful Enter, whether or not the call itself succeeded.
func (cs *CallStack) Leave() {
	if cs.depth > 0 {
		cs.depth--
	}
}

// Depth reports the current nesting depth.
func (cs *CallStack) Depth() int { return cs.depth }
