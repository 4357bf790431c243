package runtime

import (
	"fmt"

	"github.com/otieno-dev/lugha/internal/errors"
	"github.com/otieno-dev/lugha/internal/token"
)

// Context is a per-activation record: the global program start, or one
// function call. Its parent chain (Caller) is the dynamic call stack used
// for diagnostic tracebacks; its SymbolTable's parent chain is the lexical
// scope chain used for name lookup. spec.md §3/§4.3 is explicit that these
// two chains are deliberately independent — a closure's SymbolTable parent
// is its defining scope, not whoever happens to call it.
type Context struct {
	DisplayName   string
	caller        *Context
	EntryPosition *token.Position
	SymbolTable   *SymbolTable
}

// NewGlobalContext creates the single root Context a program starts in.
func NewGlobalContext(displayName string, table *SymbolTable) *Context {
	return &Context{DisplayName: displayName, SymbolTable: table}
}

// NewChildContext creates a call's execution Context: caller is the
// activation that performed the call (for tracebacks), and table's parent
// must already be set by the caller to the right lexical scope (the
// defining context's table for a user function, or the global table for a
// built-in) before this Context is used.
func NewChildContext(displayName string, caller *Context, entryPos *token.Position, table *SymbolTable) *Context {
	return &Context{DisplayName: displayName, caller: caller, EntryPosition: entryPos, SymbolTable: table}
}

// Caller returns the activation that invoked this one, or nil at the global
// context. Implements errors.Tracer.
func (c *Context) Caller() errors.Tracer {
	if c.caller == nil {
		return nil
	}
	return c.caller
}

// CallerContext returns the typed caller Context, or nil at the global
// context.
func (c *Context) CallerContext() *Context { return c.caller }

// TraceLine renders one traceback line for this activation. Implements
// errors.Tracer.
func (c *Context) TraceLine() string {
	if c.EntryPosition == nil {
		return c.DisplayName
	}
	return fmt.Sprintf("%s (%s)", c.DisplayName, c.EntryPosition.String())
}
