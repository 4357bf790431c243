package runtime

import (
	"fmt"

	"github.com/otieno-dev/lugha/internal/ast"
	"github.com/otieno-dev/lugha/internal/errors"
	"github.com/otieno-dev/lugha/internal/token"
)

// Function is a user-defined ("shughuli") function value. It captures the
// SymbolTable active at its definition site (DefiningContext) so closures
// work: a nested function's lookup chain reaches into its enclosing
// function's scope even after the enclosing call has returned.
type Function struct {
	span
	Name            string // empty for an anonymous function
	ParamNames      []string
	BodyNode        ast.Node
	DefiningContext *Context
}

// NewFunction builds a user Function value.
func NewFunction(name string, paramNames []string, body ast.Node, definingCtx *Context) *Function {
	return &Function{Name: name, ParamNames: paramNames, BodyNode: body, DefiningContext: definingCtx}
}

func (f *Function) Kind() Kind { return KindFunction }

func (f *Function) String() string {
	name := f.Name
	if name == "" {
		name = "<isiyotambuliwa>"
	}
	return fmt.Sprintf("<shughuli %s>", name)
}

func (f *Function) IsTrue() bool { return true }

func (f *Function) Copy() Value {
	return &Function{Name: f.Name, ParamNames: f.ParamNames, BodyNode: f.BodyNode, DefiningContext: f.DefiningContext}
}

func (f *Function) SetPos(start, end token.Position) Value {
	f.setPos(start, end)
	return f
}

func (f *Function) SetContext(ctx *Context) Value {
	f.setContext(ctx)
	return f
}

// DisplayName returns the function's name, or the anonymous placeholder,
// used when building the execution Context for a call (spec.md §4.5 step 2).
func (f *Function) DisplayName() string {
	if f.Name == "" {
		return "<isiyotambuliwa>"
	}
	return f.Name
}

// BuiltinHandler is a host-provided implementation of a built-in function.
// It receives the freshly built execution Context (parameters already bound)
// and the evaluated argument Values, and returns a Value or a RuntimeError.
type BuiltinHandler func(ctx *Context, args []Value) (Value, *errors.RuntimeError)

// BuiltinFunction is a host-provided callable exposed to programs through
// the global SymbolTable.
type BuiltinFunction struct {
	span
	Name       string
	ParamNames []string
	Handler    BuiltinHandler
}

// NewBuiltinFunction builds a BuiltinFunction value.
func NewBuiltinFunction(name string, paramNames []string, handler BuiltinHandler) *BuiltinFunction {
	return &BuiltinFunction{Name: name, ParamNames: paramNames, Handler: handler}
}

func (b *BuiltinFunction) Kind() Kind      { return KindBuiltin }
func (b *BuiltinFunction) String() string  { return fmt.Sprintf("<built-in %s>", b.Name) }
func (b *BuiltinFunction) IsTrue() bool    { return true }

func (b *BuiltinFunction) Copy() Value {
	return &BuiltinFunction{Name: b.Name, ParamNames: b.ParamNames, Handler: b.Handler}
}

func (b *BuiltinFunction) SetPos(start, end token.Position) Value {
	b.setPos(start, end)
	return b
}

func (b *BuiltinFunction) SetContext(ctx *Context) Value {
	b.setContext(ctx)
	return b
}

func (b *BuiltinFunction) DisplayName() string { return b.Name }
