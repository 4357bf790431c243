package evaluator

import (
	"github.com/otieno-dev/lugha/internal/ast"
	"github.com/otieno-dev/lugha/internal/errors"
	"github.com/otieno-dev/lugha/internal/runtime"
)

// visitVarAccess looks up an identifier in ctx's SymbolTable chain. On
// success, it returns value.Copy() stamped with the access site's position
// and context — not the definition's — so a downstream error points at
// where the name was used.
func (i *Interpreter) visitVarAccess(n *ast.VarAccessNode, ctx *runtime.Context) *EvalResult {
	result := NewResult()
	value, ok := ctx.SymbolTable.Get(n.Name)
	if !ok {
		return result.Failure(errors.Newf(errors.UnboundName, n.PosStart(), n.PosEnd(), ctxTracer(ctx),
			"'%s' is not defined", n.Name))
	}
	return result.Success(value.Copy().SetPos(n.PosStart(), n.PosEnd()).SetContext(ctx))
}

// visitVarAssign evaluates the RHS and binds it in the current scope level
// only — a nested scope's assignment to a name that shadows an outer
// binding creates the shadow rather than mutating the outer variable.
func (i *Interpreter) visitVarAssign(n *ast.VarAssignNode, ctx *runtime.Context) *EvalResult {
	result := NewResult()
	value := result.Register(i.Visit(n.Value, ctx))
	if result.IsError() {
		return result
	}
	value = value.SetPos(n.PosStart(), n.PosEnd()).SetContext(ctx)
	ctx.SymbolTable.Set(n.Name, value)
	return result.Success(value)
}

// visitBinOp evaluates left then right — strictly, both always, never
// short-circuited, matching spec.md's explicit non-short-circuiting
// discipline for && and || — then dispatches to runtime.BinaryOp.
func (i *Interpreter) visitBinOp(n *ast.BinOpNode, ctx *runtime.Context) *EvalResult {
	result := NewResult()
	left := result.Register(i.Visit(n.Left, ctx))
	if result.IsError() {
		return result
	}
	right := result.Register(i.Visit(n.Right, ctx))
	if result.IsError() {
		return result
	}
	value, err := runtime.BinaryOp(n.Op, left, right)
	if err != nil {
		err.Context = ctxTracer(ctx)
		return result.Failure(err)
	}
	return result.Success(value.SetPos(n.PosStart(), n.PosEnd()).SetContext(ctx))
}

func (i *Interpreter) visitUnaryOp(n *ast.UnaryOpNode, ctx *runtime.Context) *EvalResult {
	result := NewResult()
	operand := result.Register(i.Visit(n.Node, ctx))
	if result.IsError() {
		return result
	}
	value, err := runtime.UnaryOp(n.Op, operand)
	if err != nil {
		err.Context = ctxTracer(ctx)
		return result.Failure(err)
	}
	return result.Success(value.SetPos(n.PosStart(), n.PosEnd()).SetContext(ctx))
}

// visitStatements sequences statements, returning the value of the last one
// (or Null if the list is empty). This is how a function body's trailing
// expression becomes its "rudisha" result: the parser emits a plain
// expression statement in tail position, with no separate return node.
func (i *Interpreter) visitStatements(n *ast.StatementsNode, ctx *runtime.Context) *EvalResult {
	result := NewResult()
	var last runtime.Value = runtime.NewNull().SetContext(ctx)
	for _, stmt := range n.Statements {
		last = result.Register(i.Visit(stmt, ctx))
		if result.IsError() {
			return result
		}
	}
	return result.Success(last)
}
