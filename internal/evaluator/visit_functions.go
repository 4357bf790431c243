package evaluator

import (
	"github.com/otieno-dev/lugha/internal/ast"
	"github.com/otieno-dev/lugha/internal/errors"
	"github.com/otieno-dev/lugha/internal/runtime"
)

// visitFuncDef builds a user Function, capturing ctx as its defining
// context (the scope closures bind to). If the definition is named, the
// function is also bound into ctx's SymbolTable under that name.
func (i *Interpreter) visitFuncDef(n *ast.FuncDefNode, ctx *runtime.Context) *EvalResult {
	fn := runtime.NewFunction(n.Name, n.ParamNames, n.BodyNode, ctx).
		SetPos(n.PosStart(), n.PosEnd()).SetContext(ctx)
	if n.Name != "" {
		ctx.SymbolTable.Set(n.Name, fn)
	}
	return NewResult().Success(fn)
}

// visitCall evaluates the callee, checks it is callable, evaluates each
// argument node in order, then runs the call protocol (spec.md §4.5). The
// returned value is copied and stamped with the call site's position and
// the caller's context.
func (i *Interpreter) visitCall(n *ast.CallNode, ctx *runtime.Context) *EvalResult {
	result := NewResult()

	callee := result.Register(i.Visit(n.Callee, ctx))
	if result.IsError() {
		return result
	}
	switch callee.(type) {
	case *runtime.Function, *runtime.BuiltinFunction:
	default:
		return result.Failure(errors.New(errors.IllegalOperation, "value is not callable", n.Callee.PosStart(), n.Callee.PosEnd(), ctxTracer(ctx)))
	}

	args := make([]runtime.Value, 0, len(n.Args))
	for _, argNode := range n.Args {
		v := result.Register(i.Visit(argNode, ctx))
		if result.IsError() {
			return result
		}
		args = append(args, v)
	}

	var (
		value runtime.Value
		err   *errors.RuntimeError
	)
	switch fn := callee.(type) {
	case *runtime.Function:
		value, err = i.callUserFunction(fn, args, ctx, n.PosStart())
	case *runtime.BuiltinFunction:
		value, err = i.callBuiltinFunction(fn, args, ctx, n.PosStart())
	default:
		err = errors.New(errors.IllegalOperation, "value is not callable", n.Callee.PosStart(), n.Callee.PosEnd(), ctxTracer(ctx))
	}
	if err != nil {
		return result.Failure(err)
	}
	return result.Success(value.Copy().SetPos(n.PosStart(), n.PosEnd()).SetContext(ctx))
}
