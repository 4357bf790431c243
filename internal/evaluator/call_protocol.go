package evaluator

import (
	"github.com/otieno-dev/lugha/internal/errors"
	"github.com/otieno-dev/lugha/internal/runtime"
	"github.com/otieno-dev/lugha/internal/token"
)

// hojaName is the implicit binding every call exposes in its execution
// context: the full list of given argument values, for variadic
// introspection (spec.md §4.5 step 4).
const hojaName = "__hoja"

// checkArity implements spec.md §4.5 step 1. A trailing "..." parameter
// name marks a variadic built-in (e.g. unganisha's ParamNames {"..."}): it matches
// any argument count at or above the number of named parameters before it.
func checkArity(paramNames []string, args []runtime.Value, displayName string, pos token.Position) *errors.RuntimeError {
	variadic := len(paramNames) > 0 && paramNames[len(paramNames)-1] == "..."
	if variadic {
		min := len(paramNames) - 1
		if len(args) < min {
			return errors.Newf(errors.ArityMismatch, pos, pos, nil,
				"too few arguments to '%s': expected at least %d, got %d", displayName, min, len(args))
		}
		return nil
	}
	if len(args) == len(paramNames) {
		return nil
	}
	if len(args) > len(paramNames) {
		return errors.Newf(errors.ArityMismatch, pos, pos, nil,
			"too many arguments to '%s': expected %d, got %d", displayName, len(paramNames), len(args))
	}
	return errors.Newf(errors.ArityMismatch, pos, pos, nil,
		"too few arguments to '%s': expected %d, got %d", displayName, len(paramNames), len(args))
}

// bindParameters binds each argument into execCtx's SymbolTable under its
// parameter name, re-contexting each argument value to execCtx, and
// exposes the full argument list under __hoja (spec.md §4.5 steps 3-4).
func bindParameters(paramNames []string, args []runtime.Value, execCtx *runtime.Context) {
	n := len(paramNames)
	variadic := n > 0 && paramNames[n-1] == "..."
	if variadic {
		n--
	}
	for idx := 0; idx < n && idx < len(args); idx++ {
		execCtx.SymbolTable.Set(paramNames[idx], args[idx].SetContext(execCtx))
	}
	hoja := make([]runtime.Value, len(args))
	for idx, a := range args {
		hoja[idx] = a.SetContext(execCtx)
	}
	execCtx.SymbolTable.Set(hojaName, runtime.NewList(hoja).SetContext(execCtx))
}

// callUserFunction implements spec.md §4.5 for a user-defined function: the
// execution context's SymbolTable parent is the function's defining
// scope's SymbolTable, which is what makes closures work — the call
// stack (Context.Caller) and the scope chain (SymbolTable.Parent) are
// independent chains.
func (i *Interpreter) callUserFunction(fn *runtime.Function, args []runtime.Value, callerCtx *runtime.Context, callPos token.Position) (runtime.Value, *errors.RuntimeError) {
	if err := checkArity(fn.ParamNames, args, fn.DisplayName(), fn.PosStart()); err != nil {
		return nil, err
	}

	if err := i.callStack.Enter(fn.DisplayName(), callPos); err != nil {
		return nil, err
	}
	defer i.callStack.Leave()

	var definingTable *runtime.SymbolTable
	if fn.DefiningContext != nil {
		definingTable = fn.DefiningContext.SymbolTable
	}
	table := runtime.NewChildSymbolTable(definingTable)
	entryPos := fn.PosStart()
	execCtx := runtime.NewChildContext(fn.DisplayName(), callerCtx, &entryPos, table)

	bindParameters(fn.ParamNames, args, execCtx)

	result := i.Visit(fn.BodyNode, execCtx)
	if result.IsError() {
		return nil, result.Err
	}
	return result.Val, nil
}

// callBuiltinFunction implements spec.md §4.5 for a host-provided
// callable: its execution context's SymbolTable parent is the global
// table reachable through callerCtx's chain (built-ins have no lexical
// defining scope of their own).
func (i *Interpreter) callBuiltinFunction(fn *runtime.BuiltinFunction, args []runtime.Value, callerCtx *runtime.Context, callPos token.Position) (runtime.Value, *errors.RuntimeError) {
	if err := checkArity(fn.ParamNames, args, fn.DisplayName(), fn.PosStart()); err != nil {
		return nil, err
	}

	table := runtime.NewChildSymbolTable(globalTable(callerCtx))
	entryPos := fn.PosStart()
	execCtx := runtime.NewChildContext(fn.DisplayName(), callerCtx, &entryPos, table)

	bindParameters(fn.ParamNames, args, execCtx)

	if fn.Handler == nil {
		return runtime.NewNull(), nil
	}
	return fn.Handler(execCtx, args)
}

// globalTable walks ctx's SymbolTable parent chain up to the root table —
// every scope chain in this language terminates at the one global table.
func globalTable(ctx *runtime.Context) *runtime.SymbolTable {
	table := ctx.SymbolTable
	for table.Parent() != nil {
		table = table.Parent()
	}
	return table
}
