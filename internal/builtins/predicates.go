package builtins

import (
	"github.com/otieno-dev/lugha/internal/errors"
	"github.com/otieno-dev/lugha/internal/runtime"
)

// ============================================================================
// Type predicates: niNambari, niJina, niOrodha, niShughuli. And idadi
// (length), the one built-in with a TypeError edge case (spec.md §4.6/§8).
// ============================================================================

func kindPredicate(kind runtime.Kind) runtime.BuiltinHandler {
	return func(ctx *runtime.Context, args []runtime.Value) (runtime.Value, *errors.RuntimeError) {
		return runtime.NewBoolean(args[0].Kind() == kind), nil
	}
}

func niShughuli(ctx *runtime.Context, args []runtime.Value) (runtime.Value, *errors.RuntimeError) {
	k := args[0].Kind()
	return runtime.NewBoolean(k == runtime.KindFunction || k == runtime.KindBuiltin), nil
}

func idadi(ctx *runtime.Context, args []runtime.Value) (runtime.Value, *errors.RuntimeError) {
	switch v := args[0].(type) {
	case *runtime.String:
		return runtime.NewNumber(float64(len(v.Value))), nil
	case *runtime.List:
		return runtime.NewNumber(float64(len(v.Elements))), nil
	default:
		return nil, errors.New(errors.TypeError, "Cannot find length of non-iterable value",
			args[0].PosStart(), args[0].PosEnd(), nil)
	}
}
