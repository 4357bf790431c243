package builtins

import (
	"github.com/otieno-dev/lugha/internal/errors"
	"github.com/otieno-dev/lugha/internal/runtime"
)

// ============================================================================
// Additional array/math/system built-ins named in SPEC_FULL.md's Built-in
// registry extensions table: jumla, kubwa, ndogo, unganisha, piga, aina.
// ============================================================================

func jumla(ctx *runtime.Context, args []runtime.Value) (runtime.Value, *errors.RuntimeError) {
	list, ok := args[0].(*runtime.List)
	if !ok {
		return nil, errors.New(errors.TypeError, "jumla expects a list", args[0].PosStart(), args[0].PosEnd(), nil)
	}
	total := 0.0
	for _, el := range list.Elements {
		n, ok := el.(*runtime.Number)
		if !ok {
			return nil, errors.New(errors.TypeError, "jumla expects a list of numbers", el.PosStart(), el.PosEnd(), nil)
		}
		total += n.Value
	}
	return runtime.NewNumber(total), nil
}

func kubwa(ctx *runtime.Context, args []runtime.Value) (runtime.Value, *errors.RuntimeError) {
	a, ok := args[0].(*runtime.Number)
	if !ok {
		return nil, errors.New(errors.TypeError, "kubwa expects numbers", args[0].PosStart(), args[0].PosEnd(), nil)
	}
	b, ok := args[1].(*runtime.Number)
	if !ok {
		return nil, errors.New(errors.TypeError, "kubwa expects numbers", args[1].PosStart(), args[1].PosEnd(), nil)
	}
	if a.Value >= b.Value {
		return runtime.NewNumber(a.Value), nil
	}
	return runtime.NewNumber(b.Value), nil
}

func ndogo(ctx *runtime.Context, args []runtime.Value) (runtime.Value, *errors.RuntimeError) {
	a, ok := args[0].(*runtime.Number)
	if !ok {
		return nil, errors.New(errors.TypeError, "ndogo expects numbers", args[0].PosStart(), args[0].PosEnd(), nil)
	}
	b, ok := args[1].(*runtime.Number)
	if !ok {
		return nil, errors.New(errors.TypeError, "ndogo expects numbers", args[1].PosStart(), args[1].PosEnd(), nil)
	}
	if a.Value <= b.Value {
		return runtime.NewNumber(a.Value), nil
	}
	return runtime.NewNumber(b.Value), nil
}

// unganisha(...orodha) concatenates N lists into a new list, in order.
func unganisha(ctx *runtime.Context, args []runtime.Value) (runtime.Value, *errors.RuntimeError) {
	result := runtime.NewList(nil)
	for _, a := range args {
		list, ok := a.(*runtime.List)
		if !ok {
			return nil, errors.New(errors.TypeError, "unganisha expects lists", a.PosStart(), a.PosEnd(), nil)
		}
		result = result.Concat(list)
	}
	return result, nil
}

func piga(ctx *runtime.Context, args []runtime.Value) (runtime.Value, *errors.RuntimeError) {
	list, ok := args[0].(*runtime.List)
	if !ok {
		return nil, errors.New(errors.TypeError, "piga expects a list", args[0].PosStart(), args[0].PosEnd(), nil)
	}
	reversed := make([]runtime.Value, len(list.Elements))
	for i, el := range list.Elements {
		reversed[len(list.Elements)-1-i] = el
	}
	return runtime.NewList(reversed), nil
}

func aina(ctx *runtime.Context, args []runtime.Value) (runtime.Value, *errors.RuntimeError) {
	var name string
	switch args[0].Kind() {
	case runtime.KindNumber:
		name = "nambari"
	case runtime.KindString:
		name = "jina"
	case runtime.KindBoolean:
		name = "boolean"
	case runtime.KindList:
		name = "orodha"
	case runtime.KindNull:
		name = "tupu"
	case runtime.KindFunction, runtime.KindBuiltin:
		name = "shughuli"
	default:
		name = "haijulikani"
	}
	return runtime.NewString(name), nil
}
