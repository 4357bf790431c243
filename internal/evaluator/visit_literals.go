package evaluator

import (
	"github.com/otieno-dev/lugha/internal/ast"
	"github.com/otieno-dev/lugha/internal/runtime"
)

func (i *Interpreter) visitNumber(n *ast.NumberNode, ctx *runtime.Context) *EvalResult {
	v := runtime.NewNumber(n.Value).SetPos(n.PosStart(), n.PosEnd()).SetContext(ctx)
	return NewResult().Success(v)
}

func (i *Interpreter) visitString(n *ast.StringNode, ctx *runtime.Context) *EvalResult {
	v := runtime.NewString(n.Value).SetPos(n.PosStart(), n.PosEnd()).SetContext(ctx)
	return NewResult().Success(v)
}

// visitList evaluates each element node in order; on the first error, it
// returns immediately without evaluating the remaining elements.
func (i *Interpreter) visitList(n *ast.ListNode, ctx *runtime.Context) *EvalResult {
	result := NewResult()
	elements := make([]runtime.Value, 0, len(n.Elements))
	for _, elNode := range n.Elements {
		v := result.Register(i.Visit(elNode, ctx))
		if result.IsError() {
			return result
		}
		elements = append(elements, v)
	}
	list := runtime.NewList(elements).SetPos(n.PosStart(), n.PosEnd()).SetContext(ctx)
	return result.Success(list)
}
