package evaluator

import (
	"github.com/otieno-dev/lugha/internal/ast"
	"github.com/otieno-dev/lugha/internal/errors"
	"github.com/otieno-dev/lugha/internal/runtime"
)

// visitIf evaluates conditions in order; the first whose value IsTrue wins
// and its body is evaluated and returned. If none match, the else clause
// (if present) is evaluated; otherwise the result is Null.
func (i *Interpreter) visitIf(n *ast.IfNode, ctx *runtime.Context) *EvalResult {
	result := NewResult()
	for _, c := range n.Cases {
		cond := result.Register(i.Visit(c.Condition, ctx))
		if result.IsError() {
			return result
		}
		if cond.IsTrue() {
			value := result.Register(i.Visit(c.Body, ctx))
			if result.IsError() {
				return result
			}
			return result.Success(value)
		}
	}
	if n.ElseCase != nil {
		value := result.Register(i.Visit(n.ElseCase, ctx))
		if result.IsError() {
			return result
		}
		return result.Success(value)
	}
	return result.Success(runtime.NewNull().SetPos(n.PosStart(), n.PosEnd()).SetContext(ctx))
}

// visitFor evaluates start, end and the optional step (default 1), then
// repeatedly binds the loop variable and evaluates the body, collecting
// each iteration's value into a List — the loop's overall result. A
// per-activation iteration counter enforces the loop safety bound.
func (i *Interpreter) visitFor(n *ast.ForNode, ctx *runtime.Context) *EvalResult {
	result := NewResult()

	startVal := result.Register(i.Visit(n.StartNode, ctx))
	if result.IsError() {
		return result
	}
	start, ok := startVal.(*runtime.Number)
	if !ok {
		return result.Failure(errors.New(errors.TypeError, "for-loop start must be a number",
			n.StartNode.PosStart(), n.StartNode.PosEnd(), ctxTracer(ctx)))
	}

	endVal := result.Register(i.Visit(n.EndNode, ctx))
	if result.IsError() {
		return result
	}
	end, ok := endVal.(*runtime.Number)
	if !ok {
		return result.Failure(errors.New(errors.TypeError, "for-loop end must be a number",
			n.EndNode.PosStart(), n.EndNode.PosEnd(), ctxTracer(ctx)))
	}

	step := 1.0
	if n.StepNode != nil {
		stepVal := result.Register(i.Visit(n.StepNode, ctx))
		if result.IsError() {
			return result
		}
		stepNum, ok := stepVal.(*runtime.Number)
		if !ok {
			return result.Failure(errors.New(errors.TypeError, "for-loop step must be a number",
				n.StepNode.PosStart(), n.StepNode.PosEnd(), ctxTracer(ctx)))
		}
		step = stepNum.Value
	}

	var elements []runtime.Value
	iterations := 0
	x := start.Value
	for (step >= 0 && x < end.Value) || (step < 0 && x > end.Value) {
		iterations++
		if iterations > i.config.MaxIterations {
			return result.Failure(errors.New(errors.CallStackExceeded, "Max call stack size exceeded",
				n.PosStart(), n.PosEnd(), ctxTracer(ctx)))
		}
		ctx.SymbolTable.Set(n.VarName, runtime.NewNumber(x).SetContext(ctx))
		value := result.Register(i.Visit(n.BodyNode, ctx))
		if result.IsError() {
			return result
		}
		elements = append(elements, value)
		x += step
	}

	list := runtime.NewList(elements).SetPos(n.PosStart(), n.PosEnd()).SetContext(ctx)
	return result.Success(list)
}

// visitWhile evaluates the body while the condition's value IsTrue,
// collecting each iteration's value into a List, bounded by the same
// per-activation iteration counter as visitFor.
func (i *Interpreter) visitWhile(n *ast.WhileNode, ctx *runtime.Context) *EvalResult {
	result := NewResult()
	var elements []runtime.Value
	iterations := 0

	for {
		cond := result.Register(i.Visit(n.ConditionNode, ctx))
		if result.IsError() {
			return result
		}
		if !cond.IsTrue() {
			break
		}
		iterations++
		if iterations > i.config.MaxIterations {
			return result.Failure(errors.New(errors.CallStackExceeded, "Max call stack size exceeded",
				n.PosStart(), n.PosEnd(), ctxTracer(ctx)))
		}
		value := result.Register(i.Visit(n.BodyNode, ctx))
		if result.IsError() {
			return result
		}
		elements = append(elements, value)
	}

	list := runtime.NewList(elements).SetPos(n.PosStart(), n.PosEnd()).SetContext(ctx)
	return result.Success(list)
}
