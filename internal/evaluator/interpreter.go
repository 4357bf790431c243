package evaluator

import (
	"github.com/otieno-dev/lugha/internal/ast"
	"github.com/otieno-dev/lugha/internal/errors"
	"github.com/otieno-dev/lugha/internal/runtime"
)

// Config holds the one language-level knob spec.md §6 names (MaxIterations)
// plus the added recursion-depth cap spec.md §9 calls for.
type Config struct {
	// MaxIterations bounds a single ForNode/WhileNode activation's loop
	// count (spec.md §4.4's "loop safety bound"). Default 10,000.
	MaxIterations int
	// MaxRecursionDepth bounds user-function call nesting. Default 1024.
	MaxRecursionDepth int
}

// DefaultConfig returns the spec-mandated defaults.
func DefaultConfig() Config {
	return Config{
		MaxIterations:     10000,
		MaxRecursionDepth: DefaultMaxRecursionDepth,
	}
}

// Interpreter is the tree-walking evaluator: one Visit entry point
// dispatching on AST node variant (spec.md §4.4).
type Interpreter struct {
	config    Config
	callStack *CallStack
}

// New creates an Interpreter with the given configuration.
func New(cfg Config) *Interpreter {
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultConfig().MaxIterations
	}
	return &Interpreter{
		config:    cfg,
		callStack: NewCallStack(cfg.MaxRecursionDepth),
	}
}

// Visit evaluates node in ctx and returns its EvalResult. Dispatch is a
// type switch over the node's concrete type; every case honours the
// EvalResult short-circuit discipline described in result.go.
func (i *Interpreter) Visit(node ast.Node, ctx *runtime.Context) *EvalResult {
	switch n := node.(type) {
	case *ast.NumberNode:
		return i.visitNumber(n, ctx)
	case *ast.StringNode:
		return i.visitString(n, ctx)
	case *ast.ListNode:
		return i.visitList(n, ctx)
	case *ast.VarAccessNode:
		return i.visitVarAccess(n, ctx)
	case *ast.VarAssignNode:
		return i.visitVarAssign(n, ctx)
	case *ast.BinOpNode:
		return i.visitBinOp(n, ctx)
	case *ast.UnaryOpNode:
		return i.visitUnaryOp(n, ctx)
	case *ast.IfNode:
		return i.visitIf(n, ctx)
	case *ast.ForNode:
		return i.visitFor(n, ctx)
	case *ast.WhileNode:
		return i.visitWhile(n, ctx)
	case *ast.FuncDefNode:
		return i.visitFuncDef(n, ctx)
	case *ast.CallNode:
		return i.visitCall(n, ctx)
	case *ast.StatementsNode:
		return i.visitStatements(n, ctx)
	default:
		result := NewResult()
		pos := node.PosStart()
		return result.Failure(errors.Newf(errors.IllegalOperation, pos, pos, ctxTracer(ctx),
			"no visitor registered for node type %T", node))
	}
}

func ctxTracer(ctx *runtime.Context) errors.Tracer {
	if ctx == nil {
		return nil
	}
	return ctx
}
