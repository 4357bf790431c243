package evaluator

import (
	"testing"

	"github.com/otieno-dev/lugha/internal/ast"
	"github.com/otieno-dev/lugha/internal/builtins"
	"github.com/otieno-dev/lugha/internal/errors"
	"github.com/otieno-dev/lugha/internal/host"
	"github.com/otieno-dev/lugha/internal/runtime"
	"github.com/otieno-dev/lugha/internal/token"
)

// newProgram builds a fresh global Context with every built-in and sentinel
// pre-populated, the way a real run starts (spec.md §3's SymbolTable
// invariant).
func newProgram(io host.IO) *runtime.Context {
	table := runtime.NewSymbolTable()
	builtins.RegisterAll(table, io)
	return runtime.NewGlobalContext("<mpango>", table)
}

func zp() token.Position { return token.Position{Line: 1, Column: 1} }

func num(v float64) *ast.NumberNode { return &ast.NumberNode{Value: v} }

func str(v string) *ast.StringNode { return &ast.StringNode{Value: v} }

func binOp(left ast.Node, op token.Type, right ast.Node) *ast.BinOpNode {
	return &ast.BinOpNode{Left: left, Op: op, Right: right}
}

func varAccess(name string) *ast.VarAccessNode { return &ast.VarAccessNode{Name: name} }

func mustNumber(t *testing.T, v runtime.Value) float64 {
	t.Helper()
	n, ok := v.(*runtime.Number)
	if !ok {
		t.Fatalf("value %v is not a Number", v)
	}
	return n.Value
}

// 2 + 3 * 4 = 14 — operator precedence is the parser's job, but the
// evaluator must still respect whatever tree it's handed: here the tree is
// built with * already binding tighter than +.
func TestArithmeticPrecedenceTree(t *testing.T) {
	tree := binOp(num(2), token.PLUS, binOp(num(3), token.MUL, num(4)))
	interp := New(DefaultConfig())
	ctx := newProgram(host.NewFake())

	result := interp.Visit(tree, ctx)
	if result.IsError() {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if got := mustNumber(t, result.Val); got != 14 {
		t.Errorf("got %v, want 14", got)
	}
}

// shughuli mara(a, b) rudisha a * b; mara(6, 7) == 42
func TestUserFunctionCall(t *testing.T) {
	body := &ast.StatementsNode{Statements: []ast.Node{
		binOp(varAccess("a"), token.MUL, varAccess("b")),
	}}
	def := &ast.FuncDefNode{Name: "mara", ParamNames: []string{"a", "b"}, BodyNode: body}
	call := &ast.CallNode{Callee: varAccess("mara"), Args: []ast.Node{num(6), num(7)}}
	program := &ast.StatementsNode{Statements: []ast.Node{def, call}}

	interp := New(DefaultConfig())
	ctx := newProgram(host.NewFake())

	result := interp.Visit(program, ctx)
	if result.IsError() {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if got := mustNumber(t, result.Val); got != 42 {
		t.Errorf("got %v, want 42", got)
	}
}

// shughuli gen(n) rudisha shughuli(m) rudisha n + m;
// gen(10)(5) == 15 — closures capture their defining scope.
func TestClosureCapturesDefiningScope(t *testing.T) {
	inner := &ast.FuncDefNode{
		Name:       "",
		ParamNames: []string{"m"},
		BodyNode: &ast.StatementsNode{Statements: []ast.Node{
			binOp(varAccess("n"), token.PLUS, varAccess("m")),
		}},
	}
	outer := &ast.FuncDefNode{
		Name:       "gen",
		ParamNames: []string{"n"},
		BodyNode:   &ast.StatementsNode{Statements: []ast.Node{inner}},
	}
	outerCall := &ast.CallNode{Callee: varAccess("gen"), Args: []ast.Node{num(10)}}
	innerCall := &ast.CallNode{Callee: outerCall, Args: []ast.Node{num(5)}}
	program := &ast.StatementsNode{Statements: []ast.Node{outer, innerCall}}

	interp := New(DefaultConfig())
	ctx := newProgram(host.NewFake())

	result := interp.Visit(program, ctx)
	if result.IsError() {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if got := mustNumber(t, result.Val); got != 15 {
		t.Errorf("got %v, want 15", got)
	}
}

// kwa i = 1 mpaka 4 { andika(i) } prints 1, 2, 3 and produces [1, 2, 3].
func TestForLoopPrintsAndCollects(t *testing.T) {
	forNode := &ast.ForNode{
		VarName:   "i",
		StartNode: num(1),
		EndNode:   num(4),
		BodyNode: &ast.CallNode{
			Callee: varAccess("andika"),
			Args:   []ast.Node{varAccess("i")},
		},
	}

	interp := New(DefaultConfig())
	io := host.NewFake()
	ctx := newProgram(io)

	result := interp.Visit(forNode, ctx)
	if result.IsError() {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	list, ok := result.Val.(*runtime.List)
	if !ok {
		t.Fatalf("result is %T, want *runtime.List", result.Val)
	}
	if len(list.Elements) != 3 {
		t.Fatalf("len = %d, want 3", len(list.Elements))
	}
	if got, want := io.Output.String(), "1\n2\n3\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

// 1 / 0 is an Overflow error.
func TestDivisionByZeroIsOverflow(t *testing.T) {
	tree := binOp(num(1), token.DIV, num(0))
	interp := New(DefaultConfig())
	ctx := newProgram(host.NewFake())

	result := interp.Visit(tree, ctx)
	if !result.IsError() {
		t.Fatal("expected an error")
	}
	if result.Err.Kind != errors.Overflow {
		t.Errorf("kind = %v, want Overflow", result.Err.Kind)
	}
}

// wakati kweli { 1 } runs away and is stopped by the iteration bound.
func TestRunawayWhileLoopHitsIterationBound(t *testing.T) {
	whileNode := &ast.WhileNode{
		ConditionNode: varAccess("kweli"),
		BodyNode:      num(1),
	}

	cfg := DefaultConfig()
	cfg.MaxIterations = 10000
	interp := New(cfg)
	ctx := newProgram(host.NewFake())

	result := interp.Visit(whileNode, ctx)
	if !result.IsError() {
		t.Fatal("expected CallStackExceeded, got success")
	}
	if result.Err.Kind != errors.CallStackExceeded {
		t.Errorf("kind = %v, want CallStackExceeded", result.Err.Kind)
	}
}

// idadi("hello") == 5; idadi(42) is a TypeError.
func TestIdadiLengthAndTypeErrorEndToEnd(t *testing.T) {
	interp := New(DefaultConfig())
	ctx := newProgram(host.NewFake())

	lenCall := &ast.CallNode{Callee: varAccess("idadi"), Args: []ast.Node{str("hello")}}
	result := interp.Visit(lenCall, ctx)
	if result.IsError() {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if got := mustNumber(t, result.Val); got != 5 {
		t.Errorf("got %v, want 5", got)
	}

	badCall := &ast.CallNode{Callee: varAccess("idadi"), Args: []ast.Node{num(42)}}
	badResult := interp.Visit(badCall, ctx)
	if !badResult.IsError() {
		t.Fatal("expected a TypeError")
	}
	if badResult.Err.Kind != errors.TypeError {
		t.Errorf("kind = %v, want TypeError", badResult.Err.Kind)
	}
}

// Recursion past MaxRecursionDepth raises CallStackExceeded, independent of
// the loop iteration bound.
func TestDeepRecursionHitsCallStackBound(t *testing.T) {
	body := &ast.StatementsNode{Statements: []ast.Node{
		&ast.CallNode{Callee: varAccess("chimba"), Args: []ast.Node{
			binOp(varAccess("n"), token.PLUS, num(1)),
		}},
	}}
	def := &ast.FuncDefNode{Name: "chimba", ParamNames: []string{"n"}, BodyNode: body}
	call := &ast.CallNode{Callee: varAccess("chimba"), Args: []ast.Node{num(0)}}
	program := &ast.StatementsNode{Statements: []ast.Node{def, call}}

	cfg := DefaultConfig()
	cfg.MaxRecursionDepth = 32
	interp := New(cfg)
	ctx := newProgram(host.NewFake())

	result := interp.Visit(program, ctx)
	if !result.IsError() {
		t.Fatal("expected CallStackExceeded")
	}
	if result.Err.Kind != errors.CallStackExceeded {
		t.Errorf("kind = %v, want CallStackExceeded", result.Err.Kind)
	}
}

// Unbound names raise UnboundName, not a nil-pointer panic.
func TestUnboundNameError(t *testing.T) {
	interp := New(DefaultConfig())
	ctx := newProgram(host.NewFake())

	result := interp.Visit(varAccess("haijulikani"), ctx)
	if !result.IsError() {
		t.Fatal("expected UnboundName")
	}
	if result.Err.Kind != errors.UnboundName {
		t.Errorf("kind = %v, want UnboundName", result.Err.Kind)
	}
}

// Calling a function with the wrong number of arguments raises ArityMismatch.
func TestArityMismatchError(t *testing.T) {
	def := &ast.FuncDefNode{Name: "mbili", ParamNames: []string{"a", "b"},
		BodyNode: &ast.StatementsNode{Statements: []ast.Node{varAccess("a")}}}
	call := &ast.CallNode{Callee: varAccess("mbili"), Args: []ast.Node{num(1)}}
	program := &ast.StatementsNode{Statements: []ast.Node{def, call}}

	interp := New(DefaultConfig())
	ctx := newProgram(host.NewFake())

	result := interp.Visit(program, ctx)
	if !result.IsError() {
		t.Fatal("expected ArityMismatch")
	}
	if result.Err.Kind != errors.ArityMismatch {
		t.Errorf("kind = %v, want ArityMismatch", result.Err.Kind)
	}
}
