// Package ast defines the abstract syntax tree nodes the evaluator core
// consumes. Every node variant named by the evaluation core's node-visitor
// set (NumberNode, StringNode, ListNode, VarAccessNode, VarAssignNode,
// BinOpNode, UnaryOpNode, IfNode, ForNode, WhileNode, FuncDefNode, CallNode)
// has exactly one concrete type here, each carrying PosStart/PosEnd.
package ast

import (
	"strconv"

	"github.com/otieno-dev/lugha/internal/token"
)

// Node is any AST node produced by the parser and consumed by the evaluator.
type Node interface {
	// PosStart returns the node's starting source position.
	PosStart() token.Position
	// PosEnd returns the node's ending source position.
	PosEnd() token.Position
	// String renders the node for debugging and --dump-ast output.
	String() string
}

// Span is the embeddable start/end position pair every node carries.
type Span struct {
	Start token.Position
	End   token.Position
}

// PosStart returns the span's starting position.
func (s Span) PosStart() token.Position { return s.Start }

// PosEnd returns the span's ending position.
func (s Span) PosEnd() token.Position { return s.End }

// NewSpan builds a Span from a start and end position.
func NewSpan(start, end token.Position) Span { return Span{Start: start, End: end} }

// NumberNode is a numeric literal.
type NumberNode struct {
	Span
	Value float64
}

func (n *NumberNode) String() string { return formatFloat(n.Value) }

// StringNode is a string literal.
type StringNode struct {
	Span
	Value string
}

func (n *StringNode) String() string { return `"` + n.Value + `"` }

// ListNode is a list literal: a sequence of element expressions.
type ListNode struct {
	Span
	Elements []Node
}

func (n *ListNode) String() string { return "[list]" }

// VarAccessNode reads the value bound to an identifier.
type VarAccessNode struct {
	Span
	Name string
}

func (n *VarAccessNode) String() string { return n.Name }

// VarAssignNode binds an identifier to the value of an expression in the
// current scope.
type VarAssignNode struct {
	Span
	Name  string
	Value Node
}

func (n *VarAssignNode) String() string { return n.Name + " = " + n.Value.String() }

// BinOpNode applies a binary operator token to two evaluated operands.
type BinOpNode struct {
	Span
	Left  Node
	Op    token.Type
	Right Node
}

func (n *BinOpNode) String() string {
	return "(" + n.Left.String() + " " + n.Op.String() + " " + n.Right.String() + ")"
}

// UnaryOpNode applies a unary operator token to one evaluated operand.
type UnaryOpNode struct {
	Span
	Op   token.Type
	Node Node
}

func (n *UnaryOpNode) String() string { return "(" + n.Op.String() + n.Node.String() + ")" }

// IfCase is one (condition, body) pair of an IfNode.
type IfCase struct {
	Condition Node
	Body      Node
}

// IfNode is an ordered list of condition/body cases plus an optional else body.
type IfNode struct {
	Span
	Cases    []IfCase
	ElseCase Node // nil if no "vinginevyo" clause
}

func (n *IfNode) String() string { return "(kama ...)" }

// ForNode is a bounded counting loop: kwa <var> = <start> mpaka <end> [hatua <step>] { body }.
type ForNode struct {
	Span
	VarName   string
	StartNode Node
	EndNode   Node
	StepNode  Node // nil => default step of 1
	BodyNode  Node
}

func (n *ForNode) String() string { return "(kwa " + n.VarName + " ...)" }

// WhileNode loops while its condition is true.
type WhileNode struct {
	Span
	ConditionNode Node
	BodyNode      Node
}

func (n *WhileNode) String() string { return "(wakati ...)" }

// FuncDefNode defines a (possibly anonymous) function.
type FuncDefNode struct {
	Span
	Name       string // empty for an anonymous function
	ParamNames []string
	BodyNode   Node
}

func (n *FuncDefNode) String() string { return "(shughuli " + n.Name + ")" }

// CallNode invokes a callee Value with evaluated argument expressions.
type CallNode struct {
	Span
	Callee Node
	Args   []Node
}

func (n *CallNode) String() string { return n.Callee.String() + "(...)" }

// StatementsNode sequences statements; a function body or a block is one of
// these. Evaluating it returns the value of its last statement (or Null if
// empty), which is how "rudisha" propagates a function's result: rudisha is
// parsed as a plain trailing expression statement in tail position.
type StatementsNode struct {
	Span
	Statements []Node
}

func (n *StatementsNode) String() string { return "(block)" }

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
