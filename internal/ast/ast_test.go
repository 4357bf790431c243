package ast

import (
	"testing"

	"github.com/otieno-dev/lugha/internal/token"
)

func TestNodePositions(t *testing.T) {
	start := token.Position{Line: 1, Column: 1}
	end := token.Position{Line: 1, Column: 3}
	n := &NumberNode{Span: NewSpan(start, end), Value: 14}

	if n.PosStart() != start {
		t.Errorf("PosStart() = %v, want %v", n.PosStart(), start)
	}
	if n.PosEnd() != end {
		t.Errorf("PosEnd() = %v, want %v", n.PosEnd(), end)
	}
	if got, want := n.String(), "14"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBinOpNodeString(t *testing.T) {
	sp := NewSpan(token.Position{}, token.Position{})
	left := &NumberNode{Span: sp, Value: 2}
	right := &NumberNode{Span: sp, Value: 3}
	op := &BinOpNode{Span: sp, Left: left, Op: token.PLUS, Right: right}

	if got, want := op.String(), "(2 PLUS 3)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
