package runtime

import (
	"testing"

	"github.com/otieno-dev/lugha/internal/token"
)

func TestCopySetPosInvariant(t *testing.T) {
	pos := token.Position{Line: 4, Column: 2}
	original := NewNumber(42)

	copied := original.Copy().SetPos(pos, pos)

	if copied.PosStart() != pos {
		t.Errorf("copied.PosStart() = %v, want %v", copied.PosStart(), pos)
	}
	if copied.(*Number).Value != 42 {
		t.Errorf("payload changed after copy: %v", copied)
	}
	if original.PosStart() == pos {
		t.Error("original's position was mutated by copy+SetPos, want independent")
	}
}

func TestContextRoundTrip(t *testing.T) {
	global := NewGlobalContext("<global>", NewSymbolTable())
	v := NewNumber(1).SetContext(global)
	if v.Context() != global {
		t.Errorf("Context() = %v, want %v", v.Context(), global)
	}
}
