// Package runtime implements the evaluation core's value model, symbol
// table, and activation context: the tagged Value union described in
// spec.md §3/§4.1, the lexically-nested SymbolTable of §4.2, and the
// dynamic-call-chain Context of §4.3.
package runtime

import "github.com/otieno-dev/lugha/internal/token"

// Kind tags a Value's variant.
type Kind string

const (
	KindNumber   Kind = "NUMBER"
	KindString   Kind = "STRING"
	KindBoolean  Kind = "BOOLEAN"
	KindList     Kind = "LIST"
	KindNull     Kind = "NULL"
	KindFunction Kind = "FUNCTION"
	KindBuiltin  Kind = "BUILTIN"
)

// Value is the runtime universe every evaluated expression produces. Every
// concrete variant is conceptually immutable for arithmetic/comparison
// purposes: binary/unary operations build new Values rather than mutating
// their operands.
type Value interface {
	// Kind reports the value's variant tag.
	Kind() Kind
	// String renders the value's display form, as used by andika/print and
	// when a List renders its elements.
	String() string
	// IsTrue reports the value's truthiness per spec.md's table.
	IsTrue() bool
	// Copy produces a shallow clone with the same payload but a fresh
	// position/context (invariant #1 in spec.md §8).
	Copy() Value
	// PosStart/PosEnd report the value's source span.
	PosStart() token.Position
	PosEnd() token.Position
	// SetPos stamps a fresh position onto the value and returns it, for the
	// "access site's position, not the definition's" discipline VarAccessNode
	// and CallNode require.
	SetPos(start, end token.Position) Value
	// Context returns the Context this value was last bound in (informational;
	// does not extend the value's lifetime).
	Context() *Context
	// SetContext stamps the value with a Context and returns it.
	SetContext(ctx *Context) Value
}

// span is the embeddable position/context pair shared by every variant.
type span struct {
	start token.Position
	end   token.Position
	ctx   *Context
}

func (s *span) PosStart() token.Position { return s.start }
func (s *span) PosEnd() token.Position   { return s.end }
func (s *span) Context() *Context        { return s.ctx }

func (s *span) setPos(start, end token.Position) { s.start, s.end = start, end }
func (s *span) setContext(ctx *Context)           { s.ctx = ctx }
