package runtime

import "github.com/otieno-dev/lugha/internal/token"

// String is a runtime string value: a sequence of host-platform code units.
// No Unicode normalization is performed (spec.md Non-goals).
type String struct {
	span
	Value string
}

// NewString builds a String with no position/context stamped yet.
func NewString(v string) *String { return &String{Value: v} }

func (s *String) Kind() Kind     { return KindString }
func (s *String) String() string { return s.Value }
func (s *String) IsTrue() bool   { return len(s.Value) > 0 }

func (s *String) Copy() Value {
	return &String{Value: s.Value}
}

func (s *String) SetPos(start, end token.Position) Value {
	s.setPos(start, end)
	return s
}

func (s *String) SetContext(ctx *Context) Value {
	s.setContext(ctx)
	return s
}
