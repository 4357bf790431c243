package runtime

import "github.com/otieno-dev/lugha/internal/token"

// Boolean is a runtime true/false value.
type Boolean struct {
	span
	Value bool
}

// NewBoolean builds a Boolean with no position/context stamped yet.
func NewBoolean(v bool) *Boolean { return &Boolean{Value: v} }

func (b *Boolean) Kind() Kind { return KindBoolean }
func (b *Boolean) String() string {
	if b.Value {
		return "kweli"
	}
	return "uwongo"
}
func (b *Boolean) IsTrue() bool { return b.Value }

func (b *Boolean) Copy() Value {
	return &Boolean{Value: b.Value}
}

func (b *Boolean) SetPos(start, end token.Position) Value {
	b.setPos(start, end)
	return b
}

func (b *Boolean) SetContext(ctx *Context) Value {
	b.setContext(ctx)
	return b
}
