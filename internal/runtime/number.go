package runtime

import (
	"strconv"

	"github.com/otieno-dev/lugha/internal/token"
)

// Number is a 64-bit float runtime value.
type Number struct {
	span
	Value float64
}

// NewNumber builds a Number with no position/context stamped yet.
func NewNumber(v float64) *Number { return &Number{Value: v} }

func (n *Number) Kind() Kind   { return KindNumber }
func (n *Number) String() string { return strconv.FormatFloat(n.Value, 'g', -1, 64) }
func (n *Number) IsTrue() bool   { return n.Value != 0 }

func (n *Number) Copy() Value {
	return &Number{Value: n.Value}
}

func (n *Number) SetPos(start, end token.Position) Value {
	n.setPos(start, end)
	return n
}

func (n *Number) SetContext(ctx *Context) Value {
	n.setContext(ctx)
	return n
}
