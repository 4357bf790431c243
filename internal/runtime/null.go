package runtime

import "github.com/otieno-dev/lugha/internal/token"

// Null is the runtime "tupu" value. There is exactly one logical null; each
// instance is cheap to construct so no singleton is enforced.
type Null struct {
	span
}

// NewNull builds a Null with no position/context stamped yet.
func NewNull() *Null { return &Null{} }

func (n *Null) Kind() Kind     { return KindNull }
func (n *Null) String() string { return "tupu" }
func (n *Null) IsTrue() bool   { return false }

func (n *Null) Copy() Value {
	return &Null{}
}

func (n *Null) SetPos(start, end token.Position) Value {
	n.setPos(start, end)
	return n
}

func (n *Null) SetContext(ctx *Context) Value {
	n.setContext(ctx)
	return n
}
