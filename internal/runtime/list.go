package runtime

import (
	"strings"

	"github.com/otieno-dev/lugha/internal/token"
)

// List is an ordered, immutable-from-the-outside sequence of Values.
// Operations that conceptually mutate a list (append, remove) build and
// return a new List with a freshly allocated backing slice; Copy() may
// share the existing slice since elements are themselves immutable.
type List struct {
	span
	Elements []Value
}

// NewList builds a List from the given elements (no defensive copy; callers
// that build a List destined to be shared should pass a slice they own).
func NewList(elements []Value) *List { return &List{Elements: elements} }

func (l *List) Kind() Kind { return KindList }

func (l *List) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, el := range l.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(el.String())
	}
	sb.WriteString("]")
	return sb.String()
}

func (l *List) IsTrue() bool { return len(l.Elements) > 0 }

func (l *List) Copy() Value {
	return &List{Elements: l.Elements}
}

func (l *List) SetPos(start, end token.Position) Value {
	l.setPos(start, end)
	return l
}

func (l *List) SetContext(ctx *Context) Value {
	l.setContext(ctx)
	return l
}

// Appended returns a new List with value appended, per the "+ List, any"
// operation in spec.md §4.1.
func (l *List) Appended(value Value) *List {
	elements := make([]Value, len(l.Elements)+1)
	copy(elements, l.Elements)
	elements[len(l.Elements)] = value
	return NewList(elements)
}

// Concat returns a new List that is l's elements followed by other's, per
// the "* List, List" operation.
func (l *List) Concat(other *List) *List {
	elements := make([]Value, 0, len(l.Elements)+len(other.Elements))
	elements = append(elements, l.Elements...)
	elements = append(elements, other.Elements...)
	return NewList(elements)
}

// WithoutIndex returns a new List with the element at index n removed, or
// ok=false if n is out of range, per the "- List, Number" operation.
func (l *List) WithoutIndex(n int) (result *List, ok bool) {
	if n < 0 || n >= len(l.Elements) {
		return nil, false
	}
	elements := make([]Value, 0, len(l.Elements)-1)
	elements = append(elements, l.Elements[:n]...)
	elements = append(elements, l.Elements[n+1:]...)
	return NewList(elements), true
}

// At returns the element at index n, or ok=false if n is out of range, per
// the "/ List, Number" operation.
func (l *List) At(n int) (value Value, ok bool) {
	if n < 0 || n >= len(l.Elements) {
		return nil, false
	}
	return l.Elements[n], true
}
