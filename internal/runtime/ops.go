package runtime

import (
	"math"

	"github.com/otieno-dev/lugha/internal/errors"
	"github.com/otieno-dev/lugha/internal/token"
)

// illegalOp builds the IllegalOperation error BinaryOp/UnaryOp return when a
// variant does not support the given operation, spanning from left's start
// to right's end as spec.md §4.1 specifies.
func illegalOp(left, right Value) *errors.RuntimeError {
	return errors.New(errors.IllegalOperation, "Illegal operation", left.PosStart(), right.PosEnd(), nil)
}

// BinaryOp implements the operation table in spec.md §4.1. It never panics:
// unsupported (op, left, right) combinations return an IllegalOperation
// error rather than a zero Value.
func BinaryOp(op token.Type, left, right Value) (Value, *errors.RuntimeError) {
	switch op {
	case token.PLUS:
		return opPlus(left, right)
	case token.MINUS:
		return opMinus(left, right)
	case token.MUL:
		return opMul(left, right)
	case token.DIV:
		return opDiv(left, right)
	case token.POW:
		return opPow(left, right)
	case token.EE:
		return opEquals(left, right, false)
	case token.NE:
		return opEquals(left, right, true)
	case token.LT, token.GT, token.LTE, token.GTE:
		return opCompare(op, left, right)
	case token.AND:
		return NewBoolean(left.IsTrue() && right.IsTrue()), nil
	case token.OR:
		return NewBoolean(left.IsTrue() || right.IsTrue()), nil
	default:
		return nil, illegalOp(left, right)
	}
}

// UnaryOp implements unary minus (multiply by Number(-1)) and unary "!"
// (boolean negation of IsTrue), per spec.md §4.1/§4.4.
func UnaryOp(op token.Type, operand Value) (Value, *errors.RuntimeError) {
	switch op {
	case token.MINUS:
		return opMul(operand, NewNumber(-1))
	case token.NOT:
		return NewBoolean(!operand.IsTrue()), nil
	default:
		return nil, errors.New(errors.IllegalOperation, "Illegal operation", operand.PosStart(), operand.PosEnd(), nil)
	}
}

func opPlus(left, right Value) (Value, *errors.RuntimeError) {
	if l, ok := left.(*Number); ok {
		if r, ok := right.(*Number); ok {
			return NewNumber(l.Value + r.Value), nil
		}
	}
	if l, ok := left.(*String); ok {
		if r, ok := right.(*String); ok {
			return NewString(l.Value + r.Value), nil
		}
	}
	if l, ok := left.(*List); ok {
		return l.Appended(right), nil
	}
	return nil, illegalOp(left, right)
}

func opMinus(left, right Value) (Value, *errors.RuntimeError) {
	if l, ok := left.(*Number); ok {
		if r, ok := right.(*Number); ok {
			return NewNumber(l.Value - r.Value), nil
		}
	}
	if l, ok := left.(*List); ok {
		if r, ok := right.(*Number); ok {
			if !isIndexable(r.Value) {
				return nil, illegalOp(left, right)
			}
			result, ok := l.WithoutIndex(int(r.Value))
			if !ok {
				return nil, errors.New(errors.IllegalOperation, "List index out of range", left.PosStart(), right.PosEnd(), nil)
			}
			return result, nil
		}
	}
	return nil, illegalOp(left, right)
}

func opMul(left, right Value) (Value, *errors.RuntimeError) {
	if l, ok := left.(*Number); ok {
		if r, ok := right.(*Number); ok {
			return NewNumber(l.Value * r.Value), nil
		}
	}
	if l, ok := left.(*String); ok {
		if r, ok := right.(*Number); ok {
			if r.Value < 0 || r.Value != math.Trunc(r.Value) {
				return nil, illegalOp(left, right)
			}
			n := int(r.Value)
			result := make([]byte, 0, len(l.Value)*n)
			for i := 0; i < n; i++ {
				result = append(result, l.Value...)
			}
			return NewString(string(result)), nil
		}
	}
	if l, ok := left.(*List); ok {
		if r, ok := right.(*List); ok {
			return l.Concat(r), nil
		}
	}
	return nil, illegalOp(left, right)
}

func opDiv(left, right Value) (Value, *errors.RuntimeError) {
	if l, ok := left.(*Number); ok {
		if r, ok := right.(*Number); ok {
			if r.Value == 0 {
				return nil, errors.New(errors.Overflow, "Division by zero", left.PosStart(), right.PosEnd(), nil)
			}
			return NewNumber(l.Value / r.Value), nil
		}
	}
	if l, ok := left.(*List); ok {
		if r, ok := right.(*Number); ok {
			if !isIndexable(r.Value) {
				return nil, illegalOp(left, right)
			}
			value, ok := l.At(int(r.Value))
			if !ok {
				return nil, errors.New(errors.IllegalOperation, "List index out of range", left.PosStart(), right.PosEnd(), nil)
			}
			return value, nil
		}
	}
	return nil, illegalOp(left, right)
}

func opPow(left, right Value) (Value, *errors.RuntimeError) {
	l, ok := left.(*Number)
	if !ok {
		return nil, illegalOp(left, right)
	}
	r, ok := right.(*Number)
	if !ok {
		return nil, illegalOp(left, right)
	}
	return NewNumber(math.Pow(l.Value, r.Value)), nil
}

func opCompare(op token.Type, left, right Value) (Value, *errors.RuntimeError) {
	l, ok := left.(*Number)
	if !ok {
		return nil, illegalOp(left, right)
	}
	r, ok := right.(*Number)
	if !ok {
		return nil, illegalOp(left, right)
	}
	switch op {
	case token.LT:
		return NewBoolean(l.Value < r.Value), nil
	case token.GT:
		return NewBoolean(l.Value > r.Value), nil
	case token.LTE:
		return NewBoolean(l.Value <= r.Value), nil
	case token.GTE:
		return NewBoolean(l.Value >= r.Value), nil
	}
	return nil, illegalOp(left, right)
}

// opEquals implements "==" (negate=false) and "!=" (negate=true). Numbers
// compare by IEEE-754 semantics (NaN == NaN is false); same-variant
// comparisons otherwise use structural equality; cross-variant comparisons
// are never an error — "==" is false and "!=" is true.
func opEquals(left, right Value, negate bool) (Value, *errors.RuntimeError) {
	equal := Equal(left, right)
	if negate {
		return NewBoolean(!equal), nil
	}
	return NewBoolean(equal), nil
}

// Equal reports whether two Values are structurally equal. Cross-variant
// values are never equal (and never an error).
func Equal(left, right Value) bool {
	if left.Kind() != right.Kind() {
		return false
	}
	switch l := left.(type) {
	case *Number:
		return l.Value == right.(*Number).Value
	case *String:
		return l.Value == right.(*String).Value
	case *Boolean:
		return l.Value == right.(*Boolean).Value
	case *Null:
		return true
	case *List:
		r := right.(*List)
		if len(l.Elements) != len(r.Elements) {
			return false
		}
		for i := range l.Elements {
			if !Equal(l.Elements[i], r.Elements[i]) {
				return false
			}
		}
		return true
	case *Function:
		return l == right.(*Function)
	case *BuiltinFunction:
		return l == right.(*BuiltinFunction)
	default:
		return false
	}
}

func isIndexable(n float64) bool {
	return n == math.Trunc(n)
}
