package value

import (
	"math"
	"strings"
)

// The binary and unary operators of the language are total over the
// value domain: combinations with no defined behavior evaluate to Null
// instead of failing. Mixed int/float arithmetic promotes to Float.

// Add adds numbers with promotion, or concatenates two strings.
func Add(left, right Value) Value {
	switch l := left.(type) {
	case Int:
		switch r := right.(type) {
		case Int:
			return Int(l + r)
		case Float:
			return Float(float64(l) + float64(r))
		}
	case Float:
		switch r := right.(type) {
		case Int:
			return Float(float64(l) + float64(r))
		case Float:
			return Float(l + r)
		}
	case Str:
		if r, ok := right.(Str); ok {
			return Str(string(l) + string(r))
		}
	}

	return Null{}
}

// Sub subtracts numbers with promotion.
func Sub(left, right Value) Value {
	switch l := left.(type) {
	case Int:
		switch r := right.(type) {
		case Int:
			return Int(l - r)
		case Float:
			return Float(float64(l) - float64(r))
		}
	case Float:
		switch r := right.(type) {
		case Int:
			return Float(float64(l) - float64(r))
		case Float:
			return Float(l - r)
		}
	}

	return Null{}
}

// Mul multiplies numbers with promotion. An Int paired with a Str
// repeats the string; a negative count yields the empty string.
func Mul(left, right Value) Value {
	switch l := left.(type) {
	case Int:
		switch r := right.(type) {
		case Int:
			return Int(l * r)
		case Float:
			return Float(float64(l) * float64(r))
		case Str:
			return Str(repeat(string(r), int32(l)))
		}
	case Float:
		switch r := right.(type) {
		case Int:
			return Float(float64(l) * float64(r))
		case Float:
			return Float(l * r)
		}
	case Str:
		if r, ok := right.(Int); ok {
			return Str(repeat(string(l), int32(r)))
		}
	}

	return Null{}
}

// Div divides numbers. Division always promotes to Float, including
// the Int/Int case.
func Div(left, right Value) Value {
	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if !lok || !rok {
		return Null{}
	}

	return Float(lf / rf)
}

// Mod is the remainder operation. Int%Int stays Int; any float operand
// promotes to the floating-point remainder.
func Mod(left, right Value) Value {
	if l, ok := left.(Int); ok {
		if r, ok := right.(Int); ok {
			if r == 0 {
				return Null{}
			}

			return Int(l % r)
		}
	}

	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if !lok || !rok {
		return Null{}
	}

	return Float(math.Mod(lf, rf))
}

// StrConcat coerces both operands to Str and joins them.
func StrConcat(left, right Value) Value {
	return Add(ToStr(left), ToStr(right))
}

// Equal is structural equality. Operands of different kinds are never
// equal.
func Equal(left, right Value) Value {
	return Boolean(left.Equals(right))
}

// NotEqual is the negation of Equal.
func NotEqual(left, right Value) Value {
	return Boolean(!left.Equals(right))
}

// Greater compares numbers with promotion, or strings
// lexicographically.
func Greater(left, right Value) Value {
	return compare(left, right, func(c int) bool { return c > 0 })
}

// Less compares numbers with promotion, or strings lexicographically.
func Less(left, right Value) Value {
	return compare(left, right, func(c int) bool { return c < 0 })
}

// GreaterOrEqual compares numbers with promotion, or strings
// lexicographically.
func GreaterOrEqual(left, right Value) Value {
	return compare(left, right, func(c int) bool { return c >= 0 })
}

// LessOrEqual compares numbers with promotion, or strings
// lexicographically.
func LessOrEqual(left, right Value) Value {
	return compare(left, right, func(c int) bool { return c <= 0 })
}

// And is boolean conjunction, defined only on two Booleans.
func And(left, right Value) Value {
	l, lok := left.(Boolean)
	r, rok := right.(Boolean)
	if !lok || !rok {
		return Null{}
	}

	return Boolean(bool(l) && bool(r))
}

// Or is boolean disjunction. Null acts as an identity: null || x and
// x || null both evaluate to x.
func Or(left, right Value) Value {
	if l, ok := left.(Boolean); ok {
		if r, ok := right.(Boolean); ok {
			return Boolean(bool(l) || bool(r))
		}
	}
	if _, ok := left.(Null); ok {
		return right
	}
	if _, ok := right.(Null); ok {
		return left
	}

	return Null{}
}

// Not is boolean negation, defined only on Boolean.
func Not(v Value) Value {
	if b, ok := v.(Boolean); ok {
		return Boolean(!bool(b))
	}

	return Null{}
}

// UnaryPlus coerces to a number: Int when the value converts to one,
// otherwise Float.
func UnaryPlus(v Value) Value {
	val := ToInt(v)
	if _, isNull := val.(Null); isNull {
		val = ToFloat(v)
	}

	return val
}

// UnaryMinus negates a number.
func UnaryMinus(v Value) Value {
	switch v := v.(type) {
	case Int:
		return Int(-v)
	case Float:
		return Float(-v)
	default:
		return Null{}
	}
}

// asFloat extracts the float64 behind either numeric kind.
func asFloat(v Value) (float64, bool) {
	switch v := v.(type) {
	case Int:
		return float64(v), true
	case Float:
		return float64(v), true
	default:
		return 0, false
	}
}

// compare orders two values when an ordering exists: numeric with
// promotion, or string lexicographic. Everything else is Null.
func compare(left, right Value, pick func(int) bool) Value {
	if l, ok := left.(Str); ok {
		if r, ok := right.(Str); ok {
			return Boolean(pick(strings.Compare(string(l), string(r))))
		}

		return Null{}
	}

	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if !lok || !rok {
		return Null{}
	}

	switch {
	case lf < rf:
		return Boolean(pick(-1))
	case lf > rf:
		return Boolean(pick(1))
	default:
		return Boolean(pick(0))
	}
}

// repeat builds count copies of s; non-positive counts yield "".
func repeat(s string, count int32) string {
	if count <= 0 {
		return ""
	}

	return strings.Repeat(s, int(count))
}
