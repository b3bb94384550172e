package value

import (
	"strconv"

	"github.com/it1shka/language/internal/ast"
)

// Type tags the runtime value kinds.
type Type byte

const (
	TypeNull Type = iota
	TypeInt
	TypeFloat
	TypeStr
	TypeBoolean
	TypeFunction
	TypeBuiltIn
)

// Value is the interface all runtime values implement. Values are
// value-semantic: the scalar kinds are immutable, and functions carry
// an immutable parameter list and body, so storing and retrieving a
// value never aliases mutable state.
type Value interface {
	Type() Type
	// TypeName is the tag reported by the typeof builtin.
	TypeName() string
	// String renders the value the way the echo formatter prints it.
	String() string
	Equals(Value) bool
}

// Null is the null value.
type Null struct{}

func (Null) Type() Type       { return TypeNull }
func (Null) TypeName() string { return "null" }
func (Null) String() string   { return "null" }
func (Null) Equals(v Value) bool {
	_, ok := v.(Null)

	return ok
}

// Int is a 32-bit signed integer value.
type Int int32

func (i Int) Type() Type       { return TypeInt }
func (i Int) TypeName() string { return "int" }
func (i Int) String() string   { return strconv.FormatInt(int64(i), 10) }
func (i Int) Equals(v Value) bool {
	other, ok := v.(Int)

	return ok && i == other
}

// Float is a 64-bit floating-point value.
type Float float64

func (f Float) Type() Type       { return TypeFloat }
func (f Float) TypeName() string { return "float" }
func (f Float) String() string   { return strconv.FormatFloat(float64(f), 'g', -1, 64) }
func (f Float) Equals(v Value) bool {
	// Exact IEEE comparison via Go's float equality: no tolerance, and
	// NaN never equals itself.
	other, ok := v.(Float)

	return ok && f == other
}

// Str is a string value.
type Str string

func (s Str) Type() Type       { return TypeStr }
func (s Str) TypeName() string { return "string" }
func (s Str) String() string   { return string(s) }
func (s Str) Equals(v Value) bool {
	other, ok := v.(Str)

	return ok && s == other
}

// Boolean is a boolean value.
type Boolean bool

func (b Boolean) Type() Type       { return TypeBoolean }
func (b Boolean) TypeName() string { return "bool" }
func (b Boolean) String() string {
	if b {
		return "true"
	}

	return "false"
}
func (b Boolean) Equals(v Value) bool {
	other, ok := v.(Boolean)

	return ok && b == other
}

// Function is a user-declared function value. It carries only its
// parameter names and body: free variables in the body resolve against
// the scope stack live at call time, not against the declaration site.
// The language is dynamically scoped, not closure-based.
type Function struct {
	params []string
	body   ast.Statement
}

// NewFunction creates a function value.
func NewFunction(params []string, body ast.Statement) *Function {
	return &Function{params: params, body: body}
}

func (f *Function) Type() Type         { return TypeFunction }
func (f *Function) TypeName() string   { return "function" }
func (f *Function) String() string     { return "function" }
func (f *Function) Equals(Value) bool  { return false } // functions are not comparable
func (f *Function) Params() []string   { return f.params }
func (f *Function) Body() ast.Statement { return f.body }

// BuiltIn is a native function value.
type BuiltIn struct {
	name string
	fn   func([]Value) (Value, error)
}

// NewBuiltIn creates a builtin function value.
func NewBuiltIn(name string, fn func([]Value) (Value, error)) *BuiltIn {
	return &BuiltIn{name: name, fn: fn}
}

func (b *BuiltIn) Type() Type       { return TypeBuiltIn }
func (b *BuiltIn) TypeName() string { return "function" }
func (b *BuiltIn) String() string   { return "builtin function" }
func (b *BuiltIn) Equals(v Value) bool {
	other, ok := v.(*BuiltIn)

	return ok && b.name == other.name
}
func (b *BuiltIn) Name() string                      { return b.name }
func (b *BuiltIn) Apply(args []Value) (Value, error) { return b.fn(args) }

// ============================================================================
// Coercions
// ============================================================================
// Every value coerces to each scalar kind; combinations with no sensible
// conversion produce Null rather than an error.

// ToInt coerces a value to Int. Floats truncate toward zero, strings go
// through a decimal parse, booleans become 1 or 0.
func ToInt(v Value) Value {
	switch v := v.(type) {
	case Int:
		return v
	case Float:
		return Int(int32(v))
	case Str:
		parsed, err := strconv.ParseInt(string(v), 10, 32)
		if err != nil {
			return Null{}
		}

		return Int(int32(parsed))
	case Boolean:
		if v {
			return Int(1)
		}

		return Int(0)
	default:
		return Null{}
	}
}

// ToFloat coerces a value to Float.
func ToFloat(v Value) Value {
	switch v := v.(type) {
	case Int:
		return Float(float64(v))
	case Float:
		return v
	case Str:
		parsed, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return Null{}
		}

		return Float(parsed)
	case Boolean:
		if v {
			return Float(1)
		}

		return Float(0)
	default:
		return Null{}
	}
}

// ToStr coerces a value to Str. Every kind has a string form, so this
// coercion never produces Null.
func ToStr(v Value) Value {
	return Str(v.String())
}

// ToBool coerces a value to Boolean. Numbers are true when strictly
// positive, strings only when equal to "true", null is false, and
// callables are truthy.
func ToBool(v Value) Value {
	switch v := v.(type) {
	case Int:
		return Boolean(v > 0)
	case Float:
		return Boolean(v > 0)
	case Str:
		return Boolean(v == "true")
	case Boolean:
		return v
	case *Function, *BuiltIn:
		return Boolean(true)
	default:
		return Boolean(false)
	}
}
