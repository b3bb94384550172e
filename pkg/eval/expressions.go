package eval

import (
	"errors"
	"fmt"

	"github.com/it1shka/language/internal/ast"
	"github.com/it1shka/language/internal/value"
)

// evalExpression evaluates any expression node to a value.
func (e *Engine) evalExpression(expr ast.Expression) (value.Value, error) {
	switch expr := expr.(type) {
	case *ast.BinaryExpr:
		return e.evalBinary(expr)
	case ast.Primary:
		return e.evalPrimary(expr)
	default:
		return nil, fmt.Errorf("unknown expression type: %T", expr)
	}
}

// evalBinary handles binary operators. Assignment is special-cased;
// everything else evaluates both operands, left before right, and
// applies the corresponding value-level operator. Type mismatches are
// not errors; the operators are total and produce null.
func (e *Engine) evalBinary(expr *ast.BinaryExpr) (value.Value, error) {
	if expr.Op == ast.OpAssign {
		return e.evalAssign(expr)
	}

	left, err := e.evalExpression(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpression(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Op {
	case ast.OpAdd:
		return value.Add(left, right), nil
	case ast.OpSub:
		return value.Sub(left, right), nil
	case ast.OpMul:
		return value.Mul(left, right), nil
	case ast.OpDiv:
		return value.Div(left, right), nil
	case ast.OpMod:
		return value.Mod(left, right), nil
	case ast.OpStrAdd:
		return value.StrConcat(left, right), nil
	case ast.OpEq:
		return value.Equal(left, right), nil
	case ast.OpNEq:
		return value.NotEqual(left, right), nil
	case ast.OpGT:
		return value.Greater(left, right), nil
	case ast.OpLT:
		return value.Less(left, right), nil
	case ast.OpGTE:
		return value.GreaterOrEqual(left, right), nil
	case ast.OpLTE:
		return value.LessOrEqual(left, right), nil
	case ast.OpAnd:
		return value.And(left, right), nil
	case ast.OpOr:
		return value.Or(left, right), nil
	default:
		return nil, fmt.Errorf("unknown binary operator: %v", expr.Op)
	}
}

// evalAssign stores the right-hand value under the name on the left.
// Only a bare identifier is assignable; the expression's value is the
// assigned value.
func (e *Engine) evalAssign(expr *ast.BinaryExpr) (value.Value, error) {
	ident, ok := expr.Left.(*ast.IdentExpr)
	if !ok {
		return nil, errors.New("cannot assign to a constant")
	}

	val, err := e.evalExpression(expr.Right)
	if err != nil {
		return nil, err
	}
	e.memory.Assign(ident.Name, val)

	return val, nil
}

// evalPrimary evaluates the tightest-precedence expression forms.
func (e *Engine) evalPrimary(expr ast.Primary) (value.Value, error) {
	switch expr := expr.(type) {
	case *ast.IntLit:
		return value.Int(expr.Value), nil
	case *ast.FloatLit:
		return value.Float(expr.Value), nil
	case *ast.StringLit:
		return value.Str(expr.Value), nil
	case *ast.BoolLit:
		return value.Boolean(expr.Value), nil
	case *ast.NullLit:
		return value.Null{}, nil
	case *ast.IdentExpr:
		// Unbound names read as null.
		return e.memory.Lookup(expr.Name), nil
	case *ast.GroupExpr:
		return e.evalExpression(expr.Expr)
	case *ast.UnaryExpr:
		return e.evalUnary(expr)
	case *ast.CallExpr:
		return e.evalCall(expr)
	default:
		return nil, fmt.Errorf("unknown primary expression type: %T", expr)
	}
}

// evalUnary applies a prefix operator to its operand's value.
func (e *Engine) evalUnary(expr *ast.UnaryExpr) (value.Value, error) {
	operand, err := e.evalPrimary(expr.Operand)
	if err != nil {
		return nil, err
	}

	switch expr.Op {
	case ast.OpUnaryPlus:
		return value.UnaryPlus(operand), nil
	case ast.OpUnaryMinus:
		return value.UnaryMinus(operand), nil
	case ast.OpUnaryNot:
		return value.Not(operand), nil
	default:
		return nil, fmt.Errorf("unknown unary operator: %v", expr.Op)
	}
}
