package eval

import (
	"errors"

	"github.com/it1shka/language/internal/ast"
	"github.com/it1shka/language/internal/value"
)

// evalCall dispatches a call expression to a user function or a
// builtin. Anything else on the target side is an execution error.
func (e *Engine) evalCall(expr *ast.CallExpr) (value.Value, error) {
	target, err := e.evalPrimary(expr.Target)
	if err != nil {
		return nil, err
	}

	switch target := target.(type) {
	case *value.Function:
		return e.callFunction(target, expr.Args)
	case *value.BuiltIn:
		return e.callBuiltIn(target, expr.Args)
	default:
		return nil, errors.New("cannot call object")
	}
}

// callFunction applies a user function. A fresh scope is pushed for
// the activation and released on every exit path. Arguments are
// evaluated left to right and bound positionally: parameters without
// an argument stay unbound (and read as null), extra arguments are
// evaluated and dropped. The call's value is the return signal's
// payload, or null when the body completes without one.
func (e *Engine) callFunction(fn *value.Function, args []ast.Expression) (value.Value, error) {
	e.memory.NewScope()
	defer e.memory.LeaveScope()

	params := fn.Params()
	for i, arg := range args {
		val, err := e.evalExpression(arg)
		if err != nil {
			return nil, err
		}
		if i < len(params) {
			e.memory.SetLocal(params[i], val)
		}
	}

	sig, err := e.execStatement(fn.Body())
	if err != nil {
		return nil, err
	}
	if sig != nil && sig.kind == sigReturn {
		return sig.value, nil
	}

	// A body ending without return, or escaping via break/continue,
	// yields null.
	return value.Null{}, nil
}

// callBuiltIn evaluates all arguments into a value list and invokes
// the native implementation.
func (e *Engine) callBuiltIn(fn *value.BuiltIn, args []ast.Expression) (value.Value, error) {
	vals := make([]value.Value, 0, len(args))
	for _, arg := range args {
		val, err := e.evalExpression(arg)
		if err != nil {
			return nil, err
		}
		vals = append(vals, val)
	}

	return fn.Apply(vals)
}
