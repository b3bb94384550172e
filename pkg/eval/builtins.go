package eval

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/it1shka/language/internal/value"
)

// installBuiltins populates the global scope with the native function
// library. Builtins that perform I/O close over the engine so program
// output and input go through the injected streams.
func (e *Engine) installBuiltins() {
	e.registerBuiltin("print", e.builtinPrint)
	e.registerBuiltin("input", e.builtinInput)
	e.registerBuiltin("int", coercionBuiltin("int", value.ToInt))
	e.registerBuiltin("float", coercionBuiltin("float", value.ToFloat))
	e.registerBuiltin("bool", coercionBuiltin("bool", value.ToBool))
	e.registerBuiltin("string", coercionBuiltin("string", value.ToStr))
	e.registerBuiltin("typeof", builtinTypeof)
}

// registerBuiltin binds a native function in the global scope.
func (e *Engine) registerBuiltin(name string, fn func([]value.Value) (value.Value, error)) {
	e.memory.SetLocal(name, value.NewBuiltIn(name, fn))
}

// builtinPrint writes each argument's string form on its own line and
// returns null.
func (e *Engine) builtinPrint(args []value.Value) (value.Value, error) {
	for _, arg := range args {
		e.echo(arg)
	}

	return value.Null{}, nil
}

// builtinInput prints its arguments as prompts, then reads one line
// from standard input and returns it as a string with the trailing
// line break stripped. End of input returns whatever was read.
func (e *Engine) builtinInput(args []value.Value) (value.Value, error) {
	if _, err := e.builtinPrint(args); err != nil {
		return nil, err
	}

	line, err := e.stdin.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected error while reading input")
	}

	return value.Str(strings.TrimRight(line, "\r\n")), nil
}

// coercionBuiltin wraps one of the value coercions as a builtin
// requiring at least one argument.
func coercionBuiltin(name string, coerce func(value.Value) value.Value) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("expected argument in builtin '%s'", name)
		}

		return coerce(args[0]), nil
	}
}

// builtinTypeof reports the type tag of its argument. User functions
// and builtins both report as "function".
func builtinTypeof(args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return nil, errors.New("expected argument in builtin 'typeof'")
	}

	return value.Str(args[0].TypeName()), nil
}
