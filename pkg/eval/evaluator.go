package eval

import (
	"bufio"
	"fmt"
	"io"

	"github.com/it1shka/language/internal/ast"
	"github.com/it1shka/language/internal/value"
)

// Engine is the tree-walking interpreter. It owns the scope stack for
// the duration of a run and performs all program I/O through the
// injected writer and reader, so tests can capture output and feed
// input.
type Engine struct {
	memory *value.ScopeStack
	stdout io.Writer
	stdin  *bufio.Reader
}

// New creates an engine writing program output to stdout and reading
// the input builtin's lines from stdin.
func New(stdout io.Writer, stdin io.Reader) *Engine {
	return &Engine{
		memory: value.NewScopeStack(),
		stdout: stdout,
		stdin:  bufio.NewReader(stdin),
	}
}

// signalKind tags the non-local control outcomes of a statement.
type signalKind int

const (
	sigBreak signalKind = iota
	sigContinue
	sigReturn
)

// signal is a control outcome propagating up the statement tree. A nil
// *signal means normal completion.
type signal struct {
	kind  signalKind
	value value.Value // carried result for sigReturn
}

// Run executes a program: builtins are installed into the global
// scope, the statement list is evaluated, and a return signal reaching
// the top level prints its value. A top-level break or continue is
// ignored.
func (e *Engine) Run(program *ast.Program) error {
	e.installBuiltins()

	sig, err := e.execStatements(program.Statements)
	if err != nil {
		return err
	}
	if sig != nil && sig.kind == sigReturn {
		e.echo(sig.value)
	}

	return nil
}

// execStatements runs a statement list, halting at the first signal
// and propagating it up.
func (e *Engine) execStatements(stmts []ast.Statement) (*signal, error) {
	for _, stmt := range stmts {
		sig, err := e.execStatement(stmt)
		if err != nil || sig != nil {
			return sig, err
		}
	}

	return nil, nil
}

// execStatement dispatches on the statement kind.
func (e *Engine) execStatement(stmt ast.Statement) (*signal, error) {
	switch stmt := stmt.(type) {
	case *ast.BlockStmt:
		return e.execBlock(stmt)
	case *ast.BreakStmt:
		return &signal{kind: sigBreak}, nil
	case *ast.ContinueStmt:
		return &signal{kind: sigContinue}, nil
	case *ast.ReturnStmt:
		val, err := e.evalExpression(stmt.Value)
		if err != nil {
			return nil, err
		}

		return &signal{kind: sigReturn, value: val}, nil
	case *ast.EchoStmt:
		val, err := e.evalExpression(stmt.Value)
		if err != nil {
			return nil, err
		}
		e.echo(val)

		return nil, nil
	case *ast.WhileStmt:
		return e.execWhile(stmt)
	case *ast.IfStmt:
		return e.execIf(stmt)
	case *ast.FunctionDecl:
		// Redeclaring a name rebinds it, like any other assignment.
		e.memory.Assign(stmt.Name, value.NewFunction(stmt.Params, stmt.Body))

		return nil, nil
	case *ast.ExpressionStmt:
		_, err := e.evalExpression(stmt.Expr)

		return nil, err
	default:
		return nil, fmt.Errorf("unknown statement type: %T", stmt)
	}
}

// execBlock runs a braced statement list in its own scope.
func (e *Engine) execBlock(block *ast.BlockStmt) (*signal, error) {
	e.memory.NewScope()
	defer e.memory.LeaveScope()

	return e.execStatements(block.Statements)
}

// execWhile loops while the condition evaluates to exactly true. Any
// other value, including null, ends the loop. The body runs in a fresh
// scope each iteration; break exits the loop, continue moves to the
// next iteration, and return propagates out.
func (e *Engine) execWhile(stmt *ast.WhileStmt) (*signal, error) {
	for {
		cond, err := e.evalExpression(stmt.Cond)
		if err != nil {
			return nil, err
		}
		if !isTrue(cond) {
			return nil, nil
		}

		sig, err := e.execScoped(stmt.Body)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			switch sig.kind {
			case sigBreak:
				return nil, nil
			case sigContinue:
				continue
			case sigReturn:
				return sig, nil
			}
		}
	}
}

// execIf picks the then branch when the condition is exactly true, and
// the else branch (when present) otherwise. The chosen branch runs in
// its own scope; its signal propagates.
func (e *Engine) execIf(stmt *ast.IfStmt) (*signal, error) {
	cond, err := e.evalExpression(stmt.Cond)
	if err != nil {
		return nil, err
	}

	if isTrue(cond) {
		return e.execScoped(stmt.Then)
	}
	if stmt.Else != nil {
		return e.execScoped(stmt.Else)
	}

	return nil, nil
}

// execScoped runs one statement inside a pushed scope, releasing the
// scope on every exit path.
func (e *Engine) execScoped(stmt ast.Statement) (*signal, error) {
	e.memory.NewScope()
	defer e.memory.LeaveScope()

	return e.execStatement(stmt)
}

// isTrue reports whether a value is exactly Boolean(true).
func isTrue(v value.Value) bool {
	b, ok := v.(value.Boolean)

	return ok && bool(b)
}

// echo prints a value through the string coercion, one line per call.
func (e *Engine) echo(v value.Value) {
	fmt.Fprintln(e.stdout, v.String())
}
