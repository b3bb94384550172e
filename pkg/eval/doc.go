// Package eval implements the tree-walking interpreter.
//
// The engine visits the AST produced by the parser, threading a scope
// stack through the walk. Statement evaluation yields a control signal
// (break, continue or return with a value) or nothing; a statement list
// halts at the first signal and the enclosing construct decides what
// to do with it. A while loop consumes break and continue and forwards
// return; a function call turns return into the call's value; a
// return reaching the top level prints its value and break or continue
// there is dropped.
//
// Scoping is dynamic. Entering a block, a while-loop body, a branch of
// an if, or a function call pushes a scope frame, released on every
// exit path. Function values carry only parameter names and a body;
// their free variables resolve against whatever scopes are live at
// call time.
//
// Expression evaluation is strict, left to right, and total over the
// value domain: operator type mismatches produce null rather than
// errors. The only execution errors expressions raise are assigning to
// anything but a bare identifier, calling a non-callable value, and
// builtin failures.
//
// Run installs the builtin library (print, input, int, float, bool,
// string, typeof) into the global frame before the first statement
// executes.
package eval
