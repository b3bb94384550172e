// Package parser turns the lexer's token stream into an abstract
// syntax tree.
//
// Statements are parsed by straightforward recursive descent; the
// dangling else binds to the nearest preceding if. Expressions use a
// precedence climb over the binary operators, lowest binding first:
//
//	=
//	||
//	&&
//	== !=
//	< <= > >=
//	+ - .
//	* / %
//
// followed by prefix unary + - ! and the postfix call operator, which
// chains left-associatively. All binary operators fold left; assignment
// relies on the evaluator rejecting any left side that is not a bare
// identifier.
//
// The parser consumes the token stream up to EOF and stops at the
// first error, whether its own expected-vs-actual mismatches or
// lexical errors surfacing from the stream. There is no error
// recovery.
package parser
