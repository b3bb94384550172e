// Package ast defines the abstract syntax tree produced by the parser
// and consumed by the evaluator.
//
// The tree has three layers, mirroring the grammar:
//
//   - Statement: block lists, break, continue, return, echo, while,
//     if/else, function declarations and expression statements
//   - Expression: a Primary, or a BinaryExpr combining two expressions
//     with an operator
//   - Primary: literals, identifier references, parenthesized
//     expressions, prefix-unary forms and postfix call chains
//
// Nodes are plain owning structs; the tree is immutable after parsing
// and the evaluator reads it without modification. Every node renders
// itself through String with explicit parentheses so the grouping
// chosen by the parser is visible in dumps and tests.
package ast
