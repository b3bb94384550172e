package parser

import (
	"github.com/it1shka/language/internal/ast"
	"github.com/it1shka/language/pkg/lexer"
)

// Operator precedence levels, lowest binding first.
const (
	precedenceLowest  = iota
	precedenceAssign  // =
	precedenceOr      // ||
	precedenceAnd     // &&
	precedenceEquals  // == !=
	precedenceCompare // < <= > >=
	precedenceSum     // + - .
	precedenceProduct // * / %
)

// precedenceMap maps binary-operator tokens to their precedence.
var precedenceMap = map[lexer.TokenType]int{
	lexer.TOKEN_ASSIGN:   precedenceAssign,
	lexer.TOKEN_OR:       precedenceOr,
	lexer.TOKEN_AND:      precedenceAnd,
	lexer.TOKEN_EQ:       precedenceEquals,
	lexer.TOKEN_NEQ:      precedenceEquals,
	lexer.TOKEN_LT:       precedenceCompare,
	lexer.TOKEN_LTE:      precedenceCompare,
	lexer.TOKEN_GT:       precedenceCompare,
	lexer.TOKEN_GTE:      precedenceCompare,
	lexer.TOKEN_PLUS:     precedenceSum,
	lexer.TOKEN_MINUS:    precedenceSum,
	lexer.TOKEN_STRADD:   precedenceSum,
	lexer.TOKEN_MULTIPLY: precedenceProduct,
	lexer.TOKEN_DIVIDE:   precedenceProduct,
	lexer.TOKEN_MODULO:   precedenceProduct,
}

// binaryOps maps binary-operator tokens to their AST operator.
var binaryOps = map[lexer.TokenType]ast.BinaryOp{
	lexer.TOKEN_ASSIGN:   ast.OpAssign,
	lexer.TOKEN_OR:       ast.OpOr,
	lexer.TOKEN_AND:      ast.OpAnd,
	lexer.TOKEN_EQ:       ast.OpEq,
	lexer.TOKEN_NEQ:      ast.OpNEq,
	lexer.TOKEN_LT:       ast.OpLT,
	lexer.TOKEN_LTE:      ast.OpLTE,
	lexer.TOKEN_GT:       ast.OpGT,
	lexer.TOKEN_GTE:      ast.OpGTE,
	lexer.TOKEN_PLUS:     ast.OpAdd,
	lexer.TOKEN_MINUS:    ast.OpSub,
	lexer.TOKEN_STRADD:   ast.OpStrAdd,
	lexer.TOKEN_MULTIPLY: ast.OpMul,
	lexer.TOKEN_DIVIDE:   ast.OpDiv,
	lexer.TOKEN_MODULO:   ast.OpMod,
}
