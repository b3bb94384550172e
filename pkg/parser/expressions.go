package parser

import (
	"github.com/it1shka/language/internal/ast"
	"github.com/it1shka/language/pkg/lexer"
)

// parseExpression implements the precedence climb. It parses a primary
// and then folds in binary operators while the lookahead operator binds
// tighter than the given precedence. Operators at the same level fold
// left-associatively.
func (p *Parser) parseExpression(precedence int) (ast.Expression, error) {
	var left ast.Expression
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for precedence < p.peekPrecedence() {
		if err := p.advance(); err != nil {
			return nil, err
		}
		left, err = p.parseBinary(left)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

// parseBinary parses the right operand of the operator under cur and
// combines it with the already-parsed left operand.
func (p *Parser) parseBinary(left ast.Expression) (ast.Expression, error) {
	op := binaryOps[p.cur.Type]
	precedence := p.curPrecedence()
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseExpression(precedence)
	if err != nil {
		return nil, err
	}

	return &ast.BinaryExpr{Op: op, Left: left, Right: right}, nil
}

// parsePrimary parses an expression at the tightest precedence: a base
// form followed by any chain of postfix call operators.
func (p *Parser) parsePrimary() (ast.Primary, error) {
	base, err := p.parseBase()
	if err != nil {
		return nil, err
	}

	return p.parseCallChain(base)
}

// parseBase parses literals, identifiers, grouped expressions and
// prefix-unary forms.
func (p *Parser) parseBase() (ast.Primary, error) {
	switch p.cur.Type {
	case lexer.TOKEN_IDENT:
		return &ast.IdentExpr{Name: p.cur.Literal}, nil
	case lexer.TOKEN_INT:
		return &ast.IntLit{Value: p.cur.Int}, nil
	case lexer.TOKEN_FLOAT:
		return &ast.FloatLit{Value: p.cur.Float}, nil
	case lexer.TOKEN_STRING:
		return &ast.StringLit{Value: p.cur.Literal}, nil
	case lexer.TOKEN_TRUE:
		return &ast.BoolLit{Value: true}, nil
	case lexer.TOKEN_FALSE:
		return &ast.BoolLit{Value: false}, nil
	case lexer.TOKEN_NULL:
		return &ast.NullLit{}, nil
	case lexer.TOKEN_LPAREN:
		return p.parseGrouped()
	case lexer.TOKEN_PLUS:
		return p.parseUnary(ast.OpUnaryPlus)
	case lexer.TOKEN_MINUS:
		return p.parseUnary(ast.OpUnaryMinus)
	case lexer.TOKEN_NOT:
		return p.parseUnary(ast.OpUnaryNot)
	default:
		return nil, p.errorf("unexpected token %v in expression", p.cur.Type)
	}
}

// parseGrouped parses a parenthesized expression.
func (p *Parser) parseGrouped() (ast.Primary, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression(precedenceLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(lexer.TOKEN_RPAREN); err != nil {
		return nil, err
	}

	return &ast.GroupExpr{Expr: expr}, nil
}

// parseUnary parses a prefix operator applied to a primary operand.
// The operand includes its own call chain, so -f(1) negates the call's
// result.
func (p *Parser) parseUnary(op ast.UnaryOp) (ast.Primary, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	operand, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	return &ast.UnaryExpr{Op: op, Operand: operand}, nil
}

// parseCallChain folds postfix call operators onto a parsed primary.
// Chained calls nest left-associatively: f(1)(2) calls the result of
// f(1) with 2.
func (p *Parser) parseCallChain(target ast.Primary) (ast.Primary, error) {
	for p.peekIs(lexer.TOKEN_LPAREN) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		args, err := p.parseArguments()
		if err != nil {
			return nil, err
		}
		target = &ast.CallExpr{Target: target, Args: args}
	}

	return target, nil
}

// parseArguments parses "(expr, expr, ...)" with cur on the opening
// parenthesis. The list may be empty; a comma must be followed by
// another expression.
func (p *Parser) parseArguments() ([]ast.Expression, error) {
	var args []ast.Expression
	if p.peekIs(lexer.TOKEN_RPAREN) {
		return args, p.advance()
	}

	if err := p.advance(); err != nil {
		return nil, err
	}
	first, err := p.parseExpression(precedenceLowest)
	if err != nil {
		return nil, err
	}
	args = append(args, first)

	for p.peekIs(lexer.TOKEN_COMMA) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		arg, err := p.parseExpression(precedenceLowest)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	if err := p.expectPeek(lexer.TOKEN_RPAREN); err != nil {
		return nil, err
	}

	return args, nil
}
