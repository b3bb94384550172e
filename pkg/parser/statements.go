package parser

import (
	"github.com/it1shka/language/internal/ast"
	"github.com/it1shka/language/pkg/lexer"
)

// parseStatement dispatches on the current token. Every statement
// parser leaves cur on the last token of its construct; the caller
// advances past it.
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur.Type {
	case lexer.TOKEN_LBRACE:
		return p.parseBlock()
	case lexer.TOKEN_BREAK:
		return p.parseBreak()
	case lexer.TOKEN_CONTINUE:
		return p.parseContinue()
	case lexer.TOKEN_RETURN:
		return p.parseReturn()
	case lexer.TOKEN_ECHO:
		return p.parseEcho()
	case lexer.TOKEN_WHILE:
		return p.parseWhile()
	case lexer.TOKEN_IF:
		return p.parseIf()
	case lexer.TOKEN_FUNCTION:
		return p.parseFunction()
	default:
		return p.parseExpressionStatement()
	}
}

// parseBlock parses a braced statement list.
func (p *Parser) parseBlock() (ast.Statement, error) {
	block := &ast.BlockStmt{}

	for !p.peekIs(lexer.TOKEN_RBRACE) && !p.peekIs(lexer.TOKEN_EOF) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}

	if err := p.expectPeek(lexer.TOKEN_RBRACE); err != nil {
		return nil, err
	}

	return block, nil
}

func (p *Parser) parseBreak() (ast.Statement, error) {
	if err := p.expectPeek(lexer.TOKEN_SEMICOLON); err != nil {
		return nil, err
	}

	return &ast.BreakStmt{}, nil
}

func (p *Parser) parseContinue() (ast.Statement, error) {
	if err := p.expectPeek(lexer.TOKEN_SEMICOLON); err != nil {
		return nil, err
	}

	return &ast.ContinueStmt{}, nil
}

func (p *Parser) parseReturn() (ast.Statement, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(precedenceLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(lexer.TOKEN_SEMICOLON); err != nil {
		return nil, err
	}

	return &ast.ReturnStmt{Value: value}, nil
}

func (p *Parser) parseEcho() (ast.Statement, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(precedenceLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(lexer.TOKEN_SEMICOLON); err != nil {
		return nil, err
	}

	return &ast.EchoStmt{Value: value}, nil
}

// parseWhile parses "while (cond) statement".
func (p *Parser) parseWhile() (ast.Statement, error) {
	if err := p.expectPeek(lexer.TOKEN_LPAREN); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(precedenceLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(lexer.TOKEN_RPAREN); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	return &ast.WhileStmt{Cond: cond, Body: body}, nil
}

// parseIf parses "if (cond) statement" with an optional else branch.
// An else binds to the nearest preceding if.
func (p *Parser) parseIf() (ast.Statement, error) {
	if err := p.expectPeek(lexer.TOKEN_LPAREN); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(precedenceLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(lexer.TOKEN_RPAREN); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	stmt := &ast.IfStmt{Cond: cond, Then: then}
	if p.peekIs(lexer.TOKEN_ELSE) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		els, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmt.Else = els
	}

	return stmt, nil
}

// parseFunction parses "function name(params) statement".
func (p *Parser) parseFunction() (ast.Statement, error) {
	if !p.peekIs(lexer.TOKEN_IDENT) {
		return nil, p.errorf("expected function name, got %v", p.peek.Type)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	name := p.cur.Literal

	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}

	if err := p.advance(); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDecl{Name: name, Params: params, Body: body}, nil
}

// parseParams parses "(ident, ident, ...)" after a function name.
// The list may be empty; a comma must be followed by another name.
func (p *Parser) parseParams() ([]string, error) {
	if err := p.expectPeek(lexer.TOKEN_LPAREN); err != nil {
		return nil, err
	}

	var params []string
	if p.peekIs(lexer.TOKEN_RPAREN) {
		return params, p.advance()
	}

	if err := p.expectPeek(lexer.TOKEN_IDENT); err != nil {
		return nil, err
	}
	params = append(params, p.cur.Literal)

	for p.peekIs(lexer.TOKEN_COMMA) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectPeek(lexer.TOKEN_IDENT); err != nil {
			return nil, err
		}
		params = append(params, p.cur.Literal)
	}

	if err := p.expectPeek(lexer.TOKEN_RPAREN); err != nil {
		return nil, err
	}

	return params, nil
}

func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	expr, err := p.parseExpression(precedenceLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(lexer.TOKEN_SEMICOLON); err != nil {
		return nil, err
	}

	return &ast.ExpressionStmt{Expr: expr}, nil
}
