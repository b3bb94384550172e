package parser

import (
	"github.com/it1shka/language/internal/ast"
	"github.com/it1shka/language/pkg/lexer"
)

// Parser is a recursive descent parser with precedence climbing for
// expressions. It holds a two-token window (cur/peek) over the lexer's
// stream; parsing stops at the first error, either its own or a lexical
// error surfacing from the token stream.
type Parser struct {
	l    *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token
}

// New creates a parser over the given lexer.
func New(l *lexer.Lexer) *Parser {
	return &Parser{l: l}
}

// Parse consumes the entire token stream and returns the program, or
// the first parse error encountered.
func (p *Parser) Parse() (*ast.Program, error) {
	// Prime the cur/peek window.
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	program := &ast.Program{}
	for !p.curIs(lexer.TOKEN_EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)

		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	return program, nil
}

// advance shifts the token window forward by one position. A lexical
// error from the stream aborts parsing.
func (p *Parser) advance() error {
	next, err := p.l.Next()
	if err != nil {
		return err
	}
	p.cur = p.peek
	p.peek = next

	return nil
}

// curIs checks the current token's type.
func (p *Parser) curIs(t lexer.TokenType) bool {
	return p.cur.Type == t
}

// peekIs checks the lookahead token's type.
func (p *Parser) peekIs(t lexer.TokenType) bool {
	return p.peek.Type == t
}

// expectPeek asserts the next token's type and consumes it, or fails
// with an expected-vs-actual parse error.
func (p *Parser) expectPeek(t lexer.TokenType) error {
	if !p.peekIs(t) {
		return p.errorf("expected next token to be %v, got %v", t, p.peek.Type)
	}

	return p.advance()
}

// peekPrecedence returns the precedence of the lookahead token;
// non-operator tokens get the lowest precedence and terminate
// expressions.
func (p *Parser) peekPrecedence() int {
	if prec, ok := precedenceMap[p.peek.Type]; ok {
		return prec
	}

	return precedenceLowest
}

// curPrecedence returns the precedence of the current token.
func (p *Parser) curPrecedence() int {
	if prec, ok := precedenceMap[p.cur.Type]; ok {
		return prec
	}

	return precedenceLowest
}
