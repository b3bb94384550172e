package parser

import (
	"fmt"
)

// ParseError is a parsing failure with its source location.
type ParseError struct {
	Message string
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}

// errorf builds a ParseError located at the lexer's current position.
func (p *Parser) errorf(format string, args ...any) error {
	line, column := p.l.Pos()

	return &ParseError{
		Message: fmt.Sprintf(format, args...),
		Line:    line,
		Column:  column,
	}
}
