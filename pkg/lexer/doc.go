// Package lexer provides lexical analysis for the language.
//
// The lexer is the first stage of the interpreter pipeline, converting
// raw source text into a stream of tokens for the parser.
//
// Token recognition:
//   - Keywords: break, continue, return, while, if, else, function, echo,
//     plus the literal words true, false, null
//   - Identifiers: a letter or underscore followed by letters, digits or
//     underscores
//   - Literals: 32-bit integers, 64-bit floats, raw strings delimited by
//     matching double or single quotes (no escape processing)
//   - Operators: + - * / % . == != > < >= <= && || ! =
//   - Punctuation: ( ) { } ; ,
//
// A "//" opens a line comment running to the end of the line. Comments
// and whitespace are skipped during tokenization.
//
// Multi-character operators follow the maximal munch principle: ">="
// is always one token, never ">" then "=". A lone '&' or '|' is a
// lexical error, as is any character outside the sets above.
//
// The character stream tracks line and column so errors name their
// position. After the first error the lexer is sticky and keeps
// returning that error; after the end of input it keeps returning EOF.
//
// Usage:
//
//	l := lexer.New(`echo 1 + 2;`)
//	for {
//	    tok, err := l.Next()
//	    if err != nil || tok.Type == lexer.TOKEN_EOF {
//	        break
//	    }
//	    fmt.Println(tok.Type, tok.Literal)
//	}
package lexer
