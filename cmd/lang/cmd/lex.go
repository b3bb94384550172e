package cmd

import (
	"fmt"

	"github.com/it1shka/language/pkg/lexer"
	"github.com/spf13/cobra"
)

var showPos bool

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a script and print the token stream",
	Long: `Tokenize (lex) a script and print the resulting tokens, one per
line. Useful for debugging the lexer and understanding how source text
is tokenized.

Examples:
  # Tokenize a script file
  lang lex script.lang

  # Tokenize an inline expression
  lang lex -e "echo 1 + 2;"

  # Show token positions
  lang lex --show-pos script.lang`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
}

func lexScript(_ *cobra.Command, args []string) error {
	source, err := readSource(args)
	if err != nil {
		return err
	}

	l := lexer.New(source)
	for {
		tok, err := l.Next()
		if err != nil {
			return err
		}
		if tok.Type == lexer.TOKEN_EOF {
			break
		}

		if showPos {
			line, column := l.Pos()
			fmt.Printf("%d:%d\t%v\t%q\n", line, column, tok.Type, tok.Literal)
		} else {
			fmt.Printf("%v\t%q\n", tok.Type, tok.Literal)
		}
	}

	return nil
}
