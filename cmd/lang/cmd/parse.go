package cmd

import (
	"fmt"

	"github.com/it1shka/language/pkg/lexer"
	"github.com/it1shka/language/pkg/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a script and print its syntax tree",
	Long: `Parse a script and print the structural rendering of its abstract
syntax tree. The rendering parenthesizes every binary and unary form,
making the parser's grouping and operator precedence visible.

Examples:
  # Parse a script file
  lang parse script.lang

  # Parse an inline expression
  lang parse -e "a = 1 + 2 * 3;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: parseScript,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func parseScript(_ *cobra.Command, args []string) error {
	source, err := readSource(args)
	if err != nil {
		return err
	}

	l := lexer.New(source)
	p := parser.New(l)
	program, err := p.Parse()
	if err != nil {
		return err
	}
	fmt.Println(program.String())

	return nil
}
