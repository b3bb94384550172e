package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// evalExpr holds the -e flag shared by the root, lex and parse
// commands: inline source instead of a file.
var evalExpr string

var rootCmd = &cobra.Command{
	Use:   "lang [file]",
	Short: "A small dynamically-typed scripting language",
	Long: `lang is a tree-walking interpreter for a small dynamically-typed
scripting language with first-class functions.

The language has while loops, if/else, function declarations, an echo
statement, and a builtin library (print, input, int, float, bool,
string, typeof). Variables are dynamically scoped; operator type
mismatches evaluate to null instead of failing.

With a file argument the script is executed once. Without arguments an
interactive loop starts, executing one line at a time; type "exit" to
leave.`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runRoot,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "run inline code instead of reading from a file")
}

func runRoot(_ *cobra.Command, args []string) error {
	if evalExpr != "" {
		Launch(evalExpr, os.Stdout, os.Stdin)

		return nil
	}
	if len(args) == 1 {
		return launchFile(args[0])
	}

	repl(os.Stdout, os.Stdin)

	return nil
}

// launchFile reads a script from disk and executes it.
func launchFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	Launch(string(content), os.Stdout, os.Stdin)

	return nil
}

// readSource resolves the source text for the lex and parse commands:
// the -e flag wins, otherwise the single file argument is read.
func readSource(args []string) (string, error) {
	if evalExpr != "" {
		return evalExpr, nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}

		return string(content), nil
	}

	return "", fmt.Errorf("either provide a file path or use -e flag for inline code")
}
