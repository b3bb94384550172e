package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/it1shka/language/pkg/eval"
	"github.com/it1shka/language/pkg/lexer"
	"github.com/it1shka/language/pkg/parser"
)

// Launch runs one source text through the full pipeline. Parse errors
// (including lexical ones surfacing through the parser) and execution
// errors are reported on stdout with their phase prefix; a successful
// run reports its elapsed execution time in milliseconds.
func Launch(source string, stdout io.Writer, stdin io.Reader) {
	l := lexer.New(source)
	p := parser.New(l)
	program, err := p.Parse()
	if err != nil {
		fmt.Fprintf(stdout, "From parser: %v\n", err)

		return
	}

	start := time.Now()
	engine := eval.New(stdout, stdin)
	if err := engine.Run(program); err != nil {
		fmt.Fprintf(stdout, "From execution: %v\n", err)

		return
	}
	fmt.Fprintf(stdout, "Finished with time: %dms\n", time.Since(start).Milliseconds())
}

// repl reads one line at a time and executes each as a standalone
// program. The literal line "exit" terminates the loop.
func repl(stdout io.Writer, stdin io.Reader) {
	scanner := bufio.NewScanner(stdin)
	for {
		fmt.Fprint(stdout, "> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "exit" {
			break
		}
		Launch(line, stdout, stdin)
	}
}
