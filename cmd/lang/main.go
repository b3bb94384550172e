// Command lang is the interpreter's command-line interface.
//
// Run a script file:
//
//	lang script.lang
//
// Or start the interactive loop:
//
//	lang
package main

import (
	"os"

	"github.com/it1shka/language/cmd/lang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
