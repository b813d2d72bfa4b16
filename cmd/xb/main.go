// Package main implements xb's driver program: a small CLI that either
// runs a script file or drops into a REPL, following the teacher's
// main.go shape (run/runFile/runPrompt) adapted for xb's own pipeline
// (lexer -> parser -> ast.Block.Evaluate) and error model (xberr.Error).
package main

import (
	"fmt"
	"os"

	"github.com/mcjo163/xb/internal/environment"
	"github.com/mcjo163/xb/internal/lexer"
	"github.com/mcjo163/xb/internal/parser"
	"github.com/mcjo163/xb/internal/repl"
	"github.com/mcjo163/xb/internal/stdlib"
	"github.com/mcjo163/xb/internal/xberr"
)

const version = "v0.1.0"

func main() {
	args := os.Args[1:]
	switch len(args) {
	case 0:
		repl.Start(os.Stdin, os.Stdout, os.Stdin.Fd())
	case 1:
		runFile(args[0])
	default:
		fmt.Fprintln(os.Stderr, "usage: xb [script]")
		os.Exit(64)
	}
}

// runFile reads and evaluates an entire script as one Block, exiting with
// 65 on a syntax error and 70 on a runtime error (sysexits.h's EX_DATAERR
// and EX_SOFTWARE, matching the teacher's os.Exit(65) convention).
func runFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "xb %s: can't open %q: %v\n", version, path, err)
		os.Exit(66)
	}

	toks := lexer.NewScanner(string(src)).ScanTokens()
	block, err := parser.ParseProgram(toks)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(65)
	}

	env := environment.New()
	stdlib.Install(env)

	if _, err := block.Evaluate(env); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if xberr.IsRuntime(err) {
			os.Exit(70)
		}
		os.Exit(65)
	}
}
