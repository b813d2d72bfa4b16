// Package repl implements xb's interactive read-eval-print loop, grounded
// on sentra's internal/repl/repl.go (lex -> parse -> evaluate each line
// against one persistent runtime) adapted from sentra's fresh-VM-per-line
// model to xb's persistent top-level Environment, since xb's const/var
// declarations are meant to accumulate across REPL lines the way they
// would across statements in one script.
package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mattn/go-isatty"

	"github.com/mcjo163/xb/internal/environment"
	"github.com/mcjo163/xb/internal/lexer"
	"github.com/mcjo163/xb/internal/parser"
	"github.com/mcjo163/xb/internal/stdlib"
	"github.com/mcjo163/xb/internal/value"
)

const prompt = ">>> "

// Start runs the loop, reading lines from in and writing output/prompts to
// out, until in is exhausted (EOF) or a line reads exactly "exit".
// Interactive banner and prompts are only printed when fd is a real
// terminal, so piping a script through stdin stays quiet.
func Start(in io.Reader, out io.Writer, fd uintptr) {
	interactive := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	env := environment.New()
	stdlib.Install(env)

	if interactive {
		fmt.Fprintln(out, "xb REPL (type 'exit' to quit)")
	}

	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(out, prompt)
		}
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if line == "exit" {
			return
		}
		if line == "" {
			continue
		}
		runLine(line, env, out)
	}
}

func runLine(line string, env *environment.Environment, out io.Writer) {
	toks := lexer.NewScanner(line).ScanTokens()
	block, err := parser.ParseProgram(toks)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	result, err := block.Evaluate(env)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	if _, isEmpty := result.(*value.Empty); !isEmpty {
		fmt.Fprintln(out, result.Display())
	}
}
