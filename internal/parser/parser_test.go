package parser

import (
	"strings"
	"testing"

	"github.com/mcjo163/xb/internal/environment"
	"github.com/mcjo163/xb/internal/lexer"
)

// run lexes, parses, and evaluates src against a fresh top-level
// Environment, returning the Display() of the result or the error text.
func run(t *testing.T, src string) string {
	t.Helper()
	toks := lexer.NewScanner(src).ScanTokens()
	block, err := ParseProgram(toks)
	if err != nil {
		return err.Error()
	}
	env := environment.New()
	result, err := block.Evaluate(env)
	if err != nil {
		return err.Error()
	}
	return result.Display()
}

// The concrete scenarios from the evaluator's specification, S1-S10.
func TestConcreteScenarios(t *testing.T) {
	cases := []struct {
		name, src, want string
	}{
		{"S1", `const a = 1; a + 2`, "3"},
		{"S2", `var xs = [1, 2, 3]; xs[1] = 9; xs`, "[1, 9, 3]"},
		{"S3", `const o = { x : 1, y = 2 }; o.y = 5; o`, "{x : 1, y = 5}"},
		{"S4", `const o = { x : 1 }; o.x = 2`, `error(runtime): field "x" is constant`},
		{"S5", `() ?? "fallback"`, `"fallback"`},
		{"S6", `0xFF + 1`, "256"},
		{"S7", `"a" < "ab"`, "true"},
		{"S8", `5 / 0`, "error(runtime): division by 0"},
		{"S9", `if (false) { 1 } else { 2 }`, "2"},
		{"S10", `const a = 1; a = 2`, "error(runtime): name 'a' is constant"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := run(t, c.src); got != c.want {
				t.Errorf("%s = %q, want %q", c.src, got, c.want)
			}
		})
	}
}

func TestAndShortCircuitsRhs(t *testing.T) {
	src := `var hit = false; const f = fn() { hit = true; true }; false && f(); hit`
	if got := run(t, src); got != "false" {
		t.Errorf("And short-circuit: hit = %s, want false", got)
	}
}

func TestOrShortCircuitsRhs(t *testing.T) {
	src := `var hit = false; const f = fn() { hit = true; true }; true || f(); hit`
	if got := run(t, src); got != "false" {
		t.Errorf("Or short-circuit: hit = %s, want false", got)
	}
}

func TestAssignRhsErrorLeavesTargetUntouched(t *testing.T) {
	src := `var x = 1; x = x / 0; x`
	if got := run(t, src); got != "error(runtime): division by 0" {
		t.Errorf("assign with erroring RHS: got %q", got)
	}

	env := environment.New()
	for _, line := range []string{`var x = 1`, `x = x / 0`} {
		block, err := ParseProgram(lexer.NewScanner(line).ScanTokens())
		if err != nil {
			t.Fatalf("parse %q: %v", line, err)
		}
		_, _ = block.Evaluate(env)
	}
	x, err := env.Lookup("x")
	if err != nil {
		t.Fatalf("Lookup(x): %v", err)
	}
	if got := x.(interface{ Display() string }).Display(); got != "1" {
		t.Errorf("x after failed assignment = %s, want 1", got)
	}
}

func TestFunctionCallAndClosure(t *testing.T) {
	src := `
const make_adder = fn(x) { fn(y) { x + y } };
const add5 = make_adder(5);
add5(3)`
	if got := run(t, src); got != "8" {
		t.Errorf("closure call = %q, want 8", got)
	}
}

func TestNestedBlockDoesNotLeakDeclarations(t *testing.T) {
	src := `{ const inner = 1 }; inner`
	got := run(t, src)
	if !strings.Contains(got, "not recognized") {
		t.Errorf("declaration inside a nested block leaked to the enclosing scope: %q", got)
	}
}

func TestTrailingSemicolonYieldsEmpty(t *testing.T) {
	if got := run(t, `1; 2;`); got != "()" {
		t.Errorf("`1; 2;` = %q, want `()` (trailing separator -> Empty tail)", got)
	}
}

func TestStrayEmptyStatementsAreSkipped(t *testing.T) {
	if got := run(t, `1;; 2`); got != "2" {
		t.Errorf("`1;; 2` = %q, want 2", got)
	}
}

func TestIndexAssignTargetEvaluatesIndexOnce(t *testing.T) {
	src := `
var calls = 0;
const next = fn() { calls = calls + 1; calls - 1 };
var xs = [10, 20, 30];
xs[next()] = 99;
calls`
	if got := run(t, src); got != "1" {
		t.Errorf("index expression evaluated %s times, want exactly once", got)
	}
}

// A single-field InferPair object needs a trailing comma to disambiguate
// from a NestedBlock that merely evaluates to its one bare identifier
// (parseBraceLit's lookahead rule: a top-level comma or colon before the
// matching '}' means Object, otherwise Block).
func TestObjectInferPairInheritsConstness(t *testing.T) {
	src := `const a = 1; const o = { a, }; o.a = 2`
	if got := run(t, src); got != `error(runtime): field "a" is constant` {
		t.Errorf("InferPair did not inherit constness: %q", got)
	}
}

func TestArrayAliasingMutationVisible(t *testing.T) {
	src := `const xs = [1, 2]; const alias = xs; alias[0] = 99; xs`
	if got := run(t, src); got != "[99, 2]" {
		t.Errorf("aliased array mutation not visible: %q", got)
	}
}
