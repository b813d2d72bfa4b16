package value

import (
	"fmt"

	"github.com/mcjo163/xb/internal/environment"
	"github.com/mcjo163/xb/internal/xberr"
)

// Function captures a parameter list, a body, and the environment it
// closed over (spec.md §4.5). A Function value with Native set instead is
// a host built-in (SPEC_FULL.md's domain stack): its arity is whatever the
// native Go func enforces, and calling it never touches Env/Params/Body.
type Function struct {
	Base
	Params []string
	Body   Evaluator
	Env    *environment.Environment

	Native func(args []Value) (Value, error)
	Label  string
}

// NewFunction builds a user-defined closure.
func NewFunction(params []string, body Evaluator, env *environment.Environment) *Function {
	return &Function{Base: Base{typeName: "function"}, Params: params, Body: body, Env: env}
}

// NewNative wraps a host-provided Go function as a callable xb Function.
func NewNative(label string, fn func(args []Value) (Value, error)) *Function {
	return &Function{Base: Base{typeName: "function"}, Native: fn, Label: label}
}

func (f *Function) Display() string {
	if f.Label != "" {
		return fmt.Sprintf("<native fn %s>", f.Label)
	}
	return "<fn>"
}

// Call invokes the function. For a user-defined Function this creates a new
// environment parented at the closure's captured environment, binds each
// parameter as a const, and evaluates the body in it (spec.md §4.5). Arity
// mismatch is a runtime error.
func (f *Function) Call(args []Value) (Value, error) {
	if f.Native != nil {
		return f.Native(args)
	}

	if len(args) != len(f.Params) {
		return nil, xberr.Runtimef(
			"function expects %d argument(s) but got %d", len(f.Params), len(args))
	}

	callEnv := f.Env.NewChild()
	for i, p := range f.Params {
		// Declaration cannot fail here: each parameter name is declared
		// exactly once into a brand new frame.
		_ = callEnv.DeclareConst(p, args[i])
	}
	return f.Body.Evaluate(callEnv)
}
