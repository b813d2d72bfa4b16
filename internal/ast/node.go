// Package ast implements xb's syntax tree nodes (component C5 of spec.md)
// and the Assigner l-value protocol (component C6). Every node implements
// Expr (evaluate(env) -> Value); a subset additionally implements Target
// (evaluate_as_target(env) -> Assigner) for nodes valid on the left of `=`.
//
// This is the evaluator half of the interpreter: the concrete-syntax
// grammar and the parser that produces these trees are external
// collaborators per spec.md §1. internal/parser builds exactly the shapes
// declared here.
package ast

import (
	"github.com/mcjo163/xb/internal/environment"
	"github.com/mcjo163/xb/internal/value"
	"github.com/mcjo163/xb/internal/xberr"
)

// Expr is any syntax tree node that reduces to a Value against an
// Environment.
type Expr interface {
	Evaluate(env *environment.Environment) (value.Value, error)
}

// Assigner is a one-shot continuation that writes a new Value into the
// location an l-value expression captured. spec.md §9 notes implementations
// without cheap closures may model this as a tagged record instead; Go has
// cheap closures, so a plain func works.
type Assigner func(value.Value) error

// Target is implemented by expressions that are valid assignment targets:
// Identifier, KeyAccess, IndexAccess.
type Target interface {
	EvaluateAsTarget(env *environment.Environment) (Assigner, error)
}

// assignerOf resolves target as a Target, or reports the spec's
// "invalid assignment target" error for anything else (e.g. literals,
// arithmetic expressions).
func assignerOf(env *environment.Environment, target Expr) (Assigner, error) {
	t, ok := target.(Target)
	if !ok {
		return nil, xberr.Runtimef("invalid assignment target")
	}
	return t.EvaluateAsTarget(env)
}

// Block evaluates e1..en-1 for side effects, then returns en's value
// (Empty if the statement list is empty). A nil entry is a stray empty
// statement (e.g. from `;;`) and is simply skipped.
type Block struct {
	Exprs []Expr
}

func (b *Block) Evaluate(env *environment.Environment) (value.Value, error) {
	if len(b.Exprs) == 0 {
		return value.NewEmpty(), nil
	}
	stmts, last := b.Exprs[:len(b.Exprs)-1], b.Exprs[len(b.Exprs)-1]
	for _, stmt := range stmts {
		if stmt == nil {
			continue
		}
		if _, err := stmt.Evaluate(env); err != nil {
			return nil, err
		}
	}
	if last == nil {
		return value.NewEmpty(), nil
	}
	return last.Evaluate(env)
}

// NestedBlock evaluates a Block in a freshly created child environment, so
// declarations inside it don't leak into the enclosing scope.
type NestedBlock struct {
	Block *Block
}

func (n *NestedBlock) Evaluate(env *environment.Environment) (value.Value, error) {
	return n.Block.Evaluate(env.NewChild())
}
