package ast

import (
	"github.com/mcjo163/xb/internal/environment"
	"github.com/mcjo163/xb/internal/value"
)

// If evaluates its condition in a child environment (via NestedBlock, so
// declarations inside the condition don't leak), then evaluates exactly one
// of True/False in the ENCLOSING environment. A missing False branch
// evaluates to Empty.
type If struct {
	Cond  *NestedBlock
	True  Expr
	False Expr // nil if absent
}

func (i *If) Evaluate(env *environment.Environment) (value.Value, error) {
	cond, err := i.Cond.Evaluate(env)
	if err != nil {
		return nil, err
	}
	if value.ToBoolean(cond).B {
		return i.True.Evaluate(env)
	}
	if i.False != nil {
		return i.False.Evaluate(env)
	}
	return value.NewEmpty(), nil
}

// And short-circuits: the RHS is evaluated only if the LHS is truthy. The
// returned value preserves its original identity (never coerced to
// Boolean).
type And struct {
	Lhs, Rhs Expr
}

func (a *And) Evaluate(env *environment.Environment) (value.Value, error) {
	lhs, err := a.Lhs.Evaluate(env)
	if err != nil {
		return nil, err
	}
	if !value.ToBoolean(lhs).B {
		return lhs, nil
	}
	return a.Rhs.Evaluate(env)
}

// Or short-circuits: the RHS is evaluated only if the LHS is falsy.
type Or struct {
	Lhs, Rhs Expr
}

func (o *Or) Evaluate(env *environment.Environment) (value.Value, error) {
	lhs, err := o.Lhs.Evaluate(env)
	if err != nil {
		return nil, err
	}
	if value.ToBoolean(lhs).B {
		return lhs, nil
	}
	return o.Rhs.Evaluate(env)
}

// Coalesce (`??`) evaluates the RHS only when the LHS equals Empty, per
// spec.md §9 open question 3: the trigger is strictly `Op.Eq(lhs, Empty)`,
// not a direct identity/type check.
type Coalesce struct {
	Lhs, Rhs Expr
}

func (c *Coalesce) Evaluate(env *environment.Environment) (value.Value, error) {
	lhs, err := c.Lhs.Evaluate(env)
	if err != nil {
		return nil, err
	}
	eq, err := value.Eq(lhs, value.NewEmpty())
	if err != nil {
		return nil, err
	}
	if eq.(*value.Boolean).B {
		return c.Rhs.Evaluate(env)
	}
	return lhs, nil
}
