package ast

import (
	"github.com/mcjo163/xb/internal/environment"
	"github.com/mcjo163/xb/internal/value"
)

// KeyAccess implements `e.k`. As a target it captures e's current value and
// yields an Assigner that calls KeySet on it.
type KeyAccess struct {
	Lhs Expr
	Key string
}

func (k *KeyAccess) Evaluate(env *environment.Environment) (value.Value, error) {
	target, err := k.Lhs.Evaluate(env)
	if err != nil {
		return nil, err
	}
	return value.KeyGet(target, k.Key)
}

func (k *KeyAccess) EvaluateAsTarget(env *environment.Environment) (Assigner, error) {
	target, err := k.Lhs.Evaluate(env)
	if err != nil {
		return nil, err
	}
	return func(v value.Value) error {
		return value.KeySet(target, k.Key, v)
	}, nil
}

// IndexAccess implements `e[i]`. The index expression is evaluated exactly
// once, even when IndexAccess is used as an assignment target (spec.md §9
// open question 4).
type IndexAccess struct {
	Lhs       Expr
	IndexExpr Expr
}

func (a *IndexAccess) Evaluate(env *environment.Environment) (value.Value, error) {
	target, err := a.Lhs.Evaluate(env)
	if err != nil {
		return nil, err
	}
	index, err := a.IndexExpr.Evaluate(env)
	if err != nil {
		return nil, err
	}
	return value.IndexGet(target, index)
}

func (a *IndexAccess) EvaluateAsTarget(env *environment.Environment) (Assigner, error) {
	target, err := a.Lhs.Evaluate(env)
	if err != nil {
		return nil, err
	}
	index, err := a.IndexExpr.Evaluate(env)
	if err != nil {
		return nil, err
	}
	return func(v value.Value) error {
		return value.IndexSet(target, index, v)
	}, nil
}

// Call implements `f(args...)`: callee then arguments evaluate strictly
// left-to-right (spec.md §5), then Op.Call applies the Function.
type Call struct {
	Callee Expr
	Args   []Expr
}

func (c *Call) Evaluate(env *environment.Environment) (value.Value, error) {
	callee, err := c.Callee.Evaluate(env)
	if err != nil {
		return nil, err
	}
	args := make([]value.Value, len(c.Args))
	for i, a := range c.Args {
		v, err := a.Evaluate(env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return value.Call(callee, args)
}
