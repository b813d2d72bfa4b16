package ast

import (
	"github.com/mcjo163/xb/internal/environment"
	"github.com/mcjo163/xb/internal/value"
)

// Negate implements unary `-`.
type Negate struct {
	Val Expr
}

func (n *Negate) Evaluate(env *environment.Environment) (value.Value, error) {
	v, err := n.Val.Evaluate(env)
	if err != nil {
		return nil, err
	}
	return value.Neg(v)
}

// Not implements unary `!`.
type Not struct {
	Val Expr
}

func (n *Not) Evaluate(env *environment.Environment) (value.Value, error) {
	v, err := n.Val.Evaluate(env)
	if err != nil {
		return nil, err
	}
	return value.Not(v)
}
