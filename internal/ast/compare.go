package ast

import (
	"github.com/mcjo163/xb/internal/environment"
	"github.com/mcjo163/xb/internal/value"
)

// binary is the shared shape of every node that evaluates LHS then RHS
// (strictly left-to-right, spec.md §5) and delegates to one Op function.
type binary struct {
	Lhs, Rhs Expr
	op       func(a, b value.Value) (value.Value, error)
}

func (b *binary) Evaluate(env *environment.Environment) (value.Value, error) {
	lhs, err := b.Lhs.Evaluate(env)
	if err != nil {
		return nil, err
	}
	rhs, err := b.Rhs.Evaluate(env)
	if err != nil {
		return nil, err
	}
	return b.op(lhs, rhs)
}

func newBinary(lhs, rhs Expr, op func(a, b value.Value) (value.Value, error)) *binary {
	return &binary{Lhs: lhs, Rhs: rhs, op: op}
}

func NewEqual(lhs, rhs Expr) Expr        { return newBinary(lhs, rhs, value.Eq) }
func NewNotEqual(lhs, rhs Expr) Expr     { return newBinary(lhs, rhs, value.Neq) }
func NewLessThan(lhs, rhs Expr) Expr     { return newBinary(lhs, rhs, value.Lt) }
func NewGreaterThan(lhs, rhs Expr) Expr  { return newBinary(lhs, rhs, value.Gt) }
func NewLessEqual(lhs, rhs Expr) Expr    { return newBinary(lhs, rhs, value.Lte) }
func NewGreaterEqual(lhs, rhs Expr) Expr { return newBinary(lhs, rhs, value.Gte) }
