package ast

import (
	"github.com/mcjo163/xb/internal/environment"
	"github.com/mcjo163/xb/internal/value"
)

// ConstDecl evaluates its RHS and declares it const in the current
// environment; the declaration's result is the bound value.
type ConstDecl struct {
	Name string
	Expr Expr
}

func (c *ConstDecl) Evaluate(env *environment.Environment) (value.Value, error) {
	val, err := c.Expr.Evaluate(env)
	if err != nil {
		return nil, err
	}
	if err := env.DeclareConst(c.Name, val); err != nil {
		return nil, err
	}
	return val, nil
}

// VarDecl is ConstDecl's mutable counterpart.
type VarDecl struct {
	Name string
	Expr Expr
}

func (v *VarDecl) Evaluate(env *environment.Environment) (value.Value, error) {
	val, err := v.Expr.Evaluate(env)
	if err != nil {
		return nil, err
	}
	if err := env.DeclareVar(v.Name, val); err != nil {
		return nil, err
	}
	return val, nil
}

// Assign captures the target as an Assigner before evaluating the RHS, so
// the write location (and, for IndexAccess, its index) is fixed before the
// RHS runs. If the RHS errors the target is left untouched: the write only
// happens after the RHS succeeds.
type Assign struct {
	Target Expr
	Expr   Expr
}

func (a *Assign) Evaluate(env *environment.Environment) (value.Value, error) {
	assign, err := assignerOf(env, a.Target)
	if err != nil {
		return nil, err
	}
	val, err := a.Expr.Evaluate(env)
	if err != nil {
		return nil, err
	}
	if err := assign(val); err != nil {
		return nil, err
	}
	return val, nil
}
