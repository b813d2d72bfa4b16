package ast

import (
	"github.com/mcjo163/xb/internal/environment"
	"github.com/mcjo163/xb/internal/value"
)

// ArrayLit evaluates each element expression left-to-right.
type ArrayLit struct {
	Exprs []Expr
}

func (a *ArrayLit) Evaluate(env *environment.Environment) (value.Value, error) {
	items := make([]value.Value, len(a.Exprs))
	for i, e := range a.Exprs {
		v, err := e.Evaluate(env)
		if err != nil {
			return nil, err
		}
		items[i] = v
	}
	return value.NewArray(items), nil
}

// Pair is one entry of an Object literal.
type Pair interface {
	KeyValueConst(env *environment.Environment) (key string, val value.Value, isConst bool, err error)
}

// InferPair (`{ ident }`): the key is the identifier's text, the value is
// whatever it currently resolves to in the enclosing environment, and
// constness is inherited from that binding.
type InferPair struct {
	Name string
}

func (p *InferPair) KeyValueConst(env *environment.Environment) (string, value.Value, bool, error) {
	v, err := env.Lookup(p.Name)
	if err != nil {
		return "", nil, false, err
	}
	return p.Name, v.(value.Value), env.IsConst(p.Name), nil
}

// ConstPair (`key : expr`).
type ConstPair struct {
	Key  string
	Expr Expr
}

func (p *ConstPair) KeyValueConst(env *environment.Environment) (string, value.Value, bool, error) {
	v, err := p.Expr.Evaluate(env)
	if err != nil {
		return "", nil, false, err
	}
	return p.Key, v, true, nil
}

// VarPair (`key = expr`).
type VarPair struct {
	Key  string
	Expr Expr
}

func (p *VarPair) KeyValueConst(env *environment.Environment) (string, value.Value, bool, error) {
	v, err := p.Expr.Evaluate(env)
	if err != nil {
		return "", nil, false, err
	}
	return p.Key, v, false, nil
}

// ObjectLit evaluates its pairs left-to-right; a repeated key overwrites
// the earlier entry's value/constness but keeps its original display
// position (spec.md §4.4).
type ObjectLit struct {
	Pairs []Pair
}

func (o *ObjectLit) Evaluate(env *environment.Environment) (value.Value, error) {
	obj := value.NewObject(nil, nil, nil)
	for _, p := range o.Pairs {
		key, val, isConst, err := p.KeyValueConst(env)
		if err != nil {
			return nil, err
		}
		obj.Set(key, val, isConst)
	}
	return obj, nil
}

// FunctionLit builds a closure over the environment it is evaluated in.
type FunctionLit struct {
	Params []string
	Body   Expr
}

func (f *FunctionLit) Evaluate(env *environment.Environment) (value.Value, error) {
	return value.NewFunction(f.Params, f.Body, env), nil
}
