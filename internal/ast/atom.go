package ast

import (
	"github.com/mcjo163/xb/internal/environment"
	"github.com/mcjo163/xb/internal/value"
)

// Identifier resolves a name through the environment chain. As a target it
// assigns through the environment, which itself enforces constness.
type Identifier struct {
	Name string
}

func (id *Identifier) Evaluate(env *environment.Environment) (value.Value, error) {
	v, err := env.Lookup(id.Name)
	if err != nil {
		return nil, err
	}
	return v.(value.Value), nil
}

func (id *Identifier) EvaluateAsTarget(env *environment.Environment) (Assigner, error) {
	return func(v value.Value) error {
		return env.Assign(id.Name, v)
	}, nil
}

// NumberLit, StringLit, BoolLit, EmptyLit are the four literal kinds.
// Number and String tokens still carry their raw lexeme (hex prefix intact,
// surrounding quotes intact); the evaluator parses/strips them here.

type NumberLit struct {
	Token string
}

func (n *NumberLit) Evaluate(*environment.Environment) (value.Value, error) {
	return value.ParseNumberLiteral(n.Token)
}

type StringLit struct {
	Token string
}

func (s *StringLit) Evaluate(*environment.Environment) (value.Value, error) {
	text, err := value.ParseStringLiteral(s.Token)
	if err != nil {
		return nil, err
	}
	return value.NewString(text), nil
}

// BoolLit's Token is the literal text `true` or `false`.
type BoolLit struct {
	Token string
}

func (b *BoolLit) Evaluate(*environment.Environment) (value.Value, error) {
	return value.NewBoolean(b.Token == "true"), nil
}

type EmptyLit struct{}

func (EmptyLit) Evaluate(*environment.Environment) (value.Value, error) {
	return value.NewEmpty(), nil
}
