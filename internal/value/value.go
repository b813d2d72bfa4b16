// Package value implements xb's runtime value model (component C2 of
// spec.md) and the Op façade that dispatches operations across it
// (component C3). Value is a closed set of seven variants: Empty, Boolean,
// Number, String, Array, Object, Function.
//
// Each variant embeds Base, which supplies the "type X does not support Y"
// default for every operation a variant doesn't implement; a variant
// overrides only the operations it actually supports. Go's method
// resolution picks the outer type's method over the embedded one, so this
// reproduces the teacher/original's "default raises NotImplementedError,
// subclass overrides" shape without a class hierarchy.
package value

import (
	"github.com/mcjo163/xb/internal/environment"
	"github.com/mcjo163/xb/internal/xberr"
)

// Value is satisfied by every runtime datum.
type Value interface {
	TypeName() string
	Display() string

	Eq(other Value) (Value, error)
	Lt(other Value) (Value, error)
	Gt(other Value) (Value, error)

	Add(other Value) (Value, error)
	Sub(other Value) (Value, error)
	Mul(other Value) (Value, error)
	Div(other Value) (Value, error)
	IntDiv(other Value) (Value, error)
	Mod(other Value) (Value, error)
	Pow(other Value) (Value, error)
	Neg() (Value, error)

	IndexGet(index Value) (Value, error)
	IndexSet(index Value, item Value) error
	KeyGet(key string) (Value, error)
	KeySet(key string, item Value) error
}

// Evaluator is satisfied by any syntax tree node that can be reduced to a
// Value against an Environment. Defined here (rather than imported from the
// ast package) so Function can hold a closure body without creating an
// import cycle between value and ast: ast depends on value, never the
// reverse.
type Evaluator interface {
	Evaluate(env *environment.Environment) (Value, error)
}

// Base provides the "unsupported operation" default for every Value method.
// Embed it in each variant and override only what that variant supports.
type Base struct {
	typeName string
}

func (b Base) TypeName() string { return b.typeName }

func (b Base) unsupported(op string) error {
	return xberr.Runtimef("type '%s' does not support %s", b.typeName, op)
}

func (b Base) Display() string { return b.typeName }

func (b Base) Eq(Value) (Value, error)        { return nil, b.unsupported("equality comparison") }
func (b Base) Lt(Value) (Value, error)        { return nil, b.unsupported("ordering") }
func (b Base) Gt(Value) (Value, error)        { return nil, b.unsupported("ordering") }
func (b Base) Add(Value) (Value, error)       { return nil, b.unsupported("addition") }
func (b Base) Sub(Value) (Value, error)       { return nil, b.unsupported("subtraction") }
func (b Base) Mul(Value) (Value, error)       { return nil, b.unsupported("multiplication") }
func (b Base) Div(Value) (Value, error)       { return nil, b.unsupported("division") }
func (b Base) IntDiv(Value) (Value, error)    { return nil, b.unsupported("integer division") }
func (b Base) Mod(Value) (Value, error)       { return nil, b.unsupported("modulo") }
func (b Base) Pow(Value) (Value, error)       { return nil, b.unsupported("exponentiation") }
func (b Base) Neg() (Value, error)            { return nil, b.unsupported("negation") }
func (b Base) IndexGet(Value) (Value, error)  { return nil, b.unsupported("index access") }
func (b Base) IndexSet(Value, Value) error    { return b.unsupported("index assignment") }
func (b Base) KeyGet(string) (Value, error)   { return nil, b.unsupported("key access") }
func (b Base) KeySet(string, Value) error     { return b.unsupported("key assignment") }
