package value

import (
	"strings"

	"github.com/mcjo163/xb/internal/xberr"
)

// Array is reference-semantic: holding it through multiple bindings shares
// the same backing Items slice, so mutation through one alias is visible
// through all of them (spec.md §5).
type Array struct {
	Base
	Items []Value
}

func NewArray(items []Value) *Array {
	return &Array{Base: Base{typeName: "array"}, Items: items}
}

func (a *Array) Display() string {
	parts := make([]string, len(a.Items))
	for i, v := range a.Items {
		parts[i] = v.Display()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (a *Array) Eq(other Value) (Value, error) {
	o := other.(*Array)
	if len(a.Items) != len(o.Items) {
		return NewBoolean(false), nil
	}
	for i := range a.Items {
		eq, err := Eq(a.Items[i], o.Items[i])
		if err != nil {
			return nil, err
		}
		if !eq.(*Boolean).B {
			return NewBoolean(false), nil
		}
	}
	return NewBoolean(true), nil
}

func (a *Array) validateIndex(index Value) (int, error) {
	n, ok := index.(*Number)
	if !ok {
		return 0, xberr.Runtimef("cannot index type '%s' with type '%s'", a.typeName, index.TypeName())
	}
	if !n.IsInt || n.I < 0 {
		return 0, xberr.Runtimef("%s index must be a positive integer", a.typeName)
	}
	if int(n.I) >= len(a.Items) {
		return 0, xberr.Runtimef("%s index out of range", a.typeName)
	}
	return int(n.I), nil
}

func (a *Array) IndexGet(index Value) (Value, error) {
	i, err := a.validateIndex(index)
	if err != nil {
		return nil, err
	}
	return a.Items[i], nil
}

func (a *Array) IndexSet(index Value, item Value) error {
	i, err := a.validateIndex(index)
	if err != nil {
		return err
	}
	a.Items[i] = item
	return nil
}
