package value

import (
	"strings"

	"github.com/mcjo163/xb/internal/xberr"
)

type objEntry struct {
	key     string
	value   Value
	isConst bool
}

// Object is reference-semantic (same aliasing rules as Array) and preserves
// insertion order for display, with per-field constness. Re-setting an
// existing key via NewObject keeps its original position ("last wins" on
// value, first occurrence wins on position), matching a plain `dict`
// literal's update semantics.
type Object struct {
	Base
	entries []objEntry
	index   map[string]int
}

// NewObject builds an Object from ordered (key, value, isConst) triples.
func NewObject(keys []string, values []Value, consts []bool) *Object {
	o := &Object{Base: Base{typeName: "object"}, index: make(map[string]int)}
	for i, k := range keys {
		o.Set(k, values[i], consts[i])
	}
	return o
}

// Set inserts or overwrites an entry, preserving first-occurrence position.
func (o *Object) Set(key string, val Value, isConst bool) {
	if i, ok := o.index[key]; ok {
		o.entries[i] = objEntry{key: key, value: val, isConst: isConst}
		return
	}
	o.index[key] = len(o.entries)
	o.entries = append(o.entries, objEntry{key: key, value: val, isConst: isConst})
}

func (o *Object) Display() string {
	parts := make([]string, len(o.entries))
	for i, e := range o.entries {
		sep := "="
		if e.isConst {
			sep = ":"
		}
		parts[i] = e.key + " " + sep + " " + e.value.Display()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (o *Object) Eq(other Value) (Value, error) {
	oo := other.(*Object)
	if len(o.entries) != len(oo.entries) {
		return NewBoolean(false), nil
	}
	for _, e := range o.entries {
		j, ok := oo.index[e.key]
		if !ok {
			return NewBoolean(false), nil
		}
		other := oo.entries[j]
		if e.isConst != other.isConst {
			return NewBoolean(false), nil
		}
		eq, err := Eq(e.value, other.value)
		if err != nil {
			return nil, err
		}
		if !eq.(*Boolean).B {
			return NewBoolean(false), nil
		}
	}
	return NewBoolean(true), nil
}

func (o *Object) validateKey(key string) error {
	if _, ok := o.index[key]; !ok {
		return xberr.Runtimef("unrecognized key %q", key)
	}
	return nil
}

func (o *Object) KeyGet(key string) (Value, error) {
	if err := o.validateKey(key); err != nil {
		return nil, err
	}
	return o.entries[o.index[key]].value, nil
}

func (o *Object) KeySet(key string, item Value) error {
	if err := o.validateKey(key); err != nil {
		return err
	}
	i := o.index[key]
	if o.entries[i].isConst {
		return xberr.Runtimef("field %q is constant", key)
	}
	o.entries[i].value = item
	return nil
}

// IsConst reports an existing field's constness; an absent key reports
// false. (InferPair takes its constness from the Environment binding, not
// from this method.)
func (o *Object) IsConst(key string) bool {
	if i, ok := o.index[key]; ok {
		return o.entries[i].isConst
	}
	return false
}
