// Package environment implements xb's lexically nested scopes: component
// C4 of spec.md. An Environment is a linked stack of frames, each mapping a
// name to a (value, is_const) binding. Lookup and assignment walk the
// parent chain; declaration only ever touches the current frame, so a
// declaration can shadow a parent binding but never collide with one in the
// same frame.
//
// Kept independent of the value package (which holds the interpreter's
// runtime Value type) so the dependency only runs one way: value imports
// environment, not the reverse. Bound values are carried as `any`; callers
// in the value/ast packages assert back to their own Value interface.
package environment

import "github.com/mcjo163/xb/internal/xberr"

type entry struct {
	value   any
	isConst bool
}

// Environment DOES NOT have usable default values; always construct with
// New or NewChild.
type Environment struct {
	parent   *Environment
	bindings map[string]entry
}

// New returns a fresh top-level Environment with no parent.
func New() *Environment {
	return &Environment{bindings: make(map[string]entry)}
}

// NewChild returns a fresh Environment parented at e, used for nested
// blocks and function invocations.
func (e *Environment) NewChild() *Environment {
	return &Environment{parent: e, bindings: make(map[string]entry)}
}

// Lookup resolves name through the scope chain.
func (e *Environment) Lookup(name string) (any, error) {
	if ent, ok := e.bindings[name]; ok {
		return ent.value, nil
	}
	if e.parent != nil {
		return e.parent.Lookup(name)
	}
	return nil, xberr.Runtimef("name '%s' not recognized in this scope", name)
}

// Assign walks to the frame that declared name and overwrites its value.
// It errors if name is const, or if name is unbound anywhere in the chain.
func (e *Environment) Assign(name string, val any) error {
	if ent, ok := e.bindings[name]; ok {
		if ent.isConst {
			return xberr.Runtimef("name '%s' is constant", name)
		}
		ent.value = val
		e.bindings[name] = ent
		return nil
	}
	if e.parent != nil {
		return e.parent.Assign(name, val)
	}
	return xberr.Runtimef("name '%s' not recognized in this scope", name)
}

// DeclareConst binds name to val as a const in the current frame. It errors
// if name already exists in this frame; shadowing a parent frame is fine.
func (e *Environment) DeclareConst(name string, val any) error {
	return e.declare(name, val, true)
}

// DeclareVar binds name to val as a var in the current frame, with the same
// no-redeclaration rule as DeclareConst.
func (e *Environment) DeclareVar(name string, val any) error {
	return e.declare(name, val, false)
}

func (e *Environment) declare(name string, val any, isConst bool) error {
	if _, ok := e.bindings[name]; ok {
		return xberr.Runtimef("name '%s' is already bound", name)
	}
	e.bindings[name] = entry{value: val, isConst: isConst}
	return nil
}

// IsConst reports whether name is bound as const in the CURRENT frame only
// (used by Object construction's InferPair, which inherits constness from
// the enclosing binding).
func (e *Environment) IsConst(name string) bool {
	return e.bindings[name].isConst
}
