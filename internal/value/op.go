// Op is the façade every evaluator node MUST go through instead of calling
// Value methods directly (spec.md §4.2): it centralizes the type-guarding
// so each Value method may assume its operand is the same variant.
package value

import (
	"reflect"

	"github.com/mcjo163/xb/internal/xberr"
)

// sameType implements xb's "variant" check: Value implementations are all
// distinct pointer types (*Number, *String, ...), so comparing dynamic
// types is exactly `type(a) is type(b)`.
func sameType(a, b Value) bool {
	return reflect.TypeOf(a) == reflect.TypeOf(b)
}

func typeGuard(a, b Value, verb string) error {
	if !sameType(a, b) {
		return xberr.Runtimef("cannot %s types '%s' and '%s'", verb, a.TypeName(), b.TypeName())
	}
	return nil
}

// Eq: differing variants are simply unequal, never an error.
func Eq(a, b Value) (Value, error) {
	if !sameType(a, b) {
		return NewBoolean(false), nil
	}
	return a.Eq(b)
}

// Neq is derived from Eq.
func Neq(a, b Value) (Value, error) {
	eq, err := Eq(a, b)
	if err != nil {
		return nil, err
	}
	return Not(eq)
}

func Lt(a, b Value) (Value, error) {
	if err := typeGuard(a, b, "compare"); err != nil {
		return nil, err
	}
	return a.Lt(b)
}

func Gt(a, b Value) (Value, error) {
	if err := typeGuard(a, b, "compare"); err != nil {
		return nil, err
	}
	return a.Gt(b)
}

// Lte is derived as `not gt`.
func Lte(a, b Value) (Value, error) {
	gt, err := Gt(a, b)
	if err != nil {
		return nil, err
	}
	return Not(gt)
}

// Gte is derived as `not lt`.
func Gte(a, b Value) (Value, error) {
	lt, err := Lt(a, b)
	if err != nil {
		return nil, err
	}
	return Not(lt)
}

func Add(a, b Value) (Value, error) {
	if err := typeGuard(a, b, "add"); err != nil {
		return nil, err
	}
	return a.Add(b)
}

func Sub(a, b Value) (Value, error) {
	if err := typeGuard(a, b, "subtract"); err != nil {
		return nil, err
	}
	return a.Sub(b)
}

func Mul(a, b Value) (Value, error) {
	if err := typeGuard(a, b, "multiply"); err != nil {
		return nil, err
	}
	return a.Mul(b)
}

func Div(a, b Value) (Value, error) {
	if err := typeGuard(a, b, "divide"); err != nil {
		return nil, err
	}
	return a.Div(b)
}

func IntDiv(a, b Value) (Value, error) {
	if err := typeGuard(a, b, "integer divide"); err != nil {
		return nil, err
	}
	return a.IntDiv(b)
}

func Mod(a, b Value) (Value, error) {
	if err := typeGuard(a, b, "mod"); err != nil {
		return nil, err
	}
	return a.Mod(b)
}

func Pow(a, b Value) (Value, error) {
	if err := typeGuard(a, b, "exponentiate"); err != nil {
		return nil, err
	}
	return a.Pow(b)
}

func Neg(a Value) (Value, error) {
	return a.Neg()
}

// Not coerces through the Boolean cast first, per spec.md §4.2.
func Not(a Value) (Value, error) {
	return NewBoolean(!ToBoolean(a).B), nil
}

func IndexGet(target, index Value) (Value, error) {
	return target.IndexGet(index)
}

func IndexSet(target, index, item Value) error {
	return target.IndexSet(index, item)
}

func KeyGet(target Value, key string) (Value, error) {
	return target.KeyGet(key)
}

func KeySet(target Value, key string, item Value) error {
	return target.KeySet(key, item)
}

// Call invokes a Function value with already-evaluated arguments. Any other
// variant errors the same way an unsupported operation does.
func Call(callee Value, args []Value) (Value, error) {
	fn, ok := callee.(*Function)
	if !ok {
		return nil, xberr.Runtimef("type '%s' does not support call", callee.TypeName())
	}
	return fn.Call(args)
}
