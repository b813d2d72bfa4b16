package value

import "github.com/mcjo163/xb/internal/xberr"

// ToBoolean implements the Boolean.cast rule: Empty and Boolean(false) cast
// to false, everything else to true. Never errors.
func ToBoolean(v Value) *Boolean {
	switch t := v.(type) {
	case *Empty:
		return NewBoolean(false)
	case *Boolean:
		return NewBoolean(t.B)
	default:
		return NewBoolean(true)
	}
}

// ToStringValue implements the String.cast rule: String casts to itself,
// everything else through its own Display(). Never errors.
func ToStringValue(v Value) *String {
	if s, ok := v.(*String); ok {
		return NewString(s.S)
	}
	return NewString(v.Display())
}

// ToNumber implements the Number.cast rule: Number casts to itself, String
// parses via ParseNumberLiteral, Empty and Boolean cannot cast to Number.
func ToNumber(v Value) (*Number, error) {
	switch t := v.(type) {
	case *Number:
		if t.IsInt {
			return NewInt(t.I), nil
		}
		return NewFloat(t.F), nil
	case *String:
		n, err := ParseNumberLiteral(t.S)
		if err != nil {
			return nil, badCast(v, "number")
		}
		return n, nil
	default:
		return nil, badCast(v, "number")
	}
}

// ToArray implements the Array.cast rule: identity for Array, error
// otherwise.
func ToArray(v Value) (*Array, error) {
	if a, ok := v.(*Array); ok {
		return a, nil
	}
	return nil, badCast(v, "array")
}

// ToObject implements the Object.cast rule: identity for Object, error
// otherwise.
func ToObject(v Value) (*Object, error) {
	if o, ok := v.(*Object); ok {
		return o, nil
	}
	return nil, badCast(v, "object")
}

func badCast(v Value, to string) error {
	return xberr.Runtimef("cannot cast type '%s' to '%s'", v.TypeName(), to)
}
