package value

// Boolean wraps a bool.
type Boolean struct {
	Base
	B bool
}

func NewBoolean(b bool) *Boolean {
	return &Boolean{Base: Base{typeName: "boolean"}, B: b}
}

func (b *Boolean) Display() string {
	if b.B {
		return "true"
	}
	return "false"
}

func (b *Boolean) Eq(other Value) (Value, error) {
	o := other.(*Boolean)
	return NewBoolean(b.B == o.B), nil
}
