package value

// Empty is xb's unit/null value, displayed as `()`.
type Empty struct{ Base }

// NewEmpty returns the Empty value. There is only ever one logical Empty;
// a fresh struct is cheap enough that no singleton is needed.
func NewEmpty() *Empty { return &Empty{Base{typeName: "()"}} }

func (e *Empty) Display() string { return "()" }

// Eq is only ever invoked by Op.Eq when both operands are Empty (Op type-
// guards everything else to `false` without delegating), so this can
// unconditionally return true.
func (e *Empty) Eq(Value) (Value, error) { return NewBoolean(true), nil }
