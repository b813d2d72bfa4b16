package value

import (
	"math"
	"strconv"
	"strings"

	"github.com/mcjo163/xb/internal/xberr"
)

// Number stores either an int64 or a float64, never both, with IsInt
// recording which. spec.md §3 requires that any mathematically whole
// result be stored as an integer (so index operations accept it); every
// constructor and arithmetic method below funnels through demote to
// enforce that invariant.
type Number struct {
	Base
	IsInt bool
	I     int64
	F     float64
}

func newNumberBase() Base { return Base{typeName: "number"} }

// NewInt constructs an integer Number directly.
func NewInt(i int64) *Number {
	return &Number{Base: newNumberBase(), IsInt: true, I: i}
}

// NewFloat constructs a Number from a float64, demoting to int64 when the
// value is whole.
func NewFloat(f float64) *Number {
	return demote(f)
}

func demote(f float64) *Number {
	if i := int64(f); float64(i) == f && !math.IsInf(f, 0) {
		return NewInt(i)
	}
	return &Number{Base: newNumberBase(), F: f}
}

func (n *Number) asFloat() float64 {
	if n.IsInt {
		return float64(n.I)
	}
	return n.F
}

// AsFloat exposes asFloat to other packages (e.g. stdlib, converting a
// Number argument into a time.Duration).
func (n *Number) AsFloat() float64 {
	return n.asFloat()
}

func (n *Number) Display() string {
	if n.IsInt {
		return strconv.FormatInt(n.I, 10)
	}
	return strconv.FormatFloat(n.F, 'g', -1, 64)
}

func (n *Number) Eq(other Value) (Value, error) {
	o := other.(*Number)
	if n.IsInt && o.IsInt {
		return NewBoolean(n.I == o.I), nil
	}
	return NewBoolean(n.asFloat() == o.asFloat()), nil
}

func (n *Number) Lt(other Value) (Value, error) {
	o := other.(*Number)
	if n.IsInt && o.IsInt {
		return NewBoolean(n.I < o.I), nil
	}
	return NewBoolean(n.asFloat() < o.asFloat()), nil
}

func (n *Number) Gt(other Value) (Value, error) {
	o := other.(*Number)
	if n.IsInt && o.IsInt {
		return NewBoolean(n.I > o.I), nil
	}
	return NewBoolean(n.asFloat() > o.asFloat()), nil
}

func (n *Number) Add(other Value) (Value, error) {
	o := other.(*Number)
	if n.IsInt && o.IsInt {
		return NewInt(n.I + o.I), nil
	}
	return demote(n.asFloat() + o.asFloat()), nil
}

func (n *Number) Sub(other Value) (Value, error) {
	o := other.(*Number)
	if n.IsInt && o.IsInt {
		return NewInt(n.I - o.I), nil
	}
	return demote(n.asFloat() - o.asFloat()), nil
}

func (n *Number) Mul(other Value) (Value, error) {
	o := other.(*Number)
	if n.IsInt && o.IsInt {
		return NewInt(n.I * o.I), nil
	}
	return demote(n.asFloat() * o.asFloat()), nil
}

func (n *Number) isZero() bool {
	if n.IsInt {
		return n.I == 0
	}
	return n.F == 0
}

func (n *Number) Div(other Value) (Value, error) {
	o := other.(*Number)
	if o.isZero() {
		return nil, xberr.Runtimef("division by 0")
	}
	return demote(n.asFloat() / o.asFloat()), nil
}

func (n *Number) IntDiv(other Value) (Value, error) {
	o := other.(*Number)
	if o.isZero() {
		return nil, xberr.Runtimef("division by 0")
	}
	if n.IsInt && o.IsInt {
		return NewInt(floorDivInt(n.I, o.I)), nil
	}
	return demote(math.Floor(n.asFloat() / o.asFloat())), nil
}

func floorDivInt(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func (n *Number) Mod(other Value) (Value, error) {
	o := other.(*Number)
	if o.isZero() {
		return nil, xberr.Runtimef("division by 0")
	}
	if n.IsInt && o.IsInt {
		m := n.I % o.I
		if m != 0 && (m < 0) != (o.I < 0) {
			m += o.I
		}
		return NewInt(m), nil
	}
	m := math.Mod(n.asFloat(), o.asFloat())
	if m != 0 && (m < 0) != (o.asFloat() < 0) {
		m += o.asFloat()
	}
	return demote(m), nil
}

func (n *Number) Pow(other Value) (Value, error) {
	o := other.(*Number)
	if n.IsInt && o.IsInt && o.I >= 0 {
		result := int64(1)
		base := n.I
		for exp := o.I; exp > 0; exp-- {
			result *= base
		}
		return NewInt(result), nil
	}
	return demote(math.Pow(n.asFloat(), o.asFloat())), nil
}

func (n *Number) Neg() (Value, error) {
	if n.IsInt {
		return NewInt(-n.I), nil
	}
	return NewFloat(-n.F), nil
}

// ParseNumberLiteral implements spec.md §4.1's number-parsing rules, shared
// between literal evaluation and the String->Number cast: a `0x`/`0X`
// prefix parses as hex; a `.` or `e`/`E` anywhere parses as float (then
// demoted if whole); otherwise it's a decimal integer.
func ParseNumberLiteral(text string) (*Number, error) {
	raw := strings.ToLower(strings.TrimSpace(text))

	if len(raw) > 2 && raw[:2] == "0x" {
		i, err := strconv.ParseInt(raw[2:], 16, 64)
		if err != nil {
			return nil, xberr.Runtimef("invalid hex literal %q", text)
		}
		return NewInt(i), nil
	}

	if strings.ContainsAny(raw, ".e") {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, xberr.Runtimef("invalid number literal %q", text)
		}
		return demote(f), nil
	}

	i, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, xberr.Runtimef("invalid number literal %q", text)
	}
	return NewInt(i), nil
}
