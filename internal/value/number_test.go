package value

import "testing"

func TestDemoteWholeFloatToInt(t *testing.T) {
	n := NewFloat(4.0)
	if !n.IsInt || n.I != 4 {
		t.Errorf("NewFloat(4.0) = %+v, want IsInt=true I=4", n)
	}
}

func TestDemoteNonWholeFloatStaysFloat(t *testing.T) {
	n := NewFloat(4.5)
	if n.IsInt {
		t.Errorf("NewFloat(4.5) = %+v, want IsInt=false", n)
	}
}

func TestAddIntFastPath(t *testing.T) {
	sum, err := NewInt(2).Add(NewInt(3))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	got := sum.(*Number)
	if !got.IsInt || got.I != 5 {
		t.Errorf("2 + 3 = %+v, want int 5", got)
	}
}

func TestDivAlwaysFloatDemotedWhenWhole(t *testing.T) {
	q, err := NewInt(4).Div(NewInt(2))
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	got := q.(*Number)
	if !got.IsInt || got.I != 2 {
		t.Errorf("4 / 2 = %+v, want demoted int 2", got)
	}
}

func TestDivByZeroErrors(t *testing.T) {
	if _, err := NewInt(1).Div(NewInt(0)); err == nil {
		t.Errorf("1 / 0 returned nil error")
	}
}

func TestIntDivFloorsTowardNegativeInfinity(t *testing.T) {
	q, err := NewInt(-7).IntDiv(NewInt(2))
	if err != nil {
		t.Fatalf("IntDiv: %v", err)
	}
	got := q.(*Number)
	if !got.IsInt || got.I != -4 {
		t.Errorf("-7 // 2 = %+v, want int -4", got)
	}
}

func TestModSignMatchesDivisor(t *testing.T) {
	m, err := NewInt(-7).Mod(NewInt(3))
	if err != nil {
		t.Fatalf("Mod: %v", err)
	}
	got := m.(*Number)
	if !got.IsInt || got.I != 2 {
		t.Errorf("-7 %% 3 = %+v, want int 2", got)
	}
}

func TestPowIntegerRepeatedMultiplication(t *testing.T) {
	p, err := NewInt(2).Pow(NewInt(10))
	if err != nil {
		t.Fatalf("Pow: %v", err)
	}
	got := p.(*Number)
	if !got.IsInt || got.I != 1024 {
		t.Errorf("2 ** 10 = %+v, want int 1024", got)
	}
}

func TestParseNumberLiteralHex(t *testing.T) {
	n, err := ParseNumberLiteral("0xFF")
	if err != nil {
		t.Fatalf("ParseNumberLiteral: %v", err)
	}
	if !n.IsInt || n.I != 255 {
		t.Errorf("0xFF = %+v, want int 255", n)
	}
}

func TestParseNumberLiteralFloat(t *testing.T) {
	n, err := ParseNumberLiteral("3.25")
	if err != nil {
		t.Fatalf("ParseNumberLiteral: %v", err)
	}
	if n.IsInt || n.F != 3.25 {
		t.Errorf("3.25 = %+v, want float 3.25", n)
	}
}

func TestNegate(t *testing.T) {
	n, err := NewInt(5).Neg()
	if err != nil {
		t.Fatalf("Neg: %v", err)
	}
	if got := n.(*Number); !got.IsInt || got.I != -5 {
		t.Errorf("-5 = %+v, want int -5", got)
	}
}
