package value

import "testing"

func TestArrayIndexGetSet(t *testing.T) {
	a := NewArray([]Value{NewInt(1), NewInt(2), NewInt(3)})

	v, err := a.IndexGet(NewInt(1))
	if err != nil {
		t.Fatalf("IndexGet: %v", err)
	}
	if v.(*Number).I != 2 {
		t.Errorf("a[1] = %v, want 2", v)
	}

	if err := a.IndexSet(NewInt(0), NewInt(100)); err != nil {
		t.Fatalf("IndexSet: %v", err)
	}
	if a.Items[0].(*Number).I != 100 {
		t.Errorf("after a[0] = 100, Items[0] = %v", a.Items[0])
	}
}

func TestArrayIndexOutOfRangeErrors(t *testing.T) {
	a := NewArray([]Value{NewInt(1)})
	if _, err := a.IndexGet(NewInt(5)); err == nil {
		t.Errorf("IndexGet(5) on a 1-element array returned nil error")
	}
}

func TestArrayIndexNegativeErrors(t *testing.T) {
	a := NewArray([]Value{NewInt(1)})
	if _, err := a.IndexGet(NewInt(-1)); err == nil {
		t.Errorf("IndexGet(-1) returned nil error")
	}
}

func TestArrayIndexNonIntegerErrors(t *testing.T) {
	a := NewArray([]Value{NewInt(1)})
	if _, err := a.IndexGet(NewFloat(0.5)); err == nil {
		t.Errorf("IndexGet(0.5) returned nil error")
	}
}

func TestArrayReferenceSemantics(t *testing.T) {
	shared := NewArray([]Value{NewInt(1)})
	alias := shared
	_ = alias.IndexSet(NewInt(0), NewInt(42))
	if shared.Items[0].(*Number).I != 42 {
		t.Errorf("mutation through alias not visible through original binding")
	}
}

func TestArrayEqStructural(t *testing.T) {
	a := NewArray([]Value{NewInt(1), NewInt(2)})
	b := NewArray([]Value{NewInt(1), NewInt(2)})
	eq, err := a.Eq(b)
	if err != nil {
		t.Fatalf("Eq: %v", err)
	}
	if !eq.(*Boolean).B {
		t.Errorf("structurally equal arrays compared unequal")
	}
}
