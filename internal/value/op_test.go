package value

import "testing"

func TestEqDifferingVariantsIsFalseNoError(t *testing.T) {
	v, err := Eq(NewInt(1), NewString("1"))
	if err != nil {
		t.Fatalf("Eq across variants errored: %v", err)
	}
	if v.(*Boolean).B {
		t.Errorf("1 == \"1\" = true, want false")
	}
}

func TestLtDifferingVariantsErrors(t *testing.T) {
	if _, err := Lt(NewInt(1), NewString("1")); err == nil {
		t.Errorf("Lt across variants returned nil error")
	}
}

func TestAddDifferingVariantsErrors(t *testing.T) {
	if _, err := Add(NewInt(1), NewString("1")); err == nil {
		t.Errorf("Add across variants returned nil error")
	}
}

func TestLteGteDerivation(t *testing.T) {
	lte, err := Lte(NewInt(1), NewInt(1))
	if err != nil {
		t.Fatalf("Lte: %v", err)
	}
	if !lte.(*Boolean).B {
		t.Errorf("1 <= 1 = false, want true")
	}

	gte, err := Gte(NewInt(1), NewInt(2))
	if err != nil {
		t.Fatalf("Gte: %v", err)
	}
	if gte.(*Boolean).B {
		t.Errorf("1 >= 2 = true, want false")
	}
}

func TestNeqDerivedFromEq(t *testing.T) {
	neq, err := Neq(NewInt(1), NewInt(2))
	if err != nil {
		t.Fatalf("Neq: %v", err)
	}
	if !neq.(*Boolean).B {
		t.Errorf("1 != 2 = false, want true")
	}
}

func TestCallOnNonFunctionErrors(t *testing.T) {
	if _, err := Call(NewInt(1), nil); err == nil {
		t.Errorf("Call on a non-Function returned nil error")
	}
}

func TestCallInvokesNative(t *testing.T) {
	fn := NewNative("double", func(args []Value) (Value, error) {
		n := args[0].(*Number)
		return NewInt(n.I * 2), nil
	})
	v, err := Call(fn, []Value{NewInt(21)})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if got := v.(*Number).I; got != 42 {
		t.Errorf("double(21) = %d, want 42", got)
	}
}
