package environment

import "testing"

func TestLookupWalksParentChain(t *testing.T) {
	root := New()
	if err := root.DeclareConst("x", 1); err != nil {
		t.Fatalf("DeclareConst: %v", err)
	}
	child := root.NewChild()
	v, err := child.Lookup("x")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if v != 1 {
		t.Errorf("Lookup(x) = %v, want 1", v)
	}
}

func TestLookupUnboundErrors(t *testing.T) {
	env := New()
	if _, err := env.Lookup("missing"); err == nil {
		t.Errorf("Lookup(missing) returned nil error, want an error")
	}
}

func TestShadowingDoesNotMutateParent(t *testing.T) {
	root := New()
	_ = root.DeclareVar("x", 1)
	child := root.NewChild()
	_ = child.DeclareVar("x", 2)

	if v, _ := child.Lookup("x"); v != 2 {
		t.Errorf("child x = %v, want 2", v)
	}
	if v, _ := root.Lookup("x"); v != 1 {
		t.Errorf("root x = %v, want 1 (shadow leaked into parent)", v)
	}
}

func TestAssignWalksToDeclaringFrame(t *testing.T) {
	root := New()
	_ = root.DeclareVar("x", 1)
	child := root.NewChild()

	if err := child.Assign("x", 2); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if v, _ := root.Lookup("x"); v != 2 {
		t.Errorf("root x = %v, want 2", v)
	}
}

func TestAssignConstErrors(t *testing.T) {
	env := New()
	_ = env.DeclareConst("x", 1)
	if err := env.Assign("x", 2); err == nil {
		t.Errorf("Assign(const) returned nil error, want an error")
	}
}

func TestRedeclareInSameFrameErrors(t *testing.T) {
	env := New()
	_ = env.DeclareConst("x", 1)
	if err := env.DeclareVar("x", 2); err == nil {
		t.Errorf("DeclareVar over existing binding returned nil error, want an error")
	}
}

func TestRedeclareInChildFrameShadowsWithoutError(t *testing.T) {
	root := New()
	_ = root.DeclareConst("x", 1)
	child := root.NewChild()
	if err := child.DeclareVar("x", 2); err != nil {
		t.Errorf("DeclareVar in child frame errored: %v", err)
	}
}

func TestIsConstOnlyChecksCurrentFrame(t *testing.T) {
	root := New()
	_ = root.DeclareConst("x", 1)
	child := root.NewChild()
	if child.IsConst("x") {
		t.Errorf("IsConst(x) in child frame = true, want false (binding lives in parent frame)")
	}
	if !root.IsConst("x") {
		t.Errorf("IsConst(x) in declaring frame = false, want true")
	}
}
