package value

import "testing"

func TestParseStringLiteralResolvesEscapes(t *testing.T) {
	got, err := ParseStringLiteral(`"a\nb\tc\"d\\e"`)
	if err != nil {
		t.Fatalf("ParseStringLiteral: %v", err)
	}
	want := "a\nb\tc\"d\\e"
	if got != want {
		t.Errorf("ParseStringLiteral = %q, want %q", got, want)
	}
}

func TestParseStringLiteralUnrecognizedEscapeKeptLiteral(t *testing.T) {
	got, err := ParseStringLiteral(`"a\qb"`)
	if err != nil {
		t.Fatalf("ParseStringLiteral: %v", err)
	}
	if got != `a\qb` {
		t.Errorf("ParseStringLiteral = %q, want `a\\qb`", got)
	}
}

func TestDisplayQuotesAndEscapes(t *testing.T) {
	s := NewString("a\nb")
	if got := s.Display(); got != `"a\nb"` {
		t.Errorf("Display() = %q, want `\"a\\nb\"`", got)
	}
}

func TestStringLexicographicCompare(t *testing.T) {
	lt, err := NewString("a").Lt(NewString("b"))
	if err != nil {
		t.Fatalf("Lt: %v", err)
	}
	if !lt.(*Boolean).B {
		t.Errorf(`"a" < "b" = false, want true`)
	}
}

func TestStringConcatenation(t *testing.T) {
	sum, err := NewString("foo").Add(NewString("bar"))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if sum.(*String).S != "foobar" {
		t.Errorf(`"foo" + "bar" = %q, want "foobar"`, sum.(*String).S)
	}
}
