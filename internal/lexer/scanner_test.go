package lexer

import (
	"testing"

	"github.com/mcjo163/xb/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestEmptySourceIsJustEOF(t *testing.T) {
	toks := NewScanner("").ScanTokens()
	if len(toks) != 1 || toks[0].Kind != token.EOF {
		t.Errorf("ScanTokens(\"\") = %v, want [EOF]", toks)
	}
}

func TestArithmeticTokens(t *testing.T) {
	toks := NewScanner("2 + 4").ScanTokens()
	want := []token.Kind{token.Number, token.Plus, token.Number, token.EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("kinds[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestEmptyLiteralIsOneToken(t *testing.T) {
	toks := NewScanner("()").ScanTokens()
	if len(toks) != 2 || toks[0].Kind != token.Empty {
		t.Errorf("ScanTokens(\"()\") = %v, want [Empty, EOF]", toks)
	}
}

func TestLeftParenWithoutMatchIsNotEmpty(t *testing.T) {
	toks := NewScanner("(x)").ScanTokens()
	want := []token.Kind{token.LeftParen, token.Identifier, token.RightParen, token.EOF}
	got := kinds(toks)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("kinds[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestSlashSlashIsIntDivideNotComment(t *testing.T) {
	toks := NewScanner("a // b").ScanTokens()
	want := []token.Kind{token.Identifier, token.SlashSlash, token.Identifier, token.EOF}
	got := kinds(toks)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("kinds[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestKeywordsAreCaseSensitiveLowercaseOnly(t *testing.T) {
	toks := NewScanner("Const").ScanTokens()
	if toks[0].Kind != token.Identifier {
		t.Errorf("`Const` (capitalized) scanned as %s, want Identifier", toks[0].Kind)
	}
}

func TestStringLexemeKeepsQuotes(t *testing.T) {
	toks := NewScanner(`"hi"`).ScanTokens()
	if toks[0].Kind != token.String || toks[0].Lexeme != `"hi"` {
		t.Errorf("string token = %+v, want lexeme with quotes intact", toks[0])
	}
}

func TestHexNumberLiteral(t *testing.T) {
	toks := NewScanner("0xFF").ScanTokens()
	if toks[0].Kind != token.Number || toks[0].Lexeme != "0xFF" {
		t.Errorf("hex number token = %+v", toks[0])
	}
}

func TestQuestionQuestionToken(t *testing.T) {
	toks := NewScanner("a ?? b").ScanTokens()
	if toks[1].Kind != token.QuestionQuestion {
		t.Errorf("kinds[1] = %s, want QuestionQuestion", toks[1].Kind)
	}
}
