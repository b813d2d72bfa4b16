// Package token defines the lexical token kinds produced by the lexer and
// consumed by the parser.
package token

import "fmt"

// Kind is an enum-like wrapper for token categories.
type Kind int

const (
	// single/double character tokens
	LeftParen Kind = iota
	RightParen
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket
	Comma
	Dot
	Colon
	Semicolon
	Question
	QuestionQuestion

	Plus
	Minus
	Star
	StarStar
	Slash
	SlashSlash
	Percent

	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual
	AmpAmp
	PipePipe

	// literals
	Identifier
	Number
	String
	True
	False

	// keywords
	Const
	Var
	If
	Else
	Fn
	Empty

	EOF
)

var names = map[Kind]string{
	LeftParen: "(", RightParen: ")", LeftBrace: "{", RightBrace: "}",
	LeftBracket: "[", RightBracket: "]", Comma: ",", Dot: ".", Colon: ":",
	Semicolon: ";", Question: "?", QuestionQuestion: "??",
	Plus: "+", Minus: "-", Star: "*", StarStar: "**", Slash: "/",
	SlashSlash: "//", Percent: "%",
	Bang: "!", BangEqual: "!=", Equal: "=", EqualEqual: "==",
	Greater: ">", GreaterEqual: ">=", Less: "<", LessEqual: "<=",
	AmpAmp: "&&", PipePipe: "||",
	Identifier: "IDENT", Number: "NUMBER", String: "STRING",
	True: "true", False: "false",
	Const: "const", Var: "var", If: "if", Else: "else", Fn: "fn", Empty: "()",
	EOF: "EOF",
}

func (k Kind) String() string {
	if n, ok := names[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Keywords maps reserved identifiers to their token kind.
var Keywords = map[string]Kind{
	"const": Const,
	"var":   Var,
	"if":    If,
	"else":  Else,
	"fn":    Fn,
	"true":  True,
	"false": False,
}

// Token is a single lexeme recognized by the scanner, carrying its source
// text and position for diagnostics.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
	Col    int
}

func (t Token) String() string {
	return fmt.Sprintf("[%s %q line=%d]", t.Kind, t.Lexeme, t.Line)
}
