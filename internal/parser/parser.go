// Package parser implements xb's recursive-descent parser: the external
// collaborator (per spec.md §1) that turns a token stream from
// internal/lexer into the syntax trees internal/ast evaluates.
//
// Precedence, loosest to tightest:
//
//	Expr    := const/var decl | assignment | If | Logic
//	Logic   := Compare (('&&' | '||') Compare)*
//	Compare := Sum (('==' | '!=' | '<' | '>' | '<=' | '>=') Sum)*
//	Sum     := Product (('+' | '-') Product)*
//	Product := Pow (('*' | '/' | '//' | '%') Pow)*
//	Pow     := Coalesce ('**' Coalesce)*
//	Coalesce:= Unary ('??' Unary)*
//	Unary   := ('-' | '!') Unary | AccessOrCall
//	AccessOrCall := Atom ('.' IDENT | '[' Expr ']' | '(' args ')')*
//	Atom    := NUMBER | STRING | true | false | () | IDENT
//	         | '[' array ']' | '{' object-or-block '}' | 'fn' '(' params ')' Expr
//
// A brace block is parsed as an Object literal when a top-level comma or
// colon appears before its matching '}'; otherwise it's a NestedBlock. This
// disambiguation rule (and the parenthesized If-condition, and the 'fn'
// function-literal syntax) is this parser's own choice: the concrete
// grammar is unspecified upstream, so anything unambiguous and consistent
// with the evaluator's node shapes is fair game.
package parser

import (
	"github.com/mcjo163/xb/internal/ast"
	"github.com/mcjo163/xb/internal/token"
	"github.com/mcjo163/xb/internal/xberr"
)

// Parser consumes a fixed token slice (produced by lexer.Scanner) and
// builds an ast.Block for the whole program.
type Parser struct {
	toks []token.Token
	pos  int
}

func New(toks []token.Token) *Parser {
	return &Parser{toks: toks}
}

// ParseProgram parses the entire token stream as a top-level Block.
func ParseProgram(toks []token.Token) (*ast.Block, error) {
	p := New(toks)
	block, err := p.parseBlockBody(token.EOF)
	if err != nil {
		return nil, err
	}
	if !p.atEOF() {
		return nil, xberr.Syntaxf("unexpected %s at line %d", p.peek().Kind, p.peek().Line)
	}
	return block, nil
}

func (p *Parser) peek() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) atEOF() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) check(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) advance() token.Token {
	t := p.toks[p.pos]
	if t.Kind != token.EOF {
		p.pos++
	}
	return t
}

func (p *Parser) expect(k token.Kind) (token.Token, error) {
	if !p.check(k) {
		t := p.peek()
		return token.Token{}, xberr.Syntaxf("expected %s but found %s at line %d", k, t.Kind, t.Line)
	}
	return p.advance(), nil
}

// parseBlockBody parses a `;`-separated expression list until `end` (or
// EOF). Stray/trailing separators produce a nil Expr entry, which
// ast.Block treats as Empty — matching spec.md §4.4's "empty tail -> Empty"
// and "stray nulls are skipped" rules.
func (p *Parser) parseBlockBody(end token.Kind) (*ast.Block, error) {
	var exprs []ast.Expr
	for {
		if p.check(end) || p.atEOF() {
			exprs = append(exprs, nil)
			break
		}
		if p.check(token.Semicolon) {
			exprs = append(exprs, nil)
			p.advance()
			continue
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.check(token.Semicolon) {
			p.advance()
			exprs = append(exprs, e)
			if p.check(end) || p.atEOF() {
				exprs = append(exprs, nil)
				break
			}
			continue
		}
		exprs = append(exprs, e)
		break
	}
	return &ast.Block{Exprs: exprs}, nil
}

func (p *Parser) parseExpr() (ast.Expr, error) {
	switch {
	case p.check(token.Const):
		return p.parseDecl(true)
	case p.check(token.Var):
		return p.parseDecl(false)
	case p.check(token.If):
		return p.parseIf()
	}

	lhs, err := p.parseLogic()
	if err != nil {
		return nil, err
	}
	if p.check(token.Equal) {
		p.advance()
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Assign{Target: lhs, Expr: rhs}, nil
	}
	return lhs, nil
}

func (p *Parser) parseDecl(isConst bool) (ast.Expr, error) {
	p.advance() // 'const' or 'var'
	name, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Equal); err != nil {
		return nil, err
	}
	rhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if isConst {
		return &ast.ConstDecl{Name: name.Lexeme, Expr: rhs}, nil
	}
	return &ast.VarDecl{Name: name.Lexeme, Expr: rhs}, nil
}

func (p *Parser) parseIf() (ast.Expr, error) {
	p.advance() // 'if'
	if _, err := p.expect(token.LeftParen); err != nil {
		return nil, err
	}
	condBlock, err := p.parseBlockBody(token.RightParen)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RightParen); err != nil {
		return nil, err
	}
	trueExpr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	var falseExpr ast.Expr
	if p.check(token.Else) {
		p.advance()
		falseExpr, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	return &ast.If{Cond: &ast.NestedBlock{Block: condBlock}, True: trueExpr, False: falseExpr}, nil
}

func (p *Parser) parseLogic() (ast.Expr, error) {
	lhs, err := p.parseCompare()
	if err != nil {
		return nil, err
	}
	for p.check(token.AmpAmp) || p.check(token.PipePipe) {
		op := p.advance()
		rhs, err := p.parseCompare()
		if err != nil {
			return nil, err
		}
		if op.Kind == token.AmpAmp {
			lhs = &ast.And{Lhs: lhs, Rhs: rhs}
		} else {
			lhs = &ast.Or{Lhs: lhs, Rhs: rhs}
		}
	}
	return lhs, nil
}

func (p *Parser) parseCompare() (ast.Expr, error) {
	lhs, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	for {
		var ctor func(lhs, rhs ast.Expr) ast.Expr
		switch p.peek().Kind {
		case token.EqualEqual:
			ctor = ast.NewEqual
		case token.BangEqual:
			ctor = ast.NewNotEqual
		case token.Less:
			ctor = ast.NewLessThan
		case token.Greater:
			ctor = ast.NewGreaterThan
		case token.LessEqual:
			ctor = ast.NewLessEqual
		case token.GreaterEqual:
			ctor = ast.NewGreaterEqual
		default:
			return lhs, nil
		}
		p.advance()
		rhs, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		lhs = ctor(lhs, rhs)
	}
}

func (p *Parser) parseSum() (ast.Expr, error) {
	lhs, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for {
		var ctor func(lhs, rhs ast.Expr) ast.Expr
		switch p.peek().Kind {
		case token.Plus:
			ctor = ast.NewAdd
		case token.Minus:
			ctor = ast.NewSubtract
		default:
			return lhs, nil
		}
		p.advance()
		rhs, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		lhs = ctor(lhs, rhs)
	}
}

func (p *Parser) parseProduct() (ast.Expr, error) {
	lhs, err := p.parsePow()
	if err != nil {
		return nil, err
	}
	for {
		var ctor func(lhs, rhs ast.Expr) ast.Expr
		switch p.peek().Kind {
		case token.Star:
			ctor = ast.NewMultiply
		case token.Slash:
			ctor = ast.NewDivide
		case token.SlashSlash:
			ctor = ast.NewIntDivide
		case token.Percent:
			ctor = ast.NewMod
		default:
			return lhs, nil
		}
		p.advance()
		rhs, err := p.parsePow()
		if err != nil {
			return nil, err
		}
		lhs = ctor(lhs, rhs)
	}
}

func (p *Parser) parsePow() (ast.Expr, error) {
	lhs, err := p.parseCoalesce()
	if err != nil {
		return nil, err
	}
	for p.check(token.StarStar) {
		p.advance()
		rhs, err := p.parseCoalesce()
		if err != nil {
			return nil, err
		}
		lhs = ast.NewPow(lhs, rhs)
	}
	return lhs, nil
}

func (p *Parser) parseCoalesce() (ast.Expr, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.check(token.QuestionQuestion) {
		p.advance()
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		lhs = &ast.Coalesce{Lhs: lhs, Rhs: rhs}
	}
	return lhs, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	if p.check(token.Minus) {
		p.advance()
		v, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Negate{Val: v}, nil
	}
	if p.check(token.Bang) {
		p.advance()
		v, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Not{Val: v}, nil
	}
	return p.parseAccessOrCall()
}

func (p *Parser) parseAccessOrCall() (ast.Expr, error) {
	e, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.check(token.Dot):
			p.advance()
			key, err := p.expect(token.Identifier)
			if err != nil {
				return nil, err
			}
			e = &ast.KeyAccess{Lhs: e, Key: key.Lexeme}
		case p.check(token.LeftBracket):
			p.advance()
			idx, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RightBracket); err != nil {
				return nil, err
			}
			e = &ast.IndexAccess{Lhs: e, IndexExpr: idx}
		case p.check(token.LeftParen):
			p.advance()
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RightParen); err != nil {
				return nil, err
			}
			e = &ast.Call{Callee: e, Args: args}
		case p.check(token.Empty):
			// The lexer scans `()` as one Empty token; after a callee it is
			// a zero-argument call.
			p.advance()
			e = &ast.Call{Callee: e}
		default:
			return e, nil
		}
	}
}

func (p *Parser) parseArgs() ([]ast.Expr, error) {
	if p.check(token.RightParen) {
		return nil, nil
	}
	var args []ast.Expr
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.check(token.Comma) {
			p.advance()
			continue
		}
		return args, nil
	}
}

func (p *Parser) parseAtom() (ast.Expr, error) {
	t := p.peek()
	switch t.Kind {
	case token.Number:
		p.advance()
		return &ast.NumberLit{Token: t.Lexeme}, nil
	case token.String:
		p.advance()
		return &ast.StringLit{Token: t.Lexeme}, nil
	case token.True, token.False:
		p.advance()
		return &ast.BoolLit{Token: t.Lexeme}, nil
	case token.Empty:
		p.advance()
		return ast.EmptyLit{}, nil
	case token.Identifier:
		p.advance()
		return &ast.Identifier{Name: t.Lexeme}, nil
	case token.LeftBracket:
		return p.parseArrayLit()
	case token.LeftBrace:
		return p.parseBraceLit()
	case token.Fn:
		return p.parseFunctionLit()
	default:
		return nil, xberr.Syntaxf("unexpected %s at line %d", t.Kind, t.Line)
	}
}

func (p *Parser) parseArrayLit() (ast.Expr, error) {
	p.advance() // '['
	var items []ast.Expr
	if !p.check(token.RightBracket) {
		for {
			item, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
			if p.check(token.Comma) {
				p.advance()
				continue
			}
			break
		}
	}
	if _, err := p.expect(token.RightBracket); err != nil {
		return nil, err
	}
	return &ast.ArrayLit{Exprs: items}, nil
}

// parseBraceLit disambiguates `{ ... }` between an Object literal and a
// NestedBlock by scanning ahead for a top-level comma or colon before the
// matching '}'. Block statement separators are ';', never ',', so any
// top-level ',' or ':' can only belong to an Object.
func (p *Parser) parseBraceLit() (ast.Expr, error) {
	p.advance() // '{'
	if p.looksLikeObject() {
		return p.parseObjectBody()
	}
	block, err := p.parseBlockBody(token.RightBrace)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RightBrace); err != nil {
		return nil, err
	}
	return &ast.NestedBlock{Block: block}, nil
}

func (p *Parser) looksLikeObject() bool {
	depth := 0
	for i := p.pos; ; i++ {
		t := p.toks[i]
		switch t.Kind {
		case token.EOF:
			return false
		case token.LeftBrace, token.LeftParen, token.LeftBracket:
			depth++
		case token.RightBrace:
			if depth == 0 {
				return false
			}
			depth--
		case token.RightParen, token.RightBracket:
			depth--
		case token.Comma, token.Colon:
			if depth == 0 {
				return true
			}
		}
	}
}

func (p *Parser) parseObjectBody() (ast.Expr, error) {
	var pairs []ast.Pair
	for !p.check(token.RightBrace) {
		name, err := p.expect(token.Identifier)
		if err != nil {
			return nil, err
		}
		switch {
		case p.check(token.Colon):
			p.advance()
			expr, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, &ast.ConstPair{Key: name.Lexeme, Expr: expr})
		case p.check(token.Equal):
			p.advance()
			expr, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, &ast.VarPair{Key: name.Lexeme, Expr: expr})
		default:
			pairs = append(pairs, &ast.InferPair{Name: name.Lexeme})
		}
		if p.check(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RightBrace); err != nil {
		return nil, err
	}
	return &ast.ObjectLit{Pairs: pairs}, nil
}

func (p *Parser) parseFunctionLit() (ast.Expr, error) {
	p.advance() // 'fn'
	if p.check(token.Empty) {
		// `fn()`: the lexer scans `()` as one Empty token.
		p.advance()
		body, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.FunctionLit{Body: body}, nil
	}
	if _, err := p.expect(token.LeftParen); err != nil {
		return nil, err
	}
	var params []string
	if !p.check(token.RightParen) {
		for {
			name, err := p.expect(token.Identifier)
			if err != nil {
				return nil, err
			}
			params = append(params, name.Lexeme)
			if p.check(token.Comma) {
				p.advance()
				continue
			}
			break
		}
	}
	if _, err := p.expect(token.RightParen); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionLit{Params: params, Body: body}, nil
}
