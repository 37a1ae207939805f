// Package parser turns a token stream into a regex AST by recursive
// descent.
package parser

import (
	"github.com/go-rexa/rexa/ast"
	"github.com/go-rexa/rexa/lexer"
	"github.com/go-rexa/rexa/token"
)

// digitClass is the character set denoted by \d.
func digitClass() ast.CharClass {
	chars := make([]rune, 0, 10)
	for c := '0'; c <= '9'; c++ {
		chars = append(chars, c)
	}
	return ast.NewCharClass(chars)
}

// wordClass is the character set denoted by \w.
func wordClass() ast.CharClass {
	var chars []rune
	for c := 'a'; c <= 'z'; c++ {
		chars = append(chars, c)
	}
	for c := 'A'; c <= 'Z'; c++ {
		chars = append(chars, c)
	}
	for c := '0'; c <= '9'; c++ {
		chars = append(chars, c)
	}
	chars = append(chars, '_')
	return ast.NewCharClass(chars)
}

// Parser consumes a token stream left-to-right, one token of lookahead,
// without backtracking.
type Parser struct {
	toks []token.Token
	pos  int
}

// New returns a Parser over an already-lexed token stream.
func New(toks []token.Token) *Parser {
	return &Parser{toks: toks}
}

// Parse lexes and parses source in one step, returning the regex AST or
// the first LexError/SyntaxError encountered.
func Parse(source string) (ast.Node, error) {
	toks, err := lexer.New(source).Tokenize()
	if err != nil {
		return nil, err
	}
	return New(toks).ParseRegex()
}

// ParseRegex parses the start symbol `regex := union | ε` and requires
// the full token stream to be consumed.
func (p *Parser) ParseRegex() (ast.Node, error) {
	if p.pos >= len(p.toks) {
		return ast.Lambda{}, nil
	}
	n, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.toks) {
		tok := p.toks[p.pos]
		return nil, errAt(&tok, tok.Pos, "unexpected token")
	}
	return n, nil
}

// parseUnion parses `union := concat ('|' concat)*`.
func (p *Parser) parseUnion() (ast.Node, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	for p.peekLiteral('|') {
		p.pos++ // consume '|'
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		left = ast.Union{A: left, B: right}
	}
	return left, nil
}

// parseConcat parses `concat := op+`, where zero ops denotes Lambda (an
// empty alternative, e.g. the right side of `a|`).
func (p *Parser) parseConcat() (ast.Node, error) {
	var ops []ast.Node
	for p.startsVal() {
		op, err := p.parseOp()
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	if len(ops) == 0 {
		return ast.Lambda{}, nil
	}
	// Right-associative fold; the denoted language does not depend on
	// associativity.
	result := ops[len(ops)-1]
	for i := len(ops) - 2; i >= 0; i-- {
		result = ast.Concat{A: ops[i], B: result}
	}
	return result, nil
}

// parseOp parses `op := val ('*' | '+' | '?' | RANGE)?`.
func (p *Parser) parseOp() (ast.Node, error) {
	val, err := p.parseVal()
	if err != nil {
		return nil, err
	}

	if p.pos >= len(p.toks) {
		return val, nil
	}
	tok := p.toks[p.pos]
	switch {
	case tok.Kind == token.LITERAL && tok.Char == '*':
		p.pos++
		return ast.Star{A: val}, nil
	case tok.Kind == token.LITERAL && tok.Char == '+':
		p.pos++
		return ast.Plus{A: val}, nil
	case tok.Kind == token.LITERAL && tok.Char == '?':
		p.pos++
		return ast.Union{A: val, B: ast.Lambda{}}, nil
	case tok.Kind == token.RANGE:
		p.pos++
		return buildRange(val, tok.Range.Min, tok.Range.Max), nil
	default:
		return val, nil
	}
}

// buildRange implements v{m,n} -> union_{k=m..n} v^k, with v^0 = Lambda,
// v^k = Concat(v, v^(k-1)), the union seeded with Empty so that m=n=0
// yields Union(Empty, Lambda) ≡ Lambda.
func buildRange(v ast.Node, min, max int) ast.Node {
	var result ast.Node = ast.Empty{}
	for k := min; k <= max; k++ {
		var power ast.Node = ast.Lambda{}
		for i := 0; i < k; i++ {
			power = ast.Concat{A: v, B: power}
		}
		result = ast.Union{A: result, B: power}
	}
	return result
}

// startsVal reports whether the token at the current position can begin
// a `val`, i.e. whether parseConcat should keep consuming ops.
func (p *Parser) startsVal() bool {
	if p.pos >= len(p.toks) {
		return false
	}
	tok := p.toks[p.pos]
	switch tok.Kind {
	case token.CHAR, token.ESCAPED, token.CLASS_DIGIT, token.CLASS_WORD, token.CLASS_INT:
		return true
	case token.LITERAL:
		return tok.Char == '(' || tok.Char == '['
	default:
		return false
	}
}

// parseVal parses `val`.
func (p *Parser) parseVal() (ast.Node, error) {
	if p.pos >= len(p.toks) {
		return nil, errAt(nil, -1, "unexpected end of expression")
	}
	tok := p.toks[p.pos]

	switch {
	case tok.Kind == token.LITERAL && tok.Char == '(':
		p.pos++
		inner, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		if !p.peekLiteral(')') {
			return nil, p.errHere("expected ')'")
		}
		p.pos++
		return inner, nil

	case tok.Kind == token.LITERAL && tok.Char == '[':
		p.pos++
		set, err := p.parseSet()
		if err != nil {
			return nil, err
		}
		if !p.peekLiteral(']') {
			return nil, p.errHere("expected ']'")
		}
		p.pos++
		return set, nil

	case tok.Kind == token.CHAR || tok.Kind == token.ESCAPED:
		p.pos++
		return ast.Char{C: tok.Char}, nil

	case tok.Kind == token.CLASS_DIGIT:
		p.pos++
		return digitClass(), nil

	case tok.Kind == token.CLASS_WORD:
		p.pos++
		return wordClass(), nil

	case tok.Kind == token.CLASS_INT:
		// Outside brackets a raw interval token is three literal
		// characters; interval semantics apply only inside [...].
		p.pos++
		return ast.Concat{
			A: ast.Concat{A: ast.Char{C: tok.Interval.First}, B: ast.Char{C: '-'}},
			B: ast.Char{C: tok.Interval.Last},
		}, nil

	default:
		return nil, errAt(&tok, tok.Pos, "unexpected token")
	}
}

// parseSet parses `set := atom*` inside brackets, building a single
// CharClass from the union of every atom (or Empty for `[]`).
func (p *Parser) parseSet() (ast.Node, error) {
	chars := make(map[rune]bool)
	hasAtom := false
	for p.pos < len(p.toks) && !p.peekLiteral(']') {
		tok := p.toks[p.pos]
		switch tok.Kind {
		case token.CHAR, token.ESCAPED:
			p.pos++
			chars[tok.Char] = true
			hasAtom = true

		case token.CLASS_INT:
			p.pos++
			if tok.Interval.First > tok.Interval.Last {
				return nil, errAt(&tok, tok.Pos, "inverted interval in character class")
			}
			for c := tok.Interval.First; c <= tok.Interval.Last; c++ {
				chars[c] = true
			}
			hasAtom = true

		default:
			return nil, errAt(&tok, tok.Pos, "unexpected token inside character class")
		}
	}
	if !hasAtom {
		return ast.Empty{}, nil
	}
	set := make([]rune, 0, len(chars))
	for c := range chars {
		set = append(set, c)
	}
	return ast.NewCharClass(set), nil
}

func (p *Parser) peekLiteral(c rune) bool {
	if p.pos >= len(p.toks) {
		return false
	}
	tok := p.toks[p.pos]
	return tok.Kind == token.LITERAL && tok.Char == c
}

func (p *Parser) errHere(msg string) *Error {
	if p.pos >= len(p.toks) {
		return errAt(nil, -1, "unexpected end of expression: %s", msg)
	}
	tok := p.toks[p.pos]
	return errAt(&tok, tok.Pos, "%s", msg)
}
