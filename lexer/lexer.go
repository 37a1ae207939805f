// Package lexer turns regex source text into a token stream. It is a
// single-pass, longest-match tokenizer.
package lexer

import (
	"strings"

	"github.com/go-rexa/rexa/token"
)

// literals is the set of punctuation characters that lex as LITERAL
// tokens on their own.
const literals = "|*+?()[]"

// Lexer tokenizes a regex source string. A Lexer is single-use: construct
// one per source string with New, then call Tokenize once.
type Lexer struct {
	src []rune
}

// New returns a Lexer over src.
func New(src string) *Lexer {
	return &Lexer{src: []rune(src)}
}

// Tokenize materializes the full token stream for the source, or returns
// a *Error (LexError) at the first unterminated escape or otherwise
// unlexable input. Tokenize is re-entrant across distinct Lexer values
// with disjoint inputs.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var out []token.Token
	pos := 0
	for pos < len(l.src) {
		tok, next, err := l.lexOne(pos)
		if err != nil {
			return nil, err
		}

		// An interval only forms between two atoms (CHAR/ESCAPED)
		// separated by a single literal '-'. Try it greedily: CLASS_INT
		// takes precedence over emitting tok as a bare atom followed by
		// a separate '-' token.
		if isAtom(tok.Kind) && next < len(l.src) && l.src[next] == '-' && next+1 < len(l.src) {
			sepEnd := next + 1
			if second, afterSecond, err2 := l.lexOne(sepEnd); err2 == nil && isAtom(second.Kind) {
				out = append(out, token.Token{
					Kind:     token.CLASS_INT,
					Pos:      pos,
					End:      afterSecond,
					Interval: token.ClassInterval{First: tok.Char, Last: second.Char},
				})
				pos = afterSecond
				continue
			}
		}

		out = append(out, tok)
		pos = next
	}
	return out, nil
}

func isAtom(k token.Kind) bool {
	return k == token.CHAR || k == token.ESCAPED
}

// lexOne reads a single token starting at pos, returning the token and
// the rune offset immediately after it.
func (l *Lexer) lexOne(pos int) (token.Token, int, error) {
	c := l.src[pos]

	if strings.ContainsRune(literals, c) {
		return token.Token{Kind: token.LITERAL, Pos: pos, End: pos + 1, Char: c}, pos + 1, nil
	}

	if c == '{' {
		tok, end, ok, err := l.lexRange(pos)
		if err != nil {
			return token.Token{}, 0, err
		}
		if ok {
			return tok, end, nil
		}
		// Not range-shaped at all: '{' is a bare CHAR.
		return token.Token{Kind: token.CHAR, Pos: pos, End: pos + 1, Char: c}, pos + 1, nil
	}
	if c == '}' {
		return token.Token{Kind: token.CHAR, Pos: pos, End: pos + 1, Char: c}, pos + 1, nil
	}

	if c == '\\' {
		if pos+1 >= len(l.src) {
			return token.Token{}, 0, newError(pos, "unterminated escape at end of input")
		}
		x := l.src[pos+1]
		switch x {
		case 'd':
			return token.Token{Kind: token.CLASS_DIGIT, Pos: pos, End: pos + 2}, pos + 2, nil
		case 'w':
			return token.Token{Kind: token.CLASS_WORD, Pos: pos, End: pos + 2}, pos + 2, nil
		default:
			return token.Token{Kind: token.ESCAPED, Pos: pos, End: pos + 2, Char: x}, pos + 2, nil
		}
	}

	return token.Token{Kind: token.CHAR, Pos: pos, End: pos + 1, Char: c}, pos + 1, nil
}

// lexRange attempts to read a RANGE token `{N}` or `{M,N}` (no spaces)
// starting at pos, which must point at '{'. ok is false, err nil if the
// text starting at pos is not range-shaped at all (no closing '}', or an
// empty body), so the caller falls back to treating '{' as CHAR. A
// malformed range that clearly intends to be one (non-digit bounds, an
// inverted {M,N} with M > N) instead reports a LexError.
func (l *Lexer) lexRange(pos int) (token.Token, int, bool, error) {
	end := strings.IndexRune(string(l.src[pos:]), '}')
	if end < 0 {
		return token.Token{}, 0, false, nil
	}
	end += pos // absolute index of '}'
	body := string(l.src[pos+1 : end])
	if body == "" {
		return token.Token{}, 0, false, nil
	}

	var minPart, maxPart string
	if idx := strings.IndexByte(body, ','); idx >= 0 {
		minPart, maxPart = body[:idx], body[idx+1:]
	} else {
		maxPart = body
	}
	if maxPart == "" || !isDigits(maxPart) || (minPart != "" && !isDigits(minPart)) {
		return token.Token{}, 0, false, newError(pos, "malformed range %q", string(l.src[pos:end+1]))
	}

	maxVal := atoi(maxPart)
	minVal := maxVal
	if minPart != "" {
		minVal = atoi(minPart)
	}
	if minVal > maxVal {
		return token.Token{}, 0, false, newError(pos, "inverted range {%d,%d}", minVal, maxVal)
	}

	return token.Token{
		Kind:  token.RANGE,
		Pos:   pos,
		End:   end + 1,
		Range: token.RangeCount{Min: minVal, Max: maxVal},
	}, end + 1, true, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
