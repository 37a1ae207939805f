// Package token defines the lexical vocabulary the lexer emits and the
// parser consumes: token kinds and the small payload types (RangeCount,
// ClassInterval) that ride along with some of them.
package token

import "fmt"

// Kind identifies what a Token represents.
type Kind int

const (
	// CHAR is any single source character that isn't punctuation, the
	// start of an escape, or part of a recognized RANGE/CLASS_INT.
	CHAR Kind = iota
	// ESCAPED is `\x` for any x other than 'd' or 'w'; the payload is x.
	ESCAPED
	// RANGE is `{N}` or `{M,N}`; the payload is a RangeCount.
	RANGE
	// CLASS_INT is an interval `A-B` where A and B are each a CHAR or an
	// ESCAPED; the payload is a ClassInterval.
	CLASS_INT
	// CLASS_DIGIT is the `\d` shorthand.
	CLASS_DIGIT
	// CLASS_WORD is the `\w` shorthand.
	CLASS_WORD
	// LITERAL is one of the punctuation characters `| * + ? ( ) [ ]`.
	LITERAL
)

// String renders the kind's name, used in error messages.
func (k Kind) String() string {
	switch k {
	case CHAR:
		return "CHAR"
	case ESCAPED:
		return "ESCAPED"
	case RANGE:
		return "RANGE"
	case CLASS_INT:
		return "CLASS_INT"
	case CLASS_DIGIT:
		return "CLASS_DIGIT"
	case CLASS_WORD:
		return "CLASS_WORD"
	case LITERAL:
		return "LITERAL"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// RangeCount is the payload of a RANGE token: `{N}` lexes to {N, N},
// `{M,N}` to {M, N}. Invariant: Min <= Max.
type RangeCount struct {
	Min int
	Max int
}

// ClassInterval is the payload of a CLASS_INT token: the ordered pair
// (First, Last) denoting every code point c with First <= c <= Last. When
// First > Last the denoted set is empty; that is not a lexical error —
// inversion is only rejected by the parser, and only inside a bracketed
// class.
type ClassInterval struct {
	First rune
	Last  rune
}

// Token is a single lexeme: its kind, the payload appropriate to that
// kind, and its position in the source (rune offset of the first rune of
// the token), used for error reporting.
type Token struct {
	Kind Kind
	// Pos and End are rune offsets into the source: [Pos, End) is the
	// token's source span. The spans of a full token stream concatenate
	// to exactly reproduce the input.
	Pos int
	End int

	// Char holds the payload for CHAR, ESCAPED, and LITERAL tokens.
	Char rune
	// Range holds the payload for RANGE tokens.
	Range RangeCount
	// Interval holds the payload for CLASS_INT tokens.
	Interval ClassInterval
}

// String renders the token for debugging and error messages.
func (t Token) String() string {
	switch t.Kind {
	case CHAR, ESCAPED, LITERAL:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Char)
	case RANGE:
		return fmt.Sprintf("RANGE{%d,%d}", t.Range.Min, t.Range.Max)
	case CLASS_INT:
		return fmt.Sprintf("CLASS_INT(%q-%q)", t.Interval.First, t.Interval.Last)
	default:
		return t.Kind.String()
	}
}
