package parser

import (
	"fmt"

	"github.com/go-rexa/rexa/token"
)

// Error is a SyntaxError: the token stream does not belong to the regex
// grammar. It carries the offending token's source position and, when
// there was one, the token itself.
type Error struct {
	Pos     int
	Token   *token.Token
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Token != nil {
		return fmt.Sprintf("syntax error at position %d: %s (got %s)", e.Pos, e.Message, e.Token)
	}
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Message)
}

func errAt(tok *token.Token, pos int, format string, args ...any) *Error {
	return &Error{Pos: pos, Token: tok, Message: fmt.Sprintf(format, args...)}
}
