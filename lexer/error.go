package lexer

import "fmt"

// Error is a LexError: the source could not be split into tokens. It
// carries the rune offset at which tokenization failed and a short
// message.
type Error struct {
	Pos     int
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("lex error at position %d: %s", e.Pos, e.Message)
}

func newError(pos int, format string, args ...any) *Error {
	return &Error{Pos: pos, Message: fmt.Sprintf(format, args...)}
}
