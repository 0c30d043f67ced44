package tomldoc

import (
	"errors"
	"fmt"

	"github.com/tomldoc/tomldoc/internal/token"
)

// Error kinds reported by this package. Match them with errors.Is.
var (
	// ErrUnterminatedString is reported when a quoted string has no closing
	// quote before end of input.
	ErrUnterminatedString = errors.New("unterminated string literal")

	// ErrUnexpectedToken is reported when the grammar requires a token type
	// the input does not provide.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrMissingKey is reported by strict key lookups for absent keys.
	ErrMissingKey = errors.New("key not found")

	// ErrMissingTable is reported by strict table lookups for absent tables.
	ErrMissingTable = errors.New("table not found")

	// ErrTypeMismatch is reported when a value is accessed through the
	// wrong variant's accessor.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrIndexOutOfRange is reported by indexed array access outside
	// [0, Len).
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ParseError is a lexical or grammatical error at a known input position.
// It unwraps to one of the package error kinds.
type ParseError struct {
	Err    error
	Detail string
	Line   int
	Column int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("tomldoc: parse error at line %d, column %d: %s", e.Line, e.Column, e.Detail)
}

func (e *ParseError) Unwrap() error { return e.Err }

func syntaxError(kind error, tok token.Token, format string, args ...any) error {
	return &ParseError{
		Err:    kind,
		Detail: fmt.Sprintf(format, args...),
		Line:   tok.Line,
		Column: tok.Column,
	}
}

// illegalError converts an ILLEGAL token into a ParseError. The only
// lexical error this dialect produces is an unterminated string.
func illegalError(tok token.Token) error {
	return syntaxError(ErrUnterminatedString, tok, "%s", tok.Literal)
}
