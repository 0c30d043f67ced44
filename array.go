package tomldoc

import (
	"fmt"
	"io"
	"time"

	"github.com/tomldoc/tomldoc/internal/scanner"
	"github.com/tomldoc/tomldoc/internal/token"
)

// initialArrayCap is the capacity an empty array starts with.
const initialArrayCap = 4

// Array is an ordered, growable sequence of owned values. Elements belong to
// exactly one array; appending hands ownership over.
type Array struct {
	elems []*Value
}

// NewArray returns an empty array.
func NewArray() *Array {
	return &Array{elems: make([]*Value, 0, initialArrayCap)}
}

// NewNumberArray returns an array holding the given numbers in order.
func NewNumberArray(nums ...float64) *Array {
	a := NewArray()
	for _, n := range nums {
		a.AppendNumber(n)
	}
	return a
}

// NewArrayOf returns an array owning the given values in order.
func NewArrayOf(values ...*Value) *Array {
	a := NewArray()
	a.elems = append(a.elems, values...)
	return a
}

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.elems) }

// At returns the element at index i.
func (a *Array) At(i int) (*Value, error) {
	if i < 0 || i >= len(a.elems) {
		return nil, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(a.elems))
	}
	return a.elems[i], nil
}

// Append adds v to the end of the array, taking ownership of it.
func (a *Array) Append(v *Value) { a.elems = append(a.elems, v) }

// AppendText adds a text element.
func (a *Array) AppendText(s string) { a.Append(Text(s)) }

// AppendNumber adds a number element.
func (a *Array) AppendNumber(f float64) { a.Append(Number(f)) }

// AppendBoolean adds a boolean element.
func (a *Array) AppendBoolean(b bool) { a.Append(Boolean(b)) }

// AppendDateTime adds a date-time element.
func (a *Array) AppendDateTime(t time.Time) { a.Append(DateTime(t)) }

// AppendTimeSpan adds a duration element.
func (a *Array) AppendTimeSpan(d time.Duration) { a.Append(TimeSpan(d)) }

// AppendArray adds a nested array, taking ownership of it.
func (a *Array) AppendArray(nested *Array) { a.Append(ArrayValue(nested)) }

// AppendTable adds a table element, taking ownership of it.
func (a *Array) AppendTable(t *Table) { a.Append(TableValue(t)) }

// parseArray is entered with the scanner positioned on '[' and returns with
// the scanner past the matching ']'. Stray and trailing commas are
// tolerated; the loop simply re-peeks after consuming them.
func parseArray(s *scanner.Scanner) (*Array, error) {
	open := s.Next() // '['
	a := NewArray()
	for {
		tok := s.Peek()
		switch tok.Type {
		case token.RBRACK:
			s.Next()
			return a, nil
		case token.TEXT:
			s.Next()
			a.Append(inferScalar(tok.Literal))
		case token.LBRACK:
			nested, err := parseArray(s)
			if err != nil {
				return nil, err
			}
			a.AppendArray(nested)
		case token.COMMA:
			s.Next()
		case token.EOF:
			return nil, syntaxError(ErrUnexpectedToken, open, "unterminated array, expected ']'")
		case token.ILLEGAL:
			return nil, illegalError(tok)
		default:
			return nil, syntaxError(ErrUnexpectedToken, tok, "unexpected %q in array", tok.Type)
		}
	}
}

func (a *Array) writeTo(w io.Writer) error {
	if err := write(w, "["); err != nil {
		return err
	}
	for i, el := range a.elems {
		if i > 0 {
			if err := write(w, ", "); err != nil {
				return err
			}
		}
		if err := el.writeTo(w); err != nil {
			return err
		}
	}
	return write(w, "]")
}
