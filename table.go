package tomldoc

import (
	"io"

	"github.com/tomldoc/tomldoc/internal/scanner"
	"github.com/tomldoc/tomldoc/internal/token"
)

// Table is a named, ordered sequence of key-value entries. The name is
// fixed at creation.
type Table struct {
	kvSeq
	name string
}

// NewTable returns an empty table with the given name.
func NewTable(name string) *Table {
	return &Table{name: name}
}

// Name returns the table's name.
func (t *Table) Name() string { return t.name }

// parseTable is entered on the '[' of a `[name]` header and consumes
// entries until the next table header or end of input. Comment lines inside
// the table body are skipped.
func parseTable(s *scanner.Scanner) (*Table, error) {
	s.Next() // '['
	nameTok := s.Next()
	if nameTok.Type != token.TEXT || nameTok.Literal == "" {
		return nil, syntaxError(ErrUnexpectedToken, nameTok, "expected table name, got %q", nameTok.Type)
	}
	if closing := s.Next(); closing.Type != token.RBRACK {
		return nil, syntaxError(ErrUnexpectedToken, closing, "expected ']' after table name %q, got %q", nameTok.Literal, closing.Type)
	}

	t := NewTable(nameTok.Literal)
	for {
		tok := s.Peek()
		switch tok.Type {
		case token.EOF, token.LBRACK:
			return t, nil
		case token.COMMENT:
			skipComment(s)
		case token.TEXT:
			kv, err := parseKeyValue(s)
			if err != nil {
				return nil, err
			}
			t.appendKV(kv)
		case token.ILLEGAL:
			return nil, illegalError(tok)
		default:
			return nil, syntaxError(ErrUnexpectedToken, tok, "unexpected %q in table %q", tok.Type, t.name)
		}
	}
}

// skipComment consumes a '#' token and the comment body token that always
// follows it.
func skipComment(s *scanner.Scanner) {
	s.Next() // '#'
	if s.Peek().Type == token.TEXT {
		s.Next()
	}
}

// writeTo emits the `[name]` header followed by one entry per line.
func (t *Table) writeTo(w io.Writer) error {
	if err := write(w, "["+t.name+"]\n"); err != nil {
		return err
	}
	for _, kv := range t.kvs {
		if err := kv.writeTo(w); err != nil {
			return err
		}
		if err := write(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// writeInline emits the `{ k = v, ... }` form used when the table is the
// value of a key.
func (t *Table) writeInline(w io.Writer) error {
	if err := write(w, "{"); err != nil {
		return err
	}
	for i, kv := range t.kvs {
		if i > 0 {
			if err := write(w, ","); err != nil {
				return err
			}
		}
		if err := write(w, " "); err != nil {
			return err
		}
		if err := kv.writeTo(w); err != nil {
			return err
		}
	}
	if len(t.kvs) > 0 {
		if err := write(w, " "); err != nil {
			return err
		}
	}
	return write(w, "}")
}
