package tomldoc

import (
	"io"
	"strings"

	"github.com/tomldoc/tomldoc/internal/scanner"
	"github.com/tomldoc/tomldoc/internal/token"
)

// KeyValue is one `key = value` entry. It owns its value.
type KeyValue struct {
	key   string
	value *Value
}

// Key returns the entry's key.
func (kv *KeyValue) Key() string { return kv.key }

// Value returns the entry's value.
func (kv *KeyValue) Value() *Value { return kv.value }

// parseKeyValue is entered with the scanner positioned on the key token and
// returns with the scanner past the value. The key may be bare or quoted;
// the value is an untyped literal classified by inferScalar, a nested
// array, or an inline table.
func parseKeyValue(s *scanner.Scanner) (*KeyValue, error) {
	keyTok := s.Next()
	if keyTok.Type != token.TEXT {
		return nil, syntaxError(ErrUnexpectedToken, keyTok, "expected key, got %q", keyTok.Type)
	}
	if keyTok.Literal == "" {
		return nil, syntaxError(ErrUnexpectedToken, keyTok, "empty key")
	}
	if eq := s.Next(); eq.Type != token.EQUALS {
		return nil, syntaxError(ErrUnexpectedToken, eq, "expected '=' after key %q, got %q", keyTok.Literal, eq.Type)
	}

	tok := s.Peek()
	switch tok.Type {
	case token.TEXT:
		s.Next()
		return &KeyValue{key: keyTok.Literal, value: inferScalar(tok.Literal)}, nil
	case token.LBRACK:
		a, err := parseArray(s)
		if err != nil {
			return nil, err
		}
		return &KeyValue{key: keyTok.Literal, value: ArrayValue(a)}, nil
	case token.LBRACE:
		t, err := parseInlineTable(s, keyTok.Literal)
		if err != nil {
			return nil, err
		}
		return &KeyValue{key: keyTok.Literal, value: TableValue(t)}, nil
	case token.ILLEGAL:
		return nil, illegalError(tok)
	default:
		return nil, syntaxError(ErrUnexpectedToken, tok, "expected value for key %q, got %q", keyTok.Literal, tok.Type)
	}
}

// parseInlineTable is entered on '{' and returns with the scanner past the
// matching '}'. The table takes the key it is assigned to as its name.
func parseInlineTable(s *scanner.Scanner, name string) (*Table, error) {
	open := s.Next() // '{'
	t := NewTable(name)
	for {
		tok := s.Peek()
		switch tok.Type {
		case token.RBRACE:
			s.Next()
			return t, nil
		case token.COMMA:
			s.Next()
		case token.TEXT:
			kv, err := parseKeyValue(s)
			if err != nil {
				return nil, err
			}
			t.appendKV(kv)
		case token.EOF:
			return nil, syntaxError(ErrUnexpectedToken, open, "unterminated inline table, expected '}'")
		case token.ILLEGAL:
			return nil, illegalError(tok)
		default:
			return nil, syntaxError(ErrUnexpectedToken, tok, "unexpected %q in inline table", tok.Type)
		}
	}
}

func (kv *KeyValue) writeTo(w io.Writer) error {
	key := kv.key
	if strings.ContainsRune(key, ' ') {
		key = `"` + key + `"`
	}
	if err := write(w, key+" = "); err != nil {
		return err
	}
	return kv.value.writeTo(w)
}
