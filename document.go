package tomldoc

import (
	"fmt"
	"io"
	"strings"

	"github.com/tomldoc/tomldoc/internal/scanner"
	"github.com/tomldoc/tomldoc/internal/token"
)

// Document is the root of a TOML tree: an ordered sequence of top-level
// key-values plus an ordered sequence of named tables. It owns every node
// below it.
type Document struct {
	kvSeq
	tables []*Table
}

// New returns an empty document for programmatic building.
func New() *Document {
	return &Document{}
}

// Parse reads a whole TOML document from data. The first lexical or
// grammatical error aborts the parse and is returned as a *ParseError.
//
// Top-level key-values appearing after a table header are accepted and kept
// in the top-level sequence; the reader is deliberately permissive here.
func Parse(data []byte) (*Document, error) {
	s := scanner.New(data)
	doc := New()
	for {
		tok := s.Peek()
		switch tok.Type {
		case token.EOF:
			return doc, nil
		case token.COMMENT:
			skipComment(s)
		case token.TEXT:
			kv, err := parseKeyValue(s)
			if err != nil {
				return nil, err
			}
			doc.appendKV(kv)
		case token.LBRACK:
			t, err := parseTable(s)
			if err != nil {
				return nil, err
			}
			doc.tables = append(doc.tables, t)
		case token.ILLEGAL:
			return nil, illegalError(tok)
		default:
			// Stray punctuation at the top level is skipped, not fatal.
			s.Next()
		}
	}
}

// TryParse is the non-erroring boundary around Parse: any failure yields
// (nil, false) and no partial document escapes.
func TryParse(data []byte) (*Document, bool) {
	doc, err := Parse(data)
	if err != nil {
		return nil, false
	}
	return doc, true
}

// AddTable appends t to the document's table sequence, taking ownership.
func (d *Document) AddTable(t *Table) {
	d.tables = append(d.tables, t)
}

// Tables returns the raw table sequence in insertion order.
func (d *Document) Tables() []*Table { return d.tables }

// ContainsTable reports whether a table with the exact name exists.
func (d *Document) ContainsTable(name string) bool {
	_, ok := d.TryGetTable(name)
	return ok
}

// TryGetTable returns the first table with the given name, if any.
func (d *Document) TryGetTable(name string) (*Table, bool) {
	for _, t := range d.tables {
		if t.name == name {
			return t, true
		}
	}
	return nil, false
}

// GetTable returns the first table with the given name, or ErrMissingTable.
func (d *Document) GetTable(name string) (*Table, error) {
	if t, ok := d.TryGetTable(name); ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrMissingTable, name)
}

// WriteTo serializes the document as TOML text: top-level entries first,
// then each table separated by a blank line.
func (d *Document) WriteTo(w io.Writer) error {
	for _, kv := range d.kvs {
		if err := kv.writeTo(w); err != nil {
			return err
		}
		if err := write(w, "\n"); err != nil {
			return err
		}
	}
	for i, t := range d.tables {
		if i > 0 || len(d.kvs) > 0 {
			if err := write(w, "\n"); err != nil {
				return err
			}
		}
		if err := t.writeTo(w); err != nil {
			return err
		}
	}
	return nil
}

// String returns the serialized form of the document.
func (d *Document) String() string {
	var sb strings.Builder
	if err := d.WriteTo(&sb); err != nil {
		return ""
	}
	return sb.String()
}
