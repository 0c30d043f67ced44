package tomldoc

import (
	"fmt"
	"io"
	"time"

	"github.com/go-json-experiment/json/jsontext"
)

// EncodeJSON writes the document as a JSON object, preserving key and table
// order. Tables become nested objects, date-times become RFC 3339 strings
// and durations use their Go string form. Duplicate keys are emitted as-is,
// matching the permissive document model.
func (d *Document) EncodeJSON(w io.Writer) error {
	enc := jsontext.NewEncoder(w, jsontext.AllowDuplicateNames(true))
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}
	for _, kv := range d.kvs {
		if err := writeJSONEntry(enc, kv); err != nil {
			return err
		}
	}
	for _, t := range d.tables {
		if err := enc.WriteToken(jsontext.String(t.name)); err != nil {
			return err
		}
		if err := writeJSONTable(enc, t); err != nil {
			return err
		}
	}
	return enc.WriteToken(jsontext.EndObject)
}

func writeJSONTable(enc *jsontext.Encoder, t *Table) error {
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}
	for _, kv := range t.kvs {
		if err := writeJSONEntry(enc, kv); err != nil {
			return err
		}
	}
	return enc.WriteToken(jsontext.EndObject)
}

func writeJSONEntry(enc *jsontext.Encoder, kv *KeyValue) error {
	if err := enc.WriteToken(jsontext.String(kv.key)); err != nil {
		return err
	}
	return writeJSONValue(enc, kv.value)
}

func writeJSONValue(enc *jsontext.Encoder, v *Value) error {
	switch v.kind {
	case KindText:
		return enc.WriteToken(jsontext.String(v.text))
	case KindNumber:
		return enc.WriteToken(jsontext.Float(v.num))
	case KindBoolean:
		return enc.WriteToken(jsontext.Bool(v.b))
	case KindDateTime:
		return enc.WriteToken(jsontext.String(v.ts.Format(time.RFC3339)))
	case KindTimeSpan:
		return enc.WriteToken(jsontext.String(v.dur.String()))
	case KindArray:
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, el := range v.arr.elems {
			if err := writeJSONValue(enc, el); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndArray)
	case KindTable:
		return writeJSONTable(enc, v.tbl)
	default:
		return fmt.Errorf("tomldoc: unsupported value kind %q", v.kind)
	}
}
