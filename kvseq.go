package tomldoc

import (
	"fmt"
	"time"
)

// kvSeq is the ordered key-value storage shared by Document and Table.
// Insertion never checks key uniqueness; lookups return the first match and
// later duplicates stay reachable through KeyValues.
type kvSeq struct {
	kvs []*KeyValue
}

// KeyValues returns the raw entry sequence in insertion order.
func (s *kvSeq) KeyValues() []*KeyValue { return s.kvs }

func (s *kvSeq) appendKV(kv *KeyValue) { s.kvs = append(s.kvs, kv) }

// Add appends an entry mapping key to v, taking ownership of v.
func (s *kvSeq) Add(key string, v *Value) {
	s.appendKV(&KeyValue{key: key, value: v})
}

// AddText appends a text entry.
func (s *kvSeq) AddText(key, text string) { s.Add(key, Text(text)) }

// AddNumber appends a number entry.
func (s *kvSeq) AddNumber(key string, f float64) { s.Add(key, Number(f)) }

// AddBoolean appends a boolean entry.
func (s *kvSeq) AddBoolean(key string, b bool) { s.Add(key, Boolean(b)) }

// AddDateTime appends a date-time entry.
func (s *kvSeq) AddDateTime(key string, t time.Time) { s.Add(key, DateTime(t)) }

// AddTimeSpan appends a duration entry.
func (s *kvSeq) AddTimeSpan(key string, d time.Duration) { s.Add(key, TimeSpan(d)) }

// AddArray appends an array entry, taking ownership of a.
func (s *kvSeq) AddArray(key string, a *Array) { s.Add(key, ArrayValue(a)) }

// AddInlineTable appends a table-valued entry, taking ownership of t.
func (s *kvSeq) AddInlineTable(key string, t *Table) { s.Add(key, TableValue(t)) }

// ContainsKey reports whether an entry with the exact key exists.
func (s *kvSeq) ContainsKey(key string) bool {
	_, ok := s.TryGetValue(key)
	return ok
}

// TryGetValue returns the first value stored under key, if any.
func (s *kvSeq) TryGetValue(key string) (*Value, bool) {
	for _, kv := range s.kvs {
		if kv.key == key {
			return kv.value, true
		}
	}
	return nil, false
}

// GetValue returns the first value stored under key, or ErrMissingKey.
func (s *kvSeq) GetValue(key string) (*Value, error) {
	if v, ok := s.TryGetValue(key); ok {
		return v, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrMissingKey, key)
}
