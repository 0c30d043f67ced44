package tomldoc

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Kind identifies which payload a Value holds.
type Kind string

const (
	KindText     Kind = "text"
	KindNumber   Kind = "number"
	KindBoolean  Kind = "boolean"
	KindDateTime Kind = "datetime"
	KindTimeSpan Kind = "timespan"
	KindArray    Kind = "array"
	KindTable    Kind = "table"
)

// Value is a tagged variant holding exactly one TOML value: a scalar, or an
// owned Array or Table. The payload is only reachable through the accessor
// matching the kind; every other accessor reports ErrTypeMismatch.
type Value struct {
	kind Kind
	text string
	num  float64
	b    bool
	ts   time.Time
	dur  time.Duration
	arr  *Array
	tbl  *Table
}

// Text returns a Value holding a string.
func Text(s string) *Value { return &Value{kind: KindText, text: s} }

// Number returns a Value holding a 64-bit float.
func Number(f float64) *Value { return &Value{kind: KindNumber, num: f} }

// Boolean returns a Value holding a bool.
func Boolean(b bool) *Value { return &Value{kind: KindBoolean, b: b} }

// DateTime returns a Value holding a point in time.
func DateTime(t time.Time) *Value { return &Value{kind: KindDateTime, ts: t} }

// TimeSpan returns a Value holding a duration.
func TimeSpan(d time.Duration) *Value { return &Value{kind: KindTimeSpan, dur: d} }

// ArrayValue returns a Value owning a. The array must not be shared with
// another container.
func ArrayValue(a *Array) *Value { return &Value{kind: KindArray, arr: a} }

// TableValue returns a Value owning t. The table must not be shared with
// another container.
func TableValue(t *Table) *Value { return &Value{kind: KindTable, tbl: t} }

// Kind returns the value's type tag.
func (v *Value) Kind() Kind { return v.kind }

func (v *Value) mismatch(want Kind) error {
	return fmt.Errorf("%w: value is %s, not %s", ErrTypeMismatch, v.kind, want)
}

// Text returns the string payload.
func (v *Value) Text() (string, error) {
	if v.kind != KindText {
		return "", v.mismatch(KindText)
	}
	return v.text, nil
}

// Number returns the float payload.
func (v *Value) Number() (float64, error) {
	if v.kind != KindNumber {
		return 0, v.mismatch(KindNumber)
	}
	return v.num, nil
}

// Boolean returns the bool payload.
func (v *Value) Boolean() (bool, error) {
	if v.kind != KindBoolean {
		return false, v.mismatch(KindBoolean)
	}
	return v.b, nil
}

// DateTime returns the time payload.
func (v *Value) DateTime() (time.Time, error) {
	if v.kind != KindDateTime {
		return time.Time{}, v.mismatch(KindDateTime)
	}
	return v.ts, nil
}

// TimeSpan returns the duration payload.
func (v *Value) TimeSpan() (time.Duration, error) {
	if v.kind != KindTimeSpan {
		return 0, v.mismatch(KindTimeSpan)
	}
	return v.dur, nil
}

// Array returns the owned array payload.
func (v *Value) Array() (*Array, error) {
	if v.kind != KindArray {
		return nil, v.mismatch(KindArray)
	}
	return v.arr, nil
}

// Table returns the owned table payload.
func (v *Value) Table() (*Table, error) {
	if v.kind != KindTable {
		return nil, v.mismatch(KindTable)
	}
	return v.tbl, nil
}

// writeTo serializes the value. Strings containing a space are wrapped in
// double quotes so they survive a round trip; no other escaping is
// performed in this dialect.
func (v *Value) writeTo(w io.Writer) error {
	switch v.kind {
	case KindText:
		if strings.ContainsRune(v.text, ' ') {
			return write(w, `"`+v.text+`"`)
		}
		return write(w, v.text)
	case KindNumber:
		return write(w, strconv.FormatFloat(v.num, 'g', -1, 64))
	case KindBoolean:
		return write(w, strconv.FormatBool(v.b))
	case KindDateTime:
		return write(w, v.ts.Format(time.RFC3339))
	case KindTimeSpan:
		return write(w, v.dur.String())
	case KindArray:
		return v.arr.writeTo(w)
	case KindTable:
		return v.tbl.writeInline(w)
	default:
		return fmt.Errorf("tomldoc: unsupported value kind %q", v.kind)
	}
}

// String returns the serialized form of the value.
func (v *Value) String() string {
	var sb strings.Builder
	if err := v.writeTo(&sb); err != nil {
		return ""
	}
	return sb.String()
}
