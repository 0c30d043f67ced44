package tomldoc

import (
	"strconv"
	"time"
)

// layoutLocalDateTime is an RFC 3339 timestamp without a zone offset.
const layoutLocalDateTime = "2006-01-02T15:04:05"

// inferScalar classifies an untyped literal into a scalar Value. The probe
// order is fixed: number, boolean, duration, offset date-time, local
// date-time; anything that matches none of them stays text.
//
// Number must probe before duration: time.ParseDuration accepts a plain "0",
// which would otherwise turn zero into a timespan.
func inferScalar(lit string) *Value {
	if f, err := strconv.ParseFloat(lit, 64); err == nil {
		return Number(f)
	}
	switch lit {
	case "true":
		return Boolean(true)
	case "false":
		return Boolean(false)
	}
	if d, err := time.ParseDuration(lit); err == nil {
		return TimeSpan(d)
	}
	if t, err := time.Parse(time.RFC3339, lit); err == nil {
		return DateTime(t)
	}
	if t, err := time.Parse(layoutLocalDateTime, lit); err == nil {
		return DateTime(t)
	}
	return Text(lit)
}
