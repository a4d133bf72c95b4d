// internal/domain/models/scalars.go
package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Number is a numeric API field that may be missing, null, or sent as a
// numeric string. Valid is false when no usable number was present.
type Number struct {
	Value float64
	Valid bool
}

// N returns a valid Number.
func N(v float64) Number { return Number{Value: v, Valid: true} }

// String formats the number the way the API sent it (no trailing zeros).
// Invalid numbers render as an empty string.
func (n Number) String() string {
	if !n.Valid {
		return ""
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// Truthy reports whether the number is present and non-zero.
func (n Number) Truthy() bool { return n.Valid && n.Value != 0 }

// Or returns n when it is truthy, otherwise alt.
func (n Number) Or(alt Number) Number {
	if n.Truthy() {
		return n
	}
	return alt
}

// Date is an API timestamp. Raw keeps the original text so unparsable values
// can still be shown.
type Date struct {
	Time time.Time
	Raw  string
}

// dateLayouts are tried in order when parsing API dates.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses s leniently. A zero Time means s was empty or unparsable.
func ParseDate(s string) Date {
	s = strings.TrimSpace(s)
	d := Date{Raw: s}
	if s == "" {
		return d
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return d
		}
	}
	return d
}

// String renders the date as M/D/YYYY, or the raw text when it did not parse.
func (d Date) String() string {
	if d.Time.IsZero() {
		return d.Raw
	}
	return d.Time.Format("1/2/2006")
}

// Text converts a raw JSON scalar to display text. Strings are returned
// as-is, numbers keep their literal form, booleans become "true"/"false".
// null, objects and arrays yield "".
func Text(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return ""
		}
		return strconv.FormatBool(b)
	case 'n', '{', '[':
		return ""
	default:
		var num json.Number
		if err := json.Unmarshal(raw, &num); err != nil {
			return ""
		}
		return num.String()
	}
}

// Num converts a raw JSON number or numeric string to a Number.
func Num(raw json.RawMessage) Number {
	s := strings.TrimSpace(Text(raw))
	if s == "" {
		return Number{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Number{}
	}
	return N(v)
}

// FirstText returns the first non-empty Text among raws, mirroring the
// "a || b" fallback chains the API's consumers have always used.
func FirstText(raws ...json.RawMessage) string {
	for _, raw := range raws {
		if s := Text(raw); s != "" {
			return s
		}
	}
	return ""
}
