// Package transform holds the value-level normalizations applied to raw
// record fields before they become attributes. Every function is pure.
package transform

import (
	"math"
	"strconv"
	"strings"

	"github.com/volatiletech/null/v8"
)

// IncorrectTimeFormat is returned in place of a time that is not four numerals.
// Clients display it as is.
const IncorrectTimeFormat = "Incorrect time format"

// DecodeFixedTime converts an HHMM string to HH:MM:00.
// NULL stays NULL; anything that is not exactly four numerals yields
// IncorrectTimeFormat.
func DecodeFixedTime(raw null.String) null.String {
	if !raw.Valid {
		return null.String{}
	}
	s := raw.String
	if len(s) != 4 || !allDigits(s) {
		return null.StringFrom(IncorrectTimeFormat)
	}
	return null.StringFrom(s[0:2] + ":" + s[2:4] + ":00")
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ToNumber parses a numeral string. NULL and unparseable input yield NULL,
// never NaN.
func ToNumber(raw null.String) null.Float64 {
	if !raw.Valid {
		return null.Float64{}
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw.String), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return null.Float64{}
	}
	return null.Float64From(f)
}

// DecodeFlag reports whether raw is the Y flag.
func DecodeFlag(raw null.String) bool {
	return raw.Valid && raw.String == "Y"
}

// SelectFallback returns primary unless it is NULL or empty, else secondary.
func SelectFallback(primary, secondary null.String) null.String {
	if primary.Valid && primary.String != "" {
		return primary
	}
	return secondary
}
