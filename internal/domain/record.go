package domain

import (
	"fmt"

	"github.com/volatiletech/null/v8"
)

// ── RawRecord ──────────────────────────────────────────────
// Common intermediate row format.
// Every connector emits RawRecords, every assembler consumes them.

// RawRecord is a single row returned by the data source: column name → value.
// Values are either a string or SQL NULL.
type RawRecord map[string]null.String

// Get returns the value of a column. Missing columns read as NULL.
func (r RawRecord) Get(name string) null.String {
	return r[name]
}

// Str returns the column value as a plain string, "" for NULL.
func (r RawRecord) Str(name string) string {
	return r[name].String
}

// Columns returns the column names of the record in no particular order.
func (r RawRecord) Columns() []string {
	names := make([]string, 0, len(r))
	for k := range r {
		names = append(names, k)
	}
	return names
}

// RecordFrom builds a RawRecord from a loosely typed map. nil values become NULL,
// *string follows its pointer, other values are formatted with fmt.
// Used by tests and fixtures.
func RecordFrom(data map[string]any) RawRecord {
	r := make(RawRecord, len(data))
	for k, v := range data {
		switch val := v.(type) {
		case nil:
			r[k] = null.String{}
		case string:
			r[k] = null.StringFrom(val)
		case *string:
			r[k] = null.StringFromPtr(val)
		case null.String:
			r[k] = val
		default:
			r[k] = null.StringFrom(fmt.Sprint(val))
		}
	}
	return r
}
