package transform

import "students/internal/domain"

// Filter keeps records whose Field equals Value.
// Records with a NULL Field never match.
type Filter struct {
	Field string
	Value string
}

// Keep reports whether r passes the filter.
func (f Filter) Keep(r domain.RawRecord) bool {
	v := r.Get(f.Field)
	return v.Valid && v.String == f.Value
}

// Apply returns the records that pass every filter, in input order.
// With no filters the input slice is returned unchanged.
func Apply(records []domain.RawRecord, filters ...Filter) []domain.RawRecord {
	if len(filters) == 0 {
		return records
	}
	kept := make([]domain.RawRecord, 0, len(records))
next:
	for _, r := range records {
		for _, f := range filters {
			if !f.Keep(r) {
				continue next
			}
		}
		kept = append(kept, r)
	}
	return kept
}
