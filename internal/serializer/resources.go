package serializer

import (
	"students/internal/domain"
	"students/internal/jsonapi"
	"students/internal/transform"
)

func gradePointAverage(r domain.RawRecord) jsonapi.Attributes {
	return jsonapi.Attributes{
		"gpa":                  r.Get("gpa"),
		"gpaCreditHours":       transform.ToNumber(r.Get("gpaCreditHours")),
		"gpaType":              r.Get("gpaType"),
		"creditHoursAttempted": transform.ToNumber(r.Get("creditHoursAttempted")),
		"creditHoursEarned":    transform.ToNumber(r.Get("creditHoursEarned")),
		"creditHoursPassed":    transform.ToNumber(r.Get("creditHoursPassed")),
		"level":                r.Get("level"),
		"qualityPoints":        r.Get("qualityPoints"),
	}
}

func gpaAttributes(rows []domain.RawRecord) (jsonapi.Attributes, error) {
	return jsonapi.Attributes{"gpaLevels": mapRows(rows, gradePointAverage)}, nil
}

func accountBalanceAttributes(r domain.RawRecord) jsonapi.Attributes {
	return jsonapi.Attributes{
		"currentBalance": transform.ToNumber(r.Get("currentBalance")),
	}
}

func accountTransactionsAttributes(rows []domain.RawRecord) (jsonapi.Attributes, error) {
	transactions := mapRows(rows, func(r domain.RawRecord) jsonapi.Attributes {
		return jsonapi.Attributes{
			"amount":      transform.ToNumber(r.Get("amount")),
			"description": r.Get("description"),
			"entryDate":   r.Get("entryDate"),
		}
	})
	return jsonapi.Attributes{"transactions": transactions}, nil
}

// academicStatusEntries yields one resource per term, in order of first
// appearance. Every row of a term contributes one gpa entry.
func academicStatusEntries(rows []domain.RawRecord, subjectID string) []jsonapi.Entry {
	var entries []jsonapi.Entry
	for _, group := range groupRows(rows, "term") {
		first := group[0]
		entries = append(entries, jsonapi.Entry{
			ID: compositeID(subjectID, first.Str("term")),
			Attributes: jsonapi.Attributes{
				"academicStanding": first.Get("academicStanding"),
				"term":             first.Get("term"),
				"termDescription":  first.Get("termDescription"),
				"gpa":              mapRows(group, gradePointAverage),
			},
		})
	}
	return entries
}

func classificationAttributes(r domain.RawRecord) jsonapi.Attributes {
	return jsonapi.Attributes{
		"level":          r.Get("level"),
		"classification": r.Get("classification"),
	}
}

func gradesEntries(rows []domain.RawRecord, subjectID string) []jsonapi.Entry {
	entries := make([]jsonapi.Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, jsonapi.Entry{
			ID: compositeID(subjectID, r.Str("term"), r.Str("courseReferenceNumber")),
			Attributes: jsonapi.Attributes{
				"courseReferenceNumber":    r.Get("courseReferenceNumber"),
				"gradeFinal":               r.Get("gradeFinal"),
				"courseSubject":            r.Get("courseSubject"),
				"courseSubjectDescription": r.Get("courseSubjectDescription"),
				"courseNumber":             r.Get("courseNumber"),
				"courseTitle":              r.Get("courseTitle"),
				"sectionNumber":            r.Get("sectionNumber"),
				"term":                     r.Get("term"),
				"termDescription":          r.Get("termDescription"),
				"scheduleType":             r.Get("scheduleType"),
				"scheduleDescription":      r.Get("scheduleDescription"),
				"creditHours":              transform.ToNumber(r.Get("creditHours")),
				"registrationStatus":       r.Get("registrationStatus"),
				"gradeMode":                r.Get("gradeMode"),
				"gradeModeDescription":     r.Get("gradeModeDescription"),
				"courseLevel":              transform.SelectFallback(r.Get("sfrstcrCourseLevel"), r.Get("tcknCourseLevel")),
			},
		})
	}
	return entries
}

// holdProcesses maps each process column to its display label, in output order.
var holdProcesses = []struct {
	field string
	label string
}{
	{"registration", "Registration"},
	{"transcript", "Transcript"},
	{"graduation", "Graduation"},
	{"grades", "Grades"},
	{"accountsReceivable", "Accounts Receivable"},
	{"enrollmentVerification", "Enrollment Verification"},
	{"application", "Application"},
	{"compliance", "Compliance"},
}

// processesAffected lists the label of every non-NULL process column.
func processesAffected(r domain.RawRecord) []string {
	affected := []string{}
	for _, p := range holdProcesses {
		if r.Get(p.field).Valid {
			affected = append(affected, p.label)
		}
	}
	return affected
}

func holdsAttributes(rows []domain.RawRecord) (jsonapi.Attributes, error) {
	holds := mapRows(rows, func(r domain.RawRecord) jsonapi.Attributes {
		return jsonapi.Attributes{
			"fromDate":          r.Get("fromDate"),
			"toDate":            r.Get("toDate"),
			"reason":            r.Get("reason"),
			"description":       r.Get("description"),
			"processesAffected": processesAffected(r),
		}
	})
	return jsonapi.Attributes{"holds": holds}, nil
}

func workStudyAttributes(rows []domain.RawRecord) (jsonapi.Attributes, error) {
	awards := mapRows(rows, func(r domain.RawRecord) jsonapi.Attributes {
		return jsonapi.Attributes{
			"offerAmount":         transform.ToNumber(r.Get("offerAmount")),
			"offerExpirationDate": r.Get("offerExpirationDate"),
			"acceptedAmount":      transform.ToNumber(r.Get("acceptedAmount")),
			"acceptedDate":        r.Get("acceptedDate"),
			"paidAmount":          transform.ToNumber(r.Get("paidAmount")),
			"awardStatus":         r.Get("awardStatus"),
			"effectiveStartDate":  r.Get("effectiveStartDate"),
			"effectiveEndDate":    r.Get("effectiveEndDate"),
		}
	})
	return jsonapi.Attributes{"awards": awards}, nil
}

func dualEnrollmentEntries(rows []domain.RawRecord, subjectID string) []jsonapi.Entry {
	entries := make([]jsonapi.Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, jsonapi.Entry{
			ID: compositeID(subjectID, r.Str("term")),
			Attributes: jsonapi.Attributes{
				"term":        r.Get("term"),
				"creditHours": transform.ToNumber(r.Get("creditHours")),
			},
		})
	}
	return entries
}

// mapRows applies fn to every row. The result is never nil so that an empty
// list encodes as [].
func mapRows(rows []domain.RawRecord, fn func(domain.RawRecord) jsonapi.Attributes) []jsonapi.Attributes {
	out := make([]jsonapi.Attributes, 0, len(rows))
	for _, r := range rows {
		out = append(out, fn(r))
	}
	return out
}

// groupRows clusters rows sharing the values of fields, keeping the order in
// which each cluster first appears and the row order inside it.
func groupRows(rows []domain.RawRecord, fields ...string) [][]domain.RawRecord {
	index := make(map[string]int)
	var groups [][]domain.RawRecord
	for _, r := range rows {
		key := rowKey(r, fields...)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], r)
	}
	return groups
}

// rowKey encodes the values of fields so that NULL and "" stay distinct.
func rowKey(r domain.RawRecord, fields ...string) string {
	key := make([]byte, 0, 32)
	for _, f := range fields {
		v := r.Get(f)
		if v.Valid {
			key = append(key, 's')
			key = append(key, v.String...)
		} else {
			key = append(key, 'n')
		}
		key = append(key, 0)
	}
	return string(key)
}
