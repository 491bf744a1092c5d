package serializer

import (
	"students/internal/domain"
	"students/internal/jsonapi"
	"students/internal/transform"
)

// weekdays maps each day column to its weekly schedule code, Monday first.
var weekdays = []struct {
	field string
	code  string
}{
	{"monday", "M"},
	{"tuesday", "T"},
	{"wednesday", "W"},
	{"thursday", "Th"},
	{"friday", "F"},
	{"saturday", "Sa"},
	{"sunday", "Su"},
}

// meetingColumns are every column a meetingTimes entry is built from. A row
// with all of them NULL carries no meeting.
var meetingColumns = []string{
	"beginDate", "beginTime", "endDate", "endTime", "room", "building", "buildingDescription",
	"campus", "hoursPerWeek", "creditHourSession", "meetingScheduleType", "meetingScheduleDescription",
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// weeklySchedule returns the code of every day column that is not NULL.
func weeklySchedule(r domain.RawRecord) []string {
	days := []string{}
	for _, d := range weekdays {
		if r.Get(d.field).Valid {
			days = append(days, d.code)
		}
	}
	return days
}

// classScheduleEntries clusters rows by (term, courseReferenceNumber). Course
// fields come from the first row of a cluster; faculty and meetingTimes are
// collected across all of its rows.
func classScheduleEntries(rows []domain.RawRecord, subjectID string) []jsonapi.Entry {
	var entries []jsonapi.Entry
	for _, group := range groupRows(rows, "term", "courseReferenceNumber") {
		first := group[0]
		attrs := jsonapi.Attributes{
			"academicYear":             first.Get("academicYear"),
			"academicYearDescription":  first.Get("academicYearDescription"),
			"courseReferenceNumber":    first.Get("courseReferenceNumber"),
			"courseSubject":            first.Get("courseSubject"),
			"courseSubjectDescription": first.Get("courseSubjectDescription"),
			"courseNumber":             first.Get("courseNumber"),
			"courseTitle":              transform.SelectFallback(first.Get("courseTitleLong"), first.Get("courseTitleShort")),
			"sectionNumber":            first.Get("sectionNumber"),
			"term":                     first.Get("term"),
			"termDescription":          first.Get("termDescription"),
			"scheduleType":             first.Get("scheduleType"),
			"scheduleDescription":      first.Get("scheduleDescription"),
			"creditHours":              transform.ToNumber(first.Get("creditHours")),
			"registrationStatus":       first.Get("registrationStatus"),
			"gradingMode":              first.Get("gradingMode"),
			"continuingEducation":      transform.DecodeFlag(first.Get("continuingEducation")),
			"faculty":                  faculty(group),
			"meetingTimes":             meetingTimes(group),
		}
		entries = append(entries, jsonapi.Entry{
			ID:         compositeID(subjectID, first.Str("term"), first.Str("courseReferenceNumber")),
			Attributes: attrs,
		})
	}
	return entries
}

// faculty returns one entry per distinct facultyOsuId, in row order.
// Rows without a faculty id are skipped.
func faculty(group []domain.RawRecord) []jsonapi.Attributes {
	out := []jsonapi.Attributes{}
	seen := make(map[string]bool)
	for _, r := range group {
		id := r.Get("facultyOsuId")
		if !id.Valid || seen[id.String] {
			continue
		}
		seen[id.String] = true
		out = append(out, jsonapi.Attributes{
			"osuId":   id,
			"name":    r.Get("facultyName"),
			"email":   r.Get("facultyEmail"),
			"primary": transform.DecodeFlag(r.Get("facultyPrimary")),
		})
	}
	return out
}

// meetingTimes returns one entry per row carrying a meeting, in row order.
// A row whose meeting columns all equal an earlier row's (the same meeting
// joined with another faculty member) would render the same entry and is
// skipped.
func meetingTimes(group []domain.RawRecord) []jsonapi.Attributes {
	out := []jsonapi.Attributes{}
	seen := make(map[string]bool)
	for _, r := range group {
		if !hasMeeting(r) {
			continue
		}
		key := rowKey(r, meetingColumns...)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, jsonapi.Attributes{
			"beginDate":           r.Get("beginDate"),
			"beginTime":           transform.DecodeFixedTime(r.Get("beginTime")),
			"endDate":             r.Get("endDate"),
			"endTime":             transform.DecodeFixedTime(r.Get("endTime")),
			"room":                r.Get("room"),
			"building":            r.Get("building"),
			"buildingDescription": r.Get("buildingDescription"),
			"campus":              r.Get("campus"),
			"hoursPerWeek":        transform.ToNumber(r.Get("hoursPerWeek")),
			"creditHourSession":   transform.ToNumber(r.Get("creditHourSession")),
			"scheduleType":        r.Get("meetingScheduleType"),
			"scheduleDescription": r.Get("meetingScheduleDescription"),
			"weeklySchedule":      weeklySchedule(r),
		})
	}
	return out
}

func hasMeeting(r domain.RawRecord) bool {
	for _, c := range meetingColumns {
		if r.Get(c).Valid {
			return true
		}
	}
	return false
}
