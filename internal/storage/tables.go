package storage

import (
	"fmt"
	"strings"
)

// table is the development table backing one resource. Every column holds
// text, the way the records system renders its values.
type table struct {
	resource string
	name     string
	columns  []string
	orderBy  string
}

var gpaColumns = []string{
	"gpa", "gpaCreditHours", "gpaType", "creditHoursAttempted",
	"creditHoursEarned", "creditHoursPassed", "level", "qualityPoints",
}

var tables = []table{
	{resource: "gpa", name: "gpa", columns: gpaColumns},
	{resource: "account-balance", name: "account_balance", columns: []string{"currentBalance"}},
	{
		resource: "account-transactions", name: "account_transactions",
		columns: []string{"amount", "description", "entryDate"},
		orderBy: "entryDate DESC",
	},
	{
		resource: "academic-status", name: "academic_status",
		columns: append([]string{"academicStanding", "term", "termDescription"}, gpaColumns...),
		orderBy: "term DESC",
	},
	{resource: "classification", name: "classification", columns: []string{"level", "classification"}},
	{
		resource: "grades", name: "grades",
		columns: []string{
			"courseReferenceNumber", "gradeFinal", "courseSubject", "courseSubjectDescription",
			"courseNumber", "courseTitle", "sectionNumber", "term", "termDescription",
			"scheduleType", "scheduleDescription", "creditHours", "registrationStatus",
			"gradeMode", "gradeModeDescription", "tcknCourseLevel", "sfrstcrCourseLevel",
		},
		orderBy: "term DESC",
	},
	{
		resource: "class-schedule", name: "class_schedule",
		columns: []string{
			"academicYear", "academicYearDescription", "courseReferenceNumber", "courseSubject",
			"courseSubjectDescription", "courseNumber", "courseTitleShort", "courseTitleLong",
			"sectionNumber", "term", "termDescription", "scheduleType", "scheduleDescription",
			"creditHours", "registrationStatus", "gradingMode", "continuingEducation",
			"facultyOsuId", "facultyName", "facultyEmail", "facultyPrimary",
			"beginDate", "beginTime", "endDate", "endTime", "room", "building",
			"buildingDescription", "campus", "hoursPerWeek", "creditHourSession",
			"meetingScheduleType", "meetingScheduleDescription",
			"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
		},
		orderBy: "term DESC, courseReferenceNumber",
	},
	{
		resource: "holds", name: "holds",
		columns: []string{
			"fromDate", "toDate", "reason", "description", "registration", "transcript",
			"graduation", "grades", "accountsReceivable", "enrollmentVerification",
			"application", "compliance",
		},
	},
	{
		resource: "work-study", name: "work_study",
		columns: []string{
			"offerAmount", "offerExpirationDate", "acceptedAmount", "acceptedDate",
			"paidAmount", "awardStatus", "effectiveStartDate", "effectiveEndDate",
		},
		orderBy: "effectiveStartDate DESC",
	},
	{resource: "dual-enrollment", name: "dual_enrollment", columns: []string{"term", "creditHours"}, orderBy: "term DESC"},
}

func (t table) createStatement() string {
	cols := make([]string, 0, len(t.columns)+2)
	cols = append(cols, "id INTEGER PRIMARY KEY AUTOINCREMENT", "osu_id TEXT NOT NULL")
	for _, c := range t.columns {
		cols = append(cols, c+" TEXT")
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)", t.name, strings.Join(cols, ",\n\t"))
}

func (t table) indexStatement() string {
	return fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_osu_id ON %s(osu_id)", t.name, t.name)
}

func (t table) selectStatement() string {
	order := "id"
	if t.orderBy != "" {
		order = t.orderBy + ", id"
	}
	return fmt.Sprintf("SELECT %s FROM %s WHERE osu_id = ? ORDER BY %s",
		strings.Join(t.columns, ", "), t.name, order)
}

func (t table) insertStatement() string {
	marks := strings.Repeat(", ?", len(t.columns))
	return fmt.Sprintf("INSERT INTO %s (osu_id, %s) VALUES (?%s)", t.name, strings.Join(t.columns, ", "), marks)
}

// DevQueries returns the query of every resource against the development
// database, keyed by resource path.
func DevQueries() map[string]string {
	q := make(map[string]string, len(tables))
	for _, t := range tables {
		q[t.resource] = t.selectStatement()
	}
	return q
}
