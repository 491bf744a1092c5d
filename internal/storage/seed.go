package storage

import (
	"context"
	"fmt"
)

// FixtureSubject is the student whose records Seed inserts.
const FixtureSubject = "931234567"

// fixtures holds the rows Seed inserts for FixtureSubject, keyed by table name.
// A missing column is inserted as NULL.
var fixtures = map[string][]map[string]any{
	"gpa": {
		{"gpa": "3.96", "gpaCreditHours": "103", "gpaType": "Institution", "creditHoursAttempted": "107",
			"creditHoursEarned": "107", "creditHoursPassed": "107", "level": "Undergraduate", "qualityPoints": "407.50"},
		{"gpa": "3.97", "gpaCreditHours": "146", "gpaType": "Overall", "creditHoursAttempted": "174",
			"creditHoursEarned": "174", "creditHoursPassed": "174", "level": "Undergraduate", "qualityPoints": "579.50"},
	},
	"account_balance": {
		{"currentBalance": "1250.75"},
	},
	"account_transactions": {
		{"amount": "2850", "description": "Ford Loan-Subsidized", "entryDate": "2016-12-31 12:29:54"},
		{"amount": "1814", "description": "Presidential Scholar 001100", "entryDate": "2017-11-12 12:13:42"},
	},
	"academic_status": {
		{"academicStanding": "Good Standing", "term": "201803", "termDescription": "Spring 2018",
			"gpa": "4.00", "gpaCreditHours": "14", "gpaType": "Institution", "creditHoursAttempted": "14",
			"creditHoursEarned": "14", "creditHoursPassed": "14", "level": "Undergraduate", "qualityPoints": "56.00"},
		{"academicStanding": "Good Standing", "term": "201901", "termDescription": "Fall 2018",
			"gpa": "4.00", "gpaCreditHours": "15", "gpaType": "Institution", "creditHoursAttempted": "16",
			"creditHoursEarned": "16", "creditHoursPassed": "16", "level": "Undergraduate", "qualityPoints": "60.00"},
		{"academicStanding": "Good Standing", "term": "201901", "termDescription": "Fall 2018",
			"gpa": "3.80", "gpaCreditHours": "15", "gpaType": "Overall", "creditHoursAttempted": "30",
			"creditHoursEarned": "30", "creditHoursPassed": "30", "level": "Undergraduate", "qualityPoints": "116.00"},
	},
	"classification": {
		{"level": "Undergraduate", "classification": "Senior"},
	},
	"grades": {
		{"courseReferenceNumber": "72004", "gradeFinal": "B", "courseSubject": "FW",
			"courseSubjectDescription": "Fisheries and Wildlife", "courseNumber": "427",
			"courseTitle": "PRINCIPLES OF WILDLIFE DISEASE", "sectionNumber": "400", "term": "201901",
			"termDescription": "Fall 2018", "scheduleType": "Y", "scheduleDescription": "Online",
			"creditHours": "4", "registrationStatus": "**Web Registered**", "gradeMode": "N",
			"gradeModeDescription": "Normal Grading Mode", "tcknCourseLevel": "Undergraduate",
			"sfrstcrCourseLevel": "E-Campus Undergraduate Course"},
		{"courseReferenceNumber": "37626", "gradeFinal": "A", "courseSubject": "SPAN",
			"courseSubjectDescription": "Spanish", "courseNumber": "336",
			"courseTitle": "*LATIN AMERICAN CULTURE", "sectionNumber": "001", "term": "200803",
			"termDescription": "Spring 2008", "scheduleType": "A", "scheduleDescription": "Lecture",
			"creditHours": "3", "gradeMode": "N", "gradeModeDescription": "Normal Grading Mode",
			"tcknCourseLevel": "Non-Degree / Credential"},
	},
	"class_schedule": {
		{"academicYear": "1819", "academicYearDescription": "Academic Year 2018-19",
			"courseReferenceNumber": "12345", "courseSubject": "CS", "courseSubjectDescription": "Computer Science",
			"courseNumber": "261", "courseTitleShort": "DATA STRUCTURES", "sectionNumber": "001",
			"term": "201901", "termDescription": "Fall 2018", "scheduleType": "A", "scheduleDescription": "Lecture",
			"creditHours": "4", "registrationStatus": "**Web Registered**", "gradingMode": "Normal Grading Mode",
			"continuingEducation": "N", "facultyOsuId": "930828000", "facultyName": "Clark, Lisa",
			"facultyEmail": "lisa.clark@oregonstate.edu", "facultyPrimary": "Y",
			"beginDate": "2018-09-19", "beginTime": "1000", "endDate": "2018-12-07", "endTime": "1150",
			"room": "100", "building": "KEC", "buildingDescription": "Kelley Engineering Center",
			"campus": "Oregon State - Corvallis", "hoursPerWeek": "4", "creditHourSession": "4",
			"meetingScheduleType": "A", "meetingScheduleDescription": "Lecture", "tuesday": "T", "thursday": "R"},
		{"academicYear": "1819", "academicYearDescription": "Academic Year 2018-19",
			"courseReferenceNumber": "12345", "courseSubject": "CS", "courseSubjectDescription": "Computer Science",
			"courseNumber": "261", "courseTitleShort": "DATA STRUCTURES", "sectionNumber": "001",
			"term": "201901", "termDescription": "Fall 2018", "scheduleType": "A", "scheduleDescription": "Lecture",
			"creditHours": "4", "registrationStatus": "**Web Registered**", "gradingMode": "Normal Grading Mode",
			"continuingEducation": "N", "facultyOsuId": "930828001", "facultyName": "Nguyen, Minh",
			"facultyPrimary": "N",
			"beginDate": "2018-09-19", "beginTime": "1000", "endDate": "2018-12-07", "endTime": "1150",
			"room": "100", "building": "KEC", "buildingDescription": "Kelley Engineering Center",
			"campus": "Oregon State - Corvallis", "hoursPerWeek": "4", "creditHourSession": "4",
			"meetingScheduleType": "A", "meetingScheduleDescription": "Lecture", "tuesday": "T", "thursday": "R"},
		{"academicYear": "1718", "academicYearDescription": "Academic Year 2017-18",
			"courseReferenceNumber": "37430", "courseSubject": "RNG",
			"courseSubjectDescription": "Rangeland Ecology & Management", "courseNumber": "399",
			"courseTitleShort": "SPECIAL TOPICS", "courseTitleLong": "Special Topics in Rangeland Ecology",
			"sectionNumber": "001", "term": "201803", "termDescription": "Spring 2018", "scheduleType": "F",
			"scheduleDescription": "Independent or Special Studies", "creditHours": "2",
			"registrationStatus": "**Web Registered**", "gradingMode": "Normal Grading Mode",
			"continuingEducation": "Y"},
	},
	"holds": {
		{"fromDate": "2011-12-28", "toDate": "2099-12-31", "reason": "ACTG 321",
			"description": "Missing Requirements", "graduation": "Graduation"},
		{"fromDate": "2011-12-28", "toDate": "2099-12-31", "reason": "Has not applied as Postbac",
			"description": "Must Apply as Postbac", "registration": "Registration", "graduation": "Graduation"},
	},
	"work_study": {
		{"offerAmount": "1500", "offerExpirationDate": "2006-06-09", "acceptedAmount": "1500",
			"acceptedDate": "2006-05-12", "paidAmount": "0", "awardStatus": "Accepted",
			"effectiveStartDate": "2006-09-25", "effectiveEndDate": "2007-06-15"},
	},
	"dual_enrollment": {
		{"term": "201901", "creditHours": "5"},
		{"term": "201900", "creditHours": "4"},
	},
}

// Seed replaces the rows of FixtureSubject in every table with the fixture
// rows, in a single transaction.
func (db *DB) Seed(ctx context.Context) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, t := range tables {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE osu_id = ?", t.name), FixtureSubject); err != nil {
			return fmt.Errorf("clear %s: %w", t.name, err)
		}
		insert := t.insertStatement()
		for i, row := range fixtures[t.name] {
			args := make([]any, 0, len(t.columns)+1)
			args = append(args, FixtureSubject)
			for _, c := range t.columns {
				args = append(args, row[c])
			}
			if _, err := tx.ExecContext(ctx, insert, args...); err != nil {
				return fmt.Errorf("insert %s row %d: %w", t.name, i, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
