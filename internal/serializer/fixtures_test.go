package serializer

import "students/internal/domain"

const fakeID = "fakeId"

func records(rows ...map[string]any) []domain.RawRecord {
	out := make([]domain.RawRecord, len(rows))
	for i, r := range rows {
		out[i] = domain.RecordFrom(r)
	}
	return out
}

func rawGpaLevels() []domain.RawRecord {
	return records(
		map[string]any{
			"gpa": "3.96", "gpaCreditHours": "103", "gpaType": "Institution",
			"creditHoursAttempted": "107", "creditHoursEarned": "107", "creditHoursPassed": "107",
			"level": "Undergraduate", "qualityPoints": "407.50",
		},
		map[string]any{
			"gpa": "3.97", "gpaCreditHours": "146", "gpaType": "Overall",
			"creditHoursAttempted": "174", "creditHoursEarned": "174", "creditHoursPassed": "174",
			"level": "Undergraduate", "qualityPoints": "579.50",
		},
	)
}

func rawTransactions() []domain.RawRecord {
	return records(
		map[string]any{"amount": "2850", "description": "Ford Loan-Subsidized", "entryDate": "2016-12-31 12:29:54"},
		map[string]any{"amount": "1814", "description": "Presidential Scholar 001100", "entryDate": "2017-11-12 12:13:42"},
	)
}

func rawAcademicStatus() []domain.RawRecord {
	return records(
		map[string]any{
			"academicStanding": "Good Standing", "term": "201803", "termDescription": "Spring 2018",
			"gpa": "4.00", "gpaCreditHours": "14", "gpaType": "Institution",
			"creditHoursAttempted": "14", "creditHoursEarned": "14", "creditHoursPassed": "14",
			"level": "Undergraduate", "qualityPoints": "56.00",
		},
		map[string]any{
			"academicStanding": "Good Standing", "term": "201901", "termDescription": "Fall 2018",
			"gpa": "4.00", "gpaCreditHours": "15", "gpaType": "Institution",
			"creditHoursAttempted": "16", "creditHoursEarned": "16", "creditHoursPassed": "16",
			"level": "Undergraduate", "qualityPoints": "60.00",
		},
		map[string]any{
			"academicStanding": "Good Standing", "term": "201901", "termDescription": "Fall 2018",
			"gpa": "3.80", "gpaCreditHours": "15", "gpaType": "Overall",
			"creditHoursAttempted": "30", "creditHoursEarned": "30", "creditHoursPassed": "30",
			"level": "Undergraduate", "qualityPoints": "116.00",
		},
	)
}

func rawGrades() []domain.RawRecord {
	return records(
		map[string]any{
			"identifierField": fakeID + "-200803-37626", "courseReferenceNumber": "37626", "gradeFinal": "A",
			"courseSubject": "SPAN", "courseSubjectDescription": "Spanish", "courseNumber": "336",
			"courseTitle": "*LATIN AMERICAN CULTURE", "sectionNumber": "001", "term": "200803",
			"termDescription": "Spring 2008", "scheduleType": "A", "scheduleDescription": "Lecture",
			"creditHours": "3", "tcknCourseLevel": "Non-Degree / Credential", "sfrstcrCourseLevel": nil,
			"registrationStatus": nil, "gradeMode": "N", "gradeModeDescription": "Normal Grading Mode",
		},
		map[string]any{
			"identifierField": fakeID + "-201900-72004", "courseReferenceNumber": "72004", "gradeFinal": "B",
			"courseSubject": "FW", "courseSubjectDescription": "Fisheries and Wildlife", "courseNumber": "427",
			"courseTitle": "PRINCIPLES OF WILDLIFE DISEASE", "sectionNumber": "400", "term": "201900",
			"termDescription": "Summer 2018", "scheduleType": "Y", "scheduleDescription": "Online",
			"creditHours": "4", "tcknCourseLevel": "Undergraduate", "sfrstcrCourseLevel": "E-Campus Undergraduate Course",
			"registrationStatus": "**Web Registered**", "gradeMode": "N", "gradeModeDescription": "Normal Grading Mode",
		},
	)
}

func scheduleRow(overrides map[string]any) map[string]any {
	row := map[string]any{
		"academicYear": "0405", "academicYearDescription": "Academic Year 2004-05",
		"courseReferenceNumber": "35301", "courseSubject": "BIO", "courseSubjectDescription": "Biology-UO",
		"courseNumber": "370-U", "courseTitleShort": "UO. ECOLOGY", "courseTitleLong": nil,
		"sectionNumber": "001", "term": "200503", "termDescription": "Spring 2005",
		"scheduleType": "A", "scheduleDescription": "Lecture", "creditHours": "4",
		"registrationStatus": "**Web Registered**", "gradingMode": "Normal Grading Mode",
		"continuingEducation": nil,
		"facultyOsuId": "930828000", "facultyName": "Clark, Lisa", "facultyEmail": nil, "facultyPrimary": "Y",
		"beginDate": "2005-03-28", "beginTime": "1900", "endDate": "2005-06-03", "endTime": "2030",
		"room": "201", "building": "CSB", "buildingDescription": "Cascades Hall (COOSU)",
		"campus": "Oregon State - Cascades", "hoursPerWeek": "3", "creditHourSession": "4",
		"meetingScheduleType": "A", "meetingScheduleDescription": "Lecture",
		"monday": nil, "tuesday": "T", "wednesday": nil, "thursday": "R",
		"friday": nil, "saturday": nil, "sunday": nil,
	}
	for k, v := range overrides {
		row[k] = v
	}
	return row
}

func rawClassSchedule() []domain.RawRecord {
	return records(
		scheduleRow(map[string]any{
			"courseReferenceNumber": "37430", "courseSubject": "RNG",
			"courseSubjectDescription": "Rangeland Ecology & Management", "courseNumber": "399",
			"courseTitleShort": "SPECIAL TOPICS", "scheduleType": "F",
			"scheduleDescription": "Independent or Special Studies", "creditHours": "2",
			"facultyOsuId": "930608969", "facultyName": "Ehrhart, Robert",
			"facultyEmail": "Bob.Ehrhart@oregonstate.edu",
			"beginTime": nil, "endTime": nil, "room": nil, "building": nil, "buildingDescription": nil,
			"hoursPerWeek": "0", "creditHourSession": "2",
			"meetingScheduleType": "F", "meetingScheduleDescription": "Independent or Special Studies",
			"tuesday": nil, "thursday": nil,
		}),
		scheduleRow(nil),
	)
}

func rawHolds() []domain.RawRecord {
	return records(
		map[string]any{
			"fromDate": "2011-12-28", "toDate": "2099-12-31", "reason": "ACTG 321",
			"description": "Missing Requirements", "registration": nil, "transcript": nil,
			"graduation": "Graduation", "grades": nil, "accountsReceivable": nil,
			"enrollmentVerification": nil, "application": nil, "compliance": nil,
		},
		map[string]any{
			"fromDate": "2011-12-28", "toDate": "2099-12-31", "reason": "Has not applied as Postbac",
			"description": "Must Apply as Postbac", "registration": "Registration", "transcript": nil,
			"graduation": "Graduation", "grades": nil, "accountsReceivable": nil,
			"enrollmentVerification": nil, "application": nil, "compliance": nil,
		},
	)
}

func rawAwards() []domain.RawRecord {
	return records(
		map[string]any{
			"offerAmount": "1500", "offerExpirationDate": "2006-06-09", "acceptedAmount": "1500",
			"acceptedDate": "2006-05-12", "paidAmount": "0", "awardStatus": "Accepted",
			"effectiveStartDate": "2006-09-25", "effectiveEndDate": "2007-06-15",
		},
		map[string]any{
			"offerAmount": "0", "offerExpirationDate": nil, "acceptedAmount": "0",
			"acceptedDate": nil, "paidAmount": "0", "awardStatus": "Cancelled",
			"effectiveStartDate": "2007-06-25", "effectiveEndDate": "2008-03-21",
		},
	)
}

func rawDualEnrollment() []domain.RawRecord {
	var rows []map[string]any
	for _, term := range []string{"200503", "200602", "200603", "201900", "201901"} {
		rows = append(rows, map[string]any{
			"identifierField": fakeID + "-" + term, "creditHours": "5", "term": term,
		})
	}
	return records(rows...)
}
