package schema

// resultProperties are the top-level properties of every resource document definition.
var resultProperties = []string{"links", "data"}

var gradePointAverageFields = []string{
	"gpa",
	"gpaCreditHours",
	"gpaType",
	"creditHoursAttempted",
	"creditHoursEarned",
	"creditHoursPassed",
	"level",
	"qualityPoints",
}

// definitions is the compiled-in attribute contract of the students API.
// testdata/openapi.yaml declares the same contract as an OpenAPI document.
var definitions = []Definition{
	{
		Name:       "GradePointAverage",
		Properties: gradePointAverageFields,
	},
	{
		Name:       "GradePointAverageResult",
		Type:       "gpa",
		Properties: resultProperties,
		Attributes: []string{"gpaLevels"},
		Nested:     map[string][]string{"gpaLevels": gradePointAverageFields},
	},
	{
		Name:       "AccountBalanceResult",
		Type:       "account-balance",
		Properties: resultProperties,
		Attributes: []string{"currentBalance"},
	},
	{
		Name:       "AccountTransactionsResult",
		Type:       "account-transactions",
		Properties: resultProperties,
		Attributes: []string{"transactions"},
		Nested: map[string][]string{
			"transactions": {"amount", "description", "entryDate"},
		},
	},
	{
		Name:       "AcademicStatusResult",
		Type:       "academic-status",
		Collection: true,
		Properties: resultProperties,
		Attributes: []string{"academicStanding", "term", "termDescription", "gpa"},
		Nested:     map[string][]string{"gpa": gradePointAverageFields},
	},
	{
		Name:       "ClassificationResult",
		Type:       "classification",
		Properties: resultProperties,
		Attributes: []string{"level", "classification"},
	},
	{
		Name:       "GradesResult",
		Type:       "grades",
		Collection: true,
		Properties: resultProperties,
		Attributes: []string{
			"courseReferenceNumber",
			"gradeFinal",
			"courseSubject",
			"courseSubjectDescription",
			"courseNumber",
			"courseTitle",
			"sectionNumber",
			"term",
			"termDescription",
			"scheduleType",
			"scheduleDescription",
			"creditHours",
			"registrationStatus",
			"gradeMode",
			"gradeModeDescription",
			"courseLevel",
		},
	},
	{
		Name:       "ClassScheduleResult",
		Type:       "class-schedule",
		Collection: true,
		Properties: resultProperties,
		Attributes: []string{
			"academicYear",
			"academicYearDescription",
			"courseReferenceNumber",
			"courseSubject",
			"courseSubjectDescription",
			"courseNumber",
			"courseTitle",
			"sectionNumber",
			"term",
			"termDescription",
			"scheduleType",
			"scheduleDescription",
			"creditHours",
			"registrationStatus",
			"gradingMode",
			"continuingEducation",
			"faculty",
			"meetingTimes",
		},
		Nested: map[string][]string{
			"faculty": {"osuId", "name", "email", "primary"},
			"meetingTimes": {
				"beginDate",
				"beginTime",
				"endDate",
				"endTime",
				"room",
				"building",
				"buildingDescription",
				"campus",
				"hoursPerWeek",
				"creditHourSession",
				"scheduleType",
				"scheduleDescription",
				"weeklySchedule",
			},
		},
	},
	{
		Name:       "HoldsResult",
		Type:       "holds",
		Properties: resultProperties,
		Attributes: []string{"holds"},
		Nested: map[string][]string{
			"holds": {"fromDate", "toDate", "reason", "description", "processesAffected"},
		},
	},
	{
		Name:       "WorkStudyResult",
		Type:       "work-study",
		Properties: resultProperties,
		Attributes: []string{"awards"},
		Nested: map[string][]string{
			"awards": {
				"offerAmount",
				"offerExpirationDate",
				"acceptedAmount",
				"acceptedDate",
				"paidAmount",
				"awardStatus",
				"effectiveStartDate",
				"effectiveEndDate",
			},
		},
	},
	{
		Name:       "DualEnrollmentResult",
		Type:       "dual-enrollment",
		Collection: true,
		Properties: resultProperties,
		Attributes: []string{"term", "creditHours"},
	},
}

// Default returns a Registry over the compiled-in definitions.
func Default() *Registry {
	r, err := NewRegistry(definitions...)
	if err != nil {
		panic(err)
	}
	return r
}
