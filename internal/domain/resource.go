package domain

import "fmt"

// ResourceKind identifies one of the student resources exposed by the API.
type ResourceKind string

const (
	ResourceGPA                 ResourceKind = "gpa"
	ResourceAccountBalance      ResourceKind = "account-balance"
	ResourceAccountTransactions ResourceKind = "account-transactions"
	ResourceAcademicStatus      ResourceKind = "academic-status"
	ResourceClassification      ResourceKind = "classification"
	ResourceGrades              ResourceKind = "grades"
	ResourceClassSchedule       ResourceKind = "class-schedule"
	ResourceHolds               ResourceKind = "holds"
	ResourceWorkStudy           ResourceKind = "work-study"
	ResourceDualEnrollment      ResourceKind = "dual-enrollment"
)

// ResourceInfo describes how a resource kind is addressed and which schema
// definition its documents must satisfy.
type ResourceInfo struct {
	Kind       ResourceKind
	Path       string // URL segment under /students/{osuId}/
	Definition string // schema definition of the whole document
	Collection bool   // data is an array of resources
	TermFilter bool   // accepts ?term=
}

var resources = []ResourceInfo{
	{Kind: ResourceGPA, Path: "gpa", Definition: "GradePointAverageResult"},
	{Kind: ResourceAccountBalance, Path: "account-balance", Definition: "AccountBalanceResult"},
	{Kind: ResourceAccountTransactions, Path: "account-transactions", Definition: "AccountTransactionsResult"},
	{Kind: ResourceAcademicStatus, Path: "academic-status", Definition: "AcademicStatusResult", Collection: true, TermFilter: true},
	{Kind: ResourceClassification, Path: "classification", Definition: "ClassificationResult"},
	{Kind: ResourceGrades, Path: "grades", Definition: "GradesResult", Collection: true, TermFilter: true},
	{Kind: ResourceClassSchedule, Path: "class-schedule", Definition: "ClassScheduleResult", Collection: true, TermFilter: true},
	{Kind: ResourceHolds, Path: "holds", Definition: "HoldsResult"},
	{Kind: ResourceWorkStudy, Path: "work-study", Definition: "WorkStudyResult"},
	{Kind: ResourceDualEnrollment, Path: "dual-enrollment", Definition: "DualEnrollmentResult", Collection: true, TermFilter: true},
}

// Resources returns every resource kind in declaration order.
func Resources() []ResourceInfo {
	out := make([]ResourceInfo, len(resources))
	copy(out, resources)
	return out
}

// LookupResource resolves a URL path segment to its resource description.
func LookupResource(path string) (ResourceInfo, error) {
	for _, r := range resources {
		if r.Path == path {
			return r, nil
		}
	}
	return ResourceInfo{}, &UnknownResourceError{Path: path}
}

// LookupKind returns the description of kind.
func LookupKind(kind ResourceKind) (ResourceInfo, error) {
	for _, r := range resources {
		if r.Kind == kind {
			return r, nil
		}
	}
	return ResourceInfo{}, &UnknownResourceError{Path: string(kind)}
}

// Info returns the description of the kind. Panics on a kind not declared above.
func (k ResourceKind) Info() ResourceInfo {
	info, err := LookupKind(k)
	if err != nil {
		panic(fmt.Sprintf("domain: undeclared resource kind %q", string(k)))
	}
	return info
}

// UnknownResourceError is returned for a resource path that names no kind.
type UnknownResourceError struct {
	Path string
}

func (e *UnknownResourceError) Error() string {
	return fmt.Sprintf("unknown resource: %q", e.Path)
}
