// Package serializer turns raw student records into resource documents.
//
// Each resource kind has an assembly rule: either all rows fold into one
// resource identified by the subject id, or the rows are split into sibling
// resources with composite ids. The rules only shape attributes; envelopes,
// type names and schema checks belong to the jsonapi.Builder.
package serializer

import (
	"errors"
	"fmt"

	"students/internal/domain"
	"students/internal/jsonapi"
)

// ErrNoRecord is returned when a kind built from exactly one record gets none.
var ErrNoRecord = errors.New("serializer: no record to serialize")

// assembly is the rule for one resource kind. Exactly one field is set.
type assembly struct {
	single     func(rows []domain.RawRecord) (jsonapi.Attributes, error)
	collection func(rows []domain.RawRecord, subjectID string) []jsonapi.Entry
}

var assemblies = map[domain.ResourceKind]assembly{
	domain.ResourceGPA:                 {single: gpaAttributes},
	domain.ResourceAccountBalance:      {single: firstRecord(accountBalanceAttributes)},
	domain.ResourceAccountTransactions: {single: accountTransactionsAttributes},
	domain.ResourceAcademicStatus:      {collection: academicStatusEntries},
	domain.ResourceClassification:      {single: firstRecord(classificationAttributes)},
	domain.ResourceGrades:              {collection: gradesEntries},
	domain.ResourceClassSchedule:       {collection: classScheduleEntries},
	domain.ResourceHolds:               {single: holdsAttributes},
	domain.ResourceWorkStudy:           {single: workStudyAttributes},
	domain.ResourceDualEnrollment:      {collection: dualEnrollmentEntries},
}

// Serializer assembles documents for every resource kind.
// It holds no mutable state and is safe for concurrent use.
type Serializer struct {
	builder *jsonapi.Builder
}

// New creates a Serializer that delegates envelopes to b.
func New(b *jsonapi.Builder) *Serializer {
	return &Serializer{builder: b}
}

// Serialize builds the document of kind for subjectID from rows.
// params are echoed into the top-level self link.
func (s *Serializer) Serialize(kind domain.ResourceKind, rows []domain.RawRecord, subjectID string, params []jsonapi.QueryParam) (*jsonapi.Document, error) {
	a, ok := assemblies[kind]
	if !ok {
		return nil, &domain.UnknownResourceError{Path: string(kind)}
	}
	info := kind.Info()

	if a.collection != nil {
		return s.builder.Collection(subjectID, info.Definition, info.Path, params, a.collection(rows, subjectID))
	}
	attrs, err := a.single(rows)
	if err != nil {
		return nil, fmt.Errorf("serialize %s: %w", kind, err)
	}
	return s.builder.Single(subjectID, info.Definition, info.Path, params, attrs)
}

// GPA serializes the GPA levels of a student.
func (s *Serializer) GPA(rows []domain.RawRecord, subjectID string) (*jsonapi.Document, error) {
	return s.Serialize(domain.ResourceGPA, rows, subjectID, nil)
}

// AccountBalance serializes a student's current balance.
func (s *Serializer) AccountBalance(row domain.RawRecord, subjectID string) (*jsonapi.Document, error) {
	return s.Serialize(domain.ResourceAccountBalance, []domain.RawRecord{row}, subjectID, nil)
}

// AccountTransactions serializes a student's account transactions.
func (s *Serializer) AccountTransactions(rows []domain.RawRecord, subjectID string) (*jsonapi.Document, error) {
	return s.Serialize(domain.ResourceAccountTransactions, rows, subjectID, nil)
}

// AcademicStatus serializes one resource per term.
func (s *Serializer) AcademicStatus(rows []domain.RawRecord, subjectID string, params []jsonapi.QueryParam) (*jsonapi.Document, error) {
	return s.Serialize(domain.ResourceAcademicStatus, rows, subjectID, params)
}

// Classification serializes a student's level and classification.
func (s *Serializer) Classification(row domain.RawRecord, subjectID string) (*jsonapi.Document, error) {
	return s.Serialize(domain.ResourceClassification, []domain.RawRecord{row}, subjectID, nil)
}

// Grades serializes one resource per course offering.
func (s *Serializer) Grades(rows []domain.RawRecord, subjectID string, params []jsonapi.QueryParam) (*jsonapi.Document, error) {
	return s.Serialize(domain.ResourceGrades, rows, subjectID, params)
}

// ClassSchedule serializes one resource per (term, course reference number).
func (s *Serializer) ClassSchedule(rows []domain.RawRecord, subjectID string, params []jsonapi.QueryParam) (*jsonapi.Document, error) {
	return s.Serialize(domain.ResourceClassSchedule, rows, subjectID, params)
}

// Holds serializes a student's holds.
func (s *Serializer) Holds(rows []domain.RawRecord, subjectID string) (*jsonapi.Document, error) {
	return s.Serialize(domain.ResourceHolds, rows, subjectID, nil)
}

// WorkStudy serializes a student's work study awards.
func (s *Serializer) WorkStudy(rows []domain.RawRecord, subjectID string) (*jsonapi.Document, error) {
	return s.Serialize(domain.ResourceWorkStudy, rows, subjectID, nil)
}

// DualEnrollment serializes one resource per term.
func (s *Serializer) DualEnrollment(rows []domain.RawRecord, subjectID string, params []jsonapi.QueryParam) (*jsonapi.Document, error) {
	return s.Serialize(domain.ResourceDualEnrollment, rows, subjectID, params)
}

// firstRecord adapts a one-record rule to the rows signature.
func firstRecord(fn func(domain.RawRecord) jsonapi.Attributes) func([]domain.RawRecord) (jsonapi.Attributes, error) {
	return func(rows []domain.RawRecord) (jsonapi.Attributes, error) {
		if len(rows) == 0 {
			return nil, ErrNoRecord
		}
		return fn(rows[0]), nil
	}
}

// compositeID joins the subject id and discriminating fields with "-".
func compositeID(subjectID string, parts ...string) string {
	id := subjectID
	for _, p := range parts {
		id += "-" + p
	}
	return id
}
