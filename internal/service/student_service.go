package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"students/internal/domain"
	"students/internal/jsonapi"
	"students/internal/serializer"
	"students/internal/transform"
)

// ─────────────────────────────────────────────────────────────
// Student Service: fetch → filter → serialize
// ─────────────────────────────────────────────────────────────

// Fetcher returns the raw rows of one resource for a student.
// found is false when the student has no such record.
type Fetcher interface {
	Fetch(ctx context.Context, kind domain.ResourceKind, osuID string) ([]domain.RawRecord, bool, error)
}

// ParamError is returned for a query parameter the resource does not accept.
type ParamError struct {
	Resource string
	Param    string
	Reason   string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: parameter %q %s", e.Resource, e.Param, e.Reason)
}

// StudentService serves resource documents for one student at a time.
// It holds no per-request state and is safe for concurrent use.
type StudentService struct {
	fetcher    Fetcher
	serializer *serializer.Serializer
}

// NewStudentService creates a StudentService.
func NewStudentService(fetcher Fetcher, s *serializer.Serializer) *StudentService {
	return &StudentService{fetcher: fetcher, serializer: s}
}

// Get returns the document of kind for osuID. params are the request's query
// parameters in request order; only "term" is accepted, and only by kinds that
// support the term filter.
//
// It returns nil, nil when the student has no record of that kind, including
// when the term filter removes every row.
func (s *StudentService) Get(ctx context.Context, kind domain.ResourceKind, osuID string, params []jsonapi.QueryParam) (*jsonapi.Document, error) {
	reqID := uuid.NewString()
	start := time.Now()
	info, err := domain.LookupKind(kind)
	if err != nil {
		return nil, err
	}
	if osuID == "" {
		return nil, &ParamError{Resource: info.Path, Param: "osuId", Reason: "is required"}
	}
	filters, err := termFilters(info, params)
	if err != nil {
		log.Printf("[STUDENTS] req=%s resource=%s osuId=%s rejected: %v", reqID, info.Path, osuID, err)
		return nil, err
	}

	rows, found, err := s.fetcher.Fetch(ctx, kind, osuID)
	if err != nil {
		log.Printf("[STUDENTS] req=%s resource=%s osuId=%s failed: %v", reqID, info.Path, osuID, err)
		return nil, err
	}
	if found && len(filters) > 0 {
		rows = transform.Apply(rows, filters...)
		found = len(rows) > 0
	}
	if !found {
		log.Printf("[STUDENTS] req=%s resource=%s osuId=%s not found (%s)", reqID, info.Path, osuID, time.Since(start))
		return nil, nil
	}

	doc, err := s.serializer.Serialize(kind, rows, osuID, params)
	if err != nil {
		log.Printf("[STUDENTS] req=%s resource=%s osuId=%s serialize: %v", reqID, info.Path, osuID, err)
		return nil, fmt.Errorf("serialize %s: %w", info.Path, err)
	}
	log.Printf("[STUDENTS] req=%s resource=%s osuId=%s rows=%d (%s)", reqID, info.Path, osuID, len(rows), time.Since(start))
	return doc, nil
}

// termFilters validates params against info and returns the row filters they
// select.
func termFilters(info domain.ResourceInfo, params []jsonapi.QueryParam) ([]transform.Filter, error) {
	var filters []transform.Filter
	for _, p := range params {
		switch {
		case p.Key != "term" || !info.TermFilter:
			return nil, &ParamError{Resource: info.Path, Param: p.Key, Reason: "is not supported"}
		case len(filters) > 0:
			return nil, &ParamError{Resource: info.Path, Param: p.Key, Reason: "may be given once"}
		case p.Value == "":
			return nil, &ParamError{Resource: info.Path, Param: p.Key, Reason: "must not be empty"}
		}
		filters = append(filters, transform.Filter{Field: "term", Value: p.Value})
	}
	return filters, nil
}
