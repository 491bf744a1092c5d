// Package httpapi exposes student resources over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"students/internal/domain"
	"students/internal/jsonapi"
	"students/internal/service"
)

// Getter serves one resource document. A nil document with a nil error
// means the student has no such record.
type Getter interface {
	Get(ctx context.Context, kind domain.ResourceKind, osuID string, params []jsonapi.QueryParam) (*jsonapi.Document, error)
}

// Pinger reports whether the records database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Router holds the dependencies of the HTTP routes.
type Router struct {
	basePath string
	students Getter
	db       Pinger
}

// NewRouter creates a Router serving resources under basePath.
// db may be nil, in which case the health check only reports liveness.
func NewRouter(basePath string, students Getter, db Pinger) *Router {
	return &Router{
		basePath: strings.TrimRight(basePath, "/"),
		students: students,
		db:       db,
	}
}

// BuildRoutes builds the chi router.
func (router *Router) BuildRoutes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(requestLogger)
	r.Use(chimw.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "")
	})

	r.Get("/healthz", router.health)
	r.Get(router.basePath+"/{osuId}/{resource}", router.getResource)
	return r
}

func (router *Router) health(w http.ResponseWriter, r *http.Request) {
	if router.db != nil {
		if err := router.db.Ping(r.Context()); err != nil {
			log.Printf("[HTTP] health: %v", err)
			writeError(w, http.StatusServiceUnavailable, "records database unreachable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (router *Router) getResource(w http.ResponseWriter, r *http.Request) {
	osuID := chi.URLParam(r, "osuId")
	info, err := domain.LookupResource(chi.URLParam(r, "resource"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	params, err := parseParams(r.URL.RawQuery)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := router.students.Get(r.Context(), info.Kind, osuID, params)
	var perr *service.ParamError
	switch {
	case errors.As(err, &perr):
		writeError(w, http.StatusBadRequest, perr.Error())
	case err != nil:
		log.Printf("[HTTP] %s %s: %v", r.Method, r.URL.Path, err)
		writeError(w, http.StatusInternalServerError, "")
	case doc == nil:
		writeError(w, http.StatusNotFound, fmt.Sprintf("no %s record for %s", info.Path, osuID))
	default:
		writeJSON(w, http.StatusOK, doc)
	}
}

// parseParams decodes a raw query string keeping parameter order, which
// url.ParseQuery loses.
func parseParams(raw string) ([]jsonapi.QueryParam, error) {
	if raw == "" {
		return nil, nil
	}
	var params []jsonapi.QueryParam
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(k)
		if err != nil {
			return nil, fmt.Errorf("invalid query parameter %q", k)
		}
		value, err := url.QueryUnescape(v)
		if err != nil {
			return nil, fmt.Errorf("invalid value for query parameter %q", key)
		}
		params = append(params, jsonapi.QueryParam{Key: key, Value: value})
	}
	return params, nil
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Printf("[HTTP] %s %s %d req=%s", r.Method, r.URL.RequestURI(), ww.Status(), chimw.GetReqID(r.Context()))
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("[HTTP] encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, jsonapi.ErrorDocument{Errors: []jsonapi.ErrorObject{{
		Status: fmt.Sprint(status),
		Title:  http.StatusText(status),
		Detail: detail,
	}}})
}
