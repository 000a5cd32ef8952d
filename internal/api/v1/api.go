// Package v1 implements the dashboard REST API and HTML page.
package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vmunix/catalogdash/internal/catalog"
	"github.com/vmunix/catalogdash/internal/dashboard"
	"github.com/vmunix/catalogdash/internal/dataset"
	"github.com/vmunix/catalogdash/internal/filter"
	"github.com/vmunix/catalogdash/internal/render"
	"github.com/vmunix/catalogdash/internal/source"
)

// Server is the v1 API server.
type Server struct {
	deps ServerDeps
	log  *slog.Logger
}

// NewWithDeps creates a new v1 API server with explicit dependencies.
func NewWithDeps(deps ServerDeps) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingDependency, err)
	}
	if deps.FocusCountry == "" {
		deps.FocusCountry = filter.DefaultTarget
	}
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Server{deps: deps, log: log.With("component", "api")}, nil
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Dashboard
	mux.HandleFunc("GET /api/v1/options", s.withDataset(s.getOptions))
	mux.HandleFunc("GET /api/v1/dashboard", s.withDataset(s.getDashboard))
	mux.HandleFunc("GET /api/v1/charts/{file}", s.withDataset(s.getChart))

	// System
	mux.HandleFunc("GET /api/v1/status", s.getStatus)
	mux.HandleFunc("POST /api/v1/refresh", s.refresh)

	// Page
	mux.HandleFunc("GET /{$}", s.withDataset(s.getPage))
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// writeLoadError maps dataset load failures to HTTP responses.
func (s *Server) writeLoadError(w http.ResponseWriter, err error) {
	s.log.Error("dataset load failed", "source", s.deps.Loader.Source(), "error", err)
	switch {
	case errors.Is(err, source.ErrUnavailable),
		errors.Is(err, source.ErrBadStatus),
		errors.Is(err, source.ErrTooLarge):
		writeError(w, http.StatusBadGateway, "SOURCE_UNAVAILABLE", err.Error())
	case errors.Is(err, catalog.ErrMissingColumn),
		errors.Is(err, catalog.ErrEmptyFile),
		errors.Is(err, catalog.ErrMalformed):
		writeError(w, http.StatusInternalServerError, "PARSE_ERROR", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}

// getStatus reports the dataset held in memory. It never fetches the source.
func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{
		Status:  "ok",
		Version: s.deps.Version,
		Source:  s.deps.Loader.Source(),
	}
	ds, err := s.deps.Loader.Current()
	switch {
	case errors.Is(err, dataset.ErrNotLoaded):
		resp.Status = "not_loaded"
		resp.Error = err.Error()
	case err != nil:
		resp.Status = "degraded"
		resp.Error = err.Error()
	default:
		resp.Rows = ds.Len()
		resp.Cached = ds.Cached
		resp.FetchedAt = &ds.FetchedAt
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) refresh(w http.ResponseWriter, r *http.Request) {
	ds, err := s.deps.Loader.Refresh(r.Context())
	if err != nil {
		s.writeLoadError(w, err)
		return
	}
	s.log.Info("dataset refreshed", "rows", ds.Len())
	writeJSON(w, http.StatusOK, statusResponse{
		Status:    "ok",
		Version:   s.deps.Version,
		Source:    ds.Source,
		Rows:      ds.Len(),
		Cached:    ds.Cached,
		FetchedAt: &ds.FetchedAt,
	})
}

func (s *Server) getOptions(w http.ResponseWriter, r *http.Request, ds *catalog.Dataset) {
	opts := filter.Available(ds.Titles)
	writeJSON(w, http.StatusOK, newOptionsResponse(opts, s.deps.FocusCountry))
}

func (s *Server) getDashboard(w http.ResponseWriter, r *http.Request, ds *catalog.Dataset) {
	sel, err := parseSelection(r, s.deps.FocusCountry)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_FILTER", err.Error())
		return
	}

	report := dashboard.Build(ds.Titles, sel)
	writeJSON(w, http.StatusOK, dashboardResponse{
		Source:    ds.Source,
		FetchedAt: ds.FetchedAt,
		Cached:    ds.Cached,
		Selection: newSelectionResponse(sel),
		Total:     report.Total,
		Metrics:   report.Metrics,
		Charts:    report.Charts,
		Warnings:  filter.Unknown(sel, filter.Available(ds.Titles)),
	})
}

func (s *Server) getChart(w http.ResponseWriter, r *http.Request, ds *catalog.Dataset) {
	id, ok := strings.CutSuffix(r.PathValue("file"), ".png")
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "chart not found")
		return
	}

	sel, err := parseSelection(r, s.deps.FocusCountry)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_FILTER", err.Error())
		return
	}

	chart, ok := dashboard.Build(ds.Titles, sel).Chart(id)
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", fmt.Sprintf("chart %q not available for this selection", id))
		return
	}

	var buf bytes.Buffer
	if err := render.PNG(&buf, chart, s.deps.Charts); err != nil {
		if errors.Is(err, render.ErrEmptyChart) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		s.log.Error("chart render failed", "chart", id, "error", err)
		writeError(w, http.StatusInternalServerError, "RENDER_ERROR", err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(buf.Bytes())
}
