// Package dashboard serves a read-only web view of the sprint analytics.
package dashboard

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/quantamisecode-hub/groona/pkg/application"
	"github.com/quantamisecode-hub/groona/pkg/domain/analytics"
	"github.com/quantamisecode-hub/groona/pkg/domain/tracker"
)

//go:embed templates/*
var templatesFS embed.FS

// ReportProvider computes the combined report on demand. The engine is
// cheap and pure, so every request recomputes from the current snapshot
// rather than serving a stale cache.
type ReportProvider interface {
	BuildReport(sprintID tracker.EntityID, asOf time.Time) (*application.SprintReport, error)
}

// Server is the dashboard HTTP server.
type Server struct {
	addr     string
	provider ReportProvider
	server   *http.Server
	tmpl     *template.Template
	logger   *slog.Logger
}

// NewServer creates a dashboard server. logger may be nil.
func NewServer(addr string, provider ReportProvider, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	funcMap := template.FuncMap{
		"pct":           func(v float64) string { return fmt.Sprintf("%.0f%%", v) },
		"f1":            func(v float64) string { return fmt.Sprintf("%.1f", v) },
		"workloadClass": workloadClass,
	}
	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Server{
		addr:     addr,
		provider: provider,
		tmpl:     tmpl,
		logger:   logger,
	}, nil
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleIndex)
	mux.HandleFunc("GET /api/report", s.handleAPIReport)
	mux.HandleFunc("GET /api/burndown", s.handleAPIBurndown)
	mux.HandleFunc("GET /api/velocity", s.handleAPIVelocity)
	mux.HandleFunc("GET /api/capacity", s.handleAPICapacity)

	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	s.logger.Info("dashboard listening", "addr", s.addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// PageData holds data for template rendering.
type PageData struct {
	Title  string
	Report *application.SprintReport
	Error  string
}

func (s *Server) report(r *http.Request) (*application.SprintReport, error) {
	sprintID := tracker.EntityID(r.URL.Query().Get("sprint"))
	return s.provider.BuildReport(sprintID, time.Time{})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := PageData{Title: "Sprint Analytics"}
	report, err := s.report(r)
	if err != nil {
		data.Error = err.Error()
	} else {
		data.Report = report
	}
	s.render(w, "index.html", data)
}

func (s *Server) handleAPIReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.report(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, report)
}

func (s *Server) handleAPIBurndown(w http.ResponseWriter, r *http.Request) {
	report, err := s.report(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, report.Burndown)
}

func (s *Server) handleAPIVelocity(w http.ResponseWriter, r *http.Request) {
	report, err := s.report(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, report.Velocity)
}

func (s *Server) handleAPICapacity(w http.ResponseWriter, r *http.Request) {
	report, err := s.report(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, report.Capacity)
}

// workloadClass maps a workload level to a CSS badge class.
func workloadClass(level analytics.WorkloadLevel) string {
	switch level {
	case analytics.WorkloadOverloaded:
		return "workload-overloaded"
	case analytics.WorkloadHigh:
		return "workload-high"
	case analytics.WorkloadOptimal:
		return "workload-optimal"
	case analytics.WorkloadUnderutilized:
		return "workload-underutilized"
	default:
		return "workload-unknown"
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) render(w http.ResponseWriter, name string, data PageData) {
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error("template render failed", "template", name, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
