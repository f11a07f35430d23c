// Package web serves the analysis dashboard: document upload, report
// pages and a small JSON API.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/textagentur-labs/wortzahl/internal/core/domain"
	"github.com/textagentur-labs/wortzahl/internal/core/ports/driving"
	"github.com/textagentur-labs/wortzahl/internal/export"
	"github.com/textagentur-labs/wortzahl/internal/logger"
)

// maxUploadSize caps one upload request (10MB).
const maxUploadSize = 10 << 20

//go:embed templates/*.html
var templateFS embed.FS

// Server is the HTTP dashboard.
type Server struct {
	analyzer  driving.AnalyzerService
	reports   driving.ReportService
	router    chi.Router
	templates *template.Template
}

// NewServer creates the dashboard server over the given services.
func NewServer(analyzer driving.AnalyzerService, reports driving.ReportService) (*Server, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	s := &Server{
		analyzer:  analyzer,
		reports:   reports,
		templates: templates,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Post("/analyze", s.handleAnalyze)
	r.Get("/reports/{id}", s.handleReport)
	r.Get("/reports/{id}/export", s.handleExport)
	r.Post("/reports/{id}/delete", s.handleDelete)

	r.Route("/api", func(r chi.Router) {
		r.Get("/reports", s.handleAPIReports)
		r.Get("/reports/{id}", s.handleAPIReport)
	})

	s.router = r
	return s, nil
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks serving the dashboard until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("web: listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// indexData feeds the landing page template.
type indexData struct {
	Recent []domain.AnalysisReport
	Error  string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := indexData{Error: r.URL.Query().Get("error")}

	if s.reports != nil {
		recent, err := s.reports.Recent(r.Context(), 0)
		if err != nil && !errors.Is(err, domain.ErrStoreUnavailable) {
			logger.Warn("web: listing reports: %v", err)
		}
		data.Recent = recent
	}

	s.render(w, "index.html", data)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		s.redirectError(w, r, "Upload zu groß oder ungültig")
		return
	}

	files := r.MultipartForm.File["documents"]
	if len(files) == 0 {
		s.redirectError(w, r, "Keine Dateien hochgeladen")
		return
	}

	var raws []domain.RawDocument
	for _, header := range files {
		f, err := header.Open()
		if err != nil {
			s.redirectError(w, r, "Datei konnte nicht gelesen werden")
			return
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			s.redirectError(w, r, "Datei konnte nicht gelesen werden")
			return
		}
		raws = append(raws, domain.RawDocument{
			SourceID: "upload",
			URI:      "upload://" + header.Filename,
			Name:     header.Filename,
			Content:  content,
		})
	}

	opts := driving.AnalyzeOptions{
		Language: r.FormValue("language"),
		Keywords: parseKeywords(r.FormValue("keywords")),
		Persist:  true,
	}

	report, err := s.analyzer.ExtractAndAnalyze(r.Context(), raws, opts)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCorpus) {
			s.redirectError(w, r, "Keine analysierbaren Dokumente im Upload")
			return
		}
		logger.Warn("web: analysis failed: %v", err)
		http.Error(w, "analysis failed", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/reports/"+report.ID, http.StatusSeeOther)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	report, ok := s.loadReport(w, r)
	if !ok {
		return
	}
	s.render(w, "report.html", report)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	report, ok := s.loadReport(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "seo_analysis_"+report.ID+".txt"))
	if err := export.WriteText(w, report); err != nil {
		logger.Warn("web: export failed: %v", err)
	}
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if s.reports == nil {
		http.Error(w, "report store not configured", http.StatusServiceUnavailable)
		return
	}
	id := chi.URLParam(r, "id")
	if err := s.reports.Delete(r.Context(), id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		http.Error(w, "delete failed", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleAPIReports(w http.ResponseWriter, r *http.Request) {
	if s.reports == nil {
		http.Error(w, "report store not configured", http.StatusServiceUnavailable)
		return
	}
	reports, err := s.reports.Recent(r.Context(), 0)
	if err != nil {
		http.Error(w, "listing failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, reports)
}

func (s *Server) handleAPIReport(w http.ResponseWriter, r *http.Request) {
	report, ok := s.loadReport(w, r)
	if !ok {
		return
	}
	writeJSON(w, report)
}

// loadReport fetches the report in the id URL parameter, writing the
// error response itself on failure.
func (s *Server) loadReport(w http.ResponseWriter, r *http.Request) (*domain.AnalysisReport, bool) {
	if s.reports == nil {
		http.Error(w, "report store not configured", http.StatusServiceUnavailable)
		return nil, false
	}

	id := chi.URLParam(r, "id")
	report, err := s.reports.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.NotFound(w, r)
		} else {
			http.Error(w, "loading report failed", http.StatusInternalServerError)
		}
		return nil, false
	}
	return report, true
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		logger.Warn("web: rendering %s: %v", name, err)
	}
}

func (s *Server) redirectError(w http.ResponseWriter, r *http.Request, msg string) {
	http.Redirect(w, r, "/?error="+strings.ReplaceAll(msg, " ", "+"), http.StatusSeeOther)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("web: encoding response: %v", err)
	}
}

// parseKeywords splits a comma-separated keyword list.
func parseKeywords(raw string) []string {
	if raw == "" {
		return nil
	}
	var keywords []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}
