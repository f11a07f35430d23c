package web

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textagentur-labs/wortzahl/internal/adapters/driven/storage/memory"
	"github.com/textagentur-labs/wortzahl/internal/core/domain"
	"github.com/textagentur-labs/wortzahl/internal/core/ports/driven"
	"github.com/textagentur-labs/wortzahl/internal/core/services"
	"github.com/textagentur-labs/wortzahl/internal/extractors/plaintext"
	"github.com/textagentur-labs/wortzahl/internal/textkit"
)

func newTestServer(t *testing.T) (*Server, *memory.ReportStore) {
	t.Helper()
	store := memory.NewReportStore()
	engine := textkit.NewEngine(textkit.NewResources(""))
	analyzer := services.NewAnalyzerService(engine, []driven.Extractor{plaintext.New()}, store)
	reports := services.NewReportService(store)

	server, err := NewServer(analyzer, reports)
	require.NoError(t, err)
	return server, store
}

// uploadRequest builds a multipart POST to /analyze.
func uploadRequest(t *testing.T, files map[string]string, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, content := range files {
		part, err := writer.CreateFormFile("documents", name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestIndex(t *testing.T) {
	server, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "wortzahl")
	assert.Contains(t, rec.Body.String(), "Noch keine Analysen gespeichert.")
}

func TestAnalyze_UploadFlow(t *testing.T) {
	server, store := newTestServer(t)

	req := uploadRequest(t,
		map[string]string{"artikel.txt": "Die Suchmaschine findet gute Inhalte. Gute Inhalte gewinnen."},
		map[string]string{"language": "german", "keywords": "inhalte, seo"})
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	location := rec.Header().Get("Location")
	require.True(t, strings.HasPrefix(location, "/reports/"), location)

	// Report was persisted
	id := strings.TrimPrefix(location, "/reports/")
	stored, err := store.Get(req.Context(), id)
	require.NoError(t, err)
	assert.Equal(t, "german", stored.Language)
	require.Len(t, stored.Documents, 1)
	assert.Contains(t, stored.Documents[0].KeywordDensity, "inhalte")

	// Report page renders
	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, location, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "artikel.txt")
	assert.Contains(t, rec.Body.String(), "Flesch Reading Ease")
}

func TestAnalyze_NoFiles(t *testing.T) {
	server, _ := newTestServer(t)

	req := uploadRequest(t, nil, map[string]string{"language": "german"})
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "error=")
}

func TestAnalyze_UnsupportedFilesOnly(t *testing.T) {
	server, _ := newTestServer(t)

	req := uploadRequest(t, map[string]string{"bild.png": "binary"}, nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "error=")
}

func TestReport_NotFound(t *testing.T) {
	server, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/fehlt", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExport(t *testing.T) {
	server, store := newTestServer(t)
	require.NoError(t, store.Save(t.Context(), &domain.AnalysisReport{
		ID:       "r1",
		Language: domain.LanguageGerman,
		Documents: []domain.DocumentReport{
			{Name: "artikel.docx", Readability: domain.ReadabilityResult{Label: domain.ComplexityStandard}},
		},
	}))

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/r1/export", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, rec.Body.String(), "SEO Analyse Ergebnisse")
	assert.Contains(t, rec.Body.String(), "Dokument: artikel.docx")
}

func TestDelete(t *testing.T) {
	server, store := newTestServer(t)
	require.NoError(t, store.Save(t.Context(), &domain.AnalysisReport{ID: "r1"}))

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reports/r1/delete", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	_, err := store.Get(t.Context(), "r1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAPIReports(t *testing.T) {
	server, store := newTestServer(t)
	require.NoError(t, store.Save(t.Context(), &domain.AnalysisReport{
		ID:       "r1",
		Language: domain.LanguageGerman,
	}))

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reports", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var reports []domain.AnalysisReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "r1", reports[0].ID)
}

func TestAPIReport(t *testing.T) {
	server, store := newTestServer(t)
	require.NoError(t, store.Save(t.Context(), &domain.AnalysisReport{
		ID:       "r1",
		Language: domain.LanguageGerman,
		TFIDF:    []domain.ScoreEntry{{Term: "inhalt", Score: 0.5}},
	}))

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reports/r1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"tf_idf"`)
	assert.Contains(t, string(body), `"flesch_reading_ease"`)
}
