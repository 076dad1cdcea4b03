package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/kofiasare/parceltrack-backend/internal/submissions"
	"github.com/kofiasare/parceltrack-backend/pkg/db/models"
	pkgerrors "github.com/kofiasare/parceltrack-backend/pkg/errors"
)

type stubSubmissionService struct {
	created    *models.Submission
	createErr  error
	listed     []models.Submission
	listErr    error
	found      *models.Submission
	findErr    error
	changes    int64
	changesErr error
	searched   []models.Submission
	searchErr  error
	csv        string
	csvErr     error

	lastMeta   submissions.RequestMeta
	lastStatus string
	lastFilter submissions.SearchFilter
}

func (s *stubSubmissionService) Create(_ context.Context, input submissions.CreateInput, meta submissions.RequestMeta) (*models.Submission, error) {
	s.lastMeta = meta
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.created != nil {
		return s.created, nil
	}
	return &models.Submission{ID: 1, FullName: input.FullName}, nil
}

func (s *stubSubmissionService) List(context.Context) ([]models.Submission, error) {
	return s.listed, s.listErr
}

func (s *stubSubmissionService) GetByID(context.Context, int64) (*models.Submission, error) {
	return s.found, s.findErr
}

func (s *stubSubmissionService) Delete(context.Context, int64) (int64, error) {
	return s.changes, s.changesErr
}

func (s *stubSubmissionService) UpdateStatus(_ context.Context, _ int64, status string) (int64, error) {
	s.lastStatus = status
	return s.changes, s.changesErr
}

func (s *stubSubmissionService) Search(_ context.Context, filter submissions.SearchFilter) ([]models.Submission, error) {
	s.lastFilter = filter
	return s.searched, s.searchErr
}

func (s *stubSubmissionService) ExportCSV(context.Context) (string, error) {
	return s.csv, s.csvErr
}

func newSubmissionTestRouter(svc submissions.Service) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/submissions", SubmissionCreate(svc, nil))
	r.Get("/api/submissions", SubmissionList(svc, nil))
	r.Get("/api/submissions/search", SubmissionSearch(svc, nil))
	r.Get("/api/submissions/export/csv", SubmissionExportCSV(svc, nil))
	r.Get("/api/submissions/{id}", SubmissionGet(svc, nil))
	r.Delete("/api/submissions/{id}", SubmissionDelete(svc, nil))
	r.Patch("/api/submissions/{id}/status", SubmissionUpdateStatus(svc, nil))
	return r
}

func TestSubmissionCreateCapturesConnectionMeta(t *testing.T) {
	svc := &stubSubmissionService{}
	router := newSubmissionTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/submissions", strings.NewReader(`{"fullName":"Ama Mensah"}`))
	req.RemoteAddr = "203.0.113.9:4431"
	req.Header.Set("User-Agent", "curl/8.0")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastMeta.IPAddress != "203.0.113.9" {
		t.Fatalf("ip = %q", svc.lastMeta.IPAddress)
	}
	if svc.lastMeta.UserAgent != "curl/8.0" {
		t.Fatalf("user agent = %q", svc.lastMeta.UserAgent)
	}
}

func TestSubmissionCreateUsesForwardedFor(t *testing.T) {
	svc := &stubSubmissionService{}
	router := newSubmissionTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/submissions", strings.NewReader(`{}`))
	req.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if svc.lastMeta.IPAddress != "198.51.100.7" {
		t.Fatalf("ip = %q, want first forwarded address", svc.lastMeta.IPAddress)
	}
}

func TestSubmissionUpdateStatusInvalidValue(t *testing.T) {
	svc := &stubSubmissionService{changesErr: pkgerrors.New(pkgerrors.CodeValidation, "Invalid status")}
	router := newSubmissionTestRouter(svc)

	req := httptest.NewRequest(http.MethodPatch, "/api/submissions/1/status", strings.NewReader(`{"status":"archived"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "Invalid status" {
		t.Fatalf("error = %q", body["error"])
	}
}

func TestSubmissionSearchParsesDates(t *testing.T) {
	svc := &stubSubmissionService{}
	router := newSubmissionTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/submissions/search?query=mensah&startDate=2025-01-01&endDate=2025-06-30", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if svc.lastFilter.Query != "mensah" {
		t.Fatalf("query = %q", svc.lastFilter.Query)
	}
	if svc.lastFilter.StartDate == nil || svc.lastFilter.EndDate == nil {
		t.Fatalf("filter dates = %+v", svc.lastFilter)
	}
}

func TestSubmissionSearchRejectsBadDate(t *testing.T) {
	router := newSubmissionTestRouter(&stubSubmissionService{})

	req := httptest.NewRequest(http.MethodGet, "/api/submissions/search?startDate=notadate", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSubmissionExportCSVEmptyAnswersJSON(t *testing.T) {
	router := newSubmissionTestRouter(&stubSubmissionService{csv: ""})

	req := httptest.NewRequest(http.MethodGet, "/api/submissions/export/csv", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("content type = %q", ct)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v, ok := body["csv"]; !ok || v != "" {
		t.Fatalf("body = %v", body)
	}
}

func TestSubmissionExportCSVDownload(t *testing.T) {
	router := newSubmissionTestRouter(&stubSubmissionService{csv: "id,fullName\n1,Ama\n"})

	req := httptest.NewRequest(http.MethodGet, "/api/submissions/export/csv", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("content type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != "attachment; filename=submissions.csv" {
		t.Fatalf("content disposition = %q", cd)
	}
	if !strings.Contains(rec.Body.String(), "Ama") {
		t.Fatalf("body = %q", rec.Body.String())
	}
}
