package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/kofiasare/parceltrack-backend/internal/contacts"
	"github.com/kofiasare/parceltrack-backend/pkg/db/models"
	pkgerrors "github.com/kofiasare/parceltrack-backend/pkg/errors"
)

type stubContactService struct {
	created    *models.Contact
	createErr  error
	listed     []models.Contact
	listErr    error
	changes    int64
	changesErr error

	lastStatus string
}

func (s *stubContactService) Create(_ context.Context, input contacts.CreateInput) (*models.Contact, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.created != nil {
		return s.created, nil
	}
	return &models.Contact{ID: 1, Name: input.Name, Department: "general", Status: "new"}, nil
}

func (s *stubContactService) List(context.Context) ([]models.Contact, error) {
	return s.listed, s.listErr
}

func (s *stubContactService) UpdateStatus(_ context.Context, _ int64, status string) (int64, error) {
	s.lastStatus = status
	return s.changes, s.changesErr
}

func newContactTestRouter(svc contacts.Service) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/contact", ContactCreate(svc, nil))
	r.Get("/api/contacts", ContactList(svc, nil))
	r.Patch("/api/contacts/{id}/status", ContactUpdateStatus(svc, nil))
	return r
}

func TestContactCreateSuccessMessage(t *testing.T) {
	router := newContactTestRouter(&stubContactService{})

	payload := `{"name":"Ama","email":"ama@example.com","subject":"Delay","message":"Where is my parcel?"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message != "Contact message received successfully" {
		t.Fatalf("message = %q", body.Message)
	}
}

func TestContactCreateMissingFields(t *testing.T) {
	svc := &stubContactService{createErr: pkgerrors.New(pkgerrors.CodeValidation, "Missing required fields")}
	router := newContactTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":"Ama"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "Missing required fields" {
		t.Fatalf("error = %q", body["error"])
	}
}

func TestContactUpdateStatusDefaultsHandledByService(t *testing.T) {
	svc := &stubContactService{changes: 1}
	router := newContactTestRouter(svc)

	req := httptest.NewRequest(http.MethodPatch, "/api/contacts/3/status", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if svc.lastStatus != "" {
		t.Fatalf("status passed through = %q, want empty for service default", svc.lastStatus)
	}
	var body struct {
		Message string `json:"message"`
		Changes *int64 `json:"changes"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message != "status updated" || body.Changes == nil || *body.Changes != 1 {
		t.Fatalf("body = %+v", body)
	}
}
