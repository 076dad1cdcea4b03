package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/kofiasare/parceltrack-backend/pkg/errors"
)

type stubAuthService struct {
	token string
	err   error

	lastUsername string
	lastPassword string
}

func (s *stubAuthService) Login(_ context.Context, username, password string) (string, error) {
	s.lastUsername = username
	s.lastPassword = password
	return s.token, s.err
}

func TestAdminLoginSuccess(t *testing.T) {
	svc := &stubAuthService{token: "signed.jwt.token"}
	handler := AdminLogin(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"username":"admin","password":"ghanapost2024"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		AccessToken string `json:"accessToken"`
		Message     string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.AccessToken != "signed.jwt.token" {
		t.Fatalf("token = %q", body.AccessToken)
	}
	if body.Message != "Login successful" {
		t.Fatalf("message = %q", body.Message)
	}
	if svc.lastUsername != "admin" || svc.lastPassword != "ghanapost2024" {
		t.Fatalf("credentials = %q / %q", svc.lastUsername, svc.lastPassword)
	}
}

func TestAdminLoginInvalidCredentials(t *testing.T) {
	svc := &stubAuthService{err: pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid credentials")}
	handler := AdminLogin(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"username":"admin","password":"wrong"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "Invalid credentials" {
		t.Fatalf("error = %q", body["error"])
	}
}

func TestAdminLoginMissingFields(t *testing.T) {
	svc := &stubAuthService{err: pkgerrors.New(pkgerrors.CodeValidation, "Username and password required")}
	handler := AdminLogin(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"username":"admin"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAdminLoginMalformedBody(t *testing.T) {
	handler := AdminLogin(&stubAuthService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
