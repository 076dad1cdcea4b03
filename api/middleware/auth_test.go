package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kofiasare/parceltrack-backend/pkg/auth"
	"github.com/kofiasare/parceltrack-backend/pkg/config"
)

func authTestJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "parceltrack",
		ExpirationMinutes: 1440,
	}
}

func authTestHandler(t *testing.T, wantUser string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := AdminUserFromContext(r.Context()); got != wantUser {
			t.Errorf("admin user in context = %q, want %q", got, wantUser)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMissingHeaderIs401(t *testing.T) {
	handler := Auth(authTestJWTConfig(), nil)(authTestHandler(t, ""))

	req := httptest.NewRequest(http.MethodGet, "/api/tracking", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] == "" {
		t.Fatal("expected error message in body")
	}
}

func TestAuthInvalidTokenIs403(t *testing.T) {
	handler := Auth(authTestJWTConfig(), nil)(authTestHandler(t, ""))

	req := httptest.NewRequest(http.MethodGet, "/api/tracking", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestAuthExpiredTokenIs403(t *testing.T) {
	cfg := authTestJWTConfig()
	token, err := auth.MintAccessToken(cfg, time.Now().Add(-48*time.Hour), "admin")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	handler := Auth(cfg, nil)(authTestHandler(t, ""))
	req := httptest.NewRequest(http.MethodGet, "/api/tracking", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestAuthValidTokenSeedsContext(t *testing.T) {
	cfg := authTestJWTConfig()
	token, err := auth.MintAccessToken(cfg, time.Now(), "admin")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	handler := Auth(cfg, nil)(authTestHandler(t, "admin"))
	req := httptest.NewRequest(http.MethodGet, "/api/tracking", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestAuthBareTokenWithoutBearerPrefix(t *testing.T) {
	cfg := authTestJWTConfig()
	token, err := auth.MintAccessToken(cfg, time.Now(), "admin")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	handler := Auth(cfg, nil)(authTestHandler(t, "admin"))
	req := httptest.NewRequest(http.MethodGet, "/api/tracking", nil)
	req.Header.Set("Authorization", token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
