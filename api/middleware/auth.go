package middleware

import (
	"net/http"
	"strings"

	"github.com/kofiasare/parceltrack-backend/api/responses"
	pkgAuth "github.com/kofiasare/parceltrack-backend/pkg/auth"
	"github.com/kofiasare/parceltrack-backend/pkg/config"
	pkgerrors "github.com/kofiasare/parceltrack-backend/pkg/errors"
	"github.com/kofiasare/parceltrack-backend/pkg/logger"
)

// Auth validates a bearer token and seeds the request context with the admin
// username. A missing header is 401; a present but unverifiable token is 403.
func Auth(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgAuth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeForbidden, err, "invalid token"))
				return
			}

			ctx := WithAdminUser(r.Context(), claims.Username)
			if logg != nil {
				ctx = logg.WithAdminUser(ctx, claims.Username)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
