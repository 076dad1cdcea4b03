package controllers

import (
	"net/http"

	"github.com/kofiasare/parceltrack-backend/api/responses"
	"github.com/kofiasare/parceltrack-backend/api/validators"
	"github.com/kofiasare/parceltrack-backend/internal/adminauth"
	pkgerrors "github.com/kofiasare/parceltrack-backend/pkg/errors"
	"github.com/kofiasare/parceltrack-backend/pkg/logger"
	"github.com/kofiasare/parceltrack-backend/pkg/types"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminLogin exchanges admin credentials for a bearer token.
func AdminLogin(svc adminauth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var req loginRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, types.LoginResponse{
			AccessToken: token,
			Message:     "Login successful",
		})
	}
}
