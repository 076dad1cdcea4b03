package controllers

import (
	"net/http"

	"github.com/kofiasare/parceltrack-backend/api/responses"
	"github.com/kofiasare/parceltrack-backend/api/validators"
	"github.com/kofiasare/parceltrack-backend/internal/contacts"
	pkgerrors "github.com/kofiasare/parceltrack-backend/pkg/errors"
	"github.com/kofiasare/parceltrack-backend/pkg/logger"
)

// ContactCreate captures a contact-form message.
func ContactCreate(svc contacts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "contact service unavailable"))
			return
		}

		var req contacts.CreateInput
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Create(r.Context(), req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteData(w, "Contact message received successfully", created)
	}
}

// ContactList returns all contact messages, newest first.
func ContactList(svc contacts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "contact service unavailable"))
			return
		}

		rows, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteData(w, "success", rows)
	}
}

type contactStatusRequest struct {
	Status string `json:"status"`
}

// ContactUpdateStatus marks a contact message, defaulting to "read".
func ContactUpdateStatus(svc contacts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "contact service unavailable"))
			return
		}

		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req contactStatusRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		changes, err := svc.UpdateStatus(r.Context(), id, req.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteChanges(w, "status updated", changes)
	}
}
