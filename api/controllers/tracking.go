package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/kofiasare/parceltrack-backend/api/responses"
	"github.com/kofiasare/parceltrack-backend/api/validators"
	"github.com/kofiasare/parceltrack-backend/internal/routecat"
	"github.com/kofiasare/parceltrack-backend/internal/tracking"
	pkgerrors "github.com/kofiasare/parceltrack-backend/pkg/errors"
	"github.com/kofiasare/parceltrack-backend/pkg/logger"
)

// TrackingRoutes returns the fixed shipping route, in order.
func TrackingRoutes(catalog *routecat.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if catalog == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "route catalog unavailable"))
			return
		}
		responses.WriteData(w, "success", catalog.Waypoints())
	}
}

// TrackingGenerate mints a new tracking code.
func TrackingGenerate(svc tracking.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "tracking service unavailable"))
			return
		}

		var req tracking.GenerateInput
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Generate(r.Context(), req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteData(w, "Tracking code generated successfully", dto)
	}
}

// TrackingLookup resolves a code to its record plus computed progress.
func TrackingLookup(svc tracking.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "tracking service unavailable"))
			return
		}

		code := strings.TrimSpace(chi.URLParam(r, "code"))
		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithTrackingCode(ctx, code)
		}

		dto, err := svc.GetByCode(ctx, code)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteData(w, "success", dto)
	}
}

// TrackingAttachCustomer saves customer details onto a code.
func TrackingAttachCustomer(svc tracking.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "tracking service unavailable"))
			return
		}

		code := strings.TrimSpace(chi.URLParam(r, "code"))

		var req tracking.CustomerInput
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		changes, err := svc.AttachCustomer(r.Context(), code, req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteChanges(w, "Customer details saved successfully", changes)
	}
}

// TrackingList returns all tracking codes, newest first.
func TrackingList(svc tracking.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "tracking service unavailable"))
			return
		}

		records, err := svc.ListAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteData(w, "success", records)
	}
}

// TrackingUpdateLocation applies a partial checkpoint update.
func TrackingUpdateLocation(svc tracking.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "tracking service unavailable"))
			return
		}

		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req tracking.CheckpointUpdate
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		changes, err := svc.UpdateCheckpoint(r.Context(), id, req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteChanges(w, "Tracking updated successfully", changes)
	}
}

// TrackingDelete removes a tracking code.
func TrackingDelete(svc tracking.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "tracking service unavailable"))
			return
		}

		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteChanges(w, "Tracking code deleted", 1)
	}
}
