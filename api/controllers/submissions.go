package controllers

import (
	"net/http"
	"strings"

	"github.com/kofiasare/parceltrack-backend/api/responses"
	"github.com/kofiasare/parceltrack-backend/api/validators"
	"github.com/kofiasare/parceltrack-backend/internal/submissions"
	pkgerrors "github.com/kofiasare/parceltrack-backend/pkg/errors"
	"github.com/kofiasare/parceltrack-backend/pkg/logger"
)

// SubmissionCreate captures a checkout submission along with the caller's
// connection metadata.
func SubmissionCreate(svc submissions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "submission service unavailable"))
			return
		}

		var req submissions.CreateInput
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Create(r.Context(), req, submissions.RequestMeta{
			IPAddress: remoteIP(r),
			UserAgent: r.UserAgent(),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteData(w, "success", created)
	}
}

// SubmissionList returns all submissions, newest first.
func SubmissionList(svc submissions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "submission service unavailable"))
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

// SubmissionGet returns a single submission.
func SubmissionGet(svc submissions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "submission service unavailable"))
			return
		}

		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		row, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteData(w, "success", row)
	}
}

// SubmissionDelete removes a submission.
func SubmissionDelete(svc submissions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "submission service unavailable"))
			return
		}

		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		changes, err := svc.Delete(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteChanges(w, "deleted", changes)
	}
}

type submissionStatusRequest struct {
	Status string `json:"status"`
}

// SubmissionUpdateStatus moves a submission through the triage states.
func SubmissionUpdateStatus(svc submissions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "submission service unavailable"))
			return
		}

		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req submissionStatusRequest
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

// SubmissionSearch filters submissions by text query and date bounds.
func SubmissionSearch(svc submissions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "submission service unavailable"))
			return
		}

		start, err := validators.ParseQueryDate(r, "startDate")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		end, err := validators.ParseQueryDate(r, "endDate")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := svc.Search(r.Context(), submissions.SearchFilter{
			Query:     strings.TrimSpace(r.URL.Query().Get("query")),
			StartDate: start,
			EndDate:   end,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteData(w, "success", rows)
	}
}

// SubmissionExportCSV streams the full submission table as a CSV download.
// An empty table answers with JSON {"csv": ""} instead of an empty file.
func SubmissionExportCSV(svc submissions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "submission service unavailable"))
			return
		}

		csvContent, err := svc.ExportCSV(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if csvContent == "" {
			responses.WriteJSON(w, map[string]string{"csv": ""})
			return
		}

		w.Header().Set("Content-Disposition", "attachment; filename=submissions.csv")
		responses.WriteRaw(w, "text/csv", []byte(csvContent))
	}
}

func remoteIP(r *http.Request) string {
	if header := r.Header.Get("X-Forwarded-For"); header != "" {
		for _, part := range strings.Split(header, ",") {
			if ip := strings.TrimSpace(part); ip != "" {
				return ip
			}
		}
	}
	host := r.RemoteAddr
	if idx := strings.LastIndex(host, ":"); idx > 0 && !strings.HasSuffix(host, "]") {
		host = host[:idx]
	}
	return strings.Trim(host, "[]")
}
