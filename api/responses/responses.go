package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	pkgerrors "github.com/kofiasare/parceltrack-backend/pkg/errors"
	"github.com/kofiasare/parceltrack-backend/pkg/logger"
	"github.com/kofiasare/parceltrack-backend/pkg/types"
)

// WriteData writes the standard success envelope with a payload.
func WriteData(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, types.Envelope{Message: message, Data: data})
}

// WriteChanges writes the success envelope mutation endpoints use, carrying
// the affected-row count instead of a payload.
func WriteChanges(w http.ResponseWriter, message string, changes int64) {
	writeJSON(w, http.StatusOK, types.Envelope{Message: message, Changes: &changes})
}

// WriteRaw writes a non-JSON body, used by the CSV download.
func WriteRaw(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Printf(`{"level":"error","msg":"failed to write response","err":"%v"}`, err)
	}
}

// WriteJSON writes an arbitrary payload, for responses outside the envelope
// (the login token, the empty CSV export).
func WriteJSON(w http.ResponseWriter, payload any) {
	writeJSON(w, http.StatusOK, payload)
}

// WriteError maps a typed error onto the wire format `{"error": message}`,
// logging the full chain. Dependency errors expose the underlying driver
// message to the caller.
func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	msg := meta.PublicMessage
	if meta.MessageAllowed {
		if m := typed.Message(); m != "" {
			msg = m
		}
	}
	if meta.CauseExposed {
		if cause := typed.Unwrap(); cause != nil {
			msg = cause.Error()
		}
	}

	if logg != nil {
		dump := pkgerrors.Dump(err)
		ctx = logg.WithFields(ctx, map[string]any{
			"error":         dump.TopMessage,
			"error_code":    dump.Code,
			"error_chain":   dump.Chain,
			"pg_code":       dump.PGCode,
			"pg_detail":     dump.PGDetail,
			"pg_message":    dump.PGMessage,
			"pg_table":      dump.PGTable,
			"pg_constraint": dump.PGConstraint,
		})
		logg.Error(ctx, "request.error", err)
	}

	writeJSON(w, meta.HTTPStatus, types.ErrorEnvelope{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}
