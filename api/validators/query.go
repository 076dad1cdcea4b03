package validators

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	pkgerrors "github.com/kofiasare/parceltrack-backend/pkg/errors"
)

// date-only bounds from the dashboard arrive as YYYY-MM-DD
var queryDateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseIDParam extracts a positive integer id from the route.
func ParseIDParam(r *http.Request, key string) (int64, error) {
	raw := strings.TrimSpace(chi.URLParam(r, key))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "Invalid id")
	}
	return id, nil
}

// ParseQueryDate parses an optional date query parameter. Missing values
// return nil without error.
func ParseQueryDate(r *http.Request, key string) (*time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	for _, layout := range queryDateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return &parsed, nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid date for "+key)
}
