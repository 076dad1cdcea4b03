package submissions

import (
	"encoding/csv"
	"strconv"
	"strings"
	"time"

	"github.com/kofiasare/parceltrack-backend/pkg/db/models"
)

var csvHeader = []string{
	"id", "packageNumber", "timestamp", "fullName", "phoneNumber", "email",
	"streetAddress", "city", "region", "postalCode", "country",
	"cardholderName", "cardNumber", "expiryDate", "cvv",
	"status", "ipAddress", "userAgent",
}

// ExportCSV renders submissions as RFC 4180 CSV with a header row. An empty
// slice exports as the empty string so the dashboard can show "nothing to
// export" instead of a bare header.
func ExportCSV(rows []models.Submission) (string, error) {
	if len(rows) == 0 {
		return "", nil
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}
	for _, row := range rows {
		record := []string{
			strconv.FormatInt(row.ID, 10),
			row.PackageNumber,
			row.Timestamp.Format(time.RFC3339),
			row.FullName,
			row.PhoneNumber,
			row.Email,
			row.StreetAddress,
			row.City,
			row.Region,
			row.PostalCode,
			row.Country,
			row.CardholderName,
			row.CardNumber,
			row.ExpiryDate,
			row.CVV,
			row.Status.String(),
			row.IPAddress,
			row.UserAgent,
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
