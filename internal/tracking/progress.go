package tracking

import (
	"math"
	"time"

	"github.com/kofiasare/parceltrack-backend/internal/routecat"
)

const hoursPerDay = 24

// ReconcileInput is the stored state a progress computation reads.
type ReconcileInput struct {
	CreatedAt     time.Time
	TargetDays    int
	AdminLocation string
}

// Progress is the derived delivery state for one shipment at one instant.
type Progress struct {
	ElapsedDays   int
	DaysRemaining int
	TimeIndex     int
	AdminIndex    int
	ChosenIndex   int
	Location      string
}

// Reconcile merges time-based progress with the admin-set checkpoint. The
// shipment advances along the route proportionally to elapsed time, but an
// admin checkpoint further along always wins. Pure: same inputs, same output.
func Reconcile(rec ReconcileInput, cat *routecat.Catalog, now time.Time) Progress {
	elapsed := int(math.Floor(now.Sub(rec.CreatedAt).Hours() / hoursPerDay))
	if elapsed < 0 {
		elapsed = 0
	}

	remaining := rec.TargetDays - elapsed
	if remaining < 0 {
		remaining = 0
	}

	fraction := 1.0
	if rec.TargetDays > 0 {
		fraction = float64(elapsed) / float64(rec.TargetDays)
	}

	n := cat.Len()
	if n < 1 {
		n = 1
	}
	timeIndex := int(math.Floor(fraction * float64(n-1)))
	if timeIndex < 0 {
		timeIndex = 0
	}
	if timeIndex > n-1 {
		timeIndex = n - 1
	}

	adminIndex := 0
	if idx, ok := cat.IndexOf(rec.AdminLocation); ok {
		adminIndex = idx
	}

	chosen := timeIndex
	if adminIndex > chosen {
		chosen = adminIndex
	}

	location := rec.AdminLocation
	if cat.Len() > 0 {
		location = cat.At(chosen).Name
	}

	return Progress{
		ElapsedDays:   elapsed,
		DaysRemaining: remaining,
		TimeIndex:     timeIndex,
		AdminIndex:    adminIndex,
		ChosenIndex:   chosen,
		Location:      location,
	}
}
