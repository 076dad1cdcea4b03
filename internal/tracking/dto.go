package tracking

import "github.com/kofiasare/parceltrack-backend/pkg/db/models"

// GenerateInput is the admin request for a new tracking code.
type GenerateInput struct {
	Description    string `json:"description"`
	Location       string `json:"location"`
	DaysToDelivery *int   `json:"daysToDelivery"`
}

// GeneratedDTO is the payload returned after a code is minted.
type GeneratedDTO struct {
	ID              int64  `json:"id"`
	TrackingCode    string `json:"trackingCode"`
	CurrentLocation string `json:"currentLocation"`
	CurrentStatus   string `json:"currentStatus"`
	DaysToDelivery  int    `json:"daysToDelivery"`
}

// TrackedPackageDTO is the public lookup payload: the stored record plus the
// progress fields derived from elapsed time and the route.
type TrackedPackageDTO struct {
	models.TrackingCode
	ComputedDaysRemaining int    `json:"computedDaysRemaining"`
	ComputedIndex         int    `json:"computedIndex"`
	ComputedLocation      string `json:"computedLocation"`
}

// CustomerInput carries the delivery details a customer submits for a code.
type CustomerInput struct {
	FullName      string `json:"fullName"`
	PhoneNumber   string `json:"phoneNumber"`
	Email         string `json:"email"`
	StreetAddress string `json:"streetAddress"`
	City          string `json:"city"`
	Region        string `json:"region"`
	PostalCode    string `json:"postalCode"`
	Country       string `json:"country"`
}

// CheckpointUpdate is a partial admin update. Nil fields are left untouched.
type CheckpointUpdate struct {
	CurrentLocation *string `json:"currentLocation"`
	CurrentStatus   *string `json:"currentStatus"`
	DaysToDelivery  *int    `json:"daysToDelivery"`
}
