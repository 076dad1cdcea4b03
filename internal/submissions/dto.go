package submissions

import "time"

// CreateInput is the public checkout-form payload. Nothing is required; the
// dashboard triages whatever arrives.
type CreateInput struct {
	PackageNumber  string `json:"packageNumber"`
	FullName       string `json:"fullName"`
	PhoneNumber    string `json:"phoneNumber"`
	Email          string `json:"email"`
	StreetAddress  string `json:"streetAddress"`
	City           string `json:"city"`
	Region         string `json:"region"`
	PostalCode     string `json:"postalCode"`
	Country        string `json:"country"`
	CardholderName string `json:"cardholderName"`
	CardNumber     string `json:"cardNumber"`
	ExpiryDate     string `json:"expiryDate"`
	CVV            string `json:"cvv"`
}

// RequestMeta carries the connection metadata recorded with each submission.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// SearchFilter narrows the admin submission search. Zero values mean "no
// constraint"; date bounds are inclusive.
type SearchFilter struct {
	Query     string
	StartDate *time.Time
	EndDate   *time.Time
}
