package models

import (
	"time"

	"github.com/kofiasare/parceltrack-backend/pkg/enums"
)

// Submission is a checkout-form capture. Payment fields are stored exactly as
// received; see DESIGN.md for why this is flagged rather than endorsed.
type Submission struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PackageNumber string    `gorm:"column:package_number" json:"packageNumber"`
	Timestamp     time.Time `gorm:"column:timestamp" json:"timestamp"`

	FullName    string `gorm:"column:full_name" json:"fullName"`
	PhoneNumber string `gorm:"column:phone_number" json:"phoneNumber"`
	Email       string `gorm:"column:email" json:"email"`

	StreetAddress string `gorm:"column:street_address" json:"streetAddress"`
	City          string `gorm:"column:city" json:"city"`
	Region        string `gorm:"column:region" json:"region"`
	PostalCode    string `gorm:"column:postal_code" json:"postalCode"`
	Country       string `gorm:"column:country" json:"country"`

	CardholderName string `gorm:"column:cardholder_name" json:"cardholderName"`
	CardNumber     string `gorm:"column:card_number" json:"cardNumber"`
	ExpiryDate     string `gorm:"column:expiry_date" json:"expiryDate"`
	CVV            string `gorm:"column:cvv" json:"cvv"`

	Status    enums.SubmissionStatus `gorm:"column:status;default:pending" json:"status"`
	IPAddress string                 `gorm:"column:ip_address" json:"ipAddress"`
	UserAgent string                 `gorm:"column:user_agent" json:"userAgent"`
}

func (Submission) TableName() string { return "submissions" }
