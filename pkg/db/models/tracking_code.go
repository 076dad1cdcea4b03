package models

import "time"

// TrackingCode is a shipment being tracked. The customer_* columns stay empty
// until the public customer-details endpoint fills them in; later writes
// overwrite earlier ones.
type TrackingCode struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	TrackingCode    string    `gorm:"column:tracking_code;uniqueIndex;not null" json:"trackingCode"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"createdAt"`
	CurrentLocation string    `gorm:"column:current_location" json:"currentLocation"`
	CurrentStatus   string    `gorm:"column:current_status" json:"currentStatus"`
	DaysToDelivery  int       `gorm:"column:days_to_delivery;default:60" json:"daysToDelivery"`
	Description     string    `gorm:"column:description" json:"description"`
	Status          string    `gorm:"column:status;default:active" json:"status"`

	CustomerFullName   *string `gorm:"column:customer_full_name" json:"customerFullName,omitempty"`
	CustomerPhone      *string `gorm:"column:customer_phone" json:"customerPhone,omitempty"`
	CustomerEmail      *string `gorm:"column:customer_email" json:"customerEmail,omitempty"`
	CustomerAddress    *string `gorm:"column:customer_address" json:"customerAddress,omitempty"`
	CustomerCity       *string `gorm:"column:customer_city" json:"customerCity,omitempty"`
	CustomerRegion     *string `gorm:"column:customer_region" json:"customerRegion,omitempty"`
	CustomerPostalCode *string `gorm:"column:customer_postal_code" json:"customerPostalCode,omitempty"`
	CustomerCountry    *string `gorm:"column:customer_country" json:"customerCountry,omitempty"`
}

func (TrackingCode) TableName() string { return "tracking_codes" }
