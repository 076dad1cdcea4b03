package models

import "time"

// Contact is a message from the public contact form.
type Contact struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Timestamp  time.Time `gorm:"column:timestamp" json:"timestamp"`
	Name       string    `gorm:"column:name" json:"name"`
	Email      string    `gorm:"column:email" json:"email"`
	Phone      *string   `gorm:"column:phone" json:"phone,omitempty"`
	Subject    string    `gorm:"column:subject" json:"subject"`
	Message    string    `gorm:"column:message" json:"message"`
	Department string    `gorm:"column:department;default:general" json:"department"`
	Status     string    `gorm:"column:status;default:new" json:"status"`
}

func (Contact) TableName() string { return "contacts" }
