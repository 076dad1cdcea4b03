package contacts

import (
	"context"

	"github.com/kofiasare/parceltrack-backend/internal/repo"
	"github.com/kofiasare/parceltrack-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository handles contact message persistence.
type Repository struct {
	repo.Base
}

// NewRepository binds a GORM DB to contact operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// Create persists a new contact row.
func (r *Repository) Create(ctx context.Context, contact *models.Contact) error {
	return r.DB(ctx).Create(contact).Error
}

// List returns every contact message, newest first.
func (r *Repository) List(ctx context.Context) ([]models.Contact, error) {
	var rows []models.Contact
	if err := r.DB(ctx).
		Order("timestamp DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateStatus sets the triage status and reports affected rows.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	res := r.DB(ctx).
		Model(&models.Contact{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}
