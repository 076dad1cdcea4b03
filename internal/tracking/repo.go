package tracking

import (
	"context"

	"github.com/kofiasare/parceltrack-backend/internal/repo"
	"github.com/kofiasare/parceltrack-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository handles tracking code persistence.
type Repository struct {
	repo.Base
}

// NewRepository binds a GORM DB to tracking code operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// Create persists a new tracking code row.
func (r *Repository) Create(ctx context.Context, record *models.TrackingCode) error {
	return r.DB(ctx).Create(record).Error
}

// FindByCode loads a tracking record by its public code.
func (r *Repository) FindByCode(ctx context.Context, code string) (*models.TrackingCode, error) {
	var record models.TrackingCode
	if err := r.DB(ctx).
		Where("tracking_code = ?", code).
		First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ListAll returns every tracking record, newest first.
func (r *Repository) ListAll(ctx context.Context) ([]models.TrackingCode, error) {
	var records []models.TrackingCode
	if err := r.DB(ctx).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// UpdateFields applies a partial column update by id and reports affected rows.
func (r *Repository) UpdateFields(ctx context.Context, id int64, fields map[string]any) (int64, error) {
	res := r.DB(ctx).
		Model(&models.TrackingCode{}).
		Where("id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}

// UpdateCustomerByCode overwrites the customer columns for the given code and
// reports affected rows.
func (r *Repository) UpdateCustomerByCode(ctx context.Context, code string, input CustomerInput) (int64, error) {
	res := r.DB(ctx).
		Model(&models.TrackingCode{}).
		Where("tracking_code = ?", code).
		Updates(map[string]any{
			"customer_full_name":   input.FullName,
			"customer_phone":       input.PhoneNumber,
			"customer_email":       input.Email,
			"customer_address":     input.StreetAddress,
			"customer_city":        input.City,
			"customer_region":      input.Region,
			"customer_postal_code": input.PostalCode,
			"customer_country":     input.Country,
		})
	return res.RowsAffected, res.Error
}

// DeleteByID removes a tracking record and reports affected rows.
func (r *Repository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	res := r.DB(ctx).Delete(&models.TrackingCode{}, id)
	return res.RowsAffected, res.Error
}
