package submissions

import (
	"context"

	"github.com/kofiasare/parceltrack-backend/internal/repo"
	"github.com/kofiasare/parceltrack-backend/pkg/db/models"
	"github.com/kofiasare/parceltrack-backend/pkg/enums"
	"gorm.io/gorm"
)

// Repository handles submission persistence.
type Repository struct {
	repo.Base
}

// NewRepository binds a GORM DB to submission operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// Create persists a new submission row.
func (r *Repository) Create(ctx context.Context, submission *models.Submission) error {
	return r.DB(ctx).Create(submission).Error
}

// List returns every submission, newest first.
func (r *Repository) List(ctx context.Context) ([]models.Submission, error) {
	var rows []models.Submission
	if err := r.DB(ctx).
		Order("timestamp DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID loads a single submission.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Submission, error) {
	var row models.Submission
	if err := r.DB(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// DeleteByID removes a submission and reports affected rows.
func (r *Repository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	res := r.DB(ctx).Delete(&models.Submission{}, id)
	return res.RowsAffected, res.Error
}

// UpdateStatus sets the triage status and reports affected rows.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status enums.SubmissionStatus) (int64, error) {
	res := r.DB(ctx).
		Model(&models.Submission{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}

// Search applies the optional text query and inclusive date bounds, newest
// first.
func (r *Repository) Search(ctx context.Context, filter SearchFilter) ([]models.Submission, error) {
	q := r.DB(ctx).Model(&models.Submission{})

	if filter.Query != "" {
		term := "%" + filter.Query + "%"
		q = q.Where(
			"full_name LIKE ? OR email LIKE ? OR phone_number LIKE ? OR package_number LIKE ?",
			term, term, term, term,
		)
	}
	if filter.StartDate != nil {
		q = q.Where("timestamp >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("timestamp <= ?", *filter.EndDate)
	}

	var rows []models.Submission
	if err := q.Order("timestamp DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
