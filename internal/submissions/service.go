package submissions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kofiasare/parceltrack-backend/pkg/db/models"
	"github.com/kofiasare/parceltrack-backend/pkg/enums"
	pkgerrors "github.com/kofiasare/parceltrack-backend/pkg/errors"
	"gorm.io/gorm"
)

type submissionRepository interface {
	Create(ctx context.Context, submission *models.Submission) error
	List(ctx context.Context) ([]models.Submission, error)
	FindByID(ctx context.Context, id int64) (*models.Submission, error)
	DeleteByID(ctx context.Context, id int64) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status enums.SubmissionStatus) (int64, error)
	Search(ctx context.Context, filter SearchFilter) ([]models.Submission, error)
}

// Service exposes submission operations.
type Service interface {
	Create(ctx context.Context, input CreateInput, meta RequestMeta) (*models.Submission, error)
	List(ctx context.Context) ([]models.Submission, error)
	GetByID(ctx context.Context, id int64) (*models.Submission, error)
	Delete(ctx context.Context, id int64) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)
	Search(ctx context.Context, filter SearchFilter) ([]models.Submission, error)
	ExportCSV(ctx context.Context) (string, error)
}

type service struct {
	repo submissionRepository
	now  func() time.Time
}

// NewService builds a submission service around the repository.
func NewService(repo submissionRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("submission repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput, meta RequestMeta) (*models.Submission, error) {
	submission := &models.Submission{
		PackageNumber:  input.PackageNumber,
		Timestamp:      s.now(),
		FullName:       input.FullName,
		PhoneNumber:    input.PhoneNumber,
		Email:          input.Email,
		StreetAddress:  input.StreetAddress,
		City:           input.City,
		Region:         input.Region,
		PostalCode:     input.PostalCode,
		Country:        input.Country,
		CardholderName: input.CardholderName,
		CardNumber:     input.CardNumber,
		ExpiryDate:     input.ExpiryDate,
		CVV:            input.CVV,
		Status:         enums.SubmissionStatusPending,
		IPAddress:      meta.IPAddress,
		UserAgent:      meta.UserAgent,
	}
	if err := s.repo.Create(ctx, submission); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create submission")
	}
	return submission, nil
}

func (s *service) List(ctx context.Context) ([]models.Submission, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list submissions")
	}
	return rows, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*models.Submission, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Submission not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load submission")
	}
	return row, nil
}

func (s *service) Delete(ctx context.Context, id int64) (int64, error) {
	changes, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete submission")
	}
	if changes == 0 {
		return 0, pkgerrors.New(pkgerrors.CodeNotFound, "Submission not found")
	}
	return changes, nil
}

func (s *service) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	parsed, err := enums.ParseSubmissionStatus(status)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "Invalid status")
	}
	changes, err := s.repo.UpdateStatus(ctx, id, parsed)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update submission status")
	}
	if changes == 0 {
		return 0, pkgerrors.New(pkgerrors.CodeNotFound, "Submission not found")
	}
	return changes, nil
}

func (s *service) Search(ctx context.Context, filter SearchFilter) ([]models.Submission, error) {
	rows, err := s.repo.Search(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "search submissions")
	}
	return rows, nil
}

func (s *service) ExportCSV(ctx context.Context) (string, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "export submissions")
	}
	csvContent, err := ExportCSV(rows)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode csv")
	}
	return csvContent, nil
}
