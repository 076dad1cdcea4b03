package tracking

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/kofiasare/parceltrack-backend/internal/routecat"
	"github.com/kofiasare/parceltrack-backend/pkg/config"
	"github.com/kofiasare/parceltrack-backend/pkg/db/models"
	pkgerrors "github.com/kofiasare/parceltrack-backend/pkg/errors"
	"gorm.io/gorm"
)

const (
	codePrefix          = "GH-PKG"
	maxGenerateAttempts = 5
)

var errNoFields = pkgerrors.New(pkgerrors.CodeValidation, "no fields to update")

type trackingRepository interface {
	Create(ctx context.Context, record *models.TrackingCode) error
	FindByCode(ctx context.Context, code string) (*models.TrackingCode, error)
	ListAll(ctx context.Context) ([]models.TrackingCode, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) (int64, error)
	UpdateCustomerByCode(ctx context.Context, code string, input CustomerInput) (int64, error)
	DeleteByID(ctx context.Context, id int64) (int64, error)
}

// Service exposes tracking code operations.
type Service interface {
	Generate(ctx context.Context, input GenerateInput) (*GeneratedDTO, error)
	GetByCode(ctx context.Context, code string) (*TrackedPackageDTO, error)
	ListAll(ctx context.Context) ([]models.TrackingCode, error)
	UpdateCheckpoint(ctx context.Context, id int64, update CheckpointUpdate) (int64, error)
	AttachCustomer(ctx context.Context, code string, input CustomerInput) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo    trackingRepository
	catalog *routecat.Catalog
	cfg     config.TrackingConfig
	now     func() time.Time
}

// NewService builds a tracking service around the repository and the loaded
// route catalog.
func NewService(repo trackingRepository, catalog *routecat.Catalog, cfg config.TrackingConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("tracking repository required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("route catalog required")
	}
	return &service{
		repo:    repo,
		catalog: catalog,
		cfg:     cfg,
		now:     time.Now,
	}, nil
}

func (s *service) Generate(ctx context.Context, input GenerateInput) (*GeneratedDTO, error) {
	location := input.Location
	if location == "" {
		location = s.cfg.DefaultLocation
	}
	days := s.cfg.DefaultTargetDays
	if input.DaysToDelivery != nil {
		days = *input.DaysToDelivery
	}
	if days < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "daysToDelivery must not be negative")
	}

	year := s.now().Year()
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		code, err := mintCode(year)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint tracking code")
		}

		record := &models.TrackingCode{
			TrackingCode:    code,
			CreatedAt:       s.now(),
			CurrentLocation: location,
			CurrentStatus:   s.cfg.DefaultStatus,
			DaysToDelivery:  days,
			Description:     input.Description,
			Status:          "active",
		}
		if err := s.repo.Create(ctx, record); err != nil {
			if pkgerrors.IsUniqueViolation(err) {
				continue
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create tracking code")
		}
		return &GeneratedDTO{
			ID:              record.ID,
			TrackingCode:    record.TrackingCode,
			CurrentLocation: record.CurrentLocation,
			CurrentStatus:   record.CurrentStatus,
			DaysToDelivery:  record.DaysToDelivery,
		}, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeConflict, "could not generate a unique tracking code")
}

func (s *service) GetByCode(ctx context.Context, code string) (*TrackedPackageDTO, error) {
	record, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Tracking code not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load tracking code")
	}

	progress := Reconcile(ReconcileInput{
		CreatedAt:     record.CreatedAt,
		TargetDays:    record.DaysToDelivery,
		AdminLocation: record.CurrentLocation,
	}, s.catalog, s.now())

	return &TrackedPackageDTO{
		TrackingCode:          *record,
		ComputedDaysRemaining: progress.DaysRemaining,
		ComputedIndex:         progress.ChosenIndex,
		ComputedLocation:      progress.Location,
	}, nil
}

func (s *service) ListAll(ctx context.Context) ([]models.TrackingCode, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list tracking codes")
	}
	return records, nil
}

func (s *service) UpdateCheckpoint(ctx context.Context, id int64, update CheckpointUpdate) (int64, error) {
	fields := map[string]any{}
	if update.CurrentLocation != nil && *update.CurrentLocation != "" {
		fields["current_location"] = *update.CurrentLocation
	}
	if update.CurrentStatus != nil && *update.CurrentStatus != "" {
		fields["current_status"] = *update.CurrentStatus
	}
	if update.DaysToDelivery != nil {
		if *update.DaysToDelivery < 0 {
			return 0, pkgerrors.New(pkgerrors.CodeValidation, "daysToDelivery must not be negative")
		}
		fields["days_to_delivery"] = *update.DaysToDelivery
	}
	if len(fields) == 0 {
		return 0, errNoFields
	}

	changes, err := s.repo.UpdateFields(ctx, id, fields)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update tracking code")
	}
	if changes == 0 {
		return 0, pkgerrors.New(pkgerrors.CodeNotFound, "Tracking code not found")
	}
	return changes, nil
}

func (s *service) AttachCustomer(ctx context.Context, code string, input CustomerInput) (int64, error) {
	changes, err := s.repo.UpdateCustomerByCode(ctx, code, input)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save customer details")
	}
	if changes == 0 {
		return 0, pkgerrors.New(pkgerrors.CodeNotFound, "Tracking code not found")
	}
	return changes, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	changes, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete tracking code")
	}
	if changes == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "Tracking code not found")
	}
	return nil
}

func mintCode(year int) (string, error) {
	max := big.NewInt(1000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%d-%06d", codePrefix, year, n.Int64()), nil
}
