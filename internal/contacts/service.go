package contacts

import (
	"context"
	"fmt"
	"time"

	"github.com/kofiasare/parceltrack-backend/pkg/db/models"
	"github.com/kofiasare/parceltrack-backend/pkg/enums"
	pkgerrors "github.com/kofiasare/parceltrack-backend/pkg/errors"
)

type contactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	List(ctx context.Context) ([]models.Contact, error)
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)
}

// Service exposes contact message operations.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*models.Contact, error)
	List(ctx context.Context) ([]models.Contact, error)
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)
}

type service struct {
	repo contactRepository
	now  func() time.Time
}

// NewService builds a contact service around the repository.
func NewService(repo contactRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("contact repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.Contact, error) {
	if input.Name == "" || input.Email == "" || input.Subject == "" || input.Message == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Missing required fields")
	}

	department := input.Department
	if department == "" {
		department = "general"
	}

	contact := &models.Contact{
		Timestamp:  s.now(),
		Name:       input.Name,
		Email:      input.Email,
		Subject:    input.Subject,
		Message:    input.Message,
		Department: department,
		Status:     enums.ContactStatusNew.String(),
	}
	if input.Phone != "" {
		phone := input.Phone
		contact.Phone = &phone
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create contact")
	}
	return contact, nil
}

func (s *service) List(ctx context.Context) ([]models.Contact, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list contacts")
	}
	return rows, nil
}

// UpdateStatus marks a contact; an empty status defaults to "read".
func (s *service) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	if status == "" {
		status = enums.ContactStatusRead.String()
	}
	changes, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update contact status")
	}
	if changes == 0 {
		return 0, pkgerrors.New(pkgerrors.CodeNotFound, "Contact not found")
	}
	return changes, nil
}
