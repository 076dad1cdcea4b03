package tracking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/kofiasare/parceltrack-backend/pkg/config"
	"github.com/kofiasare/parceltrack-backend/pkg/db/models"
	pkgerrors "github.com/kofiasare/parceltrack-backend/pkg/errors"
	"gorm.io/gorm"
)

type stubTrackingRepo struct {
	created       []*models.TrackingCode
	createErrs    []error
	record        *models.TrackingCode
	findErr       error
	listed        []models.TrackingCode
	listErr       error
	updateChanges int64
	updateErr     error
	custChanges   int64
	custErr       error
	deleteChanges int64
	deleteErr     error

	lastFields map[string]any
	lastInput  CustomerInput
}

func (s *stubTrackingRepo) Create(_ context.Context, record *models.TrackingCode) error {
	s.created = append(s.created, record)
	if len(s.createErrs) > 0 {
		err := s.createErrs[0]
		s.createErrs = s.createErrs[1:]
		return err
	}
	record.ID = int64(len(s.created))
	return nil
}

func (s *stubTrackingRepo) FindByCode(context.Context, string) (*models.TrackingCode, error) {
	return s.record, s.findErr
}

func (s *stubTrackingRepo) ListAll(context.Context) ([]models.TrackingCode, error) {
	return s.listed, s.listErr
}

func (s *stubTrackingRepo) UpdateFields(_ context.Context, _ int64, fields map[string]any) (int64, error) {
	s.lastFields = fields
	return s.updateChanges, s.updateErr
}

func (s *stubTrackingRepo) UpdateCustomerByCode(_ context.Context, _ string, input CustomerInput) (int64, error) {
	s.lastInput = input
	return s.custChanges, s.custErr
}

func (s *stubTrackingRepo) DeleteByID(context.Context, int64) (int64, error) {
	return s.deleteChanges, s.deleteErr
}

func trackingTestConfig() config.TrackingConfig {
	return config.TrackingConfig{
		DefaultTargetDays: 60,
		DefaultStatus:     "Order Placed",
		DefaultLocation:   "Shenzhen, China",
	}
}

func newTestService(t *testing.T, repo trackingRepository) *service {
	t.Helper()
	svc, err := NewService(repo, nineStopRoute(), trackingTestConfig())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc.(*service)
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	if _, err := NewService(nil, nineStopRoute(), trackingTestConfig()); err == nil {
		t.Fatal("expected error without repository")
	}
	if _, err := NewService(&stubTrackingRepo{}, nil, trackingTestConfig()); err == nil {
		t.Fatal("expected error without catalog")
	}
}

func TestGenerateUsesDefaults(t *testing.T) {
	repo := &stubTrackingRepo{}
	svc := newTestService(t, repo)
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }

	dto, err := svc.Generate(context.Background(), GenerateInput{Description: "laptop"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(dto.TrackingCode, "GH-PKG-2025-") {
		t.Fatalf("code = %q, want GH-PKG-2025- prefix", dto.TrackingCode)
	}
	if len(dto.TrackingCode) != len("GH-PKG-2025-000000") {
		t.Fatalf("code %q has wrong suffix width", dto.TrackingCode)
	}
	if dto.CurrentLocation != "Shenzhen, China" {
		t.Fatalf("location = %q", dto.CurrentLocation)
	}
	if dto.CurrentStatus != "Order Placed" {
		t.Fatalf("status = %q", dto.CurrentStatus)
	}
	if dto.DaysToDelivery != 60 {
		t.Fatalf("days = %d", dto.DaysToDelivery)
	}
	if repo.created[0].Description != "laptop" {
		t.Fatalf("description = %q", repo.created[0].Description)
	}
}

func TestGenerateHonorsOverrides(t *testing.T) {
	repo := &stubTrackingRepo{}
	svc := newTestService(t, repo)

	days := 14
	dto, err := svc.Generate(context.Background(), GenerateInput{
		Location:       "Tema Port, Ghana",
		DaysToDelivery: &days,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if dto.CurrentLocation != "Tema Port, Ghana" {
		t.Fatalf("location = %q", dto.CurrentLocation)
	}
	if dto.DaysToDelivery != 14 {
		t.Fatalf("days = %d", dto.DaysToDelivery)
	}
}

func TestGenerateRejectsNegativeDays(t *testing.T) {
	svc := newTestService(t, &stubTrackingRepo{})

	days := -1
	_, err := svc.Generate(context.Background(), GenerateInput{DaysToDelivery: &days})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeValidation {
		t.Fatalf("code = %v, want validation", pkgerrors.CodeOf(err))
	}
}

func TestGenerateRetriesOnCollision(t *testing.T) {
	collision := errors.New("UNIQUE constraint failed: tracking_codes.tracking_code")
	repo := &stubTrackingRepo{createErrs: []error{collision, collision}}
	svc := newTestService(t, repo)

	dto, err := svc.Generate(context.Background(), GenerateInput{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(repo.created) != 3 {
		t.Fatalf("attempts = %d, want 3", len(repo.created))
	}
	if repo.created[0].TrackingCode == dto.TrackingCode {
		t.Fatal("expected a fresh code after collision")
	}
}

func TestGenerateGivesUpAfterRepeatedCollisions(t *testing.T) {
	collision := errors.New("UNIQUE constraint failed: tracking_codes.tracking_code")
	repo := &stubTrackingRepo{
		createErrs: []error{collision, collision, collision, collision, collision},
	}
	svc := newTestService(t, repo)

	_, err := svc.Generate(context.Background(), GenerateInput{})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeConflict {
		t.Fatalf("code = %v, want conflict", pkgerrors.CodeOf(err))
	}
}

func TestGetByCodeComputesProgress(t *testing.T) {
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	repo := &stubTrackingRepo{record: &models.TrackingCode{
		ID:              1,
		TrackingCode:    "GH-PKG-2025-000001",
		CreatedAt:       now.AddDate(0, 0, -30),
		CurrentLocation: "Shenzhen, China",
		CurrentStatus:   "Order Placed",
		DaysToDelivery:  60,
	}}
	svc := newTestService(t, repo)
	svc.now = func() time.Time { return now }

	dto, err := svc.GetByCode(context.Background(), "GH-PKG-2025-000001")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if dto.ComputedDaysRemaining != 30 {
		t.Fatalf("computedDaysRemaining = %d, want 30", dto.ComputedDaysRemaining)
	}
	if dto.ComputedIndex != 4 {
		t.Fatalf("computedIndex = %d, want 4", dto.ComputedIndex)
	}
	if dto.ComputedLocation != "Arabian Sea" {
		t.Fatalf("computedLocation = %q", dto.ComputedLocation)
	}
}

func TestGetByCodeNotFound(t *testing.T) {
	repo := &stubTrackingRepo{findErr: gorm.ErrRecordNotFound}
	svc := newTestService(t, repo)

	_, err := svc.GetByCode(context.Background(), "GH-PKG-2025-999999")
	if pkgerrors.CodeOf(err) != pkgerrors.CodeNotFound {
		t.Fatalf("code = %v, want not found", pkgerrors.CodeOf(err))
	}
	var appErr *pkgerrors.Error
	if !errors.As(err, &appErr) || appErr.Message() != "Tracking code not found" {
		t.Fatalf("message = %v", err)
	}
}

func TestUpdateCheckpointPartial(t *testing.T) {
	repo := &stubTrackingRepo{updateChanges: 1}
	svc := newTestService(t, repo)

	status := "Customs Clearance"
	changes, err := svc.UpdateCheckpoint(context.Background(), 7, CheckpointUpdate{CurrentStatus: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if changes != 1 {
		t.Fatalf("changes = %d", changes)
	}
	if len(repo.lastFields) != 1 {
		t.Fatalf("fields = %v, want only current_status", repo.lastFields)
	}
	if repo.lastFields["current_status"] != "Customs Clearance" {
		t.Fatalf("fields = %v", repo.lastFields)
	}
}

func TestUpdateCheckpointNoFields(t *testing.T) {
	svc := newTestService(t, &stubTrackingRepo{})

	_, err := svc.UpdateCheckpoint(context.Background(), 7, CheckpointUpdate{})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeValidation {
		t.Fatalf("code = %v, want validation", pkgerrors.CodeOf(err))
	}
}

func TestUpdateCheckpointNotFound(t *testing.T) {
	repo := &stubTrackingRepo{updateChanges: 0}
	svc := newTestService(t, repo)

	loc := "Tema Port, Ghana"
	_, err := svc.UpdateCheckpoint(context.Background(), 404, CheckpointUpdate{CurrentLocation: &loc})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeNotFound {
		t.Fatalf("code = %v, want not found", pkgerrors.CodeOf(err))
	}
}

func TestAttachCustomer(t *testing.T) {
	repo := &stubTrackingRepo{custChanges: 1}
	svc := newTestService(t, repo)

	changes, err := svc.AttachCustomer(context.Background(), "GH-PKG-2025-000001", CustomerInput{
		FullName: "Ama Mensah",
		City:     "Accra",
	})
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	if changes != 1 {
		t.Fatalf("changes = %d", changes)
	}
	if repo.lastInput.FullName != "Ama Mensah" {
		t.Fatalf("input = %+v", repo.lastInput)
	}
}

func TestAttachCustomerNotFound(t *testing.T) {
	repo := &stubTrackingRepo{custChanges: 0}
	svc := newTestService(t, repo)

	_, err := svc.AttachCustomer(context.Background(), "GH-PKG-2025-999999", CustomerInput{})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeNotFound {
		t.Fatalf("code = %v, want not found", pkgerrors.CodeOf(err))
	}
}

func TestDeleteNotFound(t *testing.T) {
	repo := &stubTrackingRepo{deleteChanges: 0}
	svc := newTestService(t, repo)

	err := svc.Delete(context.Background(), 42)
	if pkgerrors.CodeOf(err) != pkgerrors.CodeNotFound {
		t.Fatalf("code = %v, want not found", pkgerrors.CodeOf(err))
	}
}
