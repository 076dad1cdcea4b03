package routecat

import (
	"context"

	"github.com/kofiasare/parceltrack-backend/internal/repo"
	"github.com/kofiasare/parceltrack-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository reads the seeded shipping route.
type Repository struct {
	repo.Base
}

// NewRepository binds a GORM DB to route lookups.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// ListOrdered returns every route location sorted by route order.
func (r *Repository) ListOrdered(ctx context.Context) ([]models.RouteLocation, error) {
	var rows []models.RouteLocation
	if err := r.DB(ctx).Order("route_order ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
