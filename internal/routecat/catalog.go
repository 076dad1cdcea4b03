package routecat

import (
	"context"
	"fmt"

	"github.com/kofiasare/parceltrack-backend/pkg/db/models"
	pkgerrors "github.com/kofiasare/parceltrack-backend/pkg/errors"
)

type routeRepository interface {
	ListOrdered(ctx context.Context) ([]models.RouteLocation, error)
}

// Waypoint is one stop on the shipping route.
type Waypoint struct {
	ID          int64  `json:"id"`
	RouteOrder  int    `json:"routeOrder"`
	Name        string `json:"location"`
	Country     string `json:"country"`
	Description string `json:"description"`
}

// Catalog is the ordered, immutable shipping route. It is loaded once at
// startup and shared read-only across requests.
type Catalog struct {
	waypoints []Waypoint
	byName    map[string]int
}

// Load fetches the route from storage and freezes it into a Catalog.
func Load(ctx context.Context, repo routeRepository) (*Catalog, error) {
	if repo == nil {
		return nil, fmt.Errorf("route repository required")
	}
	rows, err := repo.ListOrdered(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load route locations")
	}
	return NewCatalog(fromModels(rows)), nil
}

// NewCatalog builds a Catalog from waypoints already in route order.
func NewCatalog(waypoints []Waypoint) *Catalog {
	byName := make(map[string]int, len(waypoints))
	for i, wp := range waypoints {
		byName[wp.Name] = i
	}
	return &Catalog{waypoints: waypoints, byName: byName}
}

// Len returns the number of waypoints.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.waypoints)
}

// At returns the waypoint at position i. Callers must bounds-check with Len.
func (c *Catalog) At(i int) Waypoint {
	return c.waypoints[i]
}

// IndexOf resolves a waypoint position by exact name match.
func (c *Catalog) IndexOf(name string) (int, bool) {
	if c == nil {
		return 0, false
	}
	i, ok := c.byName[name]
	return i, ok
}

// Waypoints returns a copy of the route for API responses.
func (c *Catalog) Waypoints() []Waypoint {
	if c == nil {
		return nil
	}
	out := make([]Waypoint, len(c.waypoints))
	copy(out, c.waypoints)
	return out
}

func fromModels(rows []models.RouteLocation) []Waypoint {
	waypoints := make([]Waypoint, 0, len(rows))
	for _, row := range rows {
		waypoints = append(waypoints, Waypoint{
			ID:          row.ID,
			RouteOrder:  row.RouteOrder,
			Name:        row.Location,
			Country:     row.Country,
			Description: row.Description,
		})
	}
	return waypoints
}
