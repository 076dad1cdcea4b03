package models

// RouteLocation is one stop in the fixed shipment route. Rows are seeded by
// migration and never mutated at runtime.
type RouteLocation struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	RouteOrder  int    `gorm:"column:route_order;uniqueIndex" json:"routeOrder"`
	Location    string `gorm:"column:location;uniqueIndex" json:"location"`
	Country     string `gorm:"column:country" json:"country"`
	Description string `gorm:"column:description" json:"description"`
}

func (RouteLocation) TableName() string { return "route_locations" }
