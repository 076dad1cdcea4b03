package repo

import (
	"context"

	"gorm.io/gorm"
)

// Base holds the GORM connection every domain repository embeds.
type Base struct {
	db *gorm.DB
}

// NewBase wraps the shared GORM connection for embedding.
func NewBase(db *gorm.DB) Base {
	return Base{db: db}
}

// DB binds the connection to the request context so cancellation propagates
// into queries.
func (b Base) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return b.db
	}
	return b.db.WithContext(ctx)
}
