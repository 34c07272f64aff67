package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByCategoryID filters services by owning category
type ByCategoryID struct {
	CategoryID uuid.UUID
}

func (s ByCategoryID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category_id = ?", s.CategoryID)
}

// ByCategoryIDs filters services by a set of categories
type ByCategoryIDs struct {
	CategoryIDs []uuid.UUID
}

func (s ByCategoryIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category_id IN ?", s.CategoryIDs)
}

// FavoritesOnly keeps only favorited services
type FavoritesOnly struct{}

func (s FavoritesOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_favorite = ?", true)
}

// PublicOnly keeps services visible without authentication
type PublicOnly struct{}

func (s PublicOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("requires_auth = ?", false)
}

// WithOrderedServices preloads category services ordered by sort order
type WithOrderedServices struct{}

func (s WithOrderedServices) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("Services", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	})
}
