package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups launcher services. Services are loaded ordered by their
// sort order when the aggregate is fetched.
type Category struct {
	Id          uuid.UUID
	Name        string
	Description *string
	Icon        *string
	Color       *string
	SortOrder   int
	Services    []*Service
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
