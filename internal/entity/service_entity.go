package entity

import (
	"time"

	"github.com/google/uuid"
)

// Service is one launcher tile. Target is always "_self" or "_blank" after
// write-path normalization.
type Service struct {
	Id           uuid.UUID
	Name         string
	URL          string
	Description  *string
	Icon         *string
	IconURL      *string
	Status       *string
	Target       string
	RequiresAuth bool
	IsFavorite   bool
	SortOrder    int
	CategoryId   uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
