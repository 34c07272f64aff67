package model

import (
	"time"

	"github.com/google/uuid"
)

type Service struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(255);not null"`
	URL          string    `gorm:"type:text;not null;column:url"`
	Description  *string   `gorm:"type:text"`
	Icon         *string   `gorm:"type:varchar(255)"`
	IconURL      *string   `gorm:"type:text;column:icon_url"`
	Status       *string   `gorm:"type:varchar(64)"`
	Target       string    `gorm:"type:varchar(16);not null;default:'_blank'"`
	RequiresAuth bool      `gorm:"not null;default:false"`
	IsFavorite   bool      `gorm:"not null;default:false"`
	SortOrder    int       `gorm:"not null;default:0;index"`
	CategoryId   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Service) TableName() string {
	return "services"
}
