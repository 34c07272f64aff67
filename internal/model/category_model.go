package model

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:text"`
	Icon        *string   `gorm:"type:varchar(255)"`
	Color       *string   `gorm:"type:varchar(32)"`
	SortOrder   int       `gorm:"not null;default:0;index"`
	Services    []Service `gorm:"foreignKey:CategoryId;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Category) TableName() string {
	return "categories"
}
