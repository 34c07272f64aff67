package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DashboardConfig is a single-row table; callers always take the first row
// and create it when missing.
type DashboardConfig struct {
	Id                   uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BrandName            string         `gorm:"type:varchar(255);not null"`
	Language             string         `gorm:"type:varchar(8);not null;default:'ko'"`
	ServiceGridColumnsLg int            `gorm:"not null;default:5"`
	ShowBrand            bool           `gorm:"not null;default:true"`
	ShowTitle            bool           `gorm:"not null;default:true"`
	ShowDescription      bool           `gorm:"not null;default:true"`
	DockSeparatorEnabled bool           `gorm:"not null;default:true"`
	ThemeKey             string         `gorm:"type:varchar(64);not null;default:'homedock'"`
	Title                string         `gorm:"type:text;not null"`
	Description          string         `gorm:"type:text;not null"`
	WeatherMode          string         `gorm:"type:varchar(16);not null;default:'auto'"`
	WeatherName          *string        `gorm:"type:varchar(255)"`
	WeatherRegion        *string        `gorm:"type:varchar(255)"`
	WeatherCountry       *string        `gorm:"type:varchar(255)"`
	WeatherLatitude      *float64       `gorm:"type:double precision"`
	WeatherLongitude     *float64       `gorm:"type:double precision"`
	SystemSummaryOrder   datatypes.JSON `gorm:"type:jsonb"`
	WeatherMetaOrder     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt            time.Time      `gorm:"autoCreateTime"`
	UpdatedAt            time.Time      `gorm:"autoUpdateTime"`
}

func (DashboardConfig) TableName() string {
	return "dashboard_configs"
}
