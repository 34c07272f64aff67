package entity

import (
	"time"

	"github.com/google/uuid"
)

// DashboardConfig is the singleton appearance/behavior row. The two order
// lists are stored as JSON and normalized against their allowed key sets on
// every read.
type DashboardConfig struct {
	Id                   uuid.UUID
	BrandName            string
	Language             string
	ServiceGridColumnsLg int
	ShowBrand            bool
	ShowTitle            bool
	ShowDescription      bool
	DockSeparatorEnabled bool
	ThemeKey             string
	Title                string
	Description          string
	WeatherMode          string
	WeatherName          *string
	WeatherRegion        *string
	WeatherCountry       *string
	WeatherLatitude      *float64
	WeatherLongitude     *float64
	SystemSummaryOrder   []string
	WeatherMetaOrder     []string
	CreatedAt            time.Time
	UpdatedAt            *time.Time
}
