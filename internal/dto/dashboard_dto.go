package dto

import (
	"time"

	"homedock-be/pkg/dock"

	"github.com/google/uuid"
)

// Responses

type DashboardConfigResponse struct {
	Id                   uuid.UUID  `json:"id"`
	BrandName            string     `json:"brandName"`
	Language             string     `json:"language"`
	ServiceGridColumnsLg int        `json:"serviceGridColumnsLg"`
	ShowBrand            bool       `json:"showBrand"`
	ShowTitle            bool       `json:"showTitle"`
	ShowDescription      bool       `json:"showDescription"`
	DockSeparatorEnabled bool       `json:"dockSeparatorEnabled"`
	ThemeKey             string     `json:"themeKey"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	WeatherMode          string     `json:"weatherMode"`
	WeatherName          *string    `json:"weatherName"`
	WeatherRegion        *string    `json:"weatherRegion"`
	WeatherCountry       *string    `json:"weatherCountry"`
	WeatherLatitude      *float64   `json:"weatherLatitude"`
	WeatherLongitude     *float64   `json:"weatherLongitude"`
	SystemSummaryOrder   []string   `json:"systemSummaryOrder"`
	WeatherMetaOrder     []string   `json:"weatherMetaOrder"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            *time.Time `json:"updatedAt,omitempty"`
}

type DashboardServiceResponse struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	URL          string    `json:"url"`
	Description  *string   `json:"description"`
	Icon         *string   `json:"icon"`
	IconURL      *string   `json:"iconUrl"`
	Status       *string   `json:"status"`
	Target       string    `json:"target"`
	RequiresAuth bool      `json:"requiresAuth"`
	IsFavorite   bool      `json:"isFavorite"`
	SortOrder    int       `json:"sortOrder"`
	CategoryId   uuid.UUID `json:"categoryId"`
}

type DashboardCategoryResponse struct {
	Id          uuid.UUID                   `json:"id"`
	Name        string                      `json:"name"`
	Description *string                     `json:"description"`
	Icon        *string                     `json:"icon"`
	Color       *string                     `json:"color"`
	SortOrder   int                         `json:"sortOrder"`
	Services    []*DashboardServiceResponse `json:"services"`
}

type DashboardResponse struct {
	Config     *DashboardConfigResponse     `json:"config"`
	Categories []*DashboardCategoryResponse `json:"categories"`
}

type DockResponse struct {
	Entries        []dock.Entry    `json:"entries"`
	Hidden         []dock.Favorite `json:"hidden"`
	VisibleCount   int             `json:"visibleCount"`
	NeedsMore      bool            `json:"needsMore"`
	AvailableWidth float64         `json:"availableWidth"`
}

// Update payload. Nil pointers mean "keep the stored value"; a nil Categories
// slice skips reconciliation entirely while an empty one deletes everything.

type DashboardConfigInput struct {
	BrandName            *string  `json:"brandName"`
	Language             *string  `json:"language" validate:"omitempty,oneof=ko en ja zh"`
	ServiceGridColumnsLg *int     `json:"serviceGridColumnsLg" validate:"omitempty,min=1,max=12"`
	ShowBrand            *bool    `json:"showBrand"`
	ShowTitle            *bool    `json:"showTitle"`
	ShowDescription      *bool    `json:"showDescription"`
	DockSeparatorEnabled *bool    `json:"dockSeparatorEnabled"`
	ThemeKey             *string  `json:"themeKey"`
	Title                *string  `json:"title"`
	Description          *string  `json:"description"`
	WeatherMode          *string  `json:"weatherMode" validate:"omitempty,oneof=auto manual"`
	WeatherName          *string  `json:"weatherName"`
	WeatherRegion        *string  `json:"weatherRegion"`
	WeatherCountry       *string  `json:"weatherCountry"`
	WeatherLatitude      *float64 `json:"weatherLatitude"`
	WeatherLongitude     *float64 `json:"weatherLongitude"`
	SystemSummaryOrder   []string `json:"systemSummaryOrder"`
	WeatherMetaOrder     []string `json:"weatherMetaOrder"`
}

type DashboardServiceInput struct {
	Id           *uuid.UUID `json:"id"`
	Name         string     `json:"name" validate:"required"`
	URL          string     `json:"url" validate:"required"`
	Description  *string    `json:"description"`
	Icon         *string    `json:"icon"`
	IconURL      *string    `json:"iconUrl"`
	Status       *string    `json:"status"`
	Target       *string    `json:"target"`
	RequiresAuth *bool      `json:"requiresAuth"`
	IsFavorite   *bool      `json:"isFavorite"`
	SortOrder    *int       `json:"sortOrder"`
}

type DashboardCategoryInput struct {
	Id          *uuid.UUID              `json:"id"`
	Name        string                  `json:"name" validate:"required"`
	Description *string                 `json:"description"`
	Icon        *string                 `json:"icon"`
	Color       *string                 `json:"color"`
	SortOrder   *int                    `json:"sortOrder"`
	Services    []DashboardServiceInput `json:"services" validate:"dive"`
}

type UpdateDashboardRequest struct {
	Config     *DashboardConfigInput    `json:"config"`
	Categories []DashboardCategoryInput `json:"categories" validate:"dive"`
}
