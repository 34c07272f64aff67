package mapper

import (
	"encoding/json"
	"time"

	"homedock-be/internal/entity"
	"homedock-be/internal/model"

	"gorm.io/datatypes"
)

type DashboardConfigMapper struct{}

func NewDashboardConfigMapper() *DashboardConfigMapper {
	return &DashboardConfigMapper{}
}

func (m *DashboardConfigMapper) ToEntity(c *model.DashboardConfig) *entity.DashboardConfig {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.DashboardConfig{
		Id:                   c.Id,
		BrandName:            c.BrandName,
		Language:             c.Language,
		ServiceGridColumnsLg: c.ServiceGridColumnsLg,
		ShowBrand:            c.ShowBrand,
		ShowTitle:            c.ShowTitle,
		ShowDescription:      c.ShowDescription,
		DockSeparatorEnabled: c.DockSeparatorEnabled,
		ThemeKey:             c.ThemeKey,
		Title:                c.Title,
		Description:          c.Description,
		WeatherMode:          c.WeatherMode,
		WeatherName:          c.WeatherName,
		WeatherRegion:        c.WeatherRegion,
		WeatherCountry:       c.WeatherCountry,
		WeatherLatitude:      c.WeatherLatitude,
		WeatherLongitude:     c.WeatherLongitude,
		SystemSummaryOrder:   decodeOrder(c.SystemSummaryOrder),
		WeatherMetaOrder:     decodeOrder(c.WeatherMetaOrder),
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            updatedAt,
	}
}

func (m *DashboardConfigMapper) ToModel(c *entity.DashboardConfig) *model.DashboardConfig {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.DashboardConfig{
		Id:                   c.Id,
		BrandName:            c.BrandName,
		Language:             c.Language,
		ServiceGridColumnsLg: c.ServiceGridColumnsLg,
		ShowBrand:            c.ShowBrand,
		ShowTitle:            c.ShowTitle,
		ShowDescription:      c.ShowDescription,
		DockSeparatorEnabled: c.DockSeparatorEnabled,
		ThemeKey:             c.ThemeKey,
		Title:                c.Title,
		Description:          c.Description,
		WeatherMode:          c.WeatherMode,
		WeatherName:          c.WeatherName,
		WeatherRegion:        c.WeatherRegion,
		WeatherCountry:       c.WeatherCountry,
		WeatherLatitude:      c.WeatherLatitude,
		WeatherLongitude:     c.WeatherLongitude,
		SystemSummaryOrder:   encodeOrder(c.SystemSummaryOrder),
		WeatherMetaOrder:     encodeOrder(c.WeatherMetaOrder),
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            updatedAt,
	}
}

// decodeOrder tolerates malformed stored JSON; the service layer falls back
// to defaults when the result is empty.
func decodeOrder(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var keys []string
	if err := json.Unmarshal(raw, &keys); err != nil {
		return nil
	}
	return keys
}

func encodeOrder(keys []string) datatypes.JSON {
	if keys == nil {
		keys = []string{}
	}
	raw, err := json.Marshal(keys)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(raw)
}
