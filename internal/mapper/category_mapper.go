package mapper

import (
	"time"

	"homedock-be/internal/entity"
	"homedock-be/internal/model"
)

type CategoryMapper struct {
	serviceMapper *ServiceMapper
}

func NewCategoryMapper() *CategoryMapper {
	return &CategoryMapper{
		serviceMapper: NewServiceMapper(),
	}
}

func (m *CategoryMapper) ToEntity(c *model.Category) *entity.Category {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	services := make([]*entity.Service, len(c.Services))
	for i := range c.Services {
		services[i] = m.serviceMapper.ToEntity(&c.Services[i])
	}

	return &entity.Category{
		Id:          c.Id,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		Color:       c.Color,
		SortOrder:   c.SortOrder,
		Services:    services,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

// ToModel intentionally drops Services; service rows are written through
// their own repository during reconciliation.
func (m *CategoryMapper) ToModel(c *entity.Category) *model.Category {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Category{
		Id:          c.Id,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		Color:       c.Color,
		SortOrder:   c.SortOrder,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *CategoryMapper) ToEntities(categories []*model.Category) []*entity.Category {
	entities := make([]*entity.Category, len(categories))
	for i, c := range categories {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
