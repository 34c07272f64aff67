package mapper

import (
	"time"

	"homedock-be/internal/entity"
	"homedock-be/internal/model"
)

type ServiceMapper struct{}

func NewServiceMapper() *ServiceMapper {
	return &ServiceMapper{}
}

func (m *ServiceMapper) ToEntity(s *model.Service) *entity.Service {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.Service{
		Id:           s.Id,
		Name:         s.Name,
		URL:          s.URL,
		Description:  s.Description,
		Icon:         s.Icon,
		IconURL:      s.IconURL,
		Status:       s.Status,
		Target:       s.Target,
		RequiresAuth: s.RequiresAuth,
		IsFavorite:   s.IsFavorite,
		SortOrder:    s.SortOrder,
		CategoryId:   s.CategoryId,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *ServiceMapper) ToModel(s *entity.Service) *model.Service {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.Service{
		Id:           s.Id,
		Name:         s.Name,
		URL:          s.URL,
		Description:  s.Description,
		Icon:         s.Icon,
		IconURL:      s.IconURL,
		Status:       s.Status,
		Target:       s.Target,
		RequiresAuth: s.RequiresAuth,
		IsFavorite:   s.IsFavorite,
		SortOrder:    s.SortOrder,
		CategoryId:   s.CategoryId,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *ServiceMapper) ToEntities(services []*model.Service) []*entity.Service {
	entities := make([]*entity.Service, len(services))
	for i, s := range services {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
