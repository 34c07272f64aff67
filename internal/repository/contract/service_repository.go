package contract

import (
	"context"

	"homedock-be/internal/entity"
	"homedock-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByCategoryIDs(ctx context.Context, categoryIDs []uuid.UUID) error
	// DeleteStale removes a category's services whose ids are not in keep.
	// Empty keep wipes every service in the category.
	DeleteStale(ctx context.Context, categoryID uuid.UUID, keep []uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Service, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Service, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
