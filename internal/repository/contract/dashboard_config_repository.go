package contract

import (
	"context"

	"homedock-be/internal/entity"
	"homedock-be/internal/repository/specification"
)

type DashboardConfigRepository interface {
	Create(ctx context.Context, config *entity.DashboardConfig) error
	Update(ctx context.Context, config *entity.DashboardConfig) error
	// FindFirst returns the singleton row or nil when the table is empty.
	FindFirst(ctx context.Context, specs ...specification.Specification) (*entity.DashboardConfig, error)
}
