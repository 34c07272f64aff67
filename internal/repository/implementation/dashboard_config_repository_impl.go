package implementation

import (
	"context"
	"errors"

	"homedock-be/internal/entity"
	"homedock-be/internal/mapper"
	"homedock-be/internal/model"
	"homedock-be/internal/repository/contract"
	"homedock-be/internal/repository/specification"

	"gorm.io/gorm"
)

type DashboardConfigRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DashboardConfigMapper
}

func NewDashboardConfigRepository(db *gorm.DB) contract.DashboardConfigRepository {
	return &DashboardConfigRepositoryImpl{
		db:     db,
		mapper: mapper.NewDashboardConfigMapper(),
	}
}

func (r *DashboardConfigRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DashboardConfigRepositoryImpl) Create(ctx context.Context, config *entity.DashboardConfig) error {
	m := r.mapper.ToModel(config)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*config = *r.mapper.ToEntity(m)
	return nil
}

func (r *DashboardConfigRepositoryImpl) Update(ctx context.Context, config *entity.DashboardConfig) error {
	m := r.mapper.ToModel(config)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*config = *r.mapper.ToEntity(m)
	return nil
}

func (r *DashboardConfigRepositoryImpl) FindFirst(ctx context.Context, specs ...specification.Specification) (*entity.DashboardConfig, error) {
	var m model.DashboardConfig
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Order("created_at ASC").First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
