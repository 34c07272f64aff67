package service

import (
	"context"

	"homedock-be/internal/constant"
	"homedock-be/internal/dto"
	"homedock-be/internal/entity"
	"homedock-be/internal/pkg/logger"
	"homedock-be/internal/repository/specification"
	"homedock-be/internal/repository/unitofwork"
	"homedock-be/pkg/dock"
	"homedock-be/pkg/ordered"

	"github.com/google/uuid"
)

type IDashboardService interface {
	GetPublicDashboard(ctx context.Context) (*dto.DashboardResponse, error)
	GetAdminDashboard(ctx context.Context) (*dto.DashboardResponse, error)
	UpdateDashboard(ctx context.Context, req *dto.UpdateDashboardRequest) (*dto.DashboardResponse, error)
	GetDock(ctx context.Context, viewportWidth float64) (*dto.DockResponse, error)
}

type dashboardService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewDashboardService(uowFactory unitofwork.RepositoryFactory, sysLogger logger.ILogger) IDashboardService {
	return &dashboardService{
		uowFactory: uowFactory,
		logger:     sysLogger,
	}
}

func (s *dashboardService) GetPublicDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	config, err := s.ensureConfig(ctx, uow)
	if err != nil {
		return nil, err
	}

	categories, err := s.fetchCategories(ctx, uow)
	if err != nil {
		return nil, err
	}

	// Hide auth-gated services; a category with nothing left disappears.
	visible := make([]*entity.Category, 0, len(categories))
	for _, category := range categories {
		services := make([]*entity.Service, 0, len(category.Services))
		for _, svc := range category.Services {
			if !svc.RequiresAuth {
				services = append(services, svc)
			}
		}
		if len(services) == 0 {
			continue
		}
		category.Services = services
		visible = append(visible, category)
	}

	return &dto.DashboardResponse{
		Config:     toConfigResponse(config),
		Categories: toCategoryResponses(visible),
	}, nil
}

func (s *dashboardService) GetAdminDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	config, err := s.ensureConfig(ctx, uow)
	if err != nil {
		return nil, err
	}

	categories, err := s.fetchCategories(ctx, uow)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		Config:     toConfigResponse(config),
		Categories: toCategoryResponses(categories),
	}, nil
}

// UpdateDashboard applies a partial config merge and, when categories are
// present, a full-replacement reconciliation. Both run inside one
// transaction so a mid-way failure leaves the stored dashboard untouched.
func (s *dashboardService) UpdateDashboard(ctx context.Context, req *dto.UpdateDashboardRequest) (*dto.DashboardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if req.Config != nil {
		if err := s.updateConfig(ctx, uow, req.Config); err != nil {
			return nil, err
		}
	}

	if req.Categories != nil {
		if err := s.replaceCategories(ctx, uow, req.Categories); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("dashboard", "Dashboard updated", map[string]interface{}{
		"config_changed": req.Config != nil,
		"categories":     len(req.Categories),
	})

	return s.GetAdminDashboard(ctx)
}

// GetDock packs the public favorites for a viewport width.
func (s *dashboardService) GetDock(ctx context.Context, viewportWidth float64) (*dto.DockResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	config, err := s.ensureConfig(ctx, uow)
	if err != nil {
		return nil, err
	}

	categories, err := s.fetchCategories(ctx, uow)
	if err != nil {
		return nil, err
	}

	favorites := buildFavorites(categories)

	metrics := dock.DefaultMetrics()
	available := metrics.Available(viewportWidth)
	result := dock.Pack(favorites, available, config.DockSeparatorEnabled, metrics)

	visible := favorites[:result.VisibleCount]
	hidden := favorites[result.VisibleCount:]

	return &dto.DockResponse{
		Entries:        dock.Entries(visible, config.DockSeparatorEnabled),
		Hidden:         hidden,
		VisibleCount:   result.VisibleCount,
		NeedsMore:      result.NeedsMore,
		AvailableWidth: available,
	}, nil
}

// buildFavorites flattens favorited public services in display order.
func buildFavorites(categories []*entity.Category) []dock.Favorite {
	favorites := make([]dock.Favorite, 0)
	for _, category := range categories {
		for _, svc := range category.Services {
			if !svc.IsFavorite || svc.RequiresAuth {
				continue
			}
			favorite := dock.Favorite{
				ServiceID:    svc.Id.String(),
				Name:         svc.Name,
				URL:          svc.URL,
				Target:       svc.Target,
				CategoryID:   category.Id.String(),
				CategoryName: category.Name,
			}
			if svc.Icon != nil {
				favorite.Icon = *svc.Icon
			}
			if svc.IconURL != nil {
				favorite.IconURL = *svc.IconURL
			}
			favorites = append(favorites, favorite)
		}
	}
	return favorites
}

func (s *dashboardService) ensureConfig(ctx context.Context, uow unitofwork.UnitOfWork) (*entity.DashboardConfig, error) {
	config, err := uow.DashboardConfigRepository().FindFirst(ctx)
	if err != nil {
		return nil, err
	}
	if config == nil {
		config = DefaultDashboardConfig()
		if err := uow.DashboardConfigRepository().Create(ctx, config); err != nil {
			return nil, err
		}
	}

	config.SystemSummaryOrder = ordered.Normalize(
		config.SystemSummaryOrder,
		constant.DefaultSystemSummaryOrder,
		constant.SystemSummaryKeys,
		constant.SystemSummaryMax,
	)
	config.WeatherMetaOrder = ordered.Normalize(
		config.WeatherMetaOrder,
		constant.DefaultWeatherMetaOrder,
		constant.WeatherMetaKeys,
		constant.WeatherMetaMax,
	)
	return config, nil
}

func (s *dashboardService) fetchCategories(ctx context.Context, uow unitofwork.UnitOfWork) ([]*entity.Category, error) {
	return uow.CategoryRepository().FindAll(ctx,
		specification.WithOrderedServices{},
		specification.OrderBy{Field: "sort_order"},
	)
}

func (s *dashboardService) updateConfig(ctx context.Context, uow unitofwork.UnitOfWork, input *dto.DashboardConfigInput) error {
	config, err := s.ensureConfig(ctx, uow)
	if err != nil {
		return err
	}

	if input.BrandName != nil {
		config.BrandName = *input.BrandName
	}
	if input.Language != nil {
		config.Language = *input.Language
	}
	if input.ServiceGridColumnsLg != nil {
		config.ServiceGridColumnsLg = *input.ServiceGridColumnsLg
	}
	if input.ShowBrand != nil {
		config.ShowBrand = *input.ShowBrand
	}
	if input.ShowTitle != nil {
		config.ShowTitle = *input.ShowTitle
	}
	if input.ShowDescription != nil {
		config.ShowDescription = *input.ShowDescription
	}
	if input.DockSeparatorEnabled != nil {
		config.DockSeparatorEnabled = *input.DockSeparatorEnabled
	}
	if input.ThemeKey != nil {
		config.ThemeKey = *input.ThemeKey
	}
	if input.Title != nil {
		config.Title = *input.Title
	}
	if input.Description != nil {
		config.Description = *input.Description
	}
	if input.WeatherMode != nil {
		config.WeatherMode = *input.WeatherMode
	}
	if input.WeatherName != nil {
		config.WeatherName = input.WeatherName
	}
	if input.WeatherRegion != nil {
		config.WeatherRegion = input.WeatherRegion
	}
	if input.WeatherCountry != nil {
		config.WeatherCountry = input.WeatherCountry
	}
	if input.WeatherLatitude != nil {
		config.WeatherLatitude = input.WeatherLatitude
	}
	if input.WeatherLongitude != nil {
		config.WeatherLongitude = input.WeatherLongitude
	}

	if input.SystemSummaryOrder != nil {
		config.SystemSummaryOrder = input.SystemSummaryOrder
	}
	if input.WeatherMetaOrder != nil {
		config.WeatherMetaOrder = input.WeatherMetaOrder
	}
	config.SystemSummaryOrder = ordered.Normalize(
		config.SystemSummaryOrder,
		constant.DefaultSystemSummaryOrder,
		constant.SystemSummaryKeys,
		constant.SystemSummaryMax,
	)
	config.WeatherMetaOrder = ordered.Normalize(
		config.WeatherMetaOrder,
		constant.DefaultWeatherMetaOrder,
		constant.WeatherMetaKeys,
		constant.WeatherMetaMax,
	)

	return uow.DashboardConfigRepository().Update(ctx, config)
}

// replaceCategories makes the stored category set match the payload: ids
// not sent are deleted with their services, the rest are upserted in payload
// order.
func (s *dashboardService) replaceCategories(ctx context.Context, uow unitofwork.UnitOfWork, categories []dto.DashboardCategoryInput) error {
	existing, err := uow.CategoryRepository().FindAll(ctx)
	if err != nil {
		return err
	}

	incoming := make(map[uuid.UUID]bool, len(categories))
	for _, category := range categories {
		if category.Id != nil {
			incoming[*category.Id] = true
		}
	}

	deleteIDs := make([]uuid.UUID, 0)
	for _, category := range existing {
		if !incoming[category.Id] {
			deleteIDs = append(deleteIDs, category.Id)
		}
	}

	if len(deleteIDs) > 0 {
		if err := uow.ServiceRepository().DeleteByCategoryIDs(ctx, deleteIDs); err != nil {
			return err
		}
		if err := uow.CategoryRepository().DeleteByIDs(ctx, deleteIDs); err != nil {
			return err
		}
	}

	existingByID := make(map[uuid.UUID]*entity.Category, len(existing))
	for _, category := range existing {
		existingByID[category.Id] = category
	}

	for index, input := range categories {
		sortOrder := index
		if input.SortOrder != nil {
			sortOrder = *input.SortOrder
		}

		var category *entity.Category
		if input.Id != nil {
			if current, ok := existingByID[*input.Id]; ok {
				category = current
			}
		}

		if category == nil {
			id := uuid.New()
			if input.Id != nil {
				id = *input.Id
			}
			category = &entity.Category{Id: id}
			applyCategoryInput(category, &input, sortOrder)
			if err := uow.CategoryRepository().Create(ctx, category); err != nil {
				return err
			}
		} else {
			applyCategoryInput(category, &input, sortOrder)
			if err := uow.CategoryRepository().Update(ctx, category); err != nil {
				return err
			}
		}

		if err := s.replaceServices(ctx, uow, category.Id, input.Services); err != nil {
			return err
		}
	}

	return nil
}

func applyCategoryInput(category *entity.Category, input *dto.DashboardCategoryInput, sortOrder int) {
	category.Name = input.Name
	category.Description = input.Description
	category.Icon = input.Icon
	category.Color = input.Color
	category.SortOrder = sortOrder
}

func (s *dashboardService) replaceServices(ctx context.Context, uow unitofwork.UnitOfWork, categoryID uuid.UUID, services []dto.DashboardServiceInput) error {
	keep := make([]uuid.UUID, 0, len(services))
	for _, svc := range services {
		if svc.Id != nil {
			keep = append(keep, *svc.Id)
		}
	}

	// No incoming ids means the caller rebuilt the list from scratch: wipe
	// everything in the category before inserting.
	if err := uow.ServiceRepository().DeleteStale(ctx, categoryID, keep); err != nil {
		return err
	}

	for index, input := range services {
		sortOrder := index
		if input.SortOrder != nil {
			sortOrder = *input.SortOrder
		}

		var current *entity.Service
		if input.Id != nil {
			found, err := uow.ServiceRepository().FindOne(ctx, specification.ByID{ID: *input.Id})
			if err != nil {
				return err
			}
			current = found
		}

		if current == nil {
			id := uuid.New()
			if input.Id != nil {
				id = *input.Id
			}
			svc := &entity.Service{Id: id, CategoryId: categoryID}
			applyServiceInput(svc, &input, sortOrder)
			if err := uow.ServiceRepository().Create(ctx, svc); err != nil {
				return err
			}
		} else {
			current.CategoryId = categoryID
			applyServiceInput(current, &input, sortOrder)
			if err := uow.ServiceRepository().Update(ctx, current); err != nil {
				return err
			}
		}
	}

	return nil
}

func applyServiceInput(svc *entity.Service, input *dto.DashboardServiceInput, sortOrder int) {
	svc.Name = input.Name
	svc.URL = input.URL
	svc.Description = input.Description
	svc.Icon = input.Icon
	svc.IconURL = input.IconURL
	svc.Status = input.Status
	svc.Target = normalizeTarget(input.Target)
	svc.RequiresAuth = input.RequiresAuth != nil && *input.RequiresAuth
	svc.IsFavorite = input.IsFavorite != nil && *input.IsFavorite
	svc.SortOrder = sortOrder
}

// normalizeTarget keeps only the two valid anchor targets. The legacy
// "window" value and anything unrecognized collapse to "_blank".
func normalizeTarget(target *string) string {
	if target == nil {
		return constant.TargetBlank
	}
	if *target == constant.TargetSelf || *target == constant.TargetBlank {
		return *target
	}
	return constant.TargetBlank
}

// DTO mapping

func toConfigResponse(config *entity.DashboardConfig) *dto.DashboardConfigResponse {
	return &dto.DashboardConfigResponse{
		Id:                   config.Id,
		BrandName:            config.BrandName,
		Language:             config.Language,
		ServiceGridColumnsLg: config.ServiceGridColumnsLg,
		ShowBrand:            config.ShowBrand,
		ShowTitle:            config.ShowTitle,
		ShowDescription:      config.ShowDescription,
		DockSeparatorEnabled: config.DockSeparatorEnabled,
		ThemeKey:             config.ThemeKey,
		Title:                config.Title,
		Description:          config.Description,
		WeatherMode:          config.WeatherMode,
		WeatherName:          config.WeatherName,
		WeatherRegion:        config.WeatherRegion,
		WeatherCountry:       config.WeatherCountry,
		WeatherLatitude:      config.WeatherLatitude,
		WeatherLongitude:     config.WeatherLongitude,
		SystemSummaryOrder:   config.SystemSummaryOrder,
		WeatherMetaOrder:     config.WeatherMetaOrder,
		CreatedAt:            config.CreatedAt,
		UpdatedAt:            config.UpdatedAt,
	}
}

func toServiceResponse(svc *entity.Service) *dto.DashboardServiceResponse {
	return &dto.DashboardServiceResponse{
		Id:           svc.Id,
		Name:         svc.Name,
		URL:          svc.URL,
		Description:  svc.Description,
		Icon:         svc.Icon,
		IconURL:      svc.IconURL,
		Status:       svc.Status,
		Target:       svc.Target,
		RequiresAuth: svc.RequiresAuth,
		IsFavorite:   svc.IsFavorite,
		SortOrder:    svc.SortOrder,
		CategoryId:   svc.CategoryId,
	}
}

func toCategoryResponses(categories []*entity.Category) []*dto.DashboardCategoryResponse {
	result := make([]*dto.DashboardCategoryResponse, 0, len(categories))
	for _, category := range categories {
		services := make([]*dto.DashboardServiceResponse, 0, len(category.Services))
		for _, svc := range category.Services {
			services = append(services, toServiceResponse(svc))
		}
		result = append(result, &dto.DashboardCategoryResponse{
			Id:          category.Id,
			Name:        category.Name,
			Description: category.Description,
			Icon:        category.Icon,
			Color:       category.Color,
			SortOrder:   category.SortOrder,
			Services:    services,
		})
	}
	return result
}
