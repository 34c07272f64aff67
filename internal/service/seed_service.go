package service

import (
	"context"
	"time"

	"homedock-be/internal/config"
	"homedock-be/internal/constant"
	"homedock-be/internal/entity"
	"homedock-be/internal/pkg/logger"
	"homedock-be/internal/repository/specification"
	"homedock-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type ISeedService interface {
	Run(ctx context.Context) error
}

type seedService struct {
	uowFactory unitofwork.RepositoryFactory
	authCfg    config.AuthConfig
	logger     logger.ILogger
}

func NewSeedService(uowFactory unitofwork.RepositoryFactory, authCfg config.AuthConfig, sysLogger logger.ILogger) ISeedService {
	return &seedService{
		uowFactory: uowFactory,
		authCfg:    authCfg,
		logger:     sysLogger,
	}
}

// Run is idempotent: every step first checks whether its data already
// exists.
func (s *seedService) Run(ctx context.Context) error {
	if err := s.ensureAdminUser(ctx); err != nil {
		return err
	}
	if err := s.ensureConfig(ctx); err != nil {
		return err
	}
	return s.ensureCategories(ctx)
}

func (s *seedService) ensureAdminUser(ctx context.Context) error {
	if s.authCfg.AdminEmail == "" || s.authCfg.AdminPassword == "" {
		s.logger.Warn("seed", "ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seeding", nil)
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: s.authCfg.AdminEmail})
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.authCfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &entity.User{
		Id:           uuid.New(),
		Email:        s.authCfg.AdminEmail,
		PasswordHash: string(hash),
		Role:         entity.UserRoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info("seed", "Admin user created", map[string]interface{}{"email": user.Email})
	return nil
}

func (s *seedService) ensureConfig(ctx context.Context) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.DashboardConfigRepository().FindFirst(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	return uow.DashboardConfigRepository().Create(ctx, DefaultDashboardConfig())
}

func (s *seedService) ensureCategories(ctx context.Context) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.CategoryRepository().Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	for _, def := range defaultCategories {
		category := &entity.Category{
			Id:        uuid.New(),
			Name:      def.Name,
			Color:     strPtr(def.Color),
			SortOrder: def.SortOrder,
			CreatedAt: time.Now(),
		}
		if err := uow.CategoryRepository().Create(ctx, category); err != nil {
			return err
		}

		for _, svcDef := range def.Services {
			target := svcDef.Target
			if target == "" {
				target = constant.TargetBlank
			}
			svc := &entity.Service{
				Id:           uuid.New(),
				Name:         svcDef.Name,
				URL:          svcDef.URL,
				Description:  strPtr(svcDef.Description),
				Icon:         strPtr(svcDef.Icon),
				Target:       target,
				RequiresAuth: svcDef.RequiresAuth,
				IsFavorite:   svcDef.IsFavorite,
				SortOrder:    svcDef.SortOrder,
				CategoryId:   category.Id,
				CreatedAt:    time.Now(),
			}
			if err := uow.ServiceRepository().Create(ctx, svc); err != nil {
				return err
			}
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.logger.Info("seed", "Default categories created", map[string]interface{}{
		"categories": len(defaultCategories),
	})
	return nil
}
