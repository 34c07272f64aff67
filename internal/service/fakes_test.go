package service

import (
	"context"
	"sort"

	"homedock-be/internal/entity"
	"homedock-be/internal/repository/contract"
	"homedock-be/internal/repository/specification"
	"homedock-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

func boolPtr(v bool) *bool          { return &v }
func intPtr(v int) *int             { return &v }
func floatPtr(v float64) *float64   { return &v }
func uuidPtr(v uuid.UUID) *uuid.UUID { return &v }

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// memStore backs the fake repositories with plain maps. Repositories hand
// out copies so service-side mutation never leaks into stored state before
// an explicit Create/Update.
type memStore struct {
	users      map[uuid.UUID]*entity.User
	categories map[uuid.UUID]*entity.Category
	services   map[uuid.UUID]*entity.Service
	config     *entity.DashboardConfig

	commits   int
	rollbacks int
}

func newMemStore() *memStore {
	return &memStore{
		users:      make(map[uuid.UUID]*entity.User),
		categories: make(map[uuid.UUID]*entity.Category),
		services:   make(map[uuid.UUID]*entity.Service),
	}
}

func (s *memStore) addCategory(name string, sortOrder int) *entity.Category {
	category := &entity.Category{Id: uuid.New(), Name: name, SortOrder: sortOrder}
	s.categories[category.Id] = category
	return category
}

func (s *memStore) addService(categoryID uuid.UUID, name string, sortOrder int, favorite, requiresAuth bool) *entity.Service {
	svc := &entity.Service{
		Id:           uuid.New(),
		Name:         name,
		URL:          "http://" + name + ".local",
		Target:       "_blank",
		IsFavorite:   favorite,
		RequiresAuth: requiresAuth,
		SortOrder:    sortOrder,
		CategoryId:   categoryID,
	}
	s.services[svc.Id] = svc
	return svc
}

func (s *memStore) servicesOf(categoryID uuid.UUID) []*entity.Service {
	list := make([]*entity.Service, 0)
	for _, svc := range s.services {
		if svc.CategoryId == categoryID {
			list = append(list, copyService(svc))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].SortOrder < list[j].SortOrder })
	return list
}

func copyCategory(c *entity.Category) *entity.Category {
	dup := *c
	dup.Services = nil
	return &dup
}

func copyService(svc *entity.Service) *entity.Service {
	dup := *svc
	return &dup
}

func copyConfig(c *entity.DashboardConfig) *entity.DashboardConfig {
	dup := *c
	dup.SystemSummaryOrder = append([]string(nil), c.SystemSummaryOrder...)
	dup.WeatherMetaOrder = append([]string(nil), c.WeatherMetaOrder...)
	return &dup
}

func copyUser(u *entity.User) *entity.User {
	dup := *u
	return &dup
}

type memFactory struct {
	store *memStore
}

func (f *memFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &memUnitOfWork{store: f.store}
}

type memUnitOfWork struct {
	store  *memStore
	active bool
}

func (u *memUnitOfWork) Begin(ctx context.Context) error {
	u.active = true
	return nil
}

func (u *memUnitOfWork) Commit() error {
	if u.active {
		u.store.commits++
		u.active = false
	}
	return nil
}

func (u *memUnitOfWork) Rollback() error {
	if u.active {
		u.store.rollbacks++
		u.active = false
	}
	return nil
}

func (u *memUnitOfWork) UserRepository() contract.UserRepository {
	return &memUserRepository{store: u.store}
}

func (u *memUnitOfWork) CategoryRepository() contract.CategoryRepository {
	return &memCategoryRepository{store: u.store}
}

func (u *memUnitOfWork) ServiceRepository() contract.ServiceRepository {
	return &memServiceRepository{store: u.store}
}

func (u *memUnitOfWork) DashboardConfigRepository() contract.DashboardConfigRepository {
	return &memDashboardConfigRepository{store: u.store}
}

type memUserRepository struct {
	store *memStore
}

func (r *memUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.users[user.Id] = copyUser(user)
	return nil
}

func (r *memUserRepository) Update(ctx context.Context, user *entity.User) error {
	r.store.users[user.Id] = copyUser(user)
	return nil
}

func (r *memUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.users, id)
	return nil
}

func (r *memUserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, user := range r.store.users {
		if userMatches(user, specs) {
			return copyUser(user), nil
		}
	}
	return nil, nil
}

func (r *memUserRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	count := int64(0)
	for _, user := range r.store.users {
		if userMatches(user, specs) {
			count++
		}
	}
	return count, nil
}

func userMatches(user *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if user.Id != s.ID {
				return false
			}
		case specification.ByEmail:
			if user.Email != s.Email {
				return false
			}
		}
	}
	return true
}

type memCategoryRepository struct {
	store *memStore
}

func (r *memCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	r.store.categories[category.Id] = copyCategory(category)
	return nil
}

func (r *memCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	r.store.categories[category.Id] = copyCategory(category)
	return nil
}

func (r *memCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.categories, id)
	return nil
}

func (r *memCategoryRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) error {
	for _, id := range ids {
		delete(r.store.categories, id)
	}
	return nil
}

func (r *memCategoryRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Category, error) {
	for _, spec := range specs {
		if byID, ok := spec.(specification.ByID); ok {
			if category, exists := r.store.categories[byID.ID]; exists {
				return copyCategory(category), nil
			}
			return nil, nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error) {
	withServices := false
	for _, spec := range specs {
		if _, ok := spec.(specification.WithOrderedServices); ok {
			withServices = true
		}
	}

	list := make([]*entity.Category, 0, len(r.store.categories))
	for _, category := range r.store.categories {
		list = append(list, copyCategory(category))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].SortOrder < list[j].SortOrder })

	if withServices {
		for _, category := range list {
			category.Services = r.store.servicesOf(category.Id)
		}
	}
	return list, nil
}

func (r *memCategoryRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.categories)), nil
}

type memServiceRepository struct {
	store *memStore
}

func (r *memServiceRepository) Create(ctx context.Context, svc *entity.Service) error {
	r.store.services[svc.Id] = copyService(svc)
	return nil
}

func (r *memServiceRepository) Update(ctx context.Context, svc *entity.Service) error {
	r.store.services[svc.Id] = copyService(svc)
	return nil
}

func (r *memServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.services, id)
	return nil
}

func (r *memServiceRepository) DeleteByCategoryIDs(ctx context.Context, categoryIDs []uuid.UUID) error {
	drop := make(map[uuid.UUID]bool, len(categoryIDs))
	for _, id := range categoryIDs {
		drop[id] = true
	}
	for id, svc := range r.store.services {
		if drop[svc.CategoryId] {
			delete(r.store.services, id)
		}
	}
	return nil
}

func (r *memServiceRepository) DeleteStale(ctx context.Context, categoryID uuid.UUID, keep []uuid.UUID) error {
	keepSet := make(map[uuid.UUID]bool, len(keep))
	for _, id := range keep {
		keepSet[id] = true
	}
	for id, svc := range r.store.services {
		if svc.CategoryId == categoryID && !keepSet[id] {
			delete(r.store.services, id)
		}
	}
	return nil
}

func (r *memServiceRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Service, error) {
	for _, spec := range specs {
		if byID, ok := spec.(specification.ByID); ok {
			if svc, exists := r.store.services[byID.ID]; exists {
				return copyService(svc), nil
			}
			return nil, nil
		}
	}
	return nil, nil
}

func (r *memServiceRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Service, error) {
	list := make([]*entity.Service, 0, len(r.store.services))
	for _, svc := range r.store.services {
		if serviceMatches(svc, specs) {
			list = append(list, copyService(svc))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].SortOrder < list[j].SortOrder })
	return list, nil
}

func (r *memServiceRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	count := int64(0)
	for _, svc := range r.store.services {
		if serviceMatches(svc, specs) {
			count++
		}
	}
	return count, nil
}

func serviceMatches(svc *entity.Service, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if svc.Id != s.ID {
				return false
			}
		case specification.ByCategoryID:
			if svc.CategoryId != s.CategoryID {
				return false
			}
		case specification.FavoritesOnly:
			if !svc.IsFavorite {
				return false
			}
		case specification.PublicOnly:
			if svc.RequiresAuth {
				return false
			}
		}
	}
	return true
}

type memDashboardConfigRepository struct {
	store *memStore
}

func (r *memDashboardConfigRepository) Create(ctx context.Context, config *entity.DashboardConfig) error {
	r.store.config = copyConfig(config)
	return nil
}

func (r *memDashboardConfigRepository) Update(ctx context.Context, config *entity.DashboardConfig) error {
	r.store.config = copyConfig(config)
	return nil
}

func (r *memDashboardConfigRepository) FindFirst(ctx context.Context, specs ...specification.Specification) (*entity.DashboardConfig, error) {
	if r.store.config == nil {
		return nil, nil
	}
	return copyConfig(r.store.config), nil
}
