package unitofwork

import (
	"context"

	"homedock-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	CategoryRepository() contract.CategoryRepository
	ServiceRepository() contract.ServiceRepository
	DashboardConfigRepository() contract.DashboardConfigRepository
}
