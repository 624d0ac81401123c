package unitofwork

import "context"

// RepositoryFactory is what services hold instead of a *gorm.DB.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
