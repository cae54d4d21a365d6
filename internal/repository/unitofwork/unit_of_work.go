package unitofwork

import (
	"context"

	"ai-council-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error
	WithinTx(ctx context.Context, fn func(UnitOfWork) error) error

	UserRepository() contract.UserRepository
	CouncilRepository() contract.CouncilRepository
	MessageRepository() contract.MessageRepository
	MemoryRepository() contract.MemoryRepository
}
