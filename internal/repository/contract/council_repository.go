package contract

import (
	"context"

	"ai-council-be/internal/entity"
	"ai-council-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CouncilRepository interface {
	Create(ctx context.Context, council *entity.Council) error
	Update(ctx context.Context, council *entity.Council) error
	// Touch bumps updated_at after a message is appended.
	Touch(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Council, error)
	// FindAllWithMessageCount fills entity.Council.MessageCount.
	FindAllWithMessageCount(ctx context.Context, specs ...specification.Specification) ([]*entity.Council, error)
}
