package contract

import (
	"context"

	"ai-council-be/internal/entity"
	"ai-council-be/internal/repository/specification"

	"github.com/google/uuid"
)

// MessageRepository has no update or delete; transcripts are append-only.
type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)
	// FindRecent returns the newest limit messages of a council, oldest first.
	FindRecent(ctx context.Context, councilID uuid.UUID, limit int) ([]*entity.Message, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
