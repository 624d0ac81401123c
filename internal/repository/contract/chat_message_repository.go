package contract

import (
	"context"

	"genai-studio-be/internal/entity"
	"genai-studio-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// DeleteBySession hard-deletes every message of the (user, session) pair and
	// reports how many rows were removed.
	DeleteBySession(ctx context.Context, userId uuid.UUID, sessionId string) (int64, error)
}
