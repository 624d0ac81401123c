package implementation

import (
	"context"

	"genai-studio-be/internal/entity"
	"genai-studio-be/internal/mapper"
	"genai-studio-be/internal/model"
	"genai-studio-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatMessageRepositoryImpl struct {
	gormRepository[entity.ChatMessage, model.ChatMessage]
}

func NewChatMessageRepository(db *gorm.DB) contract.ChatMessageRepository {
	m := mapper.NewChatMapper()
	return &ChatMessageRepositoryImpl{
		gormRepository: gormRepository[entity.ChatMessage, model.ChatMessage]{
			db: db,
			toModel: func(msg *entity.ChatMessage) (*model.ChatMessage, error) {
				return m.ChatMessageToModel(msg), nil
			},
			toEntity: m.ChatMessageToEntity,
		},
	}
}

func (r *ChatMessageRepositoryImpl) DeleteBySession(ctx context.Context, userId uuid.UUID, sessionId string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND session_id = ?", userId, sessionId).
		Delete(&model.ChatMessage{})
	return res.RowsAffected, res.Error
}
