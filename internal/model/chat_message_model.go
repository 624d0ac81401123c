package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index:idx_chat_messages_user_session_time,priority:1"`
	SessionId string    `gorm:"type:varchar(64);not null;index:idx_chat_messages_user_session_time,priority:2"`
	Sender    string    `gorm:"type:varchar(10);not null"`
	Text      string    `gorm:"type:text;not null"`
	Timestamp time.Time `gorm:"not null;index:idx_chat_messages_user_session_time,priority:3"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
