package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatSender string

const (
	ChatSenderUser ChatSender = "user"
	ChatSenderAI   ChatSender = "ai"
)

func (s ChatSender) Valid() bool {
	return s == ChatSenderUser || s == ChatSenderAI
}

// ChatMessage is one side of a chat exchange. Every message belongs to exactly
// one (UserId, SessionId) pair.
type ChatMessage struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	SessionId string
	Sender    ChatSender
	Text      string
	Timestamp time.Time
}
