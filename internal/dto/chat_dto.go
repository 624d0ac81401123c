package dto

import (
	"time"

	"genai-studio-be/internal/constant"
)

type CreateChatSessionResponse struct {
	SessionId string `json:"sessionId"`
}

type ChatSessionResponse struct {
	SessionId        string    `json:"sessionId"`
	Title            string    `json:"title"`
	FirstMessageTime time.Time `json:"firstMessageTime"`
	LastMessageTime  time.Time `json:"lastMessageTime"`
}

type ChatSessionsResponse struct {
	Sessions []ChatSessionResponse `json:"sessions"`
}

type ChatHistoryItem struct {
	Sender    string    `json:"sender"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	SessionId string    `json:"sessionId"`
}

type ChatHistoryResponse struct {
	History []ChatHistoryItem `json:"history"`
}

type SendChatMessageRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionId string `json:"sessionId" validate:"required"`
}

func (SendChatMessageRequest) MissingFieldsMessage() string {
	return constant.MsgChatFieldsRequired
}

type SendChatMessageResponse struct {
	Reply string `json:"reply"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
