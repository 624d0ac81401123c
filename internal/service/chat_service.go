package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"genai-studio-be/internal/constant"
	"genai-studio-be/internal/dto"
	"genai-studio-be/internal/entity"
	"genai-studio-be/internal/pkg/apperror"
	"genai-studio-be/internal/pkg/logger"
	"genai-studio-be/pkg/chat/ledger"
	"genai-studio-be/pkg/chat/session"
	"genai-studio-be/pkg/idgen"
	"genai-studio-be/pkg/llm"

	"github.com/google/uuid"
)

type IChatService interface {
	CreateSession(ctx context.Context, userId uuid.UUID) (*dto.CreateChatSessionResponse, error)
	SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendChatMessageRequest) (*dto.SendChatMessageResponse, error)
	// History returns every message of the user when sessionId is empty.
	History(ctx context.Context, userId uuid.UUID, sessionId string) (*dto.ChatHistoryResponse, error)
	ListSessions(ctx context.Context, userId uuid.UUID) (*dto.ChatSessionsResponse, error)
	DeleteSession(ctx context.Context, userId uuid.UUID, sessionId string) (*dto.MessageResponse, error)
}

type chatService struct {
	ledger     *ledger.Ledger
	aggregator *session.Aggregator
	provider   llm.LLMProvider
	sessionIds *idgen.SessionIDGenerator
	logger     logger.ILogger
}

func NewChatService(
	ledger *ledger.Ledger,
	aggregator *session.Aggregator,
	provider llm.LLMProvider,
	sessionIds *idgen.SessionIDGenerator,
	logger logger.ILogger,
) IChatService {
	return &chatService{
		ledger:     ledger,
		aggregator: aggregator,
		provider:   provider,
		sessionIds: sessionIds,
		logger:     logger,
	}
}

func (s *chatService) CreateSession(ctx context.Context, userId uuid.UUID) (*dto.CreateChatSessionResponse, error) {
	sessionId, err := s.sessionIds.Generate()
	if err != nil {
		return nil, apperror.Internal(constant.MsgChatCreateFailed, err)
	}

	if _, err := s.ledger.Append(ctx, userId, sessionId, entity.ChatSenderAI, constant.ChatGreetingMessage); err != nil {
		return nil, apperror.Internal(constant.MsgChatCreateFailed, err)
	}

	return &dto.CreateChatSessionResponse{SessionId: sessionId}, nil
}

func (s *chatService) SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendChatMessageRequest) (*dto.SendChatMessageResponse, error) {
	if strings.TrimSpace(req.Message) == "" || strings.TrimSpace(req.SessionId) == "" {
		return nil, apperror.BadRequest(constant.MsgChatFieldsRequired)
	}
	if !s.provider.Configured() {
		return nil, apperror.Internal(constant.MsgChatKeyMissing, errors.New("llm api key is not configured"))
	}

	if !idgen.LooksLikeSessionID(req.SessionId) {
		s.logger.Debug("CHAT", "Message sent to a client-chosen session id", map[string]interface{}{
			"session_id": req.SessionId,
		})
	}

	if _, err := s.ledger.Append(ctx, userId, req.SessionId, entity.ChatSenderUser, req.Message); err != nil {
		return nil, apperror.Internal(constant.MsgChatUpstreamFailed, err)
	}

	reply, err := s.provider.Generate(ctx, req.Message)
	if err == nil {
		if _, err := s.ledger.Append(ctx, userId, req.SessionId, entity.ChatSenderAI, reply); err != nil {
			return nil, apperror.Internal(constant.MsgChatUpstreamFailed, err)
		}
		return &dto.SendChatMessageResponse{Reply: reply}, nil
	}

	// The failure is recorded as the ai turn so the transcript shows what happened,
	// even when the client has already gone away.
	persistCtx := context.WithoutCancel(ctx)

	if errors.Is(err, llm.ErrMalformedResponse) {
		s.recordFailure(persistCtx, userId, req.SessionId, constant.ChatMalformedReplyMessage, err)
		return nil, apperror.Upstream(constant.MsgChatInvalidReply, err)
	}

	detail := err.Error()
	clientMessage := constant.MsgChatUpstreamFailed
	var statusErr *llm.StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		detail = statusErr.Message
		clientMessage = statusErr.Message
	}
	if detail == "" {
		detail = constant.MsgChatUnknownError
	}

	s.recordFailure(persistCtx, userId, req.SessionId, constant.ChatErrorReplyPrefix+detail, err)
	return nil, apperror.Upstream(clientMessage, err)
}

func (s *chatService) recordFailure(ctx context.Context, userId uuid.UUID, sessionId, text string, cause error) {
	s.logger.Error("CHAT", "Upstream chat request failed", map[string]interface{}{
		"session_id": sessionId,
		"error":      cause,
	})
	if _, err := s.ledger.Append(ctx, userId, sessionId, entity.ChatSenderAI, text); err != nil {
		s.logger.Error("CHAT", "Failed to record ai failure turn", map[string]interface{}{
			"session_id": sessionId,
			"error":      err,
		})
	}
}

func (s *chatService) History(ctx context.Context, userId uuid.UUID, sessionId string) (*dto.ChatHistoryResponse, error) {
	var (
		messages []*entity.ChatMessage
		err      error
	)
	if sessionId == "" {
		messages, err = s.ledger.ListByUser(ctx, userId)
	} else {
		messages, err = s.ledger.ListBySession(ctx, userId, sessionId)
	}
	if err != nil {
		return nil, apperror.Internal(constant.MsgChatHistoryFailed, err)
	}

	history := make([]dto.ChatHistoryItem, 0, len(messages))
	for _, msg := range messages {
		history = append(history, dto.ChatHistoryItem{
			Sender:    string(msg.Sender),
			Message:   msg.Text,
			Timestamp: msg.Timestamp,
			SessionId: msg.SessionId,
		})
	}
	return &dto.ChatHistoryResponse{History: history}, nil
}

func (s *chatService) ListSessions(ctx context.Context, userId uuid.UUID) (*dto.ChatSessionsResponse, error) {
	sessions, err := s.aggregator.ListSessions(ctx, userId)
	if err != nil {
		return nil, apperror.Internal(constant.MsgChatSessionsFailed, err)
	}

	res := make([]dto.ChatSessionResponse, 0, len(sessions))
	for _, sess := range sessions {
		res = append(res, dto.ChatSessionResponse{
			SessionId:        sess.SessionId,
			Title:            sess.Title,
			FirstMessageTime: sess.FirstMessageTime,
			LastMessageTime:  sess.LastMessageTime,
		})
	}
	return &dto.ChatSessionsResponse{Sessions: res}, nil
}

func (s *chatService) DeleteSession(ctx context.Context, userId uuid.UUID, sessionId string) (*dto.MessageResponse, error) {
	if strings.TrimSpace(sessionId) == "" {
		return nil, apperror.BadRequest(constant.MsgChatSessionRequired)
	}

	removed, err := s.ledger.DeleteSession(ctx, userId, sessionId)
	if err != nil {
		return nil, apperror.Internal(constant.MsgChatDeleteFailed, err)
	}
	if removed == 0 {
		return nil, apperror.NotFound(constant.MsgChatSessionNotFound)
	}

	s.logger.Info("CHAT", "Session deleted", map[string]interface{}{
		"session_id": sessionId,
		"messages":   removed,
	})
	return &dto.MessageResponse{Message: fmt.Sprintf(constant.MsgChatSessionDeletedFn, sessionId, removed)}, nil
}
