package ledger

import (
	"context"
	"fmt"
	"time"

	"genai-studio-be/internal/entity"
	"genai-studio-be/internal/repository/specification"
	"genai-studio-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Ledger is the source of truth for chat history: ordered messages tagged
// with a session id. Sessions exist only through their messages.
type Ledger struct {
	uowFactory unitofwork.RepositoryFactory
	now        func() time.Time
}

func NewLedger(uowFactory unitofwork.RepositoryFactory) *Ledger {
	return &Ledger{
		uowFactory: uowFactory,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the timestamp source.
func (l *Ledger) WithClock(now func() time.Time) *Ledger {
	l.now = now
	return l
}

// Append persists one message with a server-assigned timestamp.
func (l *Ledger) Append(ctx context.Context, userId uuid.UUID, sessionId string, sender entity.ChatSender, text string) (*entity.ChatMessage, error) {
	if !sender.Valid() {
		return nil, fmt.Errorf("invalid chat sender %q", sender)
	}

	// v7 ids grow with time, so they keep insertion order when timestamps tie
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	message := &entity.ChatMessage{
		Id:        id,
		UserId:    userId,
		SessionId: sessionId,
		Sender:    sender,
		Text:      text,
		Timestamp: l.now(),
	}

	uow := l.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ChatMessageRepository().Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// ListBySession returns the session's messages oldest first; an unknown
// session yields an empty slice.
func (l *Ledger) ListBySession(ctx context.Context, userId uuid.UUID, sessionId string) ([]*entity.ChatMessage, error) {
	uow := l.uowFactory.NewUnitOfWork(ctx)
	return uow.ChatMessageRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.BySessionID{SessionID: sessionId},
		specification.Chronological{},
	)
}

// ListByUser returns every message of the user across sessions, oldest first.
func (l *Ledger) ListByUser(ctx context.Context, userId uuid.UUID) ([]*entity.ChatMessage, error) {
	uow := l.uowFactory.NewUnitOfWork(ctx)
	return uow.ChatMessageRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.Chronological{},
	)
}

// DeleteSession removes every message of the session and reports the count.
// Zero means the session did not exist for this user.
func (l *Ledger) DeleteSession(ctx context.Context, userId uuid.UUID, sessionId string) (int64, error) {
	uow := l.uowFactory.NewUnitOfWork(ctx)
	return uow.ChatMessageRepository().DeleteBySession(ctx, userId, sessionId)
}
