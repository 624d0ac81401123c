package ledger

import (
	"context"
	"fmt"
	"testing"
	"time"

	"genai-studio-be/internal/entity"
	"genai-studio-be/internal/model"
	"genai-studio-be/internal/repository/unitofwork"
	"genai-studio-be/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLedger(t *testing.T) *Ledger {
	t.Helper()
	db, err := database.NewTestDB(uuid.NewString())
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))

	tick := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return NewLedger(unitofwork.NewRepositoryFactory(db)).WithClock(func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	})
}

func TestAppendAndList(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)
	user := uuid.New()

	_, err := l.Append(ctx, user, "chat-S1", entity.ChatSenderAI, "greeting")
	require.NoError(t, err)
	_, err = l.Append(ctx, user, "chat-S1", entity.ChatSenderUser, "Hi")
	require.NoError(t, err)
	_, err = l.Append(ctx, user, "chat-S2", entity.ChatSenderUser, "elsewhere")
	require.NoError(t, err)

	messages, err := l.ListBySession(ctx, user, "chat-S1")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "greeting", messages[0].Text)
	assert.Equal(t, "Hi", messages[1].Text)
	assert.True(t, messages[0].Timestamp.Before(messages[1].Timestamp))

	all, err := l.ListByUser(ctx, user)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestListUnknownSessionIsEmpty(t *testing.T) {
	messages, err := newLedger(t).ListBySession(context.Background(), uuid.New(), "chat-missing")
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestAppendRejectsUnknownSender(t *testing.T) {
	_, err := newLedger(t).Append(context.Background(), uuid.New(), "chat-S1", entity.ChatSender("system"), "x")
	assert.Error(t, err)
}

func TestDeleteSessionOnlyTouchesThatSession(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)
	user, other := uuid.New(), uuid.New()

	for _, text := range []string{"a", "b", "c"} {
		_, err := l.Append(ctx, user, "chat-S1", entity.ChatSenderUser, text)
		require.NoError(t, err)
	}
	_, err := l.Append(ctx, user, "chat-S2", entity.ChatSenderUser, "keep")
	require.NoError(t, err)
	_, err = l.Append(ctx, other, "chat-S1", entity.ChatSenderUser, "not yours")
	require.NoError(t, err)

	removed, err := l.DeleteSession(ctx, user, "chat-S1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	gone, err := l.ListBySession(ctx, user, "chat-S1")
	require.NoError(t, err)
	assert.Empty(t, gone)

	kept, err := l.ListBySession(ctx, user, "chat-S2")
	require.NoError(t, err)
	assert.Len(t, kept, 1)

	othersKept, err := l.ListBySession(ctx, other, "chat-S1")
	require.NoError(t, err)
	assert.Len(t, othersKept, 1)

	removed, err = l.DeleteSession(ctx, user, "chat-S1")
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestListKeepsAppendOrderOnTimestampTies(t *testing.T) {
	ctx := context.Background()
	frozen := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	l := newLedger(t).WithClock(func() time.Time { return frozen })
	owner := uuid.New()

	for i := 0; i < 40; i++ {
		sessionId := fmt.Sprintf("chat-tie-%d", i)
		_, err := l.Append(ctx, owner, sessionId, entity.ChatSenderUser, "question")
		require.NoError(t, err)
		_, err = l.Append(ctx, owner, sessionId, entity.ChatSenderAI, "answer")
		require.NoError(t, err)

		messages, err := l.ListBySession(ctx, owner, sessionId)
		require.NoError(t, err)
		require.Len(t, messages, 2)
		assert.Equal(t, entity.ChatSenderUser, messages[0].Sender, sessionId)
		assert.Equal(t, entity.ChatSenderAI, messages[1].Sender, sessionId)
	}
}
