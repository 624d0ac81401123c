// Package session derives chat session summaries from the ledger's messages.
package session

import (
	"context"
	"sort"
	"strings"

	"genai-studio-be/internal/constant"
	"genai-studio-be/internal/entity"

	"github.com/google/uuid"
)

// MessageSource is the slice of the ledger the aggregator reads from.
type MessageSource interface {
	ListByUser(ctx context.Context, userId uuid.UUID) ([]*entity.ChatMessage, error)
}

type Aggregator struct {
	source MessageSource
}

func NewAggregator(source MessageSource) *Aggregator {
	return &Aggregator{source: source}
}

// ListSessions summarises every session of the user, most recently active first.
func (a *Aggregator) ListSessions(ctx context.Context, userId uuid.UUID) ([]*entity.ChatSession, error) {
	messages, err := a.source.ListByUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	return Aggregate(messages), nil
}

// Aggregate groups messages by session id. Input order does not matter.
func Aggregate(messages []*entity.ChatMessage) []*entity.ChatSession {
	type group struct {
		session   *entity.ChatSession
		firstUser *entity.ChatMessage
	}
	groups := make(map[string]*group)

	for _, msg := range messages {
		g, ok := groups[msg.SessionId]
		if !ok {
			g = &group{session: &entity.ChatSession{
				SessionId:        msg.SessionId,
				FirstMessageTime: msg.Timestamp,
				LastMessageTime:  msg.Timestamp,
			}}
			groups[msg.SessionId] = g
		}
		if msg.Timestamp.Before(g.session.FirstMessageTime) {
			g.session.FirstMessageTime = msg.Timestamp
		}
		if msg.Timestamp.After(g.session.LastMessageTime) {
			g.session.LastMessageTime = msg.Timestamp
		}
		if msg.Sender == entity.ChatSenderUser && (g.firstUser == nil || msg.Timestamp.Before(g.firstUser.Timestamp)) {
			g.firstUser = msg
		}
	}

	sessions := make([]*entity.ChatSession, 0, len(groups))
	for _, g := range groups {
		var text *string
		if g.firstUser != nil {
			text = &g.firstUser.Text
		}
		g.session.Title = DeriveTitle(text)
		sessions = append(sessions, g.session)
	}

	sort.Slice(sessions, func(i, j int) bool {
		if !sessions[i].LastMessageTime.Equal(sessions[j].LastMessageTime) {
			return sessions[i].LastMessageTime.After(sessions[j].LastMessageTime)
		}
		return sessions[i].SessionId < sessions[j].SessionId
	})
	return sessions
}

// DeriveTitle truncates the first user message to the title length, counted
// in runes. A session with no user message gets the default title.
func DeriveTitle(firstUserText *string) string {
	if firstUserText == nil {
		return constant.ChatDefaultTitle
	}
	text := *firstUserText
	if strings.TrimSpace(text) == "" {
		return constant.ChatDefaultTitle
	}
	runes := []rune(text)
	if len(runes) > constant.ChatTitleMaxLength {
		return string(runes[:constant.ChatTitleMaxLength])
	}
	return text
}
