package idgen

import (
	"fmt"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	SessionPrefix         = "chat-"
	SessionSuffixSize     = 7
	SessionSuffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// SessionIDGenerator produces ids shaped like "chat-<unix-ms>-<suffix>".
type SessionIDGenerator struct {
	now func() time.Time
}

func NewSessionIDGenerator() *SessionIDGenerator {
	return &SessionIDGenerator{now: time.Now}
}

// NewSessionIDGeneratorWithClock is used by tests that need stable timestamps.
func NewSessionIDGeneratorWithClock(now func() time.Time) *SessionIDGenerator {
	return &SessionIDGenerator{now: now}
}

func (g *SessionIDGenerator) Generate() (string, error) {
	suffix, err := gonanoid.Generate(SessionSuffixAlphabet, SessionSuffixSize)
	if err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return fmt.Sprintf("%s%d-%s", SessionPrefix, g.now().UnixMilli(), suffix), nil
}

// LooksLikeSessionID reports whether id has the generated shape. Clients may
// still send arbitrary ids; this is only used for logging.
func LooksLikeSessionID(id string) bool {
	if !strings.HasPrefix(id, SessionPrefix) {
		return false
	}
	parts := strings.Split(strings.TrimPrefix(id, SessionPrefix), "-")
	return len(parts) == 2 && len(parts[1]) == SessionSuffixSize
}
