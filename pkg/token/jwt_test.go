package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("secret", time.Hour, "test")

	signed, expiresAt, err := m.Issue("user-123")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := m.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "test", claims.Issuer)
}

func TestVerifyExpired(t *testing.T) {
	issuedAt := time.Now().Add(-2 * time.Hour)
	m := NewManager("secret", time.Hour, "test").WithClock(func() time.Time { return issuedAt })

	signed, _, err := m.Issue("user-123")
	require.NoError(t, err)

	_, err = NewManager("secret", time.Hour, "test").Verify(signed)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyInvalid(t *testing.T) {
	m := NewManager("secret", time.Hour, "test")
	signed, _, err := m.Issue("user-123")
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-123"},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "wrong secret", token: mustIssue(t, NewManager("other", time.Hour, "test"))},
		{name: "garbage", token: "not-a-jwt"},
		{name: "tampered", token: signed + "x"},
		{name: "missing subject", token: noSubject},
		{name: "missing expiry", token: noExpiry},
		{name: "empty", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Verify(tt.token)
			assert.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}

func mustIssue(t *testing.T, m *Manager) string {
	t.Helper()
	signed, _, err := m.Issue("user-123")
	require.NoError(t, err)
	return signed
}
