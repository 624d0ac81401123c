package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"genai-studio-be/internal/bootstrap"
	"genai-studio-be/internal/config"
	"genai-studio-be/internal/constant"
	"genai-studio-be/internal/dto"
	"genai-studio-be/internal/model"
	"genai-studio-be/internal/pkg/logger"
	"genai-studio-be/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upstreams struct {
	gemini      *httptest.Server
	huggingFace *httptest.Server

	mu         sync.Mutex
	lastWidth  int
	lastHeight int
}

func (u *upstreams) lastSize() (int, int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.lastWidth, u.lastHeight
}

func newUpstreams(t *testing.T) *upstreams {
	u := &upstreams{}
	u.gemini = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		prompt := body.Contents[0].Parts[0].Text
		if prompt == "break" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"code":400,"message":"Request contains an invalid argument."}}`))
			return
		}
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"echo: ` + prompt + `"}]}}]}`))
	}))
	u.huggingFace = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Inputs     string `json:"inputs"`
			Parameters struct {
				Width  int `json:"width"`
				Height int `json:"height"`
			} `json:"parameters"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		u.mu.Lock()
		u.lastWidth, u.lastHeight = body.Parameters.Width, body.Parameters.Height
		u.mu.Unlock()
		if body.Inputs == "busy" {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":"Model is currently loading","estimated_time":20}`))
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("fake-png"))
	}))
	t.Cleanup(u.gemini.Close)
	t.Cleanup(u.huggingFace.Close)
	return u
}

func newTestApp(t *testing.T) (*fiber.App, *upstreams) {
	t.Helper()
	db, err := database.NewTestDB(uuid.NewString())
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<h1>studio</h1>"), 0o644))

	u := newUpstreams(t)
	cfg := &config.Config{
		App:  config.AppConfig{Name: "test", Port: "0", Environment: "test", CorsAllowedOrigins: "*", StaticDir: staticDir},
		Auth: config.AuthConfig{JwtSecret: "test-secret", TokenTTL: time.Hour, Issuer: "test"},
		Keys: config.APIKeys{GoogleGemini: "g-key", HuggingFace: "hf_key"},
		Ai: config.AIConfig{
			GeminiBaseURL:      u.gemini.URL,
			GeminiModel:        "gemini-test",
			HuggingFaceBaseURL: u.huggingFace.URL,
			ImageModel:         "test/sdxl",
			UpstreamTimeout:    5 * time.Second,
		},
	}

	container, err := bootstrap.NewContainer(db, cfg, logger.NewNopLogger())
	require.NoError(t, err)
	return New(cfg, container).GetApp(), u
}

func call(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func signup(t *testing.T, app *fiber.App, username string) dto.AuthResponse {
	status, raw := call(t, app, http.MethodPost, "/api/auth/signup", "", fiber.Map{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, status, string(raw))
	return decode[dto.AuthResponse](t, raw)
}

func TestAuthFlow(t *testing.T) {
	app, _ := newTestApp(t)

	created := signup(t, app, "alice")
	assert.NotEmpty(t, created.Token)
	assert.Equal(t, "alice@example.com", created.Email)

	status, raw := call(t, app, http.MethodPost, "/api/auth/signup", "", fiber.Map{
		"username": "alice", "email": "new@example.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, constant.MsgSignupDuplicate, decode[dto.MessageResponse](t, raw).Message)

	status, raw = call(t, app, http.MethodPost, "/api/auth/signup", "", fiber.Map{"username": "bob"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, constant.MsgSignupFieldsRequired, decode[dto.MessageResponse](t, raw).Message)

	status, raw = call(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"emailOrUsername": "alice@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, status)
	login := decode[dto.AuthResponse](t, raw)
	assert.Equal(t, created.UserId, login.UserId)
	assert.Equal(t, constant.MsgLoginSuccess, login.Message)

	status, raw = call(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"emailOrUsername": "alice", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, constant.MsgInvalidCredentials, decode[dto.MessageResponse](t, raw).Message)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app, _ := newTestApp(t)

	for _, route := range [][2]string{
		{http.MethodPost, "/api/chat/session"},
		{http.MethodGet, "/api/chat/sessions"},
		{http.MethodGet, "/api/chat/history"},
		{http.MethodPost, "/api/chat/send"},
		{http.MethodDelete, "/api/chat/sessions/chat-1"},
		{http.MethodPost, "/api/imagegen/generate"},
		{http.MethodGet, "/api/imagegen/history"},
	} {
		status, raw := call(t, app, route[0], route[1], "", nil)
		assert.Equal(t, http.StatusUnauthorized, status, route[1])
		assert.Equal(t, constant.MsgAuthNoToken, decode[dto.MessageResponse](t, raw).Message)
	}
}

func TestChatFlow(t *testing.T) {
	app, _ := newTestApp(t)
	token := signup(t, app, "alice").Token

	status, raw := call(t, app, http.MethodPost, "/api/chat/session", token, nil)
	require.Equal(t, http.StatusCreated, status)
	sessionId := decode[dto.CreateChatSessionResponse](t, raw).SessionId
	assert.True(t, strings.HasPrefix(sessionId, "chat-"))

	status, raw = call(t, app, http.MethodPost, "/api/chat/send", token, fiber.Map{"message": "Hi", "sessionId": sessionId})
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.Equal(t, "echo: Hi", decode[dto.SendChatMessageResponse](t, raw).Reply)

	status, raw = call(t, app, http.MethodPost, "/api/chat/send", token, fiber.Map{"message": "break", "sessionId": sessionId})
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Request contains an invalid argument.", decode[dto.MessageResponse](t, raw).Message)

	status, raw = call(t, app, http.MethodPost, "/api/chat/send", token, fiber.Map{"sessionId": sessionId})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, constant.MsgChatFieldsRequired, decode[dto.MessageResponse](t, raw).Message)

	status, raw = call(t, app, http.MethodGet, "/api/chat/history/"+sessionId, token, nil)
	require.Equal(t, http.StatusOK, status)
	history := decode[dto.ChatHistoryResponse](t, raw).History
	require.Len(t, history, 5)
	assert.Equal(t, constant.ChatGreetingMessage, history[0].Message)
	assert.Equal(t, "Hi", history[1].Message)
	assert.Equal(t, "echo: Hi", history[2].Message)
	assert.Equal(t, "break", history[3].Message)
	assert.Equal(t, "Error: Request contains an invalid argument.", history[4].Message)

	status, raw = call(t, app, http.MethodGet, "/api/chat/history", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[dto.ChatHistoryResponse](t, raw).History, 5)

	status, raw = call(t, app, http.MethodGet, "/api/chat/sessions", token, nil)
	require.Equal(t, http.StatusOK, status)
	sessions := decode[dto.ChatSessionsResponse](t, raw).Sessions
	require.Len(t, sessions, 1)
	assert.Equal(t, "Hi", sessions[0].Title)

	// another user sees nothing and cannot delete it
	other := signup(t, app, "bob").Token
	status, raw = call(t, app, http.MethodGet, "/api/chat/sessions", other, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, decode[dto.ChatSessionsResponse](t, raw).Sessions)

	status, _ = call(t, app, http.MethodDelete, "/api/chat/sessions/"+sessionId, other, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, raw = call(t, app, http.MethodDelete, "/api/chat/sessions/"+sessionId, token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Session '"+sessionId+"' and 5 messages deleted successfully.", decode[dto.MessageResponse](t, raw).Message)

	status, raw = call(t, app, http.MethodGet, "/api/chat/sessions", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, decode[dto.ChatSessionsResponse](t, raw).Sessions)
}

func TestImageGenFlow(t *testing.T) {
	app, u := newTestApp(t)
	token := signup(t, app, "alice").Token

	status, raw := call(t, app, http.MethodPost, "/api/imagegen/generate", token, fiber.Map{"prompt": "a lighthouse", "aspectRatio": "16:9"})
	require.Equal(t, http.StatusOK, status, string(raw))
	single := decode[dto.GenerateImageResponse](t, raw)
	assert.True(t, strings.HasPrefix(single.ImageUrl, "data:image/png;base64,"))
	require.NotNil(t, single.ImageId)
	width, height := u.lastSize()
	assert.Equal(t, 1024, width)
	assert.Equal(t, 576, height)

	status, raw = call(t, app, http.MethodPost, "/api/imagegen/generate", token, fiber.Map{"prompt": "a lighthouse", "imageCount": 2})
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[dto.GenerateImageResponse](t, raw).Images, 2)

	status, raw = call(t, app, http.MethodPost, "/api/imagegen/generate", token, fiber.Map{"prompt": "busy"})
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Contains(t, decode[dto.MessageResponse](t, raw).Message, "Model loading error")

	status, raw = call(t, app, http.MethodPost, "/api/imagegen/generate", token, fiber.Map{"aspectRatio": "1:1"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, constant.MsgImagePromptRequired, decode[dto.MessageResponse](t, raw).Message)

	status, raw = call(t, app, http.MethodGet, "/api/imagegen/history", token, nil)
	require.Equal(t, http.StatusOK, status)
	history := decode[[]dto.ImageHistoryItem](t, raw)
	require.Len(t, history, 3)
	assert.Equal(t, *single.ImageId, history[2].Id)
	assert.Equal(t, "16:9", history[2].AspectRatio)
}

func TestHealthAndStatic(t *testing.T) {
	app, _ := newTestApp(t)

	status, raw := call(t, app, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, string(raw))

	status, raw = call(t, app, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(raw), "studio")

	status, raw = call(t, app, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"message":"Route not found"}`, string(raw))
}
