package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"genai-studio-be/internal/model"
	"genai-studio-be/internal/repository/unitofwork"
	"genai-studio-be/pkg/database"
	"genai-studio-be/pkg/imagegen"
	"genai-studio-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()
	db, err := database.NewTestDB(uuid.NewString())
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return unitofwork.NewRepositoryFactory(db)
}

type fakeLLM struct {
	mu         sync.Mutex
	configured bool
	reply      string
	err        error
	prompts    []string
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return f.Generate(ctx, history[len(history)-1].Content, options...)
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func (f *fakeLLM) Configured() bool {
	return f.configured
}

type fakeImageProvider struct {
	configured bool
	calls      atomic.Int32
	// generate receives the 1-based call number
	generate func(call int32, req imagegen.Request) (*imagegen.Result, error)
}

func (f *fakeImageProvider) Generate(ctx context.Context, req imagegen.Request) (*imagegen.Result, error) {
	return f.generate(f.calls.Add(1), req)
}

func (f *fakeImageProvider) Configured() bool {
	return f.configured
}

func (f *fakeImageProvider) Model() string {
	return "test/sdxl"
}
