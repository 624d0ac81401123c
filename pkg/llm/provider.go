package llm

import (
	"context"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a chat turn in a provider-agnostic format
type Message struct {
	Role    string
	Content string
}

type Option func(*Options)

type Options struct {
	Temperature *float64
	Model       string // overrides the provider default
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = &temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// LLMProvider is implemented by every text generation backend.
type LLMProvider interface {
	// Chat sends the given turns and returns the model's reply.
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate sends a single user turn.
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)

	// Configured reports whether credentials are present.
	Configured() bool
}
