package factory

import (
	"fmt"
	"strings"
	"time"

	"genai-studio-be/pkg/llm"
	"genai-studio-be/pkg/llm/gemini"
	"genai-studio-be/pkg/llm/ollama"
)

const (
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
)

type Params struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
	Timeout  time.Duration
}

// NewLLMProvider builds the chat backend named by p.Provider; empty means gemini.
func NewLLMProvider(p Params) (llm.LLMProvider, error) {
	switch strings.ToLower(p.Provider) {
	case "", ProviderGemini:
		return gemini.NewProvider(p.APIKey, p.BaseURL, p.Model, p.Timeout), nil
	case ProviderOllama:
		return ollama.NewOllamaProvider(p.BaseURL, p.Model, p.Timeout), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", p.Provider)
	}
}
