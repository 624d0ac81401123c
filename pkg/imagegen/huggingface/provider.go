package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"genai-studio-be/internal/constant"
	"genai-studio-be/pkg/imagegen"
)

const (
	DefaultBaseURL = "https://api-inference.huggingface.co"
	DefaultModel   = "stabilityai/stable-diffusion-xl-base-1.0"
)

type parameters struct {
	Width             int     `json:"width"`
	Height            int     `json:"height"`
	NumInferenceSteps int     `json:"num_inference_steps"`
	GuidanceScale     float64 `json:"guidance_scale"`
}

type options struct {
	WaitForModel bool `json:"wait_for_model"`
	UseCache     bool `json:"use_cache"`
}

type inferenceRequest struct {
	Inputs     string     `json:"inputs"`
	Parameters parameters `json:"parameters"`
	Options    options    `json:"options"`
}

type Provider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewProvider(apiKey, baseURL, model string, timeout time.Duration) *Provider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Provider{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

func (p *Provider) Model() string {
	return p.model
}

// Configured rejects empty keys and the sample-env placeholders.
func (p *Provider) Configured() bool {
	key := strings.TrimSpace(p.apiKey)
	if key == "" {
		return false
	}
	for _, placeholder := range constant.ImagePlaceholderKeys {
		if key == placeholder {
			return false
		}
	}
	return true
}

func (p *Provider) Generate(ctx context.Context, in imagegen.Request) (*imagegen.Result, error) {
	payload := inferenceRequest{
		Inputs: in.Prompt,
		Parameters: parameters{
			Width:             in.Width,
			Height:            in.Height,
			NumInferenceSteps: in.NumInferenceSteps,
			GuidanceScale:     in.GuidanceScale,
		},
		Options: options{WaitForModel: true, UseCache: true},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", p.baseURL, p.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", p.apiKey))
	req.Header.Set("Accept", "image/png")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &imagegen.StatusError{Code: resp.StatusCode, Body: body}
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" || !strings.HasPrefix(contentType, "image/") {
		contentType = "image/png"
	}
	return &imagegen.Result{Data: body, ContentType: contentType}, nil
}
