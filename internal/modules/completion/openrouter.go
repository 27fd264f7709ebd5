package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const DefaultEndpoint = "https://openrouter.ai/api/v1/chat/completions"

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message *chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// OpenRouterConfig configures an OpenRouter (OpenAI-compatible) chat completions client.
type OpenRouterConfig struct {
	Endpoint  string
	APIKey    string
	Model     string
	MaxTokens int
	// Timeout of zero leaves the request bounded only by the caller's context.
	Timeout time.Duration
}

// OpenRouter sends one user-role message per prompt and returns the first choice.
type OpenRouter struct {
	cfg    OpenRouterConfig
	client *http.Client
}

func NewOpenRouter(cfg OpenRouterConfig) *OpenRouter {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	return &OpenRouter{cfg: cfg, client: &http.Client{Timeout: cfg.Timeout}}
}

func (o *OpenRouter) Complete(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("openrouter: empty prompt: %w", ErrInvalidInput)
	}

	reqBody, err := json.Marshal(chatRequest{
		Model:     o.cfg.Model,
		Messages:  []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens: o.cfg.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openrouter: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.cfg.Endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("openrouter: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.cfg.APIKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openrouter: do request: %w: %w", ErrUpstreamUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("openrouter: read response: %w: %w", ErrUpstreamUnreachable, err)
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("openrouter: unmarshal response: %w: %w", ErrUpstreamMalformed, err)
	}
	if cr.Error != nil {
		return "", fmt.Errorf("openrouter: api error: %s: %w", cr.Error.Message, ErrUpstreamMalformed)
	}
	if len(cr.Choices) == 0 || cr.Choices[0].Message == nil {
		return "", fmt.Errorf("openrouter: response has no choices (status %d): %w", resp.StatusCode, ErrUpstreamMalformed)
	}
	return cr.Choices[0].Message.Content, nil
}
