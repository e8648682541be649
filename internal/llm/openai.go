package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_interface"
	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

const (
	DefaultEndpoint = "https://api.openai.com/v1/chat/completions"
	DefaultModel    = "gpt-4"

	defaultTimeout          = 120 * time.Second
	defaultFailureThreshold = 3
	defaultOpenDuration     = time.Minute
	maxErrorBody            = 2048
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Config struct {
	Endpoint string
	APIKey   string
	Model    string
	// Timeout bounds one HTTP round trip.
	Timeout time.Duration
	// FailureThreshold consecutive failures open the breaker for OpenDuration.
	FailureThreshold uint32
	OpenDuration     time.Duration
}

// OpenAIClient talks to an OpenAI-compatible chat completions endpoint
// through a circuit breaker.
type OpenAIClient struct {
	endpoint   string
	apiKey     string
	model      string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[string]
	logger     *zap.Logger
}

var _ blog_interface.CompletionClient = (*OpenAIClient)(nil)

func NewOpenAIClient(cfg Config, logger *zap.Logger) *OpenAIClient {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = defaultFailureThreshold
	}
	if cfg.OpenDuration <= 0 {
		cfg.OpenDuration = defaultOpenDuration
	}

	c := &OpenAIClient{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}

	threshold := cfg.FailureThreshold
	c.breaker = gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        "openai",
		MaxRequests: 1,
		Timeout:     cfg.OpenDuration,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("completion circuit breaker changed state",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
		// A cancelled caller says nothing about the upstream.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})
	return c
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// Complete returns the first choice's content. Calls made while the breaker
// is open fail fast with blog_models.ErrLLMUnavailable.
func (c *OpenAIClient) Complete(ctx context.Context, prompt blog_models.CompletionPrompt) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: api key not configured", blog_models.ErrLLMUnavailable)
	}

	messages := make([]Message, 0, 2)
	if prompt.System != "" {
		messages = append(messages, Message{Role: "system", Content: prompt.System})
	}
	messages = append(messages, Message{Role: "user", Content: prompt.User})

	content, err := c.breaker.Execute(func() (string, error) {
		return c.chat(ctx, chatRequest{
			Model:       c.model,
			Messages:    messages,
			Temperature: prompt.Temperature,
			MaxTokens:   prompt.MaxTokens,
		})
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", fmt.Errorf("%w: %v", blog_models.ErrLLMUnavailable, err)
	}
	return content, err
}

func (c *OpenAIClient) chat(ctx context.Context, reqBody chatRequest) (string, error) {
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read llm response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return "", fmt.Errorf("llm api error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse llm response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", errors.New("no choices returned from llm")
	}
	return chatResp.Choices[0].Message.Content, nil
}
