// Package llm wraps the OpenAI-compatible model gateway used by the review
// pipeline.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/koreview/revu/pkg/config"
)

// Options tune a single completion request.
type Options struct {
	// EnableSequentialThinking asks the gateway for step-by-step reasoning.
	// Mapped to a reasoning-mode system instruction for gateways that
	// don't expose a dedicated switch.
	EnableSequentialThinking bool

	// MaxTokens caps the response length. Zero means gateway default.
	MaxTokens int

	// Temperature overrides the default of 0.2 when non-nil.
	Temperature *float32

	// UseToolSearch lets the gateway consult its search tool before
	// answering. Passed through as a system instruction.
	UseToolSearch bool
}

// Client is the concrete gateway client. Pipeline code depends on the
// stage.LLMClient interface; this type satisfies it.
type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
}

// NewClient builds a Client from gateway configuration.
func NewClient(cfg *config.LLMConfig) *Client {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}
	return &Client{
		api:     openai.NewClientWithConfig(apiCfg),
		model:   cfg.Model,
		timeout: cfg.RequestTimeout,
	}
}

const (
	sequentialThinkingInstruction = "문제를 단계별로 나누어 순차적으로 깊이 생각한 뒤 최종 답변을 작성하세요."
	toolSearchInstruction         = "답변 전에 사용 가능한 검색 도구를 활용하여 관련 정보를 확인하세요."
)

// Complete sends a prompt and returns the assistant text. One retry on
// transient transport errors; model-side errors are returned as-is.
func (c *Client) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.2,
	}
	if opts.Temperature != nil {
		req.Temperature = *opts.Temperature
	}
	if opts.MaxTokens > 0 {
		req.MaxTokens = opts.MaxTokens
	}
	if opts.EnableSequentialThinking {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: sequentialThinkingInstruction,
		})
	}
	if opts.UseToolSearch {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: toolSearchInstruction,
		})
	}
	req.Messages = append(req.Messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	text, err := c.complete(ctx, req)
	if err != nil && isTransient(err) {
		slog.Warn("LLM request failed, retrying once", "error", err)
		text, err = c.complete(ctx, req)
	}
	if err != nil {
		return "", fmt.Errorf("llm completion failed: %w", err)
	}
	return text, nil
}

func (c *Client) complete(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(callCtx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}

// isTransient reports whether an error is worth one retry: network faults,
// timeouts, and gateway 5xx / rate-limit responses.
func isTransient(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == 429 || apiErr.HTTPStatusCode >= 500
	}
	return false
}
