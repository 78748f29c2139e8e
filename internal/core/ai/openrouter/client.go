package openrouter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"homechef/internal/core/ai/provider"
	"homechef/internal/infrastructure/config"
	"homechef/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const baseURL = "https://openrouter.ai/api/v1"

// Client calls the OpenRouter chat-completions API. It implements
// provider.Generator.
type Client struct {
	config *config.Config
	client *resty.Client
}

// NewClient creates an OpenRouter client from the configured API key, model
// and timeout.
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.OpenRouter.Timeout).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.OpenRouter.APIKey)).
		SetHeader("HTTP-Referer", "https://homechef.app").
		SetHeader("X-Title", "HomeChef")

	return &Client{
		config: cfg,
		client: client,
	}
}

// Generate issues one chat-completion call and returns the reply text.
// Transport failures and non-200 statuses surface as ErrRemoteUnavailable;
// a blank completion surfaces as ErrRemoteEmptyResponse. No retry, no
// response caching.
func (c *Client) Generate(ctx context.Context, messages []provider.Message) (string, error) {
	req := map[string]interface{}{
		"model":      c.config.OpenRouter.Model,
		"messages":   messages,
		"max_tokens": c.config.OpenRouter.MaxTokens,
	}

	common.LogDebug("sending request to OpenRouter",
		zap.String("model", c.config.OpenRouter.Model),
		zap.Int("messages", len(messages)),
	)

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")
	if err != nil {
		common.LogError("failed to reach OpenRouter",
			zap.Error(err),
			zap.String("model", c.config.OpenRouter.Model),
		)
		return "", fmt.Errorf("%w: %s", common.ErrRemoteUnavailable, err.Error())
	}

	if resp.StatusCode() != http.StatusOK {
		common.LogError("OpenRouter returned error status",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("model", c.config.OpenRouter.Model),
		)
		return "", fmt.Errorf("%w: status %d", common.ErrRemoteUnavailable, resp.StatusCode())
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("%w: malformed response: %s", common.ErrRemoteUnavailable, err.Error())
	}

	if len(result.Choices) == 0 || strings.TrimSpace(result.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%w: no completion text", common.ErrRemoteEmptyResponse)
	}

	content := result.Choices[0].Message.Content
	common.LogDebug("received OpenRouter completion",
		zap.String("model", c.config.OpenRouter.Model),
		zap.Int("content_length", len(content)),
	)
	return content, nil
}
