package deepseek

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/oilwatch/backend/internal/domain"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"
	"golang.org/x/time/rate"
)

const defaultModel = "deepseek-chat"

// Client generates encyclopedia entries through a DeepSeek-compatible
// chat-completions endpoint, one record per request.
type Client struct {
	api         *openai.Client
	model       string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates an enrichment client. requestDelay spaces out calls to
// respect the upstream rate limit; zero disables the spacing.
func NewClient(apiKey, baseURL, model string, requestDelay time.Duration) *Client {
	api := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithRequestTimeout(120*time.Second),
	)

	if model == "" {
		model = defaultModel
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if requestDelay > 0 {
		limiter = rate.NewLimiter(rate.Every(requestDelay), 1)
	}

	return &Client{
		api:         &api,
		model:       model,
		rateLimiter: limiter,
	}
}

// SetDebug enables logging of raw completions.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Enrich requests one schema-conforming encyclopedia entry for one catalog
// record. Empty or malformed completions fail the call; the caller decides
// whether to continue the batch.
func (c *Client) Enrich(ctx context.Context, rec domain.ProductRecord) (*domain.EncyclopediaEntry, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}

	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(taskPrompt + "\n\nINPUT:\n" + string(payload)),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
		Temperature: openai.Float(0),
		MaxTokens:   openai.Int(2500),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEnrichmentFailed, err)
	}

	if len(resp.Choices) == 0 {
		return nil, domain.ErrEmptyCompletion
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return nil, domain.ErrEmptyCompletion
	}

	if c.debug {
		log.Printf("[DEEPSEEK] raw completion for %s: %s", rec.ItemNo, content)
	}

	var entry domain.EncyclopediaEntry
	if err := json.Unmarshal([]byte(content), &entry); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", domain.ErrEnrichmentFailed, err)
	}

	return &entry, nil
}
