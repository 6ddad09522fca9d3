// Package llm sends role-tagged chat messages to a language model and
// returns its text reply.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/nyxb/conmitmoji/internal/log"
)

const (
	// DefaultMaxTokens caps the reply length when no limit is configured.
	DefaultMaxTokens = 500

	maxRetries     = 3
	initialBackoff = 1 * time.Second
)

// ErrAPIKeyRequired is returned when no API key is configured.
var ErrAPIKeyRequired = errors.New("API key required")

// Role identifies the author of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single chat turn.
type Message struct {
	Role    Role
	Content string
}

// Client completes a conversation.
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// Options configures an OpenAI client.
type Options struct {
	APIKey string

	// BaseURL replaces the default OpenAI endpoint, for proxies and
	// compatible servers. Empty uses the SDK default.
	BaseURL string

	Model     string
	MaxTokens int

	// HTTPClient overrides the transport. Nil uses http.DefaultClient.
	HTTPClient *http.Client
}

// OpenAI is a Client backed by the OpenAI chat completions API. Transient
// failures are retried with exponential backoff.
type OpenAI struct {
	client         openai.Client
	model          string
	maxTokens      int64
	maxRetries     uint64
	initialBackoff time.Duration
}

// NewOpenAI creates a client from opts.
func NewOpenAI(opts Options) (*OpenAI, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("%w: set MOJI_OPENAI_API_KEY with `moji config set MOJI_OPENAI_API_KEY=<key>`", ErrAPIKeyRequired)
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		// Retries are ours, so the SDK must not retry on its own.
		option.WithMaxRetries(0),
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	if opts.HTTPClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(opts.HTTPClient))
	}

	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	return &OpenAI{
		client:         openai.NewClient(reqOpts...),
		model:          opts.Model,
		maxTokens:      int64(maxTokens),
		maxRetries:     maxRetries,
		initialBackoff: initialBackoff,
	}, nil
}

// Complete sends messages and returns the first choice's content.
func (c *OpenAI) Complete(ctx context.Context, messages []Message) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		Messages:    toParams(messages),
		MaxTokens:   openai.Int(c.maxTokens),
		Temperature: openai.Float(0),
		TopP:        openai.Float(0.1),
	}

	l := log.FromContext(ctx)
	var content string
	attempt := 0

	op := func() error {
		attempt++
		start := time.Now()
		resp, err := c.client.Chat.Completions.New(ctx, params)
		l.Debug("chat completion", "model", c.model, "attempt", attempt, "duration", time.Since(start).Round(time.Millisecond))
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			if !isRetryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		if len(resp.Choices) == 0 {
			return backoff.Permanent(errors.New("unexpected response format: no choices"))
		}
		content = resp.Choices[0].Message.Content
		return nil
	}

	if err := backoff.Retry(op, c.backOff(ctx)); err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	return strings.TrimSpace(content), nil
}

func (c *OpenAI) backOff(ctx context.Context) backoff.BackOff {
	// BackOff implementations are stateful; build a fresh one per call.
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.initialBackoff
	bo.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(bo, c.maxRetries), ctx)
}

func toParams(messages []Message) []openai.ChatCompletionMessageParamUnion {
	params := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			params = append(params, openai.SystemMessage(m.Content))
		case RoleAssistant:
			params = append(params, openai.AssistantMessage(m.Content))
		default:
			params = append(params, openai.UserMessage(m.Content))
		}
	}
	return params
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch code := apiErr.StatusCode; {
		case code == http.StatusRequestTimeout, code == http.StatusConflict, code == http.StatusTooManyRequests:
			return true
		case code >= 500:
			return true
		default:
			return false
		}
	}

	// No HTTP response at all: connection refused, reset, DNS, timeouts.
	var netErr net.Error
	var opErr *net.OpError
	return errors.As(err, &netErr) || errors.As(err, &opErr)
}
