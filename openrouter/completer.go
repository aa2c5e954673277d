// Package openrouter implements shopinsight.Completer against the
// OpenRouter chat-completions API.
package openrouter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/shopinsight"
	"github.com/goccy/go-json"
)

const (
	// DefaultBaseURL is the OpenRouter API root.
	DefaultBaseURL = "https://openrouter.ai/api/v1"

	// DefaultModel is a free-tier model that follows JSON-only instructions well.
	DefaultModel = "deepseek/deepseek-chat-v3-0324:free"

	// DefaultTimeout bounds a single completion call.
	DefaultTimeout = 120 * time.Second

	maxErrorBody = 512
)

// Ensure Completer implements shopinsight.Completer at compile time.
var _ shopinsight.Completer = (*Completer)(nil)

// Completer sends a single user message per call and returns the text of
// the first choice.
type Completer struct {
	apiKey  string
	baseURL string
	model   string
	timeout time.Duration
	client  *http.Client
}

// Option configures a Completer.
type Option func(*Completer)

// WithBaseURL overrides the API root, e.g. for a compatible proxy.
func WithBaseURL(u string) Option {
	return func(c *Completer) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithModel sets the model identifier.
func WithModel(model string) Option {
	return func(c *Completer) {
		c.model = model
	}
}

// WithTimeout bounds each Complete call. Zero or negative disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Completer) {
		c.timeout = d
	}
}

// WithHTTPClient replaces the HTTP client. The client is used as is; the
// call timeout is applied through the request context. A nil client keeps
// the default.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Completer) {
		c.client = client
	}
}

// NewCompleter creates a Completer authenticated with apiKey.
func NewCompleter(apiKey string, opts ...Option) *Completer {
	c := &Completer{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		model:   DefaultModel,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = &http.Client{}
	}
	return c
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends prompt as a single user message.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", shopinsight.Errorf(shopinsight.EINVALID, "OpenRouter API key required")
	}

	body, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", shopinsight.Errorf(shopinsight.EINVALID, "invalid request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openrouter request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read openrouter response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("openrouter returned HTTP %d: %s", resp.StatusCode, snippet(raw))
	}

	var out chatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode openrouter response: %w", err)
	}
	if out.Error != nil && out.Error.Message != "" {
		return "", fmt.Errorf("openrouter error: %s", out.Error.Message)
	}
	if len(out.Choices) == 0 {
		return "", shopinsight.Errorf(shopinsight.EINTERNAL, "openrouter returned no choices")
	}
	return out.Choices[0].Message.Content, nil
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > maxErrorBody {
		s = s[:maxErrorBody] + "..."
	}
	return s
}
