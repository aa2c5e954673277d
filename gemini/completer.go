// Package gemini implements shopinsight.Completer using Google Gemini.
package gemini

import (
	"context"
	"time"

	"github.com/fwojciec/shopinsight"
	"google.golang.org/genai"
)

const (
	// DefaultModel is the Gemini model used when none is configured.
	DefaultModel = "gemini-2.5-flash"

	// DefaultTimeout bounds a single completion call.
	DefaultTimeout = 120 * time.Second
)

// Ensure Completer implements shopinsight.Completer at compile time.
var _ shopinsight.Completer = (*Completer)(nil)

// Completer sends prompts to Gemini and returns the reply text.
type Completer struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// Option configures a Completer.
type Option func(*Completer)

// WithTimeout bounds each Complete call. Zero or negative disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Completer) {
		c.timeout = d
	}
}

// NewCompleter creates a new Completer. An empty model selects DefaultModel.
func NewCompleter(client *genai.Client, model string, opts ...Option) *Completer {
	if model == "" {
		model = DefaultModel
	}
	c := &Completer{client: client, model: model, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Complete sends prompt as a single user turn.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", shopinsight.Errorf(shopinsight.EINVALID, "prompt required")
	}
	if c.client == nil {
		return "", shopinsight.Errorf(shopinsight.EINVALID, "gemini client not configured")
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", shopinsight.Errorf(shopinsight.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// Replies are constrained to JSON since every prompt asks for it.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You analyze Shopify storefront HTML. Reply only with the JSON the user asks for, with no commentary.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}
