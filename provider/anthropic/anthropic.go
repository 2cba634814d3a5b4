// Package anthropic implements the alchemy.Gateway contract over the
// Anthropic SDK.
package anthropic

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	ai "github.com/spetersoncode/alchemy"
)

// ChatModel identifies an Anthropic model.
type ChatModel string

const (
	ClaudeSonnet45 ChatModel = "claude-sonnet-4-5"
	ClaudeHaiku45  ChatModel = "claude-haiku-4-5"

	// DefaultChatModel is the recommended default model.
	DefaultChatModel ChatModel = ClaudeSonnet45
)

// Client wraps the Anthropic SDK to implement ai.Gateway.
type Client struct {
	client *anthropic.Client
	model  ChatModel
}

// New creates a new Anthropic gateway with the given API key.
func New(apiKey string, opts ...ClientOption) *Client {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	c := &Client{
		client: &client,
		model:  DefaultChatModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClientOption configures the Anthropic client.
type ClientOption func(*Client)

// WithModel sets the default model for requests.
func WithModel(model ChatModel) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// Provider returns ai.ProviderAnthropic.
func (c *Client) Provider() ai.Provider { return ai.ProviderAnthropic }

// Generate sends a single prompt and returns the completed text.
func (c *Client) Generate(ctx context.Context, prompt string, opts ...ai.Option) (*ai.Response, error) {
	options := ai.ApplyOptions(opts...)
	model := c.model
	if options.Model != "" {
		model = ChatModel(options.Model)
	}

	maxTokens := int64(2048)
	if options.MaxTokens > 0 {
		maxTokens = int64(options.MaxTokens)
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if options.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: options.System}}
	}
	if options.Temperature != nil {
		params.Temperature = anthropic.Float(*options.Temperature)
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, wrapError(err)
	}

	content := ""
	for _, block := range resp.Content {
		if block.Type == "text" {
			content += block.Text
		}
	}

	return &ai.Response{
		Content:  content,
		Provider: ai.ProviderAnthropic,
		Model:    string(model),
		Usage: ai.Usage{
			InputTokens:  int(resp.Usage.InputTokens),
			OutputTokens: int(resp.Usage.OutputTokens),
		},
	}, nil
}

var _ ai.Gateway = (*Client)(nil)
