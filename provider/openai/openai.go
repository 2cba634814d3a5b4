// Package openai implements the alchemy.Gateway and alchemy.ImageProvider
// contracts over the OpenAI SDK.
package openai

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	ai "github.com/spetersoncode/alchemy"
)

// ChatModel identifies an OpenAI chat model.
type ChatModel string

const (
	GPT4o     ChatModel = "gpt-4o"
	GPT4oMini ChatModel = "gpt-4o-mini"

	// DefaultChatModel is the recommended default model.
	DefaultChatModel ChatModel = GPT4o
)

// Client wraps the OpenAI SDK to implement ai.Gateway.
type Client struct {
	client *openai.Client
	model  ChatModel
}

// New creates a new OpenAI gateway with the given API key.
func New(apiKey string, opts ...ClientOption) *Client {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	c := &Client{
		client: &client,
		model:  DefaultChatModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClientOption configures the OpenAI client.
type ClientOption func(*Client)

// WithModel sets the default model for requests.
func WithModel(model ChatModel) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// Provider returns ai.ProviderOpenAI.
func (c *Client) Provider() ai.Provider { return ai.ProviderOpenAI }

// Generate sends a single prompt and returns the completed text.
func (c *Client) Generate(ctx context.Context, prompt string, opts ...ai.Option) (*ai.Response, error) {
	options := ai.ApplyOptions(opts...)
	model := c.model
	if options.Model != "" {
		model = ChatModel(options.Model)
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if options.System != "" {
		messages = append(messages, openai.SystemMessage(options.System))
	}
	messages = append(messages, openai.UserMessage(prompt))

	params := openai.ChatCompletionNewParams{
		Model:    string(model),
		Messages: messages,
	}
	if options.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(options.MaxTokens))
	}
	if options.Temperature != nil {
		params.Temperature = openai.Float(*options.Temperature)
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, wrapError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, ai.NewProviderError(ai.ProviderOpenAI, "openai returned no choices", 0, nil)
	}

	return &ai.Response{
		Content:  resp.Choices[0].Message.Content,
		Provider: ai.ProviderOpenAI,
		Model:    string(model),
		Usage: ai.Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
		},
	}, nil
}

var _ ai.Gateway = (*Client)(nil)
