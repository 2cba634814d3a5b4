// Package google implements the alchemy.Gateway contract over the Google
// GenAI SDK (Gemini).
package google

import (
	"context"

	ai "github.com/spetersoncode/alchemy"
	"google.golang.org/genai"
)

// ChatModel identifies a Gemini model.
type ChatModel string

const (
	Gemini25Flash ChatModel = "gemini-2.5-flash"
	Gemini25Pro   ChatModel = "gemini-2.5-pro"

	// DefaultChatModel is the recommended default model.
	DefaultChatModel ChatModel = Gemini25Flash
)

// Client wraps the Google GenAI SDK to implement ai.Gateway.
type Client struct {
	client *genai.Client
	model  ChatModel
}

// New creates a new Gemini gateway with the given API key.
func New(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	c := &Client{
		client: client,
		model:  DefaultChatModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ClientOption configures the Google client.
type ClientOption func(*Client)

// WithModel sets the default model for requests.
func WithModel(model ChatModel) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// Provider returns ai.ProviderGoogle.
func (c *Client) Provider() ai.Provider { return ai.ProviderGoogle }

// Generate sends a single prompt and returns the completed text.
func (c *Client) Generate(ctx context.Context, prompt string, opts ...ai.Option) (*ai.Response, error) {
	options := ai.ApplyOptions(opts...)
	model := c.model
	if options.Model != "" {
		model = ChatModel(options.Model)
	}

	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: prompt}}},
	}

	config := &genai.GenerateContentConfig{}
	if options.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: options.System}},
		}
	}
	if options.MaxTokens > 0 {
		config.MaxOutputTokens = int32(options.MaxTokens)
	}
	if options.Temperature != nil {
		temp := float32(*options.Temperature)
		config.Temperature = &temp
	}

	resp, err := c.client.Models.GenerateContent(ctx, string(model), contents, config)
	if err != nil {
		return nil, wrapError(err)
	}

	content := ""
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			content += part.Text
		}
	}

	usage := ai.Usage{}
	if resp.UsageMetadata != nil {
		usage.InputTokens = int(resp.UsageMetadata.PromptTokenCount)
		usage.OutputTokens = int(resp.UsageMetadata.CandidatesTokenCount)
	}

	return &ai.Response{
		Content:  content,
		Provider: ai.ProviderGoogle,
		Model:    string(model),
		Usage:    usage,
	}, nil
}

var _ ai.Gateway = (*Client)(nil)
