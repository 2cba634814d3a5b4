package alchemy

import "context"

// Provider identifies an AI provider.
type Provider string

// String returns the provider identifier.
func (p Provider) String() string { return string(p) }

// Supported providers.
const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
	ProviderGoogle    Provider = "google"
)

// Gateway is the uniform contract to a single language-model backend.
//
// A gateway makes exactly one attempt per call: no internal retries and no
// fallback, that is the fallback package's job. Implementations never panic;
// every failure (network, auth, rate limit, malformed response) comes back
// as a categorized error.
type Gateway interface {
	// Provider returns the backend's identity, used for response
	// attribution and failure reporting.
	Provider() Provider

	// Generate sends a single prompt and returns the completed text.
	Generate(ctx context.Context, prompt string, opts ...Option) (*Response, error)
}

// Response represents a completed generation from a gateway.
type Response struct {
	Content string `json:"content,omitempty"`
	// Provider is the backend that actually answered. When a fallback
	// chain is in use this may differ from the configured primary.
	Provider Provider `json:"provider,omitempty"`
	Model    string   `json:"model,omitempty"`
	Usage    Usage    `json:"usage"`
}

// Usage contains token usage information for a request.
type Usage struct {
	InputTokens  int `json:"inputTokens"`
	OutputTokens int `json:"outputTokens"`
}
