package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	ai "github.com/spetersoncode/alchemy"
	"github.com/spetersoncode/alchemy/fallback"
	"github.com/spetersoncode/alchemy/provider/anthropic"
	"github.com/spetersoncode/alchemy/provider/google"
	"github.com/spetersoncode/alchemy/provider/openai"
	"github.com/spetersoncode/alchemy/serp"
)

// Config holds the CLI configuration loaded from environment variables.
type Config struct {
	LogLevel string // debug, info, warn, error

	// Primary provider tried first by the fallback chain; the rest follow
	// in default order.
	PrimaryProvider string

	// API keys
	AnthropicKey string
	OpenAIKey    string
	GoogleKey    string
	SerpKey      string

	// Model overrides
	AnthropicModel string
	OpenAIModel    string
	GoogleModel    string
}

// LoadConfig loads configuration from environment variables. A .env file is
// loaded first if present.
func LoadConfig() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		LogLevel:        getEnvOrDefault("ALCHEMY_LOG_LEVEL", "info"),
		PrimaryProvider: os.Getenv("ALCHEMY_PROVIDER"),
		AnthropicKey:    os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		GoogleKey:       os.Getenv("GOOGLE_API_KEY"),
		SerpKey:         os.Getenv("SERP_API_KEY"),
		AnthropicModel:  os.Getenv("ALCHEMY_ANTHROPIC_MODEL"),
		OpenAIModel:     os.Getenv("ALCHEMY_OPENAI_MODEL"),
		GoogleModel:     os.Getenv("ALCHEMY_GOOGLE_MODEL"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that at least one language model provider is configured.
func (c *Config) Validate() error {
	if c.AnthropicKey == "" && c.OpenAIKey == "" && c.GoogleKey == "" {
		return fmt.Errorf("no provider configured: set ANTHROPIC_API_KEY, OPENAI_API_KEY, or GOOGLE_API_KEY")
	}
	switch c.PrimaryProvider {
	case "", "anthropic", "openai", "google":
	default:
		return fmt.Errorf("unknown provider: %s (must be anthropic, openai, or google)", c.PrimaryProvider)
	}
	return nil
}

// BuildChain creates the fallback chain from the configured providers.
// Providers are tried in default order (anthropic, openai, google) unless
// ALCHEMY_PROVIDER promotes one to the front.
func (c *Config) BuildChain(ctx context.Context) (*fallback.Chain, error) {
	build := map[string]func() (ai.Gateway, error){
		"anthropic": func() (ai.Gateway, error) {
			if c.AnthropicKey == "" {
				return nil, nil
			}
			var opts []anthropic.ClientOption
			if c.AnthropicModel != "" {
				opts = append(opts, anthropic.WithModel(anthropic.ChatModel(c.AnthropicModel)))
			}
			return anthropic.New(c.AnthropicKey, opts...), nil
		},
		"openai": func() (ai.Gateway, error) {
			if c.OpenAIKey == "" {
				return nil, nil
			}
			var opts []openai.ClientOption
			if c.OpenAIModel != "" {
				opts = append(opts, openai.WithModel(openai.ChatModel(c.OpenAIModel)))
			}
			return openai.New(c.OpenAIKey, opts...), nil
		},
		"google": func() (ai.Gateway, error) {
			if c.GoogleKey == "" {
				return nil, nil
			}
			var opts []google.ClientOption
			if c.GoogleModel != "" {
				opts = append(opts, google.WithModel(google.ChatModel(c.GoogleModel)))
			}
			return google.New(ctx, c.GoogleKey, opts...)
		},
	}

	order := []string{"anthropic", "openai", "google"}
	if c.PrimaryProvider != "" {
		reordered := []string{c.PrimaryProvider}
		for _, name := range order {
			if name != c.PrimaryProvider {
				reordered = append(reordered, name)
			}
		}
		order = reordered
	}

	var gateways []ai.Gateway
	for _, name := range order {
		gw, err := build[name]()
		if err != nil {
			return nil, fmt.Errorf("creating %s gateway: %w", name, err)
		}
		if gw != nil {
			gateways = append(gateways, gw)
		}
	}
	return fallback.New(gateways...), nil
}

// BuildImages creates the image provider, or nil when OpenAI is not
// configured.
func (c *Config) BuildImages() ai.ImageProvider {
	if c.OpenAIKey == "" {
		return nil
	}
	return openai.NewImageClient(c.OpenAIKey)
}

// BuildSearch creates the search client, or nil when SerpAPI is not
// configured.
func (c *Config) BuildSearch() ai.Searcher {
	if c.SerpKey == "" {
		return nil
	}
	return serp.New(c.SerpKey)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
