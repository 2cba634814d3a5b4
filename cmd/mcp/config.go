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

// Config holds the MCP server configuration loaded from environment
// variables.
type Config struct {
	PrimaryProvider string

	AnthropicKey string
	OpenAIKey    string
	GoogleKey    string
	SerpKey      string
}

// LoadConfig loads configuration from environment variables. A .env file is
// loaded first if present.
func LoadConfig() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		PrimaryProvider: os.Getenv("ALCHEMY_PROVIDER"),
		AnthropicKey:    os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		GoogleKey:       os.Getenv("GOOGLE_API_KEY"),
		SerpKey:         os.Getenv("SERP_API_KEY"),
	}

	if cfg.AnthropicKey == "" && cfg.OpenAIKey == "" && cfg.GoogleKey == "" {
		return nil, fmt.Errorf("no provider configured: set ANTHROPIC_API_KEY, OPENAI_API_KEY, or GOOGLE_API_KEY")
	}
	switch cfg.PrimaryProvider {
	case "", "anthropic", "openai", "google":
	default:
		return nil, fmt.Errorf("unknown provider: %s (must be anthropic, openai, or google)", cfg.PrimaryProvider)
	}
	return cfg, nil
}

// BuildChain creates the fallback chain from the configured providers, with
// ALCHEMY_PROVIDER promoted to the front when set.
func (c *Config) BuildChain(ctx context.Context) (*fallback.Chain, error) {
	var gateways []ai.Gateway
	for _, name := range providerOrder(c.PrimaryProvider) {
		switch name {
		case "anthropic":
			if c.AnthropicKey != "" {
				gateways = append(gateways, anthropic.New(c.AnthropicKey))
			}
		case "openai":
			if c.OpenAIKey != "" {
				gateways = append(gateways, openai.New(c.OpenAIKey))
			}
		case "google":
			if c.GoogleKey != "" {
				gw, err := google.New(ctx, c.GoogleKey)
				if err != nil {
					return nil, fmt.Errorf("creating google gateway: %w", err)
				}
				gateways = append(gateways, gw)
			}
		}
	}
	return fallback.New(gateways...), nil
}

func providerOrder(primary string) []string {
	order := []string{"anthropic", "openai", "google"}
	if primary == "" {
		return order
	}
	reordered := []string{primary}
	for _, name := range order {
		if name != primary {
			reordered = append(reordered, name)
		}
	}
	return reordered
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
