// Package fallback provides an ordered chain of gateways that are tried
// in sequence until one succeeds.
package fallback

import (
	"context"
	"log/slog"

	ai "github.com/spetersoncode/alchemy"
)

// Chain tries each configured gateway in order and returns the first
// successful response. Order is fixed at construction time.
type Chain struct {
	gateways []ai.Gateway
}

// New creates a chain that consults gateways in the given order.
func New(gateways ...ai.Gateway) *Chain {
	return &Chain{gateways: gateways}
}

// Providers returns the provider order of the chain.
func (c *Chain) Providers() []ai.Provider {
	providers := make([]ai.Provider, len(c.gateways))
	for i, gw := range c.gateways {
		providers[i] = gw.Provider()
	}
	return providers
}

// Generate invokes gateways in order until one succeeds. Each failure is
// recorded and the next gateway is tried; gateways after the first success
// are never invoked. When every gateway fails the returned error aggregates
// all individual failures.
func (c *Chain) Generate(ctx context.Context, prompt string, opts ...ai.Option) (*ai.Response, error) {
	options := ai.ApplyOptions(opts...)

	var failures []ai.ProviderFailure
	for _, gw := range c.gateways {
		resp, err := gw.Generate(ctx, prompt, opts...)
		if err == nil {
			return resp, nil
		}
		slog.Warn("provider failed, trying next",
			"provider", gw.Provider(),
			"mode", options.Mode,
			"error", err,
		)
		failures = append(failures, ai.ProviderFailure{
			Provider: gw.Provider(),
			Err:      err,
		})
	}

	return nil, &ai.AllProvidersError{
		Mode:     options.Mode,
		Failures: failures,
	}
}
