package fallback

import (
	"context"
	"errors"
	"testing"

	ai "github.com/spetersoncode/alchemy"
	"github.com/stretchr/testify/assert"
)

type stubGateway struct {
	provider ai.Provider
	resp     *ai.Response
	err      error
	calls    int
}

func (s *stubGateway) Provider() ai.Provider { return s.provider }

func (s *stubGateway) Generate(ctx context.Context, prompt string, opts ...ai.Option) (*ai.Response, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func TestChainFirstSuccess(t *testing.T) {
	first := &stubGateway{
		provider: ai.ProviderAnthropic,
		resp:     &ai.Response{Content: "hello", Provider: ai.ProviderAnthropic},
	}
	second := &stubGateway{provider: ai.ProviderOpenAI}

	chain := New(first, second)
	resp, err := chain.Generate(context.Background(), "hi")

	assert.NoError(t, err)
	assert.Equal(t, "hello", resp.Content)
	assert.Equal(t, ai.ProviderAnthropic, resp.Provider)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls, "later gateways must not be invoked after a success")
}

func TestChainFallsThrough(t *testing.T) {
	first := &stubGateway{
		provider: ai.ProviderAnthropic,
		err:      ai.NewProviderError(ai.ProviderAnthropic, "anthropic call failed", 429, errors.New("rate limited")),
	}
	second := &stubGateway{
		provider: ai.ProviderOpenAI,
		resp:     &ai.Response{Content: "from openai", Provider: ai.ProviderOpenAI},
	}
	third := &stubGateway{provider: ai.ProviderGoogle}

	chain := New(first, second, third)
	resp, err := chain.Generate(context.Background(), "hi")

	assert.NoError(t, err)
	assert.Equal(t, "from openai", resp.Content)
	assert.Equal(t, ai.ProviderOpenAI, resp.Provider)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
	assert.Equal(t, 0, third.calls)
}

func TestChainAllFail(t *testing.T) {
	first := &stubGateway{
		provider: ai.ProviderAnthropic,
		err:      errors.New("boom"),
	}
	second := &stubGateway{
		provider: ai.ProviderOpenAI,
		err:      errors.New("also boom"),
	}

	chain := New(first, second)
	resp, err := chain.Generate(context.Background(), "hi", ai.WithMode(ai.ModeDraft))

	assert.Nil(t, resp)
	assert.Error(t, err)
	assert.True(t, ai.IsAllProvidersFailed(err))
	assert.Equal(t, ai.KindAllProvidersFailed, ai.KindOf(err))

	var ap *ai.AllProvidersError
	assert.True(t, errors.As(err, &ap))
	assert.Equal(t, ai.ModeDraft, ap.Mode)
	assert.Len(t, ap.Failures, 2)
	assert.Equal(t, ai.ProviderAnthropic, ap.Failures[0].Provider)
	assert.Equal(t, ai.ProviderOpenAI, ap.Failures[1].Provider)
	assert.Contains(t, err.Error(), "all providers failed")
}

func TestChainProviders(t *testing.T) {
	chain := New(
		&stubGateway{provider: ai.ProviderGoogle},
		&stubGateway{provider: ai.ProviderAnthropic},
	)
	assert.Equal(t, []ai.Provider{ai.ProviderGoogle, ai.ProviderAnthropic}, chain.Providers())
}
