package research

import (
	"context"
	"errors"
	"testing"

	ai "github.com/spetersoncode/alchemy"
	"github.com/spetersoncode/alchemy/fallback"
	"github.com/stretchr/testify/assert"
)

type stubSearcher struct {
	sources []ai.Source
	err     error
}

func (s *stubSearcher) Search(ctx context.Context, query string, limit int) ([]ai.Source, error) {
	return s.sources, s.err
}

type stubGateway struct {
	content string
	err     error
	prompts []string
}

func (s *stubGateway) Provider() ai.Provider { return ai.ProviderOpenAI }

func (s *stubGateway) Generate(ctx context.Context, prompt string, opts ...ai.Option) (*ai.Response, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return nil, s.err
	}
	return &ai.Response{Content: s.content, Provider: ai.ProviderOpenAI}, nil
}

func TestConduct(t *testing.T) {
	search := &stubSearcher{sources: []ai.Source{
		{Title: "Go 1.25 Released", URL: "https://go.dev/blog/go1.25", Snippet: "Release notes."},
	}}
	gw := &stubGateway{content: "Key findings [Source 1]."}

	agent := NewAgent(search, fallback.New(gw))
	data, err := agent.Conduct(context.Background(), "go releases")

	assert.NoError(t, err)
	assert.Equal(t, "Key findings [Source 1].", data.Summary)
	assert.Len(t, data.Sources, 1)
	assert.Equal(t, ai.ProviderOpenAI, data.Provider)
	assert.Contains(t, gw.prompts[0], "Go 1.25 Released", "search results feed the synthesis prompt")
}

func TestConductSearchFailure(t *testing.T) {
	agent := NewAgent(&stubSearcher{err: errors.New("timeout")}, fallback.New(&stubGateway{}))
	data, err := agent.Conduct(context.Background(), "anything")

	assert.Nil(t, data)
	assert.Equal(t, ai.KindResearchUnavailable, ai.KindOf(err))
}

func TestConductNoResults(t *testing.T) {
	agent := NewAgent(&stubSearcher{}, fallback.New(&stubGateway{}))
	data, err := agent.Conduct(context.Background(), "anything")

	assert.Nil(t, data)
	assert.Equal(t, ai.KindResearchUnavailable, ai.KindOf(err))
}

func TestConductSynthesisFailure(t *testing.T) {
	search := &stubSearcher{sources: []ai.Source{{Title: "x", URL: "https://x"}}}
	agent := NewAgent(search, fallback.New(&stubGateway{err: errors.New("down")}))
	data, err := agent.Conduct(context.Background(), "anything")

	assert.Nil(t, data)
	assert.Equal(t, ai.KindResearchUnavailable, ai.KindOf(err))
}

func TestGenerateQueries(t *testing.T) {
	gw := &stubGateway{content: "go generics overview\n\nlatest go generics benchmarks\ngenerics adoption statistics\nextra line"}
	agent := NewAgent(&stubSearcher{}, fallback.New(gw))

	queries, err := agent.GenerateQueries(context.Background(), "go generics", 3)

	assert.NoError(t, err)
	assert.Equal(t, []string{
		"go generics overview",
		"latest go generics benchmarks",
		"generics adoption statistics",
	}, queries)
}
