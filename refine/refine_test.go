package refine

import (
	"context"
	"errors"
	"testing"

	ai "github.com/spetersoncode/alchemy"
	"github.com/spetersoncode/alchemy/fallback"
	"github.com/stretchr/testify/assert"
)

type stubGateway struct {
	content string
	err     error
}

func (s *stubGateway) Provider() ai.Provider { return ai.ProviderAnthropic }

func (s *stubGateway) Generate(ctx context.Context, prompt string, opts ...ai.Option) (*ai.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &ai.Response{Content: s.content, Provider: ai.ProviderAnthropic}, nil
}

func priorBlogOutput() *ai.FinalOutput {
	return &ai.FinalOutput{
		Intent:  ai.IntentBlog,
		Query:   "write a blog about go testing",
		Success: true,
		Content: &ai.BlogPost{Title: "Testing in Go", MetaDescription: "Meta.", Body: "Original body.", WordCount: 2},
		Metadata: ai.Metadata{
			RunID:   "run-1",
			History: []string{"route", "generate_blog", "finalize"},
		},
	}
}

func TestApplyRevisesContentOnly(t *testing.T) {
	engine := New(fallback.New(&stubGateway{content: "Shorter body."}), nil)

	prior := priorBlogOutput()
	out := engine.Apply(context.Background(), "make it shorter", prior)

	post, ok := out.Content.(*ai.BlogPost)
	assert.True(t, ok)
	assert.Equal(t, "Shorter body.", post.Body)
	assert.Equal(t, "Testing in Go", post.Title, "title carries over")
	assert.True(t, out.Success)
	assert.Equal(t, "run-1", out.Metadata.RunID, "run identity carries over")
	assert.Equal(t, []string{"route", "generate_blog", "finalize", "refine"}, out.Metadata.History)

	// The prior output is untouched.
	priorPost := prior.Content.(*ai.BlogPost)
	assert.Equal(t, "Original body.", priorPost.Body)
	assert.Len(t, prior.Metadata.History, 3)
}

func TestApplyFailureKeepsPriorContent(t *testing.T) {
	engine := New(fallback.New(&stubGateway{err: errors.New("down")}), nil)

	prior := priorBlogOutput()
	out := engine.Apply(context.Background(), "make it shorter", prior)

	post := out.Content.(*ai.BlogPost)
	assert.Equal(t, "Original body.", post.Body, "failed refinement keeps last good content")
	assert.Len(t, out.Metadata.Errors, 1)
	assert.Equal(t, "refine", out.Metadata.Errors[0].Step)
	assert.Contains(t, out.Metadata.History, "refine_failed")
	assert.Empty(t, prior.Metadata.Errors, "prior output is untouched")
}

func TestApplyStrategyBrief(t *testing.T) {
	engine := New(fallback.New(&stubGateway{content: "Revised brief."}), nil)

	prior := &ai.FinalOutput{
		Intent:  ai.IntentStrategy,
		Success: true,
		Content: &ai.StrategyBrief{Topic: "launch", Brief: "Old brief."},
	}
	out := engine.Apply(context.Background(), "expand the metrics section", prior)

	brief := out.Content.(*ai.StrategyBrief)
	assert.Equal(t, "Revised brief.", brief.Brief)
	assert.Equal(t, "launch", brief.Topic)
}

func TestApplyImageWithoutProvider(t *testing.T) {
	engine := New(fallback.New(&stubGateway{content: "better prompt"}), nil)

	prior := &ai.FinalOutput{
		Intent:  ai.IntentImage,
		Success: true,
		Content: &ai.GeneratedImage{URL: "https://img.example.com/1.png", Prompt: "old"},
	}
	out := engine.Apply(context.Background(), "add more color", prior)

	img := out.Content.(*ai.GeneratedImage)
	assert.Equal(t, "https://img.example.com/1.png", img.URL, "prior image survives")
	assert.Len(t, out.Metadata.Errors, 1)
}

func TestApplyNoPriorContent(t *testing.T) {
	engine := New(fallback.New(&stubGateway{}), nil)

	prior := &ai.FinalOutput{Intent: ai.IntentBlog, Success: false}
	out := engine.Apply(context.Background(), "fix it", prior)

	assert.False(t, out.Success)
	assert.Len(t, out.Metadata.Errors, 1)
}
