package workflow

import (
	"context"
	"errors"
	"strings"
	"testing"

	ai "github.com/spetersoncode/alchemy"
	"github.com/spetersoncode/alchemy/fallback"
	"github.com/stretchr/testify/assert"
)

// scriptedGateway answers by matching a substring of the prompt, so one
// stub can serve classification, extraction, drafting, and scoring in a
// single run.
type scriptedGateway struct {
	responses map[string]string // prompt substring -> response
	fallback  string
	err       error
}

func (s *scriptedGateway) Provider() ai.Provider { return ai.ProviderAnthropic }

func (s *scriptedGateway) Generate(ctx context.Context, prompt string, opts ...ai.Option) (*ai.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	for sub, resp := range s.responses {
		if strings.Contains(prompt, sub) {
			return &ai.Response{Content: resp, Provider: ai.ProviderAnthropic}, nil
		}
	}
	return &ai.Response{Content: s.fallback, Provider: ai.ProviderAnthropic}, nil
}

type stubSearcher struct {
	sources []ai.Source
	err     error
}

func (s *stubSearcher) Search(ctx context.Context, query string, limit int) ([]ai.Source, error) {
	return s.sources, s.err
}

type stubImageProvider struct {
	img *ai.GeneratedImage
	err error
}

func (s *stubImageProvider) GenerateImage(ctx context.Context, prompt string, opts ...ai.ImageOption) (*ai.GeneratedImage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.img, nil
}

func TestRunBlogScenario(t *testing.T) {
	gw := &scriptedGateway{
		responses: map[string]string{
			"Classify the intent":  "blog",
			"Extract requirements": `{"topic":"go testing","tone":"casual","length":"short"}`,
			"blog post":            "# Testing in Go\n\nTesting in Go is built in.",
			"Analyze the content":  `{"clarity": 8, "structure": 8, "seo": 8, "engagement": 8, "brand_voice": 8}`,
		},
		fallback: "# Testing in Go\n\nTesting in Go is built in.",
	}

	engine := NewEngine(Config{LLM: fallback.New(gw)})
	out := engine.Run(context.Background(), "write a blog about go testing", ai.IntentUnknown)

	assert.True(t, out.Success)
	assert.Equal(t, ai.IntentBlog, out.Intent)
	post, ok := out.Content.(*ai.BlogPost)
	assert.True(t, ok)
	assert.Equal(t, "Testing in Go", post.Title)
	assert.NotNil(t, out.Metadata.QualityScores)
	assert.InDelta(t, 8.0, out.Metadata.QualityScores.Overall, 0.001)
	assert.Equal(t, []string{"route", "generate_blog", "quality_check", "finalize"}, out.Metadata.History)
	assert.Empty(t, out.Metadata.Errors)
	assert.NotEmpty(t, out.Metadata.RunID)
}

func TestRunResearchFeedsBlog(t *testing.T) {
	gw := &scriptedGateway{
		responses: map[string]string{
			"Classify the intent":  "blog",
			"Extract requirements": `{"topic":"ai trends"}`,
			"Synthesize":           "AI adoption doubled [Source 1].",
		},
		fallback: "# AI Trends\n\nBody.",
	}
	search := &stubSearcher{sources: []ai.Source{{Title: "Survey", URL: "https://x.example.com"}}}

	engine := NewEngine(Config{LLM: fallback.New(gw), Search: search})
	out := engine.Run(context.Background(), "write a blog about the latest ai trends", ai.IntentUnknown)

	assert.True(t, out.Success)
	assert.NotNil(t, out.Research)
	assert.Equal(t, "AI adoption doubled [Source 1].", out.Research.Summary)
	assert.Contains(t, out.Metadata.History, "research")
}

func TestRunResearchFailureIsNonFatal(t *testing.T) {
	gw := &scriptedGateway{
		responses: map[string]string{
			"Classify the intent":  "research",
			"Extract requirements": `{"topic":"quantum computing"}`,
		},
		fallback: "# Quantum\n\nBody.",
	}
	search := &stubSearcher{err: errors.New("search down")}

	engine := NewEngine(Config{LLM: fallback.New(gw), Search: search})
	out := engine.Run(context.Background(), "research quantum computing", ai.IntentUnknown)

	assert.True(t, out.Success, "research failure must not fail the run")
	assert.Nil(t, out.Research)
	assert.Len(t, out.Metadata.Errors, 1)
	assert.Equal(t, "research", out.Metadata.Errors[0].Step)
}

func TestRunSocialWithImageFailure(t *testing.T) {
	gw := &scriptedGateway{
		responses: map[string]string{
			"Classify the intent":  "social",
			"Extract requirements": `{"topic":"hiring"}`,
			"LinkedIn post":        "Hiring is hard. Thoughts?\n\n#Hiring",
		},
		fallback: "a crafted image prompt",
	}
	images := &stubImageProvider{err: errors.New("image service down")}

	engine := NewEngine(Config{LLM: fallback.New(gw), Images: images})
	out := engine.Run(context.Background(), "write a social post about hiring", ai.IntentSocial)

	assert.True(t, out.Success, "image failure must not fail the post")
	post, ok := out.Content.(*ai.SocialPost)
	assert.True(t, ok)
	assert.Nil(t, post.Image)
	assert.NotEmpty(t, post.ImageError)
}

func TestRunImageWithoutProvider(t *testing.T) {
	gw := &scriptedGateway{
		responses: map[string]string{
			"Classify the intent":  "image",
			"Extract requirements": `{"topic":"a sunset"}`,
		},
	}

	engine := NewEngine(Config{LLM: fallback.New(gw)})
	out := engine.Run(context.Background(), "draw a sunset", ai.IntentImage)

	assert.False(t, out.Success)
	assert.NotEmpty(t, out.Err)
	assert.Contains(t, out.Metadata.History, "finalize", "finalize is always reached")
}

func TestRunAllProvidersDownStillFinalizes(t *testing.T) {
	engine := NewEngine(Config{LLM: fallback.New(&scriptedGateway{err: errors.New("down")})})
	out := engine.Run(context.Background(), "write a blog about anything", ai.IntentUnknown)

	assert.False(t, out.Success)
	assert.NotEmpty(t, out.Err)
	assert.Equal(t, ai.IntentBlog, out.Intent, "keyword classification still routes")
	assert.Equal(t, "finalize", out.Metadata.History[len(out.Metadata.History)-1])
}

func TestRunStrategy(t *testing.T) {
	gw := &scriptedGateway{
		responses: map[string]string{
			"Classify the intent":  "strategy",
			"Extract requirements": `{"topic":"product launch"}`,
			"content brief":        "Objective: launch well.",
		},
	}

	engine := NewEngine(Config{LLM: fallback.New(gw)})
	out := engine.Run(context.Background(), "plan a product launch", ai.IntentUnknown)

	assert.True(t, out.Success)
	brief, ok := out.Content.(*ai.StrategyBrief)
	assert.True(t, ok)
	assert.Equal(t, "product launch", brief.Topic)
	assert.NotContains(t, out.Metadata.History, "quality_check", "briefs are not quality checked")
}
