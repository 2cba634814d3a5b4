package session

import (
	"context"
	"strings"
	"testing"

	ai "github.com/spetersoncode/alchemy"
	"github.com/spetersoncode/alchemy/fallback"
	"github.com/spetersoncode/alchemy/refine"
	"github.com/spetersoncode/alchemy/workflow"
	"github.com/stretchr/testify/assert"
)

type scriptedGateway struct {
	responses map[string]string
	fallback  string
}

func (s *scriptedGateway) Provider() ai.Provider { return ai.ProviderAnthropic }

func (s *scriptedGateway) Generate(ctx context.Context, prompt string, opts ...ai.Option) (*ai.Response, error) {
	for sub, resp := range s.responses {
		if strings.Contains(prompt, sub) {
			return &ai.Response{Content: resp, Provider: ai.ProviderAnthropic}, nil
		}
	}
	return &ai.Response{Content: s.fallback, Provider: ai.ProviderAnthropic}, nil
}

func newTestSession(gw *scriptedGateway) *Session {
	chain := fallback.New(gw)
	return New(
		workflow.NewEngine(workflow.Config{LLM: chain}),
		refine.New(chain, nil),
	)
}

func TestHandleRunsWorkflowThenRefines(t *testing.T) {
	gw := &scriptedGateway{
		responses: map[string]string{
			"Classify the intent":  "blog",
			"Extract requirements": `{"topic":"go modules"}`,
			"Refine the blog post": "Shorter revised body.",
		},
		fallback: "# Go Modules\n\nOriginal body.",
	}
	s := newTestSession(gw)

	first := s.Handle(context.Background(), "write a blog about go modules", ai.IntentUnknown)
	assert.True(t, first.Success)
	assert.Equal(t, ai.IntentBlog, first.Intent)

	second := s.Handle(context.Background(), "make it shorter", ai.IntentUnknown)
	post, ok := second.Content.(*ai.BlogPost)
	assert.True(t, ok)
	assert.Equal(t, "Shorter revised body.", post.Body, "feedback routes to refinement, not a new run")
	assert.Contains(t, second.Metadata.History, "refine")
	assert.Same(t, second, s.Current())
}

func TestRefineSkipsKeywordGate(t *testing.T) {
	gw := &scriptedGateway{
		responses: map[string]string{
			"Classify the intent":  "blog",
			"Extract requirements": `{"topic":"go modules"}`,
			"Refine the blog post": "Casual revised body.",
		},
		fallback: "# Go Modules\n\nOriginal body.",
	}
	s := newTestSession(gw)

	first := s.Handle(context.Background(), "write a blog about go modules", ai.IntentUnknown)
	assert.True(t, first.Success)

	// "more casual tone" carries no edit keyword; explicit refinement must
	// still revise the current output rather than start a new run.
	out, ok := s.Refine(context.Background(), "more casual tone")
	assert.True(t, ok)
	post, isPost := out.Content.(*ai.BlogPost)
	assert.True(t, isPost)
	assert.Equal(t, "Casual revised body.", post.Body)
	assert.Contains(t, out.Metadata.History, "refine")
	assert.Equal(t, first.Metadata.RunID, out.Metadata.RunID, "no new run is started")
	assert.Same(t, out, s.Current())
}

func TestRefineWithoutPriorOutput(t *testing.T) {
	s := newTestSession(&scriptedGateway{})
	_, ok := s.Refine(context.Background(), "more casual tone")
	assert.False(t, ok)
}

func TestHandleWithoutPriorOutputRunsWorkflow(t *testing.T) {
	gw := &scriptedGateway{
		responses: map[string]string{
			"Classify the intent":  "blog",
			"Extract requirements": `{"topic":"x"}`,
		},
		fallback: "# X\n\nBody.",
	}
	s := newTestSession(gw)

	// Refinement-shaped text with no prior output is a fresh request.
	out := s.Handle(context.Background(), "improve my landing page copy", ai.IntentUnknown)
	assert.True(t, out.Success)
	assert.NotContains(t, out.Metadata.History, "refine")
}

func TestHistoryBoundedAndBrowsable(t *testing.T) {
	gw := &scriptedGateway{
		responses: map[string]string{
			"Classify the intent":  "blog",
			"Extract requirements": `{}`,
		},
		fallback: "# T\n\nBody.",
	}
	s := newTestSession(gw)

	queries := []string{
		"write about topic one",
		"write about topic two",
		"write about topic three",
		"write about topic four",
	}
	for _, q := range queries {
		s.Handle(context.Background(), q, ai.IntentUnknown)
	}

	history := s.History()
	assert.Len(t, history, 3)
	assert.Equal(t, "write about topic two", history[0].Query, "oldest request was evicted")

	restored, ok := s.Back(0)
	assert.True(t, ok)
	assert.Same(t, restored, s.Current(), "browsing back retargets refinements")

	_, ok = s.Back(9)
	assert.False(t, ok)
}
