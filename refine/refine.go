// Package refine applies user feedback to previously generated content.
// A refinement never rebuilds a run from scratch: it revises the prior
// artifact and merges the result into a copy of the prior output.
package refine

import (
	"context"
	"fmt"
	"log/slog"

	ai "github.com/spetersoncode/alchemy"
	"github.com/spetersoncode/alchemy/fallback"
	"github.com/spetersoncode/alchemy/writer"
)

// Engine dispatches feedback to the writer matching the prior artifact.
type Engine struct {
	blog       *writer.BlogWriter
	social     *writer.SocialWriter
	images     *writer.ImageAgent
	strategist *writer.Strategist
}

// New creates a refinement engine. The image agent may be nil, in which
// case image refinements fail gracefully.
func New(llm *fallback.Chain, images *writer.ImageAgent) *Engine {
	return &Engine{
		blog:       writer.NewBlogWriter(llm),
		social:     writer.NewSocialWriter(llm, images),
		images:     images,
		strategist: writer.NewStrategist(llm),
	}
}

// Apply revises the prior output's artifact per the feedback and returns a
// new output. The prior output is never mutated. On failure the returned
// output is a copy of the prior one with the failure recorded, so the user
// keeps their last good content.
func (e *Engine) Apply(ctx context.Context, feedback string, prior *ai.FinalOutput) *ai.FinalOutput {
	out := prior.CloneShallow()

	revised, err := e.revise(ctx, feedback, prior.Content)
	if err != nil {
		slog.Warn("refinement failed, keeping prior content", "error", err)
		out.Metadata.Errors = append(out.Metadata.Errors, ai.StepError{Step: "refine", Message: err.Error()})
		out.Metadata.History = append(out.Metadata.History, "refine_failed")
		return out
	}

	out.Content = revised
	out.Success = true
	out.Err = ""
	out.Metadata.History = append(out.Metadata.History, "refine")
	return out
}

func (e *Engine) revise(ctx context.Context, feedback string, artifact ai.Artifact) (ai.Artifact, error) {
	switch a := artifact.(type) {
	case *ai.BlogPost:
		return e.blog.Revise(ctx, a, feedback)
	case *ai.SocialPost:
		return e.social.Revise(ctx, a, feedback)
	case *ai.GeneratedImage:
		if e.images == nil {
			return nil, ai.NewGenerationError("no image provider configured", nil)
		}
		return e.images.Refine(ctx, a, feedback)
	case *ai.StrategyBrief:
		return e.strategist.Refine(ctx, a, feedback)
	case nil:
		return nil, ai.NewValidationError("no prior content to refine")
	default:
		return nil, ai.NewValidationError(fmt.Sprintf("cannot refine artifact kind %q", artifact.Kind()))
	}
}
