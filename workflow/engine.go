// Package workflow runs the content generation state machine:
// route, optional research, generation, optional quality check, finalize.
// Every run ends at finalize and produces a structured output; failures are
// recorded on the run, never raised to the caller.
package workflow

import (
	"context"
	"fmt"
	"log/slog"

	ai "github.com/spetersoncode/alchemy"
	"github.com/spetersoncode/alchemy/fallback"
	"github.com/spetersoncode/alchemy/research"
	"github.com/spetersoncode/alchemy/router"
	"github.com/spetersoncode/alchemy/writer"
)

// Config wires the engine's external capabilities. LLM is required. A nil
// Search disables the research step; a nil Images disables image artifacts
// and social post images.
type Config struct {
	LLM    *fallback.Chain
	Images ai.ImageProvider
	Search ai.Searcher
}

// Engine coordinates the generation pipeline. It is stateless across runs
// and safe for concurrent use.
type Engine struct {
	classifier *router.Classifier
	research   *research.Agent
	blog       *writer.BlogWriter
	social     *writer.SocialWriter
	images     *writer.ImageAgent
	strategist *writer.Strategist
}

// NewEngine creates an engine from the given capabilities.
func NewEngine(cfg Config) *Engine {
	e := &Engine{
		classifier: router.NewClassifier(cfg.LLM),
		blog:       writer.NewBlogWriter(cfg.LLM),
		strategist: writer.NewStrategist(cfg.LLM),
	}
	if cfg.Search != nil {
		e.research = research.NewAgent(cfg.Search, cfg.LLM)
	}
	if cfg.Images != nil {
		e.images = writer.NewImageAgent(cfg.LLM, cfg.Images)
	}
	e.social = writer.NewSocialWriter(cfg.LLM, e.images)
	return e
}

// Run executes one workflow pass for the query. The hint, when valid,
// overrides intent classification. Run always returns a final output and
// never an error: failures surface in the output's Err and metadata.
func (e *Engine) Run(ctx context.Context, query string, hint ai.Intent) (out *ai.FinalOutput) {
	state := newState(query)

	defer func() {
		if r := recover(); r != nil {
			slog.Error("workflow panic", "run_id", state.RunID, "panic", r)
			state.fail("workflow", fmt.Errorf("panic: %v", r))
			out = e.finalize(state)
		}
	}()

	e.route(ctx, state, hint)
	if state.NeedsResearch {
		e.runResearch(ctx, state)
	}
	e.generate(ctx, state)
	e.qualityCheck(ctx, state)
	return e.finalize(state)
}

func (e *Engine) route(ctx context.Context, s *State, hint ai.Intent) {
	slog.Info("routing query", "run_id", s.RunID, "query", s.Query)

	s.Intent = e.classifier.ClassifyIntent(ctx, s.Query, hint)
	s.Requirements = e.classifier.ExtractRequirements(ctx, s.Query, s.Intent)
	s.NeedsResearch = router.ShouldConductResearch(s.Query, s.Intent) && e.research != nil
	s.step("route")
}

func (e *Engine) runResearch(ctx context.Context, s *State) {
	data, err := e.research.Conduct(ctx, s.topic())
	if err != nil {
		slog.Warn("research failed, continuing without it", "run_id", s.RunID, "error", err)
		s.fail("research", err)
	} else {
		s.Research = data
	}
	s.step("research")
}

func (e *Engine) generate(ctx context.Context, s *State) {
	switch ai.ArtifactKindFor(s.Intent) {
	case ai.KindSocial:
		e.generateSocial(ctx, s)
	case ai.KindImage:
		e.generateImage(ctx, s)
	case ai.KindStrategy:
		e.generateStrategy(ctx, s)
	default:
		e.generateBlog(ctx, s)
	}
}

func (e *Engine) generateBlog(ctx context.Context, s *State) {
	slog.Info("generating blog post", "run_id", s.RunID, "topic", s.topic())

	post, err := e.blog.Generate(ctx, s.topic(), s.Requirements, s.Research)
	if err != nil {
		s.fail("generate_blog", err)
	} else {
		s.Artifact = post
	}
	s.step("generate_blog")
}

func (e *Engine) generateSocial(ctx context.Context, s *State) {
	slog.Info("generating social post", "run_id", s.RunID, "topic", s.topic())

	post, err := e.social.Generate(ctx, s.topic(), s.Requirements, s.Research)
	if err != nil {
		s.fail("generate_social", err)
	} else {
		s.Artifact = post
	}
	s.step("generate_social")
}

func (e *Engine) generateImage(ctx context.Context, s *State) {
	slog.Info("generating image", "run_id", s.RunID, "topic", s.topic())

	if e.images == nil {
		s.fail("generate_image", ai.NewGenerationError("no image provider configured", nil))
		s.step("generate_image")
		return
	}

	img, err := e.images.Generate(ctx, s.topic(), s.Requirements.Style)
	if err != nil {
		s.fail("generate_image", err)
	} else {
		s.Artifact = img
	}
	s.step("generate_image")
}

func (e *Engine) generateStrategy(ctx context.Context, s *State) {
	slog.Info("creating content brief", "run_id", s.RunID, "topic", s.topic())

	brief, err := e.strategist.CreateBrief(ctx, s.topic(), s.Requirements, s.Research)
	if err != nil {
		s.fail("create_strategy", err)
	} else {
		s.Artifact = brief
	}
	s.step("create_strategy")
}

// qualityCheck scores textual artifacts. Images and briefs are not scored,
// matching the generation graph where only blog and social posts pass
// through the quality node.
func (e *Engine) qualityCheck(ctx context.Context, s *State) {
	var content string
	switch a := s.Artifact.(type) {
	case *ai.BlogPost:
		content = a.Body
	case *ai.SocialPost:
		content = a.Body
	default:
		return
	}
	if content == "" {
		return
	}

	scores, err := e.strategist.AnalyzeQuality(ctx, content, s.Artifact.Kind())
	if err != nil {
		slog.Warn("quality check failed", "run_id", s.RunID, "error", err)
		s.fail("quality_check", err)
	} else {
		s.Quality = scores
	}
	s.step("quality_check")
}

// finalize always produces a structured output, whatever happened upstream.
func (e *Engine) finalize(s *State) *ai.FinalOutput {
	s.step("finalize")

	out := &ai.FinalOutput{
		Intent:  s.Intent,
		Query:   s.Query,
		Success: s.Artifact != nil,
		Content: s.Artifact,
		Metadata: ai.Metadata{
			RunID:         s.RunID,
			Errors:        s.Errors,
			History:       s.History,
			QualityScores: s.Quality,
		},
		Research: s.Research,
	}
	if !out.Success {
		out.Err = "Content generation did not produce output."
		if n := len(s.Errors); n > 0 {
			out.Err = s.Errors[n-1].Message
		}
	}

	slog.Info("run finalized", "run_id", s.RunID, "intent", s.Intent, "success", out.Success)
	return out
}
