package writer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	ai "github.com/spetersoncode/alchemy"
	"github.com/spetersoncode/alchemy/fallback"
)

// styleGuidelines expand a style name into concrete prompt language.
var styleGuidelines = map[string]string{
	"professional": "professional business style, clean and modern",
	"creative":     "creative and artistic, vibrant colors",
	"minimalist":   "minimalist design, clean lines, simple composition",
	"realistic":    "photorealistic, high detail, natural lighting",
	"illustration": "illustration style, vibrant, engaging",
}

// ImageAgent crafts image prompts and drives the image provider.
type ImageAgent struct {
	llm      *fallback.Chain
	provider ai.ImageProvider
}

// NewImageAgent creates an image agent.
func NewImageAgent(llm *fallback.Chain, provider ai.ImageProvider) *ImageAgent {
	return &ImageAgent{llm: llm, provider: provider}
}

// CraftPrompt builds a detailed image prompt for the topic. When the model
// is unavailable a deterministic template prompt is returned, so crafting
// never fails.
func (a *ImageAgent) CraftPrompt(ctx context.Context, topic, style string) string {
	if style == "" {
		style = "professional"
	}
	desc, ok := styleGuidelines[strings.ToLower(style)]
	if !ok {
		desc = styleGuidelines["professional"]
	}

	prompt := fmt.Sprintf("Topic: %s\nStyle: %s (%s)\n\nCreate a detailed, effective prompt for generating an image:",
		topic, style, desc)

	resp, err := a.llm.Generate(ctx, prompt,
		ai.WithSystem(imagePromptSystemPrompt),
		ai.WithTemperature(0.7),
		ai.WithMaxTokens(300),
	)
	if err != nil {
		slog.Warn("prompt crafting failed, using template prompt", "error", err)
		return templatePrompt(topic, style)
	}

	crafted := strings.Trim(strings.TrimSpace(resp.Content), `"'`)
	if crafted == "" {
		return templatePrompt(topic, style)
	}
	return crafted
}

func templatePrompt(topic, style string) string {
	return fmt.Sprintf("A professional %s illustration of %s, high quality, detailed, modern design", style, topic)
}

// Generate crafts a prompt for the topic and renders it. A blank topic is
// rejected locally before any model or provider call.
func (a *ImageAgent) Generate(ctx context.Context, topic, style string, opts ...ai.ImageOption) (*ai.GeneratedImage, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ai.NewValidationError("image topic cannot be empty")
	}

	prompt := a.CraftPrompt(ctx, topic, style)
	return a.render(ctx, prompt, opts...)
}

// Refine rewrites the prior image's prompt per the feedback and renders a
// replacement image at the same size and quality.
func (a *ImageAgent) Refine(ctx context.Context, prior *ai.GeneratedImage, feedback string) (*ai.GeneratedImage, error) {
	prompt := fmt.Sprintf("Original Prompt: %s\n\nFeedback: %s\n\nCreate an improved version of the prompt:",
		prior.Prompt, feedback)

	resp, err := a.llm.Generate(ctx, prompt,
		ai.WithSystem(imageRefineSystemPrompt),
		ai.WithMode(ai.ModeRevise),
		ai.WithTemperature(0.7),
		ai.WithMaxTokens(300),
	)
	if err != nil {
		return nil, ai.NewGenerationError("image prompt refinement failed", err)
	}

	refined := strings.Trim(strings.TrimSpace(resp.Content), `"'`)
	if refined == "" {
		refined = prior.Prompt
	}

	return a.render(ctx, refined,
		ai.WithImageSize(prior.Size),
		ai.WithImageQuality(prior.Quality),
	)
}

func (a *ImageAgent) render(ctx context.Context, prompt string, opts ...ai.ImageOption) (*ai.GeneratedImage, error) {
	img, err := a.provider.GenerateImage(ctx, prompt, opts...)
	if err != nil {
		if ai.IsValidation(err) {
			return nil, err
		}
		return nil, ai.NewGenerationError("image generation failed", err)
	}
	return img, nil
}
