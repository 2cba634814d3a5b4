package writer

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	ai "github.com/spetersoncode/alchemy"
	"github.com/spetersoncode/alchemy/fallback"
)

var hashtagPattern = regexp.MustCompile(`#\w+`)

// maxHashtags caps how many hashtags a post carries.
const maxHashtags = 10

// fallbackHashtags are used when neither the post nor the model yields any.
var fallbackHashtags = []string{"#LinkedIn", "#ProfessionalDevelopment", "#Business", "#Leadership", "#Networking"}

// SocialWriter generates short professional social posts with hashtags and
// an optional accompanying image.
type SocialWriter struct {
	llm    *fallback.Chain
	images *ImageAgent // nil disables image generation
}

// NewSocialWriter creates a social writer. The image agent may be nil, in
// which case posts are generated without images.
func NewSocialWriter(llm *fallback.Chain, images *ImageAgent) *SocialWriter {
	return &SocialWriter{llm: llm, images: images}
}

// Generate writes a social post for the topic. Hashtags are normalized onto
// the last line; a missing hashtag set is generated separately. Image
// generation is best-effort: a failure is recorded on the post but never
// fails the call.
func (w *SocialWriter) Generate(ctx context.Context, topic string, reqs ai.Requirements, research *ai.ResearchData) (*ai.SocialPost, error) {
	tone := reqs.Tone
	if tone == "" {
		tone = "professional"
	}
	audience := reqs.Audience
	if audience == "" {
		audience = "professional network"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n\nTone: %s\nTarget Audience: %s\n", topic, tone, audience)
	if research != nil && research.Summary != "" {
		fmt.Fprintf(&b, "\nResearch Context:\n%s\n\nUse insights from this research to inform your post.\n", research.Summary)
	}
	b.WriteString("\nCreate a compelling LinkedIn post:")

	resp, err := w.llm.Generate(ctx, b.String(),
		ai.WithSystem(fmt.Sprintf(socialSystemPrompt, tone)),
		ai.WithMode(ai.ModeDraft),
		ai.WithTemperature(0.8),
		ai.WithMaxTokens(1500),
	)
	if err != nil {
		return nil, ai.NewGenerationError("social post generation failed", err)
	}

	content := resp.Content
	hashtags := ExtractHashtags(content)
	if len(hashtags) == 0 {
		hashtags = w.generateHashtags(ctx, topic, content)
		content = content + "\n\n" + strings.Join(hashtags, " ")
	} else {
		// Normalize: body text first, all hashtags on the last line.
		body := collapseSpace(hashtagPattern.ReplaceAllString(content, ""))
		content = body + "\n\n" + strings.Join(hashtags, " ")
	}

	post := &ai.SocialPost{
		Body:            content,
		Hashtags:        hashtags,
		CharacterCount:  len(content),
		EngagementScore: EngagementScore(content),
		Provider:        resp.Provider,
	}

	if w.images != nil {
		img, imgErr := w.images.Generate(ctx, topic, reqs.Style,
			ai.WithImageSize(ai.ImageLandscape),
			ai.WithImageQuality(ai.ImageQualityHigh),
		)
		if imgErr != nil {
			slog.Warn("social post image generation failed", "error", imgErr)
			post.ImageError = imgErr.Error()
		} else {
			post.Image = img
		}
	}

	return post, nil
}

// Revise rewrites the post per the feedback, re-extracting hashtags and
// recomputing the engagement score. The prior image carries over.
func (w *SocialWriter) Revise(ctx context.Context, prior *ai.SocialPost, feedback string) (*ai.SocialPost, error) {
	prompt := fmt.Sprintf("Original LinkedIn Post:\n\n%s\n\nUser Feedback: %s\n\nRefine the post according to the feedback:",
		prior.Body, feedback)

	resp, err := w.llm.Generate(ctx, prompt,
		ai.WithSystem(socialReviseSystemPrompt),
		ai.WithMode(ai.ModeRevise),
		ai.WithTemperature(0.8),
		ai.WithMaxTokens(1500),
	)
	if err != nil {
		return nil, ai.NewGenerationError("social post revision failed", err)
	}

	content := resp.Content
	hashtags := ExtractHashtags(content)
	if len(hashtags) == 0 {
		hashtags = prior.Hashtags
		if len(hashtags) > 0 {
			content = content + "\n\n" + strings.Join(hashtags, " ")
		}
	}

	return &ai.SocialPost{
		Body:            content,
		Hashtags:        hashtags,
		CharacterCount:  len(content),
		EngagementScore: EngagementScore(content),
		Image:           prior.Image,
		Provider:        resp.Provider,
	}, nil
}

// generateHashtags asks the model for hashtags; on failure a static set is
// used so a post always ships with hashtags.
func (w *SocialWriter) generateHashtags(ctx context.Context, topic, content string) []string {
	prompt := fmt.Sprintf("Topic: %s\n\nPost Content:\n%s\n\nGenerate 8 relevant LinkedIn hashtags:",
		topic, truncate(content, 500))

	resp, err := w.llm.Generate(ctx, prompt,
		ai.WithSystem(hashtagSystemPrompt),
		ai.WithTemperature(0.7),
		ai.WithMaxTokens(100),
	)
	if err == nil {
		if tags := ExtractHashtags(resp.Content); len(tags) > 0 {
			return tags
		}
	}
	return fallbackHashtags
}

var (
	spaceRuns = regexp.MustCompile(`[ \t]{2,}`)
	linePad   = regexp.MustCompile(`[ \t]+\n`)
	blankRuns = regexp.MustCompile(`\n{3,}`)
)

// collapseSpace tidies the gaps left behind when inline hashtags are
// stripped out of a post body.
func collapseSpace(s string) string {
	s = spaceRuns.ReplaceAllString(s, " ")
	s = linePad.ReplaceAllString(s, "\n")
	s = blankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// ExtractHashtags returns the hashtags in content, case-insensitively
// deduplicated in order of first appearance, capped at ten.
func ExtractHashtags(content string) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, tag := range hashtagPattern.FindAllString(content, -1) {
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		tags = append(tags, tag)
		if len(tags) == maxHashtags {
			break
		}
	}
	return tags
}

var digitPattern = regexp.MustCompile(`\d`)

// ctaWords are call-to-action cues that correlate with engagement.
var ctaWords = []string{"share", "comment", "thoughts", "agree", "discuss", "learn"}

// EngagementScore estimates engagement potential on a 0-10 scale from
// simple content characteristics: questions, call-to-action words, numbers,
// and length in the 250-1300 character sweet spot.
func EngagementScore(content string) float64 {
	score := 5.0
	lower := strings.ToLower(content)

	if strings.Contains(content, "?") {
		score++
	}
	for _, word := range ctaWords {
		if strings.Contains(lower, word) {
			score++
			break
		}
	}
	if digitPattern.MatchString(content) {
		score += 0.5
	}
	if n := len(content); n >= 250 && n <= 1300 {
		score++
	} else if n > 3000 {
		score--
	}

	if score > 10 {
		return 10
	}
	if score < 0 {
		return 0
	}
	return score
}
