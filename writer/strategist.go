package writer

import (
	"context"
	"fmt"
	"strings"

	ai "github.com/spetersoncode/alchemy"
	"github.com/spetersoncode/alchemy/fallback"
	"github.com/tidwall/gjson"
)

// qualityCategories are the scored dimensions of a quality check, with a
// neutral default used when a score cannot be parsed.
var qualityCategories = []string{"clarity", "structure", "seo", "engagement", "brand_voice"}

const defaultQualityScore = 7.0

// Strategist builds content briefs and runs quality analysis on textual
// artifacts.
type Strategist struct {
	llm *fallback.Chain
}

// NewStrategist creates a strategist backed by the given chain.
func NewStrategist(llm *fallback.Chain) *Strategist {
	return &Strategist{llm: llm}
}

// CreateBrief writes a structured content brief for the topic.
func (s *Strategist) CreateBrief(ctx context.Context, topic string, reqs ai.Requirements, research *ai.ResearchData) (*ai.StrategyBrief, error) {
	tone := reqs.Tone
	if tone == "" {
		tone = "professional"
	}
	audience := reqs.Audience
	if audience == "" {
		audience = "general"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n\nRequirements:\n- Tone: %s\n- Audience: %s\n", topic, tone, audience)
	if len(reqs.Keywords) > 0 {
		fmt.Fprintf(&b, "- Keywords: %s\n", strings.Join(reqs.Keywords, ", "))
	}
	if research != nil && research.Summary != "" {
		fmt.Fprintf(&b, "\nResearch Context: %s\n", truncate(research.Summary, 500))
	}
	b.WriteString("\nCreate a comprehensive content brief:")

	resp, err := s.llm.Generate(ctx, b.String(),
		ai.WithSystem(briefSystemPrompt),
		ai.WithMode(ai.ModeDraft),
		ai.WithTemperature(0.6),
		ai.WithMaxTokens(2000),
	)
	if err != nil {
		return nil, ai.NewGenerationError("brief generation failed", err)
	}

	return &ai.StrategyBrief{
		Topic:    topic,
		Brief:    resp.Content,
		Provider: resp.Provider,
	}, nil
}

// Refine revises the brief per the feedback.
func (s *Strategist) Refine(ctx context.Context, prior *ai.StrategyBrief, feedback string) (*ai.StrategyBrief, error) {
	if strings.TrimSpace(prior.Brief) == "" {
		return nil, ai.NewValidationError("no brief content to refine")
	}

	prompt := fmt.Sprintf("Current content brief:\n\n%s\n\nUser feedback / requested changes: %s\n\nRevise the brief according to the feedback. Return the complete revised brief:",
		prior.Brief, feedback)

	resp, err := s.llm.Generate(ctx, prompt,
		ai.WithSystem(briefReviseSystemPrompt),
		ai.WithMode(ai.ModeRevise),
		ai.WithTemperature(0.6),
		ai.WithMaxTokens(2000),
	)
	if err != nil {
		return nil, ai.NewGenerationError("brief revision failed", err)
	}

	return &ai.StrategyBrief{
		Topic:    prior.Topic,
		Brief:    resp.Content,
		Provider: resp.Provider,
	}, nil
}

// AnalyzeQuality scores the content across fixed categories on a 0-10
// scale. Categories the model omits or garbles fall back to a neutral
// score, so a successful call always yields a full score set.
func (s *Strategist) AnalyzeQuality(ctx context.Context, content string, kind ai.ArtifactKind) (*ai.QualityScores, error) {
	prompt := fmt.Sprintf("Content Type: %s\n\nContent to Analyze:\n\n%s\n\nAnalyze the content quality:",
		kind, truncate(content, 3000))

	resp, err := s.llm.Generate(ctx, prompt,
		ai.WithSystem(qualitySystemPrompt),
		ai.WithMode(ai.ModeScore),
		ai.WithTemperature(0.5),
		ai.WithMaxTokens(1000),
	)
	if err != nil {
		return nil, ai.NewGenerationError("quality analysis failed", err)
	}

	parsed := gjson.Parse(extractJSON(resp.Content))
	scores := make(map[string]float64, len(qualityCategories))
	total := 0.0
	for _, cat := range qualityCategories {
		score := defaultQualityScore
		if v := parsed.Get(cat); v.Exists() && v.Type == gjson.Number {
			score = clampScore(v.Float())
		}
		scores[cat] = score
		total += score
	}

	return &ai.QualityScores{
		Overall: total / float64(len(qualityCategories)),
		Scores:  scores,
	}, nil
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}

// extractJSON trims model chatter around a JSON object, including markdown
// code fences.
func extractJSON(s string) string {
	s = strings.TrimSpace(s)
	if start := strings.Index(s, "{"); start >= 0 {
		if end := strings.LastIndex(s, "}"); end > start {
			return s[start : end+1]
		}
	}
	return s
}
