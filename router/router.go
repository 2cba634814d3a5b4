// Package router classifies user queries into content intents and extracts
// generation requirements.
package router

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	ai "github.com/spetersoncode/alchemy"
	"github.com/spetersoncode/alchemy/fallback"
	"github.com/tidwall/gjson"
)

const classifySystemPrompt = `You are an intent classification system. Analyze the user's query and classify it into one of these categories:
- blog: SEO-optimized blog posts, articles, long-form content
- social: engaging social posts, professional LinkedIn-style posts
- research: research, find information, investigate a topic
- image: high-quality images, visuals, illustrations
- strategy: content strategies, plans, outlines, organization

Respond with ONLY the category name in lowercase.`

const extractSystemPrompt = `Extract content requirements from the user query. Return a JSON object with:
- topic: the main topic or subject
- tone: professional, casual, friendly, formal
- length: short, medium, long
- audience: target audience description
- keywords: list of important keywords
- style: informative, persuasive, educational, etc.

Return ONLY valid JSON, no additional text.`

// intentKeywords backs the keyword classifier used when the model call
// fails or returns an unknown label.
var intentKeywords = map[ai.Intent][]string{
	ai.IntentBlog:     {"blog", "article", "post", "long-form", "seo"},
	ai.IntentSocial:   {"linkedin", "social", "post", "professional"},
	ai.IntentResearch: {"research", "investigate", "find", "search", "study"},
	ai.IntentImage:    {"image", "picture", "visual", "art", "illustration"},
	ai.IntentStrategy: {"strategy", "plan", "outline", "organize", "structure", "brief"},
}

// researchKeywords trigger a research pass before blog generation. Year
// tokens (e.g. "2025") count as trend indicators too.
var researchKeywords = []string{
	"research", "find", "investigate", "learn about", "information about",
	"facts about", "statistics", "data", "latest", "current", "trends",
}

var yearPattern = regexp.MustCompile(`\b20\d{2}\b`)

// Classifier routes queries to an intent and pulls structured requirements
// out of free text.
type Classifier struct {
	llm *fallback.Chain
}

// NewClassifier creates a classifier backed by the given chain.
func NewClassifier(llm *fallback.Chain) *Classifier {
	return &Classifier{llm: llm}
}

// ClassifyIntent determines the intent of a query. A valid hint wins
// unconditionally. Otherwise the model classifies; an unknown label or a
// failed call falls back to keyword matching, which always yields a valid
// intent.
func (c *Classifier) ClassifyIntent(ctx context.Context, query string, hint ai.Intent) ai.Intent {
	if hint.Valid() {
		return hint
	}

	resp, err := c.llm.Generate(ctx, "User query: "+query+"\n\nClassify the intent:",
		ai.WithSystem(classifySystemPrompt),
		ai.WithMode(ai.ModeClassify),
		ai.WithTemperature(0.3),
		ai.WithMaxTokens(50),
	)
	if err != nil {
		slog.Warn("intent classification failed, using keyword match", "error", err)
		return KeywordClassify(query)
	}

	label := strings.ToLower(strings.TrimSpace(resp.Content))
	if intent, ok := ai.ParseIntent(label); ok {
		return intent
	}
	return KeywordClassify(query)
}

// KeywordClassify scores each intent by keyword hits in the query and
// returns the best match, defaulting to blog.
func KeywordClassify(query string) ai.Intent {
	lower := strings.ToLower(query)

	best := ai.IntentBlog
	bestScore := 0
	for _, intent := range []ai.Intent{ai.IntentBlog, ai.IntentSocial, ai.IntentResearch, ai.IntentImage, ai.IntentStrategy} {
		score := 0
		for _, kw := range intentKeywords[intent] {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = intent
			bestScore = score
		}
	}
	return best
}

// ExtractRequirements asks the model for structured requirements. Failures
// degrade to defaults; extraction never blocks a run.
func (c *Classifier) ExtractRequirements(ctx context.Context, query string, intent ai.Intent) ai.Requirements {
	reqs := ai.Requirements{
		Tone:     "professional",
		Length:   "medium",
		Audience: "general",
		Style:    "informative",
	}

	resp, err := c.llm.Generate(ctx, "Query: "+query+"\nIntent: "+string(intent)+"\n\nExtract requirements:",
		ai.WithSystem(extractSystemPrompt),
		ai.WithMode(ai.ModeExtract),
		ai.WithTemperature(0.3),
		ai.WithMaxTokens(300),
	)
	if err != nil {
		slog.Warn("requirement extraction failed, using defaults", "error", err)
		return reqs
	}

	parsed := gjson.Parse(extractJSON(resp.Content))
	if !parsed.IsObject() {
		slog.Warn("requirement extraction returned non-JSON, using defaults")
		return reqs
	}
	if v := parsed.Get("topic"); v.Exists() {
		reqs.Topic = v.String()
	}
	if v := parsed.Get("tone"); v.Exists() && v.String() != "" {
		reqs.Tone = v.String()
	}
	if v := parsed.Get("length"); v.Exists() && v.String() != "" {
		reqs.Length = v.String()
	}
	if v := parsed.Get("audience"); v.Exists() && v.String() != "" {
		reqs.Audience = v.String()
	}
	if v := parsed.Get("style"); v.Exists() && v.String() != "" {
		reqs.Style = v.String()
	}
	for _, kw := range parsed.Get("keywords").Array() {
		reqs.Keywords = append(reqs.Keywords, kw.String())
	}
	return reqs
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

// ShouldConductResearch reports whether a research pass should run before
// generation. Research intent always researches; blog queries research only
// when they carry research cues.
func ShouldConductResearch(query string, intent ai.Intent) bool {
	if intent == ai.IntentResearch {
		return true
	}
	if intent != ai.IntentBlog {
		return false
	}
	lower := strings.ToLower(query)
	for _, kw := range researchKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return yearPattern.MatchString(lower)
}
