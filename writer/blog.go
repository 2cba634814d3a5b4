// Package writer holds the content generation steps: blog posts, social
// posts, images, and strategy briefs.
package writer

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	ai "github.com/spetersoncode/alchemy"
	"github.com/spetersoncode/alchemy/fallback"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// wordCounts maps a requested length to a target word count.
var wordCounts = map[string]int{
	"short":  800,
	"medium": 1500,
	"long":   2500,
}

const defaultWordCount = 1500

// BlogWriter generates long-form SEO-shaped articles.
type BlogWriter struct {
	llm *fallback.Chain
}

// NewBlogWriter creates a blog writer backed by the given chain.
func NewBlogWriter(llm *fallback.Chain) *BlogWriter {
	return &BlogWriter{llm: llm}
}

// Generate writes a complete blog post for the topic. Research data, when
// present, feeds the prompt and its sources are attached to the post.
func (w *BlogWriter) Generate(ctx context.Context, topic string, reqs ai.Requirements, research *ai.ResearchData) (*ai.BlogPost, error) {
	tone := reqs.Tone
	if tone == "" {
		tone = "professional"
	}
	length := reqs.Length
	if length == "" {
		length = "medium"
	}
	targetWords, ok := wordCounts[length]
	if !ok {
		targetWords = defaultWordCount
	}
	audience := reqs.Audience
	if audience == "" {
		audience = "general audience"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n\nAudience: %s\nTone: %s\nLength: %s (~%d words)\n", topic, audience, tone, length, targetWords)
	if len(reqs.Keywords) > 0 {
		fmt.Fprintf(&b, "\nTarget Keywords to naturally incorporate: %s\n", strings.Join(reqs.Keywords, ", "))
	}
	if research != nil && research.Summary != "" {
		fmt.Fprintf(&b, "\nResearch Context:\n%s\n\nUse this research to inform your content, but write in your own voice. Cite sources when using specific data or statistics.\n", research.Summary)
	}
	b.WriteString("\nWrite a comprehensive, SEO-optimized blog post:")

	resp, err := w.llm.Generate(ctx, b.String(),
		ai.WithSystem(fmt.Sprintf(blogSystemPrompt, targetWords, tone)),
		ai.WithMode(ai.ModeDraft),
		ai.WithTemperature(0.7),
		ai.WithMaxTokens(4000),
	)
	if err != nil {
		return nil, ai.NewGenerationError("blog generation failed", err)
	}

	var sources []ai.Source
	if research != nil {
		sources = research.Sources
	}

	return &ai.BlogPost{
		Title:           ExtractTitle(resp.Content),
		MetaDescription: ExtractMetaDescription(resp.Content),
		Body:            resp.Content,
		WordCount:       len(strings.Fields(resp.Content)),
		Keywords:        reqs.Keywords,
		Sources:         sources,
		Provider:        resp.Provider,
	}, nil
}

// Revise rewrites the post body per the feedback. Title, meta description,
// keywords, and sources carry over from the prior post.
func (w *BlogWriter) Revise(ctx context.Context, prior *ai.BlogPost, feedback string) (*ai.BlogPost, error) {
	prompt := fmt.Sprintf("Original Blog Post:\n\n%s\n\nUser Feedback: %s\n\nRefine the blog post according to the feedback:",
		prior.Body, feedback)

	resp, err := w.llm.Generate(ctx, prompt,
		ai.WithSystem(blogReviseSystemPrompt),
		ai.WithMode(ai.ModeRevise),
		ai.WithTemperature(0.7),
		ai.WithMaxTokens(4000),
	)
	if err != nil {
		return nil, ai.NewGenerationError("blog revision failed", err)
	}

	return &ai.BlogPost{
		Title:           prior.Title,
		MetaDescription: prior.MetaDescription,
		Body:            resp.Content,
		WordCount:       len(strings.Fields(resp.Content)),
		Keywords:        prior.Keywords,
		Sources:         prior.Sources,
		Provider:        resp.Provider,
	}, nil
}

// ExtractTitle pulls the article title out of markdown content: the first
// level-1 heading, then any heading, then the first short line.
func ExtractTitle(content string) string {
	src := []byte(content)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var firstHeading string
	title := ""
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		txt := headingText(h, src)
		if txt == "" {
			return ast.WalkContinue, nil
		}
		if firstHeading == "" {
			firstHeading = txt
		}
		if h.Level == 1 {
			title = txt
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if title != "" {
		return title
	}
	if firstHeading != "" {
		return firstHeading
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && len(line) < 100 {
			return strings.TrimSpace(strings.TrimPrefix(line, "#"))
		}
	}
	return "Untitled"
}

func headingText(h *ast.Heading, src []byte) string {
	var b strings.Builder
	for c := h.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(src))
		}
	}
	return strings.TrimSpace(b.String())
}

// ExtractMetaDescription finds a meta description in the content: the line
// after a "meta description" marker, else the first non-heading paragraph,
// capped at 160 characters.
func ExtractMetaDescription(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), "meta description") && i+1 < len(lines) {
			if next := strings.TrimSpace(lines[i+1]); next != "" {
				return truncate(next, 160)
			}
		}
	}

	for _, para := range strings.Split(content, "\n\n") {
		para = strings.TrimSpace(para)
		if para != "" && !strings.HasPrefix(para, "#") {
			return truncate(para, 160)
		}
	}
	return "A comprehensive guide on the topic."
}

// truncate caps s at n bytes without splitting a multi-byte rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
