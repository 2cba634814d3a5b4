// Package research conducts web research with source attribution.
package research

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	ai "github.com/spetersoncode/alchemy"
	"github.com/spetersoncode/alchemy/fallback"
	"github.com/spetersoncode/alchemy/serp"
)

const synthesisSystemPrompt = `You are a research synthesis expert. Analyze the provided search results and create a comprehensive research summary with:
1. Key findings and insights
2. Important statistics and data points
3. Expert opinions and quotes
4. Trends and patterns
5. Gaps or areas needing more research

Always maintain source attribution. Format your response with clear sections and cite sources using [Source N] notation.`

const querySystemPrompt = `Generate diverse search queries to comprehensively research a topic. Create queries that cover:
- Main topic overview
- Recent developments and trends
- Statistics and data
- Expert opinions

Return one query per line, no numbering.`

// defaultResultCount is how many search hits feed one synthesis.
const defaultResultCount = 10

// Agent searches the web and synthesizes findings into a cited summary.
type Agent struct {
	search ai.Searcher
	llm    *fallback.Chain
}

// NewAgent creates a research agent.
func NewAgent(search ai.Searcher, llm *fallback.Chain) *Agent {
	return &Agent{search: search, llm: llm}
}

// Conduct searches for the topic and synthesizes the results into a summary
// with [Source N] citations. Any failure is reported as a research error so
// callers can treat it as best-effort.
func (a *Agent) Conduct(ctx context.Context, topic string) (*ai.ResearchData, error) {
	slog.Info("conducting research", "topic", topic)

	sources, err := a.search.Search(ctx, topic, defaultResultCount)
	if err != nil {
		return nil, ai.NewResearchError("search failed", err)
	}
	if len(sources) == 0 {
		return nil, ai.NewResearchError("search returned no results", nil)
	}

	prompt := fmt.Sprintf("Topic: %s\n\n%s\nSynthesize this research into a comprehensive summary with source attribution:",
		topic, serp.FormatForPrompt(sources))

	resp, err := a.llm.Generate(ctx, prompt,
		ai.WithSystem(synthesisSystemPrompt),
		ai.WithMode(ai.ModeSummarize),
		ai.WithTemperature(0.5),
		ai.WithMaxTokens(2000),
	)
	if err != nil {
		return nil, ai.NewResearchError("synthesis failed", err)
	}

	return &ai.ResearchData{
		Summary:  resp.Content,
		Sources:  sources,
		Provider: resp.Provider,
	}, nil
}

// GenerateQueries produces up to n diverse search queries for a topic.
func (a *Agent) GenerateQueries(ctx context.Context, topic string, n int) ([]string, error) {
	if n <= 0 {
		n = 3
	}
	prompt := fmt.Sprintf("Topic: %s\n\nGenerate %d diverse research queries:", topic, n)

	resp, err := a.llm.Generate(ctx, prompt,
		ai.WithSystem(querySystemPrompt),
		ai.WithTemperature(0.7),
		ai.WithMaxTokens(200),
	)
	if err != nil {
		return nil, ai.NewResearchError("query generation failed", err)
	}

	var queries []string
	for _, line := range strings.Split(resp.Content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			queries = append(queries, line)
		}
		if len(queries) == n {
			break
		}
	}
	return queries, nil
}
