package alchemy

import "context"

// Searcher defines the interface to a web search provider used by the
// research step. Failures are structured errors; the research step treats
// them as best-effort and never aborts a run over them.
type Searcher interface {
	// Search returns up to limit results for the query, in rank order.
	Search(ctx context.Context, query string, limit int) ([]Source, error)
}

// Source is a single search result or research citation.
type Source struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet,omitempty"`
	Site    string `json:"site,omitempty"`
}

// ResearchData is the synthesized output of the research step.
type ResearchData struct {
	Summary  string   `json:"summary"`
	Sources  []Source `json:"sources"`
	Provider Provider `json:"provider,omitempty"`
}
