// Package serp implements web search over the SerpAPI Google engine.
package serp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	ai "github.com/spetersoncode/alchemy"
	"github.com/tidwall/gjson"
)

const defaultBaseURL = "https://serpapi.com/search"

// Client queries SerpAPI and implements ai.Searcher.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// New creates a SerpAPI client with the given API key.
func New(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClientOption configures the SerpAPI client.
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL overrides the SerpAPI endpoint. Useful for tests.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// Search runs a Google search and returns up to limit organic results.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]ai.Source, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ai.NewValidationError("search query cannot be empty")
	}
	if limit <= 0 {
		limit = 10
	}

	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", query)
	params.Set("num", strconv.Itoa(limit))
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, ai.NewResearchError("building search request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ai.NewResearchError("search request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ai.NewResearchError("reading search response", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, ai.NewResearchError(fmt.Sprintf("search returned status %d", resp.StatusCode), nil)
	}

	return parseResults(body, limit), nil
}

// parseResults extracts organic results from a SerpAPI response body.
// Missing fields are tolerated; entries without a link are skipped.
func parseResults(body []byte, limit int) []ai.Source {
	var sources []ai.Source
	gjson.GetBytes(body, "organic_results").ForEach(func(_, item gjson.Result) bool {
		link := item.Get("link").String()
		if link == "" {
			return true
		}
		sources = append(sources, ai.Source{
			Title:   item.Get("title").String(),
			URL:     link,
			Snippet: item.Get("snippet").String(),
			Site:    item.Get("displayed_link").String(),
		})
		return len(sources) < limit
	})
	return sources
}

// FormatForPrompt renders sources as a numbered citation list suitable for
// inclusion in a synthesis prompt.
func FormatForPrompt(sources []ai.Source) string {
	var b strings.Builder
	for i, s := range sources {
		fmt.Fprintf(&b, "[%d] %s\n", i+1, s.Title)
		if s.Snippet != "" {
			fmt.Fprintf(&b, "    %s\n", s.Snippet)
		}
		fmt.Fprintf(&b, "    %s\n", s.URL)
	}
	return b.String()
}

var _ ai.Searcher = (*Client)(nil)
