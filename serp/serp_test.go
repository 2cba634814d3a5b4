package serp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	ai "github.com/spetersoncode/alchemy"
	"github.com/stretchr/testify/assert"
)

const sampleResponse = `{
	"organic_results": [
		{
			"title": "Go Concurrency Patterns",
			"link": "https://example.com/go-concurrency",
			"snippet": "Pipelines and cancellation in Go.",
			"displayed_link": "example.com"
		},
		{
			"title": "No Link Entry"
		},
		{
			"title": "Effective Go",
			"link": "https://example.com/effective-go",
			"snippet": "Tips for writing clear, idiomatic Go code.",
			"displayed_link": "example.com"
		},
		{
			"title": "Third Result",
			"link": "https://example.com/third",
			"snippet": "Another result.",
			"displayed_link": "example.com"
		}
	]
}`

func TestSearchParsesOrganicResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "google", r.URL.Query().Get("engine"))
		assert.Equal(t, "go concurrency", r.URL.Query().Get("q"))
		w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	client := New("test-key", WithBaseURL(srv.URL))
	sources, err := client.Search(context.Background(), "go concurrency", 2)

	assert.NoError(t, err)
	assert.Len(t, sources, 2, "limit caps results and linkless entries are skipped")
	assert.Equal(t, "Go Concurrency Patterns", sources[0].Title)
	assert.Equal(t, "https://example.com/go-concurrency", sources[0].URL)
	assert.Equal(t, "example.com", sources[0].Site)
	assert.Equal(t, "Effective Go", sources[1].Title)
}

func TestSearchEmptyQuery(t *testing.T) {
	client := New("test-key")
	sources, err := client.Search(context.Background(), "   ", 5)

	assert.Nil(t, sources)
	assert.True(t, ai.IsValidation(err))
}

func TestSearchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := New("bad-key", WithBaseURL(srv.URL))
	sources, err := client.Search(context.Background(), "anything", 5)

	assert.Nil(t, sources)
	assert.Equal(t, ai.KindResearchUnavailable, ai.KindOf(err))
}

func TestFormatForPrompt(t *testing.T) {
	sources := []ai.Source{
		{Title: "First", URL: "https://a.example.com", Snippet: "snippet one"},
		{Title: "Second", URL: "https://b.example.com"},
	}

	out := FormatForPrompt(sources)

	assert.Contains(t, out, "[1] First")
	assert.Contains(t, out, "snippet one")
	assert.Contains(t, out, "[2] Second")
	assert.Contains(t, out, "https://b.example.com")
}
