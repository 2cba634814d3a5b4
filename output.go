package alchemy

import "github.com/google/uuid"

// StepError records a failure at a named workflow step.
type StepError struct {
	Step    string `json:"step"`
	Message string `json:"message"`
}

// QualityScores holds the quality-check result for a textual artifact.
type QualityScores struct {
	Overall float64            `json:"overall"`
	Scores  map[string]float64 `json:"scores,omitempty"`
}

// Metadata is the diagnostic record attached to every final output.
type Metadata struct {
	RunID string `json:"runId,omitempty"`
	// Errors is append-only over the life of a run; it is never cleared.
	Errors []StepError `json:"errors"`
	// History lists step names in execution order.
	History       []string       `json:"history"`
	QualityScores *QualityScores `json:"qualityScores,omitempty"`
}

// FinalOutput is the single structured result of a workflow run or a
// refinement. It is built once at finalize and read-only afterward.
type FinalOutput struct {
	Intent  Intent   `json:"intent"`
	Query   string   `json:"query,omitempty"`
	Success bool     `json:"success"`
	Content Artifact `json:"content,omitempty"`
	// Err carries the most specific failure message when Success is false.
	Err      string        `json:"error,omitempty"`
	Metadata Metadata      `json:"metadata"`
	Research *ResearchData `json:"research,omitempty"`
}

// CloneShallow copies the output so a refinement can replace Content and
// extend History without touching the original. Metadata slices are copied;
// artifacts and research data are shared since they are immutable.
func (o *FinalOutput) CloneShallow() *FinalOutput {
	if o == nil {
		return nil
	}
	clone := *o
	clone.Metadata.Errors = append([]StepError(nil), o.Metadata.Errors...)
	clone.Metadata.History = append([]string(nil), o.Metadata.History...)
	return &clone
}

// CacheEntry is one completed request kept for history browsing. Immutable
// once inserted.
type CacheEntry struct {
	Query  string       `json:"query"`
	Intent Intent       `json:"intent"`
	Output *FinalOutput `json:"output"`
}

// NewRunID creates a unique identifier for one workflow run.
func NewRunID() string {
	return "run-" + uuid.New().String()
}
