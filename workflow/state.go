package workflow

import ai "github.com/spetersoncode/alchemy"

// State is the mutable record threaded through one workflow run. It lives
// on a single goroutine; runs share nothing.
type State struct {
	RunID         string
	Query         string
	Intent        ai.Intent
	Requirements  ai.Requirements
	NeedsResearch bool
	Research      *ai.ResearchData
	Artifact      ai.Artifact
	Quality       *ai.QualityScores

	// Errors is append-only; steps record failures and keep going.
	Errors  []ai.StepError
	History []string
}

func newState(query string) *State {
	return &State{
		RunID: ai.NewRunID(),
		Query: query,
	}
}

// step records a completed step in execution order.
func (s *State) step(name string) {
	s.History = append(s.History, name)
}

// fail records a step failure without aborting the run.
func (s *State) fail(step string, err error) {
	s.Errors = append(s.Errors, ai.StepError{Step: step, Message: err.Error()})
}

// topic is the subject passed to generation steps: the extracted topic when
// present, otherwise the raw query.
func (s *State) topic() string {
	if s.Requirements.Topic != "" {
		return s.Requirements.Topic
	}
	return s.Query
}
