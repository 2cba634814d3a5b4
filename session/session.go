// Package session holds per-conversation state: the current output, the
// refinement gate, and the recent-request history.
package session

import (
	"context"
	"sync"

	ai "github.com/spetersoncode/alchemy"
	"github.com/spetersoncode/alchemy/cache"
	"github.com/spetersoncode/alchemy/refine"
	"github.com/spetersoncode/alchemy/router"
	"github.com/spetersoncode/alchemy/workflow"
)

// Session routes each incoming message either to the workflow engine (new
// request) or the refinement engine (feedback on the current output), and
// records completed requests in a bounded history.
//
// A Session serializes its own handling; use one Session per conversation.
type Session struct {
	mu      sync.Mutex
	engine  *workflow.Engine
	refiner *refine.Engine
	history *cache.Cache
	current *ai.FinalOutput
}

// New creates a session over the given engines with a history of
// cache.DefaultCapacity entries.
func New(engine *workflow.Engine, refiner *refine.Engine) *Session {
	return &Session{
		engine:  engine,
		refiner: refiner,
		history: cache.New(cache.DefaultCapacity),
	}
}

// Handle processes one user message. Messages that read as feedback on the
// current output are applied as refinements; everything else runs the full
// workflow. The result becomes the session's current output and is recorded
// in history. Handle never returns an error; failures surface in the output.
func (s *Session) Handle(ctx context.Context, text string, hint ai.Intent) *ai.FinalOutput {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out *ai.FinalOutput
	if s.isRefinement(text) {
		out = s.refiner.Apply(ctx, text, s.current)
	} else {
		out = s.engine.Run(ctx, text, hint)
	}

	s.current = out
	s.history.Push(ai.CacheEntry{
		Query:  text,
		Intent: out.Intent,
		Output: out,
	})
	return out
}

// Refine applies feedback to the current output directly, skipping the
// keyword gate. Callers use it when the caller has already decided this is
// a refinement (a dedicated refine command or tool). Returns false when
// there is no current content to refine.
func (s *Session) Refine(ctx context.Context, feedback string) (*ai.FinalOutput, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.current.Content == nil {
		return nil, false
	}

	out := s.refiner.Apply(ctx, feedback, s.current)
	s.current = out
	s.history.Push(ai.CacheEntry{
		Query:  feedback,
		Intent: out.Intent,
		Output: out,
	})
	return out, true
}

// isRefinement gates on both the message text and whether there is current
// content to refine.
func (s *Session) isRefinement(text string) bool {
	return router.IsRefinement(text, s.current != nil && s.current.Content != nil)
}

// Current returns the session's latest output, or nil before the first
// request.
func (s *Session) Current() *ai.FinalOutput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// History returns the recent completed requests, oldest first.
func (s *Session) History() []ai.CacheEntry {
	return s.history.List()
}

// Back restores the i-th history entry (oldest first) as the current
// output, so subsequent refinements apply to it. Returns false when i is
// out of range.
func (s *Session) Back(i int) (*ai.FinalOutput, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.history.Get(i)
	if !ok {
		return nil, false
	}
	s.current = entry.Output
	return entry.Output, true
}
