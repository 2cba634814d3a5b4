package alchemy

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies pipeline failures by where they occur and how the
// workflow engine treats them.
type ErrorKind string

const (
	// KindProviderFailure is a single backend call failing; recoverable
	// via the fallback chain.
	KindProviderFailure ErrorKind = "provider_failure"

	// KindAllProvidersFailed means every configured backend failed for one
	// logical call. Recorded, non-fatal to the run.
	KindAllProvidersFailed ErrorKind = "all_providers_failed"

	// KindResearchUnavailable marks a best-effort research failure; it
	// never propagates as a run failure.
	KindResearchUnavailable ErrorKind = "research_unavailable"

	// KindGenerationFailure means a content step failed; the run still
	// finalizes with Success=false.
	KindGenerationFailure ErrorKind = "generation_failure"

	// KindValidationFailure is a locally rejected input (e.g. a blank
	// image prompt), caught before any external call.
	KindValidationFailure ErrorKind = "validation_failure"
)

// Error is a categorized pipeline error.
type Error struct {
	Kind     ErrorKind
	Provider Provider // backend involved, if any
	Msg      string
	Code     int // HTTP status code, 0 if not applicable
	Cause    error
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewProviderError creates a single-backend failure.
func NewProviderError(provider Provider, msg string, code int, cause error) *Error {
	return &Error{Kind: KindProviderFailure, Provider: provider, Msg: msg, Code: code, Cause: cause}
}

// NewGenerationError creates a content-step failure.
func NewGenerationError(msg string, cause error) *Error {
	return &Error{Kind: KindGenerationFailure, Msg: msg, Cause: cause}
}

// NewResearchError creates a best-effort research failure.
func NewResearchError(msg string, cause error) *Error {
	return &Error{Kind: KindResearchUnavailable, Msg: msg, Cause: cause}
}

// NewValidationError creates a local input-validation failure.
func NewValidationError(msg string) *Error {
	return &Error{Kind: KindValidationFailure, Msg: msg}
}

// KindOf returns the error's kind, or "" if the error carries none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	var ap *AllProvidersError
	if errors.As(err, &ap) {
		return KindAllProvidersFailed
	}
	return ""
}

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool {
	return KindOf(err) == KindValidationFailure
}

// ProviderFailure pairs a provider with the error it returned during one
// pass over a fallback chain.
type ProviderFailure struct {
	Provider Provider
	Err      error
}

// AllProvidersError aggregates every backend's failure for one logical
// generation call.
type AllProvidersError struct {
	Mode     Mode
	Failures []ProviderFailure
}

// Error lists each provider's failure.
func (e *AllProvidersError) Error() string {
	var b strings.Builder
	b.WriteString("all providers failed")
	if e.Mode != "" {
		fmt.Fprintf(&b, " (%s)", e.Mode)
	}
	for _, f := range e.Failures {
		fmt.Fprintf(&b, "; %s: %v", f.Provider, f.Err)
	}
	return b.String()
}

// IsAllProvidersFailed reports whether err is an exhausted fallback chain.
func IsAllProvidersFailed(err error) bool {
	var ap *AllProvidersError
	return errors.As(err, &ap)
}
