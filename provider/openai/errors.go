package openai

import (
	"errors"

	"github.com/openai/openai-go"
	ai "github.com/spetersoncode/alchemy"
)

// wrapError wraps an OpenAI SDK error as a categorized provider failure
// with the HTTP status code attached when available.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	code := 0
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		code = apiErr.StatusCode
	}

	return ai.NewProviderError(ai.ProviderOpenAI, "openai call failed", code, err)
}
