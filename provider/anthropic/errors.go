package anthropic

import (
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	ai "github.com/spetersoncode/alchemy"
)

// wrapError wraps an Anthropic SDK error as a categorized provider failure
// with the HTTP status code attached when available.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	code := 0
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		code = apiErr.StatusCode
	}

	return ai.NewProviderError(ai.ProviderAnthropic, "anthropic call failed", code, err)
}
