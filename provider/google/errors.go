package google

import (
	"errors"

	ai "github.com/spetersoncode/alchemy"
	"google.golang.org/genai"
)

// wrapError wraps a GenAI SDK error as a categorized provider failure
// with the HTTP status code attached when available.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	code := 0
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		code = apiErr.Code
	}

	return ai.NewProviderError(ai.ProviderGoogle, "google call failed", code, err)
}
