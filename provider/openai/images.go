package openai

import (
	"context"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	ai "github.com/spetersoncode/alchemy"
)

// ImageModel identifies an OpenAI image model.
type ImageModel string

// DefaultImageModel is the image model used unless overridden.
const DefaultImageModel ImageModel = "dall-e-3"

// DALL-E 3 caps prompts at 4000 characters.
const maxPromptLen = 4000

// ImageClient wraps the OpenAI images API to implement ai.ImageProvider.
type ImageClient struct {
	client *openai.Client
	model  ImageModel
}

// NewImageClient creates an image provider with the given API key.
func NewImageClient(apiKey string, opts ...ImageClientOption) *ImageClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	c := &ImageClient{
		client: &client,
		model:  DefaultImageModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ImageClientOption configures the image client.
type ImageClientOption func(*ImageClient)

// WithImageModel sets the image model for requests.
func WithImageModel(model ImageModel) ImageClientOption {
	return func(c *ImageClient) {
		c.model = model
	}
}

// GenerateImage creates one image from a text prompt using DALL-E 3.
// Blank prompts are rejected locally before any network call.
func (c *ImageClient) GenerateImage(ctx context.Context, prompt string, opts ...ai.ImageOption) (*ai.GeneratedImage, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, ai.NewValidationError("image prompt cannot be empty")
	}
	if len(prompt) > maxPromptLen {
		prompt = prompt[:maxPromptLen-3] + "..."
	}

	options := ai.ApplyImageOptions(opts...)

	params := openai.ImageGenerateParams{
		Model:          openai.ImageModel(c.model),
		Prompt:         prompt,
		N:              openai.Int(1),
		Size:           convertSize(options.Size),
		Quality:        convertQuality(options.Quality),
		ResponseFormat: openai.ImageGenerateParamsResponseFormatURL,
	}

	resp, err := c.client.Images.Generate(ctx, params)
	if err != nil {
		return nil, wrapError(err)
	}
	if len(resp.Data) == 0 {
		return nil, ai.NewProviderError(ai.ProviderOpenAI, "openai returned no image data", 0, nil)
	}

	return &ai.GeneratedImage{
		URL:           resp.Data[0].URL,
		Prompt:        prompt,
		RevisedPrompt: resp.Data[0].RevisedPrompt,
		Size:          options.Size,
		Quality:       options.Quality,
		Provider:      ai.ProviderOpenAI,
	}, nil
}

func convertSize(size ai.ImageSize) openai.ImageGenerateParamsSize {
	switch size {
	case ai.ImageLandscape:
		return openai.ImageGenerateParamsSize1792x1024
	case ai.ImagePortrait:
		return openai.ImageGenerateParamsSize1024x1792
	default:
		return openai.ImageGenerateParamsSize1024x1024
	}
}

func convertQuality(q ai.ImageQuality) openai.ImageGenerateParamsQuality {
	if q == ai.ImageQualityHigh {
		return openai.ImageGenerateParamsQualityHD
	}
	return openai.ImageGenerateParamsQualityStandard
}

var _ ai.ImageProvider = (*ImageClient)(nil)
