package alchemy

import "context"

// ImageProvider defines the interface for AI image generation providers.
type ImageProvider interface {
	// GenerateImage creates one image from a text prompt. The prompt must
	// be non-blank; providers reject empty prompts before any network call.
	GenerateImage(ctx context.Context, prompt string, opts ...ImageOption) (*GeneratedImage, error)
}

// ImageSize represents the requested image shape. Providers map these to
// their native pixel dimensions.
type ImageSize string

const (
	ImageSquare    ImageSize = "square"
	ImageLandscape ImageSize = "landscape"
	ImagePortrait  ImageSize = "portrait"
)

// ImageQuality specifies the quality level for generated images.
type ImageQuality string

const (
	ImageQualityStandard ImageQuality = "standard"
	ImageQualityHigh     ImageQuality = "high"
)

// ImageOptions contains configuration for an image generation request.
type ImageOptions struct {
	Size    ImageSize
	Quality ImageQuality
}

// ImageOption is a functional option for configuring image requests.
type ImageOption func(*ImageOptions)

// WithImageSize sets the shape of the generated image.
func WithImageSize(size ImageSize) ImageOption {
	return func(o *ImageOptions) {
		o.Size = size
	}
}

// WithImageQuality sets the quality level for the generated image.
func WithImageQuality(q ImageQuality) ImageOption {
	return func(o *ImageOptions) {
		o.Quality = q
	}
}

// ApplyImageOptions applies functional options to an ImageOptions struct.
func ApplyImageOptions(opts ...ImageOption) *ImageOptions {
	o := &ImageOptions{
		Size:    ImageSquare,
		Quality: ImageQualityStandard,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
