package alchemy

// ArtifactKind tags the variant of a generated content artifact.
type ArtifactKind string

const (
	KindBlog     ArtifactKind = "blog"
	KindSocial   ArtifactKind = "social"
	KindImage    ArtifactKind = "image"
	KindStrategy ArtifactKind = "strategy"
)

// Artifact is one generated content object, tagged by kind. It is a closed
// union over BlogPost, SocialPost, GeneratedImage, and StrategyBrief;
// consumers switch on Kind (or the concrete type) and must handle every
// variant.
//
// Artifacts are immutable once constructed. Refinement builds a replacement
// artifact; it never mutates in place.
type Artifact interface {
	Kind() ArtifactKind
}

// ArtifactKindFor maps an intent to the artifact kind its generation step
// produces. Research has no artifact of its own and maps to KindBlog (the
// original pipeline folds research-only requests into blog generation after
// the research node).
func ArtifactKindFor(intent Intent) ArtifactKind {
	switch intent {
	case IntentSocial:
		return KindSocial
	case IntentImage:
		return KindImage
	case IntentStrategy:
		return KindStrategy
	default:
		return KindBlog
	}
}

// BlogPost is a long-form, SEO-shaped article.
type BlogPost struct {
	Title           string   `json:"title"`
	MetaDescription string   `json:"metaDescription"`
	Body            string   `json:"body"`
	WordCount       int      `json:"wordCount"`
	Keywords        []string `json:"keywords,omitempty"`
	Sources         []Source `json:"sources,omitempty"`
	Provider        Provider `json:"provider,omitempty"`
}

// Kind returns KindBlog.
func (*BlogPost) Kind() ArtifactKind { return KindBlog }

// SocialPost is a short professional social-network post with hashtags and
// an optional accompanying image. When image generation fails the post is
// still valid; ImageError carries the failure for display.
type SocialPost struct {
	Body            string          `json:"body"`
	Hashtags        []string        `json:"hashtags"`
	CharacterCount  int             `json:"characterCount"`
	EngagementScore float64         `json:"engagementScore"`
	Image           *GeneratedImage `json:"image,omitempty"`
	ImageError      string          `json:"imageError,omitempty"`
	Provider        Provider        `json:"provider,omitempty"`
}

// Kind returns KindSocial.
func (*SocialPost) Kind() ArtifactKind { return KindSocial }

// GeneratedImage is a rendered image plus the prompt that produced it.
type GeneratedImage struct {
	URL string `json:"url"`
	// Prompt is the prompt sent to the provider.
	Prompt string `json:"prompt"`
	// RevisedPrompt is the provider's rewrite of the prompt, if any.
	RevisedPrompt string       `json:"revisedPrompt,omitempty"`
	Size          ImageSize    `json:"size"`
	Quality       ImageQuality `json:"quality"`
	Provider      Provider     `json:"provider,omitempty"`
}

// Kind returns KindImage.
func (*GeneratedImage) Kind() ArtifactKind { return KindImage }

// StrategyBrief is a structured content brief.
type StrategyBrief struct {
	Topic    string   `json:"topic"`
	Brief    string   `json:"brief"`
	Provider Provider `json:"provider,omitempty"`
}

// Kind returns KindStrategy.
func (*StrategyBrief) Kind() ArtifactKind { return KindStrategy }
