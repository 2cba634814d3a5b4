package alchemy

// Mode tags the purpose of a generation call. Gateways may use it for
// logging and request shaping; the fallback chain reports it on failure.
type Mode string

const (
	ModeClassify  Mode = "classify"
	ModeExtract   Mode = "extract"
	ModeDraft     Mode = "draft"
	ModeRevise    Mode = "revise"
	ModeSummarize Mode = "summarize"
	ModeScore     Mode = "score"
)

// Options contains configuration for a generation request.
type Options struct {
	Model       string
	System      string
	Mode        Mode
	MaxTokens   int
	Temperature *float64
}

// Option is a functional option for configuring generation requests.
type Option func(*Options)

// WithModel sets the model to use for the request.
func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// WithSystem sets the system (role/instruction) prompt.
func WithSystem(system string) Option {
	return func(o *Options) {
		o.System = system
	}
}

// WithMode tags the request with its generation mode.
func WithMode(mode Mode) Option {
	return func(o *Options) {
		o.Mode = mode
	}
}

// WithMaxTokens sets the maximum number of tokens to generate.
func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

// WithTemperature sets the sampling temperature (0.0 to 2.0).
func WithTemperature(t float64) Option {
	return func(o *Options) {
		o.Temperature = &t
	}
}

// ApplyOptions applies functional options to an Options struct.
func ApplyOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
