package alchemy

// Intent is the classified purpose of a request.
type Intent string

const (
	IntentBlog     Intent = "blog"
	IntentSocial   Intent = "social"
	IntentImage    Intent = "image"
	IntentStrategy Intent = "strategy"
	IntentResearch Intent = "research"
	IntentUnknown  Intent = ""
)

// String returns the intent identifier.
func (i Intent) String() string { return string(i) }

// Valid reports whether i is one of the classifiable intents.
func (i Intent) Valid() bool {
	switch i {
	case IntentBlog, IntentSocial, IntentImage, IntentStrategy, IntentResearch:
		return true
	}
	return false
}

// ParseIntent converts a label (e.g. a UI selection or a model response)
// into an Intent. Returns IntentUnknown and false for anything outside the
// fixed set.
func ParseIntent(s string) (Intent, bool) {
	i := Intent(s)
	if i.Valid() {
		return i, true
	}
	return IntentUnknown, false
}

// Requirements are the structured content requirements extracted from a
// query. Zero-valued fields mean "use the generation step's default", never
// an error.
type Requirements struct {
	Topic    string   `json:"topic,omitempty"`
	Tone     string   `json:"tone,omitempty"`
	Length   string   `json:"length,omitempty"`
	Audience string   `json:"audience,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
	Style    string   `json:"style,omitempty"`
}
