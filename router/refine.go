package router

import "strings"

// refinementKeywords signal that the user wants existing content changed
// rather than new content generated.
var refinementKeywords = []string{
	"refine", "change", "update", "modify", "make it", "make the", "adjust", "improve",
	"rectify", "fix", "rewrite", "edit", "rephrase", "tweak", "revise", "correct",
	"redo", "alter", "adapt", "shorten", "lengthen", "simplify", "expand",
	"add", "remove", "replace", "tone down", "tone up", "reword", "rework",
}

// politePrefixes introduce indirect modification requests, e.g.
// "could you make the intro punchier".
var politePrefixes = []string{"can you", "could you", "please", "would you"}

// IsRefinement reports whether text asks to modify prior output. Without
// prior output there is nothing to refine, so it always returns false.
func IsRefinement(text string, hasPrior bool) bool {
	if !hasPrior {
		return false
	}
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return false
	}
	for _, kw := range refinementKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	if len(lower) > 15 {
		for _, p := range politePrefixes {
			if strings.HasPrefix(lower, p) {
				return true
			}
		}
	}
	return false
}
