package crest

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance is the largest edit distance still offered as a
// "did you mean" suggestion.
const maxSuggestDistance = 2

// warnUnknown logs an operation on a name that is not bound, with the
// nearest bound name attached when one is close enough. Callers must not
// hold r.mu.
func (r *Registry) warnUnknown(op, name string) {
	ev := r.log.Warn().Str("action", name)
	if s, ok := r.suggest(name); ok {
		ev = ev.Str("suggestion", s)
	}
	ev.Msg(op + " for unknown action")
}

// suggest returns the bound name closest to name by case-insensitive edit
// distance, if any is within maxSuggestDistance.
func (r *Registry) suggest(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lower := strings.ToLower(name)
	best := ""
	bestDist := maxSuggestDistance + 1
	for candidate := range r.actions {
		d := levenshtein.ComputeDistance(lower, strings.ToLower(candidate))
		if d < bestDist {
			best, bestDist = candidate, d
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}
