package match

import (
	"strings"

	"benchboard/pkg/nlp"
)

// ParseQuery turns an admin- or consultant-supplied capability description
// into a normalized keyword set. A comma-separated list keeps each segment as
// one (possibly multi-word) phrase keyword; free text is split into
// single-token keywords. Keywords are trimmed, lowercased and deduplicated,
// preserving first-seen order for stable output.
func ParseQuery(raw string) []string {
	if strings.Contains(raw, ",") {
		return Keywords(strings.Split(raw, ","))
	}
	norm := nlp.Normalize(raw)
	if norm == "" {
		return []string{}
	}
	return Keywords(strings.Split(norm, " "))
}

// Keywords normalizes an explicit keyword list: each entry becomes one phrase
// keyword; empties are dropped and duplicates collapsed.
func Keywords(list []string) []string {
	out := []string{}
	seen := map[string]struct{}{}
	for _, kw := range list {
		k := nlp.Normalize(kw)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
