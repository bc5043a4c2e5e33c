package match

import (
	"math"

	"benchboard/pkg/nlp"
)

// Result is the outcome of matching one resume text against one keyword set.
// It is never persisted: the same text and keywords always produce the same
// result, so it can be recomputed (or cached) freely.
type Result struct {
	FoundKeywords     []string `json:"foundKeywords"`
	MissingKeywords   []string `json:"missingKeywords"`
	MatchScorePercent int      `json:"matchScorePercent"`
}

// Match tests every keyword against the text as a whole-word token or
// contiguous phrase, case-insensitively. The score is the rounded percentage
// of keywords found; an empty keyword set scores 0.
func Match(text string, keywords []string) Result {
	found := []string{}
	missing := []string{}

	normText := nlp.Normalize(text)
	for _, kw := range Keywords(keywords) {
		if nlp.ContainsPhrase(normText, kw) {
			found = append(found, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	total := len(found) + len(missing)
	score := 0
	if total > 0 {
		score = int(math.Round(100 * float64(len(found)) / float64(total)))
	}
	return Result{
		FoundKeywords:     found,
		MissingKeywords:   missing,
		MatchScorePercent: score,
	}
}
