// Package shortlist partitions a consultant population into matching and
// not-matching buckets for one skill query. Results are ephemeral: every
// request takes a fresh population snapshot and recomputes the partition.
package shortlist

import (
	"sort"
	"strings"

	"benchboard/pkg/consultant"
	"benchboard/pkg/match"
)

// Candidate pairs a consultant with the extracted text of their latest
// resume. An empty ResumeText means no resume is on file.
type Candidate struct {
	Consultant consultant.Consultant
	ResumeText string
}

// Entry is one consultant's position in a shortlist.
type Entry struct {
	Consultant     consultant.Consultant `json:"consultant"`
	Match          match.Result          `json:"match"`
	NoResumeOnFile bool                  `json:"noResumeOnFile"`
}

// Result is the full partition. Matching + NotMatching always cover the
// whole population; both buckets are ordered by score descending with ties
// broken by consultant id ascending, so repeated requests over unchanged
// data render identically.
type Result struct {
	Keywords    []string `json:"keywords"`
	Threshold   int      `json:"threshold"`
	Matching    []Entry  `json:"matching"`
	NotMatching []Entry  `json:"notMatching"`
}

// Partition matches every candidate against the keyword set and buckets by
// matchScorePercent >= threshold. Candidates without a resume on file are
// always placed in NotMatching with score 0 and the NoResumeOnFile flag set,
// never dropped.
func Partition(keywords []string, population []Candidate, threshold int) Result {
	res := Result{
		Keywords:    keywords,
		Threshold:   threshold,
		Matching:    []Entry{},
		NotMatching: []Entry{},
	}
	for _, cand := range population {
		e := Entry{Consultant: cand.Consultant}
		if strings.TrimSpace(cand.ResumeText) == "" {
			e.NoResumeOnFile = true
			e.Match = match.Match("", keywords)
			res.NotMatching = append(res.NotMatching, e)
			continue
		}
		e.Match = match.Match(cand.ResumeText, keywords)
		if e.Match.MatchScorePercent >= threshold {
			res.Matching = append(res.Matching, e)
		} else {
			res.NotMatching = append(res.NotMatching, e)
		}
	}
	orderEntries(res.Matching)
	orderEntries(res.NotMatching)
	return res
}

func orderEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Match.MatchScorePercent != b.Match.MatchScorePercent {
			return a.Match.MatchScorePercent > b.Match.MatchScorePercent
		}
		return a.Consultant.ID.String() < b.Consultant.ID.String()
	})
}
