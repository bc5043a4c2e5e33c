package shortlist

import (
	"context"

	"benchboard/pkg/match"
)

// PopulationSource provides a consistent snapshot of all consultants with
// their latest resume text at call time. The partitioner never serializes
// against concurrent consultant edits: eventual consistency across requests
// is acceptable.
type PopulationSource interface {
	Snapshot(ctx context.Context) ([]Candidate, error)
}

// UseCase runs shortlist requests against the current population.
type UseCase interface {
	Shortlist(ctx context.Context, rawQuery string, keywords []string, threshold *int) (Result, error)
}

type service struct {
	population       PopulationSource
	defaultThreshold int
}

// NewService builds the shortlisting use case. defaultThreshold is the score
// percentage a consultant needs to land in the matching bucket when a
// request does not override it.
func NewService(population PopulationSource, defaultThreshold int) UseCase {
	return &service{population: population, defaultThreshold: defaultThreshold}
}

func (s *service) Shortlist(ctx context.Context, rawQuery string, keywords []string, threshold *int) (Result, error) {
	kws := match.Keywords(keywords)
	if len(kws) == 0 {
		kws = match.ParseQuery(rawQuery)
	}
	th := s.defaultThreshold
	if threshold != nil {
		th = *threshold
	}
	population, err := s.population.Snapshot(ctx)
	if err != nil {
		return Result{}, err
	}
	return Partition(kws, population, th), nil
}
