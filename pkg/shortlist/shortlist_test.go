package shortlist

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benchboard/pkg/consultant"
)

func candidate(name, resumeText string) Candidate {
	return Candidate{
		Consultant: consultant.Consultant{ID: uuid.New(), Name: name},
		ResumeText: resumeText,
	}
}

func TestPartition_IsTotal(t *testing.T) {
	population := []Candidate{
		candidate("Sneha", "go postgres docker"),
		candidate("Ravi", "java spring"),
		candidate("Meena", ""),
		candidate("Arjun", "go react"),
	}
	res := Partition([]string{"go", "postgres"}, population, 1)
	assert.Len(t, res.Matching, 2)
	assert.Len(t, res.NotMatching, 2)
	assert.Equal(t, len(population), len(res.Matching)+len(res.NotMatching))
}

func TestPartition_NoResumeOnFile(t *testing.T) {
	noResume := candidate("Meena", "   ")
	res := Partition([]string{"go"}, []Candidate{noResume}, 1)

	require.Len(t, res.NotMatching, 1)
	entry := res.NotMatching[0]
	assert.True(t, entry.NoResumeOnFile)
	assert.Equal(t, 0, entry.Match.MatchScorePercent)
	assert.Equal(t, []string{"go"}, entry.Match.MissingKeywords)
}

func TestPartition_OrderedByScoreThenID(t *testing.T) {
	full := candidate("Full", "go postgres docker")
	partial := candidate("Partial", "go only here")
	// two consultants with identical scores, ordered by id
	twinA := candidate("TwinA", "postgres")
	twinB := candidate("TwinB", "postgres")

	res := Partition([]string{"go", "postgres", "docker"}, []Candidate{twinB, partial, full, twinA}, 1)

	require.Len(t, res.Matching, 4)
	assert.Equal(t, "Full", res.Matching[0].Consultant.Name)
	assert.Equal(t, 100, res.Matching[0].Match.MatchScorePercent)
	assert.Equal(t, "Partial", res.Matching[1].Consultant.Name)

	tieFirst := res.Matching[2].Consultant.ID.String()
	tieSecond := res.Matching[3].Consultant.ID.String()
	assert.Less(t, tieFirst, tieSecond)
}

func TestPartition_Deterministic(t *testing.T) {
	population := []Candidate{
		candidate("A", "go docker"),
		candidate("B", "go"),
		candidate("C", ""),
	}
	kws := []string{"go", "docker"}
	assert.Equal(t, Partition(kws, population, 50), Partition(kws, population, 50))
}

func TestPartition_ThresholdBuckets(t *testing.T) {
	half := candidate("Half", "go resume")
	res := Partition([]string{"go", "docker"}, []Candidate{half}, 50)
	assert.Len(t, res.Matching, 1, "50%% score meets a 50 threshold")

	res = Partition([]string{"go", "docker"}, []Candidate{half}, 51)
	assert.Len(t, res.NotMatching, 1)
}

func TestPartition_EmptyQuery(t *testing.T) {
	population := []Candidate{candidate("Sneha", "go postgres")}
	res := Partition([]string{}, population, 1)
	assert.Empty(t, res.Matching)
	require.Len(t, res.NotMatching, 1)
	assert.Equal(t, 0, res.NotMatching[0].Match.MatchScorePercent)
}

type staticPopulation []Candidate

func (s staticPopulation) Snapshot(context.Context) ([]Candidate, error) { return s, nil }

func TestService_Shortlist(t *testing.T) {
	population := staticPopulation{
		candidate("Sneha", "react frontend work"),
		candidate("Ravi", "java backend"),
	}
	svc := NewService(population, 1)

	res, err := svc.Shortlist(context.Background(), "React frontend developer", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"react", "frontend", "developer"}, res.Keywords)
	require.Len(t, res.Matching, 1)
	assert.Equal(t, "Sneha", res.Matching[0].Consultant.Name)
	assert.Equal(t, 67, res.Matching[0].Match.MatchScorePercent)

	// explicit keyword list wins over the free-text query
	res, err = svc.Shortlist(context.Background(), "ignored", []string{"java"}, nil)
	require.NoError(t, err)
	require.Len(t, res.Matching, 1)
	assert.Equal(t, "Ravi", res.Matching[0].Consultant.Name)

	// per-request threshold override
	over := 80
	res, err = svc.Shortlist(context.Background(), "react frontend developer", nil, &over)
	require.NoError(t, err)
	assert.Empty(t, res.Matching)
	assert.Equal(t, 80, res.Threshold)
}
