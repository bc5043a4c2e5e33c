package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch_FoundAndMissingPartitionKeywords(t *testing.T) {
	keywords := []string{"go", "postgres", "kafka", "cloud services"}
	res := Match("Go engineer with Postgres and cloud services experience", keywords)

	union := append([]string{}, res.FoundKeywords...)
	union = append(union, res.MissingKeywords...)
	assert.ElementsMatch(t, keywords, union)
	for _, kw := range res.FoundKeywords {
		assert.NotContains(t, res.MissingKeywords, kw)
	}
}

func TestMatch_EmptyKeywordsScoresZero(t *testing.T) {
	res := Match("any resume text at all", nil)
	assert.Equal(t, 0, res.MatchScorePercent)
	assert.Empty(t, res.FoundKeywords)
	assert.Empty(t, res.MissingKeywords)
}

func TestMatch_EmptyTextFindsNothing(t *testing.T) {
	res := Match("", []string{"go", "docker"})
	assert.Empty(t, res.FoundKeywords)
	assert.ElementsMatch(t, []string{"go", "docker"}, res.MissingKeywords)
	assert.Equal(t, 0, res.MatchScorePercent)
}

func TestMatch_CaseInsensitive(t *testing.T) {
	res := Match("I know SQL", []string{"sql"})
	assert.Equal(t, []string{"sql"}, res.FoundKeywords)
	assert.Equal(t, 100, res.MatchScorePercent)
}

func TestMatch_WordBoundaries(t *testing.T) {
	// "sql" must not match inside "nosqlish"
	res := Match("worked on a NoSQLish store", []string{"sql"})
	assert.Empty(t, res.FoundKeywords)
	assert.Equal(t, []string{"sql"}, res.MissingKeywords)
}

func TestMatch_PhraseRequiresContiguity(t *testing.T) {
	res := Match("cloud based services", []string{"cloud services"})
	assert.Empty(t, res.FoundKeywords)
	assert.Equal(t, []string{"cloud services"}, res.MissingKeywords)
}

func TestMatch_RoundedScore(t *testing.T) {
	// 2 of 3 keywords -> 66.67 rounds to 67
	res := Match("React and frontend work", []string{"react", "frontend", "developer"})
	assert.Equal(t, 67, res.MatchScorePercent)
	assert.Equal(t, []string{"developer"}, res.MissingKeywords)
}

func TestMatch_Deterministic(t *testing.T) {
	text := "Go, Docker, Kubernetes and Postgres"
	keywords := []string{"go", "docker", "terraform"}
	first := Match(text, keywords)
	second := Match(text, keywords)
	assert.Equal(t, first, second)
}

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "free text splits into tokens",
			raw:  "React frontend developer",
			want: []string{"react", "frontend", "developer"},
		},
		{
			name: "comma list keeps phrases",
			raw:  "cloud services, Go, REST API",
			want: []string{"cloud services", "go", "rest api"},
		},
		{
			name: "trims and dedupes",
			raw:  " go ,GO,  docker ",
			want: []string{"go", "docker"},
		},
		{
			name: "empty query",
			raw:  "   ",
			want: []string{},
		},
		{
			name: "only commas",
			raw:  ",,,",
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseQuery(tt.raw))
		})
	}
}

func TestKeywords_Dedupe(t *testing.T) {
	got := Keywords([]string{"Go", "go ", "", "Docker"})
	assert.Equal(t, []string{"go", "docker"}, got)
}
