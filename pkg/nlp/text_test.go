package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercase", in: "PostgreSQL", want: "postgresql"},
		{name: "punctuation to spaces", in: "CI/CD, Docker!", want: "ci cd docker"},
		{name: "collapses whitespace", in: "  cloud \t services \n ", want: "cloud services"},
		{name: "empty", in: "", want: ""},
		{name: "only punctuation", in: "---", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestContainsPhrase(t *testing.T) {
	text := Normalize("Built REST APIs with Go and cloud services on AWS; NoSQLish experiments.")

	tests := []struct {
		name   string
		phrase string
		want   bool
	}{
		{name: "single word", phrase: "go", want: true},
		{name: "contiguous phrase", phrase: "cloud services", want: true},
		{name: "no partial word match", phrase: "sql", want: false},
		{name: "words apart are not a phrase", phrase: "go services", want: false},
		{name: "empty phrase", phrase: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsPhrase(text, Normalize(tt.phrase)))
		})
	}
}

func TestTokens(t *testing.T) {
	got := Tokens(Normalize("go, Go and docker"))
	assert.Len(t, got, 3)
	assert.Contains(t, got, "go")
	assert.Contains(t, got, "and")
	assert.Contains(t, got, "docker")
	assert.Empty(t, Tokens(""))
}
