package feedback

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_EmptyInput(t *testing.T) {
	out := Generate(nil, nil)
	assert.Equal(t, noAnalysisMessage, out)
}

func TestGenerate_FoundOnly(t *testing.T) {
	out := Generate([]string{"go", "postgres"}, nil)
	assert.Contains(t, out, "go, postgres")
	assert.Contains(t, out, "promising profile")
	assert.NotContains(t, out, "development plan")
}

func TestGenerate_MissingOnly(t *testing.T) {
	out := Generate(nil, []string{"kafka", "terraform"})
	assert.Contains(t, out, "did not match any")
	assert.Contains(t, out, "kafka, terraform")
}

func TestGenerate_FoundAndMissing(t *testing.T) {
	out := Generate([]string{"react"}, []string{"developer"})
	assert.Contains(t, out, "react")
	assert.Contains(t, out, "developer")
}

func TestGenerate_Deterministic(t *testing.T) {
	found := []string{"go"}
	missing := []string{"docker"}
	assert.Equal(t, Generate(found, missing), Generate(found, missing))
}

type stubModel struct {
	answer string
	err    error
}

func (s stubModel) Ask(context.Context, string, string) (string, error) {
	return s.answer, s.err
}

func TestPersonalized_UsesModel(t *testing.T) {
	svc := NewService(stubModel{answer: "Great work on Go!"}, "test-model")
	res := svc.Personalized(context.Background(), []string{"go"}, nil)
	assert.Equal(t, "Great work on Go!", res.Text)
	assert.Equal(t, "test-model", res.Model)
}

func TestPersonalized_FallsBackOnError(t *testing.T) {
	svc := NewService(stubModel{err: errors.New("model down")}, "test-model")
	res := svc.Personalized(context.Background(), []string{"go"}, []string{"docker"})
	assert.Equal(t, Generate([]string{"go"}, []string{"docker"}), res.Text)
	assert.Empty(t, res.Model)
}

func TestPersonalized_NoModelConfigured(t *testing.T) {
	svc := NewService(nil, "")
	res := svc.Personalized(context.Background(), nil, nil)
	assert.Equal(t, noAnalysisMessage, res.Text)
}
