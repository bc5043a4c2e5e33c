// Package feedback turns a found/missing keyword set into human-readable
// guidance for a consultant.
package feedback

import (
	"context"
	"fmt"
	"strings"

	"benchboard/pkg/llm"
)

// noAnalysisMessage is returned when there is nothing to base feedback on.
const noAnalysisMessage = "No analysis is available yet. Upload a resume and run a skill match to receive personalized feedback."

// Generate renders the deterministic feedback template: it acknowledges the
// skills that were found and lists the missing ones as a development plan.
// With both sets empty it degrades to a generic message instead of failing.
func Generate(found, missing []string) string {
	if len(found) == 0 && len(missing) == 0 {
		return noAnalysisMessage
	}
	var b strings.Builder
	if len(found) > 0 {
		fmt.Fprintf(&b, "This is a promising profile, showing a good match for skills like: %s. These are valuable assets for the role.", strings.Join(found, ", "))
	} else {
		b.WriteString("The resume did not match any of the required skills.")
	}
	if len(missing) > 0 {
		fmt.Fprintf(&b, " To further improve, focus your development plan on: %s.", strings.Join(missing, ", "))
	}
	if len(found) > 0 {
		b.WriteString(" Make sure these skills are highlighted prominently with examples in the project experience section.")
	}
	return b.String()
}

// Result carries the feedback text and, when an LLM produced it, the model
// name.
type Result struct {
	Text  string `json:"feedback"`
	Model string `json:"model,omitempty"`
}

// UseCase produces feedback for a match outcome.
type UseCase interface {
	Personalized(ctx context.Context, found, missing []string) Result
}

type service struct {
	llm   llm.ChatModel
	model string
}

// NewService returns a generator that asks the configured LLM for a richer
// text and falls back to the deterministic template when the model is not
// configured or fails. It never returns an error: feedback generation must
// not break the surrounding workflow.
func NewService(model llm.ChatModel, modelName string) UseCase {
	return &service{llm: model, model: modelName}
}

func (s *service) Personalized(ctx context.Context, found, missing []string) Result {
	fallback := Result{Text: Generate(found, missing)}
	if s.llm == nil || (len(found) == 0 && len(missing) == 0) {
		return fallback
	}
	system := "You are a career advisor for bench consultants. Reply with 3-4 encouraging sentences, plain text only."
	user := fmt.Sprintf(
		"The consultant's resume matched these requested skills: %s.\nThese requested skills were missing: %s.\nSummarize what the consultant is good at and what to focus on next.",
		orNone(found),
		orNone(missing),
	)
	answer, err := s.llm.Ask(ctx, system, user)
	if err != nil || strings.TrimSpace(answer) == "" {
		return fallback
	}
	return Result{Text: strings.TrimSpace(answer), Model: s.model}
}

func orNone(list []string) string {
	if len(list) == 0 {
		return "none"
	}
	return strings.Join(list, ", ")
}
