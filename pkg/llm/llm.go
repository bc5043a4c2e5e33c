package llm

import "context"

// ChatModel is a minimal abstraction for chat-based LLMs used by the
// feedback generator. It hides concrete providers to preserve dependency
// direction; the deterministic parts of the system never depend on it.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
