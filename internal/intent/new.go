package intent

import (
	"context"
	"time"

	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/groq"
	"calendar-assistant/pkg/log"
)

// Parser turns a free-form command into a structured calendar intent.
// The now argument anchors relative-date resolution inside the prompt
// and keeps parsing deterministic under test.
type Parser interface {
	Parse(ctx context.Context, message string, now time.Time) (model.ParsedIntent, error)
}

// LLMParser parses commands with the Groq chat completions API.
type LLMParser struct {
	llm groq.IGroq
	l   log.Logger
}

// Ensure LLMParser implements Parser interface
var _ Parser = (*LLMParser)(nil)

// New creates a new LLMParser
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(llm groq.IGroq, l log.Logger) *LLMParser {
	return &LLMParser{
		llm: llm,
		l:   l,
	}
}
