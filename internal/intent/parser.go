package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/groq"
)

// Parse converts a natural-language command into a ParsedIntent.
// The model must answer with a single JSON object; anything else is a
// terminal error for the turn, never a silent fallback intent.
func (p *LLMParser) Parse(ctx context.Context, message string, now time.Time) (model.ParsedIntent, error) {
	tc := buildTimeContext(now)
	system := fmt.Sprintf(PromptSystem,
		tc.DayOfWeek, tc.Today, tc.Year, tc.Tomorrow, tc.NextFriday, tc.NextThursday)

	resp, err := p.llm.GenerateContent(ctx, &groq.Request{
		Messages: []groq.Message{
			{Role: groq.RoleSystem, Content: system},
			{Role: groq.RoleUser, Content: message},
		},
		Temperature:    ParserTemperature,
		MaxTokens:      ParserMaxTokens,
		ResponseFormat: &groq.ResponseFormat{Type: groq.ResponseFormatJSON},
	})
	if err != nil {
		return model.ParsedIntent{}, fmt.Errorf("%s: %s: %w", LogPrefixParse, ErrMsgLLMCallFailed, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		p.l.Warnf(ctx, "%s: %s", LogPrefixParse, ErrMsgEmptyResponse)
		return model.ParsedIntent{}, ErrEmptyResponse
	}

	text = stripCodeFences(text)

	var parsed model.ParsedIntent
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		p.l.Warnf(ctx, "%s: %s: %v", LogPrefixParse, ErrMsgJSONParseFailed, err)
		return model.ParsedIntent{}, ErrMalformedResponse
	}

	p.l.Infof(ctx, "%s: action=%s title=%q confidence=%.2f",
		LogPrefixParse, parsed.Action, parsed.Title, parsed.Confidence)
	return parsed, nil
}

// stripCodeFences removes markdown code blocks if present (```json ... ```).
// JSON mode should prevent them, but smaller models still emit fences
// occasionally.
func stripCodeFences(text string) string {
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		return strings.TrimSpace(text)
	}
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		return strings.TrimSpace(text)
	}
	return text
}
