package http

import (
	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/model"
)

// --- Request DTOs ---

type messageReq struct {
	Message string `json:"message"`
}

func (r messageReq) toInput() assistant.HandleMessageInput {
	return assistant.HandleMessageInput{Message: r.Message}
}

// --- Response DTOs ---

// messageResp is the chat reply contract. Result carries the raw
// execution data so the frontend can render candidate buttons or link
// to created events.
type messageResp struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Result  model.ExecutionResult `json:"result"`
}

func newMessageResp(out assistant.HandleMessageOutput) messageResp {
	return messageResp{
		Success: true,
		Message: out.Message,
		Result:  out.Result,
	}
}

// errorResp is the flat error body the chat frontend expects. Invalid
// selections arrive under message so they render inline in the
// conversation; everything else uses error.
type errorResp struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
