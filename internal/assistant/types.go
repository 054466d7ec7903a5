package assistant

import "calendar-assistant/internal/model"

// --- UseCase Inputs ---

type HandleMessageInput struct {
	Message string
}

// --- UseCase Outputs ---

// HandleMessageOutput pairs the conversational reply with the raw
// execution result so clients can render candidate lists or event data
// without re-parsing the message text.
type HandleMessageOutput struct {
	Message string
	Result  model.ExecutionResult
}
