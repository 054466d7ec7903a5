package assistant

import (
	"context"

	"calendar-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// HandleMessage runs one conversational turn. If the session has a
	// pending disambiguation and the message answers it, the parked
	// action is executed against the chosen event; otherwise the
	// message is parsed into an intent and executed as a fresh command.
	HandleMessage(ctx context.Context, sc model.Scope, input HandleMessageInput) (HandleMessageOutput, error)
}
