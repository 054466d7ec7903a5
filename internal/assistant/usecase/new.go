package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/intent"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/log"
)

const (
	// pendingStoreSize bounds how many sessions may hold a parked
	// disambiguation at once.
	pendingStoreSize = 1000

	// defaultPendingTTL bounds how long a disambiguation prompt stays
	// answerable before it silently lapses.
	defaultPendingTTL = 10 * time.Minute
)

// implUseCase is the private implementation of assistant.UseCase.
type implUseCase struct {
	calendar calendar.UseCase
	parser   intent.Parser
	l        log.Logger

	// pending holds at most one parked action per session, keyed by
	// session ID. Expiry returns the session to idle, the same outcome
	// as the user typing an unrelated command.
	pending *expirable.LRU[string, model.PendingAction]

	now func() time.Time
}

// New creates a new assistant UseCase implementation.
func New(calendarUC calendar.UseCase, parser intent.Parser, l log.Logger, pendingTTL time.Duration) *implUseCase {
	if pendingTTL <= 0 {
		pendingTTL = defaultPendingTTL
	}
	return &implUseCase{
		calendar: calendarUC,
		parser:   parser,
		l:        l,
		pending:  expirable.NewLRU[string, model.PendingAction](pendingStoreSize, nil, pendingTTL),
		now:      time.Now,
	}
}
