package usecase

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"calendar-assistant/internal/calendar/repository"
	"calendar-assistant/pkg/log"
)

const (
	// timezoneCacheSize bounds the per-user timezone cache.
	timezoneCacheSize = 1000

	// searchWindowDays bounds an undated candidate search.
	searchWindowDays = 30

	// listWindowDays bounds an undated agenda listing.
	listWindowDays = 7
)

// implUseCase is the private implementation of calendar.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger

	// timezones caches each user's calendar timezone. Entries live
	// until process restart; calendar timezones change rarely enough
	// that staleness is acceptable.
	timezones *lru.Cache[string, string]

	// defaultTimezone is used when a user's timezone cannot be fetched.
	defaultTimezone string

	now func() time.Time
}

// New creates a new calendar UseCase implementation.
func New(repo repository.Repository, l log.Logger, defaultTimezone string) *implUseCase {
	timezones, _ := lru.New[string, string](timezoneCacheSize)
	return &implUseCase{
		repo:            repo,
		l:               l,
		timezones:       timezones,
		defaultTimezone: defaultTimezone,
		now:             time.Now,
	}
}
