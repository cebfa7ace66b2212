package app

import (
	"context"
	"fmt"
	"time"

	"github.com/five82/crew/internal/logger"
	"github.com/five82/crew/internal/randomuser"
	"github.com/five82/crew/internal/state"
)

const defaultLoadTimeout = 15 * time.Second

// Loader runs a single user fetch and records the outcome in a Store.
type Loader struct {
	store   *state.Store
	fetcher randomuser.Fetcher
	log     *logger.Logger
	timeout time.Duration
}

// NewLoader wires a Loader. A nil logger discards output.
func NewLoader(store *state.Store, fetcher randomuser.Fetcher, log *logger.Logger) *Loader {
	if log == nil {
		log = logger.Nop()
	}
	return &Loader{
		store:   store,
		fetcher: fetcher,
		log:     log.Component("loader"),
		timeout: defaultLoadTimeout,
	}
}

// Load fetches once. The store is marked pending for the duration and then
// updated with either the new users or the error; on error the previous users
// stay in place.
func (l *Loader) Load(ctx context.Context) error {
	if l == nil || l.store == nil || l.fetcher == nil {
		return fmt.Errorf("loader not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	l.store.Begin()
	started := time.Now()
	l.log.Debug("fetching users")

	users, err := l.fetcher.FetchUsers(ctx)
	l.store.Update(users, err)
	if err != nil {
		l.log.Error(err, "user fetch failed")
		return fmt.Errorf("fetch users: %w", err)
	}

	l.log.Info("users loaded",
		"count", len(users),
		"elapsed", time.Since(started).Round(time.Millisecond).String(),
	)
	return nil
}
