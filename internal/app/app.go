package app

import (
	"context"
	"fmt"

	"github.com/five82/crew/internal/config"
	"github.com/five82/crew/internal/directory"
	"github.com/five82/crew/internal/logger"
	"github.com/five82/crew/internal/prefs"
	"github.com/five82/crew/internal/randomuser"
	"github.com/five82/crew/internal/state"
	"github.com/five82/crew/internal/ui"
)

// Options configure a crew session.
type Options struct {
	Config    config.Config
	PrefsPath string // empty uses default ~/.config/crew/prefs.toml
	Logger    *logger.Logger
}

// Run boots the gallery TUI until the user quits or the context is cancelled.
// The first fetch starts from inside the UI so the loading state is visible.
func Run(ctx context.Context, opts Options) error {
	store := &state.Store{}
	loader, err := newLoader(opts, store)
	if err != nil {
		return err
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		opts.Logger.Component("prefs").Error(err, "prefs unreadable, using defaults", "path", opts.PrefsPath)
	}

	return ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Load:      loader.Load,
		Logger:    opts.Logger,
		Source:    opts.Config.Endpoint,
		ThemeName: userPrefs.Theme,
		Compact:   userPrefs.Compact,
		PrefsPath: opts.PrefsPath,
	})
}

// LoadDirectory performs one fetch and returns the populated directory, for
// the non-interactive commands.
func LoadDirectory(ctx context.Context, opts Options) (*directory.Directory, error) {
	store := &state.Store{}
	loader, err := newLoader(opts, store)
	if err != nil {
		return nil, err
	}
	if err := loader.Load(ctx); err != nil {
		return nil, err
	}
	return directory.New(directory.FromUsers(store.Snapshot().Users)), nil
}

func newLoader(opts Options, store *state.Store) (*Loader, error) {
	client, err := randomuser.NewClient(opts.Config.Endpoint, randomuser.Query{
		Results:     opts.Config.Results,
		Nationality: opts.Config.Nationality,
		Seed:        opts.Config.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("init randomuser client: %w", err)
	}
	return NewLoader(store, client, opts.Logger), nil
}
