package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/padview/internal/config"
	"github.com/five82/padview/internal/prefs"
	"github.com/five82/padview/internal/spacex"
	"github.com/five82/padview/internal/state"
	"github.com/five82/padview/internal/ui"
)

// Options configure the padview application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/padview/prefs.toml
	APIURL     string // overrides the configured endpoint
	PageSize   int    // overrides the configured page size; zero keeps it
}

// Run boots the padview TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applyOverrides(&cfg, opts); err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		log.Printf("prefs unavailable, using defaults: %v", err)
	}

	client, err := spacex.NewClient(cfg.APIURL, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init spacex client: %w", err)
	}
	log.Printf("padview starting, endpoint %s", client.Endpoint())

	store := &state.Store{}

	// The one and only read of the collection; it ends with ctx.
	StartLoader(ctx, store, client)

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		PageSize:  cfg.PageSize,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

func applyOverrides(cfg *config.Config, opts Options) error {
	if opts.APIURL != "" {
		cfg.APIURL = opts.APIURL
	}
	if opts.PageSize != 0 {
		if !config.ValidPageSize(opts.PageSize) {
			return fmt.Errorf("page size %d must be one of 5, 10, 15", opts.PageSize)
		}
		cfg.PageSize = opts.PageSize
	}
	return nil
}

// setupLogging points the standard logger at path. The terminal belongs to
// the TUI, so an empty path discards log output instead of writing to stderr.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := tea.LogToFile(path, "padview")
	if err != nil {
		return nil, err
	}
	return func() { _ = f.Close() }, nil
}
