package tui

import (
	"context"

	"github.com/Iron-Ham/inspire/internal/logging"
	"github.com/Iron-Ham/inspire/internal/tui/delay"
	"github.com/Iron-Ham/inspire/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Options control how the program is attached to the terminal.
type Options struct {
	// AltScreen runs the TUI on the alternate screen buffer.
	AltScreen bool

	// Viper, when set and backed by a config file, is watched so that
	// theme edits apply without a restart.
	Viper *viper.Viper

	// WatchThemes rescans the custom theme directory on change.
	WatchThemes bool
}

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
	opts    Options
	logger  *logging.Logger
}

// New creates a new TUI application
func New(deps Deps, opts Options) *App {
	logger := deps.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &App{
		model:  NewModel(deps),
		opts:   opts,
		logger: logger.WithComponent("app"),
	}
}

// Run starts the TUI application and blocks until it exits. Cancelling ctx
// quits the program cleanly so the terminal is restored.
func (a *App) Run(ctx context.Context) error {
	var programOpts []tea.ProgramOption
	if a.opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	a.program = tea.NewProgram(a.model, programOpts...)

	stop := quitOnCancel(ctx, a.program.Send)
	defer stop()

	if a.opts.Viper != nil && a.opts.Viper.ConfigFileUsed() != "" {
		a.watchConfig(a.opts.Viper)
	}

	if a.opts.WatchThemes {
		watcher, err := styles.NewThemeWatcher(func(loaded []string, errs []error) {
			a.program.Send(themesReloadedMsg{loaded: loaded, errs: errs})
		})
		if err != nil {
			a.logger.Warn("theme watcher disabled", "error", err)
		} else {
			defer watcher.Stop()
		}
	}

	_, err := a.program.Run()
	return err
}

// quitOnCancel sends tea.Quit once ctx is done. The returned func releases
// the watcher; it is safe to call after ctx is already done.
func quitOnCancel(ctx context.Context, send func(tea.Msg)) (stop func()) {
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			send(tea.Quit())
		case <-done:
		}
	}()
	return func() { close(done) }
}

// watchConfig forwards theme changes from the config file to the program.
func (a *App) watchConfig(v *viper.Viper) {
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		theme := v.GetString("tui.theme")
		a.logger.Info("config changed", "file", e.Name, "theme", theme)
		a.program.Send(themeChangedMsg{name: styles.ThemeName(theme)})
	})
	v.WatchConfig()
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("Daily Inspiration"),
		m.loadFavorites(),
	)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.syncFavorites()
		return m, nil

	case favoritesLoadedMsg:
		m.favoritesLoaded = true
		m.syncFavorites()
		if msg.err != nil {
			m.logger.Failure("loading favorites failed", msg.err)
			return m, m.setStatus(failureMessage("Could not load favorites", msg.err), true)
		}
		return m, nil

	case delay.FiredMsg:
		return m.handleFired(msg)

	case themeChangedMsg:
		if msg.name == m.styles.Name {
			return m, nil
		}
		m.setTheme(msg.name)
		return m, m.setStatus("Theme: "+string(m.styles.Name), false)

	case themesReloadedMsg:
		for _, err := range msg.errs {
			m.logger.Warn("skipping custom theme", "error", err)
		}
		// The active custom theme may have been edited or deleted
		m.setTheme(m.styles.Name)
		return m, nil
	}

	return m, nil
}

// handleFired routes an elapsed delay to its slot. Stale generations from
// replaced or cancelled tasks are dropped here.
func (m Model) handleFired(msg delay.FiredMsg) (tea.Model, tea.Cmd) {
	switch msg.Slot {
	case slotFade:
		if m.fade.Fire(msg) {
			m.commitNewQuote()
		}
	case slotCopy:
		if m.copyReset.Fire(msg) {
			m.copyState = copyIdle
		}
	case slotStatus:
		if m.statusClear.Fire(msg) {
			m.statusMessage = ""
			m.statusIsError = false
		}
	}
	return m, nil
}
