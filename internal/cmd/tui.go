package cmd

import (
	"fmt"
	"os"

	"github.com/Iron-Ham/inspire/internal/tui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// isTerminal reports whether fd is attached to a terminal.
var isTerminal = func(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("the interactive widget needs a terminal; use 'inspire show' for plain output")
	}

	rt, err := openRuntime(cmd, false)
	if err != nil {
		return err
	}
	defer func() { _ = rt.Close() }()

	loadCustomThemes(rt.logger)

	app := tui.New(tui.Deps{
		Picker:    newPicker(),
		Favorites: rt.favorites,
		Clipboard: newClipboard(rt.cfg.Clipboard.Target),
		Bus:       rt.bus,
		Logger:    rt.logger,
		Config:    rt.cfg,
	}, tui.Options{
		AltScreen:   rt.cfg.TUI.AltScreen,
		Viper:       viper.GetViper(),
		WatchThemes: true,
	})

	rt.logger.Info("starting widget", "theme", rt.cfg.TUI.Theme, "backend", rt.store.Backend())
	if err := app.Run(cmd.Context()); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
