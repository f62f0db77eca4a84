package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Iron-Ham/inspire/internal/clipboard"
	"github.com/Iron-Ham/inspire/internal/config"
	"github.com/Iron-Ham/inspire/internal/event"
	"github.com/Iron-Ham/inspire/internal/favorites"
	"github.com/Iron-Ham/inspire/internal/logging"
	"github.com/Iron-Ham/inspire/internal/quote"
	"github.com/Iron-Ham/inspire/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Wrapper functions to allow testing
var (
	newClipboard = func(target string) clipboard.Writer {
		return clipboard.ForTarget(target)
	}
	logDir    = config.StateDir
	newPicker = func() *quote.Picker {
		return quote.NewDefaultPicker(nil)
	}
)

// runtime bundles the services a command needs. Close releases them.
type runtime struct {
	cfg       *config.Config
	logger    *logging.Logger
	store     store.Store
	bus       *event.Bus
	favorites *favorites.Manager
}

// openRuntime loads configuration and opens the favorites store. When
// console is true and --verbose is set, logs go to stderr instead of the log
// file.
func openRuntime(cmd *cobra.Command, console bool) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg, console)
	if err != nil {
		return nil, err
	}

	storage := cfg.Storage
	if viper.GetBool("ephemeral") {
		storage.Backend = store.BackendMemory
	}
	st, err := store.Open(storage)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	bus := event.NewBus(logger)
	bus.SubscribeAll(func(e event.Event) {
		logger.Debug("event published", "type", e.EventType())
	})

	favs := favorites.NewManager(st, bus,
		favorites.WithKey(cfg.Storage.Key),
		favorites.WithLogger(logger),
	)

	logger.Debug("runtime opened", "backend", st.Backend(), "key", cfg.Storage.Key)
	return &runtime{
		cfg:       cfg,
		logger:    logger,
		store:     st,
		bus:       bus,
		favorites: favs,
	}, nil
}

// loadFavorites reads persisted favorites into the manager.
func (r *runtime) loadFavorites(ctx context.Context) error {
	return r.favorites.Load(ctx)
}

func (r *runtime) Close() error {
	r.favorites.Close()
	return errors.Join(r.store.Close(), r.logger.Close())
}

func newLogger(stderr io.Writer, cfg *config.Config, console bool) (*logging.Logger, error) {
	verbose := viper.GetBool("verbose")
	if console && verbose {
		return logging.NewConsoleLogger(stderr, logging.LevelDebug), nil
	}
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}

	level := cfg.Logging.Level
	if verbose {
		level = logging.LevelDebug
	}
	logger, err := logging.NewLoggerWithRotation(logDir(), level, logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		Compress:   cfg.Logging.Compress,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logger, nil
}
