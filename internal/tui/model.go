package tui

import (
	"context"
	"time"

	"github.com/Iron-Ham/inspire/internal/clipboard"
	"github.com/Iron-Ham/inspire/internal/config"
	"github.com/Iron-Ham/inspire/internal/event"
	"github.com/Iron-Ham/inspire/internal/favorites"
	"github.com/Iron-Ham/inspire/internal/logging"
	"github.com/Iron-Ham/inspire/internal/quote"
	"github.com/Iron-Ham/inspire/internal/tui/delay"
	"github.com/Iron-Ham/inspire/internal/tui/keymap"
	"github.com/Iron-Ham/inspire/internal/tui/styles"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
)

const (
	// statusDuration is how long transient status messages stay visible.
	statusDuration = 3 * time.Second

	loadTimeout = 5 * time.Second
)

// Deps are the collaborators the model drives. Picker and Favorites are
// required; the rest fall back to no-op implementations.
type Deps struct {
	Picker    *quote.Picker
	Favorites *favorites.Manager
	Clipboard clipboard.Writer
	Bus       *event.Bus
	Logger    *logging.Logger
	Config    *config.Config
}

// Model holds the TUI application state
type Model struct {
	// Core components
	picker    *quote.Picker
	favorites *favorites.Manager
	clipboard clipboard.Writer
	bus       *event.Bus
	logger    *logging.Logger
	keymap    *keymap.Keymap
	styles    *styles.ThemedStyles

	// Timing
	transition   time.Duration
	copyFeedback time.Duration

	// Quote card
	current   quote.Quote
	animating bool
	fade      delay.Slot
	copyState copyState
	copyReset delay.Slot

	// Favorites panel
	favoritesLoaded bool
	mode            keymap.Mode
	selected        int
	viewport        viewport.Model

	// UI state
	width         int
	height        int
	maxWidth      int
	quitting      bool
	showHelp      bool
	help          help.Model
	statusMessage string
	statusIsError bool
	statusClear   delay.Slot
}

// NewModel creates a new TUI model showing the first catalog quote.
func NewModel(deps Deps) Model {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := deps.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	clip := deps.Clipboard
	if clip == nil {
		clip = clipboard.ForTarget(cfg.Clipboard.Target)
	}

	m := Model{
		picker:       deps.Picker,
		favorites:    deps.Favorites,
		clipboard:    clip,
		bus:          deps.Bus,
		logger:       logger.WithComponent("tui"),
		keymap:       keymap.DefaultKeymap(),
		transition:   cfg.Timing.Transition(),
		copyFeedback: cfg.Timing.CopyFeedback(),
		current:      quote.First(),
		fade:         delay.NewSlot(slotFade),
		copyReset:    delay.NewSlot(slotCopy),
		statusClear:  delay.NewSlot(slotStatus),
		mode:         keymap.ModeQuote,
		maxWidth:     cfg.TUI.MaxWidth,
		help:         help.New(),
		viewport:     viewport.New(0, 0),
	}
	m.setTheme(styles.ThemeName(cfg.TUI.Theme))
	return m
}

func loadContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), loadTimeout)
}

// Current returns the quote on the card.
func (m Model) Current() quote.Quote {
	return m.current
}

// Animating reports whether a quote transition is pending.
func (m Model) Animating() bool {
	return m.animating
}

// Mode returns the focused area.
func (m Model) Mode() keymap.Mode {
	return m.mode
}

// setTheme switches palettes. Unknown names fall back to the default theme.
func (m *Model) setTheme(name styles.ThemeName) {
	if !styles.IsValidTheme(string(name)) {
		name = styles.ThemeDefault
	}
	m.styles = styles.ForTheme(name)

	m.help.Styles.ShortKey = m.styles.ActionKey
	m.help.Styles.FullKey = m.styles.ActionKey
	m.help.Styles.ShortDesc = m.styles.HelpBar.UnsetMarginTop()
	m.help.Styles.FullDesc = m.styles.HelpBar.UnsetMarginTop()
	m.help.Styles.ShortSeparator = m.styles.HelpBar.UnsetMarginTop()
	m.help.Styles.FullSeparator = m.styles.HelpBar.UnsetMarginTop()
}

// favoriteCount returns the number of favorites, zero before they load.
func (m Model) favoriteCount() int {
	if m.favorites == nil || !m.favoritesLoaded {
		return 0
	}
	return m.favorites.Len()
}

// publish sends e on the bus when one is wired.
func (m Model) publish(e event.Event) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}
