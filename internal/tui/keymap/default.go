package keymap

import tea "github.com/charmbracelet/bubbletea"

// DefaultKeymap returns the built-in key bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name:        "default",
		Description: "Default inspire key bindings",
		Modes: map[Mode]*ModeBindings{
			ModeQuote:     defaultQuoteBindings(),
			ModeFavorites: defaultFavoritesBindings(),
		},
		Global: defaultGlobalBindings(),
	}
}

func defaultQuoteBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeQuote,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyRunes, Rune: 'n', Command: CmdNewQuote, Description: "New quote", Category: "Quote"},
			{KeyType: tea.KeySpace, Command: CmdNewQuote, Description: "New quote", Category: "Quote"},
			{KeyType: tea.KeyRunes, Rune: 'f', Command: CmdToggleFavorite, Description: "Add to favorites", Category: "Quote"},
			{KeyType: tea.KeyRunes, Rune: 'c', Command: CmdCopyQuote, Description: "Copy quote", Category: "Quote"},
			{KeyType: tea.KeyRunes, Rune: 'y', Command: CmdCopyQuote, Description: "Copy quote", Category: "Quote"},
			{KeyType: tea.KeyTab, Command: CmdFocusFavorites, Description: "Focus favorites", Category: "Navigation"},
		},
	}
}

func defaultFavoritesBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeFavorites,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdSelectNext, Description: "Next favorite", Category: "Favorites"},
			{KeyType: tea.KeyDown, Command: CmdSelectNext, Description: "Next favorite", Category: "Favorites"},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdSelectPrev, Description: "Previous favorite", Category: "Favorites"},
			{KeyType: tea.KeyUp, Command: CmdSelectPrev, Description: "Previous favorite", Category: "Favorites"},
			{KeyType: tea.KeyRunes, Rune: 'x', Command: CmdRemoveFavorite, Description: "Remove favorite", Category: "Favorites"},
			{KeyType: tea.KeyRunes, Rune: 'd', Command: CmdRemoveFavorite, Description: "Remove favorite", Category: "Favorites"},
			{KeyType: tea.KeyDelete, Command: CmdRemoveFavorite, Description: "Remove favorite", Category: "Favorites"},
			{KeyType: tea.KeyRunes, Rune: 'c', Command: CmdCopyFavorite, Description: "Copy favorite", Category: "Favorites"},
			{KeyType: tea.KeyRunes, Rune: 'y', Command: CmdCopyFavorite, Description: "Copy favorite", Category: "Favorites"},
			{KeyType: tea.KeyTab, Command: CmdFocusQuote, Description: "Focus quote", Category: "Navigation"},
			{KeyType: tea.KeyEsc, Command: CmdFocusQuote, Description: "Focus quote", Category: "Navigation"},
		},
	}
}

func defaultGlobalBindings() *ModeBindings {
	return &ModeBindings{
		Bindings: []KeyBinding{
			{KeyType: tea.KeyRunes, Rune: 't', Command: CmdCycleTheme, Description: "Next theme", Category: "Application"},
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "Toggle help", Category: "Application"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "Quit", Category: "Application"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application"},
		},
	}
}
