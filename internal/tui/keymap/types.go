// Package keymap provides key binding definitions and lookup for the TUI.
// Bindings are declared per mode so the update loop maps a key press to a
// named Command instead of matching keys inline.
package keymap

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents which part of the TUI has focus.
// Different modes have different key bindings active.
type Mode string

const (
	ModeQuote     Mode = "quote"     // Quote card focused (default)
	ModeFavorites Mode = "favorites" // Favorites list focused
)

// Command represents a named action that can be triggered by a key binding.
type Command string

// Quote card commands
const (
	CmdNewQuote       Command = "new_quote"
	CmdToggleFavorite Command = "toggle_favorite"
	CmdCopyQuote      Command = "copy_quote"
	CmdFocusFavorites Command = "focus_favorites"
)

// Favorites list commands
const (
	CmdSelectNext     Command = "select_next"
	CmdSelectPrev     Command = "select_prev"
	CmdRemoveFavorite Command = "remove_favorite"
	CmdCopyFavorite   Command = "copy_favorite"
	CmdFocusQuote     Command = "focus_quote"
)

// Commands available in every mode
const (
	CmdCycleTheme Command = "cycle_theme"
	CmdToggleHelp Command = "toggle_help"
	CmdQuit       Command = "quit"
)

// Modifier represents keyboard modifiers (Ctrl, Alt, Shift).
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModCtrl  Modifier = 1 << iota
	ModAlt
	ModShift
)

// String returns a human-readable representation of modifiers.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}
	var s string
	if m&ModCtrl != 0 {
		s += "ctrl+"
	}
	if m&ModAlt != 0 {
		s += "alt+"
	}
	if m&ModShift != 0 {
		s += "shift+"
	}
	return s
}

// KeyBinding represents a single key binding configuration.
type KeyBinding struct {
	// KeyType is the key. For rune keys use tea.KeyRunes and set Rune.
	KeyType tea.KeyType

	// Rune is the character for rune-based keys.
	Rune rune

	// Modifiers contains the modifier keys that must be pressed.
	Modifiers Modifier

	// Command is the action to execute when this binding is triggered.
	Command Command

	// Description is a human-readable description for help display.
	Description string

	// Category groups related bindings together in help display.
	Category string
}

// Matches checks if a tea.KeyMsg matches this binding.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	wantAlt := kb.Modifiers&ModAlt != 0
	if msg.Alt != wantAlt {
		return false
	}

	if kb.KeyType != tea.KeyRunes {
		return msg.Type == kb.KeyType
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}
	return msg.Runes[0] == kb.Rune
}

// String returns a human-readable representation of the key binding,
// in the same form as tea.KeyMsg.String ("n", "tab", "ctrl+c"), except
// that the space bar is spelled out.
func (kb KeyBinding) String() string {
	prefix := kb.Modifiers.String()

	if kb.KeyType == tea.KeySpace {
		return prefix + "space"
	}
	if kb.KeyType != tea.KeyRunes {
		return prefix + kb.KeyType.String()
	}
	if kb.Rune == ' ' {
		return prefix + "space"
	}
	return prefix + string(kb.Rune)
}

// ModeBindings holds all key bindings for a specific mode.
type ModeBindings struct {
	Mode     Mode
	Bindings []KeyBinding
}

// GetBinding looks up a command for a key in this mode.
func (mb *ModeBindings) GetBinding(msg tea.KeyMsg) (Command, bool) {
	for _, binding := range mb.Bindings {
		if binding.Matches(msg) {
			return binding.Command, true
		}
	}
	return "", false
}

// Keymap contains all key bindings organized by mode.
type Keymap struct {
	Name        string
	Description string
	Modes       map[Mode]*ModeBindings

	// Global bindings apply in every mode after the mode's own bindings.
	Global *ModeBindings
}

// GetBinding looks up a command for a key in a specific mode, falling
// back to the global bindings.
func (km *Keymap) GetBinding(msg tea.KeyMsg, mode Mode) (Command, bool) {
	if mb, ok := km.Modes[mode]; ok {
		if cmd, found := mb.GetBinding(msg); found {
			return cmd, true
		}
	}
	if km.Global != nil {
		return km.Global.GetBinding(msg)
	}
	return "", false
}

// GetModeBindings returns the mode's bindings followed by the global ones.
func (km *Keymap) GetModeBindings(mode Mode) []KeyBinding {
	var out []KeyBinding
	if mb, ok := km.Modes[mode]; ok {
		out = append(out, mb.Bindings...)
	}
	if km.Global != nil {
		out = append(out, km.Global.Bindings...)
	}
	return out
}

// GetBindingsForCommand returns all bindings that trigger cmd in mode.
func (km *Keymap) GetBindingsForCommand(cmd Command, mode Mode) []KeyBinding {
	var result []KeyBinding
	for _, binding := range km.GetModeBindings(mode) {
		if binding.Command == cmd {
			result = append(result, binding)
		}
	}
	return result
}

// GetCategories returns all unique categories in a mode's bindings, in
// declaration order.
func (km *Keymap) GetCategories(mode Mode) []string {
	seen := make(map[string]bool)
	var categories []string

	for _, binding := range km.GetModeBindings(mode) {
		if binding.Category != "" && !seen[binding.Category] {
			seen[binding.Category] = true
			categories = append(categories, binding.Category)
		}
	}
	return categories
}

// GetBindingsByCategory returns bindings grouped by category for a mode.
func (km *Keymap) GetBindingsByCategory(mode Mode) map[string][]KeyBinding {
	result := make(map[string][]KeyBinding)
	for _, binding := range km.GetModeBindings(mode) {
		cat := binding.Category
		if cat == "" {
			cat = "Other"
		}
		result[cat] = append(result[cat], binding)
	}
	return result
}
