package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// HelpKeyMap adapts a Keymap mode to the bubbles help.KeyMap interface.
// Bindings sharing a command are merged into one entry ("j/down").
type HelpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

// Help builds the help entries for mode. Short help lists one entry per
// command; full help groups entries into one column per category.
func (km *Keymap) Help(mode Mode) HelpKeyMap {
	var h HelpKeyMap

	byCategory := km.GetBindingsByCategory(mode)
	for _, cat := range km.GetCategories(mode) {
		column := mergeByCommand(byCategory[cat])
		h.short = append(h.short, column...)
		h.full = append(h.full, column)
	}
	return h
}

// ShortHelp implements help.KeyMap.
func (h HelpKeyMap) ShortHelp() []key.Binding {
	return h.short
}

// FullHelp implements help.KeyMap.
func (h HelpKeyMap) FullHelp() [][]key.Binding {
	return h.full
}

func mergeByCommand(bindings []KeyBinding) []key.Binding {
	var order []Command
	keys := make(map[Command][]string)
	desc := make(map[Command]string)

	for _, b := range bindings {
		if _, ok := keys[b.Command]; !ok {
			order = append(order, b.Command)
			desc[b.Command] = b.Description
		}
		keys[b.Command] = append(keys[b.Command], b.String())
	}

	out := make([]key.Binding, 0, len(order))
	for _, cmd := range order {
		out = append(out, key.NewBinding(
			key.WithKeys(keys[cmd]...),
			key.WithHelp(strings.Join(keys[cmd], "/"), strings.ToLower(desc[cmd])),
		))
	}
	return out
}
