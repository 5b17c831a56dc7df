package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Translate  key.Binding
	Swap       key.Binding
	Voice      key.Binding
	Theme      key.Binding
	NextSource key.Binding
	PrevSource key.Binding
	NextTarget key.Binding
	PrevTarget key.Binding
	Up         key.Binding
	Down       key.Binding
	Restore    key.Binding
	Focus      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// Bindings with a ctrl chord also work while the input has focus
func defaultKeys() keyMap {
	return keyMap{
		Translate:  key.NewBinding(key.WithKeys("ctrl+s", "t"), key.WithHelp("ctrl+s/t", "translate")),
		Swap:       key.NewBinding(key.WithKeys("ctrl+o", "s"), key.WithHelp("ctrl+o/s", "swap")),
		Voice:      key.NewBinding(key.WithKeys("ctrl+r", "v"), key.WithHelp("ctrl+r/v", "voice input")),
		Theme:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dark mode")),
		NextSource: key.NewBinding(key.WithKeys("]"), key.WithHelp("[/]", "source language")),
		PrevSource: key.NewBinding(key.WithKeys("["), key.WithHelp("[/]", "source language")),
		NextTarget: key.NewBinding(key.WithKeys("}"), key.WithHelp("{/}", "target language")),
		PrevTarget: key.NewBinding(key.WithKeys("{"), key.WithHelp("{/}", "target language")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "older")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "newer")),
		Restore:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "restore")),
		Focus:      key.NewBinding(key.WithKeys("tab", "esc"), key.WithHelp("tab", "switch focus")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Translate, k.Swap, k.Focus, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Translate, k.Swap, k.Voice, k.Theme},
		{k.NextSource, k.NextTarget},
		{k.Up, k.Down, k.Restore},
		{k.Focus, k.Help, k.Quit},
	}
}
