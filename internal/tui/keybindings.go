package tui

import (
	"charm.land/bubbles/v2/key"
)

// KeyMap holds the key bindings of the TUI. Which bindings are active
// depends on the focused zone.
type KeyMap struct {
	Analyze    key.Binding
	NextZone   key.Binding
	PrevZone   key.Binding
	EditURL    key.Binding
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	PrevImage  key.Binding
	NextImage  key.Binding
	JumpImage  key.Binding
	CycleHover key.Binding
	LeaveHover key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding

	focus     focusZone
	hasResult bool
}

// DefaultKeyMap returns the key bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Analyze:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "analyze")),
		NextZone:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next panel")),
		PrevZone:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev panel")),
		EditURL:    key.NewBinding(key.WithKeys("i", "/"), key.WithHelp("i", "edit url")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:     key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("enter", "toggle")),
		PrevImage:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev")),
		NextImage:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		JumpImage:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump")),
		CycleHover: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "highlight")),
		LeaveHover: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// forZone returns a copy of the key map whose help reflects zone.
func (k KeyMap) forZone(zone focusZone, hasResult bool) KeyMap {
	k.focus = zone
	k.hasResult = hasResult
	return k
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	var bindings []key.Binding
	switch k.focus {
	case focusReport:
		bindings = []key.Binding{k.Up, k.Down, k.Toggle, k.EditURL}
	case focusGallery:
		bindings = []key.Binding{k.PrevImage, k.NextImage, k.JumpImage, k.CycleHover, k.LeaveHover, k.EditURL}
	default:
		bindings = []key.Binding{k.Analyze}
	}

	if k.hasResult {
		bindings = append(bindings, k.NextZone)
	}
	if k.focus == focusInput {
		return append(bindings, k.ForceQuit)
	}
	return append(bindings, k.Quit)
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Analyze, k.NextZone, k.PrevZone, k.EditURL},
		{k.Up, k.Down, k.Toggle},
		{k.PrevImage, k.NextImage, k.JumpImage, k.CycleHover, k.LeaveHover},
		{k.Quit, k.ForceQuit},
	}
}
