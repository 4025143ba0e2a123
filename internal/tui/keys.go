package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the mail screen's own bindings. The event bindings are only
// live while a tour runs in event mode.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Replay    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding

	EventNext key.Binding
	EventBack key.Binding
	EventSkip key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Replay: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "replay tour"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
		EventNext: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next"),
		),
		EventBack: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "back"),
		),
		EventSkip: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "skip"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Replay, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.EventNext, k.EventBack, k.EventSkip}}
}
