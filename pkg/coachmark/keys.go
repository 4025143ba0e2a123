package coachmark

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keys the overlay handles while it is modal.
type KeyMap struct {
	Next       key.Binding
	Back       key.Binding
	Done       key.Binding
	Skip       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n", "enter", "tab"),
			key.WithHelp("→/n", "next"),
		),
		Back: key.NewBinding(
			key.WithKeys("left", "h", "b", "shift+tab"),
			key.WithHelp("←/b", "back"),
		),
		Done: key.NewBinding(
			key.WithKeys("enter", "d"),
			key.WithHelp("enter", "done"),
		),
		Skip: key.NewBinding(
			key.WithKeys("esc", "s"),
			key.WithHelp("esc", "skip"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
	}
}

// forState enables only the bindings that make sense for s. Auto-transition
// sessions expose skip alone.
func (k KeyMap) forState(s State, auto, scrolling bool) KeyMap {
	manual := !auto && s.InRange()
	k.Next.SetEnabled(manual && !s.IsLast())
	k.Back.SetEnabled(manual && !s.IsFirst())
	k.Done.SetEnabled(manual && s.IsLast())
	k.Skip.SetEnabled(s.SessionActive)
	k.ScrollUp.SetEnabled(scrolling)
	k.ScrollDown.SetEnabled(scrolling)
	return k
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Next, k.Done, k.Skip}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Back, k.Next, k.Done, k.Skip},
		{k.ScrollUp, k.ScrollDown},
	}
}
