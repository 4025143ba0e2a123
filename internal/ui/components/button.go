package components

import "github.com/charmbracelet/lipgloss"

// Button renders a labelled control. Buttons are visual only; the owner maps
// key presses and mouse hits to actions.
type Button struct {
	BaseComponent
	label   string
	filled  bool
	focused bool
}

// NewButton creates a new filled button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		filled:        true,
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button on the context surface.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	style := b.ComputeStyle(ctx).Padding(0, 2)
	if !b.filled {
		// Outlined buttons show the surface through and draw their colour
		// as text only.
		if ctx.Surface != nil {
			style = style.Background(ctx.Surface)
		} else {
			style = style.UnsetBackground()
		}
	}
	if b.focused {
		style = style.Underline(true)
	}
	return style.Render(b.label)
}

// WithFilled switches between filled and outlined rendering.
func (b *Button) WithFilled(filled bool) *Button {
	b.filled = filled
	return b
}

// WithFocus marks the button as the default action.
func (b *Button) WithFocus(focused bool) *Button {
	b.focused = focused
	return b
}

// WithStyle sets the button style.
func (b *Button) WithStyle(style lipgloss.Style) *Button {
	b.SetStyle(style)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// IsFocused returns true if the button is the default action.
func (b *Button) IsFocused() bool {
	return b.focused
}
