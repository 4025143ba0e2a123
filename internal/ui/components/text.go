package components

import "github.com/charmbracelet/lipgloss"

// Text is a primitive component for rendering styled, wrapped text content.
type Text struct {
	BaseComponent
	content string
}

// NewText creates a new text component with the given content.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the text with its styling.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text wrapped to the context width.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	style := t.ComputeStyle(ctx)
	if ctx.MaxWidth > 0 {
		style = style.Width(ctx.MaxWidth)
	}
	return style.Render(t.content)
}

// Height reports how many rows the text occupies when rendered with ctx.
func (t *Text) Height(ctx RenderContext) int {
	if t.content == "" {
		return 0
	}
	return lipgloss.Height(t.ViewWithContext(ctx))
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers adds style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}
