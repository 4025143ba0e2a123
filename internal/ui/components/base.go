package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/coachmark/internal/ui"
)

// BaseComponent provides common functionality for all components.
// Embed this in your component structs to get standard behavior.
type BaseComponent struct {
	style    lipgloss.Style
	appliers []StyleFunc
}

// StyleFunc applies a styling transformation to a lipgloss.Style.
type StyleFunc func(lipgloss.Style) lipgloss.Style

// NewBaseComponent creates a new base component with default styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle returns the component style with all appliers run in order and
// the surface colour of ctx filled in where the component set no background.
func (b *BaseComponent) ComputeStyle(ctx RenderContext) lipgloss.Style {
	style := b.style
	for _, fn := range b.appliers {
		style = fn(style)
	}
	if ctx.Surface != nil {
		if _, unset := style.GetBackground().(lipgloss.NoColor); unset {
			style = style.Background(ctx.Surface)
		}
	}
	return style
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// AddAppliers appends style appliers. The slice is copied so components
// built from a shared prototype never alias each other's appliers.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	next := make([]StyleFunc, len(b.appliers), len(b.appliers)+len(appliers))
	copy(next, b.appliers)
	b.appliers = append(next, appliers...)
}

// RenderContext provides layout information to components during rendering.
type RenderContext struct {
	// MaxWidth bounds the rendered width in cells; zero means unbounded.
	MaxWidth int
	// Surface is the background the component is drawn on.
	Surface lipgloss.TerminalColor
}

// DefaultContext returns an unconstrained context without a surface colour.
func DefaultContext() RenderContext {
	return RenderContext{}
}

// WithMaxWidth returns a copy of the context with the width bound replaced.
func (r RenderContext) WithMaxWidth(width int) RenderContext {
	r.MaxWidth = width
	return r
}

// WithSurface returns a copy of the context drawing on the given colour.
func (r RenderContext) WithSurface(c lipgloss.TerminalColor) RenderContext {
	r.Surface = c
	return r
}

// ContextualRenderable is a component that can receive layout context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// Render draws r with ctx when it understands contexts and falls back to
// View otherwise.
func Render(r ui.Renderable, ctx RenderContext) string {
	if r == nil {
		return ""
	}
	if contextual, ok := r.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return r.View()
}

// Alignment specifies how content should be aligned on the cross axis.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

func (a Alignment) position() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
