package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/coachmark/internal/ui"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack is a layout component that arranges children in a single direction.
type Stack struct {
	BaseComponent
	children  []ui.Renderable
	direction Direction
	gap       int
	align     Alignment
}

// NewStack creates a new stack with default vertical layout.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
	}
}

// VStack creates a vertical stack (convenience constructor).
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack (convenience constructor).
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack with layout context. Nil children and
// children rendering to an empty string take no space.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}
		if view := Render(child, ctx); view != "" {
			views = append(views, view)
		}
	}
	if len(views) == 0 {
		return ""
	}

	var content string
	if s.direction == DirectionHorizontal {
		content = s.joinHorizontal(views, ctx)
	} else {
		content = s.joinVertical(views, ctx)
	}

	style := s.ComputeStyle(ctx)
	if ctx.MaxWidth > 0 {
		style = style.MaxWidth(ctx.MaxWidth)
	}
	return style.Render(content)
}

func (s *Stack) joinVertical(views []string, ctx RenderContext) string {
	width := 0
	for _, v := range views {
		if w := lipgloss.Width(v); w > width {
			width = w
		}
	}
	fill := surfaceStyle(ctx)

	rows := make([]string, 0, len(views)*2)
	for i, view := range views {
		if i > 0 {
			for g := 0; g < s.gap; g++ {
				rows = append(rows, fill.Render(strings.Repeat(" ", width)))
			}
		}
		rows = append(rows, fill.Width(width).Align(s.align.position()).Render(view))
	}
	return strings.Join(rows, "\n")
}

func (s *Stack) joinHorizontal(views []string, ctx RenderContext) string {
	height := 0
	for _, v := range views {
		if h := lipgloss.Height(v); h > height {
			height = h
		}
	}
	fill := surfaceStyle(ctx)

	parts := make([]string, 0, len(views)*2)
	for i, view := range views {
		if i > 0 && s.gap > 0 {
			spacer := strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", s.gap)+"\n", height), "\n")
			parts = append(parts, fill.Render(spacer))
		}
		parts = append(parts, view)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func surfaceStyle(ctx RenderContext) lipgloss.Style {
	style := lipgloss.NewStyle()
	if ctx.Surface != nil {
		style = style.Background(ctx.Surface)
	}
	return style
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithAlign sets the cross axis alignment of a vertical stack.
func (s *Stack) WithAlign(align Alignment) *Stack {
	s.align = align
	return s
}

// WithStyle sets the container style.
func (s *Stack) WithStyle(style lipgloss.Style) *Stack {
	s.SetStyle(style)
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}
