package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Divider renders a separator line.
type Divider struct {
	BaseComponent
	char      string
	width     int
	direction Direction
}

// NewDivider creates a horizontal divider.
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
		direction:     DirectionHorizontal,
	}
}

// HorizontalDivider creates a horizontal divider (convenience constructor).
func HorizontalDivider() *Divider {
	return NewDivider()
}

// VerticalDivider creates a vertical divider.
func VerticalDivider() *Divider {
	return NewDivider().WithChar("│").WithDirection(DirectionVertical)
}

// View renders the divider.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider. Without an explicit length the
// context width is used, falling back to one cell.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	length := d.width
	if length <= 0 {
		length = ctx.MaxWidth
	}
	if length <= 0 {
		length = 1
	}

	var content string
	if d.direction == DirectionHorizontal {
		content = strings.Repeat(d.char, length)
	} else {
		lines := make([]string, length)
		for i := range lines {
			lines[i] = d.char
		}
		content = lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	return d.ComputeStyle(ctx).Render(content)
}

// WithChar sets the character used for the divider.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth sets an explicit length for the divider.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithDirection sets the divider direction.
func (d *Divider) WithDirection(dir Direction) *Divider {
	d.direction = dir
	return d
}

// WithStyle sets the divider style.
func (d *Divider) WithStyle(style lipgloss.Style) *Divider {
	d.SetStyle(style)
	return d
}

// DottedDivider creates a dotted divider.
func DottedDivider() *Divider {
	return NewDivider().WithChar("·")
}
