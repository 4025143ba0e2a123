package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Badge is a small status indicator component.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantAccent
	BadgeVariantMuted
)

var badgeColors = map[BadgeVariant]struct{ fg, bg lipgloss.Color }{
	BadgeVariantDefault: {fg: "15", bg: "240"},
	BadgeVariantAccent:  {fg: "15", bg: "#EF5366"},
	BadgeVariantMuted:   {fg: "245", bg: "236"},
}

// NewBadge creates a new badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
		variant:       BadgeVariantDefault,
	}
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge. The variant colours apply only where the
// component style leaves them unset.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	if b.text == "" {
		return ""
	}
	style := b.ComputeStyle(RenderContext{MaxWidth: ctx.MaxWidth}).Padding(0, 1)
	colors := badgeColors[b.variant]
	if _, unset := style.GetForeground().(lipgloss.NoColor); unset {
		style = style.Foreground(colors.fg)
	}
	if _, unset := style.GetBackground().(lipgloss.NoColor); unset {
		style = style.Background(colors.bg)
	}
	return style.Render(b.text)
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// WithStyle sets the badge style.
func (b *Badge) WithStyle(style lipgloss.Style) *Badge {
	b.SetStyle(style)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// AccentBadge creates an accent badge.
func AccentBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantAccent)
}

// MutedBadge creates a muted badge.
func MutedBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantMuted)
}
