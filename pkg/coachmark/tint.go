package coachmark

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// SurfaceTinter recolours the popover surface. Implementations are best
// effort: an error leaves the default surface in place.
type SurfaceTinter interface {
	TintSurface(color string) (lipgloss.TerminalColor, error)
}

// SurfaceTinterFunc adapts a function to SurfaceTinter.
type SurfaceTinterFunc func(color string) (lipgloss.TerminalColor, error)

// TintSurface implements SurfaceTinter.
func (f SurfaceTinterFunc) TintSurface(color string) (lipgloss.TerminalColor, error) {
	return f(color)
}

// ColorTinter accepts hex colours ("#RGB" or "#RRGGBB") and ANSI palette
// indexes ("0".."255").
type ColorTinter struct{}

// TintSurface implements SurfaceTinter.
func (ColorTinter) TintSurface(color string) (lipgloss.TerminalColor, error) {
	color = strings.TrimSpace(color)
	if color == "" {
		return nil, fmt.Errorf("empty surface colour")
	}
	if strings.HasPrefix(color, "#") {
		if len(color) != 4 && len(color) != 7 {
			return nil, fmt.Errorf("surface colour %q must be #RGB or #RRGGBB", color)
		}
		c, err := colorful.Hex(color)
		if err != nil {
			return nil, fmt.Errorf("parse surface colour %q: %w", color, err)
		}
		return lipgloss.Color(c.Hex()), nil
	}
	n, err := strconv.Atoi(color)
	if err != nil || n < 0 || n > 255 {
		return nil, fmt.Errorf("surface colour %q is neither hex nor an ANSI index", color)
	}
	return lipgloss.Color(color), nil
}

// ValidColor reports whether s is a colour ColorTinter accepts.
func ValidColor(s string) bool {
	_, err := ColorTinter{}.TintSurface(s)
	return err == nil
}
