package coachmark

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/coachmark/internal/geometry"
)

// dimBase is the colour dimmed text is blended from; the original colours
// of covered cells are dropped.
var dimBase = colorful.Color{R: 0.8, G: 0.8, B: 0.8}

// useScroll decides whether a description of height h rows must scroll,
// given the target's bottom edge b and the viewport height v.
func useScroll(h, b, v int) bool {
	return h > v-b-scrollOffset || h > v
}

// spotlightRect is the cutout for target: grown by the mask spacing and
// scaled about its centre.
func spotlightRect(target geometry.Rect, scale float64) geometry.Rect {
	return target.Inflate(maskOffset).ScaleAboutCenter(scale)
}

// placePopover puts a w×h popover below region, or above it when there is
// no room below, horizontally centred on the target and clamped into the
// viewport.
func placePopover(region, target geometry.Rect, w, h int, size geometry.Size) (int, int) {
	_, top, _, bottom := region.Cells()

	y := bottom
	if y+h > size.H {
		if above := top - h; above >= 0 {
			y = above
		} else {
			y = max(0, size.H-h)
		}
	}

	cx, _ := target.Center()
	x := int(math.Round(cx)) - w/2
	x = min(max(x, 0), max(0, size.W-w))
	return x, y
}

func scrimStyle(o OverlayStyle) lipgloss.Style {
	over, err := colorful.Hex(o.Color)
	if err != nil {
		over = colorful.Color{}
	}
	fg := dimBase.BlendRgb(over, o.Opacity).Clamped()
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg.Hex())).Faint(o.Opacity > 0)
}

// composeScrim dims every cell of frame outside cutout. Cells inside the
// cutout keep their original styling. The frame is padded to the viewport
// and may overhang it by scrimMargin.
func composeScrim(frame string, size geometry.Size, cutout geometry.RoundedRect, overlay OverlayStyle) string {
	lines := strings.Split(frame, "\n")
	width := frameWidth(lines)
	rows := min(max(len(lines), size.H), size.H+scrimMargin)
	width = min(max(width, size.W), size.W+scrimMargin)

	dim := scrimStyle(overlay)
	paint := func(s string) string {
		if s == "" {
			return ""
		}
		return dim.Render(ansi.Strip(s))
	}

	out := make([]string, rows)
	for y := 0; y < rows; y++ {
		line := ""
		if y < len(lines) {
			line = lines[y]
		}
		if w := ansi.StringWidth(line); w < width {
			line += strings.Repeat(" ", width-w)
		}

		x0, x1, ok := cutout.RowSpan(y)
		x0, x1 = max(x0, 0), min(x1, width)
		if !ok || x1 <= x0 {
			out[y] = paint(ansi.Cut(line, 0, width))
			continue
		}
		out[y] = paint(ansi.Cut(line, 0, x0)) +
			ansi.Cut(line, x0, x1) + ansi.ResetStyle +
			paint(ansi.Cut(line, x1, width))
	}
	return strings.Join(out, "\n")
}

// splice draws block over frame with its top-left corner at (x, y).
func splice(frame, block string, x, y int) string {
	lines := strings.Split(frame, "\n")
	for i, pl := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 {
			continue
		}
		for row >= len(lines) {
			lines = append(lines, "")
		}
		line := lines[row]
		lw := ansi.StringWidth(line)
		if lw < x {
			line += strings.Repeat(" ", x-lw)
			lw = x
		}
		pw := ansi.StringWidth(pl)
		lines[row] = ansi.Cut(line, 0, x) + ansi.ResetStyle + pl + ansi.ResetStyle + ansi.Cut(line, x+pw, lw)
	}
	return strings.Join(lines, "\n")
}

func frameWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		w = max(w, ansi.StringWidth(l))
	}
	return w
}
