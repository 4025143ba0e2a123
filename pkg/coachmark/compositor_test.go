package coachmark

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/coachmark/internal/geometry"
)

func TestUseScroll(t *testing.T) {
	tests := []struct {
		name    string
		h, b, v int
		want    bool
	}{
		{"fits below target", 5, 4, 24, false},
		{"exactly fills remaining room", 12, 4, 24, false},
		{"one row over remaining room", 13, 4, 24, true},
		{"target near bottom", 3, 20, 24, true},
		{"taller than viewport", 30, 0, 24, true},
		{"empty description", 0, 0, 24, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, useScroll(tt.h, tt.b, tt.v))
		})
	}
}

func TestSpotlightRect(t *testing.T) {
	target := geometry.Rect{X: 10, Y: 5, W: 8, H: 2}

	unscaled := spotlightRect(target, 1)
	assert.Equal(t, geometry.Rect{X: 9, Y: 4, W: 10, H: 4}, unscaled)

	grown := spotlightRect(target, 1.5)
	cx, cy := grown.Center()
	assert.Equal(t, 14.0, cx)
	assert.Equal(t, 6.0, cy)
	assert.Equal(t, 15.0, grown.W)

	assert.True(t, spotlightRect(target, 0).Empty())
}

func TestPlacePopover(t *testing.T) {
	size := geometry.Size{W: 80, H: 24}

	tests := []struct {
		name   string
		target geometry.Rect
		w, h   int
		wantX  int
		wantY  int
	}{
		{"below", geometry.Rect{X: 30, Y: 2, W: 20, H: 1}, 20, 6, 30, 5},
		{"above when no room below", geometry.Rect{X: 30, Y: 18, W: 20, H: 1}, 20, 6, 30, 10},
		{"clamped left", geometry.Rect{X: 0, Y: 2, W: 4, H: 1}, 20, 6, 0, 5},
		{"clamped right", geometry.Rect{X: 76, Y: 2, W: 4, H: 1}, 20, 6, 60, 5},
		{"clamped to bottom", geometry.Rect{X: 30, Y: 1, W: 20, H: 20}, 20, 6, 30, 18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			region := tt.target.Inflate(popoverOffset)
			x, y := placePopover(region, tt.target, tt.w, tt.h, size)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestComposeScrimPadsToViewport(t *testing.T) {
	out := composeScrim("ab\ncd", geometry.Size{W: 6, H: 4}, geometry.RoundedRect{}, DefaultConfig().Overlay)

	lines := strings.Split(ansi.Strip(out), "\n")
	assert.Len(t, lines, 4)
	for _, l := range lines {
		assert.Equal(t, 6, ansi.StringWidth(l))
	}
	assert.Equal(t, "ab    ", lines[0])
}

func TestComposeScrimKeepsCutoutStyling(t *testing.T) {
	red := "\x1b[31mIN\x1b[0m"
	green := "\x1b[32mOUT\x1b[0m"
	frame := green + "   " + red

	cutout := geometry.RoundedRect{Rect: geometry.Rect{X: 6, Y: 0, W: 2, H: 1}}
	out := composeScrim(frame, geometry.Size{W: 10, H: 1}, cutout, DefaultConfig().Overlay)

	assert.Contains(t, out, "\x1b[31mIN")
	assert.NotContains(t, out, "\x1b[32mOUT", "dimmed cells lose their own styling")
	assert.Equal(t, "OUT   IN  ", ansi.Strip(out))
}

func TestSplice(t *testing.T) {
	frame := "0123456789\n0123456789\n0123456789"
	out := splice(frame, "ab\ncd", 3, 1)

	assert.Equal(t, "0123456789\n012ab56789\n012cd56789", ansi.Strip(out))
}

func TestSpliceExtendsShortFrame(t *testing.T) {
	out := splice("x", "pop", 2, 1)

	lines := strings.Split(ansi.Strip(out), "\n")
	assert.Equal(t, []string{"x", "  pop"}, lines)
}

func TestPopoverWidth(t *testing.T) {
	assert.Equal(t, popoverMaxWidth, popoverWidth(120))
	assert.Equal(t, 28, popoverWidth(30))
	assert.Equal(t, 10, popoverWidth(10))
}

func TestPopoverNavigationRow(t *testing.T) {
	render := func(index, total int, auto bool) string {
		p := popover{
			h:         NewHighlight(0, Title("Title"), Description("Body")),
			state:     State{CurrentIndex: index, Total: total, SessionActive: true},
			auto:      auto,
			cfg:       DefaultConfig(),
			surface:   lipgloss.Color(DefaultBackground),
			width:     48,
			viewportH: 40,
		}
		return ansi.Strip(p.render().view)
	}

	first := render(0, 3, false)
	assert.Contains(t, first, "Skip CoachMark")
	assert.Contains(t, first, "Next")
	assert.NotContains(t, first, "Back")
	assert.NotContains(t, first, "Done")

	middle := render(1, 3, false)
	assert.Contains(t, middle, "Back")
	assert.Contains(t, middle, "Next")
	assert.NotContains(t, middle, "Skip")

	last := render(2, 3, false)
	assert.Contains(t, last, "Back")
	assert.Contains(t, last, "Done")
	assert.NotContains(t, last, "Next")

	auto := render(1, 3, true)
	assert.Contains(t, auto, "Body")
	assert.NotContains(t, auto, "Next")
	assert.NotContains(t, auto, "Back")
}

func TestPopoverContentPolicy(t *testing.T) {
	base := popover{
		state:     State{Total: 1, SessionActive: true},
		cfg:       DefaultConfig(),
		surface:   lipgloss.Color(DefaultBackground),
		width:     40,
		viewportH: 40,
	}

	custom := base
	custom.h = NewHighlight(0, CustomContent(textRenderable("custom body")))
	assert.Contains(t, ansi.Strip(custom.render().view), "custom body")

	both := base
	both.h = NewHighlight(0, Description("described"), CustomContent(textRenderable("custom body")))
	out := ansi.Strip(both.render().view)
	assert.Contains(t, out, "described")
	assert.NotContains(t, out, "custom body")

	bare := base
	bare.h = NewHighlight(0)
	out = ansi.Strip(bare.render().view)
	assert.Contains(t, out, "Done")
}

func TestPopoverScrollsLongDescription(t *testing.T) {
	p := popover{
		h:         NewHighlight(0, Description(strings.Repeat("word ", 200))),
		state:     State{Total: 1, SessionActive: true},
		cfg:       DefaultConfig(),
		surface:   lipgloss.Color(DefaultBackground),
		width:     30,
		targetBot: 4,
		viewportH: 20,
	}
	out := p.render()

	assert.True(t, out.scrolling)
	assert.Greater(t, out.descHeight, 20)
	assert.Greater(t, out.scrollMax, 0)
	assert.Less(t, out.height, 20)
}

type textRenderable string

func (t textRenderable) View() string { return string(t) }
