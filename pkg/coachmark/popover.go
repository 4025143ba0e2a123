package coachmark

import (
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/coachmark/internal/anchor"
	"github.com/alexisbeaulieu97/coachmark/internal/ui"
	"github.com/alexisbeaulieu97/coachmark/internal/ui/components"
)

// popoverChrome is the border plus horizontal padding around the content.
const popoverChrome = 4

type popover struct {
	h        Highlight
	state    State
	auto     bool
	cfg      Config
	controls controls
	surface  lipgloss.TerminalColor

	width     int
	targetBot int
	viewportH int
	scrollY   int
}

type renderedPopover struct {
	view       string
	width      int
	height     int
	descHeight int
	scrolling  bool
	scrollMax  int
}

// anchored marks a default control so the final frame reveals where it
// landed.
type anchored struct {
	id    anchor.ID
	inner ui.Renderable
}

func (a anchored) View() string {
	return anchor.Wrap(a.id, a.inner.View())
}

func (a anchored) ViewWithContext(ctx components.RenderContext) string {
	return anchor.Wrap(a.id, components.Render(a.inner, ctx))
}

func popoverWidth(viewportW int) int {
	w := min(popoverMaxWidth, viewportW-2)
	return max(w, min(popoverMinWidth, viewportW))
}

func (p popover) render() renderedPopover {
	inner := max(p.width-popoverChrome, 1)
	ctx := components.DefaultContext().WithMaxWidth(inner).WithSurface(p.surface)
	out := renderedPopover{}

	var body ui.Renderable
	switch {
	case p.h.HasDescription():
		body, out = p.textBlock(ctx, inner)
	case p.h.HasCustomContent():
		body = p.h.Content
	}

	var nav ui.Renderable
	if !p.auto {
		nav = p.navigation()
	}

	content := components.VStack(body, nav).WithGap(1).ViewWithContext(ctx)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorOf(p.cfg.Next.Background)).
		BorderBackground(p.surface).
		Background(p.surface).
		Padding(0, 1).
		Width(inner + 2)

	out.view = box.Render(content)
	out.width = lipgloss.Width(out.view)
	out.height = lipgloss.Height(out.view)
	return out
}

// textBlock lays out the title and description, switching the description
// to a scrolling viewport when it cannot fit under the target.
func (p popover) textBlock(ctx components.RenderContext, inner int) (ui.Renderable, renderedPopover) {
	out := renderedPopover{}
	desc := components.NewText(p.h.Description).WithStyle(p.cfg.Description.style())
	out.descHeight = desc.Height(ctx)

	var descView ui.Renderable = desc
	if useScroll(out.descHeight, p.targetBot, p.viewportH) {
		room := p.viewportH - p.targetBot - scrollOffset
		height := min(max(room, minScrollHeight), max(p.viewportH-scrollOffset, minScrollHeight), out.descHeight)

		vp := viewport.New(inner, height)
		vp.SetContent(desc.ViewWithContext(ctx))
		vp.SetYOffset(p.scrollY)

		out.scrolling = true
		out.scrollMax = max(out.descHeight-height, 0)
		descView = ui.Text(vp.View())
	}

	if p.h.Title == "" {
		return descView, out
	}
	title := components.NewText(p.h.Title).WithStyle(p.cfg.Title.style())
	return components.VStack(title, descView), out
}

// navigation builds the control row: back unless first, then done on the
// last stop or skip (first stop only) and next.
func (p popover) navigation() ui.Renderable {
	var items []ui.Renderable
	if !p.state.IsFirst() {
		items = append(items, button(controlBack, p.controls.back, p.cfg.Back, false))
	}
	if p.state.IsLast() {
		items = append(items, button(controlDone, p.controls.done, p.cfg.Done, true))
	} else {
		if p.state.IsFirst() {
			items = append(items, button(controlSkip, p.controls.skip, p.cfg.Skip, false))
		}
		items = append(items, button(controlNext, p.controls.next, p.cfg.Next, true))
	}
	return components.HStack(items...).WithGap(1)
}

func button(c control, override ui.Renderable, style ButtonStyle, focused bool) ui.Renderable {
	if override != nil {
		return override
	}
	b := components.NewButton(style.Text).WithStyle(style.style()).WithFocus(focused)
	return anchored{id: c.anchor(), inner: b}
}
