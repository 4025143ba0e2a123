package coachmark

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/coachmark/internal/anchor"
	"github.com/alexisbeaulieu97/coachmark/internal/geometry"
)

// View ends the host's layout pass and composes the overlay onto content,
// the host's rendered frame. Anchor markers are always stripped, so the
// host can render through View unconditionally. When the session is over,
// hidden, out of range or the current target is not part of the frame,
// content is returned unchanged.
func (m Model) View(content string) string {
	m.registry.Commit()
	frame, rects := anchor.Scan(content)

	st := m.seq.Snapshot()
	st.Total = m.registry.Len()
	if !m.visible || !st.SessionActive || !st.InRange() {
		m.layout.store(frameLayout{})
		return frame
	}

	h, ok := m.registry.At(st.CurrentIndex)
	if !ok {
		m.layout.store(frameLayout{})
		return frame
	}
	rect, ok := rects[h.Anchor]
	if !ok {
		m.logger.Debug("coach mark target not in frame", "order", h.Order)
		m.layout.store(frameLayout{})
		return frame
	}

	size := m.viewportSize(frame)
	target := rect.Shift(m.insets)
	cutout := geometry.RoundedRect{
		Rect:   spotlightRect(target, m.anim.scale(h.ScaleEffect)),
		Radius: h.CornerRadius,
	}
	out := composeScrim(frame, size, cutout, m.cfg.Overlay)
	if !st.PopoverVisible {
		m.layout.store(frameLayout{})
		return out
	}

	pop := popover{
		h:         h,
		state:     st,
		auto:      m.seq.AutoTransition(),
		cfg:       m.cfg,
		controls:  m.controls,
		surface:   m.surface(h),
		width:     popoverWidth(size.W),
		targetBot: int(math.Ceil(target.MaxY())),
		viewportH: size.H,
		scrollY:   m.scrollY,
	}.render()

	x, y := placePopover(target.Inflate(popoverOffset), target, pop.width, pop.height, size)
	out, zones := anchor.Scan(splice(out, pop.view, x, y))

	l := frameLayout{
		zones:      make(map[control]geometry.Rect, len(zones)),
		descHeight: pop.descHeight,
		scrolling:  pop.scrolling,
		scrollMax:  pop.scrollMax,
		popover: geometry.Rect{
			X: float64(x), Y: float64(y),
			W: float64(pop.width), H: float64(pop.height),
		},
	}
	for _, c := range []control{controlBack, controlSkip, controlNext, controlDone} {
		if r, ok := zones[c.anchor()]; ok {
			l.zones[c] = r
		}
	}
	m.layout.store(l)
	return out
}

// viewportSize is the last window size, or the frame's own extent before
// the first WindowSizeMsg.
func (m Model) viewportSize(frame string) geometry.Size {
	if !m.size.Empty() {
		return m.size
	}
	return geometry.Size{W: lipgloss.Width(frame), H: lipgloss.Height(frame)}
}

// surface resolves the popover background, falling back to the default
// when the tinter rejects the highlight's colour.
func (m Model) surface(h Highlight) lipgloss.TerminalColor {
	c, err := m.tinter.TintSurface(h.Background)
	if err != nil {
		m.logger.Warn("popover surface tint failed", "order", h.Order, "color", h.Background, "error", err)
		return lipgloss.Color(DefaultBackground)
	}
	return c
}
