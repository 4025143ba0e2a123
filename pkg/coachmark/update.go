package coachmark

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/coachmark/internal/geometry"
)

// Update handles window size, input, scheduled callbacks and navigation
// events. Hosts forward every message; messages addressed to another
// overlay are ignored.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	m.sync()

	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.size = geometry.Size{W: msg.Width, H: msg.Height}

	case showMsg:
		if msg.id == m.id && m.seq.FireShow(msg.gen) {
			m.scrollY = 0
		}

	case timerMsg:
		if msg.id == m.id {
			cmds = append(cmds, m.schedule(m.seq.FireTimer(msg.gen))...)
		}

	case frameMsg:
		cmds = append(cmds, m.anim.frame(msg))

	case eventMsg:
		if msg.id != m.id {
			break
		}
		cmds = append(cmds, m.dispatch(msg.kind)...)
		if m.seq.Snapshot().SessionActive {
			cmds = append(cmds, listenCmd(m.id, msg.kind, msg.ch))
		}

	case NextMsg:
		cmds = append(cmds, m.dispatch(EventNext)...)
	case BackMsg:
		cmds = append(cmds, m.dispatch(EventBack)...)
	case DoneMsg:
		cmds = append(cmds, m.dispatch(EventDone)...)
	case SkipMsg:
		cmds = append(cmds, m.dispatch(EventSkip)...)

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg)...)

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg)...)
	}

	cmds = append(cmds, m.settle())
	return m, tea.Batch(cmds...)
}

// sync pulls what the last View measured into the sequence.
func (m *Model) sync() {
	m.seq.SetTotal(m.registry.Len())
	l := m.layout.load()
	m.seq.SetDescriptionHeight(l.descHeight)
	m.scrollY = min(m.scrollY, l.scrollMax)
}

// settle runs after every message: it emits FinishedMsg once and keeps the
// spotlight animation on the current target.
func (m *Model) settle() tea.Cmd {
	st := m.seq.Snapshot()
	if !st.SessionActive {
		if m.finished {
			return nil
		}
		m.finished = true
		for _, sub := range m.subs {
			sub.cancel()
		}
		m.subs = nil
		m.logger.Debug("coach marks finished", "index", st.CurrentIndex, "total", st.Total)
		id := m.id
		return func() tea.Msg { return FinishedMsg{ID: id} }
	}

	orders := m.registry.Orders()
	if st.CurrentIndex < 0 || st.CurrentIndex >= len(orders) {
		return nil
	}
	return m.anim.retarget(orders[st.CurrentIndex])
}

func (m *Model) dispatch(kind EventType) []tea.Cmd {
	if kind != EventSkip && m.seq.AutoTransition() {
		m.logger.Debug("navigation event ignored in auto-transition mode", "event", kind.String())
		return nil
	}
	m.logger.Debug("navigation event", "event", kind.String())
	switch kind {
	case EventNext:
		return m.schedule(m.seq.Advance())
	case EventBack:
		return m.schedule(m.seq.Retreat())
	case EventDone:
		m.seq.Finish()
	case EventSkip:
		m.seq.Skip()
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) []tea.Cmd {
	if !m.Active() {
		return nil
	}
	st := m.seq.Snapshot()
	l := m.layout.load()
	keys := m.keys.forState(st, m.seq.AutoTransition(), l.scrolling)

	switch {
	case key.Matches(msg, keys.Skip):
		m.seq.Skip()
	case !st.PopoverVisible:
		// Navigation waits for the popover to finish appearing.
	case key.Matches(msg, keys.Done):
		m.seq.Finish()
	case key.Matches(msg, keys.Next):
		return m.schedule(m.seq.Advance())
	case key.Matches(msg, keys.Back):
		return m.schedule(m.seq.Retreat())
	case key.Matches(msg, keys.ScrollUp):
		m.scrollY = max(m.scrollY-1, 0)
	case key.Matches(msg, keys.ScrollDown):
		m.scrollY = min(m.scrollY+1, l.scrollMax)
	}
	return nil
}

// handleMouse captures every mouse event while the overlay is active. Only
// presses on default controls act; the scrim and cutout swallow the rest.
func (m *Model) handleMouse(msg tea.MouseMsg) []tea.Cmd {
	if !m.Active() || !m.seq.Snapshot().PopoverVisible {
		return nil
	}
	l := m.layout.load()
	x, y := float64(msg.X)+0.5, float64(msg.Y)+0.5

	switch {
	case msg.Button == tea.MouseButtonWheelUp && l.scrolling && l.popover.Contains(x, y):
		m.scrollY = max(m.scrollY-1, 0)
		return nil
	case msg.Button == tea.MouseButtonWheelDown && l.scrolling && l.popover.Contains(x, y):
		m.scrollY = min(m.scrollY+1, l.scrollMax)
		return nil
	case msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft:
		return nil
	}

	for c, zone := range l.zones {
		if zone.Contains(x, y) {
			return m.press(c)
		}
	}
	return nil
}

func (m *Model) press(c control) []tea.Cmd {
	switch c {
	case controlBack:
		return m.schedule(m.seq.Retreat())
	case controlNext:
		return m.schedule(m.seq.Advance())
	case controlDone:
		m.seq.Finish()
	case controlSkip:
		m.seq.Skip()
	}
	return nil
}

// schedule turns the sequence's deferred callbacks into ticks addressed to
// this overlay.
func (m Model) schedule(in []Schedule) []tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(in))
	for _, s := range in {
		id, gen := m.id, s.Gen
		switch s.Kind {
		case ScheduleShow:
			cmds = append(cmds, tea.Tick(s.Delay, func(time.Time) tea.Msg {
				return showMsg{id: id, gen: gen}
			}))
		case ScheduleTimer:
			cmds = append(cmds, tea.Tick(s.Delay, func(time.Time) tea.Msg {
				return timerMsg{id: id, gen: gen}
			}))
		}
	}
	return cmds
}
