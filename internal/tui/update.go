package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/coachmark/pkg/coachmark"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case coachmark.FinishedMsg:
		if msg.ID == m.overlay.ID() {
			m.finishTour()
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.events != nil && m.overlay.Active() && m.triggerEvent(msg) {
			return m, nil
		}
		if !m.overlay.Intercepts(msg) {
			return m.handleKey(msg)
		}

	case tea.MouseMsg:
		if !m.overlay.Intercepts(msg) {
			return m.handleMouse(msg)
		}
	}

	var cmd tea.Cmd
	m.overlay, cmd = m.overlay.Update(msg)
	m.track()
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.messages)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Replay):
		if m.overlay.Active() {
			return m, nil
		}
		if err := m.startTour(); err != nil {
			m.log.Error(err, "replay failed")
			return m, nil
		}
		m.log.Info("tour replayed")
		return m, m.overlay.Init()
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.MouseButtonWheelDown:
		if m.cursor < len(m.messages)-1 {
			m.cursor++
		}
	}
	return m, nil
}

// triggerEvent maps the screen's own keys onto the event source. The
// overlay picks the signal up through its subscription.
func (m Model) triggerEvent(msg tea.KeyMsg) bool {
	st := m.overlay.State()
	switch {
	case key.Matches(msg, m.keys.EventNext):
		if st.IsLast() {
			m.events.Trigger(coachmark.EventDone)
		} else {
			m.events.Trigger(coachmark.EventNext)
		}
	case key.Matches(msg, m.keys.EventBack):
		m.events.Trigger(coachmark.EventBack)
	case key.Matches(msg, m.keys.EventSkip):
		m.events.Trigger(coachmark.EventSkip)
	default:
		return false
	}
	return true
}

// track records the stop on screen so the summary can list what was seen.
func (m *Model) track() {
	st := m.overlay.State()
	if st.SessionActive && st.PopoverVisible && st.InRange() {
		if !m.visited[st.CurrentIndex] {
			m.log.Debug("stop shown", "index", st.CurrentIndex, "total", st.Total)
		}
		m.visited[st.CurrentIndex] = true
	}
}

func (m *Model) finishTour() {
	reg := m.overlay.Registry()
	total := reg.Len()
	st := m.overlay.State()

	m.titles = m.titles[:0]
	for i := 0; i < total; i++ {
		h, _ := reg.At(i)
		m.titles = append(m.titles, h.Title)
	}
	m.skipped = st.CurrentIndex < total-1
	m.tourDone = true
	m.log.Info("tour finished", "visited", len(m.visited), "total", total, "skipped", m.skipped)
}
