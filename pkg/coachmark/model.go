package coachmark

import (
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/coachmark/internal/anchor"
	"github.com/alexisbeaulieu97/coachmark/internal/geometry"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FinishedMsg is emitted once when the session ends.
type FinishedMsg struct {
	ID int
}

type showMsg struct {
	id  int
	gen uint64
}

type timerMsg struct {
	id  int
	gen uint64
}

// control identifies a default navigation button.
type control int

const (
	controlBack control = iota
	controlSkip
	controlNext
	controlDone
)

// controlAnchorBase keeps button anchors clear of registry anchors, which
// count up from 1.
const controlAnchorBase anchor.ID = 1 << 31

func (c control) anchor() anchor.ID {
	return controlAnchorBase + anchor.ID(c)
}

// frameLayout is what the last View learned about the frame.
type frameLayout struct {
	zones      map[control]geometry.Rect
	descHeight int
	scrolling  bool
	scrollMax  int
	popover    geometry.Rect
}

// layoutCache carries frameLayout from View back to Update. View has a
// value receiver, so it writes through this pointer.
type layoutCache struct {
	mu   sync.Mutex
	last frameLayout
}

func (c *layoutCache) store(l frameLayout) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last = l
}

func (c *layoutCache) load() frameLayout {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// Model is the coach-mark overlay. Embed it in a host model, forward
// messages to Update and pass the host's rendered frame through View.
type Model struct {
	id       int
	seq      *Sequence
	registry *Registry
	subs     []subscription
	layout   *layoutCache

	visible  bool
	cfg      Config
	controls controls
	insets   geometry.Insets
	logger   Logger
	tinter   SurfaceTinter
	keys     KeyMap
	help     help.Model

	anim     spotlight
	size     geometry.Size
	scrollY  int
	finished bool
}

// New builds an overlay. It fails only when the options combine both
// integration modes.
func New(opts ...Option) (Model, error) {
	s := defaultSettings()
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	if s.state != nil && s.events != nil {
		return Model{}, ErrConflictingIntegration
	}

	seq := s.state
	if seq == nil {
		seq = NewSequence()
	}
	seq.setAutoTransition(s.auto, s.autoDuration)
	if s.onFinished != nil {
		seq.setOnFinished(s.onFinished)
	}

	registry := s.registry
	if registry == nil {
		registry = NewRegistry()
	}

	id := nextID()
	m := Model{
		id:       id,
		seq:      seq,
		registry: registry,
		layout:   &layoutCache{},
		visible:  s.visible,
		cfg:      s.config,
		controls: s.controls,
		insets:   s.insets,
		logger:   s.logger,
		tinter:   s.tinter,
		keys:     s.keys,
		help:     help.New(),
		anim:     newSpotlight(id, s.animate),
	}
	if s.events != nil {
		m.subs = subscribeAll(s.events)
	}
	return m, nil
}

// Init mounts the session and starts listening to the event source.
func (m Model) Init() tea.Cmd {
	cmds := m.schedule(m.seq.Mount())
	for _, sub := range m.subs {
		cmds = append(cmds, listenCmd(m.id, sub.kind, sub.ch))
	}
	m.logger.Debug("coach marks mounted", "auto", m.seq.AutoTransition(), "events", len(m.subs) > 0)
	return tea.Batch(cmds...)
}

// ID returns the unique id of the overlay.
func (m Model) ID() int {
	return m.id
}

// Registry returns the registry host views mark their targets in.
func (m Model) Registry() *Registry {
	return m.registry
}

// Sequence returns the state machine behind the overlay.
func (m Model) Sequence() *Sequence {
	return m.seq
}

// State returns a snapshot of the session progress.
func (m Model) State() State {
	return m.seq.Snapshot()
}

// Config returns the current styling.
func (m Model) Config() Config {
	return m.cfg
}

// Active reports whether the overlay currently covers the screen and takes
// input.
func (m Model) Active() bool {
	st := m.seq.Snapshot()
	st.Total = m.registry.Len()
	return m.visible && st.SessionActive && st.InRange()
}

// Intercepts reports whether msg belongs to the overlay. Hosts stop routing
// key and mouse input to their own widgets while it returns true.
func (m Model) Intercepts(msg tea.Msg) bool {
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		return m.Active()
	}
	return false
}

// SetOnFinished replaces the completion callback in manual mode.
func (m Model) SetOnFinished(fn func()) Model {
	if !m.seq.SetOnFinished(fn) {
		m.logger.Debug("finished callback kept in auto-transition mode")
	}
	return m
}

// HelpView renders the key bindings that currently apply.
func (m Model) HelpView() string {
	if !m.Active() {
		return ""
	}
	st := m.seq.Snapshot()
	st.Total = m.registry.Len()
	return m.help.View(m.keys.forState(st, m.seq.AutoTransition(), m.layout.load().scrolling))
}

// WithConfig returns a copy of the model using c.
func (m Model) WithConfig(c Config) Model {
	m.cfg = c
	return m
}

// WithTitleStyle returns a copy of the model with the title style changed by opts.
func (m Model) WithTitleStyle(opts ...TextOption) Model {
	m.cfg = m.cfg.WithTitleStyle(opts...)
	return m
}

// WithDescriptionStyle returns a copy of the model with the description style changed by opts.
func (m Model) WithDescriptionStyle(opts ...TextOption) Model {
	m.cfg = m.cfg.WithDescriptionStyle(opts...)
	return m
}

// WithOverlayStyle returns a copy of the model with the scrim style changed by opts.
func (m Model) WithOverlayStyle(opts ...OverlayOption) Model {
	m.cfg = m.cfg.WithOverlayStyle(opts...)
	return m
}

// WithNextButtonStyle returns a copy of the model with the next button changed by opts.
func (m Model) WithNextButtonStyle(opts ...ButtonOption) Model {
	m.cfg = m.cfg.WithNextButtonStyle(opts...)
	return m
}

// WithBackButtonStyle returns a copy of the model with the back button changed by opts.
func (m Model) WithBackButtonStyle(opts ...ButtonOption) Model {
	m.cfg = m.cfg.WithBackButtonStyle(opts...)
	return m
}

// WithDoneButtonStyle returns a copy of the model with the done button changed by opts.
func (m Model) WithDoneButtonStyle(opts ...ButtonOption) Model {
	m.cfg = m.cfg.WithDoneButtonStyle(opts...)
	return m
}

// WithSkipButtonStyle returns a copy of the model with the skip button changed by opts.
func (m Model) WithSkipButtonStyle(opts ...ButtonOption) Model {
	m.cfg = m.cfg.WithSkipButtonStyle(opts...)
	return m
}
