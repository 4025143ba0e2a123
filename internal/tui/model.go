// Package tui is a sample mail screen that hosts the coach-mark overlay. It
// marks its regions while rendering and walks the user through them with the
// tour it was given.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/coachmark/internal/config"
	"github.com/alexisbeaulieu97/coachmark/internal/logger"
	"github.com/alexisbeaulieu97/coachmark/internal/ui/components"
	"github.com/alexisbeaulieu97/coachmark/pkg/coachmark"
)

// Options configures the mail screen.
type Options struct {
	// Tour to run; DefaultTour when nil.
	Tour *config.Tour
	// Logger receives overlay and screen diagnostics; nil discards them.
	Logger *logger.Logger
	// Events routes navigation through an EventSource bound to the screen's
	// own keys instead of a shared Sequence.
	Events bool
	// Auto overrides the tour's auto transition when positive.
	Auto time.Duration
	// Width and Height seed the layout before the first WindowSizeMsg.
	Width  int
	Height int
}

// Message is one row of the inbox.
type Message struct {
	From     string
	Subject  string
	Received string
	Unread   bool
}

type folder struct {
	name   string
	unread int
}

// Model is the mail screen.
type Model struct {
	opts    Options
	tour    *config.Tour
	overlay coachmark.Model
	seq     *coachmark.Sequence
	events  *coachmark.EventSource
	log     *logger.Logger

	spinner spinner.Model
	help    help.Model
	keys    keyMap

	messages []Message
	folders  []folder
	cursor   int

	width  int
	height int

	visited  map[int]bool
	titles   []string
	tourDone bool
	skipped  bool
	quitting bool
}

const (
	defaultWidth  = 80
	defaultHeight = 24
	sidebarWidth  = 18
)

// NewModel builds the screen and its overlay.
func NewModel(opts Options) (Model, error) {
	if opts.Tour == nil {
		opts.Tour = DefaultTour()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = mutedStyle

	m := Model{
		opts:     opts,
		tour:     opts.Tour,
		log:      opts.Logger.WithFields(map[string]any{"component": "mail", "tour": opts.Tour.Name}),
		spinner:  s,
		help:     help.New(),
		keys:     defaultKeyMap(),
		messages: sampleMessages(),
		folders:  []folder{{"Inbox", 4}, {"Sent", 0}, {"Archive", 0}, {"Spam", 12}},
		width:    opts.Width,
		height:   opts.Height,
	}
	if err := m.startTour(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// startTour replaces the overlay with a fresh one running the tour.
func (m *Model) startTour() error {
	opts := append([]coachmark.Option{}, m.tour.Options()...)
	if m.opts.Auto > 0 {
		opts = append(opts, coachmark.AutoTransition(m.opts.Auto))
	}
	opts = append(opts, coachmark.WithLogger(m.log))

	m.seq, m.events = nil, nil
	if m.opts.Events {
		m.events = coachmark.NewEventSource()
		opts = append(opts,
			coachmark.WithEvents(m.events),
			coachmark.WithNextContent(eventButton("Next ]")),
			coachmark.WithBackContent(eventButton("[ Back")),
			coachmark.WithDoneContent(eventButton("Done ]")),
			coachmark.WithSkipContent(eventButton("Skip x")),
		)
	} else {
		m.seq = coachmark.NewSequence()
		opts = append(opts, coachmark.WithState(m.seq))
	}

	overlay, err := coachmark.New(opts...)
	if err != nil {
		return err
	}
	overlay, _ = overlay.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})

	m.overlay = overlay
	m.visited = make(map[int]bool)
	m.titles = nil
	m.tourDone = false
	m.skipped = false
	return nil
}

func eventButton(label string) *components.Button {
	return components.NewButton(label).WithStyle(eventButtonStyle)
}

// Init starts the spinner and mounts the overlay.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.overlay.Init())
}

// Overlay exposes the embedded overlay.
func (m Model) Overlay() coachmark.Model {
	return m.overlay
}

// TourDone reports whether the current tour has ended.
func (m Model) TourDone() bool {
	return m.tourDone
}

// Skipped reports whether the user left the tour before its last stop.
func (m Model) Skipped() bool {
	return m.skipped
}

// Visited returns how many distinct stops were shown.
func (m Model) Visited() int {
	return len(m.visited)
}

func sampleMessages() []Message {
	return []Message{
		{From: "Ada", Subject: "Design review moved to Thursday", Received: "09:12", Unread: true},
		{From: "Linus", Subject: "Re: patch series v3", Received: "08:40", Unread: true},
		{From: "Grace", Subject: "Compiler notes", Received: "Mon", Unread: true},
		{From: "Ken", Subject: "Lunch?", Received: "Mon"},
		{From: "Barbara", Subject: "Quarterly report draft", Received: "Sun", Unread: true},
		{From: "Dennis", Subject: "Re: Re: terminal colours", Received: "Sat"},
	}
}
