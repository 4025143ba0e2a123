package coachmark

import (
	"errors"
	"time"

	"github.com/alexisbeaulieu97/coachmark/internal/geometry"
	"github.com/alexisbeaulieu97/coachmark/internal/ui"
)

// ErrConflictingIntegration is returned by New when both an external state
// holder and an event source are supplied.
var ErrConflictingIntegration = errors.New("coachmark: WithState and WithEvents are mutually exclusive")

// Logger is the logging surface the overlay uses. Key/value pairs follow the
// message.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}

type settings struct {
	visible      bool
	auto         bool
	autoDuration time.Duration
	state        *Sequence
	events       *EventSource
	registry     *Registry
	controls     controls
	onFinished   func()
	config       Config
	insets       geometry.Insets
	logger       Logger
	animate      bool
	keys         KeyMap
	tinter       SurfaceTinter
}

// controls holds host replacements for the navigation buttons. A nil entry
// keeps the default button.
type controls struct {
	skip ui.Renderable
	next ui.Renderable
	back ui.Renderable
	done ui.Renderable
}

// Option configures a Model.
type Option func(*settings)

// Visible turns the whole overlay on or off. Defaults to true.
func Visible(v bool) Option {
	return func(s *settings) { s.visible = v }
}

// AutoTransition advances every d and hides the navigation row. A
// non-positive d uses DefaultAutoTransitionDuration.
func AutoTransition(d time.Duration) Option {
	return func(s *settings) {
		s.auto = true
		if d > 0 {
			s.autoDuration = d
		}
	}
}

// WithState drives the overlay from a host-owned Sequence the host can
// observe.
func WithState(seq *Sequence) Option {
	return func(s *settings) { s.state = seq }
}

// WithEvents routes navigation signals from src into the sequence.
func WithEvents(src *EventSource) Option {
	return func(s *settings) { s.events = src }
}

// WithRegistry shares an existing registry instead of creating one.
func WithRegistry(r *Registry) Option {
	return func(s *settings) { s.registry = r }
}

// WithSkipContent replaces the skip button.
func WithSkipContent(r ui.Renderable) Option {
	return func(s *settings) { s.controls.skip = r }
}

// WithNextContent replaces the next button.
func WithNextContent(r ui.Renderable) Option {
	return func(s *settings) { s.controls.next = r }
}

// WithBackContent replaces the back button.
func WithBackContent(r ui.Renderable) Option {
	return func(s *settings) { s.controls.back = r }
}

// WithDoneContent replaces the done button.
func WithDoneContent(r ui.Renderable) Option {
	return func(s *settings) { s.controls.done = r }
}

// OnFinished runs fn once when the session ends.
func OnFinished(fn func()) Option {
	return func(s *settings) { s.onFinished = fn }
}

// WithConfig replaces the styling.
func WithConfig(c Config) Option {
	return func(s *settings) { s.config = c }
}

// Insets are the rows and columns a host reserves at the viewport edges.
type Insets = geometry.Insets

// WithInsets offsets every resolved target, for hosts that draw the marked
// content inside a frame of their own.
func WithInsets(in Insets) Option {
	return func(s *settings) { s.insets = in }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithAnimation enables the spotlight grow animation. Defaults to true.
func WithAnimation(enabled bool) Option {
	return func(s *settings) { s.animate = enabled }
}

// WithKeyMap replaces the key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(s *settings) { s.keys = k }
}

// WithTinter replaces the popover surface tinter.
func WithTinter(t SurfaceTinter) Option {
	return func(s *settings) {
		if t != nil {
			s.tinter = t
		}
	}
}

func defaultSettings() settings {
	return settings{
		visible:      true,
		autoDuration: DefaultAutoTransitionDuration,
		config:       DefaultConfig(),
		logger:       nopLogger{},
		animate:      true,
		keys:         DefaultKeyMap(),
		tinter:       ColorTinter{},
	}
}
